// Package api defines the driver API for the filter accelerator.
package api

import (
	"fmt"

	"github.com/sarchlab/akita/v4/sim"
	"github.com/sarchlab/akita/v4/sim/directconnection"

	"github.com/keshav011g/FIR-Filter-Hardware-Acc/fir"
	"github.com/keshav011g/FIR-Filter-Hardware-Acc/pipeline"
)

// Driver provides the interface to control a filter accelerator.
type Driver interface {
	// RegisterDevice registers a device to the driver. The driver will
	// establish connections to every lane of the device.
	RegisterDevice(device fir.Device)

	// FeedIn streams the samples into the given lane, one sample per
	// cycle.
	FeedIn(samples []int64, lane int)

	// Collect gathers the lane's result stream into data, in emission
	// order, until data is full. Results before the lane's latency are
	// warmup values.
	Collect(data []int64, lane int)

	// ResetDevice clears the pipeline state of every registered lane.
	ResetDevice()

	// Run will run all the tasks that have been added to the driver.
	Run()
}

type portFactory interface {
	make(c sim.Component, name string) sim.Port
}

type driverImpl struct {
	*sim.TickingComponent

	engine      sim.Engine
	freq        sim.Freq
	device      fir.Device
	portFactory portFactory

	feedPorts    []sim.Port
	collectPorts []sim.Port

	feedInTasks  []*feedInTask
	collectTasks []*collectTask
}

// Tick runs the driver for one cycle.
func (d *driverImpl) Tick() (madeProgress bool) {
	madeProgress = d.doFeedIn() || madeProgress
	madeProgress = d.doCollect() || madeProgress

	return madeProgress
}

func (d *driverImpl) doFeedIn() bool {
	madeProgress := false

	for _, task := range d.feedInTasks {
		madeProgress = d.doOneFeedInTask(task) || madeProgress
	}

	d.removeFinishedFeedInTasks()

	return madeProgress
}

func (d *driverImpl) doOneFeedInTask(task *feedInTask) bool {
	if !task.port.CanSend() {
		return false
	}

	msg := fir.SampleMsgBuilder{}.
		WithSrc(task.port.AsRemote()).
		WithDst(task.remote).
		WithSeq(uint64(task.round)).
		WithValue(task.samples[task.round]).
		Build()

	if err := task.port.Send(msg); err != nil {
		panic("filter lane cannot handle the sample rate")
	}

	task.round++

	pipeline.Trace("DriverFeed",
		"Port", task.port.Name(),
		"Seq", msg.Seq,
		"Sample", msg.Value,
	)

	return true
}

func (d *driverImpl) removeFinishedFeedInTasks() {
	for i := len(d.feedInTasks) - 1; i >= 0; i-- {
		if d.feedInTasks[i].isFinished() {
			d.feedInTasks = append(
				d.feedInTasks[:i], d.feedInTasks[i+1:]...)
		}
	}
}

func (d *driverImpl) doCollect() bool {
	madeProgress := false

	for _, task := range d.collectTasks {
		madeProgress = d.doOneCollectTask(task) || madeProgress
	}

	d.removeFinishedCollectTasks()

	return madeProgress
}

func (d *driverImpl) doOneCollectTask(task *collectTask) bool {
	madeProgress := false

	for !task.isFinished() {
		item := task.port.PeekIncoming()
		if item == nil {
			break
		}

		msg, ok := item.(*fir.ResultMsg)
		if !ok {
			panic("collect port expects ResultMsg")
		}

		task.data[task.round] = msg.Value
		task.round++
		task.port.RetrieveIncoming()
		madeProgress = true
	}

	return madeProgress
}

func (d *driverImpl) removeFinishedCollectTasks() {
	for i := len(d.collectTasks) - 1; i >= 0; i-- {
		if d.collectTasks[i].isFinished() {
			d.collectTasks = append(
				d.collectTasks[:i], d.collectTasks[i+1:]...)
		}
	}
}

// RegisterDevice registers a device to the driver. The driver will
// establish one connection pair per lane.
func (d *driverImpl) RegisterDevice(device fir.Device) {
	d.device = device

	d.feedPorts = make([]sim.Port, device.LaneCount())
	d.collectPorts = make([]sim.Port, device.LaneCount())

	for i := 0; i < device.LaneCount(); i++ {
		d.connectLane(device.Lane(i), i)
	}
}

func (d *driverImpl) connectLane(lane fir.Lane, index int) {
	feedPort := d.portFactory.make(
		d, fmt.Sprintf("%s.Feed[%d]", d.Name(), index))
	collectPort := d.portFactory.make(
		d, fmt.Sprintf("%s.Collect[%d]", d.Name(), index))
	d.AddPort(fmt.Sprintf("Feed[%d]", index), feedPort)
	d.AddPort(fmt.Sprintf("Collect[%d]", index), collectPort)
	d.feedPorts[index] = feedPort
	d.collectPorts[index] = collectPort

	lanePortIn := lane.InputPort()
	lanePortOut := lane.OutputPort()

	feedConn := directconnection.MakeBuilder().
		WithEngine(d.engine).
		WithFreq(d.freq).
		Build(fmt.Sprintf("%s.FeedConn[%d]", d.Name(), index))
	feedPort.SetConnection(feedConn)
	feedConn.PlugIn(feedPort)
	lanePortIn.SetConnection(feedConn)
	feedConn.PlugIn(lanePortIn)

	collectConn := directconnection.MakeBuilder().
		WithEngine(d.engine).
		WithFreq(d.freq).
		Build(fmt.Sprintf("%s.CollectConn[%d]", d.Name(), index))
	collectPort.SetConnection(collectConn)
	collectConn.PlugIn(collectPort)
	lanePortOut.SetConnection(collectConn)
	collectConn.PlugIn(lanePortOut)

	lane.SetCollector(collectPort.AsRemote())
}

// FeedIn queues the streaming of samples into a lane.
func (d *driverImpl) FeedIn(samples []int64, lane int) {
	task := &feedInTask{
		samples: samples,
		port:    d.feedPorts[lane],
		remote:  d.device.Lane(lane).InputPort().AsRemote(),
	}

	d.feedInTasks = append(d.feedInTasks, task)
}

// Collect queues the gathering of a lane's result stream.
func (d *driverImpl) Collect(data []int64, lane int) {
	task := &collectTask{
		data: data,
		port: d.collectPorts[lane],
	}

	d.collectTasks = append(d.collectTasks, task)
}

// ResetDevice clears every lane's pipeline state.
func (d *driverImpl) ResetDevice() {
	for i := 0; i < d.device.LaneCount(); i++ {
		d.device.Lane(i).Reset()
	}
}

// Run runs all the tasks in the driver.
func (d *driverImpl) Run() {
	d.TickNow()
	d.engine.Run()
}

type feedInTask struct {
	samples []int64
	port    sim.Port
	remote  sim.RemotePort
	round   int
}

func (t *feedInTask) isFinished() bool {
	return t.round >= len(t.samples)
}

type collectTask struct {
	data  []int64
	port  sim.Port
	round int
}

func (t *collectTask) isFinished() bool {
	return t.round >= len(t.data)
}
