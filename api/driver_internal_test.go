package api

import (
	gomock "github.com/golang/mock/gomock"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/sarchlab/akita/v4/sim"

	"github.com/keshav011g/FIR-Filter-Hardware-Acc/fir"
	"github.com/keshav011g/FIR-Filter-Hardware-Acc/pipeline"
)

var _ = Describe("Driver", func() {
	var (
		mockCtrl   *gomock.Controller
		mockDevice *MockDevice
		mockLane   *MockLane
		driver     *driverImpl
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())

		mockDevice = NewMockDevice(mockCtrl)
		mockLane = NewMockLane(mockCtrl)

		driver = &driverImpl{
			device:      mockDevice,
			portFactory: defaultPortFactory{},
		}
		driver.TickingComponent =
			sim.NewTickingComponent("Driver", nil, 1, driver)
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	It("should handle FeedIn API", func() {
		feedPort := pipeline.NewPort(nil, 1, 4, "Driver.Feed[0]")
		driver.feedPorts = []sim.Port{feedPort}

		lanePort := pipeline.NewPort(nil, 1, 1, "Device.Lane0.Core.In")
		mockDevice.EXPECT().Lane(0).Return(mockLane)
		mockLane.EXPECT().InputPort().Return(lanePort)

		samples := []int64{3, -1, 4, 1, -5}

		driver.FeedIn(samples, 0)

		Expect(driver.feedInTasks).To(HaveLen(1))
		Expect(driver.feedInTasks[0].samples).To(Equal(samples))
		Expect(driver.feedInTasks[0].port).To(BeIdenticalTo(feedPort))
		Expect(driver.feedInTasks[0].remote).
			To(Equal(lanePort.AsRemote()))
	})

	It("should handle Collect API", func() {
		collectPort := pipeline.NewPort(nil, 4, 1, "Driver.Collect[0]")
		driver.collectPorts = []sim.Port{collectPort}

		data := make([]int64, 8)

		driver.Collect(data, 0)

		Expect(driver.collectTasks).To(HaveLen(1))
		Expect(driver.collectTasks[0].data).
			To(HaveLen(len(data)))
		Expect(driver.collectTasks[0].port).
			To(BeIdenticalTo(collectPort))
	})

	It("should feed one sample per cycle", func() {
		feedPort := pipeline.NewPort(nil, 1, 4, "Driver.Feed[0]")
		samples := []int64{10, 20, 30}

		driver.feedInTasks = []*feedInTask{
			{
				samples: samples,
				port:    feedPort,
				remote:  sim.RemotePort("Device.Lane0.Core.In"),
			},
		}

		for i, want := range samples {
			driver.Tick()

			msg, ok := feedPort.RetrieveOutgoing().(*fir.SampleMsg)
			Expect(ok).To(BeTrue())
			Expect(msg.Seq).To(Equal(uint64(i)))
			Expect(msg.Value).To(Equal(want))
			Expect(msg.Meta().Dst).
				To(Equal(sim.RemotePort("Device.Lane0.Core.In")))
		}

		Expect(driver.feedInTasks).To(BeEmpty())
	})

	It("should not feed when the port is backed up", func() {
		feedPort := pipeline.NewPort(nil, 1, 1, "Driver.Feed[0]")

		driver.feedInTasks = []*feedInTask{
			{
				samples: []int64{10, 20},
				port:    feedPort,
				remote:  sim.RemotePort("Device.Lane0.Core.In"),
			},
		}

		driver.Tick()
		driver.Tick()

		Expect(driver.feedInTasks).To(HaveLen(1))
		Expect(driver.feedInTasks[0].round).To(Equal(1))
	})

	It("should collect results in emission order", func() {
		collectPort := pipeline.NewPort(nil, 4, 1, "Driver.Collect[0]")

		for i, v := range []int64{7, -3} {
			msg := fir.ResultMsgBuilder{}.
				WithSrc(sim.RemotePort("Device.Lane0.Core.Out")).
				WithDst(collectPort.AsRemote()).
				WithSeq(uint64(i)).
				WithValue(v).
				Build()
			Expect(collectPort.Deliver(msg)).To(BeNil())
		}

		data := make([]int64, 2)
		driver.collectTasks = []*collectTask{
			{data: data, port: collectPort},
		}

		driver.Tick()

		Expect(data).To(Equal([]int64{7, -3}))
		Expect(driver.collectTasks).To(BeEmpty())
	})

	It("should register a device and wire up each lane", func() {
		driver.engine = sim.NewSerialEngine()
		driver.freq = 1 * sim.GHz

		lanePortIn := pipeline.NewPort(nil, 1, 1, "Device.Lane0.Core.In")
		lanePortOut := pipeline.NewPort(nil, 1, 1, "Device.Lane0.Core.Out")

		mockDevice.EXPECT().LaneCount().Return(1).AnyTimes()
		mockDevice.EXPECT().Lane(0).Return(mockLane)
		mockLane.EXPECT().InputPort().Return(lanePortIn).Times(1)
		mockLane.EXPECT().OutputPort().Return(lanePortOut).Times(1)
		mockLane.EXPECT().
			SetCollector(sim.RemotePort("Driver.Collect[0]"))

		driver.RegisterDevice(mockDevice)

		Expect(driver.feedPorts).To(HaveLen(1))
		Expect(driver.collectPorts).To(HaveLen(1))
		Expect(driver.feedPorts[0].Name()).To(Equal("Driver.Feed[0]"))
		Expect(driver.collectPorts[0].Name()).
			To(Equal("Driver.Collect[0]"))
	})

	It("should reset every lane", func() {
		mockDevice.EXPECT().LaneCount().Return(2).AnyTimes()
		mockDevice.EXPECT().Lane(0).Return(mockLane)
		mockDevice.EXPECT().Lane(1).Return(mockLane)
		mockLane.EXPECT().Reset().Times(2)

		driver.ResetDevice()
	})
})
