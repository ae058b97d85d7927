// Package config provides a default configuration for the filter
// accelerator device.
package config

import (
	"fmt"

	"github.com/sarchlab/akita/v4/sim"

	"github.com/keshav011g/FIR-Filter-Hardware-Acc/fir"
	"github.com/keshav011g/FIR-Filter-Hardware-Acc/pipeline"
)

// DeviceBuilder can build filter accelerator devices.
type DeviceBuilder struct {
	engine sim.Engine
	freq   sim.Freq
	cfg    fir.Config
	lanes  int
}

// WithEngine sets the engine that drives the device simulation.
func (d DeviceBuilder) WithEngine(engine sim.Engine) DeviceBuilder {
	d.engine = engine
	return d
}

// WithFreq sets the frequency of the device.
func (d DeviceBuilder) WithFreq(freq sim.Freq) DeviceBuilder {
	d.freq = freq
	return d
}

// WithFilter sets the filter parameters shared by all lanes.
func (d DeviceBuilder) WithFilter(cfg fir.Config) DeviceBuilder {
	d.cfg = cfg
	return d
}

// WithLanes sets the number of independent filter lanes. The default is
// a single lane.
func (d DeviceBuilder) WithLanes(lanes int) DeviceBuilder {
	if lanes < 1 {
		panic("device needs at least one lane")
	}
	d.lanes = lanes
	return d
}

// Build creates a filter device. The lane config is validated before
// any lane is built.
func (d DeviceBuilder) Build(name string) fir.Device {
	if err := d.cfg.Validate(); err != nil {
		panic(err.Error())
	}

	if d.lanes == 0 {
		d.lanes = 1
	}

	dev := &device{
		name:  name,
		cfg:   d.cfg,
		lanes: make([]fir.Lane, d.lanes),
	}

	for i := 0; i < d.lanes; i++ {
		dev.lanes[i] = pipeline.Builder{}.
			WithEngine(d.engine).
			WithFreq(d.freq).
			WithConfig(d.cfg).
			Build(fmt.Sprintf("%s.Lane%d.Core", name, i))
	}

	return dev
}
