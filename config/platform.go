package config

import (
	"fmt"

	"github.com/keshav011g/FIR-Filter-Hardware-Acc/fir"
)

// A device is a filter accelerator made of independent lanes that share
// one set of filter parameters.
type device struct {
	name  string
	cfg   fir.Config
	lanes []fir.Lane
}

// LaneCount returns the number of lanes of the device.
func (d *device) LaneCount() int {
	return len(d.lanes)
}

// Lane returns the lane at the given index.
func (d *device) Lane(i int) fir.Lane {
	return d.lanes[i]
}

// Config returns the filter parameters shared by the lanes.
func (d *device) Config() fir.Config {
	return d.cfg
}

func (d *device) String() string {
	return fmt.Sprintf("%s(%d lanes, %d taps)",
		d.name, len(d.lanes), d.cfg.TapCount)
}
