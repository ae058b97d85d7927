// Package fir defines the commonly used data structures for the FIR
// filter accelerator.
package fir

import (
	"fmt"
	"math/bits"

	"github.com/sarchlab/akita/v4/sim"
)

// Config carries the construct-time parameters of a filter. The
// coefficients are baked in for the lifetime of the filter; there is no
// runtime reconfiguration path.
type Config struct {
	// TapCount is the number of taps. It must be a power of two so that
	// the summation tree reduces pairwise down to a single element.
	TapCount int

	// DataWidth is the signed bit width of input samples.
	DataWidth int

	// CoeffWidth is the signed bit width of coefficients.
	CoeffWidth int

	// Coeffs holds one coefficient per tap, Coeffs[k] multiplying the
	// sample that entered k ticks before the most recent one.
	Coeffs []int64
}

// Validate checks the configuration before anything is built. A filter
// must never be constructed from a config that fails validation.
func (c Config) Validate() error {
	if c.TapCount < 2 || bits.OnesCount(uint(c.TapCount)) != 1 {
		return fmt.Errorf(
			"tap count must be a power of two >= 2, got %d", c.TapCount)
	}

	if c.DataWidth < 2 {
		return fmt.Errorf("data width must be >= 2 bits, got %d", c.DataWidth)
	}

	if c.CoeffWidth < 2 {
		return fmt.Errorf("coeff width must be >= 2 bits, got %d", c.CoeffWidth)
	}

	if c.OutputWidth() > 64 {
		return fmt.Errorf(
			"accumulator width %d exceeds 64 bits (data %d + coeff %d + tree depth %d)",
			c.OutputWidth(), c.DataWidth, c.CoeffWidth, c.TreeDepth())
	}

	if len(c.Coeffs) != c.TapCount {
		return fmt.Errorf(
			"expect %d coefficients, got %d", c.TapCount, len(c.Coeffs))
	}

	for k, coeff := range c.Coeffs {
		if !FitsSigned(coeff, c.CoeffWidth) {
			return fmt.Errorf(
				"coefficient %d = %d does not fit in %d signed bits",
				k, coeff, c.CoeffWidth)
		}
	}

	return nil
}

// TreeDepth returns the number of pairwise reduction levels,
// log2(TapCount).
func (c Config) TreeDepth() int {
	return bits.TrailingZeros(uint(c.TapCount))
}

// Latency returns the tick count between a sample entering the filter
// and its contribution appearing at the output: one tick for the
// history register, one for the product register, and one per tree
// level.
func (c Config) Latency() int {
	return 2 + c.TreeDepth()
}

// ProductWidth returns the signed bit width of one tap product.
func (c Config) ProductWidth() int {
	return c.DataWidth + c.CoeffWidth
}

// LevelWidth returns the signed bit width of the partial sums at tree
// level l. Level 0 is the product stage; each level above it grows by
// one bit.
func (c Config) LevelWidth(l int) int {
	return c.ProductWidth() + l
}

// OutputWidth returns the signed bit width of the filter output.
func (c Config) OutputWidth() int {
	return c.LevelWidth(c.TreeDepth())
}

// A Lane is one independent filter pipeline inside a device.
type Lane interface {
	// InputPort returns the port that accepts one SampleMsg per tick.
	InputPort() sim.Port

	// OutputPort returns the port that emits one ResultMsg per
	// accepted sample.
	OutputPort() sim.Port

	// SetCollector tells the lane where to send its results.
	SetCollector(port sim.RemotePort)

	// Reset clears all pipeline state of the lane to zero.
	Reset()

	Config() Config
}

// A Device is a filter accelerator holding one or more identical lanes
// that stream independently.
type Device interface {
	LaneCount() int
	Lane(i int) Lane
	Config() Config
}
