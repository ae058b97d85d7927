// Package pipeline implements the pipelined FIR datapath and wraps it
// in a ticking component that streams samples over ports.
//
// The datapath is organized as a delay (history) buffer, a parallel
// multiply stage, and a log2(N)-level pairwise summation tree. Every
// stage is registered: a tick's computation reads only the values
// committed on the previous tick, so one new result leaves the pipeline
// per tick after a fixed warmup of 2+log2(N) ticks.
package pipeline

import (
	"fmt"

	"github.com/keshav011g/FIR-Filter-Hardware-Acc/fir"
)

// Datapath is the synchronous FIR pipeline state. It advances exactly
// once per Step call; a step is all-or-nothing and no mid-step state is
// ever observable.
type Datapath struct {
	cfg fir.Config

	cur *registerFile
	nxt *registerFile

	ticks uint64
}

// NewDatapath builds a datapath for the given config. It fails before
// any state is allocated if the config is invalid.
func NewDatapath(cfg fir.Config) (*Datapath, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid filter config: %w", err)
	}

	return &Datapath{
		cfg: cfg,
		cur: newRegisterFile(cfg),
		nxt: newRegisterFile(cfg),
	}, nil
}

// Config returns the construct-time parameters of the datapath.
func (d *Datapath) Config() fir.Config {
	return d.cfg
}

// Step advances the whole pipeline by one tick: the history buffer
// shifts in the sample, the multiply stage latches products of the
// previous tick's history, and every tree level latches sums of the
// previous tick's level below. All writes go to the shadow register
// file, which is swapped in at the end, so every stage sees a
// consistent previous-tick snapshot.
func (d *Datapath) Step(sample int64) {
	if !fir.FitsSigned(sample, d.cfg.DataWidth) {
		panic(fmt.Sprintf(
			"sample %d does not fit in %d signed bits", sample, d.cfg.DataWidth))
	}

	prev := d.cur
	next := d.nxt

	next.history[0] = sample
	copy(next.history[1:], prev.history[:d.cfg.TapCount-1])

	for k := range next.levels[0] {
		p := prev.history[k] * d.cfg.Coeffs[k]
		mustFit(p, d.cfg.ProductWidth(), 0, k)
		next.levels[0][k] = p
	}

	for l := 1; l <= d.cfg.TreeDepth(); l++ {
		for i := range next.levels[l] {
			s := prev.levels[l-1][2*i] + prev.levels[l-1][2*i+1]
			mustFit(s, d.cfg.LevelWidth(l), l, i)
			next.levels[l][i] = s
		}
	}

	d.cur, d.nxt = next, prev
	d.ticks++
}

// Reset zeroes every register immediately, discarding in-flight
// pipeline contents, and restarts the tick count.
func (d *Datapath) Reset() {
	d.cur.Clear()
	d.nxt.Clear()
	d.ticks = 0
}

// Output returns the registered value of the final tree level. For the
// first Latency() ticks after reset this is the meaningless post-reset
// zero.
func (d *Datapath) Output() int64 {
	return d.cur.output()
}

// Ticks returns the number of steps taken since the last reset.
func (d *Datapath) Ticks() uint64 {
	return d.ticks
}

// History returns a copy of the registered history buffer,
// most-recent-first.
func (d *Datapath) History() []int64 {
	out := make([]int64, len(d.cur.history))
	copy(out, d.cur.history)
	return out
}

// Level returns a copy of the registered values at tree level l. Level
// 0 is the product stage.
func (d *Datapath) Level(l int) []int64 {
	out := make([]int64, len(d.cur.levels[l]))
	copy(out, d.cur.levels[l])
	return out
}

// mustFit guards the width-growth invariant: with in-range samples and
// coefficients, level l never needs more than data+coeff+l bits.
func mustFit(v int64, width, level, index int) {
	if !fir.FitsSigned(v, width) {
		panic(fmt.Sprintf(
			"level %d element %d = %d exceeds %d signed bits",
			level, index, v, width))
	}
}
