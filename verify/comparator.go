package verify

import (
	"fmt"

	"github.com/keshav011g/FIR-Filter-Hardware-Acc/fir"
)

// State is the comparator's phase.
type State int

const (
	// StateWarmup covers the first Latency ticks after reset; the
	// aligner is still filling and no comparison is possible.
	StateWarmup State = iota

	// StateActive means the comparator checks every tick.
	StateActive

	// StateHalted means a mismatch was found. There is no recovery
	// transition out of this state.
	StateHalted
)

func (s State) String() string {
	switch s {
	case StateWarmup:
		return "Warmup"
	case StateActive:
		return "Active"
	case StateHalted:
		return "Halted"
	default:
		panic("invalid comparator state")
	}
}

// Comparator cross-checks the pipeline's output stream against the
// reference model. It delays the reference outputs through a shift
// register as deep as the pipeline latency, so both computations of
// the same input history meet on the same tick.
type Comparator struct {
	cfg fir.Config
	ref *ReferenceModel

	// aligned holds reference outputs in flight; aligned[0] entered
	// the shift register earliest.
	aligned []int64
	filled  int

	tick     uint64
	state    State
	mismatch *Mismatch
}

// NewComparator builds a comparator for the given config.
func NewComparator(cfg fir.Config) (*Comparator, error) {
	ref, err := NewReferenceModel(cfg)
	if err != nil {
		return nil, err
	}

	return &Comparator{
		cfg:     cfg,
		ref:     ref,
		aligned: make([]int64, cfg.Latency()),
	}, nil
}

// Step consumes one tick of the run: the input sample accepted this
// tick and the pipeline output observed this tick. It returns an error
// on the first mismatch, after which the comparator is halted and
// every further call fails.
func (c *Comparator) Step(sample, pipelineOut int64) error {
	if c.state == StateHalted {
		return fmt.Errorf("comparator halted after mismatch at %s", c.mismatch)
	}

	ref := c.ref.Step(sample)

	if c.filled < len(c.aligned) {
		c.aligned[c.filled] = ref
		c.filled++
		c.tick++
		return nil
	}

	c.state = StateActive

	want := c.aligned[0]
	if pipelineOut != want {
		c.mismatch = &Mismatch{Tick: c.tick, Got: pipelineOut, Want: want}
		c.state = StateHalted
		return fmt.Errorf("pipeline diverges from reference model at %s",
			c.mismatch)
	}

	copy(c.aligned, c.aligned[1:])
	c.aligned[len(c.aligned)-1] = ref
	c.tick++

	return nil
}

// State returns the comparator's phase.
func (c *Comparator) State() State {
	return c.state
}

// Mismatch returns the recorded disagreement, or nil if none occurred.
func (c *Comparator) Mismatch() *Mismatch {
	return c.mismatch
}

// Comparisons returns how many ticks have actually been checked.
func (c *Comparator) Comparisons() uint64 {
	if c.tick < uint64(len(c.aligned)) {
		return 0
	}
	checked := c.tick - uint64(len(c.aligned))
	if c.state == StateHalted {
		checked++
	}
	return checked
}
