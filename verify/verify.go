// Package verify provides the verification harness for the filter
// pipeline.
//
// Verification runs in two complementary stages:
//
// 1. Static width audit (widthcheck.go): proves from the configuration
// alone that no register level can overflow its allotted width. Tap
// products need data+coeff bits; every pairwise summation level adds
// one bit, so the accumulator needs data+coeff+log2(N) bits in total.
//
// 2. Reference comparison (refmodel.go, comparator.go): a
// non-pipelined model recomputes the convolution from its own history
// in a single step per tick. Because the pipeline spreads the same
// computation over 2+log2(N) register stages, the comparator delays
// the reference output through a latency-deep shift register and then
// demands bit-exact equality on every tick. A single mismatch is
// fatal: it proves either the pipeline or the model is mis-specified,
// so the comparator halts and refuses further work.
//
// RunEquivalence (report.go) drives both stages against a real
// simulated device: it builds an engine, a driver and a filter device,
// streams a stimulus through it, and replays the collected result
// trace through the comparator.
package verify

import "fmt"

// Mismatch records the first disagreement between the pipeline and the
// reference model.
type Mismatch struct {
	// Tick is the 0-based tick index the disagreement was observed on.
	Tick uint64

	// Got is the pipeline output at that tick.
	Got int64

	// Want is the reference model output that entered the aligner
	// Latency ticks earlier.
	Want int64
}

func (m *Mismatch) String() string {
	return fmt.Sprintf("tick %d: pipeline output %d, reference %d",
		m.Tick, m.Got, m.Want)
}
