package pipeline

import "github.com/keshav011g/FIR-Filter-Hardware-Acc/fir"

// registerFile holds every registered value of the datapath for one
// tick. The datapath keeps two of these and swaps them on commit, so a
// step always reads the previous tick's values while it writes the next
// tick's.
type registerFile struct {
	// history holds the most recent samples, most-recent-first.
	// history[k] entered k ticks before history[0].
	history []int64

	// levels[0] holds the registered tap products; levels[l] for l >= 1
	// holds the registered partial sums of tree level l, half as many
	// elements as the level below. levels[depth] has a single element,
	// the filter output.
	levels [][]int64
}

// newRegisterFile allocates the registers for the given config. Level
// sizes are derived from the tap count: N, N/2, ..., 1.
func newRegisterFile(cfg fir.Config) *registerFile {
	r := &registerFile{
		history: make([]int64, cfg.TapCount),
		levels:  make([][]int64, cfg.TreeDepth()+1),
	}

	for l := 0; l <= cfg.TreeDepth(); l++ {
		r.levels[l] = make([]int64, cfg.TapCount>>l)
	}

	return r
}

// Clear zeroes every register.
func (r *registerFile) Clear() {
	for i := range r.history {
		r.history[i] = 0
	}

	for _, level := range r.levels {
		for i := range level {
			level[i] = 0
		}
	}
}

// output returns the single element of the final tree level.
func (r *registerFile) output() int64 {
	top := r.levels[len(r.levels)-1]
	return top[0]
}
