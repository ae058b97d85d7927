package verify

import (
	"fmt"

	"github.com/keshav011g/FIR-Filter-Hardware-Acc/fir"
)

// ReferenceModel computes the convolution without pipelining: each
// step shifts the sample into its own history copy and sums all tap
// products at once. The sum loops over the configured tap count, so
// the model tracks any valid filter size.
type ReferenceModel struct {
	cfg     fir.Config
	history []int64
}

// NewReferenceModel builds a reference model for the given config.
func NewReferenceModel(cfg fir.Config) (*ReferenceModel, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid filter config: %w", err)
	}

	return &ReferenceModel{
		cfg:     cfg,
		history: make([]int64, cfg.TapCount),
	}, nil
}

// Step shifts the sample into the model's history and returns the
// full-precision convolution of the updated history in one step.
func (m *ReferenceModel) Step(sample int64) int64 {
	if !fir.FitsSigned(sample, m.cfg.DataWidth) {
		panic(fmt.Sprintf(
			"sample %d does not fit in %d signed bits", sample, m.cfg.DataWidth))
	}

	copy(m.history[1:], m.history[:m.cfg.TapCount-1])
	m.history[0] = sample

	var acc int64
	for k := 0; k < m.cfg.TapCount; k++ {
		acc += m.history[k] * m.cfg.Coeffs[k]
	}

	return acc
}

// Reset zeroes the model's history.
func (m *ReferenceModel) Reset() {
	for i := range m.history {
		m.history[i] = 0
	}
}
