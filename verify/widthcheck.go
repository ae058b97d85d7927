package verify

import (
	"fmt"

	"github.com/keshav011g/FIR-Filter-Hardware-Acc/fir"
)

// IssueType categorizes audit issues.
type IssueType string

const (
	// IssueConfig flags a configuration that must not be built.
	IssueConfig IssueType = "CONFIG"

	// IssueWidth flags a register level whose allotted width cannot
	// hold its worst-case value.
	IssueWidth IssueType = "WIDTH"
)

// Issue represents a single audit finding.
type Issue struct {
	Type    IssueType
	Level   int // tree level, -1 if not applicable
	Message string
}

// WidthAudit statically checks the width growth of a config:
// for every level it derives the worst-case magnitude reachable from
// full-scale inputs and the actual coefficients, and confirms the
// level's width holds it. A clean run proves the datapath can never
// overflow for in-range samples.
func WidthAudit(cfg fir.Config) []Issue {
	if err := cfg.Validate(); err != nil {
		return []Issue{{Type: IssueConfig, Level: -1, Message: err.Error()}}
	}

	var issues []Issue

	// Worst-case product magnitude per tap, from full-scale samples
	// against the actual coefficient.
	worst := make([]int64, cfg.TapCount)
	for k, coeff := range cfg.Coeffs {
		worst[k] = maxProductMagnitude(coeff, cfg.DataWidth)
		if worst[k] > fir.SignedMax(cfg.ProductWidth()) {
			issues = append(issues, Issue{
				Type:  IssueWidth,
				Level: 0,
				Message: fmt.Sprintf(
					"tap %d worst-case product %d exceeds %d signed bits",
					k, worst[k], cfg.ProductWidth()),
			})
		}
	}

	// Fold the worst cases pairwise up the tree, mirroring the
	// datapath's index-adjacent pairing.
	for l := 1; l <= cfg.TreeDepth(); l++ {
		folded := make([]int64, len(worst)/2)
		for i := range folded {
			folded[i] = worst[2*i] + worst[2*i+1]
			if folded[i] > fir.SignedMax(cfg.LevelWidth(l)) {
				issues = append(issues, Issue{
					Type:  IssueWidth,
					Level: l,
					Message: fmt.Sprintf(
						"level %d element %d worst-case sum %d exceeds %d signed bits",
						l, i, folded[i], cfg.LevelWidth(l)),
				})
			}
		}
		worst = folded
	}

	return issues
}

// maxProductMagnitude returns the largest |sample*coeff| over all
// samples representable in the given signed width.
func maxProductMagnitude(coeff int64, dataWidth int) int64 {
	mag := coeff
	if mag < 0 {
		mag = -mag
	}

	lo := fir.SignedMin(dataWidth)
	if lo < 0 {
		lo = -lo
	}

	return mag * lo
}
