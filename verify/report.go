package verify

import (
	"fmt"
	"io"
	"strings"

	"github.com/sarchlab/akita/v4/sim"

	"github.com/keshav011g/FIR-Filter-Hardware-Acc/api"
	"github.com/keshav011g/FIR-Filter-Hardware-Acc/config"
	"github.com/keshav011g/FIR-Filter-Hardware-Acc/fir"
)

// VerificationReport represents a complete verification run.
type VerificationReport struct {
	Config      fir.Config
	TicksRun    int
	Comparisons uint64
	WidthIssues []Issue
	Mismatch    *Mismatch
	Inputs      []int64
	Outputs     []int64
	OK          bool
}

// RunEquivalence streams the samples through a simulated single-lane
// filter device and replays the collected result trace through the
// latency-aligned comparator. The static width audit runs first; a
// config it rejects never reaches the simulator.
func RunEquivalence(cfg fir.Config, samples []int64) *VerificationReport {
	report := &VerificationReport{
		Config: cfg,
		Inputs: samples,
	}

	report.WidthIssues = WidthAudit(cfg)
	for _, issue := range report.WidthIssues {
		if issue.Type == IssueConfig {
			return report
		}
	}

	outputs := runDevice(cfg, samples)
	report.Outputs = outputs
	report.TicksRun = len(outputs)

	comparator, err := NewComparator(cfg)
	if err != nil {
		panic(err.Error())
	}

	for t, x := range samples {
		if err := comparator.Step(x, outputs[t]); err != nil {
			break
		}
	}

	report.Comparisons = comparator.Comparisons()
	report.Mismatch = comparator.Mismatch()
	report.OK = report.Mismatch == nil && len(report.WidthIssues) == 0

	return report
}

// runDevice builds a fresh engine, driver, and device, and runs the
// whole stimulus through them.
func runDevice(cfg fir.Config, samples []int64) []int64 {
	engine := sim.NewSerialEngine()

	driver := api.DriverBuilder{}.
		WithEngine(engine).
		WithFreq(1 * sim.GHz).
		Build("Driver")

	device := config.DeviceBuilder{}.
		WithEngine(engine).
		WithFreq(1 * sim.GHz).
		WithFilter(cfg).
		Build("Device")

	driver.RegisterDevice(device)

	outputs := make([]int64, len(samples))
	driver.FeedIn(samples, 0)
	driver.Collect(outputs, 0)
	driver.Run()

	return outputs
}

// WriteReport writes a formatted report to a writer.
func (r *VerificationReport) WriteReport(w io.Writer) {
	separator := strings.Repeat("=", 60)

	fmt.Fprintln(w, separator)
	fmt.Fprintln(w, "FILTER PIPELINE VERIFICATION REPORT")
	fmt.Fprintln(w, separator)

	fmt.Fprintf(w, "\nTaps: %d  DataWidth: %d  CoeffWidth: %d  Latency: %d\n",
		r.Config.TapCount, r.Config.DataWidth, r.Config.CoeffWidth,
		r.Config.Latency())

	fmt.Fprintln(w, "\n"+separator)
	fmt.Fprintln(w, "STAGE 1: STATIC WIDTH AUDIT")
	fmt.Fprintln(w, separator)

	if len(r.WidthIssues) == 0 {
		fmt.Fprintln(w, "✓ No width issues found!")
	} else {
		fmt.Fprintf(w, "⚠ Found %d issues:\n", len(r.WidthIssues))
		for _, issue := range r.WidthIssues {
			fmt.Fprintf(w, "  [%s L%d] %s\n", issue.Type, issue.Level,
				issue.Message)
		}
	}

	fmt.Fprintln(w, "\n"+separator)
	fmt.Fprintln(w, "STAGE 2: LATENCY-ALIGNED COMPARISON")
	fmt.Fprintln(w, separator)

	fmt.Fprintf(w, "Ticks run: %d  Comparisons: %d\n",
		r.TicksRun, r.Comparisons)

	if r.Mismatch == nil {
		fmt.Fprintln(w, "✓ Pipeline output is bit-exact with the reference model")
	} else {
		fmt.Fprintf(w, "⚠ Mismatch at %s\n", r.Mismatch)
	}

	fmt.Fprintln(w, "\n"+separator)
	if r.OK {
		fmt.Fprintln(w, "VERIFICATION PASSED")
	} else {
		fmt.Fprintln(w, "VERIFICATION FAILED")
	}
	fmt.Fprintln(w, separator)
}
