package main

import (
	"log/slog"
	"math/rand"
	"os"

	"github.com/tebeka/atexit"

	"github.com/keshav011g/FIR-Filter-Hardware-Acc/fir"
	"github.com/keshav011g/FIR-Filter-Hardware-Acc/pipeline"
	"github.com/keshav011g/FIR-Filter-Hardware-Acc/stimulus"
	"github.com/keshav011g/FIR-Filter-Hardware-Acc/verify"
)

func main() {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: pipeline.LevelTrace,
	})
	slog.SetDefault(slog.New(handler))

	cfg := fir.Config{
		TapCount:   16,
		DataWidth:  12,
		CoeffWidth: 10,
		Coeffs: []int64{
			-7, 12, 33, -51, 80, 127, 200, 255,
			255, 200, 127, 80, -51, 33, 12, -7,
		},
	}

	rng := rand.New(rand.NewSource(42))
	samples := stimulus.Take(stimulus.MakeRandGen(rng, cfg.DataWidth), 512)

	report := verify.RunEquivalence(cfg, samples)
	report.WriteReport(os.Stdout)

	if !report.OK {
		atexit.Exit(1)
	}
	atexit.Exit(0)
}
