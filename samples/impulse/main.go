package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/sarchlab/akita/v4/sim"
	"github.com/tebeka/atexit"

	"github.com/keshav011g/FIR-Filter-Hardware-Acc/api"
	"github.com/keshav011g/FIR-Filter-Hardware-Acc/config"
	"github.com/keshav011g/FIR-Filter-Hardware-Acc/fir"
	"github.com/keshav011g/FIR-Filter-Hardware-Acc/pipeline"
	"github.com/keshav011g/FIR-Filter-Hardware-Acc/stimulus"
)

var filterCfg = fir.Config{
	TapCount:   8,
	DataWidth:  16,
	CoeffWidth: 16,
	Coeffs:     []int64{3, -1, 4, 1, -5, 9, 2, -6},
}

func impulse(driver api.Driver) {
	length := 24
	src := stimulus.Take(stimulus.MakeImpulseGen(100), length)
	dst := make([]int64, length)

	driver.FeedIn(src, 0)
	driver.Collect(dst, 0)

	driver.Run()

	fmt.Println("input: ", src)
	fmt.Println("output:", dst)

	latency := filterCfg.Latency()
	for k, coeff := range filterCfg.Coeffs {
		want := 100 * coeff
		if dst[latency+k] != want {
			fmt.Printf("❌ Impulse test failed: tick %d got %d, want %d\n",
				latency+k, dst[latency+k], want)
			atexit.Exit(1)
		}
	}

	fmt.Println("✅ Impulse response matches the coefficients!")
}

func dumpWarmup() {
	dp, err := pipeline.NewDatapath(filterCfg)
	if err != nil {
		panic(err)
	}

	dp.Step(100)
	for i := 0; i < filterCfg.Latency(); i++ {
		dp.Step(0)
	}

	pipeline.DumpState(os.Stdout, dp)
}

func main() {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: pipeline.LevelTrace,
	})
	slog.SetDefault(slog.New(handler))

	engine := sim.NewSerialEngine()

	driver := api.DriverBuilder{}.
		WithEngine(engine).
		WithFreq(1 * sim.GHz).
		Build("Driver")

	device := config.DeviceBuilder{}.
		WithEngine(engine).
		WithFreq(1 * sim.GHz).
		WithFilter(filterCfg).
		Build("Device")

	driver.RegisterDevice(device)

	impulse(driver)
	dumpWarmup()

	atexit.Exit(0)
}
