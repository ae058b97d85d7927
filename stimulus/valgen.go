// Some helpers using closures to generate stimulus waveforms
package stimulus

import (
	"math/rand"

	"github.com/keshav011g/FIR-Filter-Hardware-Acc/fir"
)

// MakeConstGen yields the same value every tick.
func MakeConstGen(constant int64) func() int64 {
	return func() int64 {
		return constant
	}
}

// MakeImpulseGen yields amplitude on the first tick and zero forever
// after.
func MakeImpulseGen(amplitude int64) func() int64 {
	fired := false
	return func() int64 {
		if fired {
			return 0
		}
		fired = true
		return amplitude
	}
}

// MakeStepGen yields zero for delay ticks, then level forever.
func MakeStepGen(level int64, delay int) func() int64 {
	tick := 0
	return func() int64 {
		tick++
		if tick <= delay {
			return 0
		}
		return level
	}
}

// MakeAlternatingGen yields +magnitude, -magnitude, +magnitude, ...
func MakeAlternatingGen(magnitude int64) func() int64 {
	positive := false
	return func() int64 {
		positive = !positive
		if positive {
			return magnitude
		}
		return -magnitude
	}
}

// MakeRandGen yields uniformly distributed samples over the full range
// of the given signed width.
func MakeRandGen(rng *rand.Rand, width int) func() int64 {
	// Int63n cannot span a 63-bit or wider range; shift a full random
	// word down to the requested width instead.
	if width >= 63 {
		shift := uint(0)
		if width < 64 {
			shift = uint(64 - width)
		}
		return func() int64 {
			return int64(rng.Uint64()) >> shift
		}
	}

	lo := fir.SignedMin(width)
	hi := fir.SignedMax(width)
	return func() int64 {
		return lo + rng.Int63n(hi-lo+1)
	}
}

// MakeExtremeGen yields samples drawn from the corner values of the
// given signed width, for worst-case width exercises.
func MakeExtremeGen(rng *rand.Rand, width int) func() int64 {
	corners := []int64{
		fir.SignedMin(width), fir.SignedMax(width), 0, -1, 1,
	}
	return func() int64 {
		return corners[rng.Intn(len(corners))]
	}
}

// Take drains n values from a generator into a slice.
func Take(gen func() int64, n int) []int64 {
	out := make([]int64, n)
	for i := range out {
		out[i] = gen()
	}
	return out
}
