package region

import (
	"math"
	"math/rand/v2"
)

// RandomFn draws size random values within [lower, upper]. The core
// package never imports a concrete RNG itself -- every random_* operation
// takes a RandomFn supplied by the caller, so tests can inject a
// deterministic generator and CLI drivers can pick a distribution.
type RandomFn func(size int, lower, upper float64) []float64

// Randoms is a namespace of RandomFn factories mirroring the distributions
// offered by the Python original's Randoms helper.
type Randoms struct{}

// Uniform returns a RandomFn drawing samples from the uniform distribution
// over [lower, upper].
func (Randoms) Uniform() RandomFn {
	return func(size int, lower, upper float64) []float64 {
		out := make([]float64, size)
		for i := range out {
			out[i] = lower + rand.Float64()*(upper-lower)
		}
		return out
	}
}

// Triangular returns a RandomFn drawing samples from the triangular
// distribution over [lower, upper] peaking at mode, a fraction in [0, 1]
// of the interval's length.
func (Randoms) Triangular(mode float64) RandomFn {
	return func(size int, lower, upper float64) []float64 {
		peak := lower + (upper-lower)*mode
		out := make([]float64, size)
		for i := range out {
			out[i] = triangularSample(lower, peak, upper)
		}
		return out
	}
}

func triangularSample(lower, peak, upper float64) float64 {
	u := rand.Float64()
	split := 0.0
	if upper > lower {
		split = (peak - lower) / (upper - lower)
	}
	if u < split {
		return lower + math.Sqrt(u*(upper-lower)*(peak-lower))
	}
	return upper - math.Sqrt((1-u)*(upper-lower)*(upper-peak))
}
