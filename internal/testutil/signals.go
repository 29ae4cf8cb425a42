package testutil

import (
	"math"
	"math/rand"
)

// RepresentativeReals returns the fixed set of real inputs used by round-trip tests.
func RepresentativeReals() []float64 {
	return []float64{0.0, 0.85, 1.0, -3.2, 1e10}
}

// DeterministicComplex generates complex values with both parts drawn
// uniformly from [-amplitude, amplitude) using a fixed seed.
func DeterministicComplex(seed int64, amplitude float64, length int) []complex128 {
	out := make([]complex128, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		re := (rng.Float64()*2 - 1) * amplitude
		im := (rng.Float64()*2 - 1) * amplitude
		out[i] = complex(re, im)
	}
	return out
}

// DeterministicNoise generates white noise with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// UnitCircle returns n points evenly spaced on a circle of the given radius.
func UnitCircle(radius float64, n int) []complex128 {
	out := make([]complex128, n)
	for i := range out {
		theta := 2 * math.Pi * float64(i) / float64(n)
		out[i] = complex(radius*math.Cos(theta), radius*math.Sin(theta))
	}
	return out
}
