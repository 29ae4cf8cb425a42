package phase

import "math"

// Standard values for the constants used by [New].
const (
	Planck    = 6.62607015e-34 // J·s
	Boltzmann = 1.380649e-23   // J/K
	Euler     = math.E         // capacity factor, exp(1)
)

// Constants holds the three inputs of the threshold derivation.
type Constants struct {
	Planck    float64
	Boltzmann float64
	Euler     float64
}

// DefaultConstants returns the standard constant set.
func DefaultConstants() Constants {
	return Constants{
		Planck:    Planck,
		Boltzmann: Boltzmann,
		Euler:     Euler,
	}
}

// Threshold returns Λ_T = Planck / (Boltzmann · Euler).
func (c Constants) Threshold() float64 {
	return c.Planck / (c.Boltzmann * c.Euler)
}
