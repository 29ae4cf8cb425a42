package phase

import (
	"math"
	"math/cmplx"
)

// Transform rotates values through the fixed phase factor e^{iπ} and carries
// the derived threshold Λ_T. The zero value is not usable; construct with [New].
type Transform struct {
	consts    Constants
	threshold float64
	factor    complex128
}

// New returns a Transform for the standard constants, adjusted by opts.
func New(opts ...Option) *Transform {
	c := ApplyOptions(opts...)
	return &Transform{
		consts:    c,
		threshold: c.Threshold(),
		factor:    cmplx.Exp(complex(0, math.Pi)),
	}
}

// Threshold returns Λ_T, fixed at construction.
func (t *Transform) Threshold() float64 {
	return t.threshold
}

// Constants returns a copy of the constants the threshold was derived from.
func (t *Transform) Constants() Constants {
	return t.consts
}

// PhaseFactor returns the rotation factor applied by both shift directions.
func (t *Transform) PhaseFactor() complex128 {
	return t.factor
}

// ShiftForward rotates z by π. The magnitude is preserved.
func (t *Transform) ShiftForward(z complex128) complex128 {
	return z * t.factor
}

// ShiftForwardReal promotes x to a complex value and rotates it by π.
func (t *Transform) ShiftForwardReal(x float64) complex128 {
	return t.ShiftForward(complex(x, 0))
}

// ShiftBackward rotates z by π a second time and returns the real part.
// The imaginary part of the rotated value is dropped.
func (t *Transform) ShiftBackward(z complex128) float64 {
	return real(z * t.factor)
}

// RoundTrip shifts x forward and back. The result equals x up to the
// rounding of the phase factor.
func (t *Transform) RoundTrip(x float64) float64 {
	return t.ShiftBackward(t.ShiftForwardReal(x))
}

// ThresholdReached reports whether the product τ·T meets Λ_T.
// NaN never reaches the threshold.
func (t *Transform) ThresholdReached(tauT float64) bool {
	return tauT >= t.threshold
}
