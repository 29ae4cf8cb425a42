package core

import (
	"math"
	"math/cmplx"
)

const defaultEpsilon = 1e-12

// NearlyEqual reports whether a and b are equal within eps.
// The comparison is absolute for small values and relative for large ones.
func NearlyEqual(a, b, eps float64) bool {
	if eps <= 0 {
		eps = defaultEpsilon
	}

	diff := math.Abs(a - b)
	if diff <= eps {
		return true
	}

	largest := math.Max(math.Abs(a), math.Abs(b))
	if largest == 0 {
		return diff <= eps
	}

	return diff/largest <= eps
}

// NearlyEqualComplex reports whether a and b are equal within eps, using the
// modulus of their difference.
func NearlyEqualComplex(a, b complex128, eps float64) bool {
	if eps <= 0 {
		eps = defaultEpsilon
	}

	diff := cmplx.Abs(a - b)
	if diff <= eps {
		return true
	}

	largest := math.Max(cmplx.Abs(a), cmplx.Abs(b))
	if largest == 0 {
		return diff <= eps
	}

	return diff/largest <= eps
}

// IsFinite reports whether x is neither NaN nor infinite.
func IsFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// IsFiniteComplex reports whether both parts of z are finite.
func IsFiniteComplex(z complex128) bool {
	return IsFinite(real(z)) && IsFinite(imag(z))
}

// Positive reports whether x is a finite value greater than zero.
func Positive(x float64) bool {
	return x > 0 && IsFinite(x)
}
