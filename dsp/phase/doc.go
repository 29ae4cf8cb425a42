// Package phase implements the phase-transition transform pair and its
// derived threshold constant.
//
// A [Transform] fixes three physical constants (Planck, Boltzmann and the
// Euler capacity factor) at construction and derives the threshold
// Λ_T = h / (k_B · e), exposed through [Transform.Threshold].
//
// [Transform.ShiftForward] rotates a value by the phase factor e^{iπ}, moving
// it from the real representation into the complex one. [Transform.ShiftBackward]
// applies the same rotation again, completing the 2π cycle, and keeps only
// the real part of the result. Any imaginary component present at that point
// is discarded rather than reported.
//
// The phase factor is computed with [math/cmplx.Exp], so it is -1 + 1.22e-16i
// rather than the exact literal -1; round trips are exact only up to that
// rounding.
//
// A Transform is immutable after [New] returns and is safe for concurrent use.
package phase
