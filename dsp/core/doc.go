// Package core holds the small numeric helpers shared by the transform and
// measurement packages: tolerance comparison for real and complex values,
// finiteness checks, and splitting complex slices into
// the separate real and imaginary parts the vector kernels expect.
package core
