package core

// SplitComplex writes the real and imaginary parts of src into re and im.
// It returns the number of elements written, bounded by the shortest slice.
func SplitComplex(re, im []float64, src []complex128) int {
	n := min(len(re), len(im), len(src))
	for i, z := range src[:n] {
		re[i] = real(z)
		im[i] = imag(z)
	}
	return n
}
