package phase

import "errors"

// ErrMismatchedLength is returned by the block operations when dst and src differ in length.
var ErrMismatchedLength = errors.New("phase: dst and src must have same length")

// ShiftForwardBlock writes ShiftForward(src[i]) into dst[i].
func (t *Transform) ShiftForwardBlock(dst, src []complex128) error {
	if len(dst) != len(src) {
		return ErrMismatchedLength
	}
	for i, z := range src {
		dst[i] = z * t.factor
	}
	return nil
}

// ShiftForwardRealBlock writes ShiftForwardReal(src[i]) into dst[i].
func (t *Transform) ShiftForwardRealBlock(dst []complex128, src []float64) error {
	if len(dst) != len(src) {
		return ErrMismatchedLength
	}
	for i, x := range src {
		dst[i] = complex(x, 0) * t.factor
	}
	return nil
}

// ShiftForwardInPlace rotates every element of buf by π.
func (t *Transform) ShiftForwardInPlace(buf []complex128) {
	for i := range buf {
		buf[i] *= t.factor
	}
}

// ShiftBackwardBlock writes ShiftBackward(src[i]) into dst[i].
func (t *Transform) ShiftBackwardBlock(dst []float64, src []complex128) error {
	if len(dst) != len(src) {
		return ErrMismatchedLength
	}
	for i, z := range src {
		dst[i] = real(z * t.factor)
	}
	return nil
}
