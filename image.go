package qfix

import "golang.org/x/image/math/fixed"

// ToInt26_6 converts a value to the 26.6 format used by
// golang.org/x/image, truncating any extra fractional precision toward
// negative infinity.
func ToInt26_6[S Shape](q Q[S]) fixed.Int26_6 {
	ibits, _ := widths[S]()
	return fixed.Int26_6(signExtend(q.num, ibits) >> 26)
}

// FromInt26_6 builds a Q[S] from a 26.6 fixed-point value.
func FromInt26_6[S Shape](v fixed.Int26_6) Q[S] {
	ibits, fbits := widths[S]()
	return Q[S]{roundAndMask(int64(v) << 26, ibits, fbits)}
}
