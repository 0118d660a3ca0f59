// package wide implements the double-word integer routines needed when
// a fixed-point intermediate does not fit in 64 bits.
package wide

import "math/bits"

// Mul returns the full 128 bit product of two signed 64 bit numbers.
func Mul(a, b int64) (hi int64, lo uint64) {
	h, lo := bits.Mul64(uint64(a), uint64(b))
	hi = int64(h)
	// bits.Mul64 is unsigned: a negative operand reads as 2^64 larger
	// than it is, adding the other operand to the high word once.
	if a < 0 {
		hi -= b
	}
	if b < 0 {
		hi -= a
	}
	return hi, lo
}

// QuoShift32 returns the low 64 bits of (a << 32) / b, with the
// quotient truncated toward zero. b must not be zero.
func QuoShift32(a, b int64) int64 {
	ua, ub := uint64(a), uint64(b)
	if a < 0 {
		ua = -ua
	}
	if b < 0 {
		ub = -ub
	}
	// The dividend is at most 96 bits, so the quotient can need up to
	// 96; everything above the low 64 is discarded, matching the
	// narrowing the caller applies anyway.
	qlo, _ := bits.Div64((ua>>32)%ub, ua<<32, ub)
	if (a < 0) != (b < 0) {
		return -int64(qlo)
	}
	return int64(qlo)
}
