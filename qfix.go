// package qfix does signed binary fixed-point arithmetic with up to 32
// integer and 32 fractional bits, declared per value at the type level.
//
// A Q[S] stores one number in a single int64 interpreted as Q(32,32):
// the high 32 bits hold the integer part and the low 32 bits hold the
// fraction, left justified. The shape S only constrains which of those
// bits are meaningful, so values of different shapes combine correctly
// in a single expression; narrowing rounds to nearest and truncates on
// overflow, widening sign-extends.
//
// There is no operator overloading, so compound assignment is plain
// reassignment: a = qfix.Add(a, b).
package qfix

//go:generate go run github.com/pfcm/qfix/cmd/gen-shapes -dir .

import (
	"errors"
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

var (
	// ErrInvalidWidth is the panic value raised when a Shape declares
	// widths outside [0,32], or fewer than 1 significant bit in total.
	ErrInvalidWidth = errors.New("qfix: invalid width")
	// ErrDivisionByZero is the panic value raised by Div and DivInt
	// when the divisor is zero.
	ErrDivisionByZero = errors.New("qfix: division by zero")
)

// Shape declares the wordlength of a Q at the type level. A shape is a
// zero-size marker type:
//
//	type S5x3 struct{}
//
//	func (S5x3) Bits() (int, int) { return 5, 3 }
//
// Both widths must be in [0,32] and at least one bit must be declared.
// shapes.go predeclares the common ones.
type Shape interface {
	// Bits returns the number of integer and fractional bits.
	Bits() (ibits, fbits int)
}

// Q is a signed fixed-point number with the wordlength declared by S.
// The zero value represents 0.
type Q[S Shape] struct {
	num int64
}

// widths resolves and validates the widths declared by S.
func widths[S Shape]() (ibits, fbits int) {
	var s S
	ibits, fbits = s.Bits()
	if ibits < 0 || ibits > 32 || fbits < 0 || fbits > 32 || ibits+fbits < 1 {
		panic(fmt.Errorf("%w: %d integer, %d fractional bits", ErrInvalidWidth, ibits, fbits))
	}
	return ibits, fbits
}

// maskFor returns the mask keeping exactly the significant bits of a
// shape: bit 32-fbits through bit 31+ibits inclusive.
func maskFor(ibits, fbits int) int64 {
	hi := uint64(1)<<(32+ibits) - 1 // all ones when ibits == 32
	lo := uint64(1)<<(32-fbits) - 1
	return int64(hi &^ lo)
}

// signExtend replicates the sign bit of a word with ibits integer bits
// up through bit 63, recovering an ordinary two's complement value. It
// branches on the sign bit rather than shifting, so it does not care
// how the word was produced.
func signExtend(num int64, ibits int) int64 {
	if ibits == 32 {
		return num
	}
	if num&(int64(1)<<(31+ibits)) != 0 {
		return num | ^(int64(1)<<(32+ibits) - 1)
	}
	return num
}

// roundAndMask rounds a full-width word to the nearest representable
// value of the given widths and truncates it to them. When fbits is 32
// there is no rounding to do and excess precision truncates toward
// negative infinity. Every constructor and operator funnels its result
// through here.
func roundAndMask(num int64, ibits, fbits int) int64 {
	if fbits < 32 {
		num += int64(1) << (31 - fbits)
	}
	if Overflow != nil {
		reportOverflow(num, ibits, fbits)
	}
	return num & maskFor(ibits, fbits)
}

// format renders a sign-extended word as the canonical
// "<int> + <frac>/<2^fbits>" form. The integer part is the floor of the
// value, the numerator counts up from it.
func format(num int64, fbits int) string {
	return fmt.Sprintf("%d + %d/%d", num>>32, uint64(uint32(num))>>(32-fbits), int64(1)<<fbits)
}

// FromFloat converts a floating point number to the nearest Q[S],
// rounding halves away from zero. Values outside the shape's range
// truncate like every other operation.
func FromFloat[S Shape, T constraints.Float](a T) Q[S] {
	ibits, fbits := widths[S]()
	scaled := int64(math.Round(float64(a) * (1 << 32)))
	return Q[S]{roundAndMask(scaled, ibits, fbits)}
}

// FromInt converts an integer to a Q[S].
func FromInt[S Shape, T constraints.Integer](n T) Q[S] {
	ibits, fbits := widths[S]()
	return Q[S]{roundAndMask(int64(n)<<32, ibits, fbits)}
}

// FromParts builds a Q[S] from a floored integer part and a fractional
// numerator over 2^fbits, so FromParts(q.Int(), q.Frac()) == q for any
// q. Numerator bits beyond the shape's fractional width are ignored.
func FromParts[S Shape](integer int32, numerator uint32) Q[S] {
	ibits, fbits := widths[S]()
	frac := (uint64(numerator) & (uint64(1)<<fbits - 1)) << (32 - fbits)
	return Q[S]{roundAndMask(int64(integer)<<32|int64(frac), ibits, fbits)}
}

// Convert changes the shape of a value, rounding to the nearest
// representable value of the destination. Only bits outside the
// destination's significant range are lost.
func Convert[To, From Shape](v Q[From]) Q[To] {
	fi, _ := widths[From]()
	ti, tf := widths[To]()
	return Q[To]{roundAndMask(signExtend(v.num, fi), ti, tf)}
}

// Float converts a value to floating point. This is lossy once the
// total significant bits exceed the mantissa of T.
func Float[T constraints.Float, S Shape](q Q[S]) T {
	ibits, _ := widths[S]()
	return T(float64(signExtend(q.num, ibits)) / (1 << 32))
}

// IntBits returns the declared number of integer bits.
func (q Q[S]) IntBits() int {
	ibits, _ := widths[S]()
	return ibits
}

// FracBits returns the declared number of fractional bits.
func (q Q[S]) FracBits() int {
	_, fbits := widths[S]()
	return fbits
}

// Int returns the integer part, which is the floor of the value: the
// fractional numerator always counts upward from it.
func (q Q[S]) Int() int32 {
	ibits, _ := widths[S]()
	return int32(signExtend(q.num, ibits) >> 32)
}

// Frac returns the fractional numerator over 2^FracBits.
func (q Q[S]) Frac() uint32 {
	_, fbits := widths[S]()
	return uint32(uint64(uint32(q.num)) >> (32 - fbits))
}

func (q Q[S]) String() string {
	ibits, fbits := widths[S]()
	return format(signExtend(q.num, ibits), fbits)
}
