package qfix

import (
	"golang.org/x/exp/constraints"

	"github.com/pfcm/qfix/internal/wide"
)

// Neg returns the negation of q. Negating the lowest representable
// value truncates back to itself, like any other overflow.
func (q Q[S]) Neg() Q[S] {
	ibits, fbits := widths[S]()
	return Q[S]{roundAndMask(-signExtend(q.num, ibits), ibits, fbits)}
}

// Add returns a+b with the shape of the left operand.
func Add[L, R Shape](a Q[L], b Q[R]) Q[L] {
	li, lf := widths[L]()
	ri, _ := widths[R]()
	return Q[L]{roundAndMask(signExtend(a.num, li)+signExtend(b.num, ri), li, lf)}
}

// Sub returns a-b with the shape of the left operand.
func Sub[L, R Shape](a Q[L], b Q[R]) Q[L] {
	li, lf := widths[L]()
	ri, _ := widths[R]()
	return Q[L]{roundAndMask(signExtend(a.num, li)-signExtend(b.num, ri), li, lf)}
}

// Mul returns a*b in shape P. The exact product is first rounded into
// the product's natural shape, min(I1+I2,32) integer and min(F1+F2,32)
// fractional bits, then converted to P, so naming the natural shape as
// P keeps every surviving bit. Callers always instantiate P explicitly:
//
//	r := qfix.Mul[qfix.S10x10](a, b)
func Mul[P, L, R Shape](a Q[L], b Q[R]) Q[P] {
	li, lf := widths[L]()
	ri, rf := widths[R]()
	sa, sb := signExtend(a.num, li), signExtend(b.num, ri)

	var p int64
	if li+lf <= 32 && ri+rf <= 32 {
		// Each operand compacts to at most 32 significant bits, so a
		// single 64 bit multiply holds the exact product.
		p = (sa >> li) * (sb >> ri)
		if s := li + ri - 32; s >= 0 {
			p <<= s
		} else {
			p >>= -s
		}
	} else {
		hi, lo := wide.Mul(sa, sb)
		p = hi<<32 | int64(lo>>32)
	}

	ni, nf := min(li+ri, 32), min(lf+rf, 32)
	w := roundAndMask(p, ni, nf)
	pi, pf := widths[P]()
	return Q[P]{roundAndMask(signExtend(w, ni), pi, pf)}
}

// Div returns a/b with the shape of the left operand. The dividend is
// widened so no precision is lost before the quotient is rounded back
// into shape; the intermediate quotient truncates toward zero. Div
// panics with ErrDivisionByZero when b is zero.
func Div[L, R Shape](a Q[L], b Q[R]) Q[L] {
	li, lf := widths[L]()
	ri, _ := widths[R]()
	sb := signExtend(b.num, ri)
	if sb == 0 {
		panic(ErrDivisionByZero)
	}
	return Q[L]{roundAndMask(wide.QuoShift32(signExtend(a.num, li), sb), li, lf)}
}

// DivInt divides a by a plain integer, keeping a's shape. It panics
// with ErrDivisionByZero when n is zero.
func DivInt[L Shape, T constraints.Integer](a Q[L], n T) Q[L] {
	li, lf := widths[L]()
	if n == 0 {
		panic(ErrDivisionByZero)
	}
	return Q[L]{roundAndMask(signExtend(a.num, li)/int64(n), li, lf)}
}

// Cmp compares two values of any shapes exactly, returning -1, 0 or 1.
func Cmp[L, R Shape](a Q[L], b Q[R]) int {
	li, _ := widths[L]()
	ri, _ := widths[R]()
	sa, sb := signExtend(a.num, li), signExtend(b.num, ri)
	switch {
	case sa < sb:
		return -1
	case sa > sb:
		return 1
	}
	return 0
}

// Equal reports whether a and b represent exactly the same number,
// regardless of their shapes.
func Equal[L, R Shape](a Q[L], b Q[R]) bool { return Cmp(a, b) == 0 }

// LessThan reports a < b.
func LessThan[L, R Shape](a Q[L], b Q[R]) bool { return Cmp(a, b) < 0 }

// LessOrEqualTo reports a <= b.
func LessOrEqualTo[L, R Shape](a Q[L], b Q[R]) bool { return Cmp(a, b) <= 0 }

// GreaterThan reports a > b.
func GreaterThan[L, R Shape](a Q[L], b Q[R]) bool { return Cmp(a, b) > 0 }

// GreaterOrEqualTo reports a >= b.
func GreaterOrEqualTo[L, R Shape](a Q[L], b Q[R]) bool { return Cmp(a, b) >= 0 }
