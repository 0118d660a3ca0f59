package qfix

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"testing"
)

type (
	s4x4   struct{}
	s17x17 struct{}
	s20x12 struct{}
)

func (s4x4) Bits() (int, int)   { return 4, 4 }
func (s17x17) Bits() (int, int) { return 17, 17 }
func (s20x12) Bits() (int, int) { return 20, 12 }

func TestAdd(t *testing.T) {
	for _, c := range []struct {
		got  fmt.Stringer
		want string
	}{
		{Add(FromFloat[S10x10](3.25), FromFloat[s11x11](7.50)), "10 + 768/1024"},
		{Add(FromFloat[s11x11](7.50), FromFloat[S10x10](3.25)), "10 + 1536/2048"},
		// Overflow truncates, wrapping around the shape's range.
		{Add(FromFloat[s4x4](7.5), FromFloat[s4x4](7.25)), "-2 + 12/16"},
		{Add(FromFloat[s4x4](-7.5), FromFloat[s4x4](-7.25)), "1 + 4/16"},
	} {
		if got := c.got.String(); got != c.want {
			t.Errorf("got %s, want %s", got, c.want)
		}
	}
}

func TestSubSelfIsZero(t *testing.T) {
	rng := rand.New(rand.NewSource(6))
	zero := Q[S10x10]{}
	for i := 0; i < 10000; i++ {
		x := FromParts[S10x10](int32(rng.Uint32())%(1<<9), rng.Uint32())
		if d := Sub(x, x); !Equal(d, zero) {
			t.Fatalf("%s - itself = %s, want 0", x, d)
		}
		if s := Add(x, x.Neg()); !Equal(s, zero) {
			t.Fatalf("%s + its negation = %s, want 0", x, s)
		}
	}
}

func TestNeg(t *testing.T) {
	for _, c := range []struct {
		got  fmt.Stringer
		want string
	}{
		{FromFloat[S10x10](3.25).Neg(), "-4 + 768/1024"},
		{FromFloat[S10x10](-3.25).Neg(), "3 + 256/1024"},
		// The lowest value has no positive counterpart and wraps.
		{FromInt[s4x4](-8).Neg(), "-8 + 0/16"},
	} {
		if got := c.got.String(); got != c.want {
			t.Errorf("got %s, want %s", got, c.want)
		}
	}
}

func TestMul(t *testing.T) {
	fixA := FromFloat[S10x10](-7.02)
	fixB := FromFloat[S10x10](1.925)
	for _, c := range []struct {
		got  fmt.Stringer
		want string
	}{
		{Mul[S10x10](fixB, fixA), "-14 + 501/1024"},
		{Mul[S10x10](fixA, fixB), "-14 + 501/1024"},
		// At full product width nothing is rounded away.
		{Mul[S20x20](fixA, fixB), "-14 + 512516/1048576"},
	} {
		if got := c.got.String(); got != c.want {
			t.Errorf("got %s, want %s", got, c.want)
		}
	}
}

func TestMulIntegerSaturation(t *testing.T) {
	// 300000.25^2 = 90000150000.0625 needs 37 integer bits; the
	// product's integer width saturates at 32 so it truncates to
	// 90000150000.0625 - 21*2^32 (checked against exact arithmetic).
	a := FromFloat[s20x12](300000.25)
	got := Mul[S32x32](a, a)
	if want := "-194163216 + 268435456/4294967296"; got.String() != want {
		t.Errorf("got %s, want %s", got, want)
	}
	want := math.Mod(90000150000.0625, 1<<32) - (1 << 32)
	if f := Float[float64](got); f != want {
		t.Errorf("got %v, want %v", f, want)
	}
}

func TestMulTruncatesAtFullFracWidth(t *testing.T) {
	ulp := FromParts[S0x32](0, 1)
	for _, c := range []struct {
		got  fmt.Stringer
		want string
	}{
		// -2^-64 truncates toward negative infinity,
		{Mul[S0x32](ulp.Neg(), ulp), "-1 + 4294967295/4294967296"},
		// while +2^-64 truncates to zero.
		{Mul[S0x32](ulp, ulp), "0 + 0/4294967296"},
	} {
		if got := c.got.String(); got != c.want {
			t.Errorf("got %s, want %s", got, c.want)
		}
	}
}

func TestMulPathsAgree(t *testing.T) {
	// Operands representable at (16,16) take the single-word path;
	// the same values widened to (17,17) take the double-word path.
	// The results must match bit for bit.
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 10000; i++ {
		a := FromParts[S16x16](int32(rng.Uint32())%(1<<15), rng.Uint32())
		b := FromParts[S16x16](int32(rng.Uint32())%(1<<15), rng.Uint32())
		fast := Mul[S32x32](a, b)
		slow := Mul[S32x32](Convert[s17x17](a), Convert[s17x17](b))
		if fast != slow {
			t.Fatalf("%s * %s: fast path %s, slow path %s", a, b, fast, slow)
		}
	}
}

func TestDiv(t *testing.T) {
	got := Div(FromFloat[s13x22](7.60), FromFloat[s14x17](3.40))
	if want := "2 + 986891/4194304"; got.String() != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestDivInt(t *testing.T) {
	for _, c := range []struct {
		got  fmt.Stringer
		want string
	}{
		{DivInt(FromFloat[S10x10](7.5), 2), "3 + 768/1024"},
		{DivInt(FromFloat[S10x10](-7.5), 2), "-4 + 256/1024"},
		{DivInt(FromFloat[S10x10](3.25), 3), "1 + 85/1024"},
	} {
		if got := c.got.String(); got != c.want {
			t.Errorf("got %s, want %s", got, c.want)
		}
	}
}

func TestDivisionByZero(t *testing.T) {
	for _, c := range []struct {
		name string
		f    func()
	}{
		{"fixed divisor", func() { Div(FromFloat[S10x10](1.0), Q[s11x11]{}) }},
		{"int divisor", func() { DivInt(FromFloat[S10x10](1.0), 0) }},
	} {
		t.Run(c.name, func(t *testing.T) {
			defer func() {
				err, ok := recover().(error)
				if !ok || !errors.Is(err, ErrDivisionByZero) {
					t.Errorf("panic = %v, want ErrDivisionByZero", err)
				}
			}()
			c.f()
		})
	}
}

func TestCompare(t *testing.T) {
	a := FromFloat[S10x10](3.25)
	b := FromFloat[s13x22](3.25)
	c := FromFloat[s11x11](-0.5)
	if !Equal(a, b) {
		t.Errorf("%s != %s across widths", a, b)
	}
	if Cmp(a, b) != 0 {
		t.Errorf("Cmp(%s, %s) = %d, want 0", a, b, Cmp(a, b))
	}
	if !LessThan(c, a) || !GreaterThan(a, c) {
		t.Errorf("ordering of %s and %s is wrong", c, a)
	}
	if !LessOrEqualTo(a, b) || !GreaterOrEqualTo(a, b) {
		t.Errorf("%s and %s should compare equal", a, b)
	}
	if Equal(a, c) {
		t.Errorf("%s == %s, want not equal", a, c)
	}
}

func TestOverflowHook(t *testing.T) {
	var events []OverflowEvent
	Overflow = func(e OverflowEvent) { events = append(events, e) }
	defer func() { Overflow = nil }()

	Add(FromFloat[s4x4](7.5), FromFloat[s4x4](7.25))
	Add(FromFloat[s4x4](-7.5), FromFloat[s4x4](-7.25))
	Add(FromFloat[s4x4](1.0), FromFloat[s4x4](2.0))

	want := []OverflowEvent{
		{Above, "14 + 12/16", "-2 + 12/16"},
		{Below, "-15 + 4/16", "1 + 4/16"},
	}
	if len(events) != len(want) {
		t.Fatalf("got %d events, want %d", len(events), len(want))
	}
	for i, e := range events {
		if e != want[i] {
			t.Errorf("event %d = %+v, want %+v", i, e, want[i])
		}
	}
}

func TestLeibnizPi(t *testing.T) {
	if testing.Short() {
		t.Skip("accumulates ten million terms")
	}
	// Terms are built from the positive 4/(2k+1) and alternately added
	// and subtracted so their rounding biases cancel pairwise. The
	// first term, 4, wraps to -4, but wrapping is arithmetic modulo
	// 2^3, and pi is representable, so the accumulation still lands on
	// it.
	var acc Q3x32
	for k := 0; k < 10_000_000; k++ {
		term := FromFloat[S3x30](4.0 / float64(2*k+1))
		if k%2 == 0 {
			acc = Add(acc, term)
		} else {
			acc = Sub(acc, term)
		}
	}
	if got := Float[float64](acc); math.Abs(got-math.Pi) > 1e-6 {
		t.Errorf("accumulated %v, want pi within 1e-6", got)
	}
}
