package atof

import (
	"math/bits"

	"github.com/adokky/kodec/integer"
	"github.com/adokky/kodec/tables"
)

// wide is an unsigned 192-bit integer.
type wide struct {
	hi, mid, lo uint64
}

// mulWide returns m (hi 2^64 + lo).
func mulWide(m, hi, lo uint64) wide {
	a1, a0 := bits.Mul64(m, lo)
	b1, b0 := bits.Mul64(m, hi)
	mid, carry := bits.Add64(a1, b0, 0)

	return wide{hi: b1 + carry, mid: mid, lo: a0}
}

func (w wide) bitLen() int {
	switch {
	case w.hi != 0:
		return 128 + bits.Len64(w.hi)
	case w.mid != 0:
		return 64 + bits.Len64(w.mid)
	}

	return bits.Len64(w.lo)
}

func (w wide) word(i int) uint64 {
	switch i {
	case 0:
		return w.lo
	case 1:
		return w.mid
	case 2:
		return w.hi
	}

	return 0
}

// shr returns the low 64 bits of w >> s.
func (w wide) shr(s int) uint64 {
	i, b := s/64, uint(s%64)
	if b == 0 {
		return w.word(i)
	}

	return w.word(i)>>b | w.word(i+1)<<(64-b)
}

// bit returns bit i of w.
func (w wide) bit(i int) uint64 {
	return w.word(i/64) >> uint(i%64) & 1
}

// sticky reports whether any of the n low bits of w is set.
func (w wide) sticky(n int) bool {
	for i := 0; n > 0; i++ {
		m := ^uint64(0)
		if n < 64 {
			m = 1<<uint(n) - 1
		}
		if w.word(i)&m != 0 {
			return true
		}
		n -= 64
	}

	return false
}

// round rounds x 2^r to the format's precision, ties to even, returning
// the significand c and binary exponent e2 of c 2^e2.
func round(f *Format, x wide, r int) (c uint64, e2 int) {
	e2 = x.bitLen() - 1 + r - int(f.MantBits)
	if e2 < f.minE2() {
		e2 = f.minE2()
	}

	s := e2 - r
	c = x.shr(s)
	if x.bit(s-1) == 1 && (x.sticky(s-1) || c&1 == 1) {
		c++
	}

	if c == 1<<(f.MantBits+1) {
		c >>= 1
		e2++
	}

	return c, e2
}

// compose returns the magnitude bits of c 2^e2, saturating to infinity.
func compose(f *Format, c uint64, e2 int) uint64 {
	if c == 1<<(f.MantBits+1) {
		c >>= 1
		e2++
	}

	if c < 1<<f.MantBits {
		return c
	}

	biased := uint64(e2-f.minE2()) + 1
	if biased >= f.maxBiased() {
		return f.infBits()
	}

	return biased<<f.MantBits | c&(1<<f.MantBits-1)
}

// slowBits returns the magnitude bits nearest to the finite d.
func slowBits(d *Digits, f *Format) uint64 {
	k := min(d.N, 19)
	m := d.mantissa(k)
	q := d.Exp - k

	mHi := m
	if d.N > k {
		mHi++
	}

	// (g - 1) 2^r <= 10^q < g 2^r
	hi, lo := tables.G128(q)
	r := tables.Flog2Pow10(q) - 125

	loB, borrow := bits.Sub64(lo, 1, 0)
	lower := mulWide(m, hi-borrow, loB)
	upper := mulWide(mHi, hi, lo)

	c, e2 := round(f, lower, r)
	cu, eu := round(f, upper, r)

	top := compose(f, cu, eu)
	if compose(f, c, e2) == top {
		return top
	}

	return exact(d, f, c, e2, top)
}

// exact walks c up from the lower rounding until the exact value of d is
// below the midpoint to the next candidate, comparing big integers.
//
// With D the digits as an integer and q10 = Exp - N the value is D 10^q10
// and the midpoint above c 2^e2 is (2c + 1) 2^(e2-1). Common powers of two
// and five are cancelled before comparing.
func exact(d *Digits, f *Format, c uint64, e2 int, top uint64) uint64 {
	q10 := d.Exp - d.N
	t := q10 - (e2 - 1)

	a5, m5 := max(q10, 0), max(-q10, 0)
	a2, m2 := max(t, 0), max(-t, 0)

	value := integer.New(0, d.Bytes()).MulByPow52(a5, a2)

	unit := integer.FromUint64(1).MulByPow52(m5, m2)
	step := integer.FromUint64(2).MulByPow52(m5, m2)
	below := integer.FromUint64(2*c).MulByPow52(m5, m2)

	for compose(f, c, e2) < top {
		var cmp int
		if c == 0 {
			cmp = value.CmpPow52(m5, m2)
		} else {
			cmp = value.AddAndCmp(below, unit)
		}

		if cmp < 0 {
			break
		}
		if cmp == 0 {
			c += c & 1
			break
		}

		c++
		below = below.Add(step)
	}

	return compose(f, c, e2)
}
