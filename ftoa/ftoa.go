// Package ftoa renders binary floating point values as the shortest decimal
// text that parses back to the same bits.
//
// The digits are found with the Schubfach method: the value and the two
// boundaries of its rounding interval are scaled by a 126-bit approximation
// of a power of ten with a single multiply-high each, and the shorter of the
// two candidate decimals that fall inside the interval is selected. See
//
//	Giulietti, "The Schubfach way to render doubles"
//	Bouvier & Zimmermann, "Division-Free Binary-to-Decimal Conversion"
//
// Output is plain notation for decimal exponents in (-3, 7] and scientific
// notation with a capital E otherwise:
//
//	0.0  -0.0  1.0  123.456  0.001  1.0E7  1.0E-4  4.9E-324
//
// Non-finite values render as Infinity, -Infinity and NaN.
package ftoa

import (
	"math"
	"math/bits"

	"github.com/adokky/kodec/stream"
	"github.com/adokky/kodec/tables"
)

const (
	// The precision in bits.
	p64 = 53

	// The exponent width in bits.
	w64 = 11

	// The minimum exponent q of c 2^q.
	qMin64 = -1<<(w64-1) - p64 + 3

	// The minimum significand of a normal value.
	cMin64 = 1 << (p64 - 1)

	// Subnormal significands below this are scaled by ten first.
	cTiny64 = 3

	// The maximum number of significant digits.
	h64 = 17

	mask63 = 1<<63 - 1
)

// MaxLen64 is the longest text Put64 produces.
const MaxLen64 = len("-1.2345678901234567E-308")

// Decimal64 returns the shortest decimal f 10^e equal to |v| after rounding
// to the nearest float64. v must be finite and non-zero.
func Decimal64(v float64) (f uint64, e int) {
	b := math.Float64bits(v)
	t := b & (cMin64 - 1)
	bq := int(b>>(p64-1)) & (1<<w64 - 1)

	if bq != 0 {
		mq := -qMin64 + 1 - bq
		c := cMin64 | t

		// Integers are their own shortest decimal.
		if 0 < mq && mq < p64 {
			f := c >> mq
			if f<<mq == c {
				return f, 0
			}
		}

		return toDecimal64(-mq, c, 0)
	}

	if t < cTiny64 {
		return toDecimal64(qMin64, 10*t, -1)
	}

	return toDecimal64(qMin64, t, 0)
}

func toDecimal64(q int, c uint64, dk int) (uint64, int) {
	out := c & 1
	cb := c << 2
	cbr := cb + 2

	var cbl uint64
	var k int
	if c != cMin64 || q == qMin64 {
		cbl = cb - 2
		k = tables.Flog10Pow2(q)
	} else {
		// The interval below a power of two is half as wide.
		cbl = cb - 1
		k = tables.Flog10ThreeQuartersPow2(q)
	}
	h := q + tables.Flog2Pow10(-k) + 2

	g1, g0 := tables.G(-k)

	vb := rop64(g1, g0, cb<<h)
	vbl := rop64(g1, g0, cbl<<h)
	vbr := rop64(g1, g0, cbr<<h)

	s := vb >> 2
	if s >= 100 {
		// sp10 = 10 floor(s / 10)
		hi, _ := bits.Mul64(s, 115_292_150_460_684_698<<4)
		sp10 := 10 * hi
		tp10 := sp10 + 10

		upin := vbl+out <= sp10<<2
		wpin := (tp10<<2)+out <= vbr
		if upin != wpin {
			if upin {
				return sp10, k
			}

			return tp10, k
		}
	}

	t := s + 1
	uin := vbl+out <= s<<2
	win := (t<<2)+out <= vbr
	if uin != win {
		if uin {
			return s, k + dk
		}

		return t, k + dk
	}

	// Both candidates are inside, pick the closer one.
	cmp := int64(vb) - int64(s+t)<<1
	if cmp < 0 || cmp == 0 && s&1 == 0 {
		return s, k + dk
	}

	return t, k + dk
}

// rop64 returns the rounded-to-odd value of cp g 2^-127 where
// g = g1 2^63 + g0.
func rop64(g1, g0, cp uint64) uint64 {
	x1, _ := bits.Mul64(g0, cp)
	y1, y0 := bits.Mul64(g1, cp)
	z := y0>>1 + x1
	vbp := y1 + z>>63

	return vbp | (z&mask63+mask63)>>63
}

// format64 writes v into buf and returns the length.
func format64(buf *[MaxLen64]byte, v float64) int {
	b := math.Float64bits(v)

	switch {
	case math.IsNaN(v):
		return copy(buf[:], "NaN")
	case math.IsInf(v, 1):
		return copy(buf[:], "Infinity")
	case math.IsInf(v, -1):
		return copy(buf[:], "-Infinity")
	}

	i := 0
	if b>>63 != 0 {
		buf[0] = '-'
		i++
	}

	if b<<1 == 0 {
		return i + copy(buf[i:], "0.0")
	}

	f, e := Decimal64(v)

	return i + chars(buf[i:], f, e, h64)
}

// Put64 writes the text of v to w starting at pos and returns the number of
// bytes written, at most MaxLen64.
func Put64[W stream.Writer](w W, pos int, v float64) int {
	var buf [MaxLen64]byte

	n := format64(&buf, v)
	for i := 0; i < n; i++ {
		w.SetByteAt(pos+i, buf[i])
	}

	return n
}

// Append64 appends the text of v to dst.
func Append64(dst []byte, v float64) []byte {
	var buf [MaxLen64]byte

	n := format64(&buf, v)

	return append(dst, buf[:n]...)
}
