package ftoa

import (
	"math"
	"math/bits"

	"github.com/adokky/kodec/stream"
	"github.com/adokky/kodec/tables"
)

const (
	p32     = 24
	w32     = 8
	qMin32  = -1<<(w32-1) - p32 + 3
	cMin32  = 1 << (p32 - 1)
	cTiny32 = 8
	h32     = 9
)

// MaxLen32 is the longest text Put32 produces.
const MaxLen32 = len("-1.23456789E-38")

// Decimal32 returns the shortest decimal f 10^e equal to |v| after rounding
// to the nearest float32. v must be finite and non-zero.
func Decimal32(v float32) (f uint64, e int) {
	b := math.Float32bits(v)
	t := uint64(b & (cMin32 - 1))
	bq := int(b>>(p32-1)) & (1<<w32 - 1)

	if bq != 0 {
		mq := -qMin32 + 1 - bq
		c := cMin32 | t

		if 0 < mq && mq < p32 {
			f := c >> mq
			if f<<mq == c {
				return f, 0
			}
		}

		return toDecimal32(-mq, c, 0)
	}

	if t < cTiny32 {
		return toDecimal32(qMin32, 10*t, -1)
	}

	return toDecimal32(qMin32, t, 0)
}

func toDecimal32(q int, c uint64, dk int) (uint64, int) {
	out := c & 1
	cb := c << 2
	cbr := cb + 2

	var cbl uint64
	var k int
	if c != cMin32 || q == qMin32 {
		cbl = cb - 2
		k = tables.Flog10Pow2(q)
	} else {
		cbl = cb - 1
		k = tables.Flog10ThreeQuartersPow2(q)
	}
	h := q + tables.Flog2Pow10(-k) + 33

	// The upper 63 bits of the 126-bit approximation, rounded up.
	g1, _ := tables.G(-k)
	g := g1 + 1

	vb := rop32(g, cb<<h)
	vbl := rop32(g, cbl<<h)
	vbr := rop32(g, cbr<<h)

	s := vb >> 2
	if s >= 100 {
		sp10 := 10 * (s * 1_717_986_919 >> 34)
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

	cmp := int64(vb) - int64(s+t)<<1
	if cmp < 0 || cmp == 0 && s&1 == 0 {
		return s, k + dk
	}

	return t, k + dk
}

// rop32 returns the rounded-to-odd value of cp g 2^-95.
func rop32(g, cp uint64) uint64 {
	x1, _ := bits.Mul64(g, cp)
	vbp := x1 >> 31

	return vbp | (x1&(1<<32-1)+(1<<32-1))>>32
}

func format32(buf *[MaxLen64]byte, v float32) int {
	b := math.Float32bits(v)

	switch {
	case v != v:
		return copy(buf[:], "NaN")
	case b == 0x7f80_0000:
		return copy(buf[:], "Infinity")
	case b == 0xff80_0000:
		return copy(buf[:], "-Infinity")
	}

	i := 0
	if b>>31 != 0 {
		buf[0] = '-'
		i++
	}

	if b<<1 == 0 {
		return i + copy(buf[i:], "0.0")
	}

	f, e := Decimal32(v)

	return i + chars(buf[i:], f, e, h32)
}

// Put32 writes the text of v to w starting at pos and returns the number of
// bytes written, at most MaxLen32.
func Put32[W stream.Writer](w W, pos int, v float32) int {
	var buf [MaxLen64]byte

	n := format32(&buf, v)
	for i := 0; i < n; i++ {
		w.SetByteAt(pos+i, buf[i])
	}

	return n
}

// Append32 appends the text of v to dst.
func Append32(dst []byte, v float32) []byte {
	var buf [MaxLen64]byte

	n := format32(&buf, v)

	return append(dst, buf[:n]...)
}
