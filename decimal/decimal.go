package decimal

import (
	"math"
	"strconv"

	"github.com/zeebo/errs"

	"github.com/adokky/kodec/atof"
	"github.com/adokky/kodec/ftoa"
	"github.com/adokky/kodec/integer"
	"github.com/adokky/kodec/stream"
	"github.com/adokky/kodec/tables"
)

// Error is the error class for this package.
var Error = errs.Class("decimal")

// ErrNotFinite is returned when converting an infinity or NaN.
var ErrNotFinite = Error.New("not a finite number")

// Scale limits.
const (
	MaxScale = 1<<21 - 1
	MinScale = -MaxScale
)

// Block is a fixed point base 10 number: value * 10^scale.
type Block struct {
	Value    *integer.Int
	Negative bool
	Scale    int32
}

// FromFloat64 returns the shortest decimal that rounds to v.
func FromFloat64(v float64) (b Block, err error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return b, Error.Wrap(ErrNotFinite)
	}

	b.Negative = math.Signbit(v)
	if v == 0 {
		b.Value = integer.FromUint64(0)

		return b, nil
	}

	f, e := ftoa.Decimal64(v)

	return trimmed(b.Negative, f, e), nil
}

// FromFloat32 returns the shortest decimal that rounds to v.
func FromFloat32(v float32) (b Block, err error) {
	if v != v || math.IsInf(float64(v), 0) {
		return b, Error.Wrap(ErrNotFinite)
	}

	b.Negative = math.Signbit(float64(v))
	if v == 0 {
		b.Value = integer.FromUint64(0)

		return b, nil
	}

	f, e := ftoa.Decimal32(v)

	return trimmed(b.Negative, f, e), nil
}

// trimmed moves trailing zeros of f into the scale.
func trimmed(neg bool, f uint64, e int) Block {
	for f%10 == 0 {
		f /= 10
		e++
	}

	return Block{
		Value:    integer.FromUint64(f),
		Negative: neg,
		Scale:    int32(e),
	}
}

// Exact returns the exact value of v. Every finite binary value has a
// terminating decimal expansion, at most 767 significant digits for a
// float64.
func Exact(v float64) (b Block, err error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return b, Error.Wrap(ErrNotFinite)
	}

	bits := math.Float64bits(v)
	b.Negative = bits>>63 != 0

	c := bits & (1<<52 - 1)
	q := int(bits>>52&0x7ff) - 1075
	if bits>>52&0x7ff == 0 {
		q = -1074
	} else {
		c |= 1 << 52
	}

	if c == 0 {
		b.Value = integer.FromUint64(0)

		return b, nil
	}

	// Drop factors of two so the expansion has no trailing zeros.
	for c&1 == 0 && q < 0 {
		c >>= 1
		q++
	}

	if q >= 0 {
		b.Value = integer.FromUint64(c).MulByPow52(0, q)

		return b, nil
	}

	// c 2^q = c 5^-q 10^q
	b.Value = integer.FromUint64(c).MulByPow52(-q, 0)
	b.Scale = int32(q)

	return b, nil
}

// Digits returns the decimal digits of the unscaled value.
func (b Block) Digits() []byte {
	if b.Value == nil || b.Value.IsZero() {
		return []byte{'0'}
	}

	x := b.Value.Clone()

	// 10^k <= x < 10^(k+1)
	k := tables.Flog10Pow2(x.BitLen() - 1)
	if x.CmpPow52(k+1, k+1) >= 0 {
		k++
	}

	s := integer.FromUint64(1).MulByPow52(k, k)

	out := make([]byte, k+1)
	for i := range out {
		out[i] = byte('0' + x.QuoRemStep(s))
	}

	return out
}

// Float64 returns the float64 nearest to b.
func (b Block) Float64() float64 {
	return atof.Float64(b.digits(atof.Float64Format))
}

// Float32 returns the float32 nearest to b.
func (b Block) Float32() float32 {
	return atof.Float32(b.digits(atof.Float32Format))
}

func (b Block) digits(f *atof.Format) *atof.Digits {
	d := atof.NewDigits(f)

	if b.Value == nil || b.Value.BitLen() <= 64 {
		var m uint64
		if b.Value != nil {
			for _, c := range b.Value.Bytes() {
				m = m<<8 | uint64(c)
			}
		}

		atof.FromDecimal(d, b.Negative, m, int(b.Scale))

		return d
	}

	// Long values go through the scanner, which keeps only the prefix
	// needed for rounding.
	text := b.Digits()
	text = append(text, 'e')
	text = strconv.AppendInt(text, int64(b.Scale), 10)

	err := atof.Scan(d, stream.Bytes(text), 0, len(text), false)
	if err != nil {
		panic(err)
	}
	d.Negative = b.Negative

	return d
}
