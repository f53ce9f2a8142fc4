// Package atof converts decimal literals to the nearest binary floating point
// value, ties to even.
//
// Conversion happens in two steps. Scan validates the text and reduces it to
// a Digits prefix of bounded size, so arbitrarily long literals need no more
// than Format.Cap bytes of scratch space. Float64 and Float32 then round the
// prefix: small literals are computed exactly with one floating point
// operation, the rest are bracketed with 126-bit approximations of powers of
// ten and, when the bracket straddles a rounding boundary, settled with exact
// integer arithmetic.
package atof

import (
	"math"

	"github.com/adokky/kodec/tables"
)

// Float64 returns the float64 nearest to d. d must be sized for
// Float64Format.
func Float64(d *Digits) float64 {
	var sign uint64
	if d.Negative {
		sign = 1 << 63
	}

	switch d.Kind {
	case NaN:
		return math.NaN()
	case Zero:
		return math.Float64frombits(sign)
	case Infinite:
		return math.Float64frombits(sign | Float64Format.infBits())
	}

	if v, ok := fast64(d); ok {
		if d.Negative {
			v = -v
		}

		return v
	}

	return math.Float64frombits(sign | slowBits(d, Float64Format))
}

// Float32 returns the float32 nearest to d. d must be sized for
// Float32Format.
func Float32(d *Digits) float32 {
	var sign uint32
	if d.Negative {
		sign = 1 << 31
	}

	switch d.Kind {
	case NaN:
		return float32(math.NaN())
	case Zero:
		return math.Float32frombits(sign)
	case Infinite:
		return math.Float32frombits(sign | uint32(Float32Format.infBits()))
	}

	if v, ok := fast32(d); ok {
		if d.Negative {
			v = -v
		}

		return v
	}

	return math.Float32frombits(sign | uint32(slowBits(d, Float32Format)))
}

// fast64 computes m 10^q with a single correctly rounded operation when m
// and the power of ten are both exact.
func fast64(d *Digits) (float64, bool) {
	m, q, ok := d.small()
	if !ok || m>>53 != 0 {
		return 0, false
	}

	pow := tables.Float64Pow10[:]
	top := len(pow) - 1

	switch {
	case q == 0:
		return float64(m), true
	case 0 < q && q <= top:
		return float64(m) * pow[q], true
	case -top <= q && q < 0:
		return float64(m) / pow[-q], true
	case top < q && q <= top+15:
		// Move zeros into the mantissa while it stays exact.
		p := tables.Pow10[q-top]
		if m > (1<<53-1)/p {
			return 0, false
		}

		return float64(m*p) * pow[top], true
	}

	return 0, false
}

// fast32 is fast64 for float32.
func fast32(d *Digits) (float32, bool) {
	m, q, ok := d.small()
	if !ok || m>>24 != 0 {
		return 0, false
	}

	pow := tables.Float32Pow10[:]
	top := len(pow) - 1

	switch {
	case q == 0:
		return float32(m), true
	case 0 < q && q <= top:
		return float32(m) * pow[q], true
	case -top <= q && q < 0:
		return float32(m) / pow[-q], true
	case top < q && q <= top+7:
		p := tables.Pow10[q-top]
		if m > (1<<24-1)/p {
			return 0, false
		}

		return float32(m*p) * pow[top], true
	}

	return 0, false
}
