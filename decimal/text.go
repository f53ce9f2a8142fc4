package decimal

import (
	"strconv"

	"github.com/adokky/kodec/integer"
)

// String formats b the way java.math.BigDecimal does: plain notation when
// the scale is not positive and the adjusted exponent is at least -6,
// otherwise scientific notation with an explicit exponent sign.
func (b Block) String() string {
	return string(b.AppendText(nil))
}

// AppendText appends the text of b to dst.
func (b Block) AppendText(dst []byte) []byte {
	digits := b.Digits()

	if b.Negative {
		dst = append(dst, '-')
	}

	scale := int(b.Scale)
	adjusted := scale + len(digits) - 1

	switch {
	case scale == 0:
		return append(dst, digits...)
	case scale < 0 && adjusted >= -6:
		point := len(digits) + scale
		if point > 0 {
			dst = append(dst, digits[:point]...)
			dst = append(dst, '.')

			return append(dst, digits[point:]...)
		}

		dst = append(dst, '0', '.')
		for ; point < 0; point++ {
			dst = append(dst, '0')
		}

		return append(dst, digits...)
	}

	dst = append(dst, digits[0])
	if len(digits) > 1 {
		dst = append(dst, '.')
		dst = append(dst, digits[1:]...)
	}

	dst = append(dst, 'E')
	if adjusted >= 0 {
		dst = append(dst, '+')
	}

	return strconv.AppendInt(dst, int64(adjusted), 10)
}

// Parse reads an exact decimal literal such as "-12.50" or "1.5E-7". Unlike
// float parsing every digit is kept.
func Parse(s string) (b Block, err error) {
	defer Error.WrapP(&err)

	i := 0
	if i < len(s) && (s[i] == '-' || s[i] == '+') {
		b.Negative = s[i] == '-'
		i++
	}

	digits := make([]byte, 0, len(s))
	frac := -1

	for ; i < len(s); i++ {
		c := s[i]
		switch {
		case '0' <= c && c <= '9':
			digits = append(digits, c)
			if frac >= 0 {
				frac++
			}
			continue
		case c == '.' && frac < 0:
			frac = 0
			continue
		}

		break
	}

	if len(digits) == 0 {
		return b, Error.New("no digits: %q", s)
	}

	exp := int64(0)
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		exp, err = strconv.ParseInt(s[i+1:], 10, 32)
		if err != nil {
			return b, err
		}
		i = len(s)
	}

	if i != len(s) {
		return b, Error.New("unexpected character at %d: %q", i, s)
	}

	if frac > 0 {
		exp -= int64(frac)
	}

	if exp < MinScale || exp > MaxScale {
		return b, Error.New("scale out of range: %d", exp)
	}

	b.Value = integer.New(0, digits)
	b.Scale = int32(exp)

	return b, nil
}
