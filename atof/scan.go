package atof

import "github.com/adokky/kodec/stream"

// expClamp bounds the accumulated exponent. Larger magnitudes all overflow or
// underflow the same way.
const expClamp = 10_000_000_000

// Scan reads the literal r[start:end] into d. The grammar is
//
//	literal := ['-'|'+'] ( 'Infinity' | 'NaN' | decimal )
//	decimal := digits ['.' digits] [('e'|'E') ['-'|'+'] digits]
//
// with at least one digit around the point. Infinity and NaN are accepted
// only when special is set. A malformed literal returns a *SyntaxError and
// leaves d in an unspecified state.
func Scan[R stream.Reader](d *Digits, r R, start, end int, special bool) error {
	d.Reset()

	pos := start
	if pos < end {
		switch r.ByteAt(pos) {
		case '-':
			d.Negative = true
			pos++
		case '+':
			pos++
		}
	}

	if pos < end {
		switch c := r.ByteAt(pos); {
		case c == 'I' && special:
			if !match(r, pos, end, "Infinity") {
				return syntaxError(d, r, start, end, pos, "expected Infinity")
			}
			d.Kind = Infinite

			return nil
		case c == 'N' && special:
			if !match(r, pos, end, "NaN") {
				return syntaxError(d, r, start, end, pos, "expected NaN")
			}
			d.Kind = NaN

			return nil
		}
	}

	var (
		digits   int
		point    = -1
		first    = -1
		firstPos int
		last     int
	)

lex:
	for ; pos < end; pos++ {
		c := r.ByteAt(pos)
		switch {
		case '0' <= c && c <= '9':
			if c != '0' {
				if first < 0 {
					first = digits
					firstPos = pos
				}
				last = digits + 1
			}
			digits++
		case c == '.' && point < 0:
			point = digits
		default:
			break lex
		}
	}

	if digits == 0 {
		return syntaxError(d, r, start, end, pos, "no digits")
	}
	if point < 0 {
		point = digits
	}

	var exp int64
	if pos < end && r.ByteAt(pos)|0x20 == 'e' {
		pos++

		neg := false
		if pos < end {
			switch r.ByteAt(pos) {
			case '-':
				neg = true
				pos++
			case '+':
				pos++
			}
		}

		n := 0
		for ; pos < end; pos++ {
			c := r.ByteAt(pos)
			if c < '0' || c > '9' {
				break
			}
			if exp < expClamp {
				exp = 10*exp + int64(c-'0')
			}
			n++
		}

		if n == 0 {
			return syntaxError(d, r, start, end, pos, "no exponent digits")
		}
		if neg {
			exp = -exp
		}
	}

	if pos != end {
		return syntaxError(d, r, start, end, pos, "unexpected character")
	}

	if first < 0 {
		d.Kind = Zero

		return nil
	}

	if !d.classify(int64(point-first) + exp) {
		return nil
	}

	// Copy the prefix, stepping over the point.
	np := d.format.prefixLen(d.Exp)
	sig := last - first

	n := 0
	for p := firstPos; n < np && n < sig; p++ {
		c := r.ByteAt(p)
		if c == '.' {
			continue
		}
		d.buf[n] = c
		n++
	}
	if sig > np {
		d.buf[n] = '1'
		n++
	}

	d.N = n

	return nil
}

// match reports whether r[pos:end] is exactly lit.
func match[R stream.Reader](r R, pos, end int, lit string) bool {
	if end-pos != len(lit) {
		return false
	}

	for i := 0; i < len(lit); i++ {
		if r.ByteAt(pos+i) != lit[i] {
			return false
		}
	}

	return true
}
