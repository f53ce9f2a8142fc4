package atof

import "github.com/adokky/kodec/tables"

// Kind classifies a scanned literal.
type Kind uint8

// Literal kinds.
const (
	// Finite literals carry digits in the buffer.
	Finite Kind = iota
	Zero
	Infinite
	NaN
)

func (k Kind) String() string {
	switch k {
	case Finite:
		return "finite"
	case Zero:
		return "zero"
	case Infinite:
		return "infinite"
	case NaN:
		return "nan"
	}

	return "unknown"
}

// Digits is a decimal literal reduced to the shortest digit prefix that still
// rounds correctly in its format:
//
//	value = ±0.d1d2...dN 10^Exp
//
// d1 is never zero. When the literal had more significant digits than the
// prefix holds a final sticky digit 1 stands in for all of them.
type Digits struct {
	Negative bool
	Kind     Kind

	// Exp is the decimal exponent of the digits read as a fraction.
	Exp int

	// N is the number of digits in the buffer.
	N int

	format *Format
	buf    []byte
}

// NewDigits returns an empty buffer sized for f.
func NewDigits(f *Format) *Digits {
	return &Digits{
		Kind:   Zero,
		format: f,
		buf:    make([]byte, f.Cap),
	}
}

// Format returns the format d was sized for.
func (d *Digits) Format() *Format {
	return d.format
}

// Bytes returns the ASCII digits d1 through dN.
func (d *Digits) Bytes() []byte {
	return d.buf[:d.N]
}

// Reset clears d for reuse.
func (d *Digits) Reset() {
	d.Negative = false
	d.Kind = Zero
	d.Exp = 0
	d.N = 0
}

// classify checks the decimal exponent against the range of the format and
// reports whether digits are needed at all.
func (d *Digits) classify(e int64) bool {
	switch {
	case e > int64(d.format.MaxExp):
		d.Kind = Infinite
	case e < int64(d.format.MinExp):
		d.Kind = Zero
	default:
		d.Kind = Finite
		d.Exp = int(e)

		return true
	}

	return false
}

// FromDecimal sets d to ±mant 10^exp10.
func FromDecimal(d *Digits, neg bool, mant uint64, exp10 int) {
	d.Reset()
	d.Negative = neg

	if mant == 0 {
		return
	}

	var tmp [20]byte
	i := len(tmp)
	for ; mant != 0; mant /= 10 {
		i--
		tmp[i] = byte('0' + mant%10)
	}
	sig := tmp[i:]

	for sig[len(sig)-1] == '0' {
		sig = sig[:len(sig)-1]
	}

	if !d.classify(int64(len(tmp)-i) + int64(exp10)) {
		return
	}

	d.fill(sig)
}

// fill copies at most the prefix length of significant digits, adding the
// sticky digit when some were left out.
func (d *Digits) fill(sig []byte) {
	np := d.format.prefixLen(d.Exp)

	n := copy(d.buf[:np], sig)
	if len(sig) > np {
		d.buf[n] = '1'
		n++
	}

	d.N = n
}

// mantissa returns the value of the first k digits.
func (d *Digits) mantissa(k int) (m uint64) {
	for _, c := range d.buf[:k] {
		m = 10*m + uint64(c-'0')
	}

	return m
}

// small reports the digits as an integer m and exponent q with
// value = m 10^q when they fit in a uint64.
func (d *Digits) small() (m uint64, q int, ok bool) {
	if d.N >= len(tables.Pow10) {
		return 0, 0, false
	}

	return d.mantissa(d.N), d.Exp - d.N, true
}
