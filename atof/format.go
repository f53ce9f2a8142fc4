package atof

import "github.com/adokky/kodec/tables"

// Format describes an IEEE-754 binary interchange format and the limits the
// parser derives from it.
type Format struct {
	// Name is used in error messages.
	Name string

	// MantBits is the number of stored significand bits.
	MantBits uint

	// ExpBits is the width of the biased exponent field.
	ExpBits uint

	// Cap is the capacity of the digit prefix buffer. No literal needs
	// more significant digits than this to be rounded correctly.
	Cap int

	// Literals 0.d1d2... 10^e with e > MaxExp overflow to infinity.
	MaxExp int

	// Literals 0.d1d2... 10^e with e < MinExp round to zero.
	MinExp int
}

var (
	// Float64Format is the binary64 format.
	Float64Format = &Format{
		Name:     "float64",
		MantBits: 52,
		ExpBits:  11,
		Cap:      769,
		MaxExp:   309,
		MinExp:   -323,
	}

	// Float32Format is the binary32 format.
	Float32Format = &Format{
		Name:     "float32",
		MantBits: 23,
		ExpBits:  8,
		Cap:      114,
		MaxExp:   39,
		MinExp:   -45,
	}
)

// minE2 returns the binary exponent of the smallest subnormal.
func (f *Format) minE2() int {
	return -(1 << (f.ExpBits - 1)) + 2 - int(f.MantBits)
}

// maxBiased returns the saturated biased exponent used by infinities.
func (f *Format) maxBiased() uint64 {
	return 1<<f.ExpBits - 1
}

// infBits returns the bits of positive infinity.
func (f *Format) infBits() uint64 {
	return f.maxBiased() << f.MantBits
}

// prefixLen returns how many significant digits of a literal with decimal
// exponent e are needed to round it correctly. The bound is derived from the
// smallest binary exponent the result could have.
func (f *Format) prefixLen(e int) int {
	e2 := tables.Flog2Pow10(e-1) - int(f.MantBits)
	if e2 < f.minE2() {
		e2 = f.minE2()
	}
	if e2 > 1 {
		e2 = 1
	}

	n := e + 1 - e2
	if n > f.Cap-1 {
		n = f.Cap - 1
	}
	if n < 1 {
		n = 1
	}

	return n
}
