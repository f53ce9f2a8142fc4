// Package tables holds the read-only constants shared by the float
// renderer and parser: 126-bit approximations of powers of ten, the floor
// logarithm estimators, and the powers of ten that are exact in binary
// floating point.
//
// Everything here is computed at compile time or package initialization and
// never modified afterwards, so it is safe for concurrent use without
// locking.
package tables

//go:generate go run gen.go

// The range of decimal exponents p covered by G.
const (
	GMin = -342
	GMax = 324
)

// G returns the upper and lower 63 bits of the 126-bit integer
// g = floor(10^p / 2^r) + 1, where r = Flog2Pow10(p) - 125. Hence
//
//	(g - 1) 2^r <= 10^p < g 2^r
//
// p must be in [GMin, GMax].
func G(p int) (g1, g0 uint64) {
	e := &g[p-GMin]

	return e[0], e[1]
}

// G128 returns the same value as G split into ordinary 64-bit words.
func G128(p int) (hi, lo uint64) {
	g1, g0 := G(p)

	return g1 >> 1, g1<<63 | g0
}

// Flog10Pow2 returns floor(log10(2^e)) for |e| <= 5_456_721.
func Flog10Pow2(e int) int {
	return int((int64(e) * 661_971_961_083) >> 41)
}

// Flog10ThreeQuartersPow2 returns floor(log10(3/4 2^e)) for
// |e| <= 2_114_355.
func Flog10ThreeQuartersPow2(e int) int {
	return int((int64(e)*661_971_961_083 + -274_743_187_321) >> 41)
}

// Flog2Pow10 returns floor(log2(10^e)) for |e| <= 1_838_394.
func Flog2Pow10(e int) int {
	return int((int64(e) * 913_124_641_741) >> 38)
}

// Pow10 holds the powers of ten that fit in a uint64.
var Pow10 = [...]uint64{
	1e0, 1e1, 1e2, 1e3, 1e4, 1e5, 1e6, 1e7, 1e8, 1e9,
	1e10, 1e11, 1e12, 1e13, 1e14, 1e15, 1e16, 1e17, 1e18, 1e19,
}

// Float64Pow10 holds the powers of ten that are exact in a float64.
var Float64Pow10 = [...]float64{
	1e0, 1e1, 1e2, 1e3, 1e4, 1e5, 1e6, 1e7, 1e8, 1e9,
	1e10, 1e11, 1e12, 1e13, 1e14, 1e15, 1e16, 1e17, 1e18, 1e19,
	1e20, 1e21, 1e22,
}

// Float32Pow10 holds the powers of ten that are exact in a float32.
var Float32Pow10 = [...]float32{
	1e0, 1e1, 1e2, 1e3, 1e4, 1e5, 1e6, 1e7, 1e8, 1e9, 1e10,
}

// Pow5 holds the powers of five that fit in a uint32.
var Pow5 = [...]uint32{
	1,
	5,
	25,
	125,
	625,
	3_125,
	15_625,
	78_125,
	390_625,
	1_953_125,
	9_765_625,
	48_828_125,
	244_140_625,
	1_220_703_125,
}
