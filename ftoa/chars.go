package ftoa

import (
	"math/bits"

	"github.com/adokky/kodec/tables"
)

const mask28 = 1<<28 - 1

// chars writes the decimal f 10^e, f < 10^n, into buf and returns the length.
// n is 17 or 9. Digits are produced eight at a time, left to right.
func chars(buf []byte, f uint64, e int, n int) int {
	// Normalize f to exactly n digits.
	l := tables.Flog10Pow2(bits.Len64(f))
	if f >= tables.Pow10[l] {
		l++
	}
	f *= tables.Pow10[n-l]
	e += l

	// f = h 10^16 + m 10^8 + lo for n = 17, f = h 10^8 + m for n = 9.
	var h, m, lo uint64
	if n == h64 {
		hm, _ := bits.Mul64(f, 193_428_131_138_340_668)
		hm >>= 20
		lo = f - 100_000_000*hm
		h = hm * 1_441_151_881 >> 57
		m = hm - 100_000_000*h
	} else {
		h = f * 1_441_151_881 >> 57
		m = f - 100_000_000*h
	}

	i := 0
	switch {
	case 0 < e && e <= 7:
		// dd.ddd
		buf[i] = byte('0' + h)
		i++

		y := y8(m)
		j := 1
		for ; j < e; j++ {
			t := 10 * y
			buf[i] = byte('0' + t>>28)
			i++
			y = t & mask28
		}

		buf[i] = '.'
		i++

		for ; j <= 8; j++ {
			t := 10 * y
			buf[i] = byte('0' + t>>28)
			i++
			y = t & mask28
		}

		i = lowDigits(buf, i, lo)
	case -3 < e && e <= 0:
		// 0.00ddd
		buf[i] = '0'
		buf[i+1] = '.'
		i += 2

		for ; e < 0; e++ {
			buf[i] = '0'
			i++
		}

		buf[i] = byte('0' + h)
		i++
		i = digits8(buf, i, m)
		i = lowDigits(buf, i, lo)
	default:
		// d.dddE-xx
		buf[i] = byte('0' + h)
		buf[i+1] = '.'
		i += 2
		i = digits8(buf, i, m)
		i = lowDigits(buf, i, lo)
		i = exponent(buf, i, e-1)
	}

	return i
}

// y8 returns floor((a + 1) 2^28 / 10^8) - 1 for a < 10^8.
func y8(a uint64) uint64 {
	hi, _ := bits.Mul64((a+1)<<28, 193_428_131_138_340_668)

	return hi>>20 - 1
}

// digits8 writes the 8 digits of a < 10^8 including leading zeros.
func digits8(buf []byte, i int, a uint64) int {
	y := y8(a)
	for j := 0; j < 8; j++ {
		t := 10 * y
		buf[i] = byte('0' + t>>28)
		i++
		y = t & mask28
	}

	return i
}

// lowDigits writes the trailing 8 digits when they are non-zero, then drops
// trailing zeros keeping at least one digit after the point.
func lowDigits(buf []byte, i int, lo uint64) int {
	if lo != 0 {
		i = digits8(buf, i, lo)
	}

	for buf[i-1] == '0' {
		i--
	}
	if buf[i-1] == '.' {
		buf[i] = '0'
		i++
	}

	return i
}

func exponent(buf []byte, i int, e int) int {
	buf[i] = 'E'
	i++

	if e < 0 {
		buf[i] = '-'
		i++
		e = -e
	}

	switch {
	case e >= 100:
		d := e / 100
		buf[i] = byte('0' + d)
		e -= 100 * d
		i++
		fallthrough
	case e >= 10:
		buf[i] = byte('0' + e/10)
		buf[i+1] = byte('0' + e%10)
		i += 2
	default:
		buf[i] = byte('0' + e)
		i++
	}

	return i
}
