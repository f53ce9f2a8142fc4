package ftoa_test

import (
	"fmt"
	"math"
	"math/rand"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/adokky/kodec/ftoa"
	"github.com/adokky/kodec/stream"
)

// significant returns the significant digits of a rendered value.
func significant(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, "-"))
	s, _, _ = strings.Cut(s, "e")
	s = strings.ReplaceAll(s, ".", "")

	return strings.Trim(s, "0")
}

func TestAppend64(t *testing.T) {
	type TC struct {
		name string
		v    float64
	}

	tcs := []TC{
		{name: "0.0", v: 0},
		{name: "-0.0", v: math.Copysign(0, -1)},
		{name: "1.0", v: 1},
		{name: "-1.5", v: -1.5},
		{name: "0.1", v: 0.1},
		{name: "100.0", v: 100},
		{name: "123456.0", v: 123456},
		{name: "1234567.0", v: 1234567},
		{name: "1.2345678E7", v: 12345678},
		{name: "1.0E7", v: 1e7},
		{name: "0.001", v: 1e-3},
		{name: "1.0E-4", v: 1e-4},
		{name: "1.0E23", v: 1e23},
		{name: "9.007199254740992E15", v: 1 << 53},
		{name: "4.9E-324", v: math.SmallestNonzeroFloat64},
		{name: "2.2250738585072014E-308", v: 0x1p-1022},
		{name: "1.7976931348623157E308", v: math.MaxFloat64},
		{name: "Infinity", v: math.Inf(1)},
		{name: "-Infinity", v: math.Inf(-1)},
		{name: "NaN", v: math.NaN()},
		{name: "NaN", v: math.Float64frombits(0xfff8_0000_0000_0001)},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			require.Equal(t, tc.name, string(ftoa.Append64(nil, tc.v)))
		})
	}
}

func TestAppend32(t *testing.T) {
	type TC struct {
		name string
		v    float32
	}

	tcs := []TC{
		{name: "0.0", v: 0},
		{name: "-0.0", v: float32(math.Copysign(0, -1))},
		{name: "1.0", v: 1},
		{name: "0.1", v: 0.1},
		{name: "-2.5", v: -2.5},
		{name: "1.0E10", v: 1e10},
		{name: "1.6777216E7", v: 1 << 24},
		{name: "3.4028235E38", v: math.MaxFloat32},
		{name: "1.4E-45", v: math.SmallestNonzeroFloat32},
		{name: "1.1754944E-38", v: 0x1p-126},
		{name: "Infinity", v: float32(math.Inf(1))},
		{name: "-Infinity", v: float32(math.Inf(-1))},
		{name: "NaN", v: float32(math.NaN())},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			require.Equal(t, tc.name, string(ftoa.Append32(nil, tc.v)))
		})
	}
}

func TestRoundTrip64(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 200_000; i++ {
		b := rng.Uint64()
		if i%4 == 0 {
			// Favor subnormals and small exponents.
			b &= 0x800f_ffff_ffff_ffff
		}

		v := math.Float64frombits(b)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}

		s := string(ftoa.Append64(nil, v))
		require.LessOrEqual(t, len(s), ftoa.MaxLen64, s)

		got, err := strconv.ParseFloat(s, 64)
		require.NoError(t, err)
		require.Equal(t, b, math.Float64bits(got), "%#x rendered as %s", b, s)

		// The smallest subnormals keep two digits, as in 4.9E-324.
		if b&0x7fff_ffff_ffff_ffff < 3 {
			continue
		}

		// strconv also produces the shortest digits.
		want := strconv.FormatFloat(v, 'e', -1, 64)
		require.Equal(t, len(significant(want)), len(significant(s)), "%s vs %s", s, want)
	}
}

func TestRoundTrip32(t *testing.T) {
	rng := rand.New(rand.NewSource(2))

	for i := 0; i < 200_000; i++ {
		b := rng.Uint32()
		if i%4 == 0 {
			b &= 0x807f_ffff
		}

		v := math.Float32frombits(b)
		if v != v || math.IsInf(float64(v), 0) {
			continue
		}

		s := string(ftoa.Append32(nil, v))
		require.LessOrEqual(t, len(s), ftoa.MaxLen32, s)

		got, err := strconv.ParseFloat(s, 32)
		require.NoError(t, err)
		require.Equal(t, b, math.Float32bits(float32(got)), "%#x rendered as %s", b, s)

		if b&0x7fff_ffff < 8 {
			continue
		}

		want := strconv.FormatFloat(float64(v), 'e', -1, 32)
		require.Equal(t, len(significant(want)), len(significant(s)), "%s vs %s", s, want)
	}
}

// TestShortest checks that dropping a digit, rounding either way, never
// recovers the value.
func TestShortest(t *testing.T) {
	rng := rand.New(rand.NewSource(3))

	for i := 0; i < 20_000; i++ {
		v := math.Float64frombits(rng.Uint64() & 0x7fff_ffff_ffff_ffff)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}

		f, e := ftoa.Decimal64(v)
		for f%10 == 0 {
			f /= 10
			e++
		}
		if f < 10 {
			continue
		}

		down := f / 10
		for _, c := range []uint64{down, down + 1} {
			s := strconv.FormatUint(c, 10) + "e" + strconv.Itoa(e+1)

			got, err := strconv.ParseFloat(s, 64)
			if err != nil {
				// Out of range candidates cannot recover v.
				continue
			}
			require.NotEqual(t, v, got, "%d e%d shortened to %s", f, e, s)
		}
	}
}

func TestPut(t *testing.T) {
	buf := make(stream.Bytes, 64)
	for i := range buf {
		buf[i] = '#'
	}

	n := ftoa.Put64(buf, 3, -1.25e-10)
	require.Equal(t, "-1.25E-10", string(buf[3:3+n]))
	require.Equal(t, "###", string(buf[:3]))
	require.Equal(t, byte('#'), buf[3+n])

	m := ftoa.Put32(buf, 3+n, float32(6.5))
	require.Equal(t, "-1.25E-106.5", string(buf[3:3+n+m]))
}

func BenchmarkAppend64(b *testing.B) {
	buf := make([]byte, 0, ftoa.MaxLen64)

	for n := 0; n < b.N; n++ {
		buf = ftoa.Append64(buf[:0], 1.2345678901234567e-89)
	}
}
