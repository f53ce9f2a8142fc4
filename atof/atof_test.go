package atof_test

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"math/rand"
	"sort"
	"strconv"
	"strings"
	"testing"

	"github.com/calebcase/oops"
	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"

	"github.com/adokky/kodec/atof"
	"github.com/adokky/kodec/stream"
)

func parse64(s string) (float64, error) {
	d := atof.NewDigits(atof.Float64Format)

	err := atof.Scan(d, stream.String(s), 0, len(s), true)
	if err != nil {
		return math.NaN(), err
	}

	return atof.Float64(d), nil
}

func parse32(s string) (float32, error) {
	d := atof.NewDigits(atof.Float32Format)

	err := atof.Scan(d, stream.String(s), 0, len(s), true)
	if err != nil {
		return float32(math.NaN()), err
	}

	return atof.Float32(d), nil
}

// want64 is the reference result. strconv reports range errors alongside
// the correctly rounded infinity or zero, so the error is ignored.
func want64(s string) float64 {
	v, _ := strconv.ParseFloat(s, 64)

	return v
}

func want32(s string) float32 {
	v, _ := strconv.ParseFloat(s, 32)

	return float32(v)
}

func requireSame64(t *testing.T, s string) {
	t.Helper()

	got, err := parse64(s)
	require.NoError(t, err, s)

	want := want64(s)
	require.Equal(t, math.Float64bits(want), math.Float64bits(got), "%s: got %v want %v", s, got, want)
}

func requireSame32(t *testing.T, s string) {
	t.Helper()

	got, err := parse32(s)
	require.NoError(t, err, s)

	want := want32(s)
	require.Equal(t, math.Float32bits(want), math.Float32bits(got), "%s: got %v want %v", s, got, want)
}

func TestScan(t *testing.T) {
	type TC struct {
		name     string
		special  bool
		kind     atof.Kind
		negative bool
		exp      int
		digits   string
		err      error
	}

	tcs := []TC{
		{name: "0", kind: atof.Zero},
		{name: "-0.000", kind: atof.Zero, negative: true},
		{name: ".0e5", kind: atof.Zero},
		{name: "1", kind: atof.Finite, exp: 1, digits: "1"},
		{name: "+1.0", kind: atof.Finite, exp: 1, digits: "1"},
		{name: "-123.4500", kind: atof.Finite, negative: true, exp: 3, digits: "12345"},
		{name: "0.00120", kind: atof.Finite, exp: -2, digits: "12"},
		{name: "1.", kind: atof.Finite, exp: 1, digits: "1"},
		{name: ".5", kind: atof.Finite, exp: 0, digits: "5"},
		{name: "10.01E+3", kind: atof.Finite, exp: 5, digits: "1001"},
		{name: "7e-1", kind: atof.Finite, exp: 0, digits: "7"},
		{name: "1e308", kind: atof.Finite, exp: 309, digits: "1"},
		{name: "1e309", kind: atof.Infinite},
		{name: "1e310", kind: atof.Infinite},
		{name: "-1e99999999999999999999", kind: atof.Infinite, negative: true},
		{name: "1e-325", kind: atof.Zero},
		{name: "1e-99999999999999999999", kind: atof.Zero},
		{name: "Infinity", special: true, kind: atof.Infinite},
		{name: "-Infinity", special: true, kind: atof.Infinite, negative: true},
		{name: "NaN", special: true, kind: atof.NaN},
		{name: "Infinity", err: oops.New("unexpected")},
		{name: "NaN", err: oops.New("unexpected")},
		{name: "Inf", special: true, err: oops.New("unexpected")},
		{name: "", err: oops.New("unexpected")},
		{name: "-", err: oops.New("unexpected")},
		{name: ".", err: oops.New("unexpected")},
		{name: "1..2", err: oops.New("unexpected")},
		{name: "1.2.3", err: oops.New("unexpected")},
		{name: "1e", err: oops.New("unexpected")},
		{name: "1e+", err: oops.New("unexpected")},
		{name: "e5", err: oops.New("unexpected")},
		{name: "1 ", err: oops.New("unexpected")},
		{name: "0x10", err: oops.New("unexpected")},
		{name: "1_000", err: oops.New("unexpected")},
		{name: "--1", err: oops.New("unexpected")},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			d := atof.NewDigits(atof.Float64Format)

			err := atof.Scan(d, stream.String(tc.name), 0, len(tc.name), tc.special)
			if tc.err != nil {
				t.Logf("%v", err)
				require.Error(t, err)
				require.True(t, errors.Is(err, atof.ErrMalformed))

				var se *atof.SyntaxError
				require.True(t, errors.As(err, &se))
				require.Equal(t, tc.name, se.Text)
				require.Equal(t, "float64", se.Format)

				return
			}
			require.NoError(t, err)

			t.Logf("%s", spew.Sdump(d))
			require.Equal(t, tc.kind, d.Kind)
			require.Equal(t, tc.negative, d.Negative)

			if tc.kind == atof.Finite {
				require.Equal(t, tc.exp, d.Exp)
				require.Equal(t, tc.digits, string(d.Bytes()))
			}
		})
	}
}

func TestScanSpan(t *testing.T) {
	buf := stream.Bytes(`[1.5,-2.25e1,x]`)

	d := atof.NewDigits(atof.Float64Format)

	require.NoError(t, atof.Scan(d, buf, 1, 4, false))
	require.Equal(t, 1.5, atof.Float64(d))

	require.NoError(t, atof.Scan(d, buf, 5, 12, false))
	require.Equal(t, -22.5, atof.Float64(d))

	err := atof.Scan(d, buf, 13, 14, false)
	require.Error(t, err)

	var se *atof.SyntaxError
	require.True(t, errors.As(err, &se))
	require.Equal(t, 13, se.Start)
	require.Equal(t, 14, se.End)
	require.Equal(t, 13, se.Pos)
	require.Equal(t, "x", se.Text)
}

func TestPrefix(t *testing.T) {
	type TC struct {
		name   string
		format *atof.Format
		n      int
	}

	tcs := []TC{
		{name: "1" + strings.Repeat("0", 400), format: atof.Float64Format},
		{name: "1" + strings.Repeat("7", 2000) + "e-300", format: atof.Float64Format, n: atof.Float64Format.Cap},
		{name: "0." + strings.Repeat("3", 5000), format: atof.Float64Format, n: atof.Float64Format.Cap},
		{name: "0." + strings.Repeat("3", 5000), format: atof.Float32Format, n: atof.Float32Format.Cap},
		{name: "2." + strings.Repeat("0", 3000) + "1", format: atof.Float64Format, n: atof.Float64Format.Cap},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%d", i, len(tc.name)), func(t *testing.T) {
			d := atof.NewDigits(tc.format)

			err := atof.Scan(d, stream.String(tc.name), 0, len(tc.name), false)
			require.NoError(t, err)
			require.LessOrEqual(t, d.N, tc.format.Cap)

			if tc.n != 0 {
				require.LessOrEqual(t, d.N, tc.n)
				require.Equal(t, byte('1'), d.Bytes()[d.N-1], "sticky digit")
			}
		})
	}
}

func TestFloat64(t *testing.T) {
	type TC struct {
		name string
	}

	tcs := []TC{
		{name: "1.0"},
		{name: "-1.0"},
		{name: "0.1"},
		{name: "1" + strings.Repeat("0", 400)},
		{name: "0." + strings.Repeat("0", 400) + "1"},
		{name: "4.9e-324"},
		{name: "4.9E-324"},
		{name: "2.4703282292062327e-324"},
		{name: "2.4703282292062328e-324"},
		{name: "1.7976931348623157e308"},
		{name: "1.7976931348623158e308"},
		{name: "1.7976931348623159e308"},
		{name: "2.2250738585072014E-308"},
		{name: "2.2250738585072011e-308"},
		{name: "123.456e-2"},
		{name: "0.000"},
		{name: "-0.0"},
		{name: "1e-400"},
		{name: "-1e-400"},
		{name: "1e10000000000000"},
		{name: "9007199254740993"},
		{name: "9007199254740992.999999999999999999999999999"},
		{name: "9007199254740993.000000000000000000000000001"},
		{name: "1e23"},
		{name: "8.98846567431158e307"},
		{name: "3e-324"},
		{name: "1e37"},
		{name: "123456789e22"},
		{name: "0.3" + strings.Repeat("3", 800)},
		{name: "2.225073858507201136057409796709131975934819546351645648e-308"},
		{name: "4.940656458412465441765687928682213723651e-324"},
		{name: "7.4109846876186981626485318930233205854758970392148714663837852375101326090531312779794975454245398856969484704316857659638998506553390969459816219401617281718945106978546710679176872575177347315553307795408549809608457500958111373034747658096871009590975442271004757307809711118935784838675653998783503015228055934046593739791790738723868299395818481660169122019456499931289798411362062484498678713572180352209017023903285791732520220528974020802906854021606612375549983402671300035812486479041385743401875520901590172592547146296175134159774938718574737870961645638908718119841271673056017045493004705269590165763776884908267986972573366521765567941072508764337560846003984904972149117463085539556354188641513168478436313080237596295773983001708984375e-318"},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%.40s", i, tc.name), func(t *testing.T) {
			requireSame64(t, tc.name)
		})
	}

	t.Run("infinity", func(t *testing.T) {
		v, err := parse64("1" + strings.Repeat("0", 400))
		require.NoError(t, err)
		require.True(t, math.IsInf(v, 1))

		v, err = parse64("-Infinity")
		require.NoError(t, err)
		require.True(t, math.IsInf(v, -1))
	})

	t.Run("signed zero", func(t *testing.T) {
		v, err := parse64("-1e-400")
		require.NoError(t, err)
		require.Equal(t, uint64(1)<<63, math.Float64bits(v))
	})

	t.Run("nan", func(t *testing.T) {
		v, err := parse64("-NaN")
		require.NoError(t, err)
		require.True(t, math.IsNaN(v))
	})
}

func TestFloat32(t *testing.T) {
	type TC struct {
		name string
	}

	tcs := []TC{
		{name: "1.0"},
		{name: "-1.0"},
		{name: "0.1"},
		{name: "16777217"},
		{name: "3.4028235e38"},
		{name: "3.4028236e38"},
		{name: "3.40282357e38"},
		{name: "1.4e-45"},
		{name: "7.0e-46"},
		{name: "7.1e-46"},
		{name: "1.1754944E-38"},
		{name: "1e39"},
		{name: "1e-46"},
		{name: "1e17"},
		{name: "123456e11"},
		{name: "1" + strings.Repeat("0", 200)},
		{name: "0." + strings.Repeat("9", 300)},
		{name: "1.00000005960464477539062500000000000000000000001"},
		{name: "1.000000059604644775390625"},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%.40s", i, tc.name), func(t *testing.T) {
			requireSame32(t, tc.name)
		})
	}
}

// exactText returns the exact decimal expansion of x in e notation.
func exactText(x *big.Float) string {
	return x.Text('e', 800)
}

// midpoint returns the exact midpoint between a and b.
func midpoint(a, b float64) *big.Float {
	x := new(big.Float).SetPrec(200).SetFloat64(a)
	y := new(big.Float).SetPrec(200).SetFloat64(b)

	x.Add(x, y)

	return x.Quo(x, big.NewFloat(2))
}

// above nudges an e notation literal up by one unit in its last digit.
func above(s string) string {
	m, e, _ := strings.Cut(s, "e")

	return m + "1e" + e
}

func TestCorrectRounding64(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 20_000; i++ {
		b := rng.Uint64() &^ (1 << 63)
		if i%5 == 0 {
			b &= 0x000f_ffff_ffff_ffff
		}

		v := math.Float64frombits(b)
		next := math.Float64frombits(b + 1)
		if math.IsNaN(v) || math.IsInf(v, 0) || math.IsInf(next, 0) {
			continue
		}

		requireSame64(t, strconv.FormatFloat(v, 'e', -1, 64))
		requireSame64(t, strconv.FormatFloat(v, 'e', rng.Intn(25), 64))

		mid := exactText(midpoint(v, next))
		requireSame64(t, mid)
		requireSame64(t, above(mid))
	}
}

func TestCorrectRounding32(t *testing.T) {
	rng := rand.New(rand.NewSource(2))

	for i := 0; i < 20_000; i++ {
		b := rng.Uint32() &^ (1 << 31)
		if i%5 == 0 {
			b &= 0x007f_ffff
		}

		v := math.Float32frombits(b)
		next := math.Float32frombits(b + 1)
		if math.IsInf(float64(next), 0) || v != v {
			continue
		}

		requireSame32(t, strconv.FormatFloat(float64(v), 'e', -1, 32))
		requireSame32(t, strconv.FormatFloat(float64(v), 'e', rng.Intn(12), 32))

		mid := exactText(midpoint(float64(v), float64(next)))
		requireSame32(t, mid)
		requireSame32(t, above(mid))
	}
}

func TestMonotonic(t *testing.T) {
	rng := rand.New(rand.NewSource(3))

	type lit struct {
		text string
		rat  *big.Rat
	}

	base := 0.1 + rng.Float64()
	lits := make([]lit, 0, 2000)
	for i := 0; i < 2000; i++ {
		// Cluster around one value so neighbors share rounding boundaries.
		s := strconv.FormatFloat(base, 'e', 16, 64)
		m, e, _ := strings.Cut(s, "e")
		s = m + strconv.Itoa(rng.Intn(1000)) + "e" + e

		r, ok := new(big.Rat).SetString(s)
		require.True(t, ok)

		lits = append(lits, lit{text: s, rat: r})
	}

	sort.Slice(lits, func(i, j int) bool {
		return lits[i].rat.Cmp(lits[j].rat) < 0
	})

	prev := math.Inf(-1)
	for _, l := range lits {
		v, err := parse64(l.text)
		require.NoError(t, err)
		require.LessOrEqual(t, prev, v, l.text)
		prev = v
	}
}

func TestFromDecimal(t *testing.T) {
	type TC struct {
		name string
		neg  bool
		mant uint64
		exp  int
	}

	tcs := []TC{
		{name: "0", mant: 0},
		{name: "-0", neg: true, mant: 0},
		{name: "1", mant: 1},
		{name: "12.5", mant: 125, exp: -1},
		{name: "-1e22", neg: true, mant: 1, exp: 22},
		{name: "18446744073709551615e-330", mant: 18446744073709551615, exp: -330},
		{name: "18446744073709551615e300", mant: 18446744073709551615, exp: 300},
		{name: "10000000000000000000e-19", mant: 10000000000000000000, exp: -19},
		{name: "5e-325", mant: 5, exp: -325},
		{name: "9007199254740993", mant: 9007199254740993},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			d := atof.NewDigits(atof.Float64Format)
			atof.FromDecimal(d, tc.neg, tc.mant, tc.exp)

			want := want64(tc.name)
			require.Equal(t, math.Float64bits(want), math.Float64bits(atof.Float64(d)), spew.Sdump(d))

			d32 := atof.NewDigits(atof.Float32Format)
			atof.FromDecimal(d32, tc.neg, tc.mant, tc.exp)
			require.Equal(t, math.Float32bits(want32(tc.name)), math.Float32bits(atof.Float32(d32)))
		})
	}
}

func BenchmarkFloat64(b *testing.B) {
	s := stream.String("2.2250738585072011e-308")
	d := atof.NewDigits(atof.Float64Format)

	for n := 0; n < b.N; n++ {
		err := atof.Scan(d, s, 0, len(s), false)
		if err != nil {
			b.Fatalf("%+v", err)
		}
		_ = atof.Float64(d)
	}
}
