package integer

import (
	"fmt"
	"math/big"
	"math/rand"
	"strings"
	"testing"

	"github.com/calebcase/oops"
	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"
)

func toBig(x *Int) *big.Int {
	return new(big.Int).SetBytes(x.Bytes())
}

func pow52(p5, p2 int) *big.Int {
	v := new(big.Int).Exp(big.NewInt(5), big.NewInt(int64(p5)), nil)

	return v.Lsh(v, uint(p2))
}

// randInt returns a random value with a random amount of low zero words.
func randInt(rng *rand.Rand) *Int {
	digits := make([]byte, 1+rng.Intn(60))
	for i := range digits {
		digits[i] = byte('0' + rng.Intn(10))
	}

	return New(rng.Uint64()>>uint(rng.Intn(64)), digits).LeftShift(rng.Intn(200))
}

func requireInvariants(t *testing.T, x *Int) {
	t.Helper()

	if x.nWords == 0 {
		require.Equal(t, 0, x.offset, spew.Sdump(x))
		return
	}

	require.NotZero(t, x.data[x.nWords-1], spew.Sdump(x))
	require.LessOrEqual(t, x.nWords, len(x.data), spew.Sdump(x))
}

func TestNew(t *testing.T) {
	type TC struct {
		name   string
		seed   uint64
		digits string
		err    error
	}

	tcs := []TC{
		{
			name: "0",
		},
		{
			name:   "0",
			digits: "000000000000",
		},
		{
			name: "18446744073709551615",
			seed: 18446744073709551615,
		},
		{
			name:   "123456789",
			digits: "123456789",
		},
		{
			name:   "1234567891",
			digits: "1234567891",
		},
		{
			name:   "42123",
			seed:   42,
			digits: "123",
		},
		{
			name:   "18446744073709551615" + strings.Repeat("9", 40),
			seed:   18446744073709551615,
			digits: strings.Repeat("9", 40),
		},
		{
			name:   "bad",
			digits: "1",
			err:    oops.New("unexpected"),
		},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			x := New(tc.seed, []byte(tc.digits))
			requireInvariants(t, x)

			want, ok := new(big.Int).SetString(tc.name, 10)
			if tc.err != nil {
				require.False(t, ok)
				return
			}
			require.True(t, ok)

			t.Logf("%s", spew.Sdump(x))
			require.Equal(t, 0, want.Cmp(toBig(x)))
		})
	}
}

func TestLeftShift(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 500; i++ {
		x := randInt(rng)
		want := toBig(x)

		shift := rng.Intn(300)
		want.Lsh(want, uint(shift))

		frozen := x.Clone().Freeze()
		before := toBig(frozen)

		y := frozen.LeftShift(shift)
		requireInvariants(t, y)
		require.Equal(t, 0, want.Cmp(toBig(y)), "shift=%d", shift)
		require.Equal(t, 0, before.Cmp(toBig(frozen)), "frozen value modified")
		if shift != 0 {
			require.NotSame(t, frozen, y)
		}

		z := x.LeftShift(shift)
		require.Same(t, x, z)
		require.Equal(t, 0, want.Cmp(toBig(z)))
	}
}

func TestMulByPow52(t *testing.T) {
	rng := rand.New(rand.NewSource(2))

	p5s := []int{0, 1, 13, 14, 27, 339, 340, 341, 679, 680, 1000, 1500}

	for i, p5 := range p5s {
		for j := 0; j < 20; j++ {
			p2 := rng.Intn(100)
			x := randInt(rng)

			want := toBig(x)
			want.Mul(want, pow52(p5, p2))

			t.Run(fmt.Sprintf("[%d]5^%d*2^%d", i, p5, p2), func(t *testing.T) {
				y := x.MulByPow52(p5, p2)
				requireInvariants(t, y)
				require.Equal(t, 0, want.Cmp(toBig(y)))
			})
		}
	}
}

func TestPow5(t *testing.T) {
	for _, p := range []int{0, 1, 2, 13, 14, 100, 339, 340, 341, 1000, 2000} {
		x := Pow5(p)
		requireInvariants(t, x)
		require.Equal(t, 0, pow52(p, 0).Cmp(toBig(x)), "p=%d", p)
		require.Equal(t, p < pow5CacheSize, x.Frozen(), "p=%d", p)
	}

	// Shifting a cached power must not disturb the cache.
	_ = Pow5(10).LeftShift(77)
	require.Equal(t, 0, pow52(10, 0).Cmp(toBig(Pow5(10))))
}

func TestCmp(t *testing.T) {
	rng := rand.New(rand.NewSource(3))

	for i := 0; i < 1000; i++ {
		x, y := randInt(rng), randInt(rng)
		if i%10 == 0 {
			y = x.Clone()
		}

		require.Equal(t, toBig(x).Cmp(toBig(y)), x.Cmp(y), "%s\n%s", spew.Sdump(x), spew.Sdump(y))

		a, b := randInt(rng), randInt(rng)
		sum := new(big.Int).Add(toBig(a), toBig(b))
		if i%7 == 0 {
			x = a.Add(b)
		}
		require.Equal(t, toBig(x).Cmp(sum), x.AddAndCmp(a, b))
	}

	require.Equal(t, 0, New(0, nil).Cmp(&Int{}))
	require.Equal(t, 1, FromUint64(1).Cmp(&Int{}))
	require.Equal(t, -1, (&Int{}).Cmp(FromUint64(1)))
}

func TestCmpPow52(t *testing.T) {
	type TC struct {
		name   string
		x      *Int
		p5, p2 int
		cmp    int
	}

	tcs := []TC{
		{name: "0 vs 1", x: &Int{}, cmp: -1},
		{name: "1 vs 1", x: FromUint64(1), cmp: 0},
		{name: "2^64 vs 2^64", x: FromUint64(1).LeftShift(64), p2: 64, cmp: 0},
		{name: "2^64+1 vs 2^64", x: FromUint64(1).LeftShift(64).Add(FromUint64(1)), p2: 64, cmp: 1},
		{name: "2^64-1 vs 2^64", x: FromUint64(1<<64 - 1), p2: 64, cmp: -1},
		{name: "3*2^40 vs 2^41", x: FromUint64(3).LeftShift(40), p2: 41, cmp: 1},
		{name: "5^3*2^7", x: FromUint64(125 << 7), p5: 3, p2: 7, cmp: 0},
		{name: "5^400 vs 5^400*2", x: Pow5(400), p5: 400, p2: 1, cmp: -1},
		{name: "5^400*2 vs 5^400", x: Pow5(400).LeftShift(1), p5: 400, cmp: 1},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			require.Equal(t, tc.cmp, tc.x.CmpPow52(tc.p5, tc.p2))
			require.Equal(t, toBig(tc.x).Cmp(pow52(tc.p5, tc.p2)), tc.cmp)
		})
	}
}

func TestSub(t *testing.T) {
	rng := rand.New(rand.NewSource(4))

	for i := 0; i < 1000; i++ {
		x, y := randInt(rng), randInt(rng)
		if x.Cmp(y) < 0 {
			x, y = y, x
		}
		if i%10 == 0 {
			y = x.Clone()
		}

		want := new(big.Int).Sub(toBig(x), toBig(y))

		t.Run(fmt.Sprintf("[%d]left", i), func(t *testing.T) {
			l := x.Clone()
			r := l.SubInPlaceLeft(y)
			require.Same(t, l, r)
			requireInvariants(t, r)
			require.Equal(t, 0, want.Cmp(toBig(r)))
		})

		t.Run(fmt.Sprintf("[%d]right", i), func(t *testing.T) {
			s := y.Clone()
			r := s.SubInPlaceRight(x)
			require.Same(t, s, r)
			requireInvariants(t, r)
			require.Equal(t, 0, want.Cmp(toBig(r)))
		})

		t.Run(fmt.Sprintf("[%d]frozen", i), func(t *testing.T) {
			f := x.Clone().Freeze()
			r := f.SubInPlaceLeft(y)
			require.Equal(t, 0, want.Cmp(toBig(r)))
			require.Equal(t, 0, toBig(x).Cmp(toBig(f)))
		})
	}
}

func TestQuoRemStep(t *testing.T) {
	type TC struct {
		name string
	}

	tcs := []TC{
		{name: "7"},
		{name: "10"},
		{name: "1234567890123456789012345678901234567890"},
		{name: "4940656458412465441765687928682213723651"},
		{name: "9" + strings.Repeat("0", 80) + "1"},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			n := len(tc.name) - 1
			x := New(0, []byte(tc.name))
			s := FromUint64(1).MulByPow52(n, n)

			var got []byte
			for j := 0; j <= n; j++ {
				got = append(got, byte('0'+x.QuoRemStep(s)))
			}

			require.Equal(t, tc.name, string(got))
			require.True(t, x.IsZero())
		})
	}
}

func TestMarshalUnmarshal(t *testing.T) {
	type TC struct {
		name string
		blk  *Block
		data []byte
	}

	tcs := []TC{
		{
			name: "+0",
			blk: &Block{
				Value:    FromUint64(0),
				Negative: false,
			},
			data: []byte{
				0b0000_0000,
			},
		},
		{
			name: "-0",
			blk: &Block{
				Value:    FromUint64(0),
				Negative: true,
			},
			data: []byte{
				0b0000_0001,
			},
		},
		{
			name: "+1",
			blk: &Block{
				Value:    FromUint64(1),
				Negative: false,
			},
			data: []byte{
				0b0000_0010,
			},
		},
		{
			name: "-1",
			blk: &Block{
				Value:    FromUint64(1),
				Negative: true,
			},
			data: []byte{
				0b0000_0011,
			},
		},
		{
			name: "-127",
			blk: &Block{
				Value:    FromUint64(127),
				Negative: true,
			},
			data: []byte{
				0b1111_1111,
			},
		},
		{
			name: "+128",
			blk: &Block{
				Value:    FromUint64(128),
				Negative: false,
			},
			data: []byte{
				0b0000_0001,
				0b0000_0000,
			},
		},
		{
			name: "+4294967296",
			blk: &Block{
				Value:    FromUint64(1 << 32),
				Negative: false,
			},
			data: []byte{
				0b0000_0010,
				0b0000_0000,
				0b0000_0000,
				0b0000_0000,
				0b0000_0000,
			},
		},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			t.Run("marshal", func(t *testing.T) {
				data, err := tc.blk.MarshalBinary()
				require.NoError(t, err)
				require.Equal(t, tc.data, data)
			})

			t.Run("unmarshal", func(t *testing.T) {
				blk := &Block{}
				err := blk.UnmarshalBinary(tc.data)
				require.NoError(t, err)
				require.Equal(t, tc.blk.Negative, blk.Negative)
				require.Equal(t, 0, tc.blk.Value.Cmp(blk.Value), spew.Sdump(blk))

				// These checks ensure that our test case name matches the value.
				i := new(big.Int)
				err = i.UnmarshalText([]byte(tc.name))
				require.NoError(t, err)
				require.Equal(t, 0, new(big.Int).Abs(i).Cmp(toBig(blk.Value)))
			})
		})
	}

	t.Run("frozen", func(t *testing.T) {
		err := Pow5(3).UnmarshalBinary([]byte{1})
		require.Error(t, err)
		require.Contains(t, err.Error(), "frozen value")
	})
}

func BenchmarkMulByPow52(b *testing.B) {
	x := New(0, []byte("4940656458412465441765687928682213723651"))

	for n := 0; n < b.N; n++ {
		_ = x.MulByPow52(400, 17)
	}
}
