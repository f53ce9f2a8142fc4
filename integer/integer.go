// Package integer provides the arbitrary precision unsigned integer used by
// the float conversion correction loops.
//
// An Int is stored as little-endian base 2^32 words. Low order zero words are
// not stored, they are counted by an offset instead, so multiplying by large
// powers of two is cheap:
//
//	value = data[0:nWords] * 2^(32*offset)
//
// The top stored word is never zero. Zero is represented by nWords == 0 and
// offset == 0.
//
// Instances may be frozen. A frozen Int is never modified in place and every
// operation that would otherwise mutate it returns a fresh Int instead. The
// shared powers of five cache is frozen.
package integer

import (
	"encoding/binary"

	"github.com/calebcase/oops"
	"github.com/zeebo/errs"
)

// Error is the error class for this package.
var Error = errs.Class("integer")

// ErrFrozen is returned when an operation would modify a frozen Int in place.
var ErrFrozen = Error.New("frozen value")

// Int is a non-negative integer of arbitrary size.
type Int struct {
	data      []uint32
	offset    int
	nWords    int
	immutable bool
}

// FromUint64 returns a new Int holding v.
func FromUint64(v uint64) *Int {
	x := &Int{
		data:   []uint32{uint32(v), uint32(v >> 32)},
		nWords: 2,
	}
	x.trim()

	return x
}

// New returns seed*10^len(digits) + digits, where digits are ASCII decimal
// digits. Digits are accumulated nine at a time.
func New(seed uint64, digits []byte) *Int {
	x := &Int{
		data:   make([]uint32, 2, 2+(len(digits)+8)/9),
		nWords: 2,
	}
	x.data[0] = uint32(seed)
	x.data[1] = uint32(seed >> 32)

	i := 0
	for ; i+9 <= len(digits); i += 9 {
		var v uint32
		for _, c := range digits[i : i+9] {
			v = 10*v + uint32(c-'0')
		}

		x.mulAddMe(1_000_000_000, v)
	}

	if i < len(digits) {
		var v uint32
		f := uint32(1)
		for _, c := range digits[i:] {
			v = 10*v + uint32(c-'0')
			f *= 10
		}

		x.mulAddMe(f, v)
	}

	x.trim()

	return x
}

// IsZero reports whether x is zero.
func (x *Int) IsZero() bool {
	return x.nWords == 0
}

// Frozen reports whether x is immutable.
func (x *Int) Frozen() bool {
	return x.immutable
}

// Freeze marks x immutable and returns it.
func (x *Int) Freeze() *Int {
	x.immutable = true

	return x
}

// Clone returns a mutable copy of x.
func (x *Int) Clone() *Int {
	data := make([]uint32, x.nWords, x.nWords+1)
	copy(data, x.data[:x.nWords])

	return &Int{
		data:   data,
		offset: x.offset,
		nWords: x.nWords,
	}
}

// size returns the number of words including the implicit low zero words.
func (x *Int) size() int {
	return x.nWords + x.offset
}

// word returns the word at absolute index i.
func (x *Int) word(i int) uint32 {
	i -= x.offset
	if i < 0 || i >= x.nWords {
		return 0
	}

	return x.data[i]
}

// trim re-establishes the no leading zero word invariant.
func (x *Int) trim() {
	for x.nWords > 0 && x.data[x.nWords-1] == 0 {
		x.nWords--
	}

	if x.nWords == 0 {
		x.offset = 0
	}
}

// mulAddMe sets x = x*m + a in place. x must be mutable.
func (x *Int) mulAddMe(m, a uint32) {
	carry := uint64(a)
	for i := 0; i < x.nWords; i++ {
		p := uint64(x.data[i])*uint64(m) + carry
		x.data[i] = uint32(p)
		carry = p >> 32
	}

	if carry != 0 {
		x.data = append(x.data[:x.nWords], uint32(carry))
		x.nWords++
	}
}

// BitLen returns the length of x in bits.
func (x *Int) BitLen() int {
	if x.nWords == 0 {
		return 0
	}

	top := x.data[x.nWords-1]
	n := 0
	for ; top != 0; top >>= 1 {
		n++
	}

	return 32*(x.size()-1) + n
}

// Bytes returns the big-endian bytes of x without leading zeros.
func (x *Int) Bytes() []byte {
	n := (x.BitLen() + 7) / 8
	out := make([]byte, 4*x.size())

	for i := 0; i < x.size(); i++ {
		binary.BigEndian.PutUint32(out[len(out)-4*(i+1):], x.word(i))
	}

	return out[len(out)-n:]
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (x *Int) MarshalBinary() (data []byte, err error) {
	data = x.Bytes()

	// Note: zero has no significant bytes, but we desire zero to be an
	// actual zero byte.
	if len(data) == 0 {
		data = []byte{0}
	}

	return data, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (x *Int) UnmarshalBinary(data []byte) (err error) {
	if x.immutable {
		return oops.Trace(ErrFrozen)
	}

	n := (len(data) + 3) / 4
	x.data = make([]uint32, n)
	x.offset = 0
	x.nWords = n

	for i := range x.data {
		end := len(data) - 4*i
		start := end - 4
		if start < 0 {
			start = 0
		}

		var w uint32
		for _, b := range data[start:end] {
			w = w<<8 | uint32(b)
		}
		x.data[i] = w
	}

	// Move whole low zero words into the offset.
	z := 0
	for z < x.nWords && x.data[z] == 0 {
		z++
	}
	if z < x.nWords {
		x.data = x.data[z:]
		x.nWords -= z
		x.offset = z
	}

	x.trim()

	return nil
}
