package integer

// mutable returns x when it may be modified in place, otherwise a copy.
func (x *Int) mutable() *Int {
	if x.immutable {
		return x.Clone()
	}

	return x
}

// LeftShift returns x * 2^shift. The shift happens in place unless x is
// frozen, in which case a new Int is returned.
func (x *Int) LeftShift(shift int) *Int {
	assert(shift >= 0, "negative shift %d", shift)

	if shift == 0 || x.nWords == 0 {
		return x
	}

	x = x.mutable()

	x.offset += shift / 32

	bits := uint(shift % 32)
	if bits == 0 {
		return x
	}

	var carry uint32
	for i := 0; i < x.nWords; i++ {
		w := x.data[i]
		x.data[i] = w<<bits | carry
		carry = w >> (32 - bits)
	}

	if carry != 0 {
		x.data = append(x.data[:x.nWords], carry)
		x.nWords++
	}

	return x
}

// MulByPow52 returns x * 5^p5 * 2^p2. When p5 is zero this is a LeftShift,
// otherwise a new Int is always returned.
func (x *Int) MulByPow52(p5, p2 int) *Int {
	assert(p5 >= 0 && p2 >= 0, "negative exponent 5^%d 2^%d", p5, p2)

	if x.nWords == 0 {
		return x
	}

	if p5 == 0 {
		return x.LeftShift(p2)
	}

	var r *Int
	if p5 < len(smallPow5) {
		r = x.Clone()
		r.mulAddMe(smallPow5[p5], 0)
	} else {
		r = mul(x, Pow5(p5))
	}

	return r.LeftShift(p2)
}

// mul returns a new Int holding a * b.
func mul(a, b *Int) *Int {
	if a.nWords == 0 || b.nWords == 0 {
		return &Int{}
	}

	data := make([]uint32, a.nWords+b.nWords)
	for i := 0; i < a.nWords; i++ {
		v := uint64(a.data[i])

		var carry uint64
		for j := 0; j < b.nWords; j++ {
			p := v*uint64(b.data[j]) + uint64(data[i+j]) + carry
			data[i+j] = uint32(p)
			carry = p >> 32
		}
		data[i+b.nWords] = uint32(carry)
	}

	r := &Int{
		data:   data,
		offset: a.offset + b.offset,
		nWords: len(data),
	}
	r.trim()

	return r
}

// Cmp compares x and y and returns -1, 0 or +1.
func (x *Int) Cmp(y *Int) int {
	xs, ys := x.size(), y.size()
	if xs != ys {
		if xs > ys {
			return 1
		}

		return -1
	}

	lo := x.offset
	if y.offset < lo {
		lo = y.offset
	}

	for i := xs - 1; i >= lo; i-- {
		a, b := x.word(i), y.word(i)
		if a != b {
			if a > b {
				return 1
			}

			return -1
		}
	}

	return 0
}

// CmpPow52 compares x and 5^p5 * 2^p2.
func (x *Int) CmpPow52(p5, p2 int) int {
	if p5 == 0 {
		// 2^p2 is a single bit at position p2.
		bit := x.BitLen() - 1
		switch {
		case bit < p2:
			return -1
		case bit > p2:
			return 1
		}

		// Same bit length, x is larger if any lower bit is set.
		i := 0
		for x.data[i] == 0 {
			i++
		}
		lowest := (x.offset + i) * 32
		for w := x.data[i]; w&1 == 0; w >>= 1 {
			lowest++
		}
		if lowest < p2 {
			return 1
		}

		return 0
	}

	return x.Cmp(Pow5(p5).LeftShift(p2))
}

// Add returns a new Int holding x + y.
func (x *Int) Add(y *Int) *Int {
	if x.nWords == 0 {
		return y.Clone()
	}
	if y.nWords == 0 {
		return x.Clone()
	}

	lo := x.offset
	if y.offset < lo {
		lo = y.offset
	}
	hi := x.size()
	if y.size() > hi {
		hi = y.size()
	}

	data := make([]uint32, hi-lo+1)

	var carry uint64
	for i := lo; i < hi; i++ {
		s := uint64(x.word(i)) + uint64(y.word(i)) + carry
		data[i-lo] = uint32(s)
		carry = s >> 32
	}
	data[hi-lo] = uint32(carry)

	r := &Int{
		data:   data,
		offset: lo,
		nWords: len(data),
	}
	r.trim()

	return r
}

// AddAndCmp compares x and a + b.
func (x *Int) AddAndCmp(a, b *Int) int {
	return x.Cmp(a.Add(b))
}

// realign lowers the offset of the mutable x to off by materializing low
// zero words, and grows storage to hold at least size words.
func (x *Int) realign(off, size int) {
	if off < x.offset {
		d := x.offset - off

		data := make([]uint32, x.nWords+d, x.nWords+d+1)
		copy(data[d:], x.data[:x.nWords])

		x.data = data
		x.nWords += d
		x.offset = off
	}

	if n := size - x.offset; n > x.nWords {
		if n > cap(x.data) {
			data := make([]uint32, n)
			copy(data, x.data[:x.nWords])
			x.data = data
		} else {
			x.data = x.data[:n]
			clear(x.data[x.nWords:])
		}
		x.nWords = n
	}
}

// SubInPlaceLeft returns x - s. The storage of x is reused unless x is
// frozen. The result must not be negative.
func (x *Int) SubInPlaceLeft(s *Int) *Int {
	if Debug {
		assert(x.Cmp(s) >= 0, "negative difference")
	}

	if s.nWords == 0 {
		return x
	}

	x = x.mutable()
	x.realign(s.offset, x.size())

	var borrow uint64
	for i := 0; i < x.nWords; i++ {
		d := uint64(x.data[i]) - uint64(s.word(i+x.offset)) - borrow
		x.data[i] = uint32(d)
		borrow = d >> 63
	}

	x.trim()

	return x
}

// SubInPlaceRight returns m - x. The storage of x is reused unless x is
// frozen. The result must not be negative.
func (x *Int) SubInPlaceRight(m *Int) *Int {
	if Debug {
		assert(m.Cmp(x) >= 0, "negative difference")
	}

	x = x.mutable()

	off := m.offset
	if x.nWords != 0 && x.offset < off {
		off = x.offset
	}
	x.realign(off, m.size())

	var borrow uint64
	for i := 0; i < x.nWords; i++ {
		d := uint64(m.word(i+x.offset)) - uint64(x.data[i]) - borrow
		x.data[i] = uint32(d)
		borrow = d >> 63
	}

	x.trim()

	return x
}

// QuoRemStep performs one step of long division: it returns q = x / s and
// replaces x with (x mod s) * 10. The quotient must be a single decimal
// digit and x must not be frozen.
func (x *Int) QuoRemStep(s *Int) (q uint32) {
	assert(!x.immutable, "division step on frozen value")
	assert(s.nWords != 0, "division by zero")

	for x.Cmp(s) >= 0 {
		x.SubInPlaceLeft(s)
		q++
	}

	assert(q < 10, "quotient %d is not a digit", q)

	x.mulAddMe(10, 0)

	return q
}
