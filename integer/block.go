package integer

// Block is a signed integer number.
type Block struct {
	Value    *Int
	Negative bool
}

// MarshalBinary implements encoding.BinaryMarshaler. The magnitude is
// shifted left one bit and the sign is stored in the lowest bit (aka zigzag).
func (b Block) MarshalBinary() (data []byte, err error) {
	if b.Value == nil {
		return nil, Error.New("missing value")
	}

	// Note: a negative zero keeps its sign bit.
	i := b.Value.Clone().LeftShift(1)
	if b.Negative {
		i = i.Add(FromUint64(1))
	}

	return i.MarshalBinary()
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (b *Block) UnmarshalBinary(data []byte) (err error) {
	defer Error.WrapP(&err)

	if len(data) == 0 {
		return Error.New("empty block")
	}

	b.Negative = data[len(data)-1]&1 == 1

	shifted := make([]byte, len(data))

	var carry byte
	for i, v := range data {
		shifted[i] = carry<<7 | v>>1
		carry = v & 1
	}

	b.Value = &Int{}

	return b.Value.UnmarshalBinary(shifted)
}
