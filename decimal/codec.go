package decimal

import (
	"github.com/adokky/kodec/integer"
)

// Scale size codes stored in the last two bits.
const (
	scaleNone byte = 0b00
	scale1    byte = 0b01
	scale2    byte = 0b10
	scale3    byte = 0b11
)

// MarshalBinary implements encoding.BinaryMarshaler.
func (b Block) MarshalBinary() (data []byte, err error) {
	defer Error.WrapP(&err)

	if b.Value == nil {
		return nil, Error.New("missing value")
	}

	if b.Scale < MinScale || b.Scale > MaxScale {
		return nil, Error.New("scale out of range: %d", b.Scale)
	}

	data, err = integer.Block{
		Value:    b.Value,
		Negative: b.Negative,
	}.MarshalBinary()
	if err != nil {
		return nil, err
	}

	// Scale with trailing sign bit, then two bits of size.
	zz := uint32(b.Scale) << 1
	if b.Scale < 0 {
		zz = uint32(-b.Scale)<<1 | 1
	}

	switch {
	case b.Scale == 0:
		data = append(data, scaleNone)
	case zz < 1<<6:
		data = append(data,
			byte(zz<<2)|scale1,
		)
	case zz < 1<<14:
		data = append(data,
			byte(zz>>6),
			byte(zz<<2)|scale2,
		)
	default:
		data = append(data,
			byte(zz>>14),
			byte(zz>>6),
			byte(zz<<2)|scale3,
		)
	}

	return data, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (b *Block) UnmarshalBinary(data []byte) (err error) {
	defer Error.WrapP(&err)

	if len(data) < 2 {
		return Error.New("short block: %d bytes", len(data))
	}

	last := data[len(data)-1]

	var zz uint32
	var n int

	switch last & 0b11 {
	case scaleNone:
		if last != 0 {
			return Error.New("invalid scale byte: %08b", last)
		}
		n = 1
	case scale1:
		zz = uint32(last >> 2)
		n = 1
	case scale2:
		zz = uint32(data[len(data)-2])<<6 | uint32(last>>2)
		n = 2
	case scale3:
		if len(data) < 4 {
			return Error.New("short block: %d bytes", len(data))
		}
		zz = uint32(data[len(data)-3])<<14 |
			uint32(data[len(data)-2])<<6 |
			uint32(last>>2)
		n = 3
	}

	if len(data)-n < 1 {
		return Error.New("short block: %d bytes", len(data))
	}

	v := &integer.Block{}

	err = v.UnmarshalBinary(data[:len(data)-n])
	if err != nil {
		return err
	}

	b.Value = v.Value
	b.Negative = v.Negative

	b.Scale = int32(zz >> 1)
	if zz&1 == 1 {
		b.Scale = -b.Scale
	}

	return nil
}
