// Package jsonnum provides float types whose JSON text is the shortest
// round-trip decimal and whose parsing is correctly rounded.
//
// JSON has no literal for NaN or the infinities, so they are written as the
// strings "NaN", "Infinity" and "-Infinity". Quoted numbers are accepted when
// reading.
package jsonnum

import (
	"math"

	"github.com/goccy/go-json"
	"github.com/zeebo/errs"

	"github.com/adokky/kodec"
	"github.com/adokky/kodec/stream"
)

// Error is the error class for this package.
var Error = errs.Class("jsonnum")

var (
	_ json.Marshaler   = Float64(0)
	_ json.Unmarshaler = (*Float64)(nil)
	_ json.Marshaler   = Float32(0)
	_ json.Unmarshaler = (*Float32)(nil)
)

// Float64 is a float64 with exact JSON text.
type Float64 float64

// MarshalJSON implements json.Marshaler.
func (f Float64) MarshalJSON() ([]byte, error) {
	v := float64(f)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return quote(kodec.AppendFloat64(nil, v)), nil
	}

	return kodec.AppendFloat64(nil, v), nil
}

// UnmarshalJSON implements json.Unmarshaler. null leaves f unchanged.
func (f *Float64) UnmarshalJSON(data []byte) (err error) {
	defer Error.WrapP(&err)

	text, special, ok := unquote(data)
	if !ok {
		return nil
	}

	v, err := kodec.ParseFloat64(stream.Bytes(text), 0, len(text), kodec.Options{AllowSpecial: special})
	if err != nil {
		return err
	}

	*f = Float64(v)

	return nil
}

// Float32 is a float32 with exact JSON text.
type Float32 float32

// MarshalJSON implements json.Marshaler.
func (f Float32) MarshalJSON() ([]byte, error) {
	v := float32(f)
	if v != v || math.IsInf(float64(v), 0) {
		return quote(kodec.AppendFloat32(nil, v)), nil
	}

	return kodec.AppendFloat32(nil, v), nil
}

// UnmarshalJSON implements json.Unmarshaler. null leaves f unchanged.
func (f *Float32) UnmarshalJSON(data []byte) (err error) {
	defer Error.WrapP(&err)

	text, special, ok := unquote(data)
	if !ok {
		return nil
	}

	v, err := kodec.ParseFloat32(stream.Bytes(text), 0, len(text), kodec.Options{AllowSpecial: special})
	if err != nil {
		return err
	}

	*f = Float32(v)

	return nil
}

// Number converts a json.Number, as produced by a decoder with UseNumber,
// to the nearest float64.
func Number(n json.Number) (float64, error) {
	s := string(n)

	v, err := kodec.ParseFloat64(stream.String(s), 0, len(s), kodec.Options{})
	if err != nil {
		return v, Error.Wrap(err)
	}

	return v, nil
}

func quote(text []byte) []byte {
	out := make([]byte, 0, len(text)+2)
	out = append(out, '"')
	out = append(out, text...)

	return append(out, '"')
}

// unquote strips the quotes of a JSON string. Only quoted text may name a
// special value. ok is false for null.
func unquote(data []byte) (text []byte, special, ok bool) {
	if string(data) == "null" {
		return nil, false, false
	}

	if len(data) >= 2 && data[0] == '"' && data[len(data)-1] == '"' {
		return data[1 : len(data)-1], true, true
	}

	return data, false, true
}
