package kodec

import (
	"github.com/adokky/kodec/ftoa"
	"github.com/adokky/kodec/stream"
)

// Maximum rendered lengths.
const (
	MaxLen64 = ftoa.MaxLen64
	MaxLen32 = ftoa.MaxLen32
)

// WriteFloat64 writes the shortest text of v to w at pos and returns the
// number of bytes written. w must have room for MaxLen64 bytes.
func WriteFloat64[W stream.Writer](w W, pos int, v float64) int {
	return ftoa.Put64(w, pos, v)
}

// WriteFloat32 writes the shortest text of v to w at pos and returns the
// number of bytes written. w must have room for MaxLen32 bytes.
func WriteFloat32[W stream.Writer](w W, pos int, v float32) int {
	return ftoa.Put32(w, pos, v)
}

// AppendFloat64 appends the shortest text of v to dst.
func AppendFloat64(dst []byte, v float64) []byte {
	return ftoa.Append64(dst, v)
}

// AppendFloat32 appends the shortest text of v to dst.
func AppendFloat32(dst []byte, v float32) []byte {
	return ftoa.Append32(dst, v)
}

// FormatFloat64 returns the shortest text of v.
func FormatFloat64(v float64) string {
	var buf [MaxLen64]byte

	return string(buf[:ftoa.Put64(stream.Bytes(buf[:]), 0, v)])
}

// FormatFloat32 returns the shortest text of v.
func FormatFloat32(v float32) string {
	var buf [MaxLen32]byte

	return string(buf[:ftoa.Put32(stream.Bytes(buf[:]), 0, v)])
}
