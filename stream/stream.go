// Package stream defines the single byte capabilities the float conversions
// read from and write into. Tokenizers and buffers of the surrounding codec
// implement these to hand a span of text to the parser or to receive rendered
// digits without copying.
package stream

// Reader returns the byte at an absolute position.
type Reader interface {
	ByteAt(pos int) byte
}

// Writer stores a byte at an absolute position.
type Writer interface {
	SetByteAt(pos int, b byte)
}

// Bytes is a byte slice that is both a Reader and a Writer.
type Bytes []byte

// ByteAt implements Reader.
func (b Bytes) ByteAt(pos int) byte { return b[pos] }

// SetByteAt implements Writer.
func (b Bytes) SetByteAt(pos int, v byte) { b[pos] = v }

// String is a read-only Reader over a string.
type String string

// ByteAt implements Reader.
func (s String) ByteAt(pos int) byte { return s[pos] }
