package atof

import (
	"fmt"

	"github.com/zeebo/errs"

	"github.com/adokky/kodec/stream"
)

// Error is the error class for this package.
var Error = errs.Class("atof")

// ErrMalformed is matched by every *SyntaxError with errors.Is.
var ErrMalformed = Error.New("malformed number")

// maxText bounds the copy of the offending input kept in a SyntaxError.
const maxText = 64

// SyntaxError describes a literal that does not match the number grammar.
type SyntaxError struct {
	// Format is the name of the target format.
	Format string

	// Start and End delimit the literal.
	Start, End int

	// Pos is where scanning stopped.
	Pos int

	// Text is the literal, truncated to 64 bytes.
	Text string

	Reason string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("malformed %s literal %q at [%d, %d) offset %d: %s",
		e.Format, e.Text, e.Start, e.End, e.Pos, e.Reason)
}

// Unwrap returns ErrMalformed.
func (e *SyntaxError) Unwrap() error {
	return ErrMalformed
}

func syntaxError[R stream.Reader](d *Digits, r R, start, end, pos int, reason string) error {
	n := end - start
	if n > maxText {
		n = maxText
	}

	text := make([]byte, n)
	for i := range text {
		text[i] = r.ByteAt(start + i)
	}

	return &SyntaxError{
		Format: d.format.Name,
		Start:  start,
		End:    end,
		Pos:    pos,
		Text:   string(text),
		Reason: reason,
	}
}
