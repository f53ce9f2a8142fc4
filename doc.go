// Package kodec converts between binary floating point and decimal text.
//
// Rendering produces the shortest decimal that parses back to the same bits:
//
//	buf := kodec.AppendFloat64(nil, 0.1) // "0.1"
//
// Parsing returns the binary value nearest to the exact value of the
// literal, ties to even, no matter how many digits it has:
//
//	v, err := kodec.ParseFloat64(stream.String("2.2250738585072014E-308"), 0, 23, kodec.Options{})
//
// Both directions work on any stream.Reader or stream.Writer, so a tokenizer
// can convert a number in place inside its own buffer.
//
// # Text
//
// Rendered values always carry a fractional digit. Magnitudes from 10^-3 up to
// but not including 10^7 use plain notation. The rest use scientific notation
// with an upper case E and no plus sign:
//
//	| Value      | Text                   |
//	|------------|------------------------|
//	| 0          | 0.0                    |
//	| 100        | 100.0                  |
//	| 1e7        | 1.0E7                  |
//	| 0.001      | 0.001                  |
//	| 1e-4       | 1.0E-4                 |
//	| MaxFloat64 | 1.7976931348623157E308 |
//	| NaN        | NaN                    |
//	| -Inf       | -Infinity              |
//	|------------|------------------------|
//
// # Errors
//
// A malformed literal is passed to Options.Handler as an *atof.SyntaxError.
// Whatever the handler returns is returned to the caller along with NaN. The
// default handler, Raise, returns the error with a stack trace.
package kodec
