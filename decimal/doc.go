// Package decimal provides a fixed point base 10 number and its conversions
// to and from binary floating point.
//
// The equation for a decimal number is:
//
//	number = value * 10 ^ scale
//
// Where number is fixed point number, value is an unscaled integer, and scale
// is base 10 exponent. For example:
//
//	1.23 = 123 * 10^-2
//
// Scale may be up to ±(2^21 - 1). Value is unbounded.
//
// # Conversions
//
// FromFloat64 and FromFloat32 produce the shortest decimal that rounds back
// to the same binary value, so 0.1 becomes 1 * 10^-1. Exact produces the full
// expansion of the binary value instead, so 0.1 becomes
// 1000000000000000055511151231257827021181583404541015625 * 10^-55.
// Float64 and Float32 round back to the nearest binary value, ties to even.
//
// # Encoding
//
// The decimal is laid out first by the unscaled integer value (with sign bit),
// then scale value (with sign bit), and finally the last 2 bits are the scale
// size.
//
// All integers in the format are encoded big-endian with a trailing sign bit
// (aka zigzag).
//
// The scale size is encoded as two bits:
//
//	| 0 | 1 | Available Scale |
//	|-------|-----------------|
//	| 0 . 0 | No Scale        | 1 byte, remaining bits are zero.
//	| 0 . 1 | ±2^5 Scale      | 1 byte, remaining bits are the scale value.
//	| 1 . 0 | ±2^13 Scale     | 2 bytes
//	| 1 . 1 | ±2^21 Scale     | 3 bytes
//	|-------|-----------------|
//	| 0 | 1 |
//
// # Examples
//
// Zero (2 bytes)
//
//	| 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 |
//	|---------------|---------------|
//	| 0 . 0 . 0 . 0 . 0 . 0 . 0 | 0 | Value of +0.
//	|-------------------------------|
//	| 0 . 0 . 0 . 0 . 0 . 0 | 0 . 0 | No Scale.
//	|---------------|---------------|
//	| 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 |
//
// USD 0.0001 (2 bytes)
//
//	| 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 |
//	|---------------|---------------|
//	| 0 . 0 . 0 . 0 . 0 . 0 . 1 | 0 | Value of +1.
//	|-------------------------------|
//	| 0 . 0 . 1 . 0 . 0 | 1 | 0 . 1 | ±2^5 Scale with scale of -4.
//	|---------------|---------------|
//	| 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 |
//
// USD 20.47 (3 bytes)
//
//	| 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 |
//	|---------------|---------------|
//	| 0 . 0 . 0 . 0 . 1 . 1 . 1 . 1 | Value of +2047.
//	| 1 . 1 . 1 . 1 . 1 . 1 . 1 | 0 |
//	|-------------------------------|
//	| 0 . 0 . 0 . 1 . 0 | 1 | 0 . 1 | ±2^5 Scale with scale of -2.
//	|---------------|---------------|
//	| 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 |
//
// Smallest float64 subnormal, 49 * 10^-325 (3 bytes)
//
//	| 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 |
//	|---------------|---------------|
//	| 0 . 1 . 1 . 0 . 0 . 0 . 1 | 0 | Value of +49.
//	|-------------------------------|
//	| 0 . 0 . 0 . 0 . 1 . 0 . 1 . 0 | ±2^13 Scale with scale of -325.
//	| 0 . 0 . 1 . 0 . 1 | 1 | 1 . 0 |
//	|---------------|---------------|
//	| 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 |
package decimal
