package kodec

import (
	"math"
	"sync"

	"github.com/adokky/kodec/atof"
	"github.com/adokky/kodec/stream"
)

// Scratch digit buffers. Checked out buffers are only touched by the calling
// goroutine.
var (
	digits64 = sync.Pool{New: func() any { return atof.NewDigits(atof.Float64Format) }}
	digits32 = sync.Pool{New: func() any { return atof.NewDigits(atof.Float32Format) }}
)

func release(p *sync.Pool, d *atof.Digits) {
	d.Reset()
	p.Put(d)
}

// ParseFloat64 returns the float64 nearest to the literal r[start:end]. A
// malformed literal yields NaN and whatever opts.Handler returns.
func ParseFloat64[R stream.Reader](r R, start, end int, opts Options) (float64, error) {
	d := digits64.Get().(*atof.Digits)
	defer release(&digits64, d)

	err := atof.Scan(d, r, start, end, opts.AllowSpecial)
	if err != nil {
		return math.NaN(), opts.handle(err)
	}

	return atof.Float64(d), nil
}

// ParseFloat32 returns the float32 nearest to the literal r[start:end]. A
// malformed literal yields NaN and whatever opts.Handler returns.
func ParseFloat32[R stream.Reader](r R, start, end int, opts Options) (float32, error) {
	d := digits32.Get().(*atof.Digits)
	defer release(&digits32, d)

	err := atof.Scan(d, r, start, end, opts.AllowSpecial)
	if err != nil {
		return float32(math.NaN()), opts.handle(err)
	}

	return atof.Float32(d), nil
}

// Parse64 parses s with Infinity and NaN enabled.
func Parse64(s string) (float64, error) {
	return ParseFloat64(stream.String(s), 0, len(s), Options{AllowSpecial: true})
}

// Parse32 parses s with Infinity and NaN enabled.
func Parse32(s string) (float32, error) {
	return ParseFloat32(stream.String(s), 0, len(s), Options{AllowSpecial: true})
}
