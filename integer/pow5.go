package integer

import "github.com/adokky/kodec/tables"

// pow5CacheSize is the number of powers of five kept in the shared cache.
const pow5CacheSize = 340

var smallPow5 = tables.Pow5

// pow5Cache holds the frozen values 5^0 through 5^(pow5CacheSize-1). It is
// filled during package initialization and only read afterwards.
var pow5Cache = func() (cache [pow5CacheSize]*Int) {
	cache[0] = FromUint64(1).Freeze()
	for i := 1; i < pow5CacheSize; i++ {
		p := cache[i-1].Clone()
		p.mulAddMe(5, 0)
		cache[i] = p.Freeze()
	}

	return cache
}()

// Pow5 returns 5^p. Results below the cache size are shared frozen values,
// larger powers are computed by repeated halving of the exponent.
func Pow5(p int) *Int {
	assert(p >= 0, "negative exponent %d", p)

	if p < pow5CacheSize {
		return pow5Cache[p]
	}

	q := p >> 1
	r := p - q

	half := Pow5(q)
	if r < len(smallPow5) {
		x := half.Clone()
		x.mulAddMe(smallPow5[r], 0)

		return x
	}

	return mul(half, Pow5(r))
}
