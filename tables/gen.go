//go:build ignore

// This program generates pow10.go. Run it with "go run gen.go" from the
// tables directory.
package main

import (
	"bytes"
	"fmt"
	"go/format"
	"log"
	"math/big"
	"os"
)

const (
	gMin = -342
	gMax = 324
)

func main() {
	buf := &bytes.Buffer{}

	fmt.Fprint(buf, `// Code generated by "go run gen.go"; DO NOT EDIT.

package tables

// g holds, for each p in [GMin, GMax], the 126-bit integer
// floor(10^p / 2^r) + 1 split into its upper and lower 63 bits, where
// r = Flog2Pow10(p) - 125.
var g = [GMax - GMin + 1][2]uint64{
`)

	mask63 := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 63), big.NewInt(1))

	for p := gMin; p <= gMax; p++ {
		x := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(abs(p))), nil)

		g := new(big.Int)
		if p >= 0 {
			r := x.BitLen() - 1 - 125
			if r >= 0 {
				g.Rsh(x, uint(r))
			} else {
				g.Lsh(x, uint(-r))
			}
		} else {
			r := -x.BitLen() - 125
			g.Lsh(big.NewInt(1), uint(-r))
			g.Quo(g, x)
		}
		g.Add(g, big.NewInt(1))

		g1 := new(big.Int).Rsh(g, 63)
		g0 := new(big.Int).And(g, mask63)

		fmt.Fprintf(buf, "\t{0x%016x, 0x%016x}, // %d\n", g1.Uint64(), g0.Uint64(), p)
	}

	fmt.Fprint(buf, "}\n")

	src, err := format.Source(buf.Bytes())
	if err != nil {
		log.Fatal(err)
	}

	err = os.WriteFile("pow10.go", src, 0o644)
	if err != nil {
		log.Fatal(err)
	}
}

func abs(p int) int {
	if p < 0 {
		return -p
	}

	return p
}
