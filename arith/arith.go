// Package arith implements modular arithmetic on 64-bit words. All operations
// are carried out modulo 2^64, which maps directly onto Go's wrapping uint64
// arithmetic.
package arith

import (
	"math/bits"
)

// Pow computes a^e mod 2^64 by binary exponentiation.
func Pow(a, e uint64) uint64 {
	r := uint64(1)
	for e != 0 {
		if e&1 == 1 {
			r *= a
		}
		a *= a
		e >>= 1
	}
	return r
}

// PowerProduct computes prod(1+a^(2^i), i=0..l-1) mod 2^64.
func PowerProduct(l, a uint64) uint64 {
	p := a
	res := uint64(1)
	for i := uint64(0); i < l; i++ {
		res *= 1 + p
		p *= p
	}
	return res
}

// GeometricSum computes sum(a^i, i=0..s-1) mod 2^64 in O(log s) by
// decomposing s in binary and folding power-of-two windows with PowerProduct.
func GeometricSum(s, a uint64) uint64 {
	if s == 0 {
		return 0
	}

	var y uint64
	e := Log2Floor(s)
	p := a
	for l := uint64(0); l <= e; l++ {
		if (uint64(1)<<l)&s != 0 {
			y = PowerProduct(l, a) + p*y
		}
		p *= p
	}
	return y
}

// Log2Floor returns the bit length of s minus one. s must be >= 1.
func Log2Floor(s uint64) uint64 {
	return uint64(bits.Len64(s)) - 1
}
