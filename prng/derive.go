package prng

import (
	"golang.org/x/exp/constraints"
)

// Derived draws over any Source. These mirror the usual java.util.Random
// shapes but are built solely on the 64-bit primitive.

// Float64 returns a uniform float64 in [0, 1) with 53 bits of precision.
func Float64(s Source) float64 {
	return float64(s.Uint64()>>11) / (1 << 53)
}

// Float32 returns a uniform float32 in [0, 1).
func Float32(s Source) float32 {
	return float32(s.Uint64()>>40) / (1 << 24)
}

// Uint32 returns a uniform uint32.
func Uint32(s Source) uint32 {
	return uint32(s.Uint64() >> 32)
}

// Int63 returns a uniform non-negative int64.
func Int63(s Source) int64 {
	return int64(s.Uint64() >> 1)
}

// Bool returns a uniform boolean.
func Bool(s Source) bool {
	return s.Uint64()>>63 == 1
}

// N returns a uniform value in [0, n). It rejects draws from the incomplete
// top window so small n carry no modulo bias. n must be > 0.
func N[T constraints.Unsigned](s Source, n T) T {
	if n&(n-1) == 0 { // power of two
		return T(s.Uint64()) & (n - 1)
	}

	max := ^uint64(0) - ^uint64(0)%uint64(n)
	v := s.Uint64()
	for v >= max {
		v = s.Uint64()
	}
	return T(v % uint64(n))
}
