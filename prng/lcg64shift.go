// Package prng implements a jump-capable 64-bit linear congruential
// pseudorandom generator with an xorshift output transform, after the
// lcg64_shift generator of Bauke's TRNG library. The base recursion
// r' = a*r + b mod 2^64 is followed by a bit-mixing transform that breaks up
// the lattice structure of the raw recursion. Jumping ahead an arbitrary
// number of steps costs O(log n), and one sequence can be split into p
// disjoint leapfrogged sub-streams for parallel consumption.
//
// The generator is not cryptographically secure.
package prng

import (
	"errors"
	"fmt"

	"github.com/daystram/splitrand/arith"
)

var (
	ErrInvalidJump  = errors.New("invalid jump")
	ErrInvalidSplit = errors.New("invalid split")
	ErrSeedLocked   = errors.New("seed locked")
)

// Source is the narrow generation surface consumed by collaborators. Derived
// draws (floats, bounded integers, booleans) are built on top of it, see
// Float64 and friends.
type Source interface {
	Uint64() uint64
}

// LCG64Shift is the bare engine. It is not safe for concurrent use: wrap it
// in a Locked, or partition streams with a Factory, before sharing.
type LCG64Shift struct {
	param Param
	r     uint64
}

type Option func(*LCG64Shift)

// WithParam sets the recursion parameters. Defaults to ParamDefault.
func WithParam(param Param) Option {
	return func(g *LCG64Shift) {
		g.param = param
	}
}

// WithSeed sets the initial state. Defaults to an entropy-derived seed.
func WithSeed(seed uint64) Option {
	return func(g *LCG64Shift) {
		g.r = seed
	}
}

func New(opts ...Option) *LCG64Shift {
	g := &LCG64Shift{
		param: ParamDefault,
		r:     Seed(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// SetSeed overwrites the state word unconditionally, restarting the stream.
func (g *LCG64Shift) SetSeed(seed uint64) {
	g.r = seed
}

// Uint64 advances the recursion one step and returns the mixed output.
func (g *LCG64Shift) Uint64() uint64 {
	g.step()

	t := g.r
	t ^= t >> 17
	t ^= t << 31
	t ^= t >> 8
	return t
}

func (g *LCG64Shift) step() {
	g.r = g.param.A*g.r + g.param.B
}

// Jump advances the stream position by step. Small steps iterate the raw
// recursion; larger ones decompose step in binary and compose power-of-two
// jumps, costing O(log step).
func (g *LCG64Shift) Jump(step uint64) {
	if step < 16 {
		for i := uint64(0); i < step; i++ {
			g.step()
		}
		return
	}

	for i := 0; step != 0; i, step = i+1, step>>1 {
		if step&1 == 1 {
			g.jump2(i)
		}
	}
}

// Jump2 advances the stream position by exactly 2^s steps in closed form.
// s must be in [0, 64).
func (g *LCG64Shift) Jump2(s int) error {
	if s < 0 || s >= 64 {
		return fmt.Errorf("%w: jump2 size must be in [0, 64) but was %d", ErrInvalidJump, s)
	}
	g.jump2(s)
	return nil
}

func (g *LCG64Shift) jump2(s int) {
	g.r = g.r*arith.Pow(g.param.A, 1<<s) +
		arith.GeometricSum(1<<s, g.param.A)*g.param.B
}

// Split turns this generator into the s-th of p disjoint leapfrogged
// sub-streams of the original sequence: subsequent Uint64 calls yield
// elements s, s+p, s+2p, ... of the undivided stream. Splitting rewrites the
// recursion parameters, not just the position. p must be >= 1 and s in
// [0, p); p == 1 is a no-op.
func (g *LCG64Shift) Split(p, s int) error {
	if p < 1 {
		return fmt.Errorf("%w: p must be >= 1 but was %d", ErrInvalidSplit, p)
	}
	if s < 0 || s >= p {
		return fmt.Errorf("%w: s must be in [0, %d) but was %d", ErrInvalidSplit, p, s)
	}

	if p > 1 {
		g.Jump(uint64(s) + 1)
		b := g.param.B * arith.GeometricSum(uint64(p), g.param.A)
		a := arith.Pow(g.param.A, uint64(p))
		g.param = Param{A: a, B: b}
		g.backward()
	}
	return nil
}

// backward steps the stream position back by one under the current
// parameters, by jumping 2^64-1 = sum(2^i, i=0..63) steps forward.
func (g *LCG64Shift) backward() {
	for i := 0; i < 64; i++ {
		g.jump2(i)
	}
}

// Clone returns an independent engine at the same position with the same
// parameters.
func (g *LCG64Shift) Clone() *LCG64Shift {
	gg := *g
	return &gg
}

// Param returns the current recursion parameters. After Split these differ
// from the constructed ones.
func (g *LCG64Shift) Param() Param {
	return g.param
}

func (g *LCG64Shift) String() string {
	return fmt.Sprintf("LCG64Shift[%s, r=%d]", g.param, g.r)
}
