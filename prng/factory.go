package prng

import (
	"sync"
)

const (
	// stepBase is the stride between blocks handed to contexts: each stream
	// may draw up to 2^56 values before reaching its neighbor's window.
	stepBase = 1 << 56

	// maxBlocks caps the streams per seed epoch. Past it the factory redraws
	// its base seed and starts over, so blocks of different epochs are only
	// statistically, not arithmetically, disjoint.
	maxBlocks = 128
)

// Factory hands out engines on pairwise disjoint blocks of one base sequence,
// one per logical context (worker goroutine, task). Allocation takes a lock;
// generation on the returned streams is lock-free.
type Factory struct {
	mu    sync.Mutex
	param Param
	seed  uint64
	block int
}

type FactoryOption func(*Factory)

// WithFactoryParam sets the recursion parameters used for every allocated
// stream. Defaults to ParamDefault.
func WithFactoryParam(param Param) FactoryOption {
	return func(f *Factory) {
		f.param = param
	}
}

// WithFactorySeed sets the base seed of the first epoch. Defaults to an
// entropy-derived seed.
func WithFactorySeed(seed uint64) FactoryOption {
	return func(f *Factory) {
		f.seed = seed
	}
}

func NewFactory(opts ...FactoryOption) *Factory {
	f := &Factory{
		param: ParamDefault,
		seed:  Seed(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Acquire allocates the next block of the base sequence and returns a stream
// positioned at its start. When the epoch's block space is exhausted the
// factory silently redraws its base seed and recycles the counter.
func (f *Factory) Acquire() *Stream {
	f.mu.Lock()
	if f.block > maxBlocks-1 {
		f.block = 0
		f.seed = Seed()
	}
	block, seed := f.block, f.seed
	f.block++
	f.mu.Unlock()

	g := New(WithParam(f.param), WithSeed(seed))
	g.Jump(uint64(block) * stepBase)
	return &Stream{g: g}
}

// Stream is a factory-allocated generator handle. It is owned by exactly one
// context and must not be shared. Reseeding is refused: it would break the
// disjointness guarantee against the epoch's other streams.
type Stream struct {
	g *LCG64Shift
}

func (s *Stream) Uint64() uint64 {
	return s.g.Uint64()
}

// SetSeed always fails with ErrSeedLocked: the factory owns this stream's
// position within the base sequence.
func (s *Stream) SetSeed(_ uint64) error {
	return ErrSeedLocked
}

func (s *Stream) Param() Param {
	return s.g.Param()
}
