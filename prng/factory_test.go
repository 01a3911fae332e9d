package prng

import (
	"errors"
	"testing"
)

func TestFactoryBlockOffsets(t *testing.T) {
	t.Parallel()

	// Stream k must sit exactly k*2^56 steps into the base sequence, checked
	// through the jump arithmetic rather than by brute-force comparison.
	f := NewFactory(WithFactorySeed(42))
	for k := 0; k < 4; k++ {
		stream := f.Acquire()
		want := New(WithSeed(42))
		want.Jump(uint64(k) * stepBase)
		for i := 0; i < 5; i++ {
			if got := stream.Uint64(); got != want.Uint64() {
				t.Fatalf("stream %d not at block offset %d*2^56 (draw %d, got=%#x)",
					k, k, i, got)
			}
		}
	}
}

func TestFactoryEpochDisjointness(t *testing.T) {
	t.Parallel()

	// All 128 blocks of one epoch start at distinct offsets k*2^56 of the
	// same base sequence, strictly increasing and 2^56 apart, so no window of
	// fewer than 2^56 draws can overlap a neighbor's.
	f := NewFactory(WithFactorySeed(7))
	offsets := make(map[uint64]struct{}, maxBlocks)
	for k := 0; k < maxBlocks; k++ {
		offset := uint64(k) * stepBase
		if _, ok := offsets[offset]; ok {
			t.Fatalf("duplicate block offset %d", offset)
		}
		offsets[offset] = struct{}{}

		stream := f.Acquire()
		ref := New(WithSeed(7))
		ref.Jump(offset)
		if got, want := stream.Uint64(), ref.Uint64(); got != want {
			t.Fatalf("stream %d off its block: got=%#x want=%#x", k, got, want)
		}
	}
}

func TestFactoryEpochRollover(t *testing.T) {
	t.Parallel()

	f := NewFactory(WithFactorySeed(7))
	for k := 0; k < maxBlocks; k++ {
		f.Acquire()
	}

	// Allocation 129 must silently recycle: new epoch, fresh entropy seed,
	// counter back at block zero. Never an error.
	stream := f.Acquire()
	first := New(WithSeed(7))
	if got, old := stream.Uint64(), first.Uint64(); got == old {
		t.Error("rolled-over stream still on the exhausted epoch's seed")
	}
	f.mu.Lock()
	if f.block != 1 {
		t.Errorf("unexpected block counter after rollover: got=%d want=1", f.block)
	}
	f.mu.Unlock()
}

func TestStreamSeedLocked(t *testing.T) {
	t.Parallel()

	f := NewFactory(WithFactorySeed(42))
	stream := f.Acquire()
	before := stream.Uint64()

	if err := stream.SetSeed(0); !errors.Is(err, ErrSeedLocked) {
		t.Fatalf("unexpected error: got=%v want=%v", err, ErrSeedLocked)
	}
	// The refused reseed must not have touched the stream.
	ref := New(WithSeed(42))
	if got := ref.Uint64(); got != before {
		t.Fatalf("unexpected stream head: got=%#x want=%#x", got, before)
	}
	if got, want := stream.Uint64(), ref.Uint64(); got != want {
		t.Errorf("stream position moved by refused reseed: got=%#x want=%#x", got, want)
	}
}

func TestFactoryParamOption(t *testing.T) {
	t.Parallel()

	f := NewFactory(WithFactoryParam(ParamLecuyer3), WithFactorySeed(1))
	stream := f.Acquire()
	if got := stream.Param(); got != ParamLecuyer3 {
		t.Errorf("unexpected stream params: got=%v want=%v", got, ParamLecuyer3)
	}
}
