// Package scope threads a "current generator" through call trees via
// context.Context, replacing registry-style ambient globals. Installing a
// source with With scopes it to the derived context; the parent context keeps
// whatever was installed before, giving push/pop restore semantics for free.
package scope

import (
	"context"
	"sync"

	"github.com/daystram/splitrand/prng"
)

type ctxKey struct{}

var (
	fallbackOnce sync.Once
	fallback     prng.Source
)

// With returns a context carrying src as the current generator for the call
// tree below it.
func With(ctx context.Context, src prng.Source) context.Context {
	return context.WithValue(ctx, ctxKey{}, src)
}

// From returns the current generator installed in ctx. When none is
// installed it falls back to a lazily created, process-wide lock-guarded
// engine, so From never returns nil.
func From(ctx context.Context) prng.Source {
	if src, ok := ctx.Value(ctxKey{}).(prng.Source); ok {
		return src
	}
	fallbackOnce.Do(func() {
		fallback = prng.NewLocked()
	})
	return fallback
}

// Installed reports whether ctx carries an explicitly installed generator,
// as opposed to the process-wide fallback.
func Installed(ctx context.Context) bool {
	_, ok := ctx.Value(ctxKey{}).(prng.Source)
	return ok
}
