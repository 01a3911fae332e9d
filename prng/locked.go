package prng

import (
	"sync"
)

// Locked wraps an LCG64Shift with a mutex so one generator can be shared
// across goroutines. All operations serialize through the lock; output under
// concurrent use is totally ordered as if issued by a single caller.
type Locked struct {
	mu sync.Mutex
	g  *LCG64Shift
}

func NewLocked(opts ...Option) *Locked {
	return &Locked{
		g: New(opts...),
	}
}

func (l *Locked) SetSeed(seed uint64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.g.SetSeed(seed)
}

func (l *Locked) Uint64() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.g.Uint64()
}

func (l *Locked) Jump(step uint64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.g.Jump(step)
}

func (l *Locked) Jump2(s int) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.g.Jump2(s)
}

func (l *Locked) Split(p, s int) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.g.Split(p, s)
}

func (l *Locked) Param() Param {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.g.Param()
}
