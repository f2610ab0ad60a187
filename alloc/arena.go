// SPDX-License-Identifier: MIT
// Package: lvlist/alloc
//
// arena.go — a fixed-budget allocator.
//
// Contract:
//   • Every record is charged Layout.Padded() bytes.
//   • A request that would exceed the capacity fails as a whole with
//     ErrOutOfMemory; nothing is charged.
//   • Releasing more than is in use is a programming error and panics.

package alloc

import (
	"fmt"
	"math"
	"sync"
)

// ArenaOption configures an Arena at construction.
type ArenaOption func(*Arena)

// WithArenaName labels the arena in error messages and logs.
// Panics on an empty name.
func WithArenaName(name string) ArenaOption {
	if name == "" {
		panic("alloc: WithArenaName(\"\")")
	}
	return func(a *Arena) { a.name = name }
}

// Arena is a bounded allocator: it hands out at most capacity bytes at once.
type Arena struct {
	mu       sync.Mutex
	name     string
	capacity uintptr
	used     uintptr
	peak     uintptr
	records  int
}

// NewArena creates an Arena with the given byte capacity.
// Complexity: O(1).
func NewArena(capacity uintptr, opts ...ArenaOption) *Arena {
	a := &Arena{name: "arena", capacity: capacity}
	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Allocate charges n padded records against the budget.
func (a *Arena) Allocate(l Layout, n int) error {
	if err := checkRequest("Arena.Allocate", l, n); err != nil {
		return err
	}
	need := l.Padded() * uintptr(n)

	a.mu.Lock()
	defer a.mu.Unlock()
	if need > a.capacity-a.used {
		return allocErrorf("Arena.Allocate", ErrOutOfMemory,
			"%s: need %d bytes, %d of %d free", a.name, need, a.capacity-a.used, a.capacity)
	}
	a.used += need
	a.records += n
	if a.used > a.peak {
		a.peak = a.used
	}

	return nil
}

// Deallocate returns n padded records to the budget.
func (a *Arena) Deallocate(l Layout, n int) {
	if n < 1 {
		return
	}
	give := l.Padded() * uintptr(n)

	a.mu.Lock()
	defer a.mu.Unlock()
	if give > a.used || n > a.records {
		panic(fmt.Errorf("Arena.Deallocate: %s: releasing %d bytes with %d in use: %w",
			a.name, give, a.used, ErrInvalidLayout))
	}
	a.used -= give
	a.records -= n
}

// Used returns the bytes currently charged.
func (a *Arena) Used() uintptr {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.used
}

// Peak returns the highest value Used has reached.
func (a *Arena) Peak() uintptr {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.peak
}

// Records returns the number of live records.
func (a *Arena) Records() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.records
}

// Capacity returns the configured budget.
func (a *Arena) Capacity() uintptr { return a.capacity }

// Name returns the arena label.
func (a *Arena) Name() string { return a.name }

// PropagateOnCopy implements Propagation. A copy gets its own storage.
func (a *Arena) PropagateOnCopy() bool { return false }

// PropagateOnMove implements Propagation. Moved nodes stay charged here.
func (a *Arena) PropagateOnMove() bool { return true }

// MaxRecords implements Bounded.
func (a *Arena) MaxRecords(l Layout) int {
	p := l.Padded()
	if p == 0 {
		return math.MaxInt
	}
	n := a.capacity / p
	if n > uintptr(math.MaxInt) {
		return math.MaxInt
	}
	return int(n)
}
