package alloc

import "sync"

// Stats is a snapshot of a Tracker's counters.
type Stats struct {
	Allocs    int     // successful Allocate calls
	Frees     int     // Deallocate calls
	Failures  int     // refused Allocate calls
	Live      int     // records currently held
	LiveBytes uintptr // padded bytes currently held
	PeakLive  int     // highest Live observed
}

// Tracker decorates an Allocator with counters. Tests use it to prove that
// every node a container allocated was released, and that operations such as
// splice allocate nothing.
type Tracker struct {
	mu    sync.Mutex
	inner Allocator
	stats Stats
}

// NewTracker wraps inner; a nil inner means Heap.
func NewTracker(inner Allocator) *Tracker {
	if inner == nil {
		inner = Heap{}
	}
	return &Tracker{inner: inner}
}

// Allocate forwards to the wrapped allocator and records the outcome.
func (t *Tracker) Allocate(l Layout, n int) error {
	err := t.inner.Allocate(l, n)

	t.mu.Lock()
	defer t.mu.Unlock()
	if err != nil {
		t.stats.Failures++
		return err
	}
	t.stats.Allocs++
	t.stats.Live += n
	t.stats.LiveBytes += l.Padded() * uintptr(n)
	if t.stats.Live > t.stats.PeakLive {
		t.stats.PeakLive = t.stats.Live
	}

	return nil
}

// Deallocate records the release and forwards it.
func (t *Tracker) Deallocate(l Layout, n int) {
	t.mu.Lock()
	t.stats.Frees++
	t.stats.Live -= n
	t.stats.LiveBytes -= l.Padded() * uintptr(n)
	t.mu.Unlock()

	t.inner.Deallocate(l, n)
}

// Stats returns a snapshot of the counters.
func (t *Tracker) Stats() Stats {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.stats
}

// Reset zeroes the counters; the wrapped allocator is untouched.
func (t *Tracker) Reset() {
	t.mu.Lock()
	t.stats = Stats{}
	t.mu.Unlock()
}

// Unwrap returns the wrapped allocator.
func (t *Tracker) Unwrap() Allocator { return t.inner }

// PropagateOnCopy follows the wrapped allocator's policy.
func (t *Tracker) PropagateOnCopy() bool { return PropagatesOnCopy(t.inner) }

// PropagateOnMove follows the wrapped allocator's policy.
func (t *Tracker) PropagateOnMove() bool { return PropagatesOnMove(t.inner) }

// MaxRecords follows the wrapped allocator's bound.
func (t *Tracker) MaxRecords(l Layout) int { return MaxRecords(t.inner, l) }
