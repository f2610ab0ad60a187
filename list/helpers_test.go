package list_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlist/alloc"
	"github.com/katalvlaran/lvlist/list"
)

// requireInvalidOp runs fn and asserts it panics with ErrInvalidOperation.
func requireInvalidOp(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a panic")
		err, ok := r.(error)
		require.True(t, ok, "panic value %v is not an error", r)
		require.ErrorIs(t, err, list.ErrInvalidOperation)
	}()
	fn()
}

// backward collects l back to front through the reverse iterators.
func backward[T any](l *list.List[T]) []T {
	var out []T
	for r := l.RBegin(); !r.Equal(l.REnd()); r = r.Next() {
		out = append(out, r.Value())
	}
	return out
}

// requireContents checks the elements in both directions and the invariants.
func requireContents[T any](t *testing.T, l *list.List[T], want ...T) {
	t.Helper()
	require.NoError(t, l.Validate())
	require.Equal(t, len(want), l.Len())
	if len(want) == 0 {
		require.True(t, l.Empty())
		require.Empty(t, l.Slice())
		return
	}
	require.Equal(t, want, l.Slice())
	rev := make([]T, len(want))
	for i, v := range want {
		rev[len(want)-1-i] = v
	}
	require.Equal(t, rev, backward(l))
}

// nodeBytes measures what one list node of int costs an allocator.
func nodeBytes(t *testing.T) uintptr {
	t.Helper()
	tr := alloc.NewTracker(nil)
	l := list.New[int](list.WithAllocator(tr))
	require.NoError(t, l.PushBack(0))
	return tr.Stats().LiveBytes
}

// arenaFor returns an arena with room for exactly k int nodes.
func arenaFor(t *testing.T, k int) *alloc.Arena {
	t.Helper()
	return alloc.NewArena(nodeBytes(t) * uintptr(k))
}

// pinned is an allocator that never propagates and is only compatible with
// itself, forcing element-wise moves.
type pinned struct {
	live int
}

func (p *pinned) Allocate(_ alloc.Layout, n int) error {
	p.live += n
	return nil
}

func (p *pinned) Deallocate(_ alloc.Layout, n int) { p.live -= n }

// pair is a (key, tag) element for stability checks.
type pair struct {
	key, tag int
}

func byKey(a, b pair) bool { return a.key < b.key }
