package alloc_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlist/alloc"
)

type record struct {
	a, b *record
	v    int32
}

func TestLayoutOf_Record(t *testing.T) {
	l := alloc.LayoutOf[record]()
	assert.Greater(t, l.Size, uintptr(0))
	assert.NoError(t, l.Validate())
	assert.Equal(t, uintptr(0), l.Padded()%l.Align)
}

func TestLayout_Padded(t *testing.T) {
	tests := []struct {
		name   string
		layout alloc.Layout
		want   uintptr
	}{
		{"already aligned", alloc.Layout{Size: 16, Align: 8}, 16},
		{"round up", alloc.Layout{Size: 17, Align: 8}, 24},
		{"byte aligned", alloc.Layout{Size: 3, Align: 1}, 3},
		{"zero size", alloc.Layout{Size: 0, Align: 4}, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.layout.Padded())
		})
	}
}

func TestLayout_ValidateRejectsBadAlignment(t *testing.T) {
	for _, align := range []uintptr{0, 3, 6, 12} {
		err := alloc.Layout{Size: 8, Align: align}.Validate()
		assert.ErrorIs(t, err, alloc.ErrInvalidLayout, "align=%d", align)
	}
}

func TestHeap_Allocate(t *testing.T) {
	h := alloc.Heap{}
	l := alloc.LayoutOf[record]()
	require.NoError(t, h.Allocate(l, 1))
	h.Deallocate(l, 1)

	assert.ErrorIs(t, h.Allocate(l, 0), alloc.ErrInvalidLayout)
	assert.ErrorIs(t, h.Allocate(alloc.Layout{Size: 1, Align: 3}, 1), alloc.ErrInvalidLayout)
}

func TestCompatible(t *testing.T) {
	a1 := alloc.NewArena(64)
	a2 := alloc.NewArena(64)

	assert.True(t, alloc.Compatible(alloc.Heap{}, alloc.Default()))
	assert.True(t, alloc.Compatible(a1, a1))
	assert.False(t, alloc.Compatible(a1, a2))
	assert.False(t, alloc.Compatible(a1, alloc.Heap{}))
	assert.False(t, alloc.Compatible(nil, a1))
	assert.True(t, alloc.Compatible(nil, nil))
}

type anyHeap struct{ id int }

func (anyHeap) Allocate(alloc.Layout, int) error { return nil }
func (anyHeap) Deallocate(alloc.Layout, int)     {}
func (anyHeap) Equal(o alloc.Allocator) bool {
	_, ok := o.(anyHeap)
	return ok
}

func TestCompatible_Equaler(t *testing.T) {
	assert.True(t, alloc.Compatible(anyHeap{id: 1}, anyHeap{id: 2}))
	assert.False(t, alloc.Compatible(alloc.Heap{}, anyHeap{id: 1}))
}

func TestPropagation(t *testing.T) {
	assert.False(t, alloc.PropagatesOnCopy(alloc.Heap{}))
	assert.True(t, alloc.PropagatesOnMove(alloc.Heap{}))
	assert.False(t, alloc.PropagatesOnMove(anyHeap{}))

	tr := alloc.NewTracker(alloc.NewArena(8))
	assert.False(t, tr.PropagateOnCopy())
	assert.True(t, tr.PropagateOnMove())
}

func TestTracker_Counts(t *testing.T) {
	tr := alloc.NewTracker(alloc.NewArena(32))
	l := alloc.Layout{Size: 8, Align: 8}

	require.NoError(t, tr.Allocate(l, 2))
	require.NoError(t, tr.Allocate(l, 2))
	err := tr.Allocate(l, 1)
	require.True(t, errors.Is(err, alloc.ErrOutOfMemory))

	s := tr.Stats()
	assert.Equal(t, 2, s.Allocs)
	assert.Equal(t, 1, s.Failures)
	assert.Equal(t, 4, s.Live)
	assert.Equal(t, uintptr(32), s.LiveBytes)

	tr.Deallocate(l, 4)
	s = tr.Stats()
	assert.Equal(t, 0, s.Live)
	assert.Equal(t, 4, s.PeakLive)
	assert.Equal(t, 1, s.Frees)

	tr.Reset()
	assert.Equal(t, alloc.Stats{}, tr.Stats())
}
