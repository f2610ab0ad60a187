package list_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlist/list"
)

func TestIterator_Walk(t *testing.T) {
	l := list.Of(1, 2, 3)
	it := l.Begin()
	assert.Equal(t, 1, it.Value())
	it = it.Next().Next()
	assert.Equal(t, 3, it.Value())
	assert.True(t, it.Next().IsEnd())
	assert.True(t, it.Next().Equal(l.End()))

	// the ring wraps through the sentinel
	assert.Equal(t, 1, l.End().Next().Value())
	assert.Equal(t, 3, l.End().Prev().Value())
	assert.Equal(t, 2, l.End().Advance(-2).Value())
	assert.True(t, l.Begin().Advance(3).IsEnd())
	assert.True(t, l.Begin().Advance(0).Equal(l.Begin()))
}

func TestIterator_SetAndPtr(t *testing.T) {
	l := list.Of(1, 2)
	it := l.Begin()
	it.Set(10)
	*it.Next().Ptr() += 5
	requireContents(t, l, 10, 7)
}

func TestIterator_EndAndZeroPanics(t *testing.T) {
	l := list.Of(1)
	requireInvalidOp(t, func() { l.End().Value() })
	requireInvalidOp(t, func() { l.End().Set(2) })
	requireInvalidOp(t, func() { _ = l.End().Ptr() })

	var zero list.Iterator[int]
	assert.False(t, zero.Valid())
	assert.False(t, zero.IsEnd())
	requireInvalidOp(t, func() { zero.Next() })
	requireInvalidOp(t, func() { zero.Value() })

	empty := list.New[int]()
	requireInvalidOp(t, func() { empty.Front() })
	requireInvalidOp(t, func() { empty.Back() })
}

func TestIterator_InvalidatedOnlyByErase(t *testing.T) {
	l := list.Of(1, 2, 3)
	one, two, three := l.Begin(), l.Begin().Next(), l.Begin().Advance(2)

	require.NoError(t, l.PushBack(4))
	_, err := l.InsertN(two, 3, 0)
	require.NoError(t, err)
	list.Sort(l)
	l.Reverse()
	assert.True(t, one.Valid() && two.Valid() && three.Valid())

	l.Erase(two)
	assert.False(t, two.Valid())
	assert.True(t, one.Valid())
	requireInvalidOp(t, func() { two.Next() })
	requireInvalidOp(t, func() { two.Prev() })
	requireInvalidOp(t, func() { two.Advance(1) })
	requireInvalidOp(t, func() { list.Distance(two, l.End()) })

	assert.Equal(t, 3, three.Value())
}

func TestDistance(t *testing.T) {
	l := list.Of(1, 2, 3, 4)
	assert.Equal(t, 4, list.Distance(l.Begin(), l.End()))
	assert.Equal(t, 2, list.Distance(l.Begin().Next(), l.End().Prev()))
	assert.Equal(t, 0, list.Distance(l.End(), l.End()))
	requireInvalidOp(t, func() { list.Distance(l.Begin().Next(), l.Begin()) })
}

func TestConstIterator(t *testing.T) {
	l := list.Of(1, 2, 3)
	var got []int
	for c := l.CBegin(); !c.Equal(l.CEnd()); c = c.Next() {
		got = append(got, c.Value())
	}
	assert.Equal(t, []int{1, 2, 3}, got)
	assert.Equal(t, 2, l.CEnd().Prev().Prev().Value())
	assert.Equal(t, 3, l.CBegin().Advance(2).Value())
	assert.True(t, l.CBegin().Advance(3).IsEnd())
}

func TestReverseIterator(t *testing.T) {
	l := list.Of(1, 2, 3)
	assert.Equal(t, []int{3, 2, 1}, backward(l))

	r := l.RBegin()
	assert.Equal(t, 3, r.Value())
	assert.True(t, r.Base().Equal(l.End()))
	*r.Next().Ptr() = 20
	assert.Equal(t, 20, r.Next().Value())
	assert.True(t, r.Next().Prev().Equal(r))
	assert.True(t, r.Next().Next().Next().IsEnd())
	assert.True(t, r.Next().Next().Next().Equal(l.REnd()))

	empty := list.New[int]()
	assert.True(t, empty.RBegin().Equal(empty.REnd()))
}

func TestAllAndBackward(t *testing.T) {
	l := list.Of(1, 2, 3, 4)
	var fwd, bwd []int
	for v := range l.All() {
		fwd = append(fwd, v)
	}
	for v := range l.Backward() {
		bwd = append(bwd, v)
		if v == 3 {
			break
		}
	}
	assert.Equal(t, []int{1, 2, 3, 4}, fwd)
	assert.Equal(t, []int{4, 3}, bwd)
}
