package list

import (
	"github.com/katalvlaran/lvlist/alloc"
)

// defaultFreeList bounds the number of released node records kept for reuse.
const defaultFreeList = 32

// nodeAllocator rebinds an alloc.Allocator to node[T]: every charge is made
// with the node layout, and released records are cached for reuse.
type nodeAllocator[T any] struct {
	a       alloc.Allocator
	layout  alloc.Layout
	free    []*node[T]
	maxFree int
}

func newNodeAllocator[T any](a alloc.Allocator, maxFree int) *nodeAllocator[T] {
	if a == nil {
		a = alloc.Default()
	}
	return &nodeAllocator[T]{
		a:       a,
		layout:  alloc.LayoutOf[node[T]](),
		maxFree: maxFree,
	}
}

// allocate charges one node and returns it inside a holder. The node has nil
// links and a zero value.
func (na *nodeAllocator[T]) allocate() (holder[T], error) {
	if err := na.a.Allocate(na.layout, 1); err != nil {
		return holder[T]{}, err
	}

	var n *node[T]
	if k := len(na.free); k > 0 {
		n = na.free[k-1]
		na.free[k-1] = nil
		na.free = na.free[:k-1]
	} else {
		n = new(node[T])
	}

	return holder[T]{na: na, n: n}, nil
}

// deallocate releases n. Iterators still pointing at n become stale.
func (na *nodeAllocator[T]) deallocate(n *node[T]) {
	var zero T
	n.value = zero
	n.prev, n.next = nil, nil
	n.gen++
	na.a.Deallocate(na.layout, 1)

	if len(na.free) < na.maxFree {
		na.free = append(na.free, n)
	}
}

// holder owns a node between allocation and linking. discard releases the
// node unless release took it first, so a deferred discard cleans up after a
// failed or panicking construction.
type holder[T any] struct {
	na *nodeAllocator[T]
	n  *node[T]
}

// release hands the node over to the caller.
func (h *holder[T]) release() *node[T] {
	n := h.n
	h.n = nil
	return n
}

// discard deallocates the node if it is still held. The value was never
// constructed, so no destroy hook runs.
func (h *holder[T]) discard() {
	if h.n != nil {
		h.na.deallocate(h.n)
		h.n = nil
	}
}
