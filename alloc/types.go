package alloc

import (
	"fmt"
	"math"
	"unsafe"
)

// Layout describes the storage footprint of one record.
type Layout struct {
	// Size is the record size in bytes.
	Size uintptr

	// Align is the required alignment; always a power of two.
	Align uintptr
}

// LayoutOf returns the Layout of N. Containers call it with their internal
// node type so that the capability is charged per node, not per value.
// Complexity: O(1).
func LayoutOf[N any]() Layout {
	var zero N
	return Layout{Size: unsafe.Sizeof(zero), Align: unsafe.Alignof(zero)}
}

// Padded returns Size rounded up to a multiple of Align.
func (l Layout) Padded() uintptr {
	if l.Align <= 1 {
		return l.Size
	}
	return (l.Size + l.Align - 1) &^ (l.Align - 1)
}

// Validate reports whether the layout can be served: Align must be a non-zero
// power of two. Zero-sized records are legal.
func (l Layout) Validate() error {
	if l.Align == 0 || l.Align&(l.Align-1) != 0 {
		return allocErrorf("Layout.Validate", ErrInvalidLayout, "alignment %d is not a power of two", l.Align)
	}
	return nil
}

// String implements fmt.Stringer.
func (l Layout) String() string {
	return fmt.Sprintf("{size=%d align=%d}", l.Size, l.Align)
}

// Allocator is the allocation capability injected into containers.
//
// Allocate reserves storage for n records of layout l and returns an error
// wrapping ErrOutOfMemory when it cannot. Deallocate releases storage that an
// earlier Allocate with the same layout reserved. Implementations must be
// comparable (pointer receivers or empty structs) because containers compare
// allocators to decide whether nodes may migrate between them.
type Allocator interface {
	Allocate(l Layout, n int) error
	Deallocate(l Layout, n int)
}

// Propagation is implemented by allocators that travel with their elements
// when a container is copy- or move-assigned. Allocators that do not
// implement it never propagate.
type Propagation interface {
	PropagateOnCopy() bool
	PropagateOnMove() bool
}

// Equaler lets an allocator declare compatibility with another instance
// beyond pointer identity.
type Equaler interface {
	Equal(other Allocator) bool
}

// Compatible reports whether storage obtained from a may be released through
// b. Nodes may only move between containers whose allocators are compatible.
// Complexity: O(1).
func Compatible(a, b Allocator) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if eq, ok := a.(Equaler); ok {
		return eq.Equal(b)
	}
	if eq, ok := b.(Equaler); ok {
		return eq.Equal(a)
	}
	return a == b
}

// PropagatesOnCopy reports the copy-assignment policy of a.
func PropagatesOnCopy(a Allocator) bool {
	p, ok := a.(Propagation)
	return ok && p.PropagateOnCopy()
}

// PropagatesOnMove reports the move-assignment policy of a.
func PropagatesOnMove(a Allocator) bool {
	p, ok := a.(Propagation)
	return ok && p.PropagateOnMove()
}

// checkRequest validates the arguments shared by every Allocate implementation.
func checkRequest(method string, l Layout, n int) error {
	if n < 1 {
		return allocErrorf(method, ErrInvalidLayout, "record count %d", n)
	}
	if err := l.Validate(); err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}
	return nil
}

// Bounded is implemented by allocators with a finite budget. MaxRecords
// reports how many records of layout l could exist at once.
type Bounded interface {
	MaxRecords(l Layout) int
}

// MaxRecords returns a's bound for layout l, or math.MaxInt when a is not
// Bounded.
func MaxRecords(a Allocator, l Layout) int {
	if b, ok := a.(Bounded); ok {
		return b.MaxRecords(l)
	}
	return math.MaxInt
}
