package list

import (
	"fmt"
	"reflect"

	"github.com/katalvlaran/lvlist/alloc"
)

// List is a doubly-linked list of T values stored in individually allocated
// nodes arranged in a ring around an embedded sentinel.
//
// The zero value is an empty list using the default allocator. A List must
// not be copied after first use; use Clone, Move or CopyFrom instead.
// A List is not safe for concurrent use.
type List[T any] struct {
	root  node[T] // sentinel; root.next is the first element, root.prev the last
	len   int
	na    *nodeAllocator[T]
	hooks hooks[T]
}

// hooks are the construction/destruction half of the allocation capability.
type hooks[T any] struct {
	newFn     func() (T, error)
	copyFn    func(T) (T, error)
	destroyFn func(*T)
}

// Option configures a List at construction.
type Option func(*options)

type options struct {
	allocator alloc.Allocator
	freeList  int
	newFn     any
	copyFn    any
	destroyFn any
}

func defaultOptions() options {
	return options{allocator: alloc.Default(), freeList: defaultFreeList}
}

// WithAllocator sets the allocation capability nodes are charged to.
// Panics on nil.
func WithAllocator(a alloc.Allocator) Option {
	if a == nil {
		panic("list: WithAllocator(nil)")
	}
	return func(o *options) { o.allocator = a }
}

// WithFreeListSize bounds how many released node records the list keeps for
// reuse; 0 disables reuse. Panics on negative sizes.
func WithFreeListSize(n int) Option {
	if n < 0 {
		panic(fmt.Sprintf("list: WithFreeListSize(%d)", n))
	}
	return func(o *options) { o.freeList = n }
}

// WithNew sets the default constructor used by NewN and Resize.
// Without it new elements are zero values. Panics on nil.
func WithNew[T any](fn func() (T, error)) Option {
	if fn == nil {
		panic("list: WithNew(nil)")
	}
	return func(o *options) { o.newFn = fn }
}

// WithCopy sets the copy constructor used wherever the list duplicates a
// value: InsertN, InsertSlice, InsertSeq, NewFilled, FromSlice, FromSeq,
// Assign*, ResizeWith, Clone and CopyFrom. Without it values are copied by
// assignment. Panics on nil.
func WithCopy[T any](fn func(T) (T, error)) Option {
	if fn == nil {
		panic("list: WithCopy(nil)")
	}
	return func(o *options) { o.copyFn = fn }
}

// WithDestroy sets the teardown hook run on every element the list destroys,
// before its node is deallocated. Values that leave the list by move
// (MoveFrom/MoveWith across incompatible allocators) are not destroyed.
// Panics on nil.
func WithDestroy[T any](fn func(*T)) Option {
	if fn == nil {
		panic("list: WithDestroy(nil)")
	}
	return func(o *options) { o.destroyFn = fn }
}

// resolveHooks type-checks the hook options against T.
func resolveHooks[T any](method string, o options, h hooks[T]) hooks[T] {
	if o.newFn != nil {
		fn, ok := o.newFn.(func() (T, error))
		if !ok {
			panic(invalidOp(method, "WithNew hook %T does not construct %v", o.newFn, reflect.TypeFor[T]()))
		}
		h.newFn = fn
	}
	if o.copyFn != nil {
		fn, ok := o.copyFn.(func(T) (T, error))
		if !ok {
			panic(invalidOp(method, "WithCopy hook %T does not copy %v", o.copyFn, reflect.TypeFor[T]()))
		}
		h.copyFn = fn
	}
	if o.destroyFn != nil {
		fn, ok := o.destroyFn.(func(*T))
		if !ok {
			panic(invalidOp(method, "WithDestroy hook %T does not destroy %v", o.destroyFn, reflect.TypeFor[T]()))
		}
		h.destroyFn = fn
	}
	return h
}
