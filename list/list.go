// SPDX-License-Identifier: MIT
// Package: lvlist/list
//
// list.go — construction, assignment and accessors of List.
//
// Node lifecycle:
//   • birth:  allocate (holder) → construct value → link.
//   • death:  unlink → destroy value → deallocate.
//   • Bulk operations construct into a detached chain and link it at once;
//     a failure unwinds the chain and leaves the list as it was.

package list

import (
	"iter"

	"github.com/katalvlaran/lvlist/alloc"
)

// New returns an empty List configured by opts.
// Complexity: O(len(opts)).
func New[T any](opts ...Option) *List[T] {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	l := &List[T]{
		na:    newNodeAllocator[T](o.allocator, o.freeList),
		hooks: resolveHooks("New", o, hooks[T]{}),
	}
	l.lazyInit()

	return l
}

// NewN returns a list of n default-constructed elements (see WithNew).
// Complexity: O(n).
func NewN[T any](n int, opts ...Option) (*List[T], error) {
	l := New[T](opts...)
	if err := l.Resize(n); err != nil {
		return nil, listErrorf("NewN", err)
	}
	return l, nil
}

// NewFilled returns a list of n copies of v.
// Complexity: O(n).
func NewFilled[T any](n int, v T, opts ...Option) (*List[T], error) {
	l := New[T](opts...)
	if _, err := l.InsertN(l.End(), n, v); err != nil {
		return nil, listErrorf("NewFilled", err)
	}
	return l, nil
}

// FromSlice returns a list holding copies of vals, in order.
// Complexity: O(len(vals)).
func FromSlice[T any](vals []T, opts ...Option) (*List[T], error) {
	l := New[T](opts...)
	if _, err := l.InsertSlice(l.End(), vals); err != nil {
		return nil, listErrorf("FromSlice", err)
	}
	return l, nil
}

// FromSeq returns a list holding copies of the values yielded by seq.
// Complexity: O(k) for k yielded values.
func FromSeq[T any](seq iter.Seq[T], opts ...Option) (*List[T], error) {
	l := New[T](opts...)
	if _, err := l.InsertSeq(l.End(), seq); err != nil {
		return nil, listErrorf("FromSeq", err)
	}
	return l, nil
}

// Of returns a list of vals using the default allocator. It cannot fail.
func Of[T any](vals ...T) *List[T] {
	l, err := FromSlice(vals)
	if err != nil {
		panic(err)
	}
	return l
}

// Clone returns a deep copy of l. The copy uses l's allocator and hooks
// unless opts override them.
// Complexity: O(n).
func (l *List[T]) Clone(opts ...Option) (*List[T], error) {
	l.lazyInit()
	o := defaultOptions()
	o.allocator = l.na.a
	o.freeList = l.na.maxFree
	for _, opt := range opts {
		opt(&o)
	}
	c := &List[T]{
		na:    newNodeAllocator[T](o.allocator, o.freeList),
		hooks: resolveHooks("Clone", o, l.hooks),
	}
	c.lazyInit()
	if _, err := c.insertSeq("Clone", c.End(), l.All()); err != nil {
		return nil, err
	}

	return c, nil
}

// Move returns a new list owning every node of other, which is left empty.
// No element is copied or reallocated; iterators into other stay valid and
// now designate elements of the returned list.
// Complexity: O(1).
func Move[T any](other *List[T]) *List[T] {
	other.lazyInit()
	l := &List[T]{
		na:    newNodeAllocator[T](other.na.a, other.na.maxFree),
		hooks: other.hooks,
	}
	l.lazyInit()
	l.spliceAll(&l.root, other)

	return l
}

// MoveWith is Move with an explicit allocator. When a is compatible with
// other's allocator the nodes are transferred; otherwise every value is moved
// into a node allocated from a and other's nodes are released. On failure
// other is unchanged.
// Complexity: O(1) when compatible, O(n) otherwise.
func MoveWith[T any](other *List[T], a alloc.Allocator) (*List[T], error) {
	other.lazyInit()
	l := New[T](WithAllocator(a), WithFreeListSize(other.na.maxFree))
	l.hooks = other.hooks
	if err := l.moveNodes("MoveWith", other); err != nil {
		return nil, err
	}
	return l, nil
}

// CopyFrom replaces the contents of l with copies of other's elements.
// When other's allocator propagates on copy, l adopts it. Existing nodes are
// reused; on failure l holds a valid but unspecified prefix (basic guarantee).
// Complexity: O(len(l) + len(other)).
func (l *List[T]) CopyFrom(other *List[T]) error {
	l.lazyInit()
	other.lazyInit()
	if l == other {
		return nil
	}
	if alloc.PropagatesOnCopy(other.na.a) && !alloc.Compatible(l.na.a, other.na.a) {
		l.Clear()
		l.na = newNodeAllocator[T](other.na.a, l.na.maxFree)
	}
	return l.assignSeq("CopyFrom", other.All())
}

// MoveFrom replaces the contents of l with other's elements and leaves other
// empty. Nodes are transferred in O(1) when the allocators are compatible or
// when other's allocator propagates on move; otherwise values are moved one
// by one into nodes from l's allocator.
func (l *List[T]) MoveFrom(other *List[T]) error {
	l.lazyInit()
	other.lazyInit()
	if l == other {
		return nil
	}
	l.Clear()
	if !alloc.Compatible(l.na.a, other.na.a) && alloc.PropagatesOnMove(other.na.a) {
		l.na = newNodeAllocator[T](other.na.a, l.na.maxFree)
	}
	return l.moveNodes("MoveFrom", other)
}

// moveNodes appends other's elements to l, relinking when the allocators are
// compatible and moving value by value otherwise.
func (l *List[T]) moveNodes(method string, other *List[T]) error {
	if alloc.Compatible(l.na.a, other.na.a) {
		l.spliceAll(&l.root, other)
		return nil
	}

	var c chain[T]
	for p := other.root.next; p != &other.root; p = p.next {
		n, err := l.newNode(p.value)
		if err != nil {
			l.unwindMoved(&c)
			return listErrorf(method, err)
		}
		c.push(n)
	}
	l.commit(&l.root, &c)
	other.releaseAll()

	return nil
}

// Assign replaces the contents of l with copies of vals.
func (l *List[T]) Assign(vals []T) error {
	return l.assignSeq("Assign", sliceSeq(vals))
}

// AssignSeq replaces the contents of l with copies of the values of seq.
func (l *List[T]) AssignSeq(seq iter.Seq[T]) error {
	return l.assignSeq("AssignSeq", seq)
}

// AssignN replaces the contents of l with n copies of v.
func (l *List[T]) AssignN(n int, v T) error {
	if n < 0 {
		panic(invalidOp("AssignN", "negative count %d", n))
	}
	return l.assignSeq("AssignN", repeatSeq(n, v))
}

// assignSeq overwrites existing elements in place, appends what is left of
// seq and erases surplus elements.
func (l *List[T]) assignSeq(method string, seq iter.Seq[T]) error {
	l.lazyInit()
	p := l.root.next
	var c chain[T]
	var err error
	for v := range seq {
		if p != &l.root {
			var cp T
			if cp, err = l.hooks.copy(v); err != nil {
				break
			}
			l.hooks.destroy(&p.value)
			p.value = cp
			p = p.next
			continue
		}
		var n *node[T]
		if n, err = l.copyNode(v); err != nil {
			break
		}
		c.push(n)
	}
	if err != nil {
		l.unwind(&c)
		return listErrorf(method, err)
	}
	if c.n > 0 {
		l.commit(&l.root, &c)
		return nil
	}
	l.EraseRange(iterOf(p), l.End())

	return nil
}

// Allocator returns the allocation capability nodes are charged to.
func (l *List[T]) Allocator() alloc.Allocator {
	l.lazyInit()
	return l.na.a
}

// Len returns the number of elements. Complexity: O(1).
func (l *List[T]) Len() int { return l.len }

// Empty reports whether the list has no elements.
func (l *List[T]) Empty() bool { return l.len == 0 }

// MaxLen returns the largest length the allocator could sustain.
func (l *List[T]) MaxLen() int {
	l.lazyInit()
	return alloc.MaxRecords(l.na.a, l.na.layout)
}

// Front returns the first element. Panics on an empty list.
func (l *List[T]) Front() T {
	if l.len == 0 {
		panic(invalidOp("Front", "empty list"))
	}
	return l.root.next.value
}

// Back returns the last element. Panics on an empty list.
func (l *List[T]) Back() T {
	if l.len == 0 {
		panic(invalidOp("Back", "empty list"))
	}
	return l.root.prev.value
}

// Begin returns an iterator to the first element, or End() when empty.
func (l *List[T]) Begin() Iterator[T] {
	l.lazyInit()
	return iterOf(l.root.next)
}

// End returns the sentinel position.
func (l *List[T]) End() Iterator[T] {
	l.lazyInit()
	return iterOf(&l.root)
}

// CBegin returns a read-only iterator to the first element.
func (l *List[T]) CBegin() ConstIterator[T] { return l.Begin().Const() }

// CEnd returns the read-only sentinel position.
func (l *List[T]) CEnd() ConstIterator[T] { return l.End().Const() }

// RBegin returns a reverse iterator to the last element.
func (l *List[T]) RBegin() ReverseIterator[T] {
	l.lazyInit()
	return ReverseIterator[T]{it: iterOf(l.root.prev)}
}

// REnd returns the reverse sentinel position.
func (l *List[T]) REnd() ReverseIterator[T] {
	return ReverseIterator[T]{it: l.End()}
}

// All yields the elements front to back.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		l.lazyInit()
		for p := l.root.next; p != &l.root; p = p.next {
			if !yield(p.value) {
				return
			}
		}
	}
}

// Backward yields the elements back to front.
func (l *List[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		l.lazyInit()
		for p := l.root.prev; p != &l.root; p = p.prev {
			if !yield(p.value) {
				return
			}
		}
	}
}

// Slice returns the elements front to back in a new slice.
func (l *List[T]) Slice() []T {
	out := make([]T, 0, l.len)
	for v := range l.All() {
		out = append(out, v)
	}
	return out
}

func (l *List[T]) lazyInit() {
	if l.root.next == nil {
		l.root.next = &l.root
		l.root.prev = &l.root
		l.root.sentinel = true
		l.len = 0
	}
	if l.na == nil {
		l.na = newNodeAllocator[T](alloc.Default(), defaultFreeList)
	}
}

// position validates an iterator used as an insertion point or range bound:
// it must be live and, when it is a sentinel, l's own.
func (l *List[T]) position(method string, it Iterator[T]) *node[T] {
	n := it.live(method)
	if n.sentinel && n != &l.root {
		panic(invalidOp(method, "end iterator of another list"))
	}
	return n
}

// element validates an iterator that must designate an element.
func (l *List[T]) element(method string, it Iterator[T]) *node[T] {
	n := l.position(method, it)
	if n.sentinel {
		panic(invalidOp(method, "end iterator"))
	}
	return n
}

func (h hooks[T]) make() (T, error) {
	if h.newFn == nil {
		var zero T
		return zero, nil
	}
	return h.newFn()
}

func (h hooks[T]) copy(v T) (T, error) {
	if h.copyFn == nil {
		return v, nil
	}
	return h.copyFn(v)
}

func (h hooks[T]) destroy(v *T) {
	if h.destroyFn != nil {
		h.destroyFn(v)
	}
}

// construct allocates a node and fills it with the value fn builds. If fn
// fails or panics the node is released before the failure propagates.
func (l *List[T]) construct(fn func() (T, error)) (*node[T], error) {
	h, err := l.na.allocate()
	if err != nil {
		return nil, err
	}
	defer h.discard()

	v, err := fn()
	if err != nil {
		return nil, err
	}
	h.n.value = v

	return h.release(), nil
}

// newNode moves v into a fresh node.
func (l *List[T]) newNode(v T) (*node[T], error) {
	h, err := l.na.allocate()
	if err != nil {
		return nil, err
	}
	n := h.release()
	n.value = v

	return n, nil
}

// copyNode copy-constructs v into a fresh node.
func (l *List[T]) copyNode(v T) (*node[T], error) {
	return l.construct(func() (T, error) { return l.hooks.copy(v) })
}

// destroyNode tears down an unlinked node.
func (l *List[T]) destroyNode(n *node[T]) {
	l.hooks.destroy(&n.value)
	l.na.deallocate(n)
}

// commit links a chain before p and takes ownership of its nodes.
func (l *List[T]) commit(p *node[T], c *chain[T]) {
	if c.n == 0 {
		return
	}
	linkNodes(p, c.first, c.last)
	l.len += c.n
	*c = chain[T]{}
}

// unwind destroys every node of an uncommitted chain, newest first.
func (l *List[T]) unwind(c *chain[T]) {
	for n := c.last; n != nil; {
		prev := n.prev
		l.destroyNode(n)
		n = prev
	}
	*c = chain[T]{}
}

// unwindMoved releases a chain whose values were moved in and still belong
// to their source, so no destroy hook runs.
func (l *List[T]) unwindMoved(c *chain[T]) {
	for n := c.last; n != nil; {
		prev := n.prev
		l.na.deallocate(n)
		n = prev
	}
	*c = chain[T]{}
}

// releaseAll deallocates every node without destroying values; used after
// the values were moved elsewhere.
func (l *List[T]) releaseAll() {
	p := l.root.next
	l.root.next, l.root.prev = &l.root, &l.root
	l.len = 0
	for p != &l.root {
		next := p.next
		l.na.deallocate(p)
		p = next
	}
}

func sliceSeq[T any](vals []T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range vals {
			if !yield(v) {
				return
			}
		}
	}
}

func repeatSeq[T any](n int, v T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < n; i++ {
			if !yield(v) {
				return
			}
		}
	}
}
