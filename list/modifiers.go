package list

import (
	"iter"
)

// PushFront moves v into a new first element.
// On allocation failure the list is unchanged. Complexity: O(1).
func (l *List[T]) PushFront(v T) error {
	l.lazyInit()
	n, err := l.newNode(v)
	if err != nil {
		return listErrorf("PushFront", err)
	}
	l.linkOne(l.root.next, n)

	return nil
}

// PushBack moves v into a new last element.
// On allocation failure the list is unchanged. Complexity: O(1).
func (l *List[T]) PushBack(v T) error {
	l.lazyInit()
	n, err := l.newNode(v)
	if err != nil {
		return listErrorf("PushBack", err)
	}
	l.linkOne(&l.root, n)

	return nil
}

// EmplaceFront constructs a new first element with ctor and returns a
// pointer to it. If ctor fails the list is unchanged. Complexity: O(1).
func (l *List[T]) EmplaceFront(ctor func() (T, error)) (*T, error) {
	l.lazyInit()
	n, err := l.construct(ctor)
	if err != nil {
		return nil, listErrorf("EmplaceFront", err)
	}
	l.linkOne(l.root.next, n)

	return &n.value, nil
}

// EmplaceBack constructs a new last element with ctor and returns a pointer
// to it. If ctor fails the list is unchanged. Complexity: O(1).
func (l *List[T]) EmplaceBack(ctor func() (T, error)) (*T, error) {
	l.lazyInit()
	n, err := l.construct(ctor)
	if err != nil {
		return nil, listErrorf("EmplaceBack", err)
	}
	l.linkOne(&l.root, n)

	return &n.value, nil
}

// Emplace constructs an element with ctor immediately before pos.
// Complexity: O(1).
func (l *List[T]) Emplace(pos Iterator[T], ctor func() (T, error)) (Iterator[T], error) {
	l.lazyInit()
	p := l.position("Emplace", pos)
	n, err := l.construct(ctor)
	if err != nil {
		return pos, listErrorf("Emplace", err)
	}
	l.linkOne(p, n)

	return iterOf(n), nil
}

// Insert moves v into a new element before pos and returns its iterator.
// Complexity: O(1).
func (l *List[T]) Insert(pos Iterator[T], v T) (Iterator[T], error) {
	l.lazyInit()
	p := l.position("Insert", pos)
	n, err := l.newNode(v)
	if err != nil {
		return pos, listErrorf("Insert", err)
	}
	l.linkOne(p, n)

	return iterOf(n), nil
}

// InsertN inserts n copies of v before pos and returns an iterator to the
// first of them, or pos when n is 0. If any allocation or copy fails, the
// copies made so far are destroyed and the list is unchanged.
// Complexity: O(n).
func (l *List[T]) InsertN(pos Iterator[T], n int, v T) (Iterator[T], error) {
	if n < 0 {
		panic(invalidOp("InsertN", "negative count %d", n))
	}
	return l.insertSeq("InsertN", pos, repeatSeq(n, v))
}

// InsertSlice inserts copies of vals before pos, with the same guarantee as
// InsertN.
// Complexity: O(len(vals)).
func (l *List[T]) InsertSlice(pos Iterator[T], vals []T) (Iterator[T], error) {
	return l.insertSeq("InsertSlice", pos, sliceSeq(vals))
}

// InsertSeq inserts copies of the values of seq before pos, with the same
// guarantee as InsertN. seq must not mutate l.
// Complexity: O(k) for k yielded values.
func (l *List[T]) InsertSeq(pos Iterator[T], seq iter.Seq[T]) (Iterator[T], error) {
	return l.insertSeq("InsertSeq", pos, seq)
}

func (l *List[T]) insertSeq(method string, pos Iterator[T], seq iter.Seq[T]) (Iterator[T], error) {
	l.lazyInit()
	p := l.position(method, pos)

	var c chain[T]
	committed := false
	defer func() {
		if !committed {
			l.unwind(&c)
		}
	}()

	for v := range seq {
		n, err := l.copyNode(v)
		if err != nil {
			return pos, listErrorf(method, err)
		}
		c.push(n)
	}
	if c.n == 0 {
		committed = true
		return pos, nil
	}
	first := c.first
	l.commit(p, &c)
	committed = true

	return iterOf(first), nil
}

// Erase removes the element at pos and returns the iterator that followed
// it. pos must designate an element. Complexity: O(1).
func (l *List[T]) Erase(pos Iterator[T]) Iterator[T] {
	l.lazyInit()
	n := l.element("Erase", pos)
	next := n.next
	unlinkNodes(n, n)
	l.len--
	l.destroyNode(n)

	return iterOf(next)
}

// EraseRange removes the elements of [first, last) and returns last.
// Complexity: O(distance).
func (l *List[T]) EraseRange(first, last Iterator[T]) Iterator[T] {
	l.lazyInit()
	f := l.position("EraseRange", first)
	e := l.position("EraseRange", last)
	if f == e {
		return last
	}

	k := 0
	for p := f; p != e; p = p.next {
		if p.sentinel {
			panic(invalidOp("EraseRange", "last is not reachable from first"))
		}
		k++
	}
	unlinkNodes(f, e.prev)
	l.len -= k
	for p := f; p != e; {
		next := p.next
		l.destroyNode(p)
		p = next
	}

	return last
}

// PopFront removes the first element. Panics on an empty list.
func (l *List[T]) PopFront() {
	if l.len == 0 {
		panic(invalidOp("PopFront", "empty list"))
	}
	l.Erase(l.Begin())
}

// PopBack removes the last element. Panics on an empty list.
func (l *List[T]) PopBack() {
	if l.len == 0 {
		panic(invalidOp("PopBack", "empty list"))
	}
	l.Erase(iterOf(l.root.prev))
}

// Resize shrinks the list to n elements by erasing from the back, or grows it
// with default-constructed elements (see WithNew). Growth is all or nothing.
// Complexity: O(|n - Len()|) plus O(min(n, Len()-n)) to locate the cut.
func (l *List[T]) Resize(n int) error {
	return l.resize("Resize", n, l.hooks.make)
}

// ResizeWith is Resize growing with copies of v.
func (l *List[T]) ResizeWith(n int, v T) error {
	return l.resize("ResizeWith", n, func() (T, error) { return l.hooks.copy(v) })
}

func (l *List[T]) resize(method string, n int, ctor func() (T, error)) error {
	if n < 0 {
		panic(invalidOp(method, "negative length %d", n))
	}
	l.lazyInit()
	if n < l.len {
		l.EraseRange(iterOf(l.nodeAt(n)), l.End())
		return nil
	}

	var c chain[T]
	for k := n - l.len; k > 0; k-- {
		nd, err := l.construct(ctor)
		if err != nil {
			l.unwind(&c)
			return listErrorf(method, err)
		}
		c.push(nd)
	}
	l.commit(&l.root, &c)

	return nil
}

// Clear destroys every element. Iterators other than End() are invalidated.
// Complexity: O(n).
func (l *List[T]) Clear() {
	l.lazyInit()
	if l.len == 0 {
		return
	}
	p := l.root.next
	l.root.next, l.root.prev = &l.root, &l.root
	l.len = 0
	for p != &l.root {
		next := p.next
		l.destroyNode(p)
		p = next
	}
}

// Swap exchanges the contents, allocators and hooks of l and other.
// Iterators follow their elements. Complexity: O(1).
func (l *List[T]) Swap(other *List[T]) {
	l.lazyInit()
	other.lazyInit()
	if l == other {
		return
	}
	var tmp List[T]
	tmp.lazyInit()
	tmp.spliceAll(&tmp.root, l)
	l.spliceAll(&l.root, other)
	other.spliceAll(&other.root, &tmp)
	l.na, other.na = other.na, l.na
	l.hooks, other.hooks = other.hooks, l.hooks
}

// linkOne links a single node before p.
func (l *List[T]) linkOne(p, n *node[T]) {
	linkNodes(p, n, n)
	l.len++
}

// nodeAt returns the node at index i (0 <= i <= Len()), walking from the
// nearer end.
func (l *List[T]) nodeAt(i int) *node[T] {
	if i <= l.len/2 {
		p := l.root.next
		for ; i > 0; i-- {
			p = p.next
		}
		return p
	}
	p := &l.root
	for k := l.len - i; k > 0; k-- {
		p = p.prev
	}
	return p
}
