package list

// Iterator designates one position of a List: an element or the End()
// sentinel. It is a small value; copying it is cheap.
//
// An Iterator stays valid until its element is erased. Splice keeps it valid
// even when the element moves to another list. Using an invalidated iterator,
// or dereferencing End(), panics with ErrInvalidOperation.
type Iterator[T any] struct {
	n   *node[T]
	gen uint64
}

func iterOf[T any](n *node[T]) Iterator[T] {
	return Iterator[T]{n: n, gen: n.gen}
}

// live panics unless the iterator refers to a node that still exists.
func (it Iterator[T]) live(method string) *node[T] {
	if it.n == nil {
		panic(invalidOp(method, "zero iterator"))
	}
	if it.n.gen != it.gen {
		panic(invalidOp(method, "iterator invalidated by erase"))
	}
	return it.n
}

// deref panics unless the iterator refers to an element.
func (it Iterator[T]) deref(method string) *node[T] {
	n := it.live(method)
	if n.sentinel {
		panic(invalidOp(method, "dereference of end iterator"))
	}
	return n
}

// Value returns a copy of the element.
func (it Iterator[T]) Value() T {
	return it.deref("Iterator.Value").value
}

// Ptr returns a pointer to the element stored in the node. The pointer is
// valid as long as the iterator is.
func (it Iterator[T]) Ptr() *T {
	return &it.deref("Iterator.Ptr").value
}

// Set overwrites the element.
func (it Iterator[T]) Set(v T) {
	it.deref("Iterator.Set").value = v
}

// Next returns the following position. Past the last element it returns
// End(); from End() it wraps to the first element.
func (it Iterator[T]) Next() Iterator[T] {
	return iterOf(it.live("Iterator.Next").next)
}

// Prev returns the preceding position.
func (it Iterator[T]) Prev() Iterator[T] {
	return iterOf(it.live("Iterator.Prev").prev)
}

// Advance moves n steps, backwards when n is negative.
func (it Iterator[T]) Advance(n int) Iterator[T] {
	p := it.live("Iterator.Advance")
	for ; n > 0; n-- {
		p = p.next
	}
	for ; n < 0; n++ {
		p = p.prev
	}
	return iterOf(p)
}

// Equal reports whether both iterators designate the same position.
func (it Iterator[T]) Equal(o Iterator[T]) bool { return it.n == o.n }

// IsEnd reports whether the iterator is a sentinel position.
func (it Iterator[T]) IsEnd() bool { return it.n != nil && it.n.sentinel }

// Valid reports whether the iterator may still be used.
func (it Iterator[T]) Valid() bool { return it.n != nil && it.n.gen == it.gen }

// Const returns a read-only view of the same position.
func (it Iterator[T]) Const() ConstIterator[T] { return ConstIterator[T]{it: it} }

// ConstIterator is a read-only Iterator.
type ConstIterator[T any] struct {
	it Iterator[T]
}

// Value returns a copy of the element.
func (c ConstIterator[T]) Value() T { return c.it.Value() }

// Next returns the following position.
func (c ConstIterator[T]) Next() ConstIterator[T] { return c.it.Next().Const() }

// Prev returns the preceding position.
func (c ConstIterator[T]) Prev() ConstIterator[T] { return c.it.Prev().Const() }

// Advance moves n steps, backwards when n is negative.
func (c ConstIterator[T]) Advance(n int) ConstIterator[T] { return c.it.Advance(n).Const() }

// Equal reports whether both iterators designate the same position.
func (c ConstIterator[T]) Equal(o ConstIterator[T]) bool { return c.it.Equal(o.it) }

// IsEnd reports whether the iterator is a sentinel position.
func (c ConstIterator[T]) IsEnd() bool { return c.it.IsEnd() }

// ReverseIterator walks a List from back to front. RBegin designates the
// last element and REnd the sentinel.
type ReverseIterator[T any] struct {
	it Iterator[T]
}

// Value returns a copy of the element.
func (r ReverseIterator[T]) Value() T { return r.it.Value() }

// Ptr returns a pointer to the element.
func (r ReverseIterator[T]) Ptr() *T { return r.it.Ptr() }

// Next moves towards the front of the list.
func (r ReverseIterator[T]) Next() ReverseIterator[T] { return ReverseIterator[T]{it: r.it.Prev()} }

// Prev moves towards the back of the list.
func (r ReverseIterator[T]) Prev() ReverseIterator[T] { return ReverseIterator[T]{it: r.it.Next()} }

// Equal reports whether both iterators designate the same position.
func (r ReverseIterator[T]) Equal(o ReverseIterator[T]) bool { return r.it.Equal(o.it) }

// IsEnd reports whether the iterator reached the sentinel.
func (r ReverseIterator[T]) IsEnd() bool { return r.it.IsEnd() }

// Base returns the forward iterator following the designated element, so
// that RBegin().Base() == End().
func (r ReverseIterator[T]) Base() Iterator[T] { return r.it.Next() }

// Distance counts the Next steps from first to last. last must be reachable
// from first without crossing the sentinel, unless last is the sentinel.
// Complexity: O(distance).
func Distance[T any](first, last Iterator[T]) int {
	p := first.live("Distance")
	last.live("Distance")
	d := 0
	for p != last.n {
		if p.sentinel {
			panic(invalidOp("Distance", "last is not reachable from first"))
		}
		p = p.next
		d++
	}
	return d
}
