// SPDX-License-Identifier: MIT
// Package: lvlist/list
//
// operations.go — link-only algorithms: splice, remove, unique, merge, sort,
// reverse.
//
// Contract:
//   • None of these allocate, copy, construct or destroy an element, except
//     that removed elements are destroyed through a scratch list.
//   • Moving nodes between lists requires compatible allocators
//     (alloc.Compatible); a violation panics with ErrInvalidOperation.

package list

import (
	"cmp"

	"github.com/katalvlaran/lvlist/alloc"
)

// Splice moves every element of other before pos. other is left empty.
// other must be a different list. Complexity: O(1).
func (l *List[T]) Splice(pos Iterator[T], other *List[T]) {
	l.lazyInit()
	other.lazyInit()
	p := l.position("Splice", pos)
	if l == other {
		panic(invalidOp("Splice", "list spliced into itself"))
	}
	l.mustShareAllocator("Splice", other)
	l.spliceAll(p, other)
}

// SpliceOne moves the element at i, which belongs to other, before pos.
// other may be l. Complexity: O(1).
func (l *List[T]) SpliceOne(pos Iterator[T], other *List[T], i Iterator[T]) {
	l.lazyInit()
	other.lazyInit()
	p := l.position("SpliceOne", pos)
	n := other.element("SpliceOne", i)
	if l != other {
		l.mustShareAllocator("SpliceOne", other)
	}
	if p == n || p == n.next {
		return
	}
	unlinkNodes(n, n)
	linkNodes(p, n, n)
	other.len--
	l.len++
}

// SpliceRange moves the elements of [first, last), which belong to other,
// before pos. When other is l, pos must not lie inside the range.
// Complexity: O(distance); the scan counts the moved elements and checks
// that pos is outside the range.
func (l *List[T]) SpliceRange(pos Iterator[T], other *List[T], first, last Iterator[T]) {
	l.lazyInit()
	other.lazyInit()
	p := l.position("SpliceRange", pos)
	f := other.position("SpliceRange", first)
	e := other.position("SpliceRange", last)
	if l != other {
		l.mustShareAllocator("SpliceRange", other)
	}
	if f == e {
		return
	}

	k := 0
	for q := f; q != e; q = q.next {
		if q.sentinel {
			panic(invalidOp("SpliceRange", "last is not reachable from first"))
		}
		if q == p {
			panic(invalidOp("SpliceRange", "position inside the spliced range"))
		}
		k++
	}
	if p == e {
		return
	}
	l.spliceNodes(p, other, f, e.prev, k)
}

// spliceAll moves every node of other before p without checks.
func (l *List[T]) spliceAll(p *node[T], other *List[T]) {
	if other.len == 0 {
		return
	}
	l.spliceNodes(p, other, other.root.next, other.root.prev, other.len)
}

// spliceNodes moves the k nodes f..last from other before p.
func (l *List[T]) spliceNodes(p *node[T], other *List[T], f, last *node[T], k int) {
	unlinkNodes(f, last)
	linkNodes(p, f, last)
	if l != other {
		other.len -= k
		l.len += k
	}
}

func (l *List[T]) mustShareAllocator(method string, other *List[T]) {
	if !alloc.Compatible(l.na.a, other.na.a) {
		panic(invalidOp(method, "lists use incompatible allocators"))
	}
}

// scratch returns an empty list sharing l's node allocator and hooks. Nodes
// spliced into it are destroyed when it is cleared.
func (l *List[T]) scratch() *List[T] {
	s := &List[T]{na: l.na, hooks: l.hooks}
	s.lazyInit()
	return s
}

// RemoveIf erases every element for which pred returns true and reports how
// many were erased. Matching elements are collected in a scratch list that
// is cleared on return, even when pred panics.
// Complexity: O(n) predicate calls.
func (l *List[T]) RemoveIf(pred func(T) bool) int {
	l.lazyInit()
	deleted := l.scratch()
	defer deleted.Clear()

	e := &l.root
	for i := l.root.next; i != e; {
		if !pred(i.value) {
			i = i.next
			continue
		}
		j, k := i.next, 1
		for ; j != e && pred(j.value); j = j.next {
			k++
		}
		deleted.spliceNodes(&deleted.root, l, i, j.prev, k)
		i = j
		if i != e {
			i = i.next
		}
	}

	return deleted.len
}

// UniqueFunc collapses every run of consecutive elements for which eq holds
// against the run's first element, keeping the first. It reports how many
// elements were erased.
// Complexity: O(n) eq calls.
func (l *List[T]) UniqueFunc(eq func(a, b T) bool) int {
	l.lazyInit()
	deleted := l.scratch()
	defer deleted.Clear()

	e := &l.root
	for i := l.root.next; i != e; {
		j, k := i.next, 0
		for ; j != e && eq(i.value, j.value); j = j.next {
			k++
		}
		if k > 0 {
			deleted.spliceNodes(&deleted.root, l, i.next, j.prev, k)
		}
		i = j
	}

	return deleted.len
}

// MergeFunc merges other, sorted by less, into l, also sorted by less.
// Elements are relinked, never copied; equal elements of l precede those of
// other. other is left empty. Merging a list with itself is a no-op.
// Complexity: O(n+m) comparisons.
func (l *List[T]) MergeFunc(other *List[T], less func(a, b T) bool) {
	l.lazyInit()
	other.lazyInit()
	if l == other {
		return
	}
	l.mustShareAllocator("MergeFunc", other)

	f1, e1 := l.root.next, &l.root
	f2, e2 := other.root.next, &other.root
	for f1 != e1 && f2 != e2 {
		if !less(f2.value, f1.value) {
			f1 = f1.next
			continue
		}
		k := 1
		m2 := f2.next
		for ; m2 != e2 && less(m2.value, f1.value); m2 = m2.next {
			k++
		}
		first, last := f2, m2.prev
		f2 = m2
		l.spliceNodes(f1, other, first, last, k)
		f1 = f1.next
	}
	l.spliceAll(e1, other)
}

// SortFunc sorts l by less with a stable merge sort that relinks nodes.
// Iterators stay valid and follow their elements.
// Complexity: O(n log n) comparisons, O(log n) stack.
func (l *List[T]) SortFunc(less func(a, b T) bool) {
	l.lazyInit()
	sortNodes(l.root.next, &l.root, l.len, less)
}

// sortNodes sorts the n nodes starting at f1 and ending before e2, and
// returns the node that now comes first. e2 is not moved.
func sortNodes[T any](f1, e2 *node[T], n int, less func(a, b T) bool) *node[T] {
	switch n {
	case 0, 1:
		return f1
	case 2:
		second := e2.prev
		if less(second.value, f1.value) {
			unlinkNodes(second, second)
			linkNodes(f1, second, second)
			return second
		}
		return f1
	}

	half := n / 2
	e1 := f1
	for i := 0; i < half; i++ {
		e1 = e1.next
	}
	r := sortNodes(f1, e1, half, less)
	f1 = r
	f2 := sortNodes(e1, e2, n-half, less)
	e1 = f2

	if less(f2.value, f1.value) {
		m2 := f2.next
		for ; m2 != e2 && less(m2.value, f1.value); m2 = m2.next {
		}
		first, last := f2, m2.prev
		r = f2
		e1, f2 = m2, m2
		unlinkNodes(first, last)
		m2 = f1.next
		linkNodes(f1, first, last)
		f1 = m2
	} else {
		f1 = f1.next
	}

	for f1 != e1 && f2 != e2 {
		if !less(f2.value, f1.value) {
			f1 = f1.next
			continue
		}
		m2 := f2.next
		for ; m2 != e2 && less(m2.value, f1.value); m2 = m2.next {
		}
		first, last := f2, m2.prev
		if e1 == f2 {
			e1 = m2
		}
		f2 = m2
		unlinkNodes(first, last)
		m2 = f1.next
		linkNodes(f1, first, last)
		f1 = m2
	}

	return r
}

// Reverse reverses the order of the elements in place.
// Complexity: O(n), no allocation.
func (l *List[T]) Reverse() {
	l.lazyInit()
	if l.len < 2 {
		return
	}
	e := &l.root
	for p := e.next; p != e; {
		p.prev, p.next = p.next, p.prev
		p = p.prev
	}
	e.prev, e.next = e.next, e.prev
}

// Remove erases every element equal to v and reports how many were erased.
func Remove[T comparable](l *List[T], v T) int {
	return l.RemoveIf(func(x T) bool { return x == v })
}

// EraseIf is RemoveIf as a function.
func EraseIf[T any](l *List[T], pred func(T) bool) int {
	return l.RemoveIf(pred)
}

// Erase is Remove under its container-algorithm name.
func Erase[T comparable](l *List[T], v T) int {
	return Remove(l, v)
}

// Unique collapses runs of equal consecutive elements and reports how many
// elements were erased.
func Unique[T comparable](l *List[T]) int {
	return l.UniqueFunc(func(a, b T) bool { return a == b })
}

// Merge merges the ascending list other into the ascending list l.
func Merge[T cmp.Ordered](l, other *List[T]) {
	l.MergeFunc(other, cmp.Less[T])
}

// Sort sorts l in ascending order.
func Sort[T cmp.Ordered](l *List[T]) {
	l.SortFunc(cmp.Less[T])
}
