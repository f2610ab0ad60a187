package list

import "cmp"

// Equal reports whether a and b hold equal elements in the same order.
// Complexity: O(n).
func Equal[T comparable](a, b *List[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualFunc is Equal with a custom element comparison.
func EqualFunc[T, U any](a *List[T], b *List[U], eq func(T, U) bool) bool {
	if a.Len() != b.Len() {
		return false
	}
	a.lazyInit()
	b.lazyInit()
	for p, q := a.root.next, b.root.next; p != &a.root; p, q = p.next, q.next {
		if !eq(p.value, q.value) {
			return false
		}
	}
	return true
}

// Compare compares a and b lexicographically and returns -1, 0 or +1.
func Compare[T cmp.Ordered](a, b *List[T]) int {
	return CompareFunc(a, b, cmp.Compare[T])
}

// CompareFunc is Compare with a custom element comparison; the result is the
// first non-zero value of c, or the comparison of the lengths.
func CompareFunc[T, U any](a *List[T], b *List[U], c func(T, U) int) int {
	a.lazyInit()
	b.lazyInit()
	p, q := a.root.next, b.root.next
	for ; p != &a.root && q != &b.root; p, q = p.next, q.next {
		if r := c(p.value, q.value); r != 0 {
			return r
		}
	}
	switch {
	case p == &a.root && q == &b.root:
		return 0
	case p == &a.root:
		return -1
	default:
		return +1
	}
}
