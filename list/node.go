package list

// node is the storage record of a List. The sentinel embedded in every List
// is a node too, tagged sentinel, so traversal follows links without special
// cases; its value slot is never read.
type node[T any] struct {
	prev, next *node[T]

	// gen advances each time the record is deallocated; iterators remember
	// the generation they were created at.
	gen uint64

	sentinel bool

	value T
}

// linkNodes links the detached run f..l immediately before p.
// Complexity: O(1).
func linkNodes[T any](p, f, l *node[T]) {
	p.prev.next = f
	f.prev = p.prev
	p.prev = l
	l.next = p
}

// unlinkNodes detaches the run f..l from its ring. The outer links of f and l
// are left as they were; the caller relinks or destroys the run.
// Complexity: O(1).
func unlinkNodes[T any](f, l *node[T]) {
	f.prev.next = l.next
	l.next.prev = f.prev
}

// chain is a detached run of freshly constructed nodes. Bulk operations grow
// a chain off-list and link it in a single step once every element was
// constructed; on failure the chain is unwound and the list never sees it.
type chain[T any] struct {
	first, last *node[T]
	n           int
}

// push appends n to the chain.
func (c *chain[T]) push(n *node[T]) {
	if c.first == nil {
		c.first = n
	} else {
		c.last.next = n
		n.prev = c.last
	}
	c.last = n
	c.n++
}
