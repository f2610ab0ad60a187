package list

// Validate checks the structural invariants of l: the sentinel is tagged,
// every link is mirrored (n.next.prev == n and n.prev.next == n), and the
// element count matches both the forward and the backward walk. It returns
// an error wrapping ErrCorrupted on the first violation.
// Complexity: O(n).
func (l *List[T]) Validate() error {
	l.lazyInit()
	root := &l.root
	if !root.sentinel {
		return corrupted("sentinel is not tagged")
	}

	forward := 0
	for p := root; ; p = p.next {
		if p.next == nil || p.prev == nil {
			return corrupted("nil link after %d elements", forward)
		}
		if p.next.prev != p || p.prev.next != p {
			return corrupted("ring broken after %d elements", forward)
		}
		if p.next == root {
			break
		}
		if p.next.sentinel {
			return corrupted("foreign sentinel after %d elements", forward)
		}
		forward++
		if forward > l.len {
			return corrupted("forward walk exceeds length %d", l.len)
		}
	}
	if forward != l.len {
		return corrupted("forward walk found %d elements, length is %d", forward, l.len)
	}

	backward := 0
	for p := root.prev; p != root; p = p.prev {
		backward++
		if backward > l.len {
			return corrupted("backward walk exceeds length %d", l.len)
		}
	}
	if backward != l.len {
		return corrupted("backward walk found %d elements, length is %d", backward, l.len)
	}

	return nil
}
