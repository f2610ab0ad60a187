// Package lvlist is a small container library built around one type: a
// generic doubly-linked list whose nodes are charged to a pluggable
// allocation capability.
//
// What is inside?
//
//	• list/  — List[T]: sentinel ring, bidirectional iterators, push/insert/
//	           erase, splice, merge, stable sort, unique, remove, reverse,
//	           lexicographic comparison and a structural Validate.
//	• alloc/ — the allocation capability: Layout, the Allocator interface,
//	           propagation policies, and ready-made allocators (Heap, a
//	           bounded Arena, a counting Tracker, a slog-backed Logged).
//
// Why a list with allocators?
//
//   - Splice, merge and sort relink nodes; elements are never copied and
//     iterators keep pointing at their elements across lists.
//   - Every node is charged to an Allocator, so a list can live inside a
//     fixed budget and report exhaustion as alloc.ErrOutOfMemory.
//   - Bulk inserts are all or nothing: a failed allocation or copy unwinds
//     what the call built and leaves the list as it was.
//   - Misuse (dereferencing End(), stale iterators, overlapping splices)
//     panics with list.ErrInvalidOperation instead of corrupting memory.
//
// Quick example:
//
//	l := list.Of(1, 3, 5)
//	_ = l.PushBack(7)
//	list.Merge(l, list.Of(2, 4, 6))
//	fmt.Println(l.Slice()) // [1 2 3 4 5 6 7]
//
// Runnable programs live under examples/.
//
//	go get github.com/katalvlaran/lvlist
package lvlist
