// Package list implements List, a generic doubly-linked list with node-based
// storage, a sentinel ring and a pluggable allocation capability.
//
// What:
//
//   - Nodes are allocated one by one through an alloc.Allocator rebound to
//     the node layout, so a bounded allocator (alloc.Arena) caps the number of
//     elements and a decorator (alloc.Tracker, alloc.Logged) sees every node.
//   - The sentinel lives inside the List; Begin() is the node after it and
//     End() is the sentinel itself. The zero List is ready to use.
//   - Iterators are small values. They survive every operation except the
//     erasure of their element, including a splice into another list.
//   - Splice, merge, sort, unique, remove and reverse work by relinking nodes:
//     no element is copied, moved, constructed or destroyed (removed elements
//     are destroyed once, through a scratch list).
//
// Configuration (Option):
//
//	WithAllocator(a)        allocation capability (default alloc.Heap)
//	WithNew(fn)             default constructor for NewN/Resize
//	WithCopy(fn)            copy constructor for every duplicating operation
//	WithDestroy(fn)         teardown hook run before a node is released
//	WithFreeListSize(n)     released node records kept for reuse
//
// Guarantees:
//
//   - Push, Emplace, Insert, InsertN, InsertSlice, InsertSeq, Resize,
//     NewN/NewFilled/FromSlice/FromSeq/Clone: all or nothing. A failing
//     allocation or constructor unwinds the nodes made by that call only.
//   - Assign, AssignN, AssignSeq, CopyFrom: the list stays valid.
//
// Errors:
//
//   - Returned: allocation failures (wrapping alloc.ErrOutOfMemory) and
//     constructor errors, prefixed with the method name.
//   - Panicked: ErrInvalidOperation for violated preconditions, such as
//     dereferencing End(), using an iterator whose element was erased,
//     erasing End(), Front/Back/Pop on an empty list, splicing a list into
//     itself or a range onto itself, or moving nodes between lists whose
//     allocators are not alloc.Compatible.
//   - ErrCorrupted from Validate.
//
// Complexity:
//
//	Push/Pop/Insert/Erase/Splice/SpliceOne   O(1)
//	InsertN/EraseRange/SpliceRange           O(k)
//	RemoveIf/UniqueFunc/Reverse/Clear        O(n)
//	MergeFunc                                O(n+m)
//	SortFunc                                 O(n log n), stable
//
// A List is not safe for concurrent use.
package list
