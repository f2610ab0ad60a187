// Package alloc defines the allocation capability consumed by lvlist
// containers, together with a handful of ready-made implementations.
//
// What:
//
//   - Allocator: the caller-supplied capability. It reserves and releases
//     storage for n records of a given Layout. Go owns the memory itself, so an
//     Allocator is a budget and bookkeeping authority: it decides whether a
//     record may exist, and it hears about every record that dies.
//   - Layout / LayoutOf: the rebinding step. A container parameterised by a
//     value type T stores node records, not bare T values; LayoutOf[node]()
//     computes the record's size and alignment so the capability is charged
//     for what is really held.
//   - Propagation / Compatible: whether an allocator follows its elements on
//     copy/move assignment, and whether storage obtained from one allocator may
//     be released through another.
//
// Implementations:
//
//   - Heap    — unlimited, stateless, always compatible with any other Heap.
//   - Arena   — fixed byte budget with alignment padding; fails with ErrOutOfMemory.
//   - Tracker — decorator counting allocations, deallocations and live bytes.
//   - Logged  — decorator emitting log/slog records for every call.
//
// Errors:
//
//   - ErrOutOfMemory    the capability refused the request.
//   - ErrInvalidLayout  zero/negative sizes, non power-of-two alignment, n < 1.
//
// Complexity:
//
//   - Every Allocate/Deallocate in this package is O(1).
//
// Concurrency:
//
//   - Heap is safe for concurrent use. Arena and Tracker guard their counters
//     with a mutex so one budget may be shared by several containers, each of
//     which is itself single-threaded.
package alloc
