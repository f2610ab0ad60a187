package alloc

// Heap is the default allocator: it defers to the Go runtime and never
// refuses a well-formed request. All Heap values are interchangeable.
type Heap struct{}

// Allocate validates the request; the Go runtime provides the storage.
func (Heap) Allocate(l Layout, n int) error {
	return checkRequest("Heap.Allocate", l, n)
}

// Deallocate is a no-op; the garbage collector reclaims released records.
func (Heap) Deallocate(Layout, int) {}

// PropagateOnCopy implements Propagation.
func (Heap) PropagateOnCopy() bool { return false }

// PropagateOnMove implements Propagation.
func (Heap) PropagateOnMove() bool { return true }

// Default returns the allocator containers use when none is configured.
func Default() Allocator { return Heap{} }
