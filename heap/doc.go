// Package heap implements a manually managed allocator over a growable
// contiguous memory region, in the style of a classic sbrk-backed malloc.
//
// # Overview
//
// A Heap reserves one contiguous address range up front and carves it into
// blocks as callers allocate. Each block is a fixed 16-byte header followed
// by its payload; headers form a singly linked chain in carving order that
// only ever grows. Freeing flips a block's state tag; the scanner reuses
// freed blocks first-fit before the break advances again.
//
// # Operations
//
//   - Alloc(size): payload reference and slice, or "no allocation" for size 0
//   - Free(ref): mark the block freed; Free(NilRef) is a no-op
//   - Realloc(ref, size): reuse in place when the block already fits,
//     otherwise allocate-copy-free
//   - Calloc(count, elemSize): Alloc then zero the payload
//
// # Usage Example
//
//	h, err := heap.New(nil)
//	if err != nil {
//	    return err
//	}
//	defer h.Close()
//
//	ref, buf, err := h.Alloc(64)
//	if err != nil {
//	    return err
//	}
//	copy(buf, payload)
//
//	// Later, release the block for reuse
//	err = h.Free(ref)
//
// # Integrity Policy
//
// Double frees and references that do not point at an allocated block are
// programmer errors. The policy decides what happens: IntegrityPanic (the
// default) aborts, IntegrityError returns ErrCorrupted, IntegrityOff skips
// the checks the way a release build compiles assertions out - at which
// point such misuse silently corrupts the chain.
//
// # Deliberate Gaps
//
// The design keeps the source model's exact feature boundary. None of the
// following happen, by decision rather than omission:
//
//   - No splitting: a reused block keeps its full recorded size even when
//     the request was smaller
//   - No coalescing of adjacent freed blocks
//   - No returning memory to the OS before Close
//   - No payload alignment beyond the 16-byte header granularity
//   - No overflow check on Calloc's count * elemSize product
//
// Each is a reasonable future extension; the first-fit chain walk and its
// fragmentation behavior are part of the contract until then.
//
// # Thread Safety
//
// Heap instances are not thread-safe. A heap assumes a single logical owner;
// callers must synchronize access externally. Independent heaps are fully
// isolated and may be used from different goroutines.
package heap
