package heap

import (
	"fmt"

	"github.com/joshuapare/membrk/internal/format"
)

// Realloc resizes the allocation behind ref to at least size bytes.
//
// Realloc(NilRef, size) behaves exactly like Alloc(size). When the block's
// recorded payload already covers size, the same ref comes back unchanged -
// no shrinking, no splitting; the trailing bytes stay with the block but the
// scanner will keep seeing its full recorded size. Otherwise a new block is
// allocated, the old payload is copied in full, and the old block is freed.
// If the new allocation fails the original stays untouched and valid.
func (h *Heap) Realloc(ref Ref, size int) (Ref, []byte, error) {
	if h.region == nil {
		return NilRef, nil, ErrClosed
	}
	if ref == NilRef {
		return h.Alloc(size)
	}
	h.stats.ReallocCalls++

	if size < 0 {
		return NilRef, nil, fmt.Errorf("%w (%d)", ErrBadSize, size)
	}

	off, err := h.resolveHeader(ref)
	if err != nil {
		if h.policy == IntegrityPanic {
			panic(err.Error())
		}
		return NilRef, nil, err
	}
	data := h.region.Bytes()
	if h.policy != IntegrityOff {
		if st := format.ReadState(data, off); !st.Allocated() {
			return NilRef, nil, h.violation(
				fmt.Sprintf("realloc of ref %#x with no allocated block (tag 0x%08X)", ref, uint32(st)))
		}
	}

	cur := format.ReadSize(data, off)
	if cur >= size {
		h.stats.ReallocInPlace++
		return ref, data[int(ref) : int(ref)+cur], nil
	}

	newRef, newPayload, err := h.Alloc(size)
	if err != nil {
		// Original allocation is preserved.
		return NilRef, nil, err
	}
	copy(newPayload, data[int(ref):int(ref)+cur])
	if err := h.Free(ref); err != nil {
		return NilRef, nil, err
	}
	h.stats.ReallocMoved++
	return newRef, newPayload, nil
}

// Calloc allocates count * elemSize bytes and zeroes every payload byte.
// The multiplication is deliberately unchecked for overflow; callers own
// that guarantee. A zero total is "no allocation", same as Alloc(0). On
// failure nothing is cleared and the error propagates as-is.
func (h *Heap) Calloc(count, elemSize int) (Ref, []byte, error) {
	if h.region == nil {
		return NilRef, nil, ErrClosed
	}
	h.stats.CallocCalls++

	total := count * elemSize
	ref, payload, err := h.Alloc(total)
	if err != nil || ref == NilRef {
		return ref, payload, err
	}
	// Reused blocks carry whatever the previous owner wrote.
	clear(payload)
	return ref, payload, nil
}
