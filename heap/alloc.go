package heap

import (
	"errors"
	"fmt"

	"github.com/joshuapare/membrk/internal/brk"
	"github.com/joshuapare/membrk/internal/format"
)

// Alloc returns a payload region of at least size bytes.
//
// size == 0 is "no allocation": NilRef with a nil slice and no error. A reused
// block may be larger than requested; the returned slice covers the block's
// full recorded payload size. The payload contents are unspecified (fresh
// carvings happen to be zero, reused blocks carry stale bytes) - use Calloc
// for zeroed memory.
func (h *Heap) Alloc(size int) (Ref, []byte, error) {
	if h.region == nil {
		return NilRef, nil, ErrClosed
	}
	h.stats.AllocCalls++

	if size < 0 {
		return NilRef, nil, fmt.Errorf("%w (%d)", ErrBadSize, size)
	}
	if size == 0 {
		return NilRef, nil, nil
	}
	if size > format.MaxPayloadSize {
		return NilRef, nil, fmt.Errorf("%w (%d exceeds max payload %d)", ErrBadSize, size, format.MaxPayloadSize)
	}

	// First carving ever establishes the chain root.
	if h.root == format.InvalidOffset {
		off, err := h.carve(size, format.InvalidOffset)
		if err != nil {
			return NilRef, nil, err
		}
		h.root = off
		return h.blockPayload(int(off))
	}

	// First-fit over the chain; on a miss the scan's tail is where the new
	// block links in.
	found, tail, ok := h.findFree(size)
	if ok {
		data := h.region.Bytes()
		format.SetState(data, found, format.StateReused)
		h.stats.AllocReused++
		h.stats.BytesAllocated += int64(format.ReadSize(data, found))
		if logAlloc {
			debugLogf("alloc %d: reusing block at %d (payload %d)", size, found, format.ReadSize(data, found))
		}
		return h.blockPayload(found)
	}

	off, err := h.carve(size, tail)
	if err != nil {
		return NilRef, nil, err
	}
	return h.blockPayload(int(off))
}

// Free marks the block owning ref as freed, making it eligible for reuse.
// Free(NilRef) is a no-op. A double free or a reference that does not point
// at an allocated block is an integrity violation handled per policy. The
// block stays in the chain; nothing is merged or returned to the OS.
func (h *Heap) Free(ref Ref) error {
	if ref == NilRef {
		return nil
	}
	if h.region == nil {
		return ErrClosed
	}

	off, err := h.resolveHeader(ref)
	if err != nil {
		if h.policy == IntegrityPanic {
			panic(err.Error())
		}
		return err
	}
	data := h.region.Bytes()
	if h.policy != IntegrityOff {
		switch st := format.ReadState(data, off); {
		case st == format.StateFreed:
			return h.violation(fmt.Sprintf("double free of ref %#x", ref))
		case !st.Allocated():
			return h.violation(fmt.Sprintf("ref %#x has no allocated block (tag 0x%08X)", ref, uint32(st)))
		}
	}

	format.SetState(data, off, format.StateFreed)
	h.stats.FreeCalls++
	h.stats.BytesFreed += int64(format.ReadSize(data, off))
	if logAlloc {
		debugLogf("free ref %#x: block at %d (payload %d)", ref, off, format.ReadSize(data, off))
	}
	return nil
}

// carve extends the break by one header plus size payload bytes, writes a
// fresh header there and links it after prev (format.InvalidOffset for the
// root carving). The break only moves on success, so a failed carve leaves
// the chain exactly as it was.
func (h *Heap) carve(size int, prev uint32) (uint32, error) {
	need := format.HeaderSize + size
	off, err := h.region.Sbrk(need)
	if err != nil {
		if errors.Is(err, brk.ErrExhausted) {
			return 0, fmt.Errorf("%w: %w", ErrOutOfMemory, err)
		}
		return 0, fmt.Errorf("heap: carve: %w", err)
	}

	data := h.region.Bytes()
	format.WriteHeader(data, off, size, format.InvalidOffset, format.StateFresh)
	// Header is complete before the chain sees it.
	if prev != format.InvalidOffset {
		format.SetNext(data, int(prev), uint32(off))
	}

	h.stats.GrowCalls++
	h.stats.GrowBytes += int64(need)
	h.stats.AllocFresh++
	h.stats.BytesAllocated += int64(size)
	if logAlloc {
		debugLogf("carve %d: header at %d, break now %d", size, off, h.region.Break())
	}
	if h.onGrow != nil {
		h.onGrow(need)
	}
	return uint32(off), nil
}

// blockPayload returns the reference and payload slice for the header at off.
func (h *Heap) blockPayload(off int) (Ref, []byte, error) {
	data := h.region.Bytes()
	size := format.ReadSize(data, off)
	start := off + format.HeaderSize
	return Ref(start), data[start : start+size], nil
}
