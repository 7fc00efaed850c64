package heap

import "github.com/joshuapare/membrk/internal/format"

// findFree walks the chain from the root in carving order and returns the
// header offset of the first freed block whose payload can hold need bytes.
// First-fit: the scan never looks for a tighter fit further down the chain,
// and a hit hands back the whole block (no splitting), so oversized reuse
// wastes the tail bytes. That fragmentation is the accepted cost of the
// design.
//
// The walk is read-only. On a miss, tail is the last header visited so the
// caller can link a new carving after it; with a non-empty chain the tail is
// always valid.
func (h *Heap) findFree(need int) (found int, tail uint32, ok bool) {
	data := h.region.Bytes()
	cur := h.root
	tail = cur
	for cur != format.InvalidOffset {
		tail = cur
		off := int(cur)
		if format.ReadState(data, off) == format.StateFreed && format.ReadSize(data, off) >= need {
			return off, tail, true
		}
		cur = format.ReadNext(data, off)
	}
	return 0, tail, false
}
