package heap

// Stats holds cumulative counters for one heap. Counters only increase; the
// chain has no shrink path to account for.
type Stats struct {
	AllocCalls     int   // Alloc entries, including the no-allocation size-0 case
	AllocFresh     int   // Allocations served by carving a new block
	AllocReused    int   // Allocations served by the free-block scan
	FreeCalls      int   // Frees that marked a block, excluding Free(NilRef) and rejected violations
	ReallocCalls   int   // Realloc entries with a live reference
	ReallocInPlace int   // Reallocs satisfied by the existing block
	ReallocMoved   int   // Reallocs that carved or reused elsewhere and copied
	CallocCalls    int   // Calloc entries
	GrowCalls      int   // Break extensions
	GrowBytes      int64 // Total bytes the break advanced, headers included
	BytesAllocated int64 // Payload bytes handed out (recorded block sizes)
	BytesFreed     int64 // Payload bytes marked freed
}

// Stats returns a snapshot of the counters.
func (h *Heap) Stats() Stats {
	return h.stats
}
