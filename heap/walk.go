package heap

import (
	"fmt"
	"io"

	"github.com/joshuapare/membrk/internal/format"
)

// BlockInfo describes one block in the chain.
type BlockInfo struct {
	Ref   Ref    // Payload reference of the block
	Size  int    // Recorded payload size in bytes
	Free  bool   // True when the block is awaiting reuse
	State string // "fresh", "reused" or "freed"
}

// BlockIterator walks the chain in carving order.
type BlockIterator struct {
	h   *Heap
	cur uint32
}

// Blocks returns an iterator over every block ever carved, oldest first.
// The iterator reads the live chain; allocating or freeing while iterating
// gives unspecified results.
func (h *Heap) Blocks() *BlockIterator {
	return &BlockIterator{h: h, cur: h.root}
}

// Next returns the next block, or io.EOF after the tail.
func (it *BlockIterator) Next() (BlockInfo, error) {
	if it.h.region == nil {
		return BlockInfo{}, ErrClosed
	}
	if it.cur == format.InvalidOffset {
		return BlockInfo{}, io.EOF
	}
	blk, err := format.ParseBlock(it.h.region.Bytes(), int(it.cur))
	if err != nil {
		return BlockInfo{}, fmt.Errorf("heap: walk: %w", err)
	}
	it.cur = blk.Next
	return BlockInfo{
		Ref:   Ref(blk.Offset + format.HeaderSize),
		Size:  blk.PayloadSize,
		Free:  blk.State == format.StateFreed,
		State: blk.State.String(),
	}, nil
}

// UsableSize returns the recorded payload size behind ref. Unlike the request
// passed to Alloc, this is the size the scanner matches against, which can be
// larger when the block was reused.
func (h *Heap) UsableSize(ref Ref) (int, error) {
	if h.region == nil {
		return 0, ErrClosed
	}
	off, err := h.resolveHeader(ref)
	if err != nil {
		return 0, err
	}
	blk, err := format.ParseBlock(h.region.Bytes(), off)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBadRef, err)
	}
	return blk.PayloadSize, nil
}

// Payload returns the payload slice behind ref without changing any state.
func (h *Heap) Payload(ref Ref) ([]byte, error) {
	if h.region == nil {
		return nil, ErrClosed
	}
	off, err := h.resolveHeader(ref)
	if err != nil {
		return nil, err
	}
	blk, err := format.ParseBlock(h.region.Bytes(), off)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadRef, err)
	}
	return blk.Data, nil
}

// CheckIntegrity validates the whole chain against the structural invariants:
// the root sits at the region start, every header parses with a known state
// tag, blocks are contiguous in carving order, and the chain accounts for
// every byte below the break. Intended for tests and debugging; it never
// mutates the heap.
func (h *Heap) CheckIntegrity() error {
	if h.region == nil {
		return ErrClosed
	}
	data := h.region.Bytes()
	if h.root == format.InvalidOffset {
		if len(data) != 0 {
			return fmt.Errorf("%w: break at %d with empty chain", ErrCorrupted, len(data))
		}
		return nil
	}
	if h.root != 0 {
		return fmt.Errorf("%w: root at %d, not at region start", ErrCorrupted, h.root)
	}

	cur := h.root
	for {
		blk, err := format.ParseBlock(data, int(cur))
		if err != nil {
			return fmt.Errorf("%w: %w", ErrCorrupted, err)
		}
		end := blk.Offset + format.HeaderSize + blk.PayloadSize
		if blk.Next == format.InvalidOffset {
			if end != len(data) {
				return fmt.Errorf("%w: tail block at %d ends at %d, break at %d",
					ErrCorrupted, blk.Offset, end, len(data))
			}
			return nil
		}
		// Carvings are contiguous, so each link lands exactly on the
		// neighbor's header. This also rules out cycles.
		if int(blk.Next) != end {
			return fmt.Errorf("%w: block at %d links to %d, expected %d",
				ErrCorrupted, blk.Offset, blk.Next, end)
		}
		cur = blk.Next
	}
}
