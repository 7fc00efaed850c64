package format

import (
	"fmt"

	"github.com/joshuapare/membrk/internal/buf"
)

// Block is the decoded view of one carved region.
//
// Header layout (little-endian):
//
//	Offset  Size  Description
//	0x00    4     Payload size in bytes. Set at carving, never mutated.
//	0x04    4     Offset of the next header, InvalidOffset at the chain tail.
//	0x08    4     State tag ("FRSH", "RUSE" or "FREE").
//	0x0C    4     Reserved, zero.
type Block struct {
	Offset      int    // Header offset within the region
	PayloadSize int    // Bytes usable by the caller
	Next        uint32 // Next header offset, InvalidOffset when none
	State       State
	Data        []byte // Payload bytes (alias of the underlying region)
}

// ParseBlock decodes the header at off within b. The caller must ensure off
// points at a header it previously wrote; an unknown state tag is reported as
// ErrBadState rather than guessed at.
func ParseBlock(b []byte, off int) (Block, error) {
	if !buf.Has(b, off, HeaderSize) {
		return Block{}, fmt.Errorf("block at %d: %w", off, ErrTruncated)
	}
	size := ReadU32(b, off+SizeOffset)
	if size > MaxPayloadSize {
		return Block{}, fmt.Errorf("block at %d: %w (%d)", off, ErrSizeRange, size)
	}
	payload, ok := buf.Slice(b, off+HeaderSize, int(size))
	if !ok {
		return Block{}, fmt.Errorf("block at %d: payload: %w", off, ErrTruncated)
	}
	st := State(ReadU32(b, off+StateOffset))
	if !st.Valid() {
		return Block{}, fmt.Errorf("block at %d: %w (0x%08X)", off, ErrBadState, uint32(st))
	}
	return Block{
		Offset:      off,
		PayloadSize: int(size),
		Next:        ReadU32(b, off+NextOffset),
		State:       st,
		Data:        payload,
	}, nil
}

// WriteHeader encodes a complete header at off. The payload size field is the
// only place the size is ever recorded; it must not be rewritten afterwards.
func WriteHeader(b []byte, off int, payloadSize int, next uint32, st State) {
	PutU32(b, off+SizeOffset, uint32(payloadSize))
	PutU32(b, off+NextOffset, next)
	PutU32(b, off+StateOffset, uint32(st))
	PutU32(b, off+ReservedOffset, 0)
}

// SetNext rewrites the next-header link of the header at off.
func SetNext(b []byte, off int, next uint32) {
	PutU32(b, off+NextOffset, next)
}

// SetState rewrites the state tag of the header at off.
func SetState(b []byte, off int, st State) {
	PutU32(b, off+StateOffset, uint32(st))
}

// ReadState returns the raw state tag of the header at off without validating it.
func ReadState(b []byte, off int) State {
	return State(ReadU32(b, off+StateOffset))
}

// ReadSize returns the recorded payload size of the header at off.
func ReadSize(b []byte, off int) int {
	return int(ReadU32(b, off+SizeOffset))
}

// ReadNext returns the next-header link of the header at off.
func ReadNext(b []byte, off int) uint32 {
	return ReadU32(b, off+NextOffset)
}
