package heap

import "errors"

var (
	// ErrOutOfMemory indicates the reservation could not cover a new carving.
	// The heap is still fully usable; existing blocks are untouched.
	ErrOutOfMemory = errors.New("heap: out of memory")

	// ErrBadSize indicates a negative or unrepresentably large size request.
	ErrBadSize = errors.New("heap: invalid size")

	// ErrBadRef indicates a payload reference outside the live region.
	ErrBadRef = errors.New("heap: bad payload reference")

	// ErrCorrupted indicates an integrity violation (double free, foreign or
	// clobbered header) under IntegrityError policy. Under IntegrityPanic the
	// same condition panics instead.
	ErrCorrupted = errors.New("heap: corrupted or foreign block")

	// ErrClosed indicates the heap has been closed.
	ErrClosed = errors.New("heap: heap closed")
)
