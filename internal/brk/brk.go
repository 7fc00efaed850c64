// Package brk provides the heap-growth primitive: a contiguous address range
// reserved once up front, with a break that only ever moves forward.
//
// Payload slices handed out by the allocator alias this range, so the backing
// memory must never move. Growth therefore advances the break inside the
// reservation instead of remapping, and nothing is ever returned to the OS
// before Close.
package brk

import (
	"errors"
	"fmt"
)

var (
	// ErrExhausted indicates the reservation cannot cover the requested extension.
	ErrExhausted = errors.New("brk: reservation exhausted")

	// ErrClosed indicates the region has been released.
	ErrClosed = errors.New("brk: region closed")

	// ErrBadLimit indicates a non-positive reservation limit.
	ErrBadLimit = errors.New("brk: limit must be positive")
)

// Region is a reserved address range with a movable break. The bytes below
// the break are live; the bytes above it are untouched reservation.
type Region struct {
	data    []byte
	brk     int
	release func() error
}

// Reserve maps a zero-filled region of limit bytes and places the break at
// its start. On Unix the reservation is a private anonymous mapping, so pages
// above the break cost nothing until the break crosses them.
func Reserve(limit int) (*Region, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("%w (%d)", ErrBadLimit, limit)
	}
	data, release, err := reserve(limit)
	if err != nil {
		return nil, fmt.Errorf("brk: reserve %d bytes: %w", limit, err)
	}
	return &Region{data: data, release: release}, nil
}

// Sbrk extends the live span by n bytes and returns the previous break.
// Fails atomically: on ErrExhausted the break has not moved and no byte of
// the region has changed.
func (r *Region) Sbrk(n int) (int, error) {
	if r.data == nil {
		return 0, ErrClosed
	}
	if n < 0 {
		return 0, fmt.Errorf("brk: negative extension (%d)", n)
	}
	if n > len(r.data)-r.brk {
		return 0, fmt.Errorf("%w: break=%d limit=%d need=%d", ErrExhausted, r.brk, len(r.data), n)
	}
	prev := r.brk
	r.brk += n
	return prev, nil
}

// Bytes returns the live span below the break. The slice aliases the
// reservation; it is re-sliced, never reallocated, so sub-slices taken from
// earlier calls stay valid.
func (r *Region) Bytes() []byte {
	if r.data == nil {
		return nil
	}
	return r.data[:r.brk]
}

// Break returns the current break offset.
func (r *Region) Break() int { return r.brk }

// Limit returns the reservation size.
func (r *Region) Limit() int { return len(r.data) }

// Close releases the reservation. All slices previously taken from the region
// are invalid afterwards. Close is idempotent.
func (r *Region) Close() error {
	if r.data == nil {
		return nil
	}
	r.data = nil
	r.brk = 0
	if r.release == nil {
		return nil
	}
	err := r.release()
	r.release = nil
	return err
}
