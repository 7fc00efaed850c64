package heap

import (
	"fmt"
	"os"

	"github.com/joshuapare/membrk/internal/brk"
	"github.com/joshuapare/membrk/internal/buf"
	"github.com/joshuapare/membrk/internal/format"
)

// Runtime debug flag for allocation logging - controlled by MEMBRK_LOG_ALLOC env var.
var logAlloc = os.Getenv("MEMBRK_LOG_ALLOC") != ""

// Ref is a payload reference: the offset of a payload region within the heap.
// It always points at the byte immediately after a block header, never at the
// header itself. The zero value NilRef means "no allocation".
type Ref = uint32

// NilRef is the absent payload reference. The first payload in any heap sits
// behind a header, so offset 0 can never be a valid Ref.
const NilRef Ref = 0

// IntegrityPolicy selects how Free and Realloc respond to a double free or a
// reference whose header does not carry a known allocated tag.
type IntegrityPolicy int

const (
	// IntegrityPanic aborts on violation. This is the default: such misuse is
	// programmer error, not a runtime condition to recover from.
	IntegrityPanic IntegrityPolicy = iota

	// IntegrityError returns ErrCorrupted instead of panicking.
	IntegrityError

	// IntegrityOff skips the state-tag checks entirely, the analogue of a
	// build with assertions compiled out. Misuse then silently corrupts the
	// chain. Bounds checks on the reference itself always remain.
	IntegrityOff
)

// Config controls a heap's reservation and checking behavior.
type Config struct {
	// Limit is the reservation size in bytes: the hard ceiling the break can
	// reach. The address range is reserved up front so payload slices never
	// move; pages are committed lazily as carving advances. References and
	// chain links are 32-bit offsets, so New rejects limits past that range.
	Limit int

	// Integrity selects the violation policy for Free and Realloc.
	Integrity IntegrityPolicy
}

// DefaultConfig is used when New is given a nil config.
var DefaultConfig = Config{
	Limit:     1 << 30, // 1 GiB of address space, committed lazily
	Integrity: IntegrityPanic,
}

// maxLimit caps the reservation so that every offset the chain can mint -
// header offsets, next links, payload Refs - fits a uint32 and stays below
// the format.InvalidOffset end-of-chain sentinel. A larger reservation would
// let carve wrap offsets silently.
const maxLimit = int64(format.InvalidOffset) - format.HeaderSize

// Heap is one independent allocator: a reserved region, a break, and the
// chain of every block ever carved. The chain is append-only; blocks are
// never unlinked and their payload sizes never change.
//
// A Heap must be driven by a single goroutine at a time. There is no internal
// locking; this is an explicit precondition, not an oversight.
type Heap struct {
	region *brk.Region
	root   uint32 // offset of the first header, format.InvalidOffset when empty
	policy IntegrityPolicy
	stats  Stats

	// Test hook: called after each carve with the extension size (nil in production).
	onGrow func(int)
}

// New reserves a region per config and returns an empty heap.
func New(config *Config) (*Heap, error) {
	if config == nil {
		config = &DefaultConfig
	}
	if int64(config.Limit) > maxLimit {
		return nil, fmt.Errorf("heap: %w: limit %d exceeds 32-bit offset range (max %d)",
			brk.ErrBadLimit, config.Limit, maxLimit)
	}
	region, err := brk.Reserve(config.Limit)
	if err != nil {
		return nil, fmt.Errorf("heap: %w", err)
	}
	return &Heap{
		region: region,
		root:   format.InvalidOffset,
		policy: config.Integrity,
	}, nil
}

// Close releases the reservation. Every Ref and payload slice handed out by
// this heap is invalid afterwards. Close is idempotent.
func (h *Heap) Close() error {
	if h.region == nil {
		return nil
	}
	err := h.region.Close()
	h.region = nil
	h.root = format.InvalidOffset
	return err
}

// Break returns the current break offset: the total number of bytes ever
// carved, headers included. It only grows.
func (h *Heap) Break() int {
	if h.region == nil {
		return 0
	}
	return h.region.Break()
}

// resolveHeader recovers a header offset from a payload reference by backward
// offset. This is the single unsafe boundary between caller-held references
// and the chain; Free, Realloc and the read-only lookups all come through
// here and nothing else does pointer-to-header arithmetic.
func (h *Heap) resolveHeader(ref Ref) (int, error) {
	if ref < format.HeaderSize {
		return 0, fmt.Errorf("%w (%#x)", ErrBadRef, ref)
	}
	off := int(ref) - format.HeaderSize
	if !buf.Has(h.region.Bytes(), off, format.HeaderSize) {
		return 0, fmt.Errorf("%w (%#x past break %d)", ErrBadRef, ref, h.region.Break())
	}
	return off, nil
}

// violation reports an integrity failure per policy: panic or ErrCorrupted.
// Callers under IntegrityOff never reach this.
func (h *Heap) violation(detail string) error {
	if h.policy == IntegrityPanic {
		panic("heap: " + detail)
	}
	return fmt.Errorf("%w: %s", ErrCorrupted, detail)
}

// debugLogf prints allocation diagnostics when MEMBRK_LOG_ALLOC is set.
func debugLogf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "[HEAP] "+format+"\n", args...)
}
