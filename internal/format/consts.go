package format

// Binary layout constants for block headers.
//
// Every carved region starts with a fixed 16-byte header followed immediately
// by the caller-visible payload. All multi-byte fields are little-endian.
const (
	// HeaderSize is the total size of a block header in bytes.
	HeaderSize = 16

	// SizeOffset is the header offset of the payload size field (u32).
	SizeOffset = 0x00

	// NextOffset is the header offset of the next-header link field (u32).
	NextOffset = 0x04

	// StateOffset is the header offset of the state tag field (u32).
	StateOffset = 0x08

	// ReservedOffset is the header offset of the reserved field (u32, zero).
	ReservedOffset = 0x0C
)

// InvalidOffset marks an absent header link (end of chain, empty root).
const InvalidOffset = 0xFFFFFFFF

// MaxPayloadSize bounds a single payload. Offsets travel through uint32
// header links and int slice indexes, so a block may not span 2GB.
const MaxPayloadSize = 0x7FFFFFFF - HeaderSize
