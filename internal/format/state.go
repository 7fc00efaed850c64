package format

// State is the lifecycle tag stored in a block header.
//
// The values are four ASCII bytes read little-endian, so a header dump shows
// "FRSH", "RUSE" or "FREE" at offset 0x08. Anything else at that offset means
// the reference did not come from this allocator, or the header was clobbered.
type State uint32

const (
	// StateFresh marks a block carved from the break and never freed.
	StateFresh State = 0x48535246 // "FRSH"

	// StateReused marks a freed block handed out again by the scanner.
	StateReused State = 0x45535552 // "RUSE"

	// StateFreed marks a block available for reuse.
	StateFreed State = 0x45455246 // "FREE"
)

// Allocated reports whether the state is one of the two in-use tags.
func (s State) Allocated() bool {
	return s == StateFresh || s == StateReused
}

// Valid reports whether the state is a known tag.
func (s State) Valid() bool {
	return s == StateFresh || s == StateReused || s == StateFreed
}

func (s State) String() string {
	switch s {
	case StateFresh:
		return "fresh"
	case StateReused:
		return "reused"
	case StateFreed:
		return "freed"
	default:
		return "invalid"
	}
}
