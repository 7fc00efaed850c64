package format

import "errors"

var (
	// ErrTruncated indicates the buffer lacked the bytes required for a header.
	ErrTruncated = errors.New("format: truncated buffer")

	// ErrBadState indicates a header carried an unrecognized state tag.
	ErrBadState = errors.New("format: unrecognized state tag")

	// ErrSizeRange indicates a payload size outside the representable range.
	ErrSizeRange = errors.New("format: payload size out of range")
)
