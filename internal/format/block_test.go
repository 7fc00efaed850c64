package format

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriteHeaderRoundTrip(t *testing.T) {
	b := make([]byte, HeaderSize+64)
	WriteHeader(b, 0, 64, InvalidOffset, StateFresh)

	blk, err := ParseBlock(b, 0)
	require.NoError(t, err)
	require.Equal(t, 0, blk.Offset)
	require.Equal(t, 64, blk.PayloadSize)
	require.Equal(t, uint32(InvalidOffset), blk.Next)
	require.Equal(t, StateFresh, blk.State)
	require.Len(t, blk.Data, 64)
}

func TestParseBlockTruncated(t *testing.T) {
	b := make([]byte, HeaderSize-1)
	_, err := ParseBlock(b, 0)
	require.ErrorIs(t, err, ErrTruncated)

	// Header fits but the declared payload runs past the buffer.
	b = make([]byte, HeaderSize+8)
	WriteHeader(b, 0, 64, InvalidOffset, StateFreed)
	_, err = ParseBlock(b, 0)
	require.ErrorIs(t, err, ErrTruncated)
}

func TestParseBlockBadState(t *testing.T) {
	b := make([]byte, HeaderSize)
	WriteHeader(b, 0, 0, InvalidOffset, StateFresh)
	PutU32(b, StateOffset, 0xDEADBEEF)

	_, err := ParseBlock(b, 0)
	require.ErrorIs(t, err, ErrBadState)
}

func TestSetters(t *testing.T) {
	b := make([]byte, 2*HeaderSize)
	WriteHeader(b, 0, 0, InvalidOffset, StateFresh)

	SetNext(b, 0, HeaderSize)
	require.Equal(t, uint32(HeaderSize), ReadNext(b, 0))

	SetState(b, 0, StateFreed)
	require.Equal(t, StateFreed, ReadState(b, 0))

	// Size field must be untouched by link and state rewrites.
	require.Equal(t, 0, ReadSize(b, 0))
}

func TestStatePredicates(t *testing.T) {
	require.True(t, StateFresh.Allocated())
	require.True(t, StateReused.Allocated())
	require.False(t, StateFreed.Allocated())

	require.True(t, StateFreed.Valid())
	require.False(t, State(0).Valid())

	require.Equal(t, "fresh", StateFresh.String())
	require.Equal(t, "reused", StateReused.String())
	require.Equal(t, "freed", StateFreed.String())
	require.Equal(t, "invalid", State(7).String())
}
