package heap

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCallocZeroesFreshBlock(t *testing.T) {
	h := newTestHeap(t, &Config{Limit: 4096})

	ref, buf, err := h.Calloc(8, 4)
	require.NoError(t, err)
	require.NotEqual(t, NilRef, ref)
	require.Len(t, buf, 32)
	for i, b := range buf {
		require.Zero(t, b, "byte %d not zero", i)
	}
}

// The zeroing matters most when the allocation reuses a block that carries
// the previous owner's bytes.
func TestCallocZeroesReusedBlock(t *testing.T) {
	h := newTestHeap(t, &Config{Limit: 4096})

	ref, buf, err := h.Alloc(32)
	require.NoError(t, err)
	for i := range buf {
		buf[i] = 0xFF
	}
	require.NoError(t, h.Free(ref))

	got, buf2, err := h.Calloc(4, 8)
	require.NoError(t, err)
	require.Equal(t, ref, got)
	for i, b := range buf2 {
		require.Zero(t, b, "stale byte %d survived", i)
	}
}

func TestCallocZeroTotal(t *testing.T) {
	h := newTestHeap(t, &Config{Limit: 4096})

	ref, buf, err := h.Calloc(0, 16)
	require.NoError(t, err)
	require.Equal(t, NilRef, ref)
	require.Nil(t, buf)

	ref, _, err = h.Calloc(16, 0)
	require.NoError(t, err)
	require.Equal(t, NilRef, ref)
}

func TestCallocNegativeInput(t *testing.T) {
	h := newTestHeap(t, &Config{Limit: 4096})

	// A negative product reaches Alloc and is rejected there.
	_, _, err := h.Calloc(-1, 16)
	require.ErrorIs(t, err, ErrBadSize)
}

func TestCallocOutOfMemory(t *testing.T) {
	h := newTestHeap(t, &Config{Limit: 64})

	_, _, err := h.Calloc(64, 64)
	require.ErrorIs(t, err, ErrOutOfMemory)
	require.NoError(t, h.CheckIntegrity())
}
