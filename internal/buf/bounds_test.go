package buf

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAddOverflowSafe(t *testing.T) {
	v, ok := AddOverflowSafe(1, 2)
	require.True(t, ok)
	require.Equal(t, 3, v)

	_, ok = AddOverflowSafe(math.MaxInt, 1)
	require.False(t, ok)

	_, ok = AddOverflowSafe(math.MinInt, -1)
	require.False(t, ok)
}

func TestSlice(t *testing.T) {
	b := make([]byte, 32)

	s, ok := Slice(b, 0, 32)
	require.True(t, ok)
	require.Len(t, s, 32)

	s, ok = Slice(b, 16, 16)
	require.True(t, ok)
	require.Len(t, s, 16)

	_, ok = Slice(b, 16, 17)
	require.False(t, ok)

	_, ok = Slice(b, -1, 4)
	require.False(t, ok)

	_, ok = Slice(b, 4, -1)
	require.False(t, ok)

	// Offset + length overflowing int must not wrap into bounds.
	_, ok = Slice(b, 8, math.MaxInt)
	require.False(t, ok)
}

func TestHas(t *testing.T) {
	b := make([]byte, 8)
	require.True(t, Has(b, 0, 8))
	require.True(t, Has(b, 8, 0))
	require.False(t, Has(b, 8, 1))
	require.False(t, Has(b, -1, 1))
}
