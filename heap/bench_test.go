package heap

import (
	"errors"
	"testing"
)

func BenchmarkCarve(b *testing.B) {
	h, err := New(&Config{Limit: 1 << 30})
	if err != nil {
		b.Fatal(err)
	}
	defer func() { _ = h.Close() }()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, err := h.Alloc(64)
		if errors.Is(err, ErrOutOfMemory) {
			// Long runs exhaust the reservation; start a fresh heap.
			b.StopTimer()
			_ = h.Close()
			if h, err = New(&Config{Limit: 1 << 30}); err != nil {
				b.Fatal(err)
			}
			b.StartTimer()
			continue
		}
		if err != nil {
			b.Fatal(err)
		}
	}
}

// Alloc/free pairs stay on the reuse path after the first carve: the scan
// finds the freed block at the chain root every time.
func BenchmarkAllocFreeReuse(b *testing.B) {
	h, err := New(&Config{Limit: 1 << 20})
	if err != nil {
		b.Fatal(err)
	}
	defer h.Close()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ref, _, err := h.Alloc(64)
		if err != nil {
			b.Fatal(err)
		}
		if err := h.Free(ref); err != nil {
			b.Fatal(err)
		}
	}
}

// Worst case for first-fit: a long chain of live blocks forces a full walk
// before every carve.
func BenchmarkScanLongChain(b *testing.B) {
	h, err := New(&Config{Limit: 1 << 30})
	if err != nil {
		b.Fatal(err)
	}
	defer h.Close()

	for i := 0; i < 4096; i++ {
		if _, _, err := h.Alloc(32); err != nil {
			b.Fatal(err)
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := h.Alloc(32); err != nil {
			b.Fatal(err)
		}
	}
}
