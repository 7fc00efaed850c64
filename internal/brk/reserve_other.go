//go:build !linux && !freebsd && !darwin

package brk

// reserve allocates the region from the Go heap on platforms without an mmap
// wrapper. The slice is held for the lifetime of the Region, so the backing
// array never moves.
func reserve(limit int) ([]byte, func() error, error) {
	data := make([]byte, limit)
	return data, func() error { return nil }, nil
}
