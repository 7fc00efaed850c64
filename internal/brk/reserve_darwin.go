//go:build darwin

package brk

import (
	"golang.org/x/sys/unix"
)

// reserve maps an anonymous private region of limit bytes.
//
// Darwin has no MAP_NORESERVE; anonymous mappings are already lazily
// committed, so the plain flag set behaves the same way.
func reserve(limit int) ([]byte, func() error, error) {
	data, err := unix.Mmap(
		-1,
		0,
		limit,
		unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_PRIVATE|unix.MAP_ANON,
	)
	if err != nil {
		return nil, nil, err
	}
	release := func() error {
		return unix.Munmap(data)
	}
	return data, release, nil
}
