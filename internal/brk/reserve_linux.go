//go:build linux || freebsd

package brk

import (
	"golang.org/x/sys/unix"
)

// reserve maps an anonymous private region of limit bytes.
//
// MAP_NORESERVE keeps the kernel from charging swap for the whole
// reservation; pages are committed lazily as the break advances over them.
func reserve(limit int) ([]byte, func() error, error) {
	data, err := unix.Mmap(
		-1,
		0,
		limit,
		unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_PRIVATE|unix.MAP_ANONYMOUS|unix.MAP_NORESERVE,
	)
	if err != nil {
		return nil, nil, err
	}
	release := func() error {
		return unix.Munmap(data)
	}
	return data, release, nil
}
