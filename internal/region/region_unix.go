//go:build unix

package region

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// mmap asks the kernel for a private, anonymous, read/write mapping. It is
// not backed by any file descriptor, so the returned bytes start zeroed and
// vanish on Unmap or process exit, whichever comes first.
func mmap(size int) ([]byte, error) {
	b, err := unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, fmt.Errorf("region: mmap %d bytes: %w", size, err)
	}
	return b, nil
}

func munmap(b []byte) error {
	if len(b) == 0 {
		return nil
	}
	return unix.Munmap(b)
}
