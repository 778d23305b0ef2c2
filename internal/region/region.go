// Package region maps and unmaps the single fixed-size byte range the heap
// allocator carves its blocks from. Every mapping is anonymous and private:
// nothing is backed by a file, and nothing is shared with another process.
package region

import "errors"

// ErrUnavailable is returned when the host platform cannot provide an
// anonymous read/write mapping. The core cannot function without its
// region, so callers treat this as a fatal startup error.
var ErrUnavailable = errors.New("region: anonymous mapping unavailable on this platform")

// Map reserves size bytes of anonymous, private, read/write memory and
// returns it as a byte slice. The returned slice must be released with
// Unmap once the caller is done with it.
func Map(size int) ([]byte, error) {
	return mmap(size)
}

// Unmap releases a mapping previously returned by Map.
func Unmap(b []byte) error {
	return munmap(b)
}
