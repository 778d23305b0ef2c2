package heap

import "errors"

var (
	// ErrOutOfMemory is returned when the free list has no block large
	// enough to satisfy a request.
	ErrOutOfMemory = errors.New("heap: no free block large enough")

	// ErrInvalidPointer is returned when Free is asked to release a
	// pointer that does not fall inside the mapped region.
	ErrInvalidPointer = errors.New("heap: pointer outside region")
)
