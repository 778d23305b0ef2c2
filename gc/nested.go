package gc

import "github.com/joerp78/mark-and-sweep-project/heap"

// AddNestedReference writes dest into the first word of src's payload and
// increments dest's reference count. It models a single outgoing pointer
// field per object; it deliberately does not support arbitrary field
// offsets, since the conservative mark-and-sweep scanner discovers any
// address-valued word regardless of where it sits in the payload. It
// does not touch the root multiset — a nested reference is not a root.
func (c *Collector) AddNestedReference(src, dest uintptr) error {
	if c.heap.PayloadSize(src) < heap.WordSize() {
		return ErrNestedTooSmall
	}

	c.heap.WriteWord(src, 0, dest)
	c.refcounts[dest]++
	return nil
}
