// Package gc layers two interchangeable collectors on top of package
// heap: a reference-counting reclaimer and a conservative mark-and-sweep
// reclaimer. Both share the same three process-wide tables — live
// allocations, a root multiset, and reference counts — but reach very
// different conclusions about which blocks are garbage, which is the
// pedagogical point of the system (see CollectRC and CollectMS).
package gc

import "github.com/joerp78/mark-and-sweep-project/heap"

// Collector tracks every allocation made through it, a multiset of root
// references simulating stack/global pointers, and a reference count per
// allocation. It borrows a *heap.Heap for the duration of each call; it
// holds no lock and is not safe for concurrent use (a single mutator is
// assumed throughout).
type Collector struct {
	heap *heap.Heap

	allocations map[uintptr]bool
	roots       map[uintptr]int
	refcounts   map[uintptr]int
}

// New constructs a Collector over an already-initialized heap.
func New(h *heap.Heap) *Collector {
	return &Collector{
		heap:        h,
		allocations: make(map[uintptr]bool),
		roots:       make(map[uintptr]int),
		refcounts:   make(map[uintptr]int),
	}
}

// Allocate reserves size bytes from the underlying heap and registers the
// result: it enters the allocations table, its reference count starts at
// 1, and it is seeded into the root set with multiplicity 1 (the
// convention that a freshly allocated object is, for the moment, rooted
// by whoever just allocated it). On allocator failure no collector state
// changes.
func (c *Collector) Allocate(size uintptr) (uintptr, error) {
	p, err := c.heap.Allocate(size)
	if err != nil {
		return 0, err
	}

	c.allocations[p] = true
	c.refcounts[p] = 1
	c.roots[p] = 1
	return p, nil
}

// AvailableMemory passes through to the underlying heap.
func (c *Collector) AvailableMemory() uintptr {
	return c.heap.AvailableMemory()
}

// PrintFreeList passes through to the underlying heap.
func (c *Collector) PrintFreeList() string {
	return c.heap.PrintFreeList()
}

// IsLive reports whether p is currently a tracked, live allocation.
func (c *Collector) IsLive(p uintptr) bool {
	return c.allocations[p]
}

// Refcount returns the current reference count for p (0 if untracked).
func (c *Collector) Refcount(p uintptr) int {
	return c.refcounts[p]
}

// destroy returns a block's bytes to the heap's free list and removes it
// from all three collector tables. It is the only path by which a live
// allocation becomes Reclaimed; both CollectRC and CollectMS route
// through it.
func (c *Collector) destroy(p uintptr) {
	_ = c.heap.Free(p) // a tracked address is always a live allocation; Free cannot fail here
	delete(c.allocations, p)
	delete(c.refcounts, p)
	delete(c.roots, p)
}

// Close tears down the collector's tables and releases the underlying
// heap's OS mapping. The collector must not be used afterward.
func (c *Collector) Close() error {
	c.allocations = make(map[uintptr]bool)
	c.roots = make(map[uintptr]int)
	c.refcounts = make(map[uintptr]int)
	return c.heap.Close()
}
