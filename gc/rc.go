package gc

// CollectRC performs one reference-counted collection pass: every
// address whose reference count has dropped to zero or below is
// destroyed. Destroying a block does not decrement the reference counts
// of anything it points to, so a cycle with no
// external roots — or a chain whose only external root was on its
// head — is not fully reclaimed by this method; see CollectMS.
//
// Because destruction mutates the very table being ranged over, the scan
// restarts from the beginning after each destruction. This is O(n^2) in
// the worst case, which is an accepted cost for a teaching collector
// over a 4KB heap.
func (c *Collector) CollectRC() []uintptr {
	var reclaimed []uintptr
	for {
		p, found := c.firstZeroRefcount()
		if !found {
			break
		}
		c.destroy(p)
		reclaimed = append(reclaimed, p)
	}
	return reclaimed
}

func (c *Collector) firstZeroRefcount() (uintptr, bool) {
	for p, count := range c.refcounts {
		if count <= 0 {
			return p, true
		}
	}
	return 0, false
}
