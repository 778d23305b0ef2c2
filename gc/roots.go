package gc

// AddRoot inserts p into the root multiset, increasing its multiplicity
// by one, and increments its reference count. It does not verify that p
// is a member of the allocations table — the contract is that callers
// only ever pass addresses this collector itself returned from Allocate.
func (c *Collector) AddRoot(p uintptr) {
	c.roots[p]++
	c.refcounts[p]++
}

// DeleteRoot removes one occurrence of p from the root multiset and
// decrements its reference count, clamped at zero. If p is not currently
// a root, the call is a silent no-op.
func (c *Collector) DeleteRoot(p uintptr) {
	count, ok := c.roots[p]
	if !ok {
		return
	}

	if count <= 1 {
		delete(c.roots, p)
	} else {
		c.roots[p] = count - 1
	}

	if c.refcounts[p] > 0 {
		c.refcounts[p]--
	}
}
