package gc

import "github.com/joerp78/mark-and-sweep-project/heap"

// CollectMS runs a full mark-and-sweep cycle: mark clears every block's
// mark bit and then recursively marks everything reachable from the root
// multiset; sweep destroys everything left unmarked. Unlike CollectRC,
// this reclaims cycles, because reachability is computed from the roots
// outward rather than inferred from a per-object count.
//
// If the sweep leaves no live allocations at all, the underlying heap is
// reset, defensively re-homing the free list to a single block rather
// than trusting that coalescing alone reconstructed it exactly.
func (c *Collector) CollectMS() []uintptr {
	c.mark()
	reclaimed := c.sweep()
	if len(c.allocations) == 0 {
		_ = c.heap.Reset()
	}
	return reclaimed
}

func (c *Collector) mark() {
	for p := range c.allocations {
		c.heap.SetMarked(p, false)
	}
	for root := range c.roots {
		if c.allocations[root] {
			c.markBlock(root)
		}
	}
}

// markBlock marks p and conservatively scans its payload one machine
// word at a time. Every word is reinterpreted as a candidate address; if
// it happens to equal a live allocation's address, that allocation is
// recursively marked too. There is no way to tell a genuine pointer from
// an integer that merely collides with a live address — the accepted
// false positive is that such a block survives one extra collection
// cycle (see the package's design notes).
func (c *Collector) markBlock(p uintptr) {
	if c.heap.Marked(p) {
		return
	}
	c.heap.SetMarked(p, true)

	words := c.heap.PayloadSize(p) / heap.WordSize()
	for i := uintptr(0); i < words; i++ {
		word := c.heap.ReadWord(p, i)
		if c.allocations[word] && !c.heap.Marked(word) {
			c.markBlock(word)
		}
	}
}

// sweep destroys every unmarked live allocation and returns the reclaimed
// addresses in destruction order. Like CollectRC, it tolerates the table
// mutating mid-scan by restarting after each destruction.
func (c *Collector) sweep() []uintptr {
	var reclaimed []uintptr
	for {
		p, found := c.firstUnmarked()
		if !found {
			break
		}
		c.destroy(p)
		reclaimed = append(reclaimed, p)
	}
	return reclaimed
}

func (c *Collector) firstUnmarked() (uintptr, bool) {
	for p := range c.allocations {
		if !c.heap.Marked(p) {
			return p, true
		}
	}
	return 0, false
}
