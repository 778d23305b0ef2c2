package heap

import (
	"strconv"
	"strings"
)

// PrintFreeList renders the free list as "Free(s1)->Free(s2)->...->\n",
// one entry per free block in list order. This exact format is a tested
// contract, not just a debugging aid.
func (h *Heap) PrintFreeList() string {
	var b strings.Builder
	for p := h.head; p != h.tail; {
		node := h.nodeAt(p)
		b.WriteString("Free(")
		b.WriteString(strconv.FormatUint(uint64(node.size), 10))
		b.WriteString(")->")
		p = node.next
	}
	b.WriteByte('\n')
	return b.String()
}
