package heap

import "unsafe"

// ReadWord reads one machine word from a live allocation's payload at a
// word-aligned offset from its start. It is the primitive the mark phase
// of mark-and-sweep uses to conservatively scan a block's contents; heap
// itself never interprets the value.
func (h *Heap) ReadWord(p uintptr, wordOffset uintptr) uintptr {
	addr := p + wordOffset*unsafe.Sizeof(uintptr(0))
	return *(*uintptr)(unsafe.Pointer(addr))
}

// WriteWord writes one machine word into a live allocation's payload at a
// word-aligned offset from its start. Used by AddNestedReference to
// install the single outgoing pointer field the gc package models.
func (h *Heap) WriteWord(p uintptr, wordOffset uintptr, value uintptr) {
	addr := p + wordOffset*unsafe.Sizeof(uintptr(0))
	*(*uintptr)(unsafe.Pointer(addr)) = value
}

// WordSize is the size in bytes of one machine word, i.e. one uintptr.
func WordSize() uintptr {
	return unsafe.Sizeof(uintptr(0))
}

// Marked reports whether the live allocation at p is currently marked.
func (h *Heap) Marked(p uintptr) bool {
	return h.headerAt(p - headerSize).marked
}

// SetMarked sets or clears the mark bit on the live allocation at p. The
// bit has no meaning outside a mark-and-sweep collection cycle.
func (h *Heap) SetMarked(p uintptr, marked bool) {
	h.headerAt(p - headerSize).marked = marked
}
