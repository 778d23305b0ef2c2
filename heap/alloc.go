package heap

// findFree walks the free list looking for the first block whose payload
// capacity is at least size. It reports both the found block and its
// predecessor (if any), since patching the free list requires the
// predecessor's next pointer.
func (h *Heap) findFree(size uintptr) (found uintptr, hasFound bool, prev uintptr, hasPrev bool) {
	curr := h.head
	for curr != h.tail {
		node := h.nodeAt(curr)
		if node.size >= size {
			return curr, true, prev, hasPrev
		}
		prev = curr
		hasPrev = true
		curr = node.next
	}
	return 0, false, 0, false
}

// split carves an allocation of size bytes out of the free block at addr,
// patches the free list around it, and returns the address of the new
// allocation header.
//
// A split that would leave a remainder too small to host its own
// freeNode header is refused; the whole block is handed to the caller
// instead; see the split-policy discussion in this package's design
// notes. Either way the header's size field always holds the block's
// true usable payload capacity, so AvailableMemory accounting and a
// later Free both stay exact.
func (h *Heap) split(size uintptr, addr uintptr, prev uintptr, hasPrev bool) uintptr {
	block := h.nodeAt(addr)
	oldSize := block.size
	oldNext := block.next

	if oldSize < size+headerSize {
		// Remainder would be too small to host a freeNode; give the
		// whole block away instead of carving a corrupt remainder.
		h.unlink(oldNext, prev, hasPrev)

		hdr := h.headerAt(addr)
		hdr.size = oldSize
		hdr.marked = false
		return addr
	}

	remainderAddr := addr + headerSize + size
	remainder := h.nodeAt(remainderAddr)
	remainder.size = oldSize - size - headerSize
	remainder.next = oldNext
	h.unlink(remainderAddr, prev, hasPrev)

	hdr := h.headerAt(addr)
	hdr.size = size
	hdr.marked = false
	return addr
}

// unlink patches the free list so that replacement takes the place of
// whatever previously sat at this position: the predecessor's next
// pointer if there was one, otherwise the list head.
func (h *Heap) unlink(replacement uintptr, prev uintptr, hasPrev bool) {
	if hasPrev {
		h.nodeAt(prev).next = replacement
	} else {
		h.head = replacement
	}
}

// Allocate reserves size bytes from the heap using first-fit placement,
// splitting the found block if the remainder is big enough to stay a
// legal free-list node. It returns the address immediately following the
// new allocation's header, or ErrOutOfMemory if no block is big enough.
func (h *Heap) Allocate(size uintptr) (uintptr, error) {
	found, hasFound, prev, hasPrev := h.findFree(size)
	if !hasFound {
		return 0, ErrOutOfMemory
	}

	headerAddr := h.split(size, found, prev, hasPrev)
	return headerAddr + headerSize, nil
}

// PayloadSize returns the usable payload size of a live allocation at the
// given user-visible address.
func (h *Heap) PayloadSize(p uintptr) uintptr {
	return h.headerAt(p - headerSize).size
}
