package heap

// Free returns a previously allocated block to the free list, inserting it
// in address order and coalescing with whichever neighbors it now abuts.
func (h *Heap) Free(p uintptr) error {
	headerAddr := p - headerSize
	if !h.contains(p) {
		return ErrInvalidPointer
	}

	size := h.headerAt(headerAddr).size
	h.coalesce(headerAddr, size)
	return nil
}

// coalesce inserts a freed block (already known to be size bytes of
// payload, at freeAddr) into the address-ordered free list, merging it
// with an abutting predecessor and/or successor.
func (h *Heap) coalesce(freeAddr uintptr, size uintptr) {
	node := h.nodeAt(freeAddr)
	node.size = size

	next := h.head
	var prev uintptr
	hasPrev := false
	for next != h.tail && next < freeAddr {
		prev = next
		hasPrev = true
		next = h.nodeAt(next).next
	}

	node.next = next
	if hasPrev {
		h.nodeAt(prev).next = freeAddr
	} else {
		h.head = freeAddr
	}

	// Forward-coalesce: does the freed block touch the block after it?
	if next != h.tail && freeAddr+headerSize+node.size == next {
		nextNode := h.nodeAt(next)
		node.size += nextNode.size + headerSize
		node.next = nextNode.next
	}

	// Backward-coalesce: does the predecessor touch the freed block?
	if hasPrev {
		prevNode := h.nodeAt(prev)
		if prev+headerSize+prevNode.size == freeAddr {
			prevNode.size += node.size + headerSize
			prevNode.next = node.next
		}
	}
}
