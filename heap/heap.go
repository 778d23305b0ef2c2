// Package heap implements a fixed-size, free-list-backed allocator over a
// single OS-mapped region. Metadata for both free blocks and live
// allocations lives in-band, at the start of the block it describes:
// there is no side table mapping addresses to sizes here (the gc package
// keeps a side set of live addresses, for a different purpose).
package heap

import (
	"fmt"
	"unsafe"

	"github.com/joerp78/mark-and-sweep-project/internal/region"
)

// DefaultRegionSize is the region size used when no Option overrides it.
const DefaultRegionSize = 4096

// freeNode sits at the start of every currently free block. size is the
// number of payload bytes available if the block were allocated (i.e.
// the block's footprint minus this header); next is the address of the
// following free block, or the sentinel.
type freeNode struct {
	size uintptr
	next uintptr
}

// header sits immediately before every live allocation's payload. size is
// the number of payload bytes usable at that address; marked is scratch
// space for the mark-and-sweep collector and is meaningless outside a
// collection cycle.
type header struct {
	size   uintptr
	marked bool
}

var (
	nodeSize   = unsafe.Sizeof(freeNode{})
	headerSize = unsafe.Sizeof(header{})
)

func init() {
	// The free path overlays a freeNode on top of what used to be a
	// header, and the split path does the reverse. Both assume the two
	// layouts occupy the same number of bytes.
	if nodeSize != headerSize {
		panic(fmt.Sprintf("heap: free-list node (%d bytes) and allocation header (%d bytes) must be the same size", nodeSize, headerSize))
	}
}

// Heap owns one contiguous, OS-mapped region and the address-ordered free
// list carved out of it. It is not safe for concurrent use; callers are
// assumed to be a single mutator thread (see package gc for why).
type Heap struct {
	mem        []byte
	regionSize uintptr
	base       uintptr
	tail       uintptr // sentinel address
	head       uintptr // address of the first free-list node
}

// Option configures a Heap at construction time.
type Option func(*config)

type config struct {
	regionSize uintptr
}

// WithRegionSize overrides the default 4096-byte region.
func WithRegionSize(n int) Option {
	return func(c *config) { c.regionSize = uintptr(n) }
}

// New maps a fresh region and initializes it as one free block terminated
// by a sentinel.
func New(opts ...Option) (*Heap, error) {
	cfg := config{regionSize: DefaultRegionSize}
	for _, o := range opts {
		o(&cfg)
	}

	h := &Heap{regionSize: cfg.regionSize}
	if err := h.mapRegion(); err != nil {
		return nil, err
	}
	return h, nil
}

func (h *Heap) mapRegion() error {
	mem, err := region.Map(int(h.regionSize + nodeSize))
	if err != nil {
		return fmt.Errorf("heap: %w", err)
	}

	h.mem = mem
	h.base = uintptr(unsafe.Pointer(&mem[0]))
	h.tail = h.base + h.regionSize
	h.head = h.base

	head := h.nodeAt(h.head)
	head.size = h.regionSize - nodeSize
	head.next = h.tail

	sentinel := h.nodeAt(h.tail)
	sentinel.size = 0
	sentinel.next = 0

	return nil
}

// Reset unmaps the current region and re-initializes a fresh one. It is
// the canonical way to wipe heap state between test cases, and is also
// what the mark-and-sweep collector calls after a sweep leaves nothing
// live (see package gc).
func (h *Heap) Reset() error {
	if h.mem != nil {
		if err := region.Unmap(h.mem); err != nil {
			return fmt.Errorf("heap: %w", err)
		}
		h.mem = nil
	}
	return h.mapRegion()
}

// Close releases the region's OS mapping. The heap must not be used
// afterward.
func (h *Heap) Close() error {
	if h.mem == nil {
		return nil
	}
	err := region.Unmap(h.mem)
	h.mem = nil
	if err != nil {
		return fmt.Errorf("heap: %w", err)
	}
	return nil
}

// nodeAt and headerAt overlay the free-list node and allocation header
// structs directly onto the mapped region; addr is always an absolute
// address inside h.mem, never a Go-managed pointer, so the region cannot
// be relocated out from under them.
func (h *Heap) nodeAt(addr uintptr) *freeNode {
	return (*freeNode)(unsafe.Pointer(addr))
}

func (h *Heap) headerAt(addr uintptr) *header {
	return (*header)(unsafe.Pointer(addr))
}

// contains reports whether addr is a legal user-visible address within
// the region, i.e. its header would fall inside [base, tail).
func (h *Heap) contains(addr uintptr) bool {
	if addr < headerSize {
		return false
	}
	headerAddr := addr - headerSize
	return headerAddr >= h.base && headerAddr < h.tail
}

// AvailableMemory returns the sum of all free blocks' usable payload
// capacity, not counting their node headers.
func (h *Heap) AvailableMemory() uintptr {
	var n uintptr
	for p := h.head; p != h.tail; {
		node := h.nodeAt(p)
		n += node.size
		p = node.next
	}
	return n
}
