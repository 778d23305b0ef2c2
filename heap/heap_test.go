package heap

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestHeap(t *testing.T) *Heap {
	t.Helper()
	h, err := New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = h.Close() })
	return h
}

const initialAvailable = DefaultRegionSize - 16 // sizeof(node) == sizeof(header) == 16 on amd64/arm64

func TestFreshRegionIsOneFreeBlock(t *testing.T) {
	h := newTestHeap(t)
	require.EqualValues(t, initialAvailable, h.AvailableMemory())
	require.Equal(t, "Free(4080)->\n", h.PrintFreeList())
}

func TestAllocateFreeRoundTrip(t *testing.T) {
	h := newTestHeap(t)
	p, err := h.Allocate(100)
	require.NoError(t, err)
	require.NotZero(t, p)

	require.NoError(t, h.Free(p))
	require.EqualValues(t, initialAvailable, h.AvailableMemory())
	require.Equal(t, "Free(4080)->\n", h.PrintFreeList())
}

func TestTwoAdjacentAllocationsCoalesceEitherOrder(t *testing.T) {
	for _, order := range [][2]int{{0, 1}, {1, 0}} {
		h := newTestHeap(t)
		p := make([]uintptr, 2)
		var err error
		p[0], err = h.Allocate(128)
		require.NoError(t, err)
		p[1], err = h.Allocate(128)
		require.NoError(t, err)

		require.NoError(t, h.Free(p[order[0]]))
		require.NoError(t, h.Free(p[order[1]]))

		require.EqualValues(t, initialAvailable, h.AvailableMemory())
		require.Equal(t, "Free(4080)->\n", h.PrintFreeList())
	}
}

func TestAllocationFailsWhenNoBlockFits(t *testing.T) {
	h := newTestHeap(t)
	_, err := h.Allocate(initialAvailable + 1)
	require.ErrorIs(t, err, ErrOutOfMemory)
}

func TestFillUntilFailureThenFreeAllReturnsToInitial(t *testing.T) {
	h := newTestHeap(t)
	var ptrs []uintptr
	for {
		p, err := h.Allocate(32)
		if err != nil {
			require.ErrorIs(t, err, ErrOutOfMemory)
			break
		}
		ptrs = append(ptrs, p)
	}
	require.NotEmpty(t, ptrs)

	for _, p := range ptrs {
		require.NoError(t, h.Free(p))
	}
	require.EqualValues(t, initialAvailable, h.AvailableMemory())
	require.Equal(t, "Free(4080)->\n", h.PrintFreeList())
}

func TestFreeingTheEntireRegionInOneAllocationRestoresTheSentinel(t *testing.T) {
	h := newTestHeap(t)
	p, err := h.Allocate(initialAvailable)
	require.NoError(t, err)

	require.NoError(t, h.Free(p))
	require.EqualValues(t, initialAvailable, h.AvailableMemory())
	require.Equal(t, "Free(4080)->\n", h.PrintFreeList())
}

func TestSplitRefusesATooSmallRemainder(t *testing.T) {
	h := newTestHeap(t)
	// A request that leaves fewer than headerSize bytes over consumes
	// the whole block instead of carving a corrupt remainder.
	p, err := h.Allocate(initialAvailable - 1)
	require.NoError(t, err)
	require.EqualValues(t, initialAvailable, h.PayloadSize(p))
	require.Zero(t, h.AvailableMemory())
}

func TestResetWipesState(t *testing.T) {
	h := newTestHeap(t)
	_, err := h.Allocate(200)
	require.NoError(t, err)
	require.Less(t, h.AvailableMemory(), uintptr(initialAvailable))

	require.NoError(t, h.Reset())
	require.EqualValues(t, initialAvailable, h.AvailableMemory())
}

func TestFreeRejectsPointerOutsideRegion(t *testing.T) {
	h := newTestHeap(t)
	err := h.Free(h.tail + 1000)
	require.ErrorIs(t, err, ErrInvalidPointer)
}
