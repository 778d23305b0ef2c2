package gc

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joerp78/mark-and-sweep-project/heap"
)

const initialAvailable = heap.DefaultRegionSize - 16 // sizeof(node) == sizeof(header) == 16 on amd64/arm64

func newTestCollector(t *testing.T) *Collector {
	t.Helper()
	h, err := heap.New()
	require.NoError(t, err)
	c := New(h)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestAllocateSeedsRootAndRefcount(t *testing.T) {
	c := newTestCollector(t)
	p, err := c.Allocate(64)
	require.NoError(t, err)

	require.True(t, c.IsLive(p))
	require.Equal(t, 1, c.Refcount(p))
	require.EqualValues(t, initialAvailable-(64+16), c.AvailableMemory())

	// The seeded root keeps p reachable under mark-and-sweep.
	require.Empty(t, c.CollectMS())
	require.True(t, c.IsLive(p))
}

func TestReferenceCountingCannotCollectCycles(t *testing.T) {
	c := newTestCollector(t)
	p1, err := c.Allocate(100)
	require.NoError(t, err)
	p2, err := c.Allocate(100)
	require.NoError(t, err)

	require.NoError(t, c.AddNestedReference(p1, p2))
	require.NoError(t, c.AddNestedReference(p2, p1))

	wantAvailable := uintptr(initialAvailable - 2*(100+16))
	require.Equal(t, wantAvailable, c.AvailableMemory())

	c.DeleteRoot(p1)
	c.DeleteRoot(p2)

	reclaimed := c.CollectRC()
	require.Empty(t, reclaimed)
	require.Equal(t, wantAvailable, c.AvailableMemory())
	require.True(t, c.IsLive(p1))
	require.True(t, c.IsLive(p2))
}

func TestMarkAndSweepCollectsCycles(t *testing.T) {
	c := newTestCollector(t)
	p1, err := c.Allocate(100)
	require.NoError(t, err)
	p2, err := c.Allocate(100)
	require.NoError(t, err)

	require.NoError(t, c.AddNestedReference(p1, p2))
	require.NoError(t, c.AddNestedReference(p2, p1))

	c.DeleteRoot(p1)
	c.DeleteRoot(p2)

	reclaimed := c.CollectMS()
	require.ElementsMatch(t, []uintptr{p1, p2}, reclaimed)
	require.EqualValues(t, initialAvailable, c.AvailableMemory())
	require.False(t, c.IsLive(p1))
	require.False(t, c.IsLive(p2))
}

func TestFillAndDropWithNoCyclesFullyReclaimsUnderRC(t *testing.T) {
	c := newTestCollector(t)
	var ptrs []uintptr
	for {
		p, err := c.Allocate(32)
		if err != nil {
			require.ErrorIs(t, err, heap.ErrOutOfMemory)
			break
		}
		ptrs = append(ptrs, p)
	}
	require.NotEmpty(t, ptrs)

	for _, p := range ptrs {
		c.DeleteRoot(p)
	}

	reclaimed := c.CollectRC()
	require.Len(t, reclaimed, len(ptrs))
	require.EqualValues(t, initialAvailable, c.AvailableMemory())
}

func TestFillChainedThenMarkAndSweepReclaimsEverything(t *testing.T) {
	c := newTestCollector(t)
	var ptrs []uintptr
	for {
		p, err := c.Allocate(32)
		if err != nil {
			require.ErrorIs(t, err, heap.ErrOutOfMemory)
			break
		}
		ptrs = append(ptrs, p)
	}
	require.NotEmpty(t, ptrs)

	for i := 0; i < len(ptrs)-1; i++ {
		require.NoError(t, c.AddNestedReference(ptrs[i], ptrs[i+1]))
	}
	for _, p := range ptrs {
		c.DeleteRoot(p)
	}

	reclaimed := c.CollectMS()
	require.Len(t, reclaimed, len(ptrs))
	require.EqualValues(t, initialAvailable, c.AvailableMemory())
}

func TestNestedReferenceTooSmallLeavesRefcountUnchanged(t *testing.T) {
	c := newTestCollector(t)
	src, err := c.Allocate(4)
	require.NoError(t, err)
	dst, err := c.Allocate(4)
	require.NoError(t, err)

	err = c.AddNestedReference(src, dst)
	require.ErrorIs(t, err, ErrNestedTooSmall)
	require.Equal(t, 1, c.Refcount(dst))
}

func TestDeleteRootOnUnknownAddressIsNoOp(t *testing.T) {
	c := newTestCollector(t)
	before := c.AvailableMemory()

	c.DeleteRoot(0xdeadbeef)

	require.Equal(t, before, c.AvailableMemory())
}

func TestReclaimListLengthMatchesDestroyedCount(t *testing.T) {
	c := newTestCollector(t)
	p1, err := c.Allocate(50)
	require.NoError(t, err)
	p2, err := c.Allocate(50)
	require.NoError(t, err)

	c.DeleteRoot(p1)
	c.DeleteRoot(p2)

	reclaimed := c.CollectRC()
	require.Len(t, reclaimed, 2)
	for _, p := range reclaimed {
		require.Contains(t, []uintptr{p1, p2}, p)
	}
}

func TestRefcountNeverGoesNegative(t *testing.T) {
	c := newTestCollector(t)
	p, err := c.Allocate(16)
	require.NoError(t, err)

	c.DeleteRoot(p)
	c.DeleteRoot(p) // second delete on a non-root is a no-op
	require.GreaterOrEqual(t, c.Refcount(p), 0)
}

func TestRootMultiplicityKeepsBlockLiveUntilFullyDereferenced(t *testing.T) {
	c := newTestCollector(t)
	p, err := c.Allocate(16)
	require.NoError(t, err)

	c.AddRoot(p) // multiplicity now 2
	c.DeleteRoot(p)

	reclaimed := c.CollectMS()
	require.Empty(t, reclaimed)
	require.True(t, c.IsLive(p))
}
