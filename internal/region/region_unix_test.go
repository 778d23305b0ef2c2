//go:build unix

package region

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMapReturnsZeroedReadWriteMemory(t *testing.T) {
	b, err := Map(4096)
	require.NoError(t, err)
	defer Unmap(b)

	require.Len(t, b, 4096)
	for _, c := range b {
		require.Zero(t, c)
	}

	b[0] = 0xAB
	b[4095] = 0xCD
	require.Equal(t, byte(0xAB), b[0])
	require.Equal(t, byte(0xCD), b[4095])
}

func TestUnmapThenRemapIsIndependent(t *testing.T) {
	b, err := Map(64)
	require.NoError(t, err)
	b[0] = 0xFF
	require.NoError(t, Unmap(b))

	b2, err := Map(64)
	require.NoError(t, err)
	defer Unmap(b2)
	require.Zero(t, b2[0])
}
