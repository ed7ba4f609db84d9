package perftcache

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetMissOnEmptyCache(t *testing.T) {
	c, err := Open(t.TempDir())
	require.NoError(t, err)
	defer c.Close()

	_, ok := c.Get(0xdeadbeef, 3)
	require.False(t, ok)
}

func TestPutThenGetRoundTrips(t *testing.T) {
	c, err := Open(t.TempDir())
	require.NoError(t, err)
	defer c.Close()

	require.NoError(t, c.Put(0x1234, 5, 4865609))

	nodes, ok := c.Get(0x1234, 5)
	require.True(t, ok)
	require.Equal(t, uint64(4865609), nodes)
}

func TestSameHashDifferentDepthDistinctEntries(t *testing.T) {
	c, err := Open(t.TempDir())
	require.NoError(t, err)
	defer c.Close()

	require.NoError(t, c.Put(0x1234, 1, 20))
	require.NoError(t, c.Put(0x1234, 2, 400))

	n1, ok := c.Get(0x1234, 1)
	require.True(t, ok)
	require.Equal(t, uint64(20), n1)

	n2, ok := c.Get(0x1234, 2)
	require.True(t, ok)
	require.Equal(t, uint64(400), n2)
}

func TestPutOverwrites(t *testing.T) {
	c, err := Open(t.TempDir())
	require.NoError(t, err)
	defer c.Close()

	require.NoError(t, c.Put(0x1, 1, 1))
	require.NoError(t, c.Put(0x1, 1, 2))

	nodes, ok := c.Get(0x1, 1)
	require.True(t, ok)
	require.Equal(t, uint64(2), nodes)
}
