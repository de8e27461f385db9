package devidx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindCacheHitsAndMisses(t *testing.T) {
	t.Parallel()

	ix, err := New(3)
	require.NoError(t, err)
	for _, id := range []uint64{10, 20, 30} {
		ix.Add(newTestDevice(id))
	}

	// Cold lookup descends the tree and fills the cache.
	d, ok := ix.Find(10)
	require.True(t, ok)
	assert.Equal(t, newTestDevice(10), d)
	assert.Equal(t, CacheStats{Misses: 1}, ix.CacheStats())

	// Warm lookup is served from the cache.
	d, ok = ix.Find(10)
	require.True(t, ok)
	assert.Equal(t, newTestDevice(10), d)
	assert.Equal(t, CacheStats{Hits: 1, Misses: 1}, ix.CacheStats())
}

func TestFindCacheNegativeLookupsNotCached(t *testing.T) {
	t.Parallel()

	ix, err := New(3)
	require.NoError(t, err)
	ix.Add(newTestDevice(1))

	for i := 0; i < 3; i++ {
		_, ok := ix.Find(999)
		assert.False(t, ok)
	}

	stats := ix.CacheStats()
	assert.Equal(t, uint64(0), stats.Hits)
	assert.Equal(t, uint64(3), stats.Misses, "absent ids must miss every time")
}

func TestFindCacheInvalidationOnUpsert(t *testing.T) {
	t.Parallel()

	ix, err := New(3)
	require.NoError(t, err)
	for _, id := range []uint64{10, 20, 30, 40, 50} {
		ix.Add(newTestDevice(id))
	}

	// Warm the cache for 30, then replace the record.
	_, ok := ix.Find(30)
	require.True(t, ok)
	_, ok = ix.Find(30)
	require.True(t, ok)
	require.Equal(t, uint64(1), ix.CacheStats().Hits)

	ix.Add(Device{ID: 30, Addr: "10.9.9.9", Path: "/moved"})
	assert.Equal(t, uint64(1), ix.CacheStats().Invalidations)

	d, ok := ix.Find(30)
	require.True(t, ok)
	assert.Equal(t, "10.9.9.9", d.Addr, "a stale record must not survive its replacement")

	// Inserting ids nobody looked up touches nothing in the cache.
	ix.Add(newTestDevice(60))
	assert.Equal(t, uint64(1), ix.CacheStats().Invalidations)
}

func TestFindCacheClampsSize(t *testing.T) {
	t.Parallel()

	c, err := newFindCache(1)
	require.NoError(t, err)

	// A clamped cache holds MinFindCacheSize entries, not one.
	for id := uint64(0); id < MinFindCacheSize; id++ {
		c.put(id, newTestDevice(id))
	}
	for id := uint64(0); id < MinFindCacheSize; id++ {
		d, ok := c.get(id)
		require.True(t, ok, "id %d evicted below the minimum capacity", id)
		assert.Equal(t, id, d.ID)
	}
}

func TestFindCacheEvicts(t *testing.T) {
	t.Parallel()

	c, err := newFindCache(MinFindCacheSize)
	require.NoError(t, err)

	for id := uint64(0); id < 4*MinFindCacheSize; id++ {
		c.put(id, newTestDevice(id))
	}
	assert.LessOrEqual(t, c.lru.Len(), MinFindCacheSize)

	// The most recent insert is still resident.
	_, ok := c.get(4*MinFindCacheSize - 1)
	assert.True(t, ok)
}
