package devidx

import (
	"encoding/binary"
	"sync/atomic"

	"github.com/cespare/xxhash/v2"
	"github.com/elastic/go-freelru"
)

const (
	// DefaultFindCacheSize is the find cache capacity New uses unless
	// WithFindCache overrides it.
	DefaultFindCacheSize = 1024

	// MinFindCacheSize is the smallest capacity the cache runs with;
	// enabled caches configured below it are raised to it.
	MinFindCacheSize = 16
)

// findCache remembers recent Find results so hot IDs skip the tree descent.
// Add invalidates the touched ID, so a cached record never outlives its
// replacement.
type findCache struct {
	lru *freelru.LRU[uint64, Device]

	hits          atomic.Uint64
	misses        atomic.Uint64
	invalidations atomic.Uint64
}

// hashID spreads device IDs across the lru's buckets.
func hashID(id uint64) uint32 {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], id)
	return uint32(xxhash.Sum64(b[:]))
}

func newFindCache(size int) (*findCache, error) {
	size = max(size, MinFindCacheSize)

	lru, err := freelru.New[uint64, Device](uint32(size), hashID)
	if err != nil {
		return nil, err
	}
	return &findCache{lru: lru}, nil
}

func (c *findCache) get(id uint64) (Device, bool) {
	d, ok := c.lru.Get(id)
	if ok {
		c.hits.Add(1)
	} else {
		c.misses.Add(1)
	}
	return d, ok
}

func (c *findCache) put(id uint64, d Device) {
	c.lru.Add(id, d)
}

func (c *findCache) invalidate(id uint64) {
	if c.lru.Remove(id) {
		c.invalidations.Add(1)
	}
}

// CacheStats are the find cache counters.
type CacheStats struct {
	Hits          uint64
	Misses        uint64
	Invalidations uint64
}

func (c *findCache) stats() CacheStats {
	return CacheStats{
		Hits:          c.hits.Load(),
		Misses:        c.misses.Load(),
		Invalidations: c.invalidations.Load(),
	}
}
