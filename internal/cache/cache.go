package cache

import (
	"fmt"
	"sync"

	"go.uber.org/zap"
)

// Cache kinds for geo payloads.
const (
	KindLines    = "lines"
	KindStations = "stations"
)

// Key builds a cache key from a data kind and a city code, e.g. "lines_nj".
func Key(kind, cityCode string) string {
	return fmt.Sprintf("%s_%s", kind, cityCode)
}

// Cache is a process-wide store for precomputed geo payloads. Entries have
// no TTL and are only removed by Clear. Values are published under the
// write lock, so a reader never observes a partially built entry;
// concurrent misses on the same key may compute redundantly, which is
// harmless because the computation is a pure read.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]any
	log     *zap.SugaredLogger
}

// New creates an empty Cache.
func New(log *zap.SugaredLogger) *Cache {
	return &Cache{
		entries: make(map[string]any),
		log:     log,
	}
}

// Get returns the payload stored for key, if any.
func (c *Cache) Get(key string) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.entries[key]
	return v, ok
}

// Set stores a payload for key, replacing any previous entry.
func (c *Cache) Set(key string, value any) {
	c.mu.Lock()
	c.entries[key] = value
	c.mu.Unlock()
}

// Has reports whether key is present.
func (c *Cache) Has(key string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.entries[key]
	return ok
}

// GetOrCompute returns the cached payload for key, computing and storing
// it on a miss. The compute function runs outside the lock.
func (c *Cache) GetOrCompute(key string, compute func() (any, error)) (any, error) {
	if v, ok := c.Get(key); ok {
		c.log.Infow("cache hit", "key", key)
		return v, nil
	}

	v, err := compute()
	if err != nil {
		return nil, err
	}

	c.Set(key, v)
	c.log.Infow("cache store", "key", key)
	return v, nil
}

// Clear removes all entries.
func (c *Cache) Clear() {
	c.mu.Lock()
	c.entries = make(map[string]any)
	c.mu.Unlock()
	c.log.Info("cache cleared")
}

// Len returns the number of cached entries.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
