package cache

import (
	"context"
	"strings"
	"sync"

	"github.com/learngermanghana/sedifex-stores/internal/domain"
)

// MemoryGeocodeCache is the process-memory tier of the geocode cache.
// Entries are never evicted: the cache lives exactly as long as the process
// and address cardinality stays small relative to that lifetime. It is
// injected into the resolver rather than held as package state, so tests
// start from a cold cache.
type MemoryGeocodeCache struct {
	mu      sync.RWMutex
	entries map[string]domain.Coordinates
}

func NewMemoryGeocodeCache() *MemoryGeocodeCache {
	return &MemoryGeocodeCache{entries: make(map[string]domain.Coordinates)}
}

func (c *MemoryGeocodeCache) Get(_ context.Context, address string) (domain.Coordinates, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	coords, ok := c.entries[address]
	return coords, ok
}

func (c *MemoryGeocodeCache) Put(_ context.Context, address string, coords domain.Coordinates) {
	if strings.TrimSpace(address) == "" {
		return
	}

	c.mu.Lock()
	c.entries[address] = coords
	c.mu.Unlock()
}

// Len reports the number of cached addresses.
func (c *MemoryGeocodeCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.entries)
}
