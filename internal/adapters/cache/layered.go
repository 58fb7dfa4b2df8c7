package cache

import (
	"context"

	"github.com/learngermanghana/sedifex-stores/internal/domain"
	"github.com/learngermanghana/sedifex-stores/internal/ports"
)

// LayeredGeocodeCache chains cache tiers, fastest first. Get checks tiers
// in order and promotes a late hit into every earlier tier; Put writes
// through all tiers.
type LayeredGeocodeCache struct {
	tiers []ports.GeocodeCache
}

func NewLayeredGeocodeCache(tiers ...ports.GeocodeCache) *LayeredGeocodeCache {
	return &LayeredGeocodeCache{tiers: tiers}
}

func (c *LayeredGeocodeCache) Get(ctx context.Context, address string) (domain.Coordinates, bool) {
	for i, tier := range c.tiers {
		coords, ok := tier.Get(ctx, address)
		if !ok {
			continue
		}

		for j := 0; j < i; j++ {
			c.tiers[j].Put(ctx, address, coords)
		}

		return coords, true
	}

	return domain.Coordinates{}, false
}

func (c *LayeredGeocodeCache) Put(ctx context.Context, address string, coords domain.Coordinates) {
	for _, tier := range c.tiers {
		tier.Put(ctx, address, coords)
	}
}
