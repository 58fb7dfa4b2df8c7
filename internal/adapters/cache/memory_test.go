package cache

import (
	"context"
	"testing"

	"github.com/learngermanghana/sedifex-stores/internal/domain"
)

func TestMemoryGeocodeCacheRoundTrip(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryGeocodeCache()

	if _, ok := c.Get(ctx, "12 Oxford Street, Accra, Ghana"); ok {
		t.Fatal("cold cache should miss")
	}

	coords := domain.Coordinates{Lat: 5.56, Lon: -0.2}
	c.Put(ctx, "12 Oxford Street, Accra, Ghana", coords)

	got, ok := c.Get(ctx, "12 Oxford Street, Accra, Ghana")
	if !ok || got != coords {
		t.Fatalf("get = (%v, %v), want (%v, true)", got, ok, coords)
	}
	if c.Len() != 1 {
		t.Fatalf("len = %d, want 1", c.Len())
	}
}

func TestMemoryGeocodeCacheIgnoresBlankKeys(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryGeocodeCache()

	c.Put(ctx, "   ", domain.Coordinates{Lat: 1, Lon: 1})

	if c.Len() != 0 {
		t.Fatalf("len = %d, blank keys must not be stored", c.Len())
	}
}

func TestLayeredGeocodeCachePromotesHits(t *testing.T) {
	ctx := context.Background()
	fast := NewMemoryGeocodeCache()
	slow := NewMemoryGeocodeCache()
	layered := NewLayeredGeocodeCache(fast, slow)

	coords := domain.Coordinates{Lat: 6.69, Lon: -1.62}
	slow.Put(ctx, "Kumasi, Ghana", coords)

	got, ok := layered.Get(ctx, "Kumasi, Ghana")
	if !ok || got != coords {
		t.Fatalf("layered get = (%v, %v), want (%v, true)", got, ok, coords)
	}

	// The hit in the slow tier is promoted into the fast tier.
	if _, ok := fast.Get(ctx, "Kumasi, Ghana"); !ok {
		t.Fatal("expected promotion into the first tier")
	}
}

func TestLayeredGeocodeCacheWritesThrough(t *testing.T) {
	ctx := context.Background()
	fast := NewMemoryGeocodeCache()
	slow := NewMemoryGeocodeCache()
	layered := NewLayeredGeocodeCache(fast, slow)

	coords := domain.Coordinates{Lat: 9.4, Lon: -0.84}
	layered.Put(ctx, "Tamale, Ghana", coords)

	for name, tier := range map[string]*MemoryGeocodeCache{"fast": fast, "slow": slow} {
		if _, ok := tier.Get(ctx, "Tamale, Ghana"); !ok {
			t.Fatalf("%s tier missing entry after write-through", name)
		}
	}
}
