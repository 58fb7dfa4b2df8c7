package services

import (
	"context"
	"log"
	"time"

	"github.com/learngermanghana/sedifex-stores/internal/domain"
	"github.com/learngermanghana/sedifex-stores/internal/platform/obs"
	"github.com/learngermanghana/sedifex-stores/internal/ports"
)

// Resolver turns store addresses into coordinates through a two-tier cache:
// the injected GeocodeCache (process memory, optionally backed by a shared
// tier) and the coordinates persisted on the store record itself. The
// external geocoder is only consulted when both tiers miss, which bounds
// lookups to at most one per distinct address per process lifetime, and at
// most one ever once the write-back lands.
type Resolver struct {
	cache    ports.GeocodeCache
	repo     ports.StoreRepository
	geocoder ports.Geocoder
	now      func() time.Time
}

func NewResolver(cache ports.GeocodeCache, repo ports.StoreRepository, geocoder ports.Geocoder) *Resolver {
	return &Resolver{
		cache:    cache,
		repo:     repo,
		geocoder: geocoder,
		now:      time.Now,
	}
}

// Resolve returns coordinates for a single store and annotates the record
// in memory. It returns nil when the store has no address or the lookup
// fails; a nil result is not an error, the store simply stays off the map
// layer. Failures are never cached, so a later call for the same address
// attempts the lookup again.
func (r *Resolver) Resolve(ctx context.Context, store *domain.Store) *domain.Coordinates {
	address := store.Address()
	if address == "" {
		return nil
	}

	if coords, ok := r.cache.Get(ctx, address); ok {
		store.Coordinates = &coords
		return &coords
	}

	// Previously persisted coordinates are authoritative: skip the external
	// lookup entirely and warm the cache for the rest of the batch.
	if store.HasCoordinates() {
		coords := *store.Coordinates
		r.cache.Put(ctx, address, coords)
		return &coords
	}

	coords, err := r.geocoder.Geocode(ctx, address)
	if err != nil {
		log.Printf("geocode lookup failed: store_id=%s err=%v", store.StoreID, err)
		return nil
	}

	r.cache.Put(ctx, address, coords)

	resolvedAt := r.now()
	store.Coordinates = &coords
	store.ResolvedAt = &resolvedAt

	// Write-back is best effort: the current caller keeps the coordinates
	// either way, and the next process lifetime retries the persist.
	if err := r.repo.SaveCoordinates(ctx, store.StoreID, coords, resolvedAt); err != nil {
		log.Printf("coordinate write-back failed: store_id=%s err=%v", store.StoreID, err)
	}

	return &coords
}

// ResolveAll annotates a batch of stores with coordinates, strictly one
// store at a time: a resolution completes, including any write-back, before
// the next begins. Sequential processing keeps the cache consistent without
// locking and avoids bursts against the rate-limited geocoder. If this is
// ever parallelized it must first deduplicate by normalized address and fan
// results out to the owning stores, or the at-most-one-lookup-per-address
// guarantee breaks.
func (r *Resolver) ResolveAll(ctx context.Context, stores []*domain.Store) {
	defer obs.Time(ctx, "resolver.ResolveAll")(nil)

	for _, store := range stores {
		r.Resolve(ctx, store)
	}
}
