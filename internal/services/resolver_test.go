package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/learngermanghana/sedifex-stores/internal/adapters/cache"
	"github.com/learngermanghana/sedifex-stores/internal/adapters/geocode"
	"github.com/learngermanghana/sedifex-stores/internal/domain"
)

type stubStoreRepo struct {
	stores  []*domain.Store
	saved   map[string]domain.Coordinates
	saveErr error
}

func newStubStoreRepo() *stubStoreRepo {
	return &stubStoreRepo{saved: make(map[string]domain.Coordinates)}
}

func (s *stubStoreRepo) ListStores(ctx context.Context) ([]*domain.Store, error) {
	return s.stores, nil
}

func (s *stubStoreRepo) SaveCoordinates(ctx context.Context, storeID string, coords domain.Coordinates, resolvedAt time.Time) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.saved[storeID] = coords
	return nil
}

func accraStore(id string) *domain.Store {
	return &domain.Store{
		StoreID:      id,
		Name:         "Store " + id,
		AddressLine1: "12 Oxford Street",
		City:         "Accra",
		Country:      "Ghana",
	}
}

func TestResolveUsesCacheOnSecondCall(t *testing.T) {
	store := accraStore("s1")
	coords := domain.Coordinates{Lat: 5.56, Lon: -0.2}

	geocoder := geocode.NewMockGeocoder(map[string]domain.Coordinates{
		store.Address(): coords,
	})
	repo := newStubStoreRepo()
	resolver := NewResolver(cache.NewMemoryGeocodeCache(), repo, geocoder)

	first := resolver.Resolve(context.Background(), store)
	if first == nil || *first != coords {
		t.Fatalf("first resolve = %v, want %v", first, coords)
	}

	// Second resolve for the same address must be a pure cache hit.
	fresh := accraStore("s2")
	second := resolver.Resolve(context.Background(), fresh)
	if second == nil || *second != coords {
		t.Fatalf("second resolve = %v, want %v", second, coords)
	}

	if len(geocoder.Calls) != 1 {
		t.Fatalf("external lookups = %d, want 1", len(geocoder.Calls))
	}
}

func TestResolveSkipsLookupForPersistedCoordinates(t *testing.T) {
	store := accraStore("s1")
	persisted := domain.Coordinates{Lat: 5.56, Lon: -0.2}
	store.Coordinates = &persisted

	geocoder := geocode.NewMockGeocoder(nil)
	resolver := NewResolver(cache.NewMemoryGeocodeCache(), newStubStoreRepo(), geocoder)

	got := resolver.Resolve(context.Background(), store)
	if got == nil || *got != persisted {
		t.Fatalf("resolve = %v, want persisted %v", got, persisted)
	}
	if len(geocoder.Calls) != 0 {
		t.Fatalf("external lookups = %d, want 0", len(geocoder.Calls))
	}
}

func TestResolveBlankAddress(t *testing.T) {
	store := &domain.Store{StoreID: "s1", Name: "No address"}

	geocoder := geocode.NewMockGeocoder(nil)
	resolver := NewResolver(cache.NewMemoryGeocodeCache(), newStubStoreRepo(), geocoder)

	if got := resolver.Resolve(context.Background(), store); got != nil {
		t.Fatalf("resolve = %v, want nil for blank address", got)
	}
	if len(geocoder.Calls) != 0 {
		t.Fatalf("external lookups = %d, want 0", len(geocoder.Calls))
	}
}

func TestResolveFailureIsNotCached(t *testing.T) {
	store := accraStore("s1")

	geocoder := geocode.NewMockGeocoder(nil)
	geocoder.Err = errors.New("service unavailable")
	memCache := cache.NewMemoryGeocodeCache()
	resolver := NewResolver(memCache, newStubStoreRepo(), geocoder)

	if got := resolver.Resolve(context.Background(), store); got != nil {
		t.Fatalf("resolve = %v, want nil on lookup failure", got)
	}
	if memCache.Len() != 0 {
		t.Fatalf("cache size = %d, failures must not be cached", memCache.Len())
	}

	// A later call retries the lookup and can succeed.
	geocoder.Err = nil
	geocoder.Results = map[string]domain.Coordinates{
		store.Address(): {Lat: 5.56, Lon: -0.2},
	}

	if got := resolver.Resolve(context.Background(), store); got == nil {
		t.Fatal("retry after failure should resolve")
	}
	if len(geocoder.Calls) != 2 {
		t.Fatalf("external lookups = %d, want 2", len(geocoder.Calls))
	}
}

func TestResolvePersistsCoordinates(t *testing.T) {
	store := accraStore("s1")
	coords := domain.Coordinates{Lat: 5.56, Lon: -0.2}

	geocoder := geocode.NewMockGeocoder(map[string]domain.Coordinates{
		store.Address(): coords,
	})
	repo := newStubStoreRepo()
	resolver := NewResolver(cache.NewMemoryGeocodeCache(), repo, geocoder)

	resolvedAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	resolver.now = func() time.Time { return resolvedAt }

	if got := resolver.Resolve(context.Background(), store); got == nil {
		t.Fatal("resolve should succeed")
	}

	if saved, ok := repo.saved["s1"]; !ok || saved != coords {
		t.Fatalf("persisted = %v, want %v", repo.saved, coords)
	}
	if store.ResolvedAt == nil || !store.ResolvedAt.Equal(resolvedAt) {
		t.Fatalf("ResolvedAt = %v, want %v", store.ResolvedAt, resolvedAt)
	}
}

func TestResolveAllContinuesPastWriteBackFailure(t *testing.T) {
	s1 := accraStore("s1")
	s2 := &domain.Store{
		StoreID:      "s2",
		Name:         "Store s2",
		AddressLine1: "1 High Street",
		City:         "Kumasi",
		Country:      "Ghana",
	}

	geocoder := geocode.NewMockGeocoder(map[string]domain.Coordinates{
		s1.Address(): {Lat: 5.56, Lon: -0.2},
		s2.Address(): {Lat: 6.69, Lon: -1.62},
	})
	repo := newStubStoreRepo()
	repo.saveErr = errors.New("write refused")
	resolver := NewResolver(cache.NewMemoryGeocodeCache(), repo, geocoder)

	resolver.ResolveAll(context.Background(), []*domain.Store{s1, s2})

	// Write-back failed, but both stores still carry coordinates for the
	// current render pass.
	if !s1.HasCoordinates() || !s2.HasCoordinates() {
		t.Fatalf("stores should be annotated despite persistence failure: %v %v",
			s1.Coordinates, s2.Coordinates)
	}
	if len(geocoder.Calls) != 2 {
		t.Fatalf("external lookups = %d, want 2", len(geocoder.Calls))
	}
}
