package ports

import (
	"context"

	"github.com/learngermanghana/sedifex-stores/internal/domain"
)

// Port: an address -> coordinates cache sitting in front of the external
// geocoder. Entries live for the cache's own lifetime; the resolver never
// evicts or invalidates them, and failed lookups are never stored.
type GeocodeCache interface {
	// Return the cached coordinates for an address, if present.
	Get(ctx context.Context, address string) (domain.Coordinates, bool)
	// Store coordinates for an address. Best effort: implementations log
	// and drop entries they cannot store.
	Put(ctx context.Context, address string, coords domain.Coordinates)
}
