package ports

import (
	"context"

	"github.com/learngermanghana/sedifex-stores/internal/domain"
)

// Contract for resolving a free-text address into coordinates via an
// external geocoding service.
type Geocoder interface {
	// Return coordinates for the given address. One external lookup per
	// call; the implementation does not cache or retry.
	Geocode(ctx context.Context, address string) (domain.Coordinates, error)
}
