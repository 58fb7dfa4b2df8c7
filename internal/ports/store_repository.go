package ports

import (
	"context"
	"time"

	"github.com/learngermanghana/sedifex-stores/internal/domain"
)

// Port: a boundary for reading Store records and writing back resolved
// coordinates.
type StoreRepository interface {
	// Retrieve all stores in the directory.
	ListStores(ctx context.Context) ([]*domain.Store, error)
	// Persist resolved coordinates onto a single store record. Callers
	// treat failure as non-fatal: the resolved coordinates remain usable
	// for the current render pass.
	SaveCoordinates(ctx context.Context, storeID string, coords domain.Coordinates, resolvedAt time.Time) error
}
