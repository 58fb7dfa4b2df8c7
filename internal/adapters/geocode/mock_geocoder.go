package geocode

import (
	"context"
	"fmt"

	"github.com/learngermanghana/sedifex-stores/internal/domain"
)

// MockGeocoder serves canned results from memory and records every lookup,
// so tests can assert how often the external service would have been hit.
type MockGeocoder struct {
	Results map[string]domain.Coordinates
	Err     error
	Calls   []string
}

func NewMockGeocoder(results map[string]domain.Coordinates) *MockGeocoder {
	return &MockGeocoder{Results: results}
}

func (m *MockGeocoder) Geocode(ctx context.Context, address string) (domain.Coordinates, error) {
	m.Calls = append(m.Calls, address)

	if m.Err != nil {
		return domain.Coordinates{}, m.Err
	}

	coords, ok := m.Results[address]
	if !ok {
		return domain.Coordinates{}, fmt.Errorf("no geocode result for %q", address)
	}

	return coords, nil
}
