package domain

import (
	"strings"
	"time"
)

// Store represents a single storefront listed in the public directory.
// Records are owned by the backing store; the core reads them and writes
// back resolved coordinates only.
type Store struct {
	StoreID     string
	Name        string
	DisplayName string
	Phone       string
	Email       string
	Description string

	AddressLine1 string
	City         string
	Region       string
	Country      string

	// Coordinates persisted by a previous resolution, if any.
	Coordinates *Coordinates
	ResolvedAt  *time.Time
}

// Address builds the canonical geocoding key for the store: the non-blank
// structured address fields, in fixed order, joined by ", ". Two stores
// with identical non-blank fields produce identical keys. Returns "" when
// every field is blank.
func (s *Store) Address() string {
	fields := []string{s.AddressLine1, s.City, s.Region, s.Country}

	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		parts = append(parts, f)
	}

	return strings.Join(parts, ", ")
}

// HasCoordinates reports whether the record carries previously persisted,
// valid coordinates.
func (s *Store) HasCoordinates() bool {
	return s.Coordinates != nil && s.Coordinates.Valid()
}
