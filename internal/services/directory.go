package services

import (
	"sort"
	"strings"

	"github.com/learngermanghana/sedifex-stores/internal/domain"
)

// DirectoryQuery carries the listing filters requested by a visitor.
type DirectoryQuery struct {
	// Case-insensitive substring matched against name, display name, city
	// and country. Empty matches everything.
	Search string
	// "name" (default) or "city".
	Sort   string
	Offset int
	// Limit <= 0 means no limit.
	Limit int
}

// QueryDirectory filters, sorts and paginates the in-memory store list.
// Sorting is stable with a store-id tie-break so repeated queries page
// through a deterministic order.
func QueryDirectory(stores []*domain.Store, q DirectoryQuery) []*domain.Store {
	needle := strings.ToLower(strings.TrimSpace(q.Search))

	out := make([]*domain.Store, 0, len(stores))
	for _, s := range stores {
		if needle == "" || matchesSearch(s, needle) {
			out = append(out, s)
		}
	}

	key := func(s *domain.Store) string { return strings.ToLower(s.Name) }
	if q.Sort == "city" {
		key = func(s *domain.Store) string { return strings.ToLower(s.City) }
	}
	sort.SliceStable(out, func(i, j int) bool {
		a, b := key(out[i]), key(out[j])
		if a == b {
			return out[i].StoreID < out[j].StoreID
		}
		return a < b
	})

	offset := q.Offset
	if offset < 0 {
		offset = 0
	}
	if offset > len(out) {
		offset = len(out)
	}

	end := len(out)
	if q.Limit > 0 && offset+q.Limit < end {
		end = offset + q.Limit
	}

	return out[offset:end]
}

func matchesSearch(s *domain.Store, needle string) bool {
	for _, f := range []string{s.Name, s.DisplayName, s.City, s.Country} {
		if strings.Contains(strings.ToLower(f), needle) {
			return true
		}
	}
	return false
}
