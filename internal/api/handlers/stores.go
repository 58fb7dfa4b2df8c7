package handlers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/learngermanghana/sedifex-stores/internal/api/dto"
	"github.com/learngermanghana/sedifex-stores/internal/domain"
	"github.com/learngermanghana/sedifex-stores/internal/ports"
	"github.com/learngermanghana/sedifex-stores/internal/services"
)

// StoreHandler exposes the textual directory listing. Each returned store
// is annotated with coordinates when resolution succeeds; a store that
// cannot be geocoded still appears, just without latitude/longitude.
type StoreHandler struct {
	Repo     ports.StoreRepository
	Resolver *services.Resolver
}

func (h *StoreHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	query := services.DirectoryQuery{
		Search: r.URL.Query().Get("search"),
		Sort:   r.URL.Query().Get("sort"),
	}

	if v := r.URL.Query().Get("offset"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			writeError(w, r, http.StatusBadRequest, "offset must be a non-negative integer")
			return
		}
		query.Offset = n
	}

	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			writeError(w, r, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		query.Limit = n
	}

	stores, err := h.Repo.ListStores(r.Context())
	if err != nil {
		log.Printf("list stores failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	page := services.QueryDirectory(stores, query)

	// Resolve only the returned page; the cache tiers keep repeated
	// renders cheap.
	h.Resolver.ResolveAll(r.Context(), page)

	res := dto.ListStoresResponse{
		Stores: make([]dto.StoreResponse, 0, len(page)),
	}
	for _, s := range page {
		res.Stores = append(res.Stores, toStoreResponse(s))
	}

	writeJSON(w, r, http.StatusOK, res)
}

func toStoreResponse(s *domain.Store) dto.StoreResponse {
	out := dto.StoreResponse{
		StoreID:      s.StoreID,
		Name:         s.Name,
		DisplayName:  s.DisplayName,
		Phone:        s.Phone,
		Email:        s.Email,
		Description:  s.Description,
		AddressLine1: s.AddressLine1,
		City:         s.City,
		Region:       s.Region,
		Country:      s.Country,
		Address:      s.Address(),
		ResolvedAt:   s.ResolvedAt,
	}

	if s.HasCoordinates() {
		lat, lon := s.Coordinates.Lat, s.Coordinates.Lon
		out.Latitude = &lat
		out.Longitude = &lon
	}

	return out
}
