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

// MapHandler renders the clustered pin layer: resolve every store, project
// the resolved ones onto the canvas, and merge nearby points into clusters.
type MapHandler struct {
	Repo      ports.StoreRepository
	Resolver  *services.Resolver
	Threshold float64
}

func (h *MapHandler) Pins(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	threshold := h.Threshold
	if v := r.URL.Query().Get("threshold"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil || f <= 0 {
			writeError(w, r, http.StatusBadRequest, "threshold must be a positive number")
			return
		}
		threshold = f
	}

	stores, err := h.Repo.ListStores(r.Context())
	if err != nil {
		log.Printf("list stores failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	h.Resolver.ResolveAll(r.Context(), stores)

	// Stores that could not be geocoded stay in the textual listing but are
	// omitted from the map layer.
	pins := make([]domain.Pin, 0, len(stores))
	for _, s := range stores {
		if !s.HasCoordinates() {
			continue
		}

		p := domain.Project(s.Coordinates.Lat, s.Coordinates.Lon)
		pins = append(pins, domain.Pin{StoreID: s.StoreID, X: p.X, Y: p.Y})
	}

	clusters := services.ClusterPins(pins, threshold)

	res := dto.MapPinsResponse{
		Clusters: make([]dto.ClusterResponse, 0, len(clusters)),
	}
	for _, c := range clusters {
		members := make([]dto.PinResponse, 0, len(c.Pins))
		for _, p := range c.Pins {
			members = append(members, dto.PinResponse{StoreID: p.StoreID, X: p.X, Y: p.Y})
		}

		res.Clusters = append(res.Clusters, dto.ClusterResponse{
			X:     c.X,
			Y:     c.Y,
			Count: len(c.Pins),
			Pins:  members,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
