package api

import (
	"net/http"

	"github.com/learngermanghana/sedifex-stores/internal/api/handlers"
	"github.com/learngermanghana/sedifex-stores/internal/ports"
	"github.com/learngermanghana/sedifex-stores/internal/services"
)

// NewRouter wires HTTP handlers with their dependencies and returns an
// http.Handler. This is the API composition root; handlers stay unaware of
// concrete adapters.
func NewRouter(repo ports.StoreRepository, resolver *services.Resolver, threshold float64) http.Handler {
	mux := http.NewServeMux()

	storeHandler := &handlers.StoreHandler{Repo: repo, Resolver: resolver}
	mapHandler := &handlers.MapHandler{
		Repo:      repo,
		Resolver:  resolver,
		Threshold: threshold,
	}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/stores", storeHandler.List)
	mux.HandleFunc("/map/pins", mapHandler.Pins)

	return loggingMiddleware(mux)
}
