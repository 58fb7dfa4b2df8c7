package main

import (
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/learngermanghana/sedifex-stores/internal/adapters/cache"
	"github.com/learngermanghana/sedifex-stores/internal/adapters/geocode"
	"github.com/learngermanghana/sedifex-stores/internal/adapters/repositories"
	"github.com/learngermanghana/sedifex-stores/internal/api"
	"github.com/learngermanghana/sedifex-stores/internal/config"
	"github.com/learngermanghana/sedifex-stores/internal/platform/db"
	"github.com/learngermanghana/sedifex-stores/internal/ports"
	"github.com/learngermanghana/sedifex-stores/internal/services"
)

// main is the application composition root.
// It wires concrete adapters (Postgres, Nominatim, the cache tiers) behind
// ports and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if strings.TrimSpace(databaseURL) == "" {
		log.Fatal("DATABASE_URL is required")
	}

	port := config.Get("PORT", "8080")
	seedPath := config.Get("SEED_PATH", "data/seeds/stores.json")
	geocoderBaseURL := config.Get("GEOCODER_BASE_URL", geocode.DefaultBaseURL)
	userAgent := config.Get("GEOCODER_USER_AGENT", "sedifex-stores/1.0 (directory map)")

	threshold := services.DefaultClusterThreshold
	if v := os.Getenv("CLUSTER_THRESHOLD"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil || f <= 0 {
			log.Fatalf("CLUSTER_THRESHOLD must be a positive number, got %q", v)
		}
		threshold = f
	}

	database, err := db.Open(databaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer database.Close()

	// Initialize schema and seed demo data on startup for local runs.
	if err := repositories.InitSchema(database); err != nil {
		log.Fatal(err)
	}
	if _, err := os.Stat(seedPath); err == nil {
		if err := repositories.SeedFromJSON(database, seedPath); err != nil {
			log.Fatal(err)
		}
	} else {
		log.Printf("No seed file at %s, skipping seed", seedPath)
	}

	repo := repositories.NewPostgresStoreRepository(database)

	geocoder, err := geocode.NewNominatimGeocoder(geocoderBaseURL, userAgent)
	if err != nil {
		log.Fatal(err)
	}

	// Tier 1 is always process memory. With REDIS_URL set, a shared Redis
	// tier sits behind it so instances serving the same directory share
	// lookups.
	var geocodeCache ports.GeocodeCache = cache.NewMemoryGeocodeCache()
	if redisURL := os.Getenv("REDIS_URL"); strings.TrimSpace(redisURL) != "" {
		opts, err := redis.ParseURL(redisURL)
		if err != nil {
			log.Fatalf("invalid REDIS_URL: %v", err)
		}
		geocodeCache = cache.NewLayeredGeocodeCache(
			cache.NewMemoryGeocodeCache(),
			cache.NewRedisGeocodeCache(redis.NewClient(opts)),
		)
	}

	resolver := services.NewResolver(geocodeCache, repo, geocoder)
	router := api.NewRouter(repo, resolver, threshold)

	// Write timeout covers cold-cache map renders (one external geocode per
	// unresolved address).
	log.Printf("Server listening addr=:%s", port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}
