package geocode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/learngermanghana/sedifex-stores/internal/domain"
)

// DefaultBaseURL points at the public Nominatim instance.
const DefaultBaseURL = "https://nominatim.openstreetmap.org"

// NominatimGeocoder resolves free-text addresses against a Nominatim-style
// search endpoint. Every request carries a distinguishing User-Agent, a
// usage-policy requirement of the public service.
//
// Each Geocode call makes exactly one attempt with a bounded client
// timeout. The resolver's caching keeps call volume to at most one lookup
// per distinct address, so there is no retry or backoff here.
type NominatimGeocoder struct {
	session   *http.Client
	baseURL   string
	userAgent string
}

func NewNominatimGeocoder(baseURL, userAgent string) (*NominatimGeocoder, error) {
	if strings.TrimSpace(userAgent) == "" {
		return nil, errors.New("geocoder user agent is empty")
	}
	if strings.TrimSpace(baseURL) == "" {
		baseURL = DefaultBaseURL
	}

	return &NominatimGeocoder{
		session:   &http.Client{Timeout: 10 * time.Second},
		baseURL:   strings.TrimRight(baseURL, "/"),
		userAgent: userAgent,
	}, nil
}

// Candidates arrive with lat/lon as strings, not numbers.
type candidate struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

// Geocode resolves one address with a single GET against /search. The
// first candidate wins; a non-OK status, empty candidate list or
// unparseable coordinate all surface as errors for the caller to treat as
// an ordinary lookup failure.
func (g *NominatimGeocoder) Geocode(ctx context.Context, address string) (domain.Coordinates, error) {
	if strings.TrimSpace(address) == "" {
		return domain.Coordinates{}, errors.New("geocode: address is empty")
	}

	req, err := g.newRequest(ctx, address)
	if err != nil {
		return domain.Coordinates{}, err
	}

	resp, err := g.session.Do(req)
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("geocode %q: execute request: %w", address, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return domain.Coordinates{}, fmt.Errorf(
			"geocode %q: unexpected status %d: %s",
			address, resp.StatusCode, strings.TrimSpace(string(b)),
		)
	}

	var decoded []candidate
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return domain.Coordinates{}, fmt.Errorf("geocode %q: decode response: %w", address, err)
	}

	if len(decoded) == 0 {
		return domain.Coordinates{}, fmt.Errorf("geocode %q: no candidates", address)
	}

	lat, err := strconv.ParseFloat(decoded[0].Lat, 64)
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("geocode %q: parse lat %q: %w", address, decoded[0].Lat, err)
	}

	lon, err := strconv.ParseFloat(decoded[0].Lon, 64)
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("geocode %q: parse lon %q: %w", address, decoded[0].Lon, err)
	}

	coords := domain.Coordinates{Lat: lat, Lon: lon}
	if !coords.Valid() {
		return domain.Coordinates{}, fmt.Errorf("geocode %q: coordinates out of range (%v, %v)", address, lat, lon)
	}

	return coords, nil
}

func (g *NominatimGeocoder) newRequest(ctx context.Context, address string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"/search", nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	q := req.URL.Query()
	q.Set("q", address)
	q.Set("format", "json")
	q.Set("limit", "1")
	req.URL.RawQuery = q.Encode()

	req.Header.Set("User-Agent", g.userAgent)
	req.Header.Set("Accept", "application/json")

	return req, nil
}
