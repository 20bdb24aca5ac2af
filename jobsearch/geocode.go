package jobsearch

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/ascendai/backend/config"
	"github.com/ascendai/backend/models"
	"github.com/ascendai/backend/utils"
)

// Coordinates is a geocoded latitude/longitude pair
type Coordinates struct {
	Latitude  float64
	Longitude float64
}

// GeocodeCache memoizes lookups within a single enrichment pass. A nil entry
// records a failed or empty lookup so the same location is never retried.
type GeocodeCache map[string]*Coordinates

// NewGeocodeCache creates an empty geocode cache
func NewGeocodeCache() GeocodeCache {
	return make(GeocodeCache)
}

// Geocoder resolves free-text locations to coordinates via Nominatim.
// Outbound requests are rate limited to respect its usage policy.
type Geocoder struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewGeocoder creates a geocoder from config
func NewGeocoder(cfg *config.Config) *Geocoder {
	interval := time.Duration(cfg.GeocodeDelaySeconds) * time.Second
	return &Geocoder{
		baseURL:    cfg.NominatimBaseURL,
		httpClient: utils.NewHTTPClient(time.Duration(cfg.HTTPTimeoutSeconds) * time.Second),
		limiter:    rate.NewLimiter(rate.Every(interval), 1),
	}
}

type nominatimResult struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

// Geocode resolves a location string to coordinates. A (nil, nil) return means
// the service had no match for the location.
func (g *Geocoder) Geocode(ctx context.Context, location string) (*Coordinates, error) {
	location = strings.TrimSpace(location)
	if location == "" {
		return nil, nil
	}

	if err := g.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("q", location)
	params.Set("format", "json")
	params.Set("limit", "1")

	reqURL := g.baseURL + "/search?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("geocoding error (status %d): %s", resp.StatusCode, string(body))
	}

	var results []nominatimResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	if len(results) == 0 {
		return nil, nil
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid latitude %q: %w", results[0].Lat, err)
	}
	lon, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid longitude %q: %w", results[0].Lon, err)
	}

	return &Coordinates{Latitude: lat, Longitude: lon}, nil
}

// EnrichJobs fills missing coordinates in place, strictly sequentially. Jobs
// that already carry coordinates or have no location are skipped. Lookup
// failures are logged and recorded in the cache so the job is left without
// coordinates rather than failing the batch.
func (g *Geocoder) EnrichJobs(ctx context.Context, jobs []models.JobResult, cache GeocodeCache) {
	for i := range jobs {
		job := &jobs[i]
		if job.Latitude != nil && job.Longitude != nil {
			continue
		}
		if job.Location == "" {
			continue
		}

		coords, seen := cache[job.Location]
		if !seen {
			var err error
			coords, err = g.Geocode(ctx, job.Location)
			if err != nil {
				log.Printf("[Geocode] Lookup failed for %q: %v", job.Location, err)
				coords = nil
			}
			cache[job.Location] = coords
		}

		if coords != nil {
			lat, lon := coords.Latitude, coords.Longitude
			job.Latitude = &lat
			job.Longitude = &lon
		}
	}
}
