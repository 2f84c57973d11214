package weather

import (
	"context"
	"errors"
	"fmt"
)

// ErrCityNotFound is returned when geocoding yields no match for a city.
var ErrCityNotFound = errors.New("city not found")

// UpstreamError carries a failed upstream weather response so the proxy can
// forward the status and body unchanged.
type UpstreamError struct {
	Status int
	Body   []byte
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream weather request failed with status %d", e.Status)
}

// Provider abstracts the upstream geocoding + current-weather API.
type Provider interface {
	Name() string
	// Geocode resolves a free-text city name to at most one best match.
	Geocode(ctx context.Context, city string) ([]GeoMatch, error)
	// Current returns the raw upstream weather body for the coordinates,
	// with metric units and the description localized for lang.
	Current(ctx context.Context, lat, lon float64, lang string) ([]byte, error)
}
