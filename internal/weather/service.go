package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
)

// DefaultLang is used when the caller does not name a language.
const DefaultLang = "ko"

// Service resolves a city through the provider and reshapes the result for clients.
type Service struct {
	provider Provider
}

// NewService creates a new Service.
func NewService(provider Provider) *Service {
	return &Service{provider: provider}
}

// Lookup geocodes city, fetches the current weather at the match and returns
// the upstream body with "name" replaced by the display name for lang.
//
// Errors are ErrCityNotFound, *UpstreamError (forward as-is) or anything else
// (internal failure).
func (s *Service) Lookup(ctx context.Context, city, lang string) (json.RawMessage, error) {
	if lang == "" {
		lang = DefaultLang
	}

	matches, err := s.provider.Geocode(ctx, city)
	if err != nil {
		return nil, fmt.Errorf("geocode %q: %w", city, err)
	}
	if len(matches) == 0 {
		log.Printf("INFO: %s geocoding found no match for %q", s.provider.Name(), city)
		return nil, ErrCityNotFound
	}
	match := matches[0]

	body, err := s.provider.Current(ctx, match.Lat, match.Lon, lang)
	if err != nil {
		return nil, err
	}

	return withName(body, DisplayName(match, lang))
}

// withName overwrites the top-level "name" field and keeps every other field as sent.
func withName(body []byte, name string) (json.RawMessage, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return nil, fmt.Errorf("decode upstream weather body: %w", err)
	}
	if fields == nil {
		return nil, fmt.Errorf("upstream weather body is not an object")
	}

	encoded, err := json.Marshal(name)
	if err != nil {
		return nil, err
	}
	fields["name"] = encoded

	return json.Marshal(fields)
}
