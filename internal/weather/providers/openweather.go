package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/i474232898/weathernow/internal/weather"
	"github.com/sony/gobreaker"
)

// DefaultOpenWeatherBaseURL is the public OpenWeatherMap API root.
const DefaultOpenWeatherBaseURL = "https://api.openweathermap.org"

// OpenWeatherProvider implements weather.Provider for OpenWeatherMap
// direct geocoding and current weather.
type OpenWeatherProvider struct {
	name    string
	apiKey  string
	baseURL string
	client  *http.Client
	circuit *gobreaker.CircuitBreaker
}

// NewOpenWeatherProvider creates a provider; an empty baseURL selects
// DefaultOpenWeatherBaseURL.
func NewOpenWeatherProvider(client *http.Client, apiKey, baseURL string) *OpenWeatherProvider {
	if baseURL == "" {
		baseURL = DefaultOpenWeatherBaseURL
	}

	return &OpenWeatherProvider{
		name:    "openweathermap",
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
		circuit: newBreaker("openweather"),
	}
}

func (p *OpenWeatherProvider) Name() string {
	return p.name
}

// BreakerName, BreakerState and Counts expose the circuit breaker for reporting.
func (p *OpenWeatherProvider) BreakerName() string { return p.circuit.Name() }

func (p *OpenWeatherProvider) BreakerState() gobreaker.State { return p.circuit.State() }

func (p *OpenWeatherProvider) Counts() gobreaker.Counts { return p.circuit.Counts() }

// LangCode maps a client language to the OpenWeatherMap "lang" parameter.
func LangCode(lang string) string {
	switch lang {
	case "ko":
		return "kr"
	case "zh":
		return "zh_cn"
	case "en":
		return "en"
	default:
		return "en"
	}
}

func (p *OpenWeatherProvider) Geocode(ctx context.Context, city string) ([]weather.GeoMatch, error) {
	if p.apiKey == "" {
		return nil, fmt.Errorf("openweather api key is not configured")
	}

	buildRequest := func() (*http.Request, error) {
		values := url.Values{}
		values.Set("q", city)
		values.Set("limit", "1")
		values.Set("appid", p.apiKey)

		u := fmt.Sprintf("%s/geo/1.0/direct?%s", p.baseURL, values.Encode())
		return http.NewRequest(http.MethodGet, u, nil)
	}

	resp, err := doRequest(ctx, p.client, p.circuit, buildRequest)
	if err != nil {
		return nil, err
	}
	if !resp.ok() {
		return nil, fmt.Errorf("geocoding returned status %d", resp.Status)
	}

	var raw json.RawMessage
	if err := json.Unmarshal(resp.Body, &raw); err != nil {
		return nil, fmt.Errorf("decode geocoding body: %w", err)
	}

	// Anything other than an array means nothing usable was found.
	var matches []weather.GeoMatch
	if err := json.Unmarshal(raw, &matches); err != nil {
		return nil, nil
	}
	return matches, nil
}

func (p *OpenWeatherProvider) Current(ctx context.Context, lat, lon float64, lang string) ([]byte, error) {
	if p.apiKey == "" {
		return nil, fmt.Errorf("openweather api key is not configured")
	}

	buildRequest := func() (*http.Request, error) {
		values := url.Values{}
		values.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
		values.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))
		values.Set("appid", p.apiKey)
		values.Set("units", "metric")
		values.Set("lang", LangCode(lang))

		u := fmt.Sprintf("%s/data/2.5/weather?%s", p.baseURL, values.Encode())
		return http.NewRequest(http.MethodGet, u, nil)
	}

	resp, err := doRequest(ctx, p.client, p.circuit, buildRequest)
	if err != nil {
		return nil, err
	}

	if !resp.ok() || !codOK(resp.Body) {
		return nil, &weather.UpstreamError{Status: resp.Status, Body: resp.Body}
	}
	return resp.Body, nil
}

// codOK reports whether the body's "cod" field is 200. OpenWeatherMap sends it
// as a number on success and often as a string on failure.
func codOK(body []byte) bool {
	var payload struct {
		Cod json.RawMessage `json:"cod"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return false
	}
	return strings.Trim(string(payload.Cod), `"`) == "200"
}
