// Package backend talks to the weathernow proxy on behalf of the web client.
package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/i474232898/weathernow/internal/common"
	"github.com/i474232898/weathernow/internal/i18n"
	"github.com/i474232898/weathernow/internal/weather"
)

// Client fetches current weather through the proxy.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient creates a Client for the proxy at baseURL.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: httpClient,
	}
}

// Fetch returns the current weather for city, or nil when there is nothing to
// show. Blank input returns nil without a request; every failure is logged and
// also returns nil.
func (c *Client) Fetch(ctx context.Context, city string, lang i18n.Lang) *weather.Record {
	if common.Blank(city) {
		return nil
	}

	rec, err := c.fetch(ctx, city, lang)
	if err != nil {
		log.Printf("ERROR: backend: weather lookup for %q (%s) failed: %v", city, lang, err)
		return nil
	}
	return rec
}

func (c *Client) fetch(ctx context.Context, city string, lang i18n.Lang) (*weather.Record, error) {
	values := url.Values{}
	values.Set("city", norm.NFC.String(city))
	values.Set("lang", string(lang))

	u := fmt.Sprintf("%s/api/weather?%s", c.BaseURL, values.Encode())
	log.Printf("DEBUG: backend: requesting %s", u)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("proxy returned %d: %s", resp.StatusCode, body)
	}

	if err := checkBody(body); err != nil {
		return nil, err
	}

	var rec weather.Record
	if err := json.Unmarshal(body, &rec); err != nil {
		return nil, fmt.Errorf("decode weather body: %w", err)
	}
	return &rec, nil
}

// envelope holds the parts of a weather body a Record is read from.
type envelope struct {
	Cod     json.RawMessage   `json:"cod"`
	Main    json.RawMessage   `json:"main"`
	Wind    json.RawMessage   `json:"wind"`
	Weather []json.RawMessage `json:"weather"`
}

// checkBody rejects success replies that carry an upstream failure code or
// lack the sections a Record is read from.
func checkBody(body []byte) error {
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return fmt.Errorf("decode weather body: %w", err)
	}

	if cod := strings.Trim(string(env.Cod), `"`); cod != "200" {
		return fmt.Errorf("weather body carries cod %q: %s", cod, body)
	}
	if isMissing(env.Main) || isMissing(env.Wind) || len(env.Weather) == 0 || isMissing(env.Weather[0]) {
		return fmt.Errorf("weather body lacks main, wind or weather[0]: %s", body)
	}
	return nil
}

func isMissing(raw json.RawMessage) bool {
	return len(raw) == 0 || string(raw) == "null"
}
