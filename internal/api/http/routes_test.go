package httpapi

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/i474232898/weathernow/internal/weather"
	"github.com/i474232898/weathernow/internal/weather/providers"
)

// upstream is a stub OpenWeatherMap serving fixed geocoding and weather replies.
type upstream struct {
	geoBody       string
	weatherStatus int
	weatherBody   string

	mu          sync.Mutex
	weatherLang string
	geoStatus   int
}

func (u *upstream) setGeoStatus(status int) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.geoStatus = status
}

func (u *upstream) lang() string {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.weatherLang
}

func (u *upstream) handler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	switch r.URL.Path {
	case "/geo/1.0/direct":
		u.mu.Lock()
		status := u.geoStatus
		u.mu.Unlock()
		if status != 0 {
			w.WriteHeader(status)
		}
		w.Write([]byte(u.geoBody))
	case "/data/2.5/weather":
		u.mu.Lock()
		u.weatherLang = r.URL.Query().Get("lang")
		u.mu.Unlock()
		if u.weatherStatus != 0 {
			w.WriteHeader(u.weatherStatus)
		}
		w.Write([]byte(u.weatherBody))
	default:
		http.NotFound(w, r)
	}
}

func newTestApp(t *testing.T, up *upstream) *fiber.App {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(up.handler))
	t.Cleanup(srv.Close)

	provider := providers.NewOpenWeatherProvider(srv.Client(), "test-key", srv.URL)
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	RegisterRoutes(app, weather.NewService(provider))
	return app
}

func get(t *testing.T, app *fiber.App, target string) (int, []byte) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, target, nil), 5000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, body
}

const seoulGeo = `[{"name":"Seoul","lat":37.5666791,"lon":126.9782914,"country":"KR","local_names":{"ko":"서울","zh":"首尔","en":"Seoul"}}]`

func TestWeatherSeoulKorean(t *testing.T) {
	up := &upstream{
		geoBody:     seoulGeo,
		weatherBody: `{"main":{"temp":5,"humidity":40},"wind":{"speed":2},"weather":[{"description":"맑음"}],"cod":200,"name":"Seoul"}`,
	}
	app := newTestApp(t, up)

	status, body := get(t, app, "/api/weather?city=Seoul&lang=ko")
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", status, body)
	}

	var rec weather.Record
	if err := json.Unmarshal(body, &rec); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if rec.Name != "서울" {
		t.Errorf("expected name 서울, got %q", rec.Name)
	}
	if rec.TemperatureC() != 5 || rec.HumidityPct() != 40 || rec.WindSpeedMs() != 2 || rec.Description() != "맑음" {
		t.Errorf("unexpected record %+v", rec)
	}
	if up.lang() != "kr" {
		t.Errorf("expected upstream lang kr, got %q", up.lang())
	}
}

func TestWeatherLanguageMapping(t *testing.T) {
	cases := []struct {
		query        string
		wantName     string
		wantUpstream string
	}{
		{"lang=zh", "首尔", "zh_cn"},
		{"lang=en", "Seoul", "en"},
		{"lang=fr", "Seoul", "en"},
		{"", "서울", "kr"},
	}

	for _, c := range cases {
		up := &upstream{geoBody: seoulGeo, weatherBody: `{"main":{"temp":1},"cod":200}`}
		app := newTestApp(t, up)

		status, body := get(t, app, "/api/weather?city="+url.QueryEscape("首尔")+"&"+c.query)
		if status != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d", c.query, status)
		}
		var rec weather.Record
		_ = json.Unmarshal(body, &rec)
		if rec.Name != c.wantName {
			t.Errorf("%s: expected name %q, got %q", c.query, c.wantName, rec.Name)
		}
		if up.lang() != c.wantUpstream {
			t.Errorf("%s: expected upstream lang %q, got %q", c.query, c.wantUpstream, up.lang())
		}
	}
}

func TestWeatherMissingCity(t *testing.T) {
	app := newTestApp(t, &upstream{})

	for _, target := range []string{"/api/weather", "/api/weather?city=&lang=en"} {
		status, body := get(t, app, target)
		if status != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d", target, status)
		}
		var payload map[string]string
		if err := json.Unmarshal(body, &payload); err != nil || payload["error"] == "" {
			t.Fatalf("%s: expected error body, got %s", target, body)
		}
	}
}

func TestWeatherCityNotFound(t *testing.T) {
	app := newTestApp(t, &upstream{geoBody: `[]`})

	status, body := get(t, app, "/api/weather?city=Atlantis&lang=en")
	if status != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", status, body)
	}
}

func TestWeatherForwardsUpstreamFailure(t *testing.T) {
	up := &upstream{
		geoBody:       seoulGeo,
		weatherStatus: http.StatusUnauthorized,
		weatherBody:   `{"cod":401,"message":"Invalid API key."}`,
	}
	app := newTestApp(t, up)

	status, body := get(t, app, "/api/weather?city=Seoul&lang=en")
	if status != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", status)
	}
	if string(body) != up.weatherBody {
		t.Fatalf("expected upstream body forwarded, got %s", body)
	}
}

func TestWeatherInternalFailure(t *testing.T) {
	app := newTestApp(t, &upstream{geoBody: `not json`})

	status, body := get(t, app, "/api/weather?city=Seoul&lang=en")
	if status != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", status)
	}
	var payload map[string]string
	if err := json.Unmarshal(body, &payload); err != nil || payload["error"] != "internal server error" {
		t.Fatalf("expected generic error body, got %s", body)
	}
}

func TestWeatherOpenBreakerAnswersInternalError(t *testing.T) {
	up := &upstream{
		geoBody:       seoulGeo,
		weatherStatus: http.StatusUnauthorized,
		weatherBody:   `{"cod":401,"message":"Invalid API key."}`,
	}
	up.setGeoStatus(http.StatusServiceUnavailable)
	app := newTestApp(t, up)

	for i := 0; i < 6; i++ {
		if status, _ := get(t, app, "/api/weather?city=Seoul&lang=en"); status != http.StatusInternalServerError {
			t.Fatalf("request %d: expected 500, got %d", i, status)
		}
	}

	// Geocoding recovers, but the open breaker short-circuits the lookup
	// instead of forwarding the weather failure.
	up.setGeoStatus(0)
	status, body := get(t, app, "/api/weather?city=Seoul&lang=en")
	if status != http.StatusInternalServerError {
		t.Fatalf("expected 500 while the breaker is open, got %d: %s", status, body)
	}
	var payload map[string]string
	if err := json.Unmarshal(body, &payload); err != nil || payload["error"] != "internal server error" {
		t.Fatalf("expected generic error body, got %s", body)
	}
}
