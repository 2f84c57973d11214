package config

import (
	"errors"
	"testing"
	"time"
)

func TestLoadProxyRequiresAPIKey(t *testing.T) {
	t.Setenv("OPENWEATHER_API_KEY", "")

	if _, err := LoadProxy(); !errors.Is(err, ErrMissingAPIKey) {
		t.Fatalf("expected ErrMissingAPIKey, got %v", err)
	}
}

func TestLoadProxyDefaults(t *testing.T) {
	t.Setenv("OPENWEATHER_API_KEY", "secret")
	t.Setenv("OPENWEATHER_BASE_URL", "")
	t.Setenv("HTTP_TIMEOUT", "")
	t.Setenv("BREAKER_REPORT_INTERVAL", "")
	t.Setenv("CORS_ALLOW_ORIGINS", "")
	t.Setenv("PORT", "")

	cfg, err := LoadProxy()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.OpenWeatherAPIKey != "secret" {
		t.Errorf("unexpected key %q", cfg.OpenWeatherAPIKey)
	}
	if cfg.OpenWeatherBaseURL != "https://api.openweathermap.org" {
		t.Errorf("unexpected base url %q", cfg.OpenWeatherBaseURL)
	}
	if cfg.HTTPTimeout != 10*time.Second {
		t.Errorf("unexpected timeout %v", cfg.HTTPTimeout)
	}
	if cfg.BreakerReportInterval != 15*time.Minute {
		t.Errorf("unexpected report interval %v", cfg.BreakerReportInterval)
	}
	if cfg.Port != "5000" || cfg.CORSAllowOrigins != "*" {
		t.Errorf("unexpected port/cors %q %q", cfg.Port, cfg.CORSAllowOrigins)
	}
}

func TestLoadProxyInvalidDuration(t *testing.T) {
	t.Setenv("OPENWEATHER_API_KEY", "secret")
	t.Setenv("HTTP_TIMEOUT", "soon")

	if _, err := LoadProxy(); err == nil {
		t.Fatalf("expected error for invalid HTTP_TIMEOUT")
	}
}

func TestLoadClient(t *testing.T) {
	t.Setenv("BACKEND_URL", "http://proxy:5000")
	t.Setenv("FAVORITES_DB", "")
	t.Setenv("HTTP_TIMEOUT", "3s")
	t.Setenv("PORT", "")

	cfg, err := LoadClient()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.BackendURL != "http://proxy:5000" {
		t.Errorf("unexpected backend url %q", cfg.BackendURL)
	}
	if cfg.FavoritesDB != "weathernow.db" {
		t.Errorf("unexpected favorites db %q", cfg.FavoritesDB)
	}
	if cfg.HTTPTimeout != 3*time.Second || cfg.Port != "3000" {
		t.Errorf("unexpected timeout/port %v %q", cfg.HTTPTimeout, cfg.Port)
	}
}
