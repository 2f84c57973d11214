package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// ErrMissingAPIKey means the proxy was started without an upstream credential.
var ErrMissingAPIKey = errors.New("OPENWEATHER_API_KEY is not set")

// ProxyConfig configures the weathernow-proxy binary.
type ProxyConfig struct {
	OpenWeatherAPIKey  string
	OpenWeatherBaseURL string

	// HTTPTimeout bounds each outbound upstream call.
	HTTPTimeout time.Duration

	// BreakerReportInterval controls how often breaker state is logged (0 = never).
	BreakerReportInterval time.Duration

	CORSAllowOrigins string
	Port             string
}

// ClientConfig configures the weathernow web client binary.
type ClientConfig struct {
	BackendURL  string
	FavoritesDB string // sqlite path; ":memory:" keeps favorites in memory only
	HTTPTimeout time.Duration
	Port        string
}

// LoadProxy reads proxy configuration from the environment. A missing API key
// is an error; the caller must not start serving without one.
func LoadProxy() (*ProxyConfig, error) {
	loadDotEnv()
	cfg := &ProxyConfig{}

	cfg.OpenWeatherAPIKey = os.Getenv("OPENWEATHER_API_KEY")
	if cfg.OpenWeatherAPIKey == "" {
		return nil, ErrMissingAPIKey
	}
	cfg.OpenWeatherBaseURL = getenvDefault("OPENWEATHER_BASE_URL", "https://api.openweathermap.org")

	timeout, err := getenvDuration("HTTP_TIMEOUT", "10s")
	if err != nil {
		return nil, err
	}
	cfg.HTTPTimeout = timeout

	interval, err := getenvDuration("BREAKER_REPORT_INTERVAL", "15m")
	if err != nil {
		return nil, err
	}
	cfg.BreakerReportInterval = interval

	cfg.CORSAllowOrigins = getenvDefault("CORS_ALLOW_ORIGINS", "*")
	cfg.Port = getenvDefault("PORT", "5000")

	return cfg, nil
}

// LoadClient reads web client configuration from the environment.
func LoadClient() (*ClientConfig, error) {
	loadDotEnv()
	cfg := &ClientConfig{}

	cfg.BackendURL = getenvDefault("BACKEND_URL", "http://localhost:5000")
	cfg.FavoritesDB = getenvDefault("FAVORITES_DB", "weathernow.db")

	timeout, err := getenvDuration("HTTP_TIMEOUT", "10s")
	if err != nil {
		return nil, err
	}
	cfg.HTTPTimeout = timeout
	cfg.Port = getenvDefault("PORT", "3000")

	return cfg, nil
}

func loadDotEnv() {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvDuration(key, def string) (time.Duration, error) {
	d, err := time.ParseDuration(getenvDefault(key, def))
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}
