package config

import (
	"testing"
	"time"

	"github.com/user/expose-extractor/internal/estimator"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.ServerPort != "3000" {
		t.Errorf("ServerPort = %q; want 3000", cfg.ServerPort)
	}
	if cfg.FetchMode != "http" {
		t.Errorf("FetchMode = %q; want http", cfg.FetchMode)
	}
	if cfg.UserAgent != DefaultUserAgent {
		t.Errorf("UserAgent = %q; want default", cfg.UserAgent)
	}
	if got := cfg.FetchTimeoutDuration(); got != 10*time.Second {
		t.Errorf("FetchTimeoutDuration() = %v; want 10s", got)
	}
	if got := cfg.Rates(); got != estimator.DefaultRates() {
		t.Errorf("Rates() = %+v; want defaults", got)
	}
	if len(cfg.Proxies()) != 0 {
		t.Errorf("Proxies() = %v; want none", cfg.Proxies())
	}
	if origins := cfg.AllowedOrigins(); len(origins) != 1 || origins[0] != "*" {
		t.Errorf("AllowedOrigins() = %v; want [*]", origins)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("FETCH_TIMEOUT", "3")
	t.Setenv("PROXY_URLS", "http://p1:8000, ,http://p2:8000")
	t.Setenv("CORS_ORIGINS", "http://localhost:5173")
	t.Setenv("RENT_PER_SQM", "12.5")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.ServerPort != "9090" {
		t.Errorf("ServerPort = %q; want 9090", cfg.ServerPort)
	}
	if got := cfg.FetchTimeoutDuration(); got != 3*time.Second {
		t.Errorf("FetchTimeoutDuration() = %v; want 3s", got)
	}
	if proxies := cfg.Proxies(); len(proxies) != 2 || proxies[1] != "http://p2:8000" {
		t.Errorf("Proxies() = %v", proxies)
	}
	if origins := cfg.AllowedOrigins(); len(origins) != 1 || origins[0] != "http://localhost:5173" {
		t.Errorf("AllowedOrigins() = %v", origins)
	}
	if got := cfg.Rates().RentPerSqm; got != 12.5 {
		t.Errorf("RentPerSqm = %v; want 12.5", got)
	}
}

func TestFetchTimeoutFallback(t *testing.T) {
	cfg := &Config{FetchTimeout: 0}
	if got := cfg.FetchTimeoutDuration(); got != 10*time.Second {
		t.Errorf("FetchTimeoutDuration() = %v; want 10s", got)
	}
}
