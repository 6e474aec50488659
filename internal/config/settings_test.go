package config

import (
	"testing"
	"time"
)

func TestDefaultConfigEmbedded(t *testing.T) {
	cfg := GetConfig()

	if cfg.Importer.BaseURL == "" {
		t.Fatal("embedded defaults carry no importer base URL")
	}
	if cfg.Importer.PageSize <= 0 {
		t.Fatalf("importer page size = %d, want positive", cfg.Importer.PageSize)
	}
	if cfg.History.Retries <= 0 {
		t.Fatalf("history retries = %d, want positive", cfg.History.Retries)
	}
	if cfg.Dashboard.TopCountries <= 0 {
		t.Fatalf("dashboard top countries = %d, want positive", cfg.Dashboard.TopCountries)
	}
}

func TestDurationHelpers(t *testing.T) {
	var cfg Config
	cfg.History.RetryDelaySeconds = 5
	cfg.History.PauseMilliseconds = 500
	cfg.Geocode.PauseMilliseconds = 250

	if got := cfg.HistoryRetryDelay(); got != 5*time.Second {
		t.Fatalf("HistoryRetryDelay returned %s, want 5s", got)
	}
	if got := cfg.HistoryPause(); got != 500*time.Millisecond {
		t.Fatalf("HistoryPause returned %s, want 500ms", got)
	}
	if got := cfg.GeocodePause(); got != 250*time.Millisecond {
		t.Fatalf("GeocodePause returned %s, want 250ms", got)
	}
}
