package config

import (
	"testing"
	"time"

	"github.com/smartcity/openweather/internal/domain"
	"github.com/smartcity/openweather/pkg/openweather"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"OPENWEATHER_API_KEY", "OPENWEATHER_LANG", "OPENWEATHER_UNITS", "OPENWEATHER_TIMEOUT",
		"DEFAULT_LAT", "DEFAULT_LON", "OPENWEATHER_API_URL", "OPENWEATHER_POLLUTION_URL",
		"OPENWEATHER_TILE_URL", "PORT", "GO_ENV",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()

	if cfg.OpenWeatherAPIKey != "" {
		t.Errorf("expected empty api key, got %q", cfg.OpenWeatherAPIKey)
	}
	if cfg.Language != openweather.English || cfg.Unit != openweather.Metric {
		t.Errorf("unexpected defaults %s/%s", cfg.Language, cfg.Unit)
	}
	if cfg.Timeout != 10*time.Second {
		t.Errorf("expected 10s timeout, got %v", cfg.Timeout)
	}
	if cfg.DefaultLat != domain.AlmatyCenterLat || cfg.DefaultLon != domain.AlmatyCenterLon {
		t.Errorf("expected Almaty, got %v,%v", cfg.DefaultLat, cfg.DefaultLon)
	}
	if cfg.APIBaseURL != openweather.DefaultAPIURL || cfg.PollutionBaseURL != openweather.DefaultPollutionURL ||
		cfg.TileBaseURL != openweather.DefaultTileURL {
		t.Errorf("unexpected base urls %+v", cfg)
	}
	if cfg.Port != "8080" || cfg.IsProduction() {
		t.Errorf("unexpected port/env %s/%s", cfg.Port, cfg.Env)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("OPENWEATHER_API_KEY", "secret")
	t.Setenv("OPENWEATHER_LANG", "de")
	t.Setenv("OPENWEATHER_UNITS", "imperial")
	t.Setenv("OPENWEATHER_TIMEOUT", "2500ms")
	t.Setenv("DEFAULT_LAT", "51.5074")
	t.Setenv("DEFAULT_LON", "-0.1278")
	t.Setenv("PORT", "9090")
	t.Setenv("GO_ENV", "production")

	cfg := Load()

	if cfg.OpenWeatherAPIKey != "secret" {
		t.Errorf("api key = %q", cfg.OpenWeatherAPIKey)
	}
	if cfg.Language != openweather.German || cfg.Unit != openweather.Imperial {
		t.Errorf("unexpected lang/unit %s/%s", cfg.Language, cfg.Unit)
	}
	if cfg.Timeout != 2500*time.Millisecond {
		t.Errorf("timeout = %v", cfg.Timeout)
	}
	if cfg.DefaultLat != 51.5074 || cfg.DefaultLon != -0.1278 {
		t.Errorf("default location = %v,%v", cfg.DefaultLat, cfg.DefaultLon)
	}
	if cfg.Port != "9090" || !cfg.IsProduction() {
		t.Errorf("unexpected port/env %s/%s", cfg.Port, cfg.Env)
	}
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("OPENWEATHER_TIMEOUT", "soon")
	t.Setenv("DEFAULT_LAT", "north")

	cfg := Load()

	if cfg.Timeout != 10*time.Second {
		t.Errorf("timeout = %v", cfg.Timeout)
	}
	if cfg.DefaultLat != domain.AlmatyCenterLat {
		t.Errorf("default lat = %v", cfg.DefaultLat)
	}
}
