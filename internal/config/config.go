package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/smartcity/openweather/internal/domain"
	"github.com/smartcity/openweather/pkg/openweather"
)

// Config holds gateway configuration read from the environment
type Config struct {
	OpenWeatherAPIKey string
	Language          openweather.Language
	Unit              openweather.Unit
	Timeout           time.Duration
	DefaultLat        float64
	DefaultLon        float64
	APIBaseURL        string
	PollutionBaseURL  string
	TileBaseURL       string
	Port              string
	Env               string
}

// Load reads configuration from environment variables
func Load() *Config {
	return &Config{
		OpenWeatherAPIKey: getEnv("OPENWEATHER_API_KEY", ""),
		Language:          openweather.Language(getEnv("OPENWEATHER_LANG", string(openweather.English))),
		Unit:              openweather.Unit(getEnv("OPENWEATHER_UNITS", string(openweather.Metric))),
		Timeout:           getEnvAsDuration("OPENWEATHER_TIMEOUT", 10*time.Second),
		DefaultLat:        getEnvAsFloat("DEFAULT_LAT", domain.AlmatyCenterLat),
		DefaultLon:        getEnvAsFloat("DEFAULT_LON", domain.AlmatyCenterLon),
		APIBaseURL:        getEnv("OPENWEATHER_API_URL", openweather.DefaultAPIURL),
		PollutionBaseURL:  getEnv("OPENWEATHER_POLLUTION_URL", openweather.DefaultPollutionURL),
		TileBaseURL:       getEnv("OPENWEATHER_TILE_URL", openweather.DefaultTileURL),
		Port:              getEnv("PORT", "8080"),
		Env:               getEnv("GO_ENV", "development"),
	}
}

// IsProduction reports whether GO_ENV is production
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		log.Printf("Invalid %s=%q, using %v", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		log.Printf("Invalid %s=%q, using %v", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}
