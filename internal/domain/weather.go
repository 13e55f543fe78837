package domain

import (
	"time"

	"github.com/smartcity/openweather/pkg/openweather"
)

// AlmatyCenter coordinates, used when a request names no location
const (
	AlmatyCenterLat = 43.2389
	AlmatyCenterLon = 76.8897
)

// Location identifies the place a gateway request is about.
// City and Country take precedence over coordinates.
type Location struct {
	Latitude  float64
	Longitude float64
	City      string
	Country   string
}

// HasCity reports whether the location is given by name
func (l Location) HasCity() bool {
	return l.City != "" || l.Country != ""
}

// HasCoordinates reports whether both coordinates are set
func (l Location) HasCoordinates() bool {
	return l.Latitude != 0 && l.Longitude != 0
}

// WeatherOptions are the per-request One Call overrides
type WeatherOptions struct {
	Language openweather.Language
	Unit     openweather.Unit
	Excludes []openweather.Exclude
	Date     *time.Time
}

// PollutionKind selects one of the air pollution endpoints
type PollutionKind int

const (
	PollutionCurrent PollutionKind = iota
	PollutionForecast
	PollutionHistory
)

// Overview aggregates live weather and air quality for one location
type Overview struct {
	Weather      *openweather.WeatherResponse      `json:"weather,omitempty"`
	AirPollution *openweather.AirPollutionResponse `json:"air_pollution,omitempty"`
	Errors       []string                          `json:"errors,omitempty"`
	Timestamp    time.Time                         `json:"timestamp"`
}

// StationRegistration is the body accepted by the station endpoint
type StationRegistration struct {
	ExternalID string  `json:"external_id"`
	Name       string  `json:"name"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
	Altitude   float64 `json:"altitude"`
}

// Response wraps endpoint data with metadata
type Response struct {
	Data    any    `json:"data"`
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}
