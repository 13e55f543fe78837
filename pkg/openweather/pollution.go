package openweather

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// AirPollutionRequest is the input for the air pollution operations.
// StartDate and EndDate are only used, and then both required, for history.
type AirPollutionRequest struct {
	APIKey    string
	Latitude  float64
	Longitude float64
	StartDate *time.Time
	EndDate   *time.Time
}

// AirPollutionResponse is the payload of every air pollution endpoint
type AirPollutionResponse struct {
	Coord Coord                `json:"coord"`
	List  []AirPollutionSample `json:"list,omitempty"`
}

// Coord is the location the samples refer to
type Coord struct {
	Lon float64 `json:"lon"`
	Lat float64 `json:"lat"`
}

// UnmarshalJSON accepts the object form and the [lon, lat] array form
func (c *Coord) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	if len(data) > 0 && data[0] == '[' {
		var pair []float64
		if err := json.Unmarshal(data, &pair); err != nil {
			return fmt.Errorf("openweather: invalid coord: %w", err)
		}
		if len(pair) != 2 {
			return fmt.Errorf("openweather: invalid coord: want 2 values, got %d", len(pair))
		}
		c.Lon, c.Lat = pair[0], pair[1]
		return nil
	}

	type plain Coord
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return fmt.Errorf("openweather: invalid coord: %w", err)
	}
	*c = Coord(p)
	return nil
}

// AirPollutionSample is the air quality at one point in time
type AirPollutionSample struct {
	DateTime   *UnixTime           `json:"dt,omitempty"`
	Main       AirQuality          `json:"main"`
	Components PollutionComponents `json:"components"`
}

// AirQuality wraps the index the way the API nests it
type AirQuality struct {
	AQI AirQualityIndex `json:"aqi"`
}

// AirQualityIndex is the 1 (good) to 5 (very poor) scale
type AirQualityIndex int

const (
	AQIGood AirQualityIndex = iota + 1
	AQIFair
	AQIModerate
	AQIPoor
	AQIVeryPoor
)

func (i AirQualityIndex) String() string {
	switch i {
	case AQIGood:
		return "Good"
	case AQIFair:
		return "Fair"
	case AQIModerate:
		return "Moderate"
	case AQIPoor:
		return "Poor"
	case AQIVeryPoor:
		return "Very Poor"
	default:
		return fmt.Sprintf("AirQualityIndex(%d)", int(i))
	}
}

// PollutionComponents are concentrations in μg/m3
type PollutionComponents struct {
	CO   float64 `json:"co"`
	NO   float64 `json:"no"`
	NO2  float64 `json:"no2"`
	O3   float64 `json:"o3"`
	SO2  float64 `json:"so2"`
	PM25 float64 `json:"pm2_5"`
	PM10 float64 `json:"pm10"`
	NH3  float64 `json:"nh3"`
}
