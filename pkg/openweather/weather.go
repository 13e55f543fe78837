package openweather

import "time"

// WeatherRequest is the input for the One Call operations.
// Set either City and Country or Latitude and Longitude.
type WeatherRequest struct {
	APIKey    string
	City      string
	Country   string
	Latitude  float64
	Longitude float64
	Language  Language
	Unit      Unit
	Excludes  []Exclude
	Date      *time.Time
}

// WeatherResponse is the One Call payload. Sections are nil when excluded.
type WeatherResponse struct {
	Latitude       float64    `json:"lat"`
	Longitude      float64    `json:"lon"`
	Timezone       string     `json:"timezone,omitempty"`
	TimezoneOffset int        `json:"timezone_offset"`
	Current        *Current   `json:"current,omitempty"`
	Minutely       []Minutely `json:"minutely,omitempty"`
	Hourly         []Hourly   `json:"hourly,omitempty"`
	Daily          []Daily    `json:"daily,omitempty"`
	Alerts         []Alert    `json:"alerts,omitempty"`
}

// Observation holds the fields shared by current, hourly and daily data
type Observation struct {
	DateTime   *UnixTime   `json:"dt,omitempty"`
	Pressure   int         `json:"pressure"`
	Humidity   int         `json:"humidity"`
	DewPoint   float64     `json:"dew_point"`
	UVIndex    float64     `json:"uvi"`
	Clouds     int         `json:"clouds"`
	Visibility int         `json:"visibility"`
	WindSpeed  float64     `json:"wind_speed"`
	WindDeg    int         `json:"wind_deg"`
	WindGust   float64     `json:"wind_gust"`
	Conditions []Condition `json:"weather,omitempty"`
}

// Current is the observation at request time
type Current struct {
	Observation
	Sunrise     *UnixTime      `json:"sunrise,omitempty"`
	Sunset      *UnixTime      `json:"sunset,omitempty"`
	Temperature float64        `json:"temp"`
	FeelsLike   float64        `json:"feels_like"`
	Rain        *Precipitation `json:"rain,omitempty"`
	Snow        *Precipitation `json:"snow,omitempty"`
}

// Hourly is one entry of the hourly forecast
type Hourly struct {
	Observation
	Temperature                float64        `json:"temp"`
	FeelsLike                  float64        `json:"feels_like"`
	Rain                       *Precipitation `json:"rain,omitempty"`
	Snow                       *Precipitation `json:"snow,omitempty"`
	ProbabilityOfPrecipitation *float64       `json:"pop,omitempty"`
}

// Daily is one entry of the daily forecast
type Daily struct {
	Observation
	Sunrise                    *UnixTime    `json:"sunrise,omitempty"`
	Sunset                     *UnixTime    `json:"sunset,omitempty"`
	Moonrise                   *UnixTime    `json:"moonrise,omitempty"`
	Moonset                    *UnixTime    `json:"moonset,omitempty"`
	MoonPhase                  *float64     `json:"moon_phase,omitempty"`
	Summary                    string       `json:"summary,omitempty"`
	Temperature                *Temperature `json:"temp,omitempty"`
	FeelsLike                  *Temperature `json:"feels_like,omitempty"`
	Rain                       *float64     `json:"rain,omitempty"`
	Snow                       *float64     `json:"snow,omitempty"`
	ProbabilityOfPrecipitation *float64     `json:"pop,omitempty"`
}

// Minutely is the precipitation volume for one minute in mm/h
type Minutely struct {
	DateTime      *UnixTime `json:"dt,omitempty"`
	Precipitation float64   `json:"precipitation"`
}

// Precipitation is a volume over the last hour in mm
type Precipitation struct {
	OneHour float64 `json:"1h"`
}

// Temperature breaks a day into its parts
type Temperature struct {
	Day     *float64 `json:"day,omitempty"`
	Min     *float64 `json:"min,omitempty"`
	Max     *float64 `json:"max,omitempty"`
	Night   *float64 `json:"night,omitempty"`
	Evening *float64 `json:"eve,omitempty"`
	Morning *float64 `json:"morn,omitempty"`
}

// Condition is a weather condition code with its text and icon
type Condition struct {
	ID          int    `json:"id"`
	Main        string `json:"main,omitempty"`
	Description string `json:"description,omitempty"`
	Icon        string `json:"icon,omitempty"`
}

// IconURL returns the 100x100 icon, or "" when the condition has none
func (c Condition) IconURL() string {
	if c.Icon == "" {
		return ""
	}
	return "https://openweathermap.org/img/wn/" + c.Icon + "@2x.png"
}

// LargeIconURL returns the 200x200 icon, or "" when the condition has none
func (c Condition) LargeIconURL() string {
	if c.Icon == "" {
		return ""
	}
	return "https://openweathermap.org/img/wn/" + c.Icon + "@4x.png"
}

// Alert is a national weather alert
type Alert struct {
	SenderName  string    `json:"sender_name,omitempty"`
	Event       string    `json:"event,omitempty"`
	Start       *UnixTime `json:"start,omitempty"`
	End         *UnixTime `json:"end,omitempty"`
	Description string    `json:"description,omitempty"`
	Tags        []string  `json:"tags,omitempty"`
}
