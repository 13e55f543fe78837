package openweather

import (
	"net/url"
	"strconv"
	"strings"
	"time"
)

// dateLayout renders the One Call date parameter as M/d/yyyy
const dateLayout = "1/2/2006"

// WeatherQuery describes a One Call request. The zero value is not usable;
// start from NewWeatherQuery. Every With method returns a modified copy.
type WeatherQuery struct {
	baseURL     string
	apiKey      string
	language    Language
	unit        Unit
	excludes    []Exclude
	excludesSet bool
	latitude    float64
	longitude   float64
	city        string
	country     string
	date        *time.Time
	geocoding   bool
}

// NewWeatherQuery creates a query with English text and metric units
func NewWeatherQuery(apiKey string) WeatherQuery {
	return WeatherQuery{
		baseURL:  DefaultAPIURL,
		apiKey:   apiKey,
		language: English,
		unit:     Metric,
	}
}

// WithBaseURL overrides the API host
func (q WeatherQuery) WithBaseURL(baseURL string) WeatherQuery {
	q.baseURL = strings.TrimRight(baseURL, "/")
	return q
}

// WithDate sets the date of interest
func (q WeatherQuery) WithDate(date time.Time) WeatherQuery {
	q.date = &date
	return q
}

// WithLanguage sets the response language
func (q WeatherQuery) WithLanguage(lang Language) WeatherQuery {
	q.language = lang
	return q
}

// WithUnit sets the measurement system
func (q WeatherQuery) WithUnit(unit Unit) WeatherQuery {
	q.unit = unit
	return q
}

// WithLocation switches to coordinate mode
func (q WeatherQuery) WithLocation(lat, lon float64) WeatherQuery {
	q.latitude = lat
	q.longitude = lon
	q.geocoding = false
	return q
}

// WithCity switches to geocoding mode
func (q WeatherQuery) WithCity(city, country string) WeatherQuery {
	q.city = city
	q.country = country
	q.geocoding = true
	return q
}

// WithExcludes sets the sections to leave out of the response.
// Calling it with no arguments still renders an empty exclude parameter.
func (q WeatherQuery) WithExcludes(excludes ...Exclude) WeatherQuery {
	q.excludes = append([]Exclude(nil), excludes...)
	q.excludesSet = true
	return q
}

// Build validates the query and renders the request URL
func (q WeatherQuery) Build() (string, error) {
	if q.apiKey == "" {
		return "", invalid("APIKey", "api key must be provided")
	}

	var sb strings.Builder
	sb.WriteString(q.baseURL)
	sb.WriteString("/data/3.0/onecall?appid=")
	sb.WriteString(url.QueryEscape(q.apiKey))
	sb.WriteString("&lang=")
	sb.WriteString(url.QueryEscape(string(q.language)))
	sb.WriteString("&units=")
	sb.WriteString(url.QueryEscape(string(q.unit)))

	if q.geocoding {
		if q.latitude != 0 && q.longitude != 0 {
			return "", invalid("Location", "latitude and longitude must be unset when using city and country")
		}
		if q.city == "" || q.country == "" {
			return "", invalid("City", "city and country must be provided")
		}
		sb.WriteString("&q=")
		sb.WriteString(url.QueryEscape(q.city))
		sb.WriteByte(',')
		sb.WriteString(url.QueryEscape(q.country))
	} else {
		if q.latitude == 0 || q.longitude == 0 {
			return "", invalid("Location", "latitude and longitude must be provided")
		}
		sb.WriteString("&lat=")
		sb.WriteString(formatCoord(q.latitude))
		sb.WriteString("&lon=")
		sb.WriteString(formatCoord(q.longitude))
	}

	if q.date != nil {
		sb.WriteString("&date=")
		sb.WriteString(q.date.Format(dateLayout))
	}

	if q.excludesSet {
		sb.WriteString("&exclude=")
		for i, e := range q.excludes {
			if i > 0 {
				sb.WriteByte(',')
			}
			// ExcludeAll carries its own commas
			sb.WriteString(strings.ReplaceAll(url.QueryEscape(string(e)), "%2C", ","))
		}
	}

	return sb.String(), nil
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
