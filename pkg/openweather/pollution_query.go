package openweather

import (
	"net/url"
	"strconv"
	"strings"
	"time"
)

// AirPollutionQuery describes a request against the air pollution endpoints.
// Every With method returns a modified copy.
type AirPollutionQuery struct {
	baseURL   string
	apiKey    string
	latitude  float64
	longitude float64
	start     *time.Time
	end       *time.Time
}

// NewAirPollutionQuery creates a query for the given key
func NewAirPollutionQuery(apiKey string) AirPollutionQuery {
	return AirPollutionQuery{baseURL: DefaultPollutionURL, apiKey: apiKey}
}

// WithBaseURL overrides the API host
func (q AirPollutionQuery) WithBaseURL(baseURL string) AirPollutionQuery {
	q.baseURL = strings.TrimRight(baseURL, "/")
	return q
}

// WithLocation sets the coordinates
func (q AirPollutionQuery) WithLocation(lat, lon float64) AirPollutionQuery {
	q.latitude = lat
	q.longitude = lon
	return q
}

// WithDateRange sets the window for historical data
func (q AirPollutionQuery) WithDateRange(start, end time.Time) AirPollutionQuery {
	q.start = &start
	q.end = &end
	return q
}

// BuildCurrent renders the current air pollution URL
func (q AirPollutionQuery) BuildCurrent() (string, error) {
	return q.build("/data/2.5/air_pollution", false)
}

// BuildForecast renders the air pollution forecast URL
func (q AirPollutionQuery) BuildForecast() (string, error) {
	return q.build("/data/2.5/air_pollution/forecast", false)
}

// BuildHistorical renders the historical air pollution URL; both dates are required
func (q AirPollutionQuery) BuildHistorical() (string, error) {
	return q.build("/data/2.5/air_pollution/history", true)
}

func (q AirPollutionQuery) build(path string, historical bool) (string, error) {
	if q.apiKey == "" {
		return "", invalid("APIKey", "api key must be provided")
	}
	if q.latitude == 0 || q.longitude == 0 {
		return "", invalid("Location", "latitude and longitude must be provided")
	}
	if historical && (q.start == nil || q.end == nil) {
		return "", invalid("DateRange", "start/end date required")
	}

	var sb strings.Builder
	sb.WriteString(q.baseURL)
	sb.WriteString(path)
	sb.WriteString("?lat=")
	sb.WriteString(formatCoord(q.latitude))
	sb.WriteString("&lon=")
	sb.WriteString(formatCoord(q.longitude))
	if historical {
		sb.WriteString("&start=")
		sb.WriteString(strconv.FormatInt(q.start.Unix(), 10))
		sb.WriteString("&end=")
		sb.WriteString(strconv.FormatInt(q.end.Unix(), 10))
	}
	sb.WriteString("&appid=")
	sb.WriteString(url.QueryEscape(q.apiKey))

	return sb.String(), nil
}
