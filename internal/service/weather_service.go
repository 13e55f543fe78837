package service

import (
	"context"
	"fmt"
	"time"

	"github.com/smartcity/openweather/internal/domain"
	"github.com/smartcity/openweather/pkg/openweather"
)

// Settings are the gateway-wide request defaults
type Settings struct {
	APIKey     string
	Language   openweather.Language
	Unit       openweather.Unit
	DefaultLat float64
	DefaultLon float64
}

// WeatherService turns gateway requests into OpenWeatherMap calls
type WeatherService struct {
	client   WeatherClient
	settings Settings
}

// NewWeatherService creates a new weather service
func NewWeatherService(client WeatherClient, settings Settings) *WeatherService {
	if settings.DefaultLat == 0 && settings.DefaultLon == 0 {
		settings.DefaultLat = domain.AlmatyCenterLat
		settings.DefaultLon = domain.AlmatyCenterLon
	}
	return &WeatherService{client: client, settings: settings}
}

// GetWeather fetches the full One Call response
func (s *WeatherService) GetWeather(ctx context.Context, loc domain.Location, opts domain.WeatherOptions) (*openweather.WeatherResponse, error) {
	return s.client.GetWeather(ctx, s.weatherRequest(loc, opts))
}

// GetCurrentWeather fetches current conditions
func (s *WeatherService) GetCurrentWeather(ctx context.Context, loc domain.Location, opts domain.WeatherOptions) (*openweather.Current, error) {
	return s.client.GetCurrentWeather(ctx, s.weatherRequest(loc, opts))
}

// GetHourlyWeather fetches the hourly forecast
func (s *WeatherService) GetHourlyWeather(ctx context.Context, loc domain.Location, opts domain.WeatherOptions) ([]openweather.Hourly, error) {
	return s.client.GetHourlyWeather(ctx, s.weatherRequest(loc, opts))
}

// GetDailyWeather fetches the daily forecast
func (s *WeatherService) GetDailyWeather(ctx context.Context, loc domain.Location, opts domain.WeatherOptions) ([]openweather.Daily, error) {
	return s.client.GetDailyWeather(ctx, s.weatherRequest(loc, opts))
}

// GetAirPollution fetches current, forecast or historical air pollution.
// start and end are only used for history.
func (s *WeatherService) GetAirPollution(ctx context.Context, loc domain.Location, kind domain.PollutionKind, start, end *time.Time) (*openweather.AirPollutionResponse, error) {
	lat, lon := s.coordinates(loc)
	req := openweather.AirPollutionRequest{
		APIKey:    s.settings.APIKey,
		Latitude:  lat,
		Longitude: lon,
	}

	switch kind {
	case domain.PollutionCurrent:
		return s.client.GetCurrentAirPollution(ctx, req)
	case domain.PollutionForecast:
		return s.client.GetAirPollutionForecast(ctx, req)
	case domain.PollutionHistory:
		req.StartDate = start
		req.EndDate = end
		return s.client.GetHistoricalAirPollution(ctx, req)
	default:
		return nil, fmt.Errorf("weather: unknown pollution kind %d", kind)
	}
}

// GetMapTile downloads one map tile
func (s *WeatherService) GetMapTile(ctx context.Context, layer openweather.MapLayer, zoom, x, y int) ([]byte, error) {
	return s.client.GetMapTile(ctx, openweather.MapTileRequest{
		APIKey: s.settings.APIKey,
		Layer:  layer,
		Zoom:   zoom,
		X:      x,
		Y:      y,
	})
}

// GetMapTileAt downloads the tile covering a location
func (s *WeatherService) GetMapTileAt(ctx context.Context, layer openweather.MapLayer, zoom int, loc domain.Location) ([]byte, error) {
	lat, lon := s.coordinates(loc)
	return s.client.GetMapTile(ctx, openweather.MapTileAt(s.settings.APIKey, layer, zoom, lat, lon))
}

// RegisterStation registers a weather station under the gateway's key
func (s *WeatherService) RegisterStation(ctx context.Context, reg domain.StationRegistration) (*openweather.WeatherStation, error) {
	return s.client.RegisterWeatherStation(ctx, openweather.WeatherStationRequest{
		APIKey:     s.settings.APIKey,
		ExternalID: reg.ExternalID,
		Name:       reg.Name,
		Latitude:   reg.Latitude,
		Longitude:  reg.Longitude,
		Altitude:   reg.Altitude,
	})
}

func (s *WeatherService) weatherRequest(loc domain.Location, opts domain.WeatherOptions) openweather.WeatherRequest {
	req := openweather.WeatherRequest{
		APIKey:   s.settings.APIKey,
		Language: s.settings.Language,
		Unit:     s.settings.Unit,
		Excludes: opts.Excludes,
		Date:     opts.Date,
	}
	if opts.Language != "" {
		req.Language = opts.Language
	}
	if opts.Unit != "" {
		req.Unit = opts.Unit
	}

	if loc.HasCity() {
		req.City = loc.City
		req.Country = loc.Country
		// pass coordinates through so the client can reject mixed locations
		req.Latitude = loc.Latitude
		req.Longitude = loc.Longitude
		return req
	}
	req.Latitude, req.Longitude = s.coordinates(loc)
	return req
}

// coordinates falls back to the default location when none is given
func (s *WeatherService) coordinates(loc domain.Location) (float64, float64) {
	if loc.Latitude == 0 && loc.Longitude == 0 {
		return s.settings.DefaultLat, s.settings.DefaultLon
	}
	return loc.Latitude, loc.Longitude
}
