package service

import (
	"context"

	"github.com/smartcity/openweather/pkg/openweather"
)

// WeatherClient is the subset of *openweather.Client the services depend on
type WeatherClient interface {
	GetWeather(ctx context.Context, req openweather.WeatherRequest) (*openweather.WeatherResponse, error)
	GetCurrentWeather(ctx context.Context, req openweather.WeatherRequest) (*openweather.Current, error)
	GetHourlyWeather(ctx context.Context, req openweather.WeatherRequest) ([]openweather.Hourly, error)
	GetDailyWeather(ctx context.Context, req openweather.WeatherRequest) ([]openweather.Daily, error)
	GetCurrentAirPollution(ctx context.Context, req openweather.AirPollutionRequest) (*openweather.AirPollutionResponse, error)
	GetAirPollutionForecast(ctx context.Context, req openweather.AirPollutionRequest) (*openweather.AirPollutionResponse, error)
	GetHistoricalAirPollution(ctx context.Context, req openweather.AirPollutionRequest) (*openweather.AirPollutionResponse, error)
	GetMapTile(ctx context.Context, req openweather.MapTileRequest) ([]byte, error)
	RegisterWeatherStation(ctx context.Context, req openweather.WeatherStationRequest) (*openweather.WeatherStation, error)
}

var _ WeatherClient = (*openweather.Client)(nil)
