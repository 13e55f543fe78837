// Package openweather is a client for the OpenWeatherMap One Call, air pollution,
// weather map tile and weather station APIs.
package openweather

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync/atomic"
)

// Client talks to the OpenWeatherMap API. It is safe for concurrent use
// and must be closed when no longer needed.
type Client struct {
	httpClient   *http.Client
	apiURL       string
	pollutionURL string
	tileURL      string
	userAgent    string

	done   context.Context
	cancel context.CancelFunc
	closed atomic.Bool
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient replaces the default transport
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithAPIBaseURL overrides the host used for One Call and stations
func WithAPIBaseURL(u string) Option {
	return func(c *Client) { c.apiURL = strings.TrimRight(u, "/") }
}

// WithPollutionBaseURL overrides the host used for air pollution
func WithPollutionBaseURL(u string) Option {
	return func(c *Client) { c.pollutionURL = strings.TrimRight(u, "/") }
}

// WithTileBaseURL overrides the map tile host
func WithTileBaseURL(u string) Option {
	return func(c *Client) { c.tileURL = strings.TrimRight(u, "/") }
}

// WithUserAgent sets the User-Agent header on every request
func WithUserAgent(ua string) Option {
	return func(c *Client) { c.userAgent = ua }
}

// New creates a new client
func New(opts ...Option) *Client {
	c := &Client{
		httpClient:   &http.Client{},
		apiURL:       DefaultAPIURL,
		pollutionURL: DefaultPollutionURL,
		tileURL:      DefaultTileURL,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.done, c.cancel = context.WithCancel(context.Background())
	return c
}

// Close aborts in-flight requests and releases idle connections.
// It is safe to call more than once.
func (c *Client) Close() error {
	if c.closed.Swap(true) {
		return nil
	}
	c.cancel()
	c.httpClient.CloseIdleConnections()
	return nil
}

// GetWeather fetches the full One Call response
func (c *Client) GetWeather(ctx context.Context, req WeatherRequest) (*WeatherResponse, error) {
	u, err := c.weatherURL(req)
	if err != nil {
		return nil, err
	}
	data, err := c.do(ctx, http.MethodGet, u, nil, http.StatusOK)
	if err != nil {
		return nil, err
	}
	return decode[WeatherResponse](data)
}

// GetCurrentWeather fetches only the current section; nil when excluded
func (c *Client) GetCurrentWeather(ctx context.Context, req WeatherRequest) (*Current, error) {
	resp, err := c.GetWeather(ctx, req)
	if err != nil {
		return nil, err
	}
	return resp.Current, nil
}

// GetHourlyWeather fetches the hourly forecast
func (c *Client) GetHourlyWeather(ctx context.Context, req WeatherRequest) ([]Hourly, error) {
	resp, err := c.GetWeather(ctx, req)
	if err != nil {
		return nil, err
	}
	return resp.Hourly, nil
}

// GetDailyWeather fetches the daily forecast
func (c *Client) GetDailyWeather(ctx context.Context, req WeatherRequest) ([]Daily, error) {
	resp, err := c.GetWeather(ctx, req)
	if err != nil {
		return nil, err
	}
	return resp.Daily, nil
}

func (c *Client) weatherURL(req WeatherRequest) (string, error) {
	q := NewWeatherQuery(req.APIKey).
		WithBaseURL(c.apiURL).
		WithLocation(req.Latitude, req.Longitude)

	// conflicting coordinates are rejected by Build
	if strings.TrimSpace(req.City) != "" || strings.TrimSpace(req.Country) != "" {
		q = q.WithCity(strings.TrimSpace(req.City), strings.TrimSpace(req.Country))
	}
	if req.Language != "" {
		q = q.WithLanguage(req.Language)
	}
	if req.Unit != "" {
		q = q.WithUnit(req.Unit)
	}
	if req.Date != nil {
		q = q.WithDate(*req.Date)
	}
	if len(req.Excludes) > 0 {
		q = q.WithExcludes(req.Excludes...)
	}
	return q.Build()
}

// GetCurrentAirPollution fetches current air pollution data
func (c *Client) GetCurrentAirPollution(ctx context.Context, req AirPollutionRequest) (*AirPollutionResponse, error) {
	return c.airPollution(ctx, c.pollutionQuery(req).BuildCurrent)
}

// GetAirPollutionForecast fetches the air pollution forecast
func (c *Client) GetAirPollutionForecast(ctx context.Context, req AirPollutionRequest) (*AirPollutionResponse, error) {
	return c.airPollution(ctx, c.pollutionQuery(req).BuildForecast)
}

// GetHistoricalAirPollution fetches air pollution between StartDate and EndDate
func (c *Client) GetHistoricalAirPollution(ctx context.Context, req AirPollutionRequest) (*AirPollutionResponse, error) {
	return c.airPollution(ctx, c.pollutionQuery(req).BuildHistorical)
}

func (c *Client) pollutionQuery(req AirPollutionRequest) AirPollutionQuery {
	q := NewAirPollutionQuery(req.APIKey).
		WithBaseURL(c.pollutionURL).
		WithLocation(req.Latitude, req.Longitude)
	if req.StartDate != nil && req.EndDate != nil {
		q = q.WithDateRange(*req.StartDate, *req.EndDate)
	}
	return q
}

func (c *Client) airPollution(ctx context.Context, build func() (string, error)) (*AirPollutionResponse, error) {
	u, err := build()
	if err != nil {
		return nil, err
	}
	data, err := c.do(ctx, http.MethodGet, u, nil, http.StatusOK)
	if err != nil {
		return nil, err
	}
	return decode[AirPollutionResponse](data)
}

// MapTileURL returns the address of a map tile image
func (c *Client) MapTileURL(req MapTileRequest) (string, error) {
	return req.build(c.tileURL)
}

// GetMapTile downloads a map tile and returns the PNG bytes
func (c *Client) GetMapTile(ctx context.Context, req MapTileRequest) ([]byte, error) {
	u, err := c.MapTileURL(req)
	if err != nil {
		return nil, err
	}
	return c.do(ctx, http.MethodGet, u, nil, http.StatusOK)
}

// RegisterWeatherStation creates a station and returns the stored record
func (c *Client) RegisterWeatherStation(ctx context.Context, req WeatherStationRequest) (*WeatherStation, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}

	body, err := json.Marshal(stationPayload{
		ExternalID: req.ExternalID,
		Name:       req.Name,
		Latitude:   req.Latitude,
		Longitude:  req.Longitude,
		Altitude:   req.Altitude,
	})
	if err != nil {
		return nil, fmt.Errorf("openweather: failed to marshal station: %w", err)
	}

	u := c.apiURL + "/data/3.0/stations?appid=" + url.QueryEscape(req.APIKey)
	data, err := c.do(ctx, http.MethodPost, u, body, http.StatusCreated)
	if err != nil {
		return nil, err
	}
	return decode[WeatherStation](data)
}

// do performs one request and returns the body when the status matches want
func (c *Client) do(ctx context.Context, method, rawURL string, body []byte, want int) ([]byte, error) {
	if c.closed.Load() {
		return nil, ErrClientClosed
	}

	reqCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	stop := context.AfterFunc(c.done, cancel)
	defer stop()

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(reqCtx, method, rawURL, reader)
	if err != nil {
		return nil, fmt.Errorf("openweather: failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, c.failure(ctx, "request failed", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, c.failure(ctx, "failed to read response", err)
	}

	if resp.StatusCode != want {
		return nil, &APIError{StatusCode: resp.StatusCode, Body: string(data)}
	}
	return data, nil
}

// failure classifies a transport error: close and caller cancellation win over the raw cause
func (c *Client) failure(ctx context.Context, what string, err error) error {
	if cerr := canceled(ctx); cerr != nil {
		return cerr
	}
	if c.closed.Load() {
		return ErrClientClosed
	}
	return fmt.Errorf("openweather: %s: %w", what, err)
}

func decode[T any](data []byte) (*T, error) {
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("openweather: failed to decode response: %w", err)
	}
	return &v, nil
}
