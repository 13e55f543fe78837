package http

import (
	"errors"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/smartcity/openweather/internal/domain"
	"github.com/smartcity/openweather/internal/service"
	"github.com/smartcity/openweather/pkg/openweather"
)

// dateLayout is the format of the date query parameter
const dateLayout = "2006-01-02"

// Handler contains all HTTP handlers
type Handler struct {
	weatherSvc   *service.WeatherService
	dashboardSvc *service.DashboardService
}

// NewHandler creates a new handler
func NewHandler(weatherSvc *service.WeatherService, dashboardSvc *service.DashboardService) *Handler {
	return &Handler{
		weatherSvc:   weatherSvc,
		dashboardSvc: dashboardSvc,
	}
}

// HealthCheck returns service health status
func (h *Handler) HealthCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "ok",
		"service": "openweather-gateway",
		"version": "1.0.0",
	})
}

// GetWeather returns the full One Call response
func (h *Handler) GetWeather(c *fiber.Ctx) error {
	opts, err := parseWeatherOptions(c)
	if err != nil {
		return err
	}

	weather, err := h.weatherSvc.GetWeather(c.Context(), parseLocation(c), opts)
	if err != nil {
		return upstreamError("weather", err)
	}
	return ok(c, weather)
}

// GetCurrentWeather returns current conditions only
func (h *Handler) GetCurrentWeather(c *fiber.Ctx) error {
	opts, err := parseWeatherOptions(c)
	if err != nil {
		return err
	}

	current, err := h.weatherSvc.GetCurrentWeather(c.Context(), parseLocation(c), opts)
	if err != nil {
		return upstreamError("current weather", err)
	}
	return ok(c, current)
}

// GetHourlyWeather returns the hourly forecast
func (h *Handler) GetHourlyWeather(c *fiber.Ctx) error {
	opts, err := parseWeatherOptions(c)
	if err != nil {
		return err
	}

	hours, err := h.weatherSvc.GetHourlyWeather(c.Context(), parseLocation(c), opts)
	if err != nil {
		return upstreamError("hourly weather", err)
	}
	return ok(c, hours)
}

// GetDailyWeather returns the daily forecast
func (h *Handler) GetDailyWeather(c *fiber.Ctx) error {
	opts, err := parseWeatherOptions(c)
	if err != nil {
		return err
	}

	days, err := h.weatherSvc.GetDailyWeather(c.Context(), parseLocation(c), opts)
	if err != nil {
		return upstreamError("daily weather", err)
	}
	return ok(c, days)
}

// GetAirPollution returns current air pollution
func (h *Handler) GetAirPollution(c *fiber.Ctx) error {
	return h.airPollution(c, domain.PollutionCurrent)
}

// GetAirPollutionForecast returns the air pollution forecast
func (h *Handler) GetAirPollutionForecast(c *fiber.Ctx) error {
	return h.airPollution(c, domain.PollutionForecast)
}

// GetAirPollutionHistory returns air pollution between start and end (Unix seconds)
func (h *Handler) GetAirPollutionHistory(c *fiber.Ctx) error {
	return h.airPollution(c, domain.PollutionHistory)
}

func (h *Handler) airPollution(c *fiber.Ctx, kind domain.PollutionKind) error {
	start, err := parseUnix(c, "start")
	if err != nil {
		return err
	}
	end, err := parseUnix(c, "end")
	if err != nil {
		return err
	}

	data, err := h.weatherSvc.GetAirPollution(c.Context(), parseLocation(c), kind, start, end)
	if err != nil {
		return upstreamError("air pollution", err)
	}
	return ok(c, data)
}

// GetOverview returns weather and air quality for one location
func (h *Handler) GetOverview(c *fiber.Ctx) error {
	opts, err := parseWeatherOptions(c)
	if err != nil {
		return err
	}

	overview, err := h.dashboardSvc.GetOverview(c.Context(), parseLocation(c), opts)
	if err != nil {
		return upstreamError("overview", err)
	}
	return ok(c, overview)
}

// GetMapTile proxies one map tile image
func (h *Handler) GetMapTile(c *fiber.Ctx) error {
	zoom, err := c.ParamsInt("zoom")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid zoom level")
	}
	x, err := c.ParamsInt("x")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid tile x")
	}
	y, err := c.ParamsInt("y")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid tile y")
	}

	tile, err := h.weatherSvc.GetMapTile(c.Context(), openweather.MapLayer(c.Params("layer")), zoom, x, y)
	if err != nil {
		return upstreamError("map tile", err)
	}
	return sendTile(c, tile)
}

// GetMapTileAt proxies the map tile covering lat/lon
func (h *Handler) GetMapTileAt(c *fiber.Ctx) error {
	zoom, err := c.ParamsInt("zoom")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid zoom level")
	}

	tile, err := h.weatherSvc.GetMapTileAt(c.Context(), openweather.MapLayer(c.Params("layer")), zoom, parseLocation(c))
	if err != nil {
		return upstreamError("map tile", err)
	}
	return sendTile(c, tile)
}

// RegisterStation registers a weather station
func (h *Handler) RegisterStation(c *fiber.Ctx) error {
	var req domain.StationRegistration
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	station, err := h.weatherSvc.RegisterStation(c.Context(), req)
	if err != nil {
		return upstreamError("station registration", err)
	}
	return c.Status(fiber.StatusCreated).JSON(domain.Response{Data: station, Success: true})
}

func ok(c *fiber.Ctx, data any) error {
	return c.JSON(domain.Response{Data: data, Success: true})
}

func sendTile(c *fiber.Ctx, tile []byte) error {
	c.Set(fiber.HeaderContentType, "image/png")
	return c.Send(tile)
}

func parseLocation(c *fiber.Ctx) domain.Location {
	return domain.Location{
		Latitude:  c.QueryFloat("lat", 0),
		Longitude: c.QueryFloat("lon", 0),
		City:      strings.TrimSpace(c.Query("city")),
		Country:   strings.TrimSpace(c.Query("country")),
	}
}

func parseWeatherOptions(c *fiber.Ctx) (domain.WeatherOptions, error) {
	opts := domain.WeatherOptions{
		Language: openweather.Language(c.Query("lang")),
		Unit:     openweather.Unit(c.Query("units")),
	}

	if raw := c.Query("exclude"); raw != "" {
		for _, part := range strings.Split(raw, ",") {
			if part = strings.TrimSpace(part); part != "" {
				opts.Excludes = append(opts.Excludes, openweather.Exclude(part))
			}
		}
	}

	if raw := c.Query("date"); raw != "" {
		date, err := time.Parse(dateLayout, raw)
		if err != nil {
			return opts, fiber.NewError(fiber.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
		}
		opts.Date = &date
	}

	return opts, nil
}

func parseUnix(c *fiber.Ctx, key string) (*time.Time, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}
	secs, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid "+key+", expected Unix seconds")
	}
	t := time.Unix(secs, 0).UTC()
	return &t, nil
}

// upstreamError maps client errors onto gateway responses
func upstreamError(what string, err error) error {
	var (
		verr     *openweather.ValidationError
		apiErr   *openweather.APIError
		canceled *openweather.CanceledError
	)

	switch {
	case errors.As(err, &verr):
		return fiber.NewError(fiber.StatusBadRequest, verr.Error())
	case errors.As(err, &apiErr):
		log.Printf("Upstream %s error: %v", what, err)
		if apiErr.StatusCode >= 400 && apiErr.StatusCode < 500 {
			return fiber.NewError(apiErr.StatusCode, apiErr.Body)
		}
		return fiber.NewError(fiber.StatusBadGateway, "Upstream returned status "+strconv.Itoa(apiErr.StatusCode))
	case errors.As(err, &canceled):
		return fiber.NewError(fiber.StatusRequestTimeout, "Request canceled")
	default:
		log.Printf("Failed to fetch %s: %v", what, err)
		return fiber.NewError(fiber.StatusBadGateway, "Failed to fetch "+what)
	}
}

// ErrorHandler renders every error as a JSON body
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal Server Error"

	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
		message = e.Message
	}

	return c.Status(code).JSON(fiber.Map{
		"error":   true,
		"message": message,
	})
}
