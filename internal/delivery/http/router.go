package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/smartcity/openweather/internal/service"
)

// SetupRoutes configures all HTTP routes
func SetupRoutes(app *fiber.App, weatherSvc *service.WeatherService, dashboardSvc *service.DashboardService) {
	handler := NewHandler(weatherSvc, dashboardSvc)

	// Health check
	app.Get("/health", handler.HealthCheck)

	api := app.Group("/api/v1")
	{
		api.Get("/overview", handler.GetOverview)

		api.Get("/weather", handler.GetWeather)
		api.Get("/weather/current", handler.GetCurrentWeather)
		api.Get("/weather/hourly", handler.GetHourlyWeather)
		api.Get("/weather/daily", handler.GetDailyWeather)

		api.Get("/air-pollution", handler.GetAirPollution)
		api.Get("/air-pollution/forecast", handler.GetAirPollutionForecast)
		api.Get("/air-pollution/history", handler.GetAirPollutionHistory)

		api.Get("/tiles/:layer/:zoom/:x/:y", handler.GetMapTile)
		api.Get("/tiles/:layer/:zoom", handler.GetMapTileAt)

		api.Post("/stations", handler.RegisterStation)
	}
}
