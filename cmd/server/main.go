package main

import (
	"log"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/smartcity/openweather/internal/config"
	"github.com/smartcity/openweather/internal/delivery/http"
	"github.com/smartcity/openweather/internal/service"
	"github.com/smartcity/openweather/pkg/openweather"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment")
	}

	// Configuration
	cfg := config.Load()
	if cfg.OpenWeatherAPIKey == "" {
		log.Println("Warning: OPENWEATHER_API_KEY is not set, upstream calls will be rejected")
	}

	// OpenWeatherMap client
	client := openweather.New(
		openweather.WithHTTPClient(&nethttp.Client{Timeout: cfg.Timeout}),
		openweather.WithAPIBaseURL(cfg.APIBaseURL),
		openweather.WithPollutionBaseURL(cfg.PollutionBaseURL),
		openweather.WithTileBaseURL(cfg.TileBaseURL),
		openweather.WithUserAgent("smartcity-openweather/1.0"),
	)

	// Dependency Injection: Services
	weatherSvc := service.NewWeatherService(client, service.Settings{
		APIKey:     cfg.OpenWeatherAPIKey,
		Language:   cfg.Language,
		Unit:       cfg.Unit,
		DefaultLat: cfg.DefaultLat,
		DefaultLon: cfg.DefaultLon,
	})
	dashboardSvc := service.NewDashboardService(weatherSvc)

	// Fiber App
	app := fiber.New(fiber.Config{
		AppName:      "OpenWeather Gateway v1.0",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: cfg.Timeout + 5*time.Second,
		ErrorHandler: http.ErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${locals:requestid} ${status} - ${method} ${path} (${latency})\n",
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
	}))

	// Routes
	http.SetupRoutes(app, weatherSvc, dashboardSvc)

	// Graceful shutdown
	go func() {
		log.Printf("Server starting on :%s (%s)", cfg.Port, cfg.Env)
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Fatalf("Server error: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.ShutdownWithTimeout(5 * time.Second); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}
	if err := client.Close(); err != nil {
		log.Printf("Failed to close weather client: %v", err)
	}
	log.Println("Server exited gracefully")
}
