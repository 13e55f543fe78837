package service

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/smartcity/openweather/internal/domain"
	"github.com/smartcity/openweather/pkg/openweather"
)

// DashboardService aggregates live data for one location
type DashboardService struct {
	weatherSvc *WeatherService
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(weatherSvc *WeatherService) *DashboardService {
	return &DashboardService{weatherSvc: weatherSvc}
}

// GetOverview fetches weather and current air pollution, concurrently when
// the location is given by coordinates.
// A failed half is reported in Overview.Errors; an error is returned only when both fail.
func (s *DashboardService) GetOverview(ctx context.Context, loc domain.Location, opts domain.WeatherOptions) (domain.Overview, error) {
	var (
		weather   *openweather.WeatherResponse
		pollution *openweather.AirPollutionResponse
		wg        sync.WaitGroup
		mu        sync.Mutex
		errs      []error
	)

	wg.Add(1)
	go func() {
		defer wg.Done()
		w, err := s.weatherSvc.GetWeather(ctx, loc, opts)
		mu.Lock()
		if err != nil {
			errs = append(errs, err)
		} else {
			weather = w
		}
		mu.Unlock()
	}()

	fetchPollution := func(at domain.Location) {
		defer wg.Done()
		p, err := s.weatherSvc.GetAirPollution(ctx, at, domain.PollutionCurrent, nil, nil)
		mu.Lock()
		if err != nil {
			errs = append(errs, err)
		} else {
			pollution = p
		}
		mu.Unlock()
	}

	// air pollution has no geocoding; a named city waits for the resolved coordinates
	if !loc.HasCity() {
		wg.Add(1)
		go fetchPollution(loc)
	}

	wg.Wait()

	if loc.HasCity() && weather != nil {
		wg.Add(1)
		fetchPollution(domain.Location{Latitude: weather.Latitude, Longitude: weather.Longitude})
	}

	overview := domain.Overview{
		Weather:      weather,
		AirPollution: pollution,
		Timestamp:    time.Now(),
	}
	for _, err := range errs {
		log.Printf("Overview fetch error: %v", err)
		overview.Errors = append(overview.Errors, err.Error())
	}

	if weather == nil && pollution == nil {
		return overview, errors.Join(errs...)
	}
	return overview, nil
}
