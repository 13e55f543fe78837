package openweather

import (
	"errors"
	"fmt"
	"testing"
	"time"
)

func TestAirPollutionQuery_BuildCurrent(t *testing.T) {
	u, err := NewAirPollutionQuery("k").WithLocation(50.0, 50.0).BuildCurrent()
	if err != nil {
		t.Fatalf("BuildCurrent failed: %v", err)
	}

	want := "http://api.openweathermap.org/data/2.5/air_pollution?lat=50&lon=50&appid=k"
	if u != want {
		t.Errorf("got %s, want %s", u, want)
	}
}

func TestAirPollutionQuery_BuildForecast(t *testing.T) {
	u, err := NewAirPollutionQuery("test-api-key").WithLocation(40.712776, -74.005974).BuildForecast()
	if err != nil {
		t.Fatalf("BuildForecast failed: %v", err)
	}

	want := "http://api.openweathermap.org/data/2.5/air_pollution/forecast?lat=40.712776&lon=-74.005974&appid=test-api-key"
	if u != want {
		t.Errorf("got %s, want %s", u, want)
	}
}

func TestAirPollutionQuery_BuildHistorical(t *testing.T) {
	start := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2023, 1, 2, 0, 0, 0, 0, time.UTC)

	u, err := NewAirPollutionQuery("k").
		WithLocation(50, 50).
		WithDateRange(start, end).
		BuildHistorical()
	if err != nil {
		t.Fatalf("BuildHistorical failed: %v", err)
	}

	want := "http://api.openweathermap.org/data/2.5/air_pollution/history?lat=50&lon=50&start=1672531200&end=1672617600&appid=k"
	if u != want {
		t.Errorf("got %s, want %s", u, want)
	}
}

func TestAirPollutionQuery_HistoricalUsesUTCSeconds(t *testing.T) {
	zone := time.FixedZone("UTC+5", 5*60*60)
	instants := []time.Time{
		time.Date(2020, 11, 12, 12, 0, 0, 0, time.UTC),
		time.Date(2024, 6, 30, 23, 59, 59, 0, zone),
		time.Unix(1700000000, 0),
	}

	for _, start := range instants {
		end := start.Add(36 * time.Hour)
		u, err := NewAirPollutionQuery("k").WithLocation(1, 1).WithDateRange(start, end).BuildHistorical()
		if err != nil {
			t.Fatalf("BuildHistorical failed: %v", err)
		}
		want := fmt.Sprintf("http://api.openweathermap.org/data/2.5/air_pollution/history?lat=1&lon=1&start=%d&end=%d&appid=k",
			start.UTC().Unix(), end.UTC().Unix())
		if u != want {
			t.Errorf("got %s, want %s", u, want)
		}
	}
}

func TestAirPollutionQuery_Validation(t *testing.T) {
	tests := []struct {
		name  string
		build func() (string, error)
		field string
	}{
		{"missing api key", NewAirPollutionQuery("").WithLocation(50, 50).BuildCurrent, "APIKey"},
		{"missing location", NewAirPollutionQuery("k").BuildCurrent, "Location"},
		{"zero latitude", NewAirPollutionQuery("k").WithLocation(0, 50).BuildForecast, "Location"},
		{"zero longitude", NewAirPollutionQuery("k").WithLocation(50, 0).BuildForecast, "Location"},
		{"history without range", NewAirPollutionQuery("k").WithLocation(50, 50).BuildHistorical, "DateRange"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.build()
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if verr.Field != tt.field {
				t.Errorf("expected field %s, got %s", tt.field, verr.Field)
			}
		})
	}
}

func TestAirPollutionQuery_HistoryMessage(t *testing.T) {
	_, err := NewAirPollutionQuery("k").WithLocation(50, 50).BuildHistorical()
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if verr.Message != "start/end date required" {
		t.Errorf("unexpected message %q", verr.Message)
	}
}
