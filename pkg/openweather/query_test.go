package openweather

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"
)

const onecallPrefix = "https://api.openweathermap.org/data/3.0/onecall?"

func TestWeatherQuery_BuildCity(t *testing.T) {
	u, err := NewWeatherQuery("k").
		WithCity("Paris", "FR").
		WithLanguage(French).
		WithUnit(Metric).
		Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	want := onecallPrefix + "appid=k&lang=fr&units=metric&q=Paris,FR"
	if u != want {
		t.Errorf("got %s, want %s", u, want)
	}
}

func TestWeatherQuery_BuildCoordinates(t *testing.T) {
	u, err := NewWeatherQuery("k").WithLocation(40.712776, -74.005974).Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	want := onecallPrefix + "appid=k&lang=en&units=metric&lat=40.712776&lon=-74.005974"
	if u != want {
		t.Errorf("got %s, want %s", u, want)
	}
}

func TestWeatherQuery_CoordinateModeNeverGeocodes(t *testing.T) {
	coords := [][2]float64{{50, 50}, {-33.8688, 151.2093}, {0.0001, -0.0001}, {89.9, -179.9}}
	for _, c := range coords {
		u, err := NewWeatherQuery("k").WithLocation(c[0], c[1]).Build()
		if err != nil {
			t.Fatalf("Build(%v) failed: %v", c, err)
		}
		want := fmt.Sprintf("lat=%s&lon=%s", formatCoord(c[0]), formatCoord(c[1]))
		if !strings.Contains(u, want) {
			t.Errorf("%s does not contain %s", u, want)
		}
		if strings.Contains(u, "q=") {
			t.Errorf("%s should not contain q=", u)
		}
	}
}

func TestWeatherQuery_CityModeNeverSendsCoordinates(t *testing.T) {
	places := [][2]string{{"Paris", "FR"}, {"Almaty", "KZ"}, {"Berlin", "DE"}}
	for _, p := range places {
		u, err := NewWeatherQuery("k").WithCity(p[0], p[1]).Build()
		if err != nil {
			t.Fatalf("Build(%v) failed: %v", p, err)
		}
		if !strings.Contains(u, "q="+p[0]+","+p[1]) {
			t.Errorf("%s does not contain the city query", u)
		}
		if strings.Contains(u, "lat=") {
			t.Errorf("%s should not contain lat=", u)
		}
	}
}

func TestWeatherQuery_EscapesCityNames(t *testing.T) {
	u, err := NewWeatherQuery("k").WithCity("New York", "US").Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if !strings.HasSuffix(u, "&q=New+York,US") {
		t.Errorf("unexpected url %s", u)
	}
}

func TestWeatherQuery_DateAndExcludes(t *testing.T) {
	date := time.Date(2024, time.March, 5, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		query  WeatherQuery
		suffix string
	}{
		{
			name:   "date",
			query:  NewWeatherQuery("k").WithLocation(1, 2).WithDate(date),
			suffix: "&lat=1&lon=2&date=3/5/2024",
		},
		{
			name:   "excludes",
			query:  NewWeatherQuery("k").WithLocation(1, 2).WithExcludes(ExcludeMinutely, ExcludeDaily),
			suffix: "&lat=1&lon=2&exclude=minutely,daily",
		},
		{
			name:   "exclude all alias",
			query:  NewWeatherQuery("k").WithLocation(1, 2).WithExcludes(ExcludeAll),
			suffix: "&exclude=current,minutely,hourly,daily,alerts",
		},
		{
			name:   "empty excludes still rendered",
			query:  NewWeatherQuery("k").WithLocation(1, 2).WithExcludes(),
			suffix: "&lat=1&lon=2&exclude=",
		},
		{
			name:   "date before excludes",
			query:  NewWeatherQuery("k").WithLocation(1, 2).WithExcludes(ExcludeAlerts).WithDate(date),
			suffix: "&date=3/5/2024&exclude=alerts",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := tt.query.Build()
			if err != nil {
				t.Fatalf("Build failed: %v", err)
			}
			if !strings.HasSuffix(u, tt.suffix) {
				t.Errorf("got %s, want suffix %s", u, tt.suffix)
			}
		})
	}
}

func TestWeatherQuery_NoExcludeWhenUnset(t *testing.T) {
	u, err := NewWeatherQuery("k").WithLocation(1, 2).Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if strings.Contains(u, "exclude") || strings.Contains(u, "date") {
		t.Errorf("unexpected optional parameters in %s", u)
	}
}

func TestWeatherQuery_Validation(t *testing.T) {
	tests := []struct {
		name  string
		query WeatherQuery
		field string
	}{
		{"missing api key with coordinates", NewWeatherQuery("").WithLocation(1, 2), "APIKey"},
		{"missing api key with city", NewWeatherQuery("").WithCity("Paris", "FR"), "APIKey"},
		{"missing api key and location", NewWeatherQuery(""), "APIKey"},
		{"no location", NewWeatherQuery("k"), "Location"},
		{"latitude only", NewWeatherQuery("k").WithLocation(10, 0), "Location"},
		{"longitude only", NewWeatherQuery("k").WithLocation(0, 10), "Location"},
		{"city without country", NewWeatherQuery("k").WithCity("Paris", ""), "City"},
		{"country without city", NewWeatherQuery("k").WithCity("", "FR"), "City"},
		{"city and coordinates", NewWeatherQuery("k").WithLocation(48.85, 2.35).WithCity("Paris", "FR"), "Location"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := tt.query.Build()
			if err == nil {
				t.Fatalf("expected error, got url %s", u)
			}
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %T: %v", err, err)
			}
			if verr.Field != tt.field {
				t.Errorf("expected field %s, got %s", tt.field, verr.Field)
			}
		})
	}
}

func TestWeatherQuery_LastModeWins(t *testing.T) {
	u, err := NewWeatherQuery("k").WithCity("Paris", "FR").WithLocation(48.85, 2.35).Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if strings.Contains(u, "q=") || !strings.Contains(u, "lat=48.85&lon=2.35") {
		t.Errorf("expected coordinate mode, got %s", u)
	}
}

func TestWeatherQuery_WithReturnsCopy(t *testing.T) {
	base := NewWeatherQuery("k")
	coords := base.WithLocation(1, 2)
	city := base.WithCity("Paris", "FR")

	if _, err := base.Build(); err == nil {
		t.Error("base query should still have no location")
	}

	u1, err := coords.Build()
	if err != nil || !strings.Contains(u1, "lat=1&lon=2") {
		t.Errorf("coordinate query changed: %s, %v", u1, err)
	}
	u2, err := city.Build()
	if err != nil || !strings.Contains(u2, "q=Paris,FR") {
		t.Errorf("city query changed: %s, %v", u2, err)
	}
}

func TestWeatherQuery_WithBaseURL(t *testing.T) {
	u, err := NewWeatherQuery("k").WithBaseURL("http://localhost:9000/").WithLocation(1, 2).Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if !strings.HasPrefix(u, "http://localhost:9000/data/3.0/onecall?appid=k") {
		t.Errorf("unexpected url %s", u)
	}
}
