package openweather

// WeatherStationRequest registers a station. APIKey, ExternalID and Name are required.
type WeatherStationRequest struct {
	APIKey     string
	ExternalID string
	Name       string
	Latitude   float64
	Longitude  float64
	Altitude   float64
}

func (r WeatherStationRequest) validate() error {
	if r.APIKey == "" {
		return invalid("APIKey", "api key must be provided")
	}
	if r.ExternalID == "" {
		return invalid("ExternalID", "external id must be provided")
	}
	if r.Name == "" {
		return invalid("Name", "name must be provided")
	}
	return nil
}

// stationPayload is the registration body sent to the API
type stationPayload struct {
	ExternalID string  `json:"external_id"`
	Name       string  `json:"name"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
	Altitude   float64 `json:"altitude"`
}

// WeatherStation is the record the API assigns on registration
type WeatherStation struct {
	ID         string    `json:"ID"`
	UpdatedAt  *UnixTime `json:"updated_at,omitempty"`
	CreatedAt  *UnixTime `json:"created_at,omitempty"`
	UserID     string    `json:"user_id,omitempty"`
	ExternalID string    `json:"external_id,omitempty"`
	Name       string    `json:"name,omitempty"`
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
	Altitude   float64   `json:"altitude"`
	SourceType int       `json:"source_type"`
}
