package openweather

import (
	"fmt"
	"net/url"

	"github.com/smartcity/openweather/pkg/utils"
)

// MapTileRequest addresses one 256x256 map tile
type MapTileRequest struct {
	APIKey string
	Layer  MapLayer
	Zoom   int
	X      int
	Y      int
}

// MapTileAt returns the request for the tile covering the given coordinate
func MapTileAt(apiKey string, layer MapLayer, zoom int, lat, lon float64) MapTileRequest {
	x, y := utils.TileXY(lat, lon, zoom)
	return MapTileRequest{APIKey: apiKey, Layer: layer, Zoom: zoom, X: x, Y: y}
}

func (r MapTileRequest) build(baseURL string) (string, error) {
	if r.APIKey == "" {
		return "", invalid("APIKey", "api key must be provided")
	}
	if r.Layer == "" {
		return "", invalid("Layer", "map layer must be provided")
	}
	return fmt.Sprintf("%s/map/%s/%d/%d/%d.png?appid=%s",
		baseURL, url.PathEscape(string(r.Layer)), r.Zoom, r.X, r.Y, url.QueryEscape(r.APIKey)), nil
}
