package utils

import (
	"math"
)

// MaxMercatorLat is the latitude limit of the Web Mercator projection
const MaxMercatorLat = 85.05112878

// TileXY returns the slippy-map tile indices containing the given point
func TileXY(lat, lon float64, zoom int) (x, y int) {
	if zoom < 0 {
		zoom = 0
	}
	n := math.Exp2(float64(zoom))

	lat = Clamp(lat, -MaxMercatorLat, MaxMercatorLat)
	lon = Clamp(lon, -180, 180)

	latRad := lat * math.Pi / 180
	fx := (lon + 180) / 360 * n
	fy := (1 - math.Log(math.Tan(latRad)+1/math.Cos(latRad))/math.Pi) / 2 * n

	maxIndex := n - 1
	x = int(Clamp(math.Floor(fx), 0, maxIndex))
	y = int(Clamp(math.Floor(fy), 0, maxIndex))
	return x, y
}

// Clamp limits a value between min and max
func Clamp(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
