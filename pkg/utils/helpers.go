package utils

import (
	"math"
	"time"

	"github.com/smartcity/castation/internal/units"
)

// EarthRadiusMeters is the mean Earth radius used for great-circle distances
const EarthRadiusMeters = 6371000.0

// Haversine calculates the great-circle distance between two points
func Haversine(lat1, lon1, lat2, lon2 units.Angle) units.Length {
	lat1Rad := float64(lat1)
	lat2Rad := float64(lat2)
	deltaLat := float64(lat2 - lat1)
	deltaLon := float64(lon2 - lon1)

	a := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*
			math.Sin(deltaLon/2)*math.Sin(deltaLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return units.Meters(EarthRadiusMeters * c)
}

// Destination returns the point reached after travelling dist from
// (lat, lon) along the given compass bearing
func Destination(lat, lon, bearing units.Angle, dist units.Length) (units.Angle, units.Angle) {
	latRad := float64(lat)
	lonRad := float64(lon)
	brg := float64(bearing)
	ang := dist.Meters() / EarthRadiusMeters

	lat2 := math.Asin(math.Sin(latRad)*math.Cos(ang) + math.Cos(latRad)*math.Sin(ang)*math.Cos(brg))
	lon2 := lonRad + math.Atan2(math.Sin(brg)*math.Sin(ang)*math.Cos(latRad), math.Cos(ang)-math.Sin(latRad)*math.Sin(lat2))

	return units.Radians(lat2), units.Radians(lon2)
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

// ClampDuration limits a duration between min and max
func ClampDuration(value, min, max time.Duration) time.Duration {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// RoundTo rounds a float to specified decimal places
func RoundTo(value float64, places int) float64 {
	factor := math.Pow(10, float64(places))
	return math.Round(value*factor) / factor
}
