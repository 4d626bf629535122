package search

import (
	"fmt"
	"math"
)

const (
	earthRadiusMeters = 6371000.0
	metersPerMile     = 1609.34
	feetPerMile       = 5280.0
)

// Distance returns the great-circle distance between two points in meters,
// using the Haversine formula.
func Distance(a, b Coordinates) float64 {
	dLat := degreesToRadians(b.Lat - a.Lat)
	dLng := degreesToRadians(b.Lng - a.Lng)

	latA := degreesToRadians(a.Lat)
	latB := degreesToRadians(b.Lat)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Sin(dLng/2)*math.Sin(dLng/2)*math.Cos(latA)*math.Cos(latB)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusMeters * c
}

// FormatDistance renders a distance in meters for display. Distances under
// a tenth of a mile are shown as whole feet, everything else as miles to
// one decimal.
func FormatDistance(meters float64) string {
	miles := meters / metersPerMile
	if miles < 0.1 {
		return fmt.Sprintf("%.0f ft", math.Round(miles*feetPerMile))
	}
	return fmt.Sprintf("%.1f mi", miles)
}

func degreesToRadians(deg float64) float64 {
	return deg * math.Pi / 180.0
}
