package geo

import (
	"math"

	"github.com/custodia-labs/kmlpser/internal/core/domain"
)

// EarthRadiusKm is the mean Earth radius used for haversine distances.
const EarthRadiusKm = 6371.0

// Haversine returns the great-circle distance between a and b in kilometres.
func Haversine(a, b domain.Coordinate) float64 {
	dLat := radians(b.Lat - a.Lat)
	dLng := radians(b.Lng - a.Lng)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(radians(a.Lat))*math.Cos(radians(b.Lat))*
			math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
	return EarthRadiusKm * c
}

// PathLength sums the distances between consecutive coordinates.
// It returns 0 for fewer than two coordinates.
func PathLength(coords []domain.Coordinate) float64 {
	var total float64
	for i := 1; i < len(coords); i++ {
		total += Haversine(coords[i-1], coords[i])
	}
	return total
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
