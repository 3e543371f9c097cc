package geo

import (
	"math"
	"strconv"
	"strings"

	"github.com/custodia-labs/kmlpser/internal/core/domain"
)

// ParseCoordinates reads a KML coordinate block: whitespace-separated
// tokens of the form "lng,lat[,alt]". Positions are returned as (lat, lng).
//
// A token is skipped and counted when it has fewer than two components,
// a component is not a finite number, or the position is outside WGS84
// ranges. Altitude is ignored.
func ParseCoordinates(text string) (coords []domain.Coordinate, skipped int) {
	for _, token := range strings.Fields(text) {
		c, ok := parseToken(token)
		if !ok {
			skipped++
			continue
		}
		coords = append(coords, c)
	}
	return coords, skipped
}

func parseToken(token string) (domain.Coordinate, bool) {
	parts := strings.Split(token, ",")
	if len(parts) < 2 {
		return domain.Coordinate{}, false
	}

	lng, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return domain.Coordinate{}, false
	}
	lat, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return domain.Coordinate{}, false
	}

	c := domain.Coordinate{Lat: lat, Lng: lng}
	if !c.Valid() {
		return domain.Coordinate{}, false
	}
	return c, true
}

// Finite reports whether every coordinate has finite components.
func Finite(coords []domain.Coordinate) bool {
	for _, c := range coords {
		if math.IsNaN(c.Lat) || math.IsNaN(c.Lng) || math.IsInf(c.Lat, 0) || math.IsInf(c.Lng, 0) {
			return false
		}
	}
	return true
}
