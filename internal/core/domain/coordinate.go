package domain

import (
	"encoding/json"
	"fmt"
	"math"
)

// Coordinate is a WGS84 position stored as (latitude, longitude).
// KML writes positions as lng,lat; decoders swap them before storing.
type Coordinate struct {
	Lat float64
	Lng float64
}

// Valid reports whether both components are finite and inside WGS84 ranges.
func (c Coordinate) Valid() bool {
	if math.IsNaN(c.Lat) || math.IsNaN(c.Lng) || math.IsInf(c.Lat, 0) || math.IsInf(c.Lng, 0) {
		return false
	}
	return c.Lat >= -90 && c.Lat <= 90 && c.Lng >= -180 && c.Lng <= 180
}

// String formats the coordinate as "lat, lng" with six decimals.
func (c Coordinate) String() string {
	return fmt.Sprintf("%.6f, %.6f", c.Lat, c.Lng)
}

// MarshalJSON encodes the coordinate as [lat, lng].
func (c Coordinate) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]float64{c.Lat, c.Lng})
}

// UnmarshalJSON decodes a [lat, lng] array. Extra elements (altitude) are ignored.
func (c *Coordinate) UnmarshalJSON(data []byte) error {
	var pair []float64
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	if len(pair) < 2 {
		return fmt.Errorf("coordinate needs 2 components, got %d: %w", len(pair), ErrInvalidInput)
	}
	c.Lat = pair[0]
	c.Lng = pair[1]
	return nil
}
