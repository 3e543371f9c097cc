package geo

import (
	"github.com/custodia-labs/kmlpser/internal/core/domain"
)

// DefaultCenter is the map centre used when a document has no features (Manila).
var DefaultCenter = domain.Coordinate{Lat: 14.5995, Lng: 120.9842}

// BoundsOf returns the bounding box of every coordinate of every feature.
// The boolean is false when there are no coordinates.
func BoundsOf(features []domain.Feature) (domain.Bounds, bool) {
	var (
		b     domain.Bounds
		found bool
	)
	for _, f := range features {
		for _, c := range f.Coordinates {
			if !found {
				b = domain.Bounds{South: c.Lat, North: c.Lat, West: c.Lng, East: c.Lng}
				found = true
				continue
			}
			b.South = min(b.South, c.Lat)
			b.North = max(b.North, c.Lat)
			b.West = min(b.West, c.Lng)
			b.East = max(b.East, c.Lng)
		}
	}
	return b, found
}

// Center returns the centre of the features' bounds, or DefaultCenter.
func Center(features []domain.Feature) domain.Coordinate {
	b, ok := BoundsOf(features)
	if !ok {
		return DefaultCenter
	}
	return b.Center()
}
