// Package geo provides the geometry used by the parser and analyzer:
// great-circle distances, coordinate block parsing and bounding boxes.
//
// All positions are (lat, lng) domain.Coordinate values. Functions are pure
// and safe for concurrent use.
package geo
