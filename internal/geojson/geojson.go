// Package geojson converts parsed documents to GeoJSON (RFC 7946).
// Positions are written as [lng, lat], the reverse of the in-memory order.
package geojson

import (
	"encoding/json"
	"fmt"

	"github.com/custodia-labs/kmlpser/internal/core/domain"
)

// Geometry type names.
const (
	TypePoint      = "Point"
	TypeLineString = "LineString"
)

// FeatureCollection is a GeoJSON feature collection. Center is a foreign
// member carrying the document's initial map view as [lng, lat].
type FeatureCollection struct {
	Type     string     `json:"type"`
	Center   [2]float64 `json:"center"`
	Features []Feature  `json:"features"`
}

// Feature is a GeoJSON feature.
type Feature struct {
	Type       string     `json:"type"`
	Geometry   Geometry   `json:"geometry"`
	Properties Properties `json:"properties"`
}

// Properties carries the parsed fields of one feature.
type Properties struct {
	Index       int               `json:"index"`
	Name        string            `json:"name"`
	Description string            `json:"description,omitempty"`
	Attributes  domain.Attributes `json:"attributes"`
}

// Geometry is a Point or LineString. Coordinates holds a single position
// for a Point and a list of positions for a LineString.
type Geometry struct {
	Type        string
	Coordinates [][2]float64
}

type pointJSON struct {
	Type        string     `json:"type"`
	Coordinates [2]float64 `json:"coordinates"`
}

type lineJSON struct {
	Type        string       `json:"type"`
	Coordinates [][2]float64 `json:"coordinates"`
}

// MarshalJSON writes a Point position unnested.
func (g Geometry) MarshalJSON() ([]byte, error) {
	if g.Type == TypePoint {
		if len(g.Coordinates) != 1 {
			return nil, fmt.Errorf("point needs exactly one position, got %d", len(g.Coordinates))
		}
		return json.Marshal(pointJSON{Type: g.Type, Coordinates: g.Coordinates[0]})
	}
	return json.Marshal(lineJSON{Type: g.Type, Coordinates: g.Coordinates})
}

// UnmarshalJSON reads Point and LineString geometries.
func (g *Geometry) UnmarshalJSON(data []byte) error {
	var head struct {
		Type        string          `json:"type"`
		Coordinates json.RawMessage `json:"coordinates"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return err
	}

	g.Type = head.Type
	switch head.Type {
	case TypePoint:
		var pos [2]float64
		if err := json.Unmarshal(head.Coordinates, &pos); err != nil {
			return err
		}
		g.Coordinates = [][2]float64{pos}
	case TypeLineString:
		return json.Unmarshal(head.Coordinates, &g.Coordinates)
	default:
		return fmt.Errorf("geometry type %q: %w", head.Type, domain.ErrUnsupportedType)
	}
	return nil
}

// FromFeature converts one feature. index is its position in the document.
func FromFeature(index int, f domain.Feature) Feature {
	positions := make([][2]float64, len(f.Coordinates))
	for i, c := range f.Coordinates {
		positions[i] = [2]float64{c.Lng, c.Lat}
	}

	geomType := TypeLineString
	if f.Kind() == domain.KindPoint {
		geomType = TypePoint
	}

	return Feature{
		Type:     "Feature",
		Geometry: Geometry{Type: geomType, Coordinates: positions},
		Properties: Properties{
			Index:       index,
			Name:        f.Name,
			Description: f.Description,
			Attributes:  f.Attributes,
		},
	}
}

// FromDocument converts every feature of doc, keeping document order.
func FromDocument(doc *domain.Document) FeatureCollection {
	fc := FeatureCollection{
		Type:     "FeatureCollection",
		Center:   [2]float64{doc.Center.Lng, doc.Center.Lat},
		Features: make([]Feature, 0, len(doc.Features)),
	}
	for i, f := range doc.Features {
		fc.Features = append(fc.Features, FromFeature(i, f))
	}
	return fc
}
