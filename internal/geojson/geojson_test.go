package geojson

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/kmlpser/internal/core/domain"
)

func TestFromDocument(t *testing.T) {
	var attrs domain.Attributes
	attrs.Set("status", "energized")

	doc := &domain.Document{
		Center: domain.Coordinate{Lat: 14.5, Lng: 121.5},
		Features: []domain.Feature{
			{Name: "Pole", Coordinates: []domain.Coordinate{{Lat: 14.5995, Lng: 120.9842}}},
			{Name: "Line", Description: "69kV", Attributes: attrs, Coordinates: []domain.Coordinate{{Lat: 14, Lng: 121}, {Lat: 15, Lng: 122}}},
		},
	}

	data, err := json.Marshal(FromDocument(doc))
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"type": "FeatureCollection",
		"center": [121.5, 14.5],
		"features": [
			{
				"type": "Feature",
				"geometry": {"type": "Point", "coordinates": [120.9842, 14.5995]},
				"properties": {"index": 0, "name": "Pole", "attributes": {}}
			},
			{
				"type": "Feature",
				"geometry": {"type": "LineString", "coordinates": [[121, 14], [122, 15]]},
				"properties": {"index": 1, "name": "Line", "description": "69kV", "attributes": {"status": "energized"}}
			}
		]
	}`, string(data))
}

func TestFromDocument_Empty(t *testing.T) {
	doc := &domain.Document{Center: domain.Coordinate{Lat: 14.5995, Lng: 120.9842}}
	data, err := json.Marshal(FromDocument(doc))
	require.NoError(t, err)
	assert.JSONEq(t, `{"type": "FeatureCollection", "center": [120.9842, 14.5995], "features": []}`, string(data))
}

func TestGeometry_UnmarshalJSON(t *testing.T) {
	var point Geometry
	require.NoError(t, json.Unmarshal([]byte(`{"type":"Point","coordinates":[1,2]}`), &point))
	assert.Equal(t, Geometry{Type: TypePoint, Coordinates: [][2]float64{{1, 2}}}, point)

	var line Geometry
	require.NoError(t, json.Unmarshal([]byte(`{"type":"LineString","coordinates":[[1,2],[3,4]]}`), &line))
	assert.Len(t, line.Coordinates, 2)

	var polygon Geometry
	err := json.Unmarshal([]byte(`{"type":"Polygon","coordinates":[]}`), &polygon)
	assert.ErrorIs(t, err, domain.ErrUnsupportedType)
}

func TestGeometry_PointNeedsOnePosition(t *testing.T) {
	_, err := json.Marshal(Geometry{Type: TypePoint})
	assert.Error(t, err)
}
