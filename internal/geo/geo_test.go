package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/custodia-labs/kmlpser/internal/core/domain"
)

func TestHaversine(t *testing.T) {
	tests := []struct {
		name string
		a, b domain.Coordinate
		want float64
		tol  float64
	}{
		{"one degree of longitude at the equator", domain.Coordinate{Lat: 0, Lng: 0}, domain.Coordinate{Lat: 0, Lng: 1}, 111.19, 0.5},
		{"one degree of latitude", domain.Coordinate{Lat: 0, Lng: 0}, domain.Coordinate{Lat: 1, Lng: 0}, 111.19, 0.5},
		{"same point", domain.Coordinate{Lat: 14.5995, Lng: 120.9842}, domain.Coordinate{Lat: 14.5995, Lng: 120.9842}, 0, 1e-9},
		{"manila to cebu", domain.Coordinate{Lat: 14.5995, Lng: 120.9842}, domain.Coordinate{Lat: 10.3157, Lng: 123.8854}, 570, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Haversine(tt.a, tt.b), tt.tol)
		})
	}
}

func TestHaversine_Symmetric(t *testing.T) {
	a := domain.Coordinate{Lat: 14.5, Lng: 121}
	b := domain.Coordinate{Lat: 15.2, Lng: 120.4}
	assert.InDelta(t, Haversine(a, b), Haversine(b, a), 1e-9)
}

func TestPathLength(t *testing.T) {
	assert.Equal(t, 0.0, PathLength(nil))
	assert.Equal(t, 0.0, PathLength([]domain.Coordinate{{Lat: 1, Lng: 1}}))

	path := []domain.Coordinate{{Lat: 0, Lng: 0}, {Lat: 0, Lng: 1}, {Lat: 0, Lng: 2}}
	assert.InDelta(t, 222.39, PathLength(path), 1)
}

func TestParseCoordinates(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		want    []domain.Coordinate
		skipped int
	}{
		{
			name: "swaps lng,lat",
			text: "120.9842,14.5995,0",
			want: []domain.Coordinate{{Lat: 14.5995, Lng: 120.9842}},
		},
		{
			name: "multiple tokens across lines",
			text: "\n  121.0,14.5,0\n\t121.1,14.6 121.2,14.7,10\n",
			want: []domain.Coordinate{{Lat: 14.5, Lng: 121.0}, {Lat: 14.6, Lng: 121.1}, {Lat: 14.7, Lng: 121.2}},
		},
		{
			name:    "single component token skipped",
			text:    "121.0 121.1,14.6",
			want:    []domain.Coordinate{{Lat: 14.6, Lng: 121.1}},
			skipped: 1,
		},
		{
			name:    "non numeric skipped",
			text:    "abc,14.6 121.1,xyz",
			skipped: 2,
		},
		{
			name:    "out of range skipped",
			text:    "200,10 10,95 10,10",
			want:    []domain.Coordinate{{Lat: 10, Lng: 10}},
			skipped: 2,
		},
		{
			name:    "nan skipped",
			text:    "NaN,1",
			skipped: 1,
		},
		{
			name: "empty",
			text: "   ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, skipped := ParseCoordinates(tt.text)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.skipped, skipped)
		})
	}
}

func TestBoundsOf(t *testing.T) {
	_, ok := BoundsOf(nil)
	assert.False(t, ok)

	features := []domain.Feature{
		{Coordinates: []domain.Coordinate{{Lat: 14, Lng: 121}}},
		{Coordinates: []domain.Coordinate{{Lat: 10, Lng: 123}, {Lat: 16, Lng: 120}}},
	}
	b, ok := BoundsOf(features)
	assert.True(t, ok)
	assert.Equal(t, domain.Bounds{South: 10, West: 120, North: 16, East: 123}, b)
}

func TestCenter(t *testing.T) {
	assert.Equal(t, DefaultCenter, Center(nil))

	features := []domain.Feature{{Coordinates: []domain.Coordinate{{Lat: 10, Lng: 120}, {Lat: 12, Lng: 122}}}}
	assert.Equal(t, domain.Coordinate{Lat: 11, Lng: 121}, Center(features))
}
