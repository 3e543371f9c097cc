package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestRawDocument_Fields tests RawDocument structure fields
func TestRawDocument_Fields(t *testing.T) {
	raw := RawDocument{
		URI:      "lines.kmz",
		MIMEType: MIMETypeKMZ,
		Content:  []byte("PK"),
	}

	assert.Equal(t, "lines.kmz", raw.URI)
	assert.Equal(t, "application/vnd.google-earth.kmz", raw.MIMEType)
	assert.Equal(t, []byte("PK"), raw.Content)
}

// TestRawDocument_ZeroValue tests the zero value carries no MIME type
func TestRawDocument_ZeroValue(t *testing.T) {
	var raw RawDocument
	assert.Empty(t, raw.MIMEType)
	assert.Nil(t, raw.Content)
}

func TestPlacemark_Data(t *testing.T) {
	pm := Placemark{
		Name: "Tower 7",
		Data: []DataEntry{
			{Key: "status", Value: "planned"},
			{Key: "status", Value: "ongoing"},
		},
	}

	assert.False(t, pm.HasCoordinates)
	assert.Len(t, pm.Data, 2)
	assert.Equal(t, "ongoing", pm.Data[1].Value)
}
