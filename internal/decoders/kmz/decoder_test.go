package kmz

import (
	"archive/zip"
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/kmlpser/internal/core/domain"
)

// createTestKMZ creates a KMZ archive in memory with the given entries.
func createTestKMZ(t *testing.T, entries map[string]string, order ...string) []byte {
	t.Helper()
	buf := new(bytes.Buffer)
	w := zip.NewWriter(buf)
	for _, name := range order {
		f, err := w.Create(name)
		require.NoError(t, err)
		_, err = f.Write([]byte(entries[name]))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func kmlNamed(name string) string {
	return "<kml><Placemark><name>" + name + "</name><Point><coordinates>121,14</coordinates></Point></Placemark></kml>"
}

func TestSupportedMIMETypes(t *testing.T) {
	assert.Equal(t, []string{domain.MIMETypeKMZ}, New().SupportedMIMETypes())
}

func TestDecode_DocKMLPreferred(t *testing.T) {
	archive := createTestKMZ(t, map[string]string{
		"overlay.kml":  kmlNamed("overlay"),
		"doc.kml":      kmlNamed("main"),
		"images/a.png": "png",
	}, "overlay.kml", "images/a.png", "doc.kml")

	placemarks, err := New().Decode(context.Background(), &domain.RawDocument{Content: archive})
	require.NoError(t, err)
	require.Len(t, placemarks, 1)
	assert.Equal(t, "main", placemarks[0].Name)
}

func TestDecode_FirstKMLEntry(t *testing.T) {
	archive := createTestKMZ(t, map[string]string{
		"readme.txt": "hello",
		"lines.KML":  kmlNamed("lines"),
		"other.kml":  kmlNamed("other"),
	}, "readme.txt", "lines.KML", "other.kml")

	placemarks, err := New().Decode(context.Background(), &domain.RawDocument{Content: archive})
	require.NoError(t, err)
	require.Len(t, placemarks, 1)
	assert.Equal(t, "lines", placemarks[0].Name)
}

func TestDecode_Errors(t *testing.T) {
	t.Run("not a zip", func(t *testing.T) {
		_, err := New().Decode(context.Background(), &domain.RawDocument{Content: []byte("<kml/>")})
		assert.ErrorIs(t, err, domain.ErrParse)
	})

	t.Run("no kml entry", func(t *testing.T) {
		archive := createTestKMZ(t, map[string]string{"a.txt": "x"}, "a.txt")
		_, err := New().Decode(context.Background(), &domain.RawDocument{Content: archive})
		assert.ErrorIs(t, err, domain.ErrParse)
	})

	t.Run("malformed kml entry", func(t *testing.T) {
		archive := createTestKMZ(t, map[string]string{"doc.kml": "<kml>"}, "doc.kml")
		_, err := New().Decode(context.Background(), &domain.RawDocument{Content: archive})
		assert.ErrorIs(t, err, domain.ErrParse)
	})

	t.Run("nil", func(t *testing.T) {
		_, err := New().Decode(context.Background(), nil)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}
