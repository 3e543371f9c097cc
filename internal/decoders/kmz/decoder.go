// Package kmz decodes KMZ archives: a zip file holding a KML document
// (conventionally doc.kml) and optional resources.
package kmz

import (
	"archive/zip"
	"bytes"
	"context"
	"io"
	"path"
	"strings"

	"github.com/custodia-labs/kmlpser/internal/core/domain"
	"github.com/custodia-labs/kmlpser/internal/core/ports/driven"
	"github.com/custodia-labs/kmlpser/internal/decoders/kml"
)

// Ensure Decoder implements the interface.
var _ driven.Decoder = (*Decoder)(nil)

// mainEntry is the conventional name of the root KML document.
const mainEntry = "doc.kml"

// maxEntrySize bounds the decompressed size of the KML entry.
const maxEntrySize = 256 << 20

// Decoder handles KMZ archives.
type Decoder struct{}

// New creates a new KMZ decoder.
func New() *Decoder {
	return &Decoder{}
}

// SupportedMIMETypes returns the MIME types this decoder handles.
func (d *Decoder) SupportedMIMETypes() []string {
	return []string{domain.MIMETypeKMZ}
}

// Priority returns the selection priority.
func (d *Decoder) Priority() int {
	return 50
}

// Decode opens the archive and decodes its main KML entry.
func (d *Decoder) Decode(ctx context.Context, raw *domain.RawDocument) ([]domain.Placemark, error) {
	if raw == nil {
		return nil, domain.ErrInvalidInput
	}

	content, err := ExtractKML(raw.Content)
	if err != nil {
		return nil, err
	}
	return kml.DecodeBytes(ctx, content)
}

// ExtractKML returns the bytes of doc.kml, or else of the first *.kml entry.
func ExtractKML(archive []byte) ([]byte, error) {
	reader, err := zip.NewReader(bytes.NewReader(archive), int64(len(archive)))
	if err != nil {
		return nil, &domain.ParseError{Reason: "not a KMZ archive", Err: err}
	}

	entry := findEntry(reader.File)
	if entry == nil {
		return nil, &domain.ParseError{Reason: "KMZ archive contains no KML document"}
	}

	rc, err := entry.Open()
	if err != nil {
		return nil, &domain.ParseError{Reason: "open " + entry.Name, Err: err}
	}
	defer rc.Close()

	content, err := io.ReadAll(io.LimitReader(rc, maxEntrySize+1))
	if err != nil {
		return nil, &domain.ParseError{Reason: "read " + entry.Name, Err: err}
	}
	if len(content) > maxEntrySize {
		return nil, &domain.ParseError{Reason: entry.Name + " exceeds size limit"}
	}
	return content, nil
}

func findEntry(files []*zip.File) *zip.File {
	var first *zip.File
	for _, f := range files {
		if f.FileInfo().IsDir() || !strings.EqualFold(path.Ext(f.Name), ".kml") {
			continue
		}
		if strings.EqualFold(path.Base(f.Name), mainEntry) {
			return f
		}
		if first == nil {
			first = f
		}
	}
	return first
}
