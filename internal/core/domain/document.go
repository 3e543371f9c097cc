package domain

import "time"

// Diagnostics counts what the parser discarded while building a Document.
type Diagnostics struct {
	// Placemarks is the number of placemark elements found.
	Placemarks int `json:"placemarks" yaml:"placemarks"`

	// DroppedFeatures is the number of placemarks excluded for lack of coordinates.
	DroppedFeatures int `json:"droppedFeatures" yaml:"dropped_features"`

	// SkippedTokens is the number of malformed coordinate tokens ignored.
	SkippedTokens int `json:"skippedTokens" yaml:"skipped_tokens"`
}

// Bounds is the bounding box of a set of coordinates.
type Bounds struct {
	South float64 `json:"south"`
	West  float64 `json:"west"`
	North float64 `json:"north"`
	East  float64 `json:"east"`
}

// Center returns the midpoint of the box.
func (b Bounds) Center() Coordinate {
	return Coordinate{
		Lat: (b.South + b.North) / 2,
		Lng: (b.West + b.East) / 2,
	}
}

// Document is the result of parsing one file.
type Document struct {
	// ID is assigned by the parser.
	ID string `json:"documentId"`

	// URI is the file name or upload label.
	URI string `json:"uri"`

	// Features are in document order.
	Features []Feature `json:"features"`

	// RawText is the original document text, kept as analysis context.
	RawText string `json:"rawXml"`

	// Diagnostics describes discarded input.
	Diagnostics Diagnostics `json:"diagnostics"`

	// Bounds covers every feature coordinate. Nil when there are no features.
	Bounds *Bounds `json:"bounds"`

	// Center is the initial map view: the middle of Bounds, or a fixed
	// default when there are no features.
	Center Coordinate `json:"center"`

	// ParsedAt is when parsing finished.
	ParsedAt time.Time `json:"parsedAt"`
}

// Feature returns the feature at index.
func (d *Document) Feature(index int) (Feature, error) {
	if index < 0 || index >= len(d.Features) {
		return Feature{}, ErrNotFound
	}
	return d.Features[index], nil
}

// DocumentSummary is a lightweight listing entry for a stored document.
type DocumentSummary struct {
	ID       string    `json:"documentId"`
	URI      string    `json:"uri"`
	Features int       `json:"features"`
	ParsedAt time.Time `json:"parsedAt"`
}

// Summary returns the listing entry for the document.
func (d *Document) Summary() DocumentSummary {
	return DocumentSummary{
		ID:       d.ID,
		URI:      d.URI,
		Features: len(d.Features),
		ParsedAt: d.ParsedAt,
	}
}
