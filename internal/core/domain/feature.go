package domain

// FeatureKind classifies a feature's geometry.
type FeatureKind string

const (
	// KindPoint is a feature with a single coordinate pair.
	KindPoint FeatureKind = "point"

	// KindLine is a feature with two or more coordinate pairs.
	KindLine FeatureKind = "line"
)

// Feature is one parsed geographic element.
// Features are built once by the parser and never mutated afterwards.
type Feature struct {
	// Name is the source name, or "Feature {n}" when the source had none.
	Name string `json:"name"`

	// Description may be empty.
	Description string `json:"description"`

	// Coordinates are (lat, lng) pairs in source order.
	Coordinates []Coordinate `json:"coordinates"`

	// Attributes holds structured-data entries.
	Attributes Attributes `json:"extendedData"`

	// RawMarkup is the source fragment of the placemark.
	RawMarkup string `json:"rawXml"`
}

// Kind returns KindLine for more than one coordinate and KindPoint otherwise.
func (f Feature) Kind() FeatureKind {
	if len(f.Coordinates) > 1 {
		return KindLine
	}
	return KindPoint
}
