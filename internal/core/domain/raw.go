package domain

// MIME types understood by the bundled decoders.
const (
	// MIMETypeKML is plain KML markup.
	MIMETypeKML = "application/vnd.google-earth.kml+xml"

	// MIMETypeKMZ is a zip archive containing KML markup.
	MIMETypeKMZ = "application/vnd.google-earth.kmz"
)

// RawDocument represents opaque bytes supplied by a caller.
// It is the decoder's input before placemarks are extracted.
type RawDocument struct {
	// URI is the original location (file path, upload name, etc).
	URI string

	// MIMEType is the content type. Empty means KML.
	MIMEType string

	// Content is the raw bytes.
	Content []byte
}

// DataEntry is one structured-data key/value pair found under a placemark.
type DataEntry struct {
	Key   string
	Value string
}

// Placemark is a decoded placemark element before feature construction.
// Decoders fill it; the parser service turns it into a Feature.
type Placemark struct {
	// Name is the text of the first name element, possibly empty.
	Name string

	// Description is the text of the first description element, possibly empty.
	Description string

	// Coordinates is the raw text of the first coordinates element.
	Coordinates string

	// HasCoordinates is false when no coordinates element exists.
	HasCoordinates bool

	// Data holds structured-data entries in document order.
	Data []DataEntry

	// Markup is the serialised source fragment of the element.
	Markup string
}
