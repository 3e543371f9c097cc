package driven

import (
	"context"

	"github.com/custodia-labs/kmlpser/internal/core/domain"
)

// Decoder extracts placemarks from one markup format.
// Each decoder handles specific MIME types (e.g., KML, KMZ).
type Decoder interface {
	// SupportedMIMETypes returns the MIME types this decoder handles.
	SupportedMIMETypes() []string

	// Priority returns the selection priority (higher = preferred).
	// Format decoders should return 50-89.
	// Fallback decoders should return 1-9.
	Priority() int

	// Decode returns every placemark in document order.
	// Input that is not well-formed markup yields a *domain.ParseError
	// and no placemarks.
	Decode(ctx context.Context, raw *domain.RawDocument) ([]domain.Placemark, error)
}
