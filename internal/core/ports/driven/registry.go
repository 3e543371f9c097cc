package driven

import (
	"context"

	"github.com/custodia-labs/kmlpser/internal/core/domain"
)

// DecoderRegistry selects the appropriate decoder for a document.
// It maintains a priority-ordered list of decoders and dispatches
// based on MIME type.
type DecoderRegistry interface {
	// Decode extracts placemarks using the best matching decoder.
	// An empty MIME type is treated as KML.
	Decode(ctx context.Context, raw *domain.RawDocument) ([]domain.Placemark, error)

	// Register adds a decoder to the registry.
	Register(decoder Decoder)

	// SupportedMIMETypes returns all MIME types that can be decoded.
	SupportedMIMETypes() []string
}
