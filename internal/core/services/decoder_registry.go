package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/custodia-labs/kmlpser/internal/core/domain"
	"github.com/custodia-labs/kmlpser/internal/core/ports/driven"
)

// Ensure DecoderRegistry implements the interface.
var _ driven.DecoderRegistry = (*DecoderRegistry)(nil)

// DecoderRegistry dispatches raw documents to the highest-priority
// decoder registered for their MIME type.
type DecoderRegistry struct {
	mu       sync.RWMutex
	decoders []driven.Decoder
}

// NewDecoderRegistry creates a registry holding the given decoders.
func NewDecoderRegistry(decoders ...driven.Decoder) *DecoderRegistry {
	r := &DecoderRegistry{}
	for _, d := range decoders {
		r.Register(d)
	}
	return r
}

// Register adds a decoder to the registry.
func (r *DecoderRegistry) Register(decoder driven.Decoder) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.decoders = append(r.decoders, decoder)
	sort.SliceStable(r.decoders, func(i, j int) bool {
		return r.decoders[i].Priority() > r.decoders[j].Priority()
	})
}

// SupportedMIMETypes returns all MIME types that can be decoded, sorted.
func (r *DecoderRegistry) SupportedMIMETypes() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[string]bool)
	var types []string
	for _, d := range r.decoders {
		for _, mt := range d.SupportedMIMETypes() {
			if !seen[mt] {
				seen[mt] = true
				types = append(types, mt)
			}
		}
	}
	sort.Strings(types)
	return types
}

// Decode extracts placemarks using the best matching decoder.
func (r *DecoderRegistry) Decode(ctx context.Context, raw *domain.RawDocument) ([]domain.Placemark, error) {
	if raw == nil {
		return nil, domain.ErrInvalidInput
	}

	mimeType := NormaliseMIMEType(raw.MIMEType)
	decoder := r.lookup(mimeType)
	if decoder == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedType, mimeType)
	}
	return decoder.Decode(ctx, raw)
}

func (r *DecoderRegistry) lookup(mimeType string) driven.Decoder {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, d := range r.decoders {
		for _, mt := range d.SupportedMIMETypes() {
			if mt == mimeType {
				return d
			}
		}
	}
	return nil
}

// NormaliseMIMEType strips parameters and lower-cases a MIME type.
// An empty MIME type means KML.
func NormaliseMIMEType(mimeType string) string {
	if i := strings.IndexByte(mimeType, ';'); i >= 0 {
		mimeType = mimeType[:i]
	}
	mimeType = strings.ToLower(strings.TrimSpace(mimeType))
	if mimeType == "" {
		return domain.MIMETypeKML
	}
	return mimeType
}

// MIMETypeForPath guesses a MIME type from a file extension.
func MIMETypeForPath(path string) string {
	lower := strings.ToLower(path)
	switch {
	case strings.HasSuffix(lower, ".kmz"):
		return domain.MIMETypeKMZ
	default:
		return domain.MIMETypeKML
	}
}
