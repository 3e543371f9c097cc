package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/kmlpser/internal/core/domain"
	"github.com/custodia-labs/kmlpser/internal/core/ports/driven"
	"github.com/custodia-labs/kmlpser/internal/core/ports/driving"
	"github.com/custodia-labs/kmlpser/internal/geo"
	"github.com/custodia-labs/kmlpser/internal/logger"
	"github.com/custodia-labs/kmlpser/internal/metrics"
)

// Ensure ParserService implements the interfaces.
var (
	_ driving.ParserService   = (*ParserService)(nil)
	_ driving.DocumentService = (*ParserService)(nil)
)

// ParserService builds documents from markup and optionally retains them.
type ParserService struct {
	registry driven.DecoderRegistry
	store    driven.DocumentStore
	now      func() time.Time
}

// NewParserService creates a parser. store may be nil.
func NewParserService(registry driven.DecoderRegistry, store driven.DocumentStore) *ParserService {
	return &ParserService{
		registry: registry,
		store:    store,
		now:      time.Now,
	}
}

// Parse decodes raw and builds its features.
func (s *ParserService) Parse(ctx context.Context, raw domain.RawDocument) (*domain.Document, error) {
	doc, err := s.parse(ctx, raw)
	metrics.DocumentsParsedTotal.WithLabelValues(metrics.Outcome(err)).Inc()
	if err != nil {
		return nil, err
	}

	metrics.FeaturesParsedTotal.Add(float64(len(doc.Features)))
	metrics.FeaturesDroppedTotal.Add(float64(doc.Diagnostics.DroppedFeatures))
	metrics.CoordinateTokensSkippedTotal.Add(float64(doc.Diagnostics.SkippedTokens))

	if s.store != nil {
		if err := s.store.SaveDocument(ctx, doc); err != nil {
			return nil, fmt.Errorf("save document: %w", err)
		}
	}
	return doc, nil
}

func (s *ParserService) parse(ctx context.Context, raw domain.RawDocument) (*domain.Document, error) {
	logger.Section("Parse")
	logger.Debug("Decoding %s (%d bytes, %s)", raw.URI, len(raw.Content), NormaliseMIMEType(raw.MIMEType))

	placemarks, err := s.registry.Decode(ctx, &raw)
	if err != nil {
		var pe *domain.ParseError
		if errors.As(err, &pe) || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}
		return nil, &domain.ParseError{Reason: "decode", Err: err}
	}

	features, diag := BuildFeatures(placemarks)

	doc := &domain.Document{
		ID:          uuid.New().String(),
		URI:         raw.URI,
		Features:    features,
		Diagnostics: diag,
		ParsedAt:    s.now(),
	}
	// KMZ content is an archive, not markup.
	if NormaliseMIMEType(raw.MIMEType) != domain.MIMETypeKMZ {
		doc.RawText = string(raw.Content)
	}
	if b, ok := geo.BoundsOf(features); ok {
		doc.Bounds = &b
	}
	doc.Center = geo.Center(features)

	logger.Debugw("parsed document",
		"id", doc.ID,
		"placemarks", diag.Placemarks,
		"features", len(features),
		"dropped", diag.DroppedFeatures,
		"skipped_tokens", diag.SkippedTokens,
	)
	return doc, nil
}

// BuildFeatures turns placemarks into features in order. Placemarks whose
// coordinate block is missing or yields no valid pair are dropped.
func BuildFeatures(placemarks []domain.Placemark) ([]domain.Feature, domain.Diagnostics) {
	diag := domain.Diagnostics{Placemarks: len(placemarks)}
	features := make([]domain.Feature, 0, len(placemarks))

	for i, pm := range placemarks {
		name := strings.TrimSpace(pm.Name)
		if name == "" {
			name = "Feature " + strconv.Itoa(i+1)
		}

		var coords []domain.Coordinate
		if pm.HasCoordinates {
			var skipped int
			coords, skipped = geo.ParseCoordinates(pm.Coordinates)
			diag.SkippedTokens += skipped
		}
		if len(coords) == 0 {
			diag.DroppedFeatures++
			logger.Debug("Dropping %q: no coordinates", name)
			continue
		}

		var attrs domain.Attributes
		for _, entry := range pm.Data {
			attrs.Set(entry.Key, entry.Value)
		}

		features = append(features, domain.Feature{
			Name:        name,
			Description: strings.TrimSpace(pm.Description),
			Coordinates: coords,
			Attributes:  attrs,
			RawMarkup:   pm.Markup,
		})
	}
	return features, diag
}

// Get retrieves a retained document by ID.
func (s *ParserService) Get(ctx context.Context, documentID string) (*domain.Document, error) {
	if s.store == nil {
		return nil, domain.ErrNotFound
	}
	return s.store.GetDocument(ctx, documentID)
}

// List returns summaries of retained documents.
func (s *ParserService) List(ctx context.Context) ([]domain.DocumentSummary, error) {
	if s.store == nil {
		return nil, nil
	}
	return s.store.ListDocuments(ctx)
}
