package services

import (
	"context"
	"errors"
	"sync"

	"github.com/custodia-labs/kmlpser/internal/core/domain"
	"github.com/custodia-labs/kmlpser/internal/core/ports/driven"
)

// mockDecoder implements driven.Decoder for testing.
type mockDecoder struct {
	mimeTypes  []string
	priority   int
	placemarks []domain.Placemark
	err        error

	mu    sync.Mutex
	calls int
}

var _ driven.Decoder = (*mockDecoder)(nil)

func (m *mockDecoder) SupportedMIMETypes() []string { return m.mimeTypes }
func (m *mockDecoder) Priority() int                { return m.priority }

func (m *mockDecoder) Decode(_ context.Context, _ *domain.RawDocument) ([]domain.Placemark, error) {
	m.mu.Lock()
	m.calls++
	m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	return m.placemarks, nil
}

// mockAnalyzer implements driving.AnalyzerService for testing.
type mockAnalyzer struct {
	err error
}

func (m *mockAnalyzer) Analyze(_ context.Context, req domain.AnalyzeRequest) (*domain.AnalysisResult, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &domain.AnalysisResult{ProjectCode: req.Feature.Name}, nil
}

// failingStore implements driven.DocumentStore and fails every save.
type failingStore struct{}

var errStoreDown = errors.New("store down")

func (failingStore) SaveDocument(context.Context, *domain.Document) error { return errStoreDown }
func (failingStore) GetDocument(context.Context, string) (*domain.Document, error) {
	return nil, domain.ErrNotFound
}
func (failingStore) DeleteDocument(context.Context, string) error { return nil }
func (failingStore) ListDocuments(context.Context) ([]domain.DocumentSummary, error) {
	return nil, nil
}

func point(lng, lat string) domain.Placemark {
	return domain.Placemark{Coordinates: lng + "," + lat, HasCoordinates: true}
}
