package mcp

import (
	"context"

	"github.com/custodia-labs/kmlpser/internal/core/domain"
)

// mockParserService is a mock implementation of driving.ParserService.
type mockParserService struct {
	doc *domain.Document
	err error
	raw domain.RawDocument
}

func (m *mockParserService) Parse(_ context.Context, raw domain.RawDocument) (*domain.Document, error) {
	m.raw = raw
	return m.doc, m.err
}

// mockAnalyzerService is a mock implementation of driving.AnalyzerService.
type mockAnalyzerService struct {
	result *domain.AnalysisResult
	err    error
	req    domain.AnalyzeRequest
}

func (m *mockAnalyzerService) Analyze(_ context.Context, req domain.AnalyzeRequest) (*domain.AnalysisResult, error) {
	m.req = req
	return m.result, m.err
}

// mockDocumentService is a mock implementation of driving.DocumentService.
type mockDocumentService struct {
	document  *domain.Document
	summaries []domain.DocumentSummary
	err       error
}

func (m *mockDocumentService) Get(_ context.Context, _ string) (*domain.Document, error) {
	if m.document == nil && m.err == nil {
		return nil, domain.ErrNotFound
	}
	return m.document, m.err
}

func (m *mockDocumentService) List(_ context.Context) ([]domain.DocumentSummary, error) {
	return m.summaries, m.err
}

func sampleDocument() *domain.Document {
	var attrs domain.Attributes
	attrs.Set("Project_Code", "PSER-1001")
	attrs.Set("Status", "Ongoing")

	return &domain.Document{
		ID:      "doc-1",
		URI:     "lines.kml",
		RawText: "<kml/>",
		Features: []domain.Feature{
			{
				Name:        "Tower 7",
				Coordinates: []domain.Coordinate{{Lat: 14.5, Lng: 121.0}},
				Attributes:  attrs,
			},
			{
				Name:        "Line ABC-4567",
				Coordinates: []domain.Coordinate{{Lat: 14.0, Lng: 120.0}, {Lat: 14.0, Lng: 121.0}},
			},
		},
		Diagnostics: domain.Diagnostics{Placemarks: 3, DroppedFeatures: 1},
	}
}
