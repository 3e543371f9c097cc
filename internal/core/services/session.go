package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/custodia-labs/kmlpser/internal/core/domain"
	"github.com/custodia-labs/kmlpser/internal/core/ports/driving"
)

// Ensure SessionService implements the interface.
var _ driving.SessionService = (*SessionService)(nil)

// SessionService tracks one user's loaded document and selection.
type SessionService struct {
	parser   driving.ParserService
	analyzer driving.AnalyzerService

	mu       sync.Mutex
	document *domain.Document
	selected int
	analysis *domain.AnalysisResult
}

// NewSessionService creates an empty session.
func NewSessionService(parser driving.ParserService, analyzer driving.AnalyzerService) *SessionService {
	return &SessionService{
		parser:   parser,
		analyzer: analyzer,
		selected: -1,
	}
}

// Load parses raw and makes it the current document.
func (s *SessionService) Load(ctx context.Context, raw domain.RawDocument) (*domain.Document, error) {
	doc, err := s.parser.Parse(ctx, raw)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.document = doc
	s.selected = -1
	s.analysis = nil
	return doc, nil
}

// Select analyzes the feature at index and makes it current.
func (s *SessionService) Select(ctx context.Context, index int) (*domain.AnalysisResult, error) {
	s.mu.Lock()
	doc := s.document
	s.mu.Unlock()

	if doc == nil {
		return nil, domain.ErrNoDocument
	}
	feature, err := doc.Feature(index)
	if err != nil {
		return nil, fmt.Errorf("feature %d: %w", index, err)
	}

	result, err := s.analyzer.Analyze(ctx, domain.AnalyzeRequest{
		Feature:         feature,
		DocumentContext: doc.RawText,
	})
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.document != doc {
		// A Load raced with this selection; the result belongs to a stale document.
		return result, nil
	}
	s.selected = index
	s.analysis = result
	return result, nil
}

// Current returns a snapshot of the session.
func (s *SessionService) Current() driving.SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return driving.SessionState{
		Document: s.document,
		Selected: s.selected,
		Analysis: s.analysis,
	}
}
