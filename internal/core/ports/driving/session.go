package driving

import (
	"context"

	"github.com/custodia-labs/kmlpser/internal/core/domain"
)

// SessionService holds the state of a single interactive user:
// the loaded document, the selected feature and its analysis.
type SessionService interface {
	// Load parses raw and replaces the current document, clearing the selection.
	// On failure the previous state is kept.
	Load(ctx context.Context, raw domain.RawDocument) (*domain.Document, error)

	// Select analyzes the feature at index and makes it current.
	// On failure the previous selection and analysis are kept.
	Select(ctx context.Context, index int) (*domain.AnalysisResult, error)

	// Current returns a snapshot of the session.
	Current() SessionState
}

// SessionState is a point-in-time copy of a session.
type SessionState struct {
	// Document is nil before the first successful Load.
	Document *domain.Document

	// Selected is the selected feature index, or -1.
	Selected int

	// Analysis is the analysis of the selected feature, or nil.
	Analysis *domain.AnalysisResult
}
