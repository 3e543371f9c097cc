package driving

import (
	"context"

	"github.com/custodia-labs/kmlpser/internal/core/domain"
)

// AnalyzerService derives metadata for a single feature.
type AnalyzerService interface {
	// Analyze returns the analysis for req.Feature.
	// Returns a *domain.AnalysisError when the feature is structurally invalid.
	// Unresolved fields are filled with sentinels and never cause an error.
	Analyze(ctx context.Context, req domain.AnalyzeRequest) (*domain.AnalysisResult, error)
}
