package services

import (
	"context"

	"github.com/custodia-labs/kmlpser/internal/core/domain"
	"github.com/custodia-labs/kmlpser/internal/core/ports/driving"
	"github.com/custodia-labs/kmlpser/internal/geo"
	"github.com/custodia-labs/kmlpser/internal/heuristics"
	"github.com/custodia-labs/kmlpser/internal/logger"
	"github.com/custodia-labs/kmlpser/internal/metrics"
)

// Ensure AnalyzerService implements the interface.
var _ driving.AnalyzerService = (*AnalyzerService)(nil)

// AnalyzerService derives metadata for single features. It holds no state.
type AnalyzerService struct{}

// NewAnalyzerService creates an analyzer.
func NewAnalyzerService() *AnalyzerService {
	return &AnalyzerService{}
}

// Analyze validates req.Feature and derives its metadata.
func (s *AnalyzerService) Analyze(ctx context.Context, req domain.AnalyzeRequest) (*domain.AnalysisResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := Validate(req.Feature); err != nil {
		metrics.AnalysesTotal.WithLabelValues(metrics.OutcomeError).Inc()
		logger.Debug("Rejecting %q: %v", req.Feature.Name, err)
		return nil, err
	}

	result := heuristics.Derive(req.Feature)
	metrics.AnalysesTotal.WithLabelValues(metrics.OutcomeOK).Inc()
	logger.Debugw("analyzed feature",
		"name", req.Feature.Name,
		"code", result.ProjectCode,
		"kind", req.Feature.Kind(),
	)
	return &result, nil
}

// Validate reports whether f can be analysed.
func Validate(f domain.Feature) error {
	if len(f.Coordinates) == 0 {
		return &domain.AnalysisError{Reason: "feature has no coordinates"}
	}
	if !geo.Finite(f.Coordinates) {
		return &domain.AnalysisError{Reason: "feature has non-finite coordinates"}
	}
	return nil
}
