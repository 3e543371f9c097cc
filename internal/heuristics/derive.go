package heuristics

import (
	"github.com/custodia-labs/kmlpser/internal/core/domain"
	"github.com/custodia-labs/kmlpser/internal/geo"
)

// Derive computes the full analysis of f. It does not validate f;
// callers reject structurally invalid features first.
func Derive(f domain.Feature) domain.AnalysisResult {
	result := domain.AnalysisResult{
		ProjectCode:    ProjectCode(f),
		Location:       Location(f),
		ProjectType:    ProjectType(f),
		Status:         Status(f),
		Description:    Description(f),
		AdditionalInfo: f.Attributes.Clone(),
	}

	var length float64
	if len(f.Coordinates) > 1 {
		length = geo.PathLength(f.Coordinates)
		result.LengthKm = &length
	}
	result.Interpretation = Interpretation(f, length)

	return result
}
