package heuristics

import (
	"fmt"
	"strings"

	"github.com/custodia-labs/kmlpser/internal/core/domain"
)

// KeywordRule appends Sentence when the description contains Keyword.
type KeywordRule struct {
	Keyword  string
	Sentence string
}

// KeywordRules are evaluated top to bottom; only the first match applies.
var KeywordRules = []KeywordRule{
	{Keyword: "transmission", Sentence: "This appears to be a transmission line project."},
	{Keyword: "distribution", Sentence: "This appears to be a distribution line project."},
	{Keyword: "substation", Sentence: "This appears to be a substation project."},
	{Keyword: "tower", Sentence: "This appears to involve transmission towers."},
}

// MatchKeyword returns the sentence of the first rule whose keyword occurs
// in description, ignoring case.
func MatchKeyword(description string) (string, bool) {
	desc := strings.ToLower(description)
	for _, rule := range KeywordRules {
		if strings.Contains(desc, rule.Keyword) {
			return rule.Sentence, true
		}
	}
	return "", false
}

// Interpretation builds the narrative for f. lengthKm is only read for
// features with two or more coordinates.
func Interpretation(f domain.Feature, lengthKm float64) string {
	parts := []string{
		fmt.Sprintf("This is a PSER (Power Sector Engineering Resources) project feature named \"%s\".", f.Name),
	}

	if len(f.Coordinates) > 1 {
		parts = append(parts, fmt.Sprintf("It represents a linear structure spanning approximately %.2f km.", lengthKm))
	} else {
		parts = append(parts, "It represents a point location.")
	}

	if n := f.Attributes.Len(); n > 0 {
		parts = append(parts, fmt.Sprintf("The feature contains %d extended data attributes.", n))
	}

	if sentence, ok := MatchKeyword(f.Description); ok {
		parts = append(parts, sentence)
	}

	return strings.Join(parts, " ")
}
