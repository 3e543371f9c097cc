package heuristics

import (
	"regexp"

	"github.com/custodia-labs/kmlpser/internal/core/domain"
)

// Candidate attribute keys per field, most specific first. All lower case.
var (
	CodeKeys     = []string{"code", "project_code", "projectcode", "id", "project_id", "projectid", "pser_code"}
	LocationKeys = []string{"location", "address", "site", "area", "barangay", "municipality"}
	TypeKeys     = []string{"type", "project_type", "projecttype", "category", "work_type"}
	StatusKeys   = []string{"status", "project_status", "state", "phase"}
)

// codePattern finds code-like tokens in a feature name. Leftmost match wins.
var codePattern = regexp.MustCompile(`(?i)[A-Z]{2,}-\d+|PSER-\d+|\d{4,}`)

// ProjectCode resolves the project code: an exact code attribute, then a
// code-like token in the name, then the name itself, then "N/A".
func ProjectCode(f domain.Feature) string {
	if v, ok := LookupExact(f.Attributes, CodeKeys); ok {
		return v
	}
	if m := codePattern.FindString(f.Name); m != "" {
		return m
	}
	if f.Name != "" {
		return f.Name
	}
	return domain.NoCode
}

// Location resolves the location: an attribute whose key contains a
// location candidate, then the first coordinate, then the sentinel.
func Location(f domain.Feature) string {
	if v, ok := LookupContains(f.Attributes, LocationKeys); ok {
		return v
	}
	if len(f.Coordinates) > 0 {
		return f.Coordinates[0].String()
	}
	return domain.NoLocation
}

// ProjectType resolves the project type: an exact type attribute, then a
// geometry-based guess.
func ProjectType(f domain.Feature) string {
	if v, ok := LookupExact(f.Attributes, TypeKeys); ok {
		return v
	}
	if len(f.Coordinates) > 1 {
		return domain.LinearInfrastructure
	}
	return domain.PointInfrastructure
}

// Status resolves the status from an attribute whose key contains a
// status candidate.
func Status(f domain.Feature) string {
	if v, ok := LookupContains(f.Attributes, StatusKeys); ok {
		return v
	}
	return domain.NoStatus
}

// Description echoes the feature description or the sentinel.
func Description(f domain.Feature) string {
	if f.Description != "" {
		return f.Description
	}
	return domain.NoDescription
}
