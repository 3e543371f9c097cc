package domain

import "encoding/json"

// Sentinel values used when a field cannot be resolved.
const (
	NoCode               = "N/A"
	NoLocation           = "Location not specified"
	NoStatus             = "Status not specified"
	NoDescription        = "No description provided"
	LinearInfrastructure = "Linear infrastructure (Power line, Road, Pipeline, etc.)"
	PointInfrastructure  = "Point infrastructure"
)

// AnalyzeRequest is the analyzer input.
type AnalyzeRequest struct {
	Feature Feature `json:"feature"`

	// DocumentContext is the raw document text. Reserved; not read by the heuristics.
	DocumentContext string `json:"kmlContext,omitempty"`
}

// UnmarshalJSON accepts the context under either "kmlContext" or
// "documentContext". "documentContext" wins when both are set.
func (r *AnalyzeRequest) UnmarshalJSON(data []byte) error {
	var wire struct {
		Feature         Feature `json:"feature"`
		KMLContext      string  `json:"kmlContext"`
		DocumentContext string  `json:"documentContext"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}

	r.Feature = wire.Feature
	r.DocumentContext = wire.KMLContext
	if wire.DocumentContext != "" {
		r.DocumentContext = wire.DocumentContext
	}
	return nil
}

// AnalysisResult is the metadata derived for one feature.
// Every string field is always populated.
type AnalysisResult struct {
	ProjectCode    string     `json:"projectCode"`
	Location       string     `json:"location"`
	ProjectType    string     `json:"projectType"`
	Status         string     `json:"status"`
	Description    string     `json:"description"`
	AdditionalInfo Attributes `json:"additionalInfo"`
	Interpretation string     `json:"interpretation"`

	// LengthKm is the path length, set only for features with two or more coordinates.
	LengthKm *float64 `json:"lengthKm,omitempty"`
}
