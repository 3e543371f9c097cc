package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/custodia-labs/kmlpser/internal/core/domain"
	"github.com/custodia-labs/kmlpser/internal/core/services"
)

// loadFile reads and parses one KML or KMZ file.
func loadFile(ctx context.Context, path string) (*domain.Document, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return parserService.Parse(ctx, rawDocument(path, content))
}

func rawDocument(path string, content []byte) domain.RawDocument {
	return domain.RawDocument{
		URI:      path,
		MIMEType: services.MIMETypeForPath(path),
		Content:  content,
	}
}

// featureView is the YAML form of a feature. Coordinates are [lat, lng].
type featureView struct {
	Index       int          `yaml:"index"`
	Name        string       `yaml:"name"`
	Kind        string       `yaml:"kind"`
	Description string       `yaml:"description,omitempty"`
	Coordinates [][2]float64 `yaml:"coordinates,flow"`
	Attributes  *yaml.Node   `yaml:"attributes"`
}

// documentView is the YAML form of a document.
type documentView struct {
	DocumentID  string             `yaml:"document_id"`
	URI         string             `yaml:"uri"`
	Diagnostics domain.Diagnostics `yaml:"diagnostics"`
	Features    []featureView      `yaml:"features"`
}

// analysisView is the YAML form of an analysis.
type analysisView struct {
	ProjectCode    string     `yaml:"project_code"`
	Location       string     `yaml:"location"`
	ProjectType    string     `yaml:"project_type"`
	Status         string     `yaml:"status"`
	Description    string     `yaml:"description"`
	AdditionalInfo *yaml.Node `yaml:"additional_info"`
	Interpretation string     `yaml:"interpretation"`
	LengthKm       *float64   `yaml:"length_km,omitempty"`
}

func newDocumentView(doc *domain.Document) documentView {
	view := documentView{
		DocumentID:  doc.ID,
		URI:         doc.URI,
		Diagnostics: doc.Diagnostics,
		Features:    make([]featureView, len(doc.Features)),
	}
	for i, f := range doc.Features {
		coords := make([][2]float64, len(f.Coordinates))
		for j, c := range f.Coordinates {
			coords[j] = [2]float64{c.Lat, c.Lng}
		}
		view.Features[i] = featureView{
			Index:       i,
			Name:        f.Name,
			Kind:        string(f.Kind()),
			Description: f.Description,
			Coordinates: coords,
			Attributes:  attributesNode(f.Attributes),
		}
	}
	return view
}

func newAnalysisView(r *domain.AnalysisResult) analysisView {
	return analysisView{
		ProjectCode:    r.ProjectCode,
		Location:       r.Location,
		ProjectType:    r.ProjectType,
		Status:         r.Status,
		Description:    r.Description,
		AdditionalInfo: attributesNode(r.AdditionalInfo),
		Interpretation: r.Interpretation,
		LengthKm:       r.LengthKm,
	}
}

// attributesNode builds a YAML mapping that keeps insertion order.
func attributesNode(attrs domain.Attributes) *yaml.Node {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, a := range attrs.Entries() {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: a.Key},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: a.Value},
		)
	}
	return node
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	return nil
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to marshal YAML: %w", err)
	}
	return enc.Close()
}
