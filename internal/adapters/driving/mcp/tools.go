package mcp

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/kmlpser/internal/core/domain"
)

// ParseInput is the input schema for the parse_kml tool.
type ParseInput struct {
	Content string `json:"content" jsonschema:"the KML markup, or base64 KMZ bytes when format is kmz"`
	URI     string `json:"uri,omitempty" jsonschema:"a label for the document such as its file name"`
	Format  string `json:"format,omitempty" jsonschema:"kml (default) or kmz"`
}

// ParseOutput is the output schema for the parse_kml tool.
type ParseOutput struct {
	DocumentID    string           `json:"document_id"`
	URI           string           `json:"uri"`
	Count         int              `json:"count"`
	Features      []FeatureSummary `json:"features"`
	Placemarks    int              `json:"placemarks"`
	Dropped       int              `json:"dropped"`
	SkippedTokens int              `json:"skipped_tokens"`
}

// FeatureSummary describes one parsed feature.
type FeatureSummary struct {
	Index       int    `json:"index"`
	Name        string `json:"name"`
	Kind        string `json:"kind"`
	Coordinates int    `json:"coordinates"`
	Attributes  int    `json:"attributes"`
}

// AttributeValue is one ordered attribute entry.
type AttributeValue struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// FeatureInput is an inline feature for analyze_feature.
type FeatureInput struct {
	Name        string           `json:"name"`
	Description string           `json:"description,omitempty"`
	Coordinates [][]float64      `json:"coordinates" jsonschema:"[lat, lng] pairs in path order"`
	Attributes  []AttributeValue `json:"attributes,omitempty" jsonschema:"extended data in document order"`
}

// AnalyzeInput is the input schema for the analyze_feature tool.
type AnalyzeInput struct {
	DocumentID      string        `json:"document_id,omitempty" jsonschema:"a document returned by parse_kml"`
	Index           int           `json:"index,omitempty" jsonschema:"0-based feature index within the document"`
	Feature         *FeatureInput `json:"feature,omitempty" jsonschema:"an inline feature, used when document_id is empty"`
	DocumentContext string        `json:"document_context,omitempty" jsonschema:"raw document text for the inline feature"`
}

// AnalyzeOutput is the output schema for the analyze_feature tool.
type AnalyzeOutput struct {
	ProjectCode    string           `json:"project_code"`
	Location       string           `json:"location"`
	ProjectType    string           `json:"project_type"`
	Status         string           `json:"status"`
	Description    string           `json:"description"`
	AdditionalInfo []AttributeValue `json:"additional_info"`
	Interpretation string           `json:"interpretation"`
	LengthKm       *float64         `json:"length_km,omitempty"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "parse_kml",
		Description: "Parse a KML or KMZ document into features",
	}, s.handleParse)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "analyze_feature",
		Description: "Derive project code, location, type, status and an interpretation for one feature",
	}, s.handleAnalyze)
}

// handleParse handles the parse_kml tool invocation.
func (s *Server) handleParse(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ParseInput,
) (*mcp.CallToolResult, ParseOutput, error) {
	raw := domain.RawDocument{
		URI:      input.URI,
		MIMEType: domain.MIMETypeKML,
		Content:  []byte(input.Content),
	}
	if raw.URI == "" {
		raw.URI = "mcp"
	}

	switch strings.ToLower(input.Format) {
	case "", "kml":
	case "kmz":
		archive, err := base64.StdEncoding.DecodeString(input.Content)
		if err != nil {
			return nil, ParseOutput{}, fmt.Errorf("kmz content must be base64: %w", domain.ErrInvalidInput)
		}
		raw.MIMEType = domain.MIMETypeKMZ
		raw.Content = archive
	default:
		return nil, ParseOutput{}, fmt.Errorf("format %q: %w", input.Format, domain.ErrUnsupportedType)
	}

	doc, err := s.ports.Parser.Parse(ctx, raw)
	if err != nil {
		return nil, ParseOutput{}, err
	}

	output := ParseOutput{
		DocumentID:    doc.ID,
		URI:           doc.URI,
		Count:         len(doc.Features),
		Features:      make([]FeatureSummary, len(doc.Features)),
		Placemarks:    doc.Diagnostics.Placemarks,
		Dropped:       doc.Diagnostics.DroppedFeatures,
		SkippedTokens: doc.Diagnostics.SkippedTokens,
	}
	for i, f := range doc.Features {
		output.Features[i] = FeatureSummary{
			Index:       i,
			Name:        f.Name,
			Kind:        string(f.Kind()),
			Coordinates: len(f.Coordinates),
			Attributes:  f.Attributes.Len(),
		}
	}

	return nil, output, nil
}

// handleAnalyze handles the analyze_feature tool invocation.
func (s *Server) handleAnalyze(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input AnalyzeInput,
) (*mcp.CallToolResult, AnalyzeOutput, error) {
	req, err := s.analyzeRequest(ctx, input)
	if err != nil {
		return nil, AnalyzeOutput{}, err
	}

	result, err := s.ports.Analyzer.Analyze(ctx, req)
	if err != nil {
		return nil, AnalyzeOutput{}, err
	}

	output := AnalyzeOutput{
		ProjectCode:    result.ProjectCode,
		Location:       result.Location,
		ProjectType:    result.ProjectType,
		Status:         result.Status,
		Description:    result.Description,
		AdditionalInfo: make([]AttributeValue, 0, result.AdditionalInfo.Len()),
		Interpretation: result.Interpretation,
		LengthKm:       result.LengthKm,
	}
	for _, a := range result.AdditionalInfo.Entries() {
		output.AdditionalInfo = append(output.AdditionalInfo, AttributeValue{Key: a.Key, Value: a.Value})
	}

	return nil, output, nil
}

// analyzeRequest resolves the feature named by input.
func (s *Server) analyzeRequest(ctx context.Context, input AnalyzeInput) (domain.AnalyzeRequest, error) {
	if input.DocumentID != "" {
		if s.ports.Documents == nil {
			return domain.AnalyzeRequest{}, fmt.Errorf("document %s: %w", input.DocumentID, domain.ErrNotFound)
		}
		doc, err := s.ports.Documents.Get(ctx, input.DocumentID)
		if err != nil {
			return domain.AnalyzeRequest{}, fmt.Errorf("document %s: %w", input.DocumentID, err)
		}
		feature, err := doc.Feature(input.Index)
		if err != nil {
			return domain.AnalyzeRequest{}, fmt.Errorf("feature %d: %w", input.Index, err)
		}
		return domain.AnalyzeRequest{Feature: feature, DocumentContext: doc.RawText}, nil
	}

	if input.Feature == nil {
		return domain.AnalyzeRequest{}, ErrNoFeature
	}

	feature, err := input.Feature.toDomain()
	if err != nil {
		return domain.AnalyzeRequest{}, err
	}
	return domain.AnalyzeRequest{Feature: feature, DocumentContext: input.DocumentContext}, nil
}

// toDomain converts an inline feature. Altitude values are ignored.
func (f *FeatureInput) toDomain() (domain.Feature, error) {
	feature := domain.Feature{
		Name:        f.Name,
		Description: f.Description,
		Coordinates: make([]domain.Coordinate, 0, len(f.Coordinates)),
	}
	for i, pair := range f.Coordinates {
		if len(pair) < 2 {
			return domain.Feature{}, fmt.Errorf("coordinate %d needs [lat, lng]: %w", i, domain.ErrInvalidInput)
		}
		feature.Coordinates = append(feature.Coordinates, domain.Coordinate{Lat: pair[0], Lng: pair[1]})
	}
	for _, a := range f.Attributes {
		feature.Attributes.Set(a.Key, a.Value)
	}
	return feature, nil
}
