package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/kmlpser/internal/geojson"
)

const (
	// URIScheme is the custom URI scheme for kmlpser resources.
	uriScheme = "kmlpser://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Static resource for listing parsed documents.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "documents",
		Name:        "documents",
		Description: "Documents parsed in this session",
		MIMEType:    "application/json",
	}, s.handleDocumentsResource)

	// Template for a document as GeoJSON.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "documents/{documentId}/geojson",
		Name:        "document-geojson",
		Description: "Features of a parsed document as a GeoJSON FeatureCollection",
		MIMEType:    "application/geo+json",
	}, s.handleGeoJSONResource)
}

// handleDocumentsResource returns summaries of parsed documents.
func (s *Server) handleDocumentsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Documents == nil {
		return emptyList(req), nil
	}

	summaries, err := s.ports.Documents.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing documents: %w", err)
	}
	if summaries == nil {
		return emptyList(req), nil
	}

	data, err := json.MarshalIndent(summaries, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling documents: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

func emptyList(req *mcp.ReadResourceRequest) *mcp.ReadResourceResult {
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     "[]",
		}},
	}
}

// handleGeoJSONResource returns one document as GeoJSON.
func (s *Server) handleGeoJSONResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Documents == nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	// Extract documentId from URI: kmlpser://documents/{documentId}/geojson
	docID := extractDocumentID(req.Params.URI)
	if docID == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	doc, err := s.ports.Documents.Get(ctx, docID)
	if err != nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	data, err := json.Marshal(geojson.FromDocument(doc))
	if err != nil {
		return nil, fmt.Errorf("marshalling geojson: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/geo+json",
			Text:     string(data),
		}},
	}, nil
}

// extractDocumentID extracts the document ID from a URI like kmlpser://documents/{documentId}/geojson.
func extractDocumentID(uri string) string {
	const prefix = uriScheme + "documents/"
	const suffix = "/geojson"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	uri = strings.TrimPrefix(uri, prefix)
	if !strings.HasSuffix(uri, suffix) {
		return ""
	}

	id := strings.TrimSuffix(uri, suffix)
	if strings.Contains(id, "/") {
		return ""
	}
	return id
}
