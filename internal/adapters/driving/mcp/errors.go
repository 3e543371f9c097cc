// Package mcp provides an MCP (Model Context Protocol) server adapter for kmlpser.
// It lets AI assistants parse KML documents and analyze their features.
package mcp

import "errors"

var (
	// ErrMissingParserService is returned when the parser service is not provided.
	ErrMissingParserService = errors.New("mcp: parser service is required")

	// ErrMissingAnalyzerService is returned when the analyzer service is not provided.
	ErrMissingAnalyzerService = errors.New("mcp: analyzer service is required")

	// ErrNoFeature is returned when analyze_feature names neither a stored
	// feature nor an inline one.
	ErrNoFeature = errors.New("mcp: either document_id or feature is required")
)
