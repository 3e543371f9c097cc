package mcp

import (
	"github.com/custodia-labs/kmlpser/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Parser turns markup into documents.
	Parser driving.ParserService

	// Analyzer derives metadata for one feature.
	Analyzer driving.AnalyzerService

	// Documents looks up parsed documents.
	Documents driving.DocumentService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Parser == nil {
		return ErrMissingParserService
	}
	if p.Analyzer == nil {
		return ErrMissingAnalyzerService
	}
	// Documents is optional; without it stored lookups and resources are empty
	return nil
}
