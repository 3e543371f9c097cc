package api

import (
	"github.com/custodia-labs/kmlpser/internal/core/ports/driving"
)

// Ports aggregates the driving ports the HTTP API needs.
type Ports struct {
	// Parser turns uploaded markup into documents.
	Parser driving.ParserService

	// Documents looks up documents retained by the parser.
	Documents driving.DocumentService

	// Analyzer derives metadata for one feature.
	Analyzer driving.AnalyzerService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Parser == nil {
		return ErrMissingParserService
	}
	if p.Analyzer == nil {
		return ErrMissingAnalyzerService
	}
	if p.Documents == nil {
		return ErrMissingDocumentService
	}
	return nil
}
