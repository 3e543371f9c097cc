// Package api serves the parser and analyzer over HTTP.
package api

import "errors"

var (
	// ErrMissingParserService is returned when the parser service is not provided.
	ErrMissingParserService = errors.New("api: parser service is required")

	// ErrMissingAnalyzerService is returned when the analyzer service is not provided.
	ErrMissingAnalyzerService = errors.New("api: analyzer service is required")

	// ErrMissingDocumentService is returned when the document service is not provided.
	ErrMissingDocumentService = errors.New("api: document service is required")
)
