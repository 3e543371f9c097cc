package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedType indicates no decoder handles a MIME type.
	ErrUnsupportedType = errors.New("unsupported type")

	// ErrParse indicates a document could not be parsed as markup at all.
	// Distinct from a document that parses but yields zero features.
	ErrParse = errors.New("parse error")

	// ErrAnalysis indicates a feature is structurally invalid for analysis.
	ErrAnalysis = errors.New("analysis error")

	// ErrNoDocument indicates a session has no loaded document.
	ErrNoDocument = errors.New("no document loaded")
)

// ParseError describes why a document could not be parsed.
// It matches ErrParse with errors.Is and unwraps to the underlying cause.
type ParseError struct {
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("parse error: %s: %v", e.Reason, e.Err)
	}
	return "parse error: " + e.Reason
}

// Is reports whether target is ErrParse.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// AnalysisError describes why a feature could not be analysed.
type AnalysisError struct {
	Reason string
}

func (e *AnalysisError) Error() string {
	return "analysis error: " + e.Reason
}

// Is reports whether target is ErrAnalysis.
func (e *AnalysisError) Is(target error) bool {
	return target == ErrAnalysis
}
