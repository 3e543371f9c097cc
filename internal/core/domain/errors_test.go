package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestErrors_Existence tests that all error variables exist and are not nil
func TestErrors_Existence(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"ErrNotFound", ErrNotFound},
		{"ErrInvalidInput", ErrInvalidInput},
		{"ErrUnsupportedType", ErrUnsupportedType},
		{"ErrParse", ErrParse},
		{"ErrAnalysis", ErrAnalysis},
		{"ErrNoDocument", ErrNoDocument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, tt.err)
			assert.NotEmpty(t, tt.err.Error())
		})
	}
}

// TestErrNotFound tests ErrNotFound error
func TestErrNotFound(t *testing.T) {
	assert.Equal(t, "not found", ErrNotFound.Error())
	assert.True(t, errors.Is(ErrNotFound, ErrNotFound))
	assert.False(t, errors.Is(ErrNotFound, ErrInvalidInput))
}

func TestParseError(t *testing.T) {
	cause := errors.New("XML syntax error on line 3")

	t.Run("with cause", func(t *testing.T) {
		err := &ParseError{Reason: "malformed markup", Err: cause}
		assert.Equal(t, "parse error: malformed markup: XML syntax error on line 3", err.Error())
		assert.True(t, errors.Is(err, ErrParse))
		assert.True(t, errors.Is(err, cause))
		assert.False(t, errors.Is(err, ErrAnalysis))
	})

	t.Run("without cause", func(t *testing.T) {
		err := &ParseError{Reason: "no elements"}
		assert.Equal(t, "parse error: no elements", err.Error())
		assert.True(t, errors.Is(err, ErrParse))
	})

	t.Run("wrapped", func(t *testing.T) {
		err := fmt.Errorf("parse upload.kml: %w", &ParseError{Reason: "empty"})
		assert.True(t, errors.Is(err, ErrParse))

		var pe *ParseError
		assert.True(t, errors.As(err, &pe))
		assert.Equal(t, "empty", pe.Reason)
	})
}

func TestAnalysisError(t *testing.T) {
	err := &AnalysisError{Reason: "feature has no coordinates"}
	assert.Equal(t, "analysis error: feature has no coordinates", err.Error())
	assert.True(t, errors.Is(err, ErrAnalysis))
	assert.False(t, errors.Is(err, ErrParse))

	wrapped := fmt.Errorf("analyze: %w", err)
	assert.True(t, errors.Is(wrapped, ErrAnalysis))
}
