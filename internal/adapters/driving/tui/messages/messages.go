// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/kmlpser/internal/core/domain"
)

// DocumentLoaded carries the result of loading a document into the session.
type DocumentLoaded struct {
	Document *domain.Document
	Err      error
}

// FeatureSelected is sent when the user picks a feature from the list.
type FeatureSelected struct {
	Index int
}

// FeatureAnalyzed carries the analysis of a selected feature.
type FeatureAnalyzed struct {
	Index  int
	Result *domain.AnalysisResult
	Err    error
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewFeatures is the feature list with the analysis pane.
	ViewFeatures ViewType = iota
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewFeatures:
		return "features"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}
