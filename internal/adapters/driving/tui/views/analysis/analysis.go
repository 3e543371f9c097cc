// Package analysis provides the feature analysis pane for the TUI.
package analysis

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/kmlpser/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/kmlpser/internal/core/domain"
)

// View renders the analysis of the selected feature.
type View struct {
	styles *styles.Styles

	feature *domain.Feature
	result  *domain.AnalysisResult
	width   int
	height  int
}

// NewView creates an empty analysis pane.
func NewView(s *styles.Styles) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &View{styles: s, width: 40, height: 20}
}

// SetAnalysis replaces the displayed analysis.
func (v *View) SetAnalysis(feature domain.Feature, result *domain.AnalysisResult) {
	v.feature = &feature
	v.result = result
}

// Clear removes the displayed analysis.
func (v *View) Clear() {
	v.feature = nil
	v.result = nil
}

// Result returns the displayed analysis, or nil.
func (v *View) Result() *domain.AnalysisResult {
	return v.result
}

// SetDimensions sets the pane dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
}

// View renders the pane.
func (v *View) View() string {
	if v.result == nil || v.feature == nil {
		return v.styles.Muted.Render("Select a feature and press enter to analyze it.")
	}

	r := v.result
	lines := []string{
		v.styles.Title.Render(v.feature.Name),
		v.styles.Kind(v.feature.Kind() == domain.KindLine).Render(string(v.feature.Kind())),
		"",
		v.styles.Muted.Render(fmt.Sprintf("%-14s", "Project Code:")) + v.styles.Code.Render(r.ProjectCode),
		v.formatField("Location", r.Location),
		v.formatField("Type", r.ProjectType),
		v.formatField("Status", r.Status),
	}
	if r.LengthKm != nil {
		lines = append(lines, v.formatField("Length", fmt.Sprintf("%.2f km", *r.LengthKm)))
	}
	lines = append(lines, v.formatField("Description", r.Description))

	if r.AdditionalInfo.Len() > 0 {
		lines = append(lines, "", v.styles.Subtitle.Render("Attributes"))
		for _, attr := range r.AdditionalInfo.Entries() {
			lines = append(lines, fmt.Sprintf("  %s: %s", attr.Key, attr.Value))
		}
	}

	wrapWidth := v.width - 2
	if wrapWidth < 20 {
		wrapWidth = 20
	}
	lines = append(lines, "", v.styles.Subtitle.Render("Interpretation"),
		lipgloss.NewStyle().Width(wrapWidth).Render(r.Interpretation))

	if v.height > 0 && len(lines) > v.height {
		lines = lines[:v.height]
	}
	return strings.Join(lines, "\n")
}

// formatField formats a labelled value.
func (v *View) formatField(label, value string) string {
	return v.styles.Muted.Render(fmt.Sprintf("%-14s", label+":")) + v.styles.Normal.Render(value)
}
