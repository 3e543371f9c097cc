// Package list provides list display components for the TUI.
package list

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/kmlpser/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/kmlpser/internal/core/domain"
)

// FeatureList displays parsed features in a navigable list.
type FeatureList struct {
	features []domain.Feature
	selected int
	analyzed int
	styles   *styles.Styles
	width    int
	height   int
}

// NewFeatureList creates a new feature list component.
func NewFeatureList(s *styles.Styles) *FeatureList {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &FeatureList{
		selected: 0,
		analyzed: -1,
		styles:   s,
		width:    40,
		height:   10,
	}
}

// Init initialises the feature list.
func (l *FeatureList) Init() tea.Cmd {
	return nil
}

// Update handles list navigation messages.
func (l *FeatureList) Update(msg tea.Msg) (*FeatureList, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "up", "k":
			l.MoveUp()
		case "down", "j":
			l.MoveDown()
		}
	}
	return l, nil
}

// View renders the feature list.
func (l *FeatureList) View() string {
	if len(l.features) == 0 {
		return l.styles.Muted.Render("No features")
	}

	lines := make([]string, 0, len(l.features)+2)
	lines = append(lines, l.styles.Subtitle.Render(fmt.Sprintf("Features (%d)", len(l.features))), "")

	visibleCount := l.height - 2
	if visibleCount < 1 {
		visibleCount = 1
	}

	start := 0
	if l.selected >= visibleCount {
		start = l.selected - visibleCount + 1
	}
	end := start + visibleCount
	if end > len(l.features) {
		end = len(l.features)
	}

	for i := start; i < end; i++ {
		lines = append(lines, l.renderFeature(i, &l.features[i]))
	}

	return strings.Join(lines, "\n")
}

// renderFeature formats one feature row: marker, name and kind.
func (l *FeatureList) renderFeature(index int, f *domain.Feature) string {
	indicator := "  "
	if index == l.selected {
		indicator = "> "
	}
	if index == l.analyzed {
		indicator = indicator[:1] + "*"
	}

	kind := string(f.Kind())
	maxNameLen := l.width - len(kind) - 4
	if maxNameLen < 10 {
		maxNameLen = 10
	}
	name := f.Name
	if len(name) > maxNameLen {
		name = name[:maxNameLen-3] + "..."
	}

	if index == l.selected {
		return l.styles.Selected.Render(fmt.Sprintf("%s%-*s %s", indicator, maxNameLen, name, kind))
	}
	return l.styles.Normal.Render(fmt.Sprintf("%s%-*s ", indicator, maxNameLen, name)) +
		l.styles.Kind(f.Kind() == domain.KindLine).Render(kind)
}

// SetFeatures replaces the list contents and resets the cursor.
func (l *FeatureList) SetFeatures(features []domain.Feature) {
	l.features = features
	l.selected = 0
	l.analyzed = -1
}

// Features returns the current features.
func (l *FeatureList) Features() []domain.Feature {
	return l.features
}

// Selected returns the cursor index.
func (l *FeatureList) Selected() int {
	return l.selected
}

// SetSelected moves the cursor to index if it is in range.
func (l *FeatureList) SetSelected(index int) {
	if index >= 0 && index < len(l.features) {
		l.selected = index
	}
}

// SetAnalyzed marks the feature whose analysis is on screen.
func (l *FeatureList) SetAnalyzed(index int) {
	l.analyzed = index
}

// Analyzed returns the index of the analyzed feature, or -1.
func (l *FeatureList) Analyzed() int {
	return l.analyzed
}

// MoveUp moves selection up.
func (l *FeatureList) MoveUp() {
	if l.selected > 0 {
		l.selected--
	}
}

// MoveDown moves selection down.
func (l *FeatureList) MoveDown() {
	if l.selected < len(l.features)-1 {
		l.selected++
	}
}

// SetDimensions sets the component dimensions.
func (l *FeatureList) SetDimensions(width, height int) {
	l.width = width
	l.height = height
}

// Count returns the number of features.
func (l *FeatureList) Count() int {
	return len(l.features)
}
