// Package styles provides colour themes and styling for the TUI and styled CLI output.
package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the colour palette.
type Theme struct {
	// Primary is the main accent colour.
	Primary lipgloss.Color

	// Secondary is the secondary accent colour.
	Secondary lipgloss.Color

	// Foreground is the default text colour.
	Foreground lipgloss.Color

	// Muted is for labels and hints.
	Muted lipgloss.Color

	// Point marks point features.
	Point lipgloss.Color

	// Line marks linear features.
	Line lipgloss.Color

	// Error indicates problems.
	Error lipgloss.Color

	// Border is the border colour.
	Border lipgloss.Color

	// Bar is the status bar background.
	Bar lipgloss.Color
}

// DefaultTheme returns the default colour theme.
func DefaultTheme() *Theme {
	return &Theme{
		Primary:    lipgloss.Color("#2E8B57"), // Sea green
		Secondary:  lipgloss.Color("#4FA3D1"), // Water blue
		Foreground: lipgloss.Color("#E6E1CF"), // Parchment
		Muted:      lipgloss.Color("#7F8C8D"), // Slate
		Point:      lipgloss.Color("#E67E22"), // Marker orange
		Line:       lipgloss.Color("#F1C40F"), // Route yellow
		Error:      lipgloss.Color("#E74C3C"), // Red
		Border:     lipgloss.Color("#4A5A5B"),
		Bar:        lipgloss.Color("#1B2426"),
	}
}

// Styles contains pre-configured lipgloss styles.
type Styles struct {
	theme *Theme

	// Title is used for feature names and headers.
	Title lipgloss.Style

	// Subtitle is used for section headers.
	Subtitle lipgloss.Style

	// Normal is used for values.
	Normal lipgloss.Style

	// Muted is used for labels and hints.
	Muted lipgloss.Style

	// Selected highlights the list cursor.
	Selected lipgloss.Style

	// Code highlights project codes.
	Code lipgloss.Style

	// Point and Line tag feature kinds.
	Point lipgloss.Style
	Line  lipgloss.Style

	// Error is used for error messages.
	Error lipgloss.Style

	// StatusBar is the bottom status line.
	StatusBar lipgloss.Style

	// Border wraps boxed output.
	Border lipgloss.Style
}

// NewStyles creates styles from a theme.
func NewStyles(theme *Theme) *Styles {
	if theme == nil {
		theme = DefaultTheme()
	}

	return &Styles{
		theme: theme,

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Primary),

		Subtitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Secondary),

		Normal: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Selected: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Foreground).
			Background(theme.Primary),

		Code: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Secondary),

		Point: lipgloss.NewStyle().
			Foreground(theme.Point),

		Line: lipgloss.NewStyle().
			Foreground(theme.Line),

		Error: lipgloss.NewStyle().
			Foreground(theme.Error),

		StatusBar: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Background(theme.Bar).
			Padding(0, 1),

		Border: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1),
	}
}

// DefaultStyles returns styles with the default theme.
func DefaultStyles() *Styles {
	return NewStyles(DefaultTheme())
}

// Theme returns the theme used by these styles.
func (s *Styles) Theme() *Theme {
	return s.theme
}

// Kind returns the style for a feature kind tag.
func (s *Styles) Kind(line bool) lipgloss.Style {
	if line {
		return s.Line
	}
	return s.Point
}
