package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTheme(t *testing.T) {
	theme := DefaultTheme()

	require.NotNil(t, theme)
	for _, c := range []lipgloss.Color{
		theme.Primary, theme.Secondary, theme.Foreground, theme.Muted,
		theme.Point, theme.Line, theme.Error, theme.Border, theme.Bar,
	} {
		assert.NotEmpty(t, string(c))
	}
}

func TestDefaultTheme_AccentsAreDistinct(t *testing.T) {
	theme := DefaultTheme()

	seen := make(map[string]bool)
	for _, c := range []lipgloss.Color{theme.Primary, theme.Secondary, theme.Point, theme.Line, theme.Error} {
		assert.False(t, seen[string(c)], "duplicate accent: %s", c)
		seen[string(c)] = true
	}
}

func TestNewStyles(t *testing.T) {
	theme := DefaultTheme()

	assert.Equal(t, theme, NewStyles(theme).Theme())
	assert.NotNil(t, NewStyles(nil).Theme())
	assert.NotNil(t, DefaultStyles().Theme())
}

func TestStyles_AllStylesInitialised(t *testing.T) {
	s := DefaultStyles()

	for name, style := range map[string]lipgloss.Style{
		"Title":     s.Title,
		"Subtitle":  s.Subtitle,
		"Normal":    s.Normal,
		"Muted":     s.Muted,
		"Selected":  s.Selected,
		"Code":      s.Code,
		"Point":     s.Point,
		"Line":      s.Line,
		"Error":     s.Error,
		"StatusBar": s.StatusBar,
		"Border":    s.Border,
	} {
		assert.NotEqual(t, lipgloss.Style{}, style, name)
		assert.Contains(t, style.Render("text"), "text", name)
	}
}

func TestStyles_Kind(t *testing.T) {
	s := DefaultStyles()

	assert.Equal(t, s.Line, s.Kind(true))
	assert.Equal(t, s.Point, s.Kind(false))
}
