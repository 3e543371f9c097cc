// Package status provides status bar components for the TUI.
package status

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/kmlpser/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/kmlpser/internal/adapters/driving/tui/styles"
)

// State represents the current application state for display.
type State string

const (
	StateReady     State = "ready"
	StateAnalyzing State = "analyzing"
	StateError     State = "error"
	StateHelp      State = "help"
)

// Bar displays application status and keybinding hints.
type Bar struct {
	styles       *styles.Styles
	keymap       *keymap.KeyMap
	state        State
	message      string
	featureCount int
	width        int
}

// NewBar creates a new status bar component.
func NewBar(s *styles.Styles, km *keymap.KeyMap) *Bar {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &Bar{
		styles: s,
		keymap: km,
		state:  StateReady,
		width:  80,
	}
}

// Init initialises the status bar.
func (s *Bar) Init() tea.Cmd {
	return nil
}

// Update handles status bar messages.
func (s *Bar) Update(msg tea.Msg) (*Bar, tea.Cmd) {
	// Bar is passive, updated via Set methods
	return s, nil
}

// View renders the status bar.
func (s *Bar) View() string {
	left := s.renderLeft()
	right := s.renderRight()

	// StatusBar pads one cell on each side.
	padding := s.width - 2 - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 1 {
		padding = 1
	}

	return s.styles.StatusBar.Width(s.width).Render(
		left + strings.Repeat(" ", padding) + right,
	)
}

// renderLeft renders the left side of the status bar.
func (s *Bar) renderLeft() string {
	switch s.state {
	case StateAnalyzing:
		return s.styles.Muted.Render("Analyzing...")
	case StateError:
		if s.message != "" {
			return s.styles.Error.Render(fmt.Sprintf("Error: %s", s.message))
		}
		return s.styles.Error.Render("Error")
	case StateHelp:
		return s.styles.Normal.Render("Help")
	case StateReady:
		if s.message != "" {
			return s.styles.Normal.Render(s.message)
		}
		if s.featureCount > 0 {
			return s.styles.Normal.Render(fmt.Sprintf("%d features", s.featureCount))
		}
	}
	return s.styles.Muted.Render("Ready")
}

// renderRight renders keybinding hints.
func (s *Bar) renderRight() string {
	var bindings []key.Binding
	if s.state != StateHelp && s.featureCount > 0 {
		bindings = s.keymap.FeaturesHelp()
	} else {
		bindings = s.keymap.ShortHelp()
	}

	hints := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		hints = append(hints, fmt.Sprintf("%s: %s", h.Key, h.Desc))
	}
	return s.styles.Muted.Render(strings.Join(hints, " | "))
}

// SetState sets the current state.
func (s *Bar) SetState(state State) {
	s.state = state
}

// State returns the current state.
func (s *Bar) State() State {
	return s.state
}

// SetMessage sets a custom message.
func (s *Bar) SetMessage(message string) {
	s.message = message
}

// Message returns the current message.
func (s *Bar) Message() string {
	return s.message
}

// SetFeatureCount sets the number of loaded features.
func (s *Bar) SetFeatureCount(count int) {
	s.featureCount = count
}

// FeatureCount returns the number of loaded features.
func (s *Bar) FeatureCount() int {
	return s.featureCount
}

// SetWidth sets the status bar width.
func (s *Bar) SetWidth(width int) {
	s.width = width
}

// Width returns the current width.
func (s *Bar) Width() int {
	return s.width
}

// Clear resets the state and message, keeping the feature count.
func (s *Bar) Clear() {
	s.state = StateReady
	s.message = ""
}
