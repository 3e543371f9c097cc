package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/kmlpser/internal/adapters/driving/tui/components/list"
	"github.com/custodia-labs/kmlpser/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/kmlpser/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/kmlpser/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/kmlpser/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/kmlpser/internal/adapters/driving/tui/views/analysis"
	"github.com/custodia-labs/kmlpser/internal/core/domain"
)

// minListWidth is the narrowest the feature list is drawn.
const minListWidth = 24

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	ports  *Ports
	ctx    context.Context
	styles *styles.Styles
	keymap *keymap.KeyMap

	features     *list.FeatureList
	analysisView *analysis.View
	statusBar    *status.Bar

	// document is the document shown in the list, or nil.
	document *domain.Document

	currentView messages.ViewType

	// err holds the last error that occurred.
	err error

	width  int
	height int
	ready  bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	return &App{
		ports:        ports,
		ctx:          context.Background(),
		styles:       s,
		keymap:       km,
		features:     list.NewFeatureList(s),
		analysisView: analysis.NewView(s),
		statusBar:    status.NewBar(s, km),
		currentView:  messages.ViewFeatures,
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// Init implements tea.Model.
// It picks up whatever document the session already holds.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("kmlpser"),
		a.loadSession,
	)
}

// loadSession reports the session's current document.
func (a *App) loadSession() tea.Msg {
	return messages.DocumentLoaded{Document: a.ports.Session.Current().Document}
}

// analyzeFeature runs the session analysis for index.
func (a *App) analyzeFeature(index int) tea.Cmd {
	return func() tea.Msg {
		result, err := a.ports.Session.Select(a.ctx, index)
		return messages.FeatureAnalyzed{Index: index, Result: result, Err: err}
	}
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)

	case messages.DocumentLoaded:
		if msg.Err != nil {
			a.setError(msg.Err)
			return a, nil
		}
		a.setDocument(msg.Document)
		return a, nil

	case messages.FeatureSelected:
		return a, a.selectFeature(msg.Index)

	case messages.FeatureAnalyzed:
		if msg.Err != nil {
			// The previous analysis stays on screen.
			a.setError(msg.Err)
			return a, nil
		}
		a.err = nil
		a.statusBar.Clear()
		a.features.SetAnalyzed(msg.Index)
		if feats := a.features.Features(); msg.Index >= 0 && msg.Index < len(feats) {
			a.analysisView.SetAnalysis(feats[msg.Index], msg.Result)
		}
		return a, nil

	case messages.ViewChanged:
		a.switchView(msg.View)
		return a, nil

	case messages.ErrorOccurred:
		a.setError(msg.Err)
		return a, nil

	case messages.Quit:
		return a, tea.Quit
	}

	return a, nil
}

// handleKey dispatches a key press for the active view.
func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := msg.String()
	if k == "ctrl+c" || keymap.Matches(k, a.keymap.Quit) {
		return a, tea.Quit
	}

	if a.currentView == messages.ViewHelp {
		if keymap.Matches(k, a.keymap.Back) || keymap.Matches(k, a.keymap.Help) {
			a.switchView(messages.ViewFeatures)
		}
		return a, nil
	}

	switch {
	case keymap.Matches(k, a.keymap.Help):
		a.switchView(messages.ViewHelp)
		return a, nil
	case keymap.Matches(k, a.keymap.Select):
		return a, a.selectFeature(a.features.Selected())
	}

	var cmd tea.Cmd
	a.features, cmd = a.features.Update(msg)
	return a, cmd
}

// selectFeature starts analysis of the feature at index.
func (a *App) selectFeature(index int) tea.Cmd {
	if a.features.Count() == 0 {
		return nil
	}
	a.features.SetSelected(index)
	a.statusBar.SetState(status.StateAnalyzing)
	return a.analyzeFeature(index)
}

// setDocument shows doc in the list and resets the analysis pane.
func (a *App) setDocument(doc *domain.Document) {
	a.document = doc
	a.analysisView.Clear()
	a.statusBar.Clear()
	if doc == nil {
		a.features.SetFeatures(nil)
		a.statusBar.SetFeatureCount(0)
		return
	}
	a.features.SetFeatures(doc.Features)
	a.statusBar.SetFeatureCount(len(doc.Features))
	a.statusBar.SetMessage(fmt.Sprintf("%s: %d features", doc.URI, len(doc.Features)))
}

// setError shows err in the status line.
func (a *App) setError(err error) {
	a.err = err
	a.statusBar.SetState(status.StateError)
	if err != nil {
		a.statusBar.SetMessage(err.Error())
	}
}

// switchView changes the active view.
func (a *App) switchView(view messages.ViewType) {
	a.currentView = view
	if view == messages.ViewHelp {
		a.statusBar.SetState(status.StateHelp)
		return
	}
	if a.statusBar.State() == status.StateHelp {
		a.statusBar.SetState(status.StateReady)
	}
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	var body string
	if a.currentView == messages.ViewHelp {
		body = a.viewHelp()
	} else {
		body = lipgloss.JoinHorizontal(lipgloss.Top,
			a.features.View(),
			"   ",
			a.analysisView.View(),
		)
	}
	return body + "\n" + a.statusBar.View()
}

// viewHelp renders the keybinding help.
func (a *App) viewHelp() string {
	lines := []string{a.styles.Title.Render("Help"), ""}
	for _, group := range a.keymap.FullHelp() {
		for _, b := range group {
			h := b.Help()
			lines = append(lines, fmt.Sprintf("  %-10s %s", h.Key, h.Desc))
		}
		lines = append(lines, "")
	}
	lines = append(lines, a.styles.Muted.Render("[esc] back to features"))
	return strings.Join(lines, "\n")
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithContext(a.ctx))
	_, err := p.Run()
	return err
}

// SetDimensions sizes the panes for a terminal of width by height.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true

	listWidth := width / 3
	if listWidth < minListWidth {
		listWidth = minListWidth
	}
	paneHeight := height - 2
	if paneHeight < 1 {
		paneHeight = 1
	}
	a.features.SetDimensions(listWidth, paneHeight)
	a.analysisView.SetDimensions(width-listWidth-3, paneHeight)
	a.statusBar.SetWidth(width)
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Document returns the document shown in the list.
func (a *App) Document() *domain.Document {
	return a.document
}

// Selected returns the list cursor.
func (a *App) Selected() int {
	return a.features.Selected()
}

// Analysis returns the analysis on screen, or nil.
func (a *App) Analysis() *domain.AnalysisResult {
	return a.analysisView.Result()
}

// StatusState returns the status line state.
func (a *App) StatusState() status.State {
	return a.statusBar.State()
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}
