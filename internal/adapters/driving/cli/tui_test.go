package cli

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/kmlpser/internal/adapters/driving/tui"
)

// stubProgram replaces the interactive program for the test's duration.
func stubProgram(t *testing.T, run func(*tui.App) error) {
	t.Helper()
	original := runProgram
	runProgram = run
	t.Cleanup(func() { runProgram = original })
}

func TestTUICmd_Metadata(t *testing.T) {
	assert.Equal(t, "tui [file]", tuiCmd.Use)
	assert.Contains(t, tuiCmd.Long, "Enter    - Analyze feature")
}

func TestTUI_LoadsDocumentIntoSession(t *testing.T) {
	setupTestServices(t)
	path := writeSample(t, "sites.kml", sampleKML)

	var started *tui.App
	stubProgram(t, func(app *tui.App) error {
		started = app
		return nil
	})

	_, err := executeCommand(t, "tui", path)

	require.NoError(t, err)
	require.NotNil(t, started)
	state := sessionService.Current()
	require.NotNil(t, state.Document)
	assert.Len(t, state.Document.Features, 2)
	assert.Equal(t, -1, state.Selected)
}

func TestTUI_ProgramError(t *testing.T) {
	setupTestServices(t)
	path := writeSample(t, "sites.kml", sampleKML)
	stubProgram(t, func(*tui.App) error { return errors.New("no tty") })

	_, err := executeCommand(t, "tui", path)

	assert.EqualError(t, err, "TUI error: no tty")
}

func TestTUI_Errors(t *testing.T) {
	stubProgram(t, func(*tui.App) error {
		t.Fatal("program must not start")
		return nil
	})

	t.Run("no session", func(t *testing.T) {
		SetServices(&Services{})
		_, err := executeCommand(t, "tui", "x.kml")
		assert.EqualError(t, err, "session service not configured")
	})

	t.Run("missing file", func(t *testing.T) {
		setupTestServices(t)
		_, err := executeCommand(t, "tui", "/nonexistent/file.kml")
		assert.Error(t, err)
	})

	t.Run("malformed file", func(t *testing.T) {
		setupTestServices(t)
		path := writeSample(t, "bad.kml", "not markup")
		_, err := executeCommand(t, "tui", path)
		assert.ErrorContains(t, err, "failed to load")
	})

	t.Run("no args", func(t *testing.T) {
		_, err := executeCommand(t, "tui")
		assert.Error(t, err)
	})
}
