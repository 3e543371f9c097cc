package cli

import (
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/kmlpser/internal/adapters/driving/tui"
)

// tuiCmd represents the tui command.
var tuiCmd = &cobra.Command{
	Use:   "tui [file]",
	Short: "Browse a KML file interactively",
	Long: `Load a KML or KMZ file and browse its features in the terminal.

The left pane lists the features; the right pane shows the analysis of
the selected feature.

Controls:
  ↑/k, ↓/j - Navigate features
  Enter    - Analyze feature
  Esc      - Back
  ?        - Toggle help
  q        - Quit`,
	Args: cobra.ExactArgs(1),
	RunE: runTUI,
}

// runProgram starts the interactive program. Replaced in tests.
var runProgram = func(app *tui.App) error {
	return app.Run()
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	if sessionService == nil {
		return errors.New("session service not configured")
	}

	ctx := cmd.Context()
	content, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}
	if _, err := sessionService.Load(ctx, rawDocument(args[0], content)); err != nil {
		return fmt.Errorf("failed to load %s: %w", args[0], err)
	}

	app, err := tui.NewApp(tui.NewPorts(sessionService))
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}
	app.WithContext(ctx)

	if err := runProgram(app); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
