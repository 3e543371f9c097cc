package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/kmlpser/internal/adapters/driven/filewatch"
)

var watchCmd = &cobra.Command{
	Use:   "watch [file]",
	Short: "Re-parse a file whenever it changes",
	Long: `Parses the file, prints a summary, and parses it again each time it is
saved. Press Ctrl+C to stop.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	if err := requireParser(); err != nil {
		return err
	}

	ctx := cmd.Context()
	path := args[0]

	changes, err := filewatch.New(path).Watch(ctx)
	if err != nil {
		return err
	}

	printWatchSummary(cmd, path)
	cmd.Printf("Watching %s\n", path)

	for range changes {
		printWatchSummary(cmd, path)
	}
	return nil
}

// printWatchSummary parses path and prints its table. Parse errors are
// reported and watching continues.
func printWatchSummary(cmd *cobra.Command, path string) {
	doc, err := loadFile(cmd.Context(), path)
	if err != nil {
		cmd.PrintErrf("Error: %v\n", err)
		return
	}
	if err := writeDocumentTable(cmd.OutOrStdout(), doc); err != nil {
		cmd.PrintErrf("Error: %v\n", err)
	}
	fmt.Fprintln(cmd.OutOrStdout())
}
