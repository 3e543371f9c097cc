package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/custodia-labs/kmlpser/internal/core/domain"
)

var (
	parseJSON bool
	parseYAML bool
	parseJobs int
)

var parseCmd = &cobra.Command{
	Use:   "parse [file...]",
	Short: "Parse KML or KMZ files",
	Long: `Parses each file into features and prints a table of them.
Files are parsed concurrently; output keeps the order of the arguments.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runParse,
}

func init() {
	parseCmd.Flags().BoolVar(&parseJSON, "json", false, "output documents as JSON")
	parseCmd.Flags().BoolVar(&parseYAML, "yaml", false, "output documents as YAML")
	parseCmd.Flags().IntVarP(&parseJobs, "jobs", "j", 4, "files parsed in parallel")
	parseCmd.MarkFlagsMutuallyExclusive("json", "yaml")
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	if err := requireParser(); err != nil {
		return err
	}

	docs := make([]*domain.Document, len(args))
	g, ctx := errgroup.WithContext(cmd.Context())
	if parseJobs > 0 {
		g.SetLimit(parseJobs)
	}
	for i, path := range args {
		g.Go(func() error {
			doc, err := loadFile(ctx, path)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			docs[i] = doc
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch {
	case parseJSON:
		return writeJSON(out, docs)
	case parseYAML:
		views := make([]documentView, len(docs))
		for i, doc := range docs {
			views[i] = newDocumentView(doc)
		}
		return writeYAML(out, views)
	default:
		for i, doc := range docs {
			if i > 0 {
				fmt.Fprintln(out)
			}
			if err := writeDocumentTable(out, doc); err != nil {
				return err
			}
		}
		return nil
	}
}

func writeDocumentTable(out io.Writer, doc *domain.Document) error {
	diag := doc.Diagnostics
	fmt.Fprintf(out, "%s (%s)\n", doc.URI, doc.ID)
	fmt.Fprintf(out, "  %d features from %d placemarks, %d dropped, %d coordinate tokens skipped\n",
		len(doc.Features), diag.Placemarks, diag.DroppedFeatures, diag.SkippedTokens)
	if len(doc.Features) == 0 {
		return nil
	}

	fmt.Fprintln(out)
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "  #\tKIND\tPOINTS\tATTRS\tNAME")
	for i, f := range doc.Features {
		fmt.Fprintf(tw, "  %d\t%s\t%d\t%d\t%s\n", i, f.Kind(), len(f.Coordinates), f.Attributes.Len(), f.Name)
	}
	return tw.Flush()
}
