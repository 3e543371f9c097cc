package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/kmlpser/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/kmlpser/internal/core/domain"
)

var (
	analyzeIndex int
	analyzeName  string
	analyzeJSON  bool
	analyzeYAML  bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [file]",
	Short: "Analyze one feature of a KML or KMZ file",
	Long: `Parses the file and analyzes one feature, selected by --index
(0-based, default 0) or by --name.`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().IntVarP(&analyzeIndex, "index", "i", 0, "0-based feature index")
	analyzeCmd.Flags().StringVarP(&analyzeName, "name", "n", "", "feature name")
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "output the analysis as JSON")
	analyzeCmd.Flags().BoolVar(&analyzeYAML, "yaml", false, "output the analysis as YAML")
	analyzeCmd.MarkFlagsMutuallyExclusive("index", "name")
	analyzeCmd.MarkFlagsMutuallyExclusive("json", "yaml")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	if err := requireAnalyzer(); err != nil {
		return err
	}

	ctx := cmd.Context()
	doc, err := loadFile(ctx, args[0])
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", args[0], err)
	}

	index := analyzeIndex
	if analyzeName != "" {
		index = findFeature(doc, analyzeName)
		if index < 0 {
			return fmt.Errorf("no feature named %q: %w", analyzeName, domain.ErrNotFound)
		}
	}
	feature, err := doc.Feature(index)
	if err != nil {
		return fmt.Errorf("feature %d of %d: %w", index, len(doc.Features), err)
	}

	result, err := analyzerService.Analyze(ctx, domain.AnalyzeRequest{
		Feature:         feature,
		DocumentContext: doc.RawText,
	})
	if err != nil {
		return fmt.Errorf("failed to analyze feature: %w", err)
	}

	out := cmd.OutOrStdout()
	switch {
	case analyzeJSON:
		return writeJSON(out, result)
	case analyzeYAML:
		return writeYAML(out, newAnalysisView(result))
	case isTerminal(out):
		fmt.Fprintln(out, renderAnalysis(styles.NewStyles(nil), feature, result))
		return nil
	default:
		writeAnalysisPlain(out, feature, result)
		return nil
	}
}

// findFeature returns the index of the first feature named name, compared
// exactly and then ignoring case, or -1.
func findFeature(doc *domain.Document, name string) int {
	for i, f := range doc.Features {
		if f.Name == name {
			return i
		}
	}
	for i, f := range doc.Features {
		if strings.EqualFold(f.Name, name) {
			return i
		}
	}
	return -1
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// analysisRows returns the labelled fields in display order.
func analysisRows(r *domain.AnalysisResult) [][2]string {
	rows := [][2]string{
		{"Project Code", r.ProjectCode},
		{"Location", r.Location},
		{"Project Type", r.ProjectType},
		{"Status", r.Status},
		{"Description", r.Description},
	}
	if r.LengthKm != nil {
		rows = append(rows, [2]string{"Length", fmt.Sprintf("%.2f km", *r.LengthKm)})
	}
	return rows
}

func writeAnalysisPlain(out io.Writer, f domain.Feature, r *domain.AnalysisResult) {
	fmt.Fprintf(out, "%s\n\n", f.Name)
	for _, row := range analysisRows(r) {
		fmt.Fprintf(out, "  %-13s %s\n", row[0]+":", row[1])
	}
	if r.AdditionalInfo.Len() > 0 {
		fmt.Fprintln(out, "\n  Additional Info:")
		for _, a := range r.AdditionalInfo.Entries() {
			fmt.Fprintf(out, "    %s: %s\n", a.Key, a.Value)
		}
	}
	fmt.Fprintf(out, "\n%s\n", r.Interpretation)
}

func renderAnalysis(s *styles.Styles, f domain.Feature, r *domain.AnalysisResult) string {
	var b strings.Builder
	b.WriteString(s.Title.Render(f.Name))
	b.WriteString("\n\n")

	label := s.Subtitle.Width(14)
	for _, row := range analysisRows(r) {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, label.Render(row[0]), s.Normal.Render(row[1])))
		b.WriteString("\n")
	}
	if r.AdditionalInfo.Len() > 0 {
		b.WriteString("\n")
		b.WriteString(s.Subtitle.Render("Additional Info"))
		b.WriteString("\n")
		for _, a := range r.AdditionalInfo.Entries() {
			b.WriteString(s.Muted.Render("  "+a.Key+": ") + s.Normal.Render(a.Value))
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")
	b.WriteString(s.Border.Width(72).Render(r.Interpretation))
	return b.String()
}
