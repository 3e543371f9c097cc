package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/kmlpser/internal/geojson"
)

var exportOutput string

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Export a KML or KMZ file as GeoJSON",
	Long:  `Parses the file and writes its features as a GeoJSON FeatureCollection.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "write to file instead of stdout")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	if err := requireParser(); err != nil {
		return err
	}

	doc, err := loadFile(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", args[0], err)
	}

	data, err := json.MarshalIndent(geojson.FromDocument(doc), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal GeoJSON: %w", err)
	}
	data = append(data, '\n')

	if exportOutput == "" {
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}

	if err := os.WriteFile(exportOutput, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", exportOutput, err)
	}
	cmd.Printf("Wrote %d features to %s\n", len(doc.Features), exportOutput)
	return nil
}
