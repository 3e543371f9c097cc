package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/kmlpser/internal/adapters/driving/api"
	"github.com/custodia-labs/kmlpser/internal/core/domain"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	Long: `Serves the parser and analyzer over HTTP.

Endpoints:
  POST /api/parse                                  parse a KML or KMZ body
  POST /api/analyze                                analyze {feature, kmlContext}
  GET  /api/documents                              list parsed documents
  GET  /api/documents/{id}/geojson                 document as GeoJSON
  GET  /api/documents/{id}/features/{index}/analysis
  GET  /healthz, /metrics`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default from config, :8080)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	if err := requireAnalyzer(); err != nil {
		return err
	}
	if documentService == nil {
		return errors.New("document service not configured")
	}

	settings := domain.DefaultAppSettings()
	if settingsService != nil {
		current, err := settingsService.Get()
		if err != nil {
			return fmt.Errorf("failed to load settings: %w", err)
		}
		settings = *current
	}

	cfg := api.ConfigFromSettings(settings.Server)
	if serveAddr != "" {
		cfg.Addr = serveAddr
	}

	server, err := api.NewServer(&api.Ports{
		Parser:    parserService,
		Documents: documentService,
		Analyzer:  analyzerService,
	}, cfg)
	if err != nil {
		return err
	}

	cmd.Printf("HTTP API listening on %s\n", cfg.Addr)
	return server.Run(cmd.Context())
}
