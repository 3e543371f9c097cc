// Command kmlpser parses KML/KMZ files and analyzes their features.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/custodia-labs/kmlpser/internal/adapters/driven/config/file"
	"github.com/custodia-labs/kmlpser/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/kmlpser/internal/adapters/driving/cli"
	"github.com/custodia-labs/kmlpser/internal/core/services"
	"github.com/custodia-labs/kmlpser/internal/decoders/kml"
	"github.com/custodia-labs/kmlpser/internal/decoders/kmz"
	"github.com/custodia-labs/kmlpser/internal/logger"
)

// version is set with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	_ = godotenv.Load(".env")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cli.SetVersion(version)
	cli.SetBootstrap(build)

	if err := cli.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

// build wires the core services for one command invocation.
func build(configDir string) (*cli.Services, error) {
	store, err := file.NewConfigStore(configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to open config: %w", err)
	}

	settingsService := services.NewSettingsService(store)
	settings, err := settingsService.Get()
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	logger.SetFormat(settings.Log.Format.String())
	logger.Debug("config loaded from %s", store.Path())

	registry := services.NewDecoderRegistry(kml.New(), kmz.New())
	parser := services.NewParserService(registry, memory.NewDocumentStore(settings.Server.MaxDocuments))
	analyzer := services.NewAnalyzerService()

	return &cli.Services{
		Parser:     parser,
		Documents:  parser,
		Analyzer:   analyzer,
		Session:    services.NewSessionService(parser, analyzer),
		Settings:   settingsService,
		ConfigPath: store.Path(),
	}, nil
}
