// Package cli provides the kmlpser command line interface.
package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/kmlpser/internal/core/ports/driving"
	"github.com/custodia-labs/kmlpser/internal/logger"
)

// version is set at build time.
var version = "dev"

// Global flags.
var (
	verbose   bool
	configDir string
)

// Services bundles the driving ports the commands call.
type Services struct {
	Parser     driving.ParserService
	Documents  driving.DocumentService
	Analyzer   driving.AnalyzerService
	Session    driving.SessionService
	Settings   driving.SettingsService
	ConfigPath string
}

// Bootstrap builds services once flags are parsed.
type Bootstrap func(configDir string) (*Services, error)

var (
	parserService   driving.ParserService
	documentService driving.DocumentService
	analyzerService driving.AnalyzerService
	sessionService  driving.SessionService
	settingsService driving.SettingsService
	configPath      string

	bootstrap Bootstrap
)

var rootCmd = &cobra.Command{
	Use:   "kmlpser",
	Short: "Parse KML files and analyze PSER features",
	Long: `kmlpser reads KML and KMZ files, turns their placemarks into features
and derives project metadata for each feature: project code, location,
project type, status and a short interpretation.`,
	SilenceUsage:      true,
	PersistentPreRunE: preRun,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print debug output")
	rootCmd.PersistentFlags().StringVar(&configDir, "config", "", "config directory (default ~/.kmlpser)")
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	version = v
}

// SetBootstrap registers the function that wires services before a command runs.
func SetBootstrap(b Bootstrap) {
	bootstrap = b
}

// SetServices installs services directly.
func SetServices(s *Services) {
	parserService = s.Parser
	documentService = s.Documents
	analyzerService = s.Analyzer
	sessionService = s.Session
	settingsService = s.Settings
	configPath = s.ConfigPath
}

func preRun(_ *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)
	if bootstrap == nil {
		return nil
	}

	services, err := bootstrap(configDir)
	if err != nil {
		return err
	}
	SetServices(services)
	return nil
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// ExecuteContext runs the root command with ctx.
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func requireParser() error {
	if parserService == nil {
		return errors.New("parser service not configured")
	}
	return nil
}

func requireAnalyzer() error {
	if err := requireParser(); err != nil {
		return err
	}
	if analyzerService == nil {
		return errors.New("analyzer service not configured")
	}
	return nil
}
