package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/kmlpser/internal/core/domain"
	"github.com/custodia-labs/kmlpser/internal/core/services"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage application settings",
	Long: `View and change settings stored in the config file.

Environment variables KMLPSER_ADDR and KMLPSER_LOG_FORMAT override the file.`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Set a setting",
	Long: `Set one setting by its dot key, for example:

  kmlpser config set server.addr 127.0.0.1:9000
  kmlpser config set log.format json`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	if configPath != "" {
		cmd.Printf("File: %s\n", configPath)
	}
	cmd.Println()

	for _, key := range settingsService.Keys() {
		cmd.Printf("  %-22s %s\n", key, settingValue(settings, key))
	}
	return nil
}

// settingValue formats the effective value of key.
func settingValue(s *domain.AppSettings, key string) string {
	switch key {
	case services.KeyServerAddr:
		return s.Server.Addr
	case services.KeyServerRateLimit:
		return fmt.Sprintf("%d req/s", s.Server.RateLimit)
	case services.KeyServerBurst:
		return fmt.Sprint(s.Server.Burst)
	case services.KeyServerMaxBodyBytes:
		return fmt.Sprintf("%d bytes", s.Server.MaxBodyBytes)
	case services.KeyServerMaxDocuments:
		return fmt.Sprint(s.Server.MaxDocuments)
	case services.KeyLogFormat:
		return s.Log.Format.String()
	case services.KeyMCPPort:
		if s.MCP.Port == 0 {
			return "0 (stdio)"
		}
		return fmt.Sprint(s.MCP.Port)
	default:
		return ""
	}
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	key, value := args[0], args[1]
	if err := settingsService.Set(key, value); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return fmt.Errorf("invalid setting: %w", err)
		}
		return fmt.Errorf("failed to save setting: %w", err)
	}

	cmd.Printf("Set %s = %s\n", key, value)
	return nil
}
