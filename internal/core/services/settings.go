package services

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/custodia-labs/kmlpser/internal/core/domain"
	"github.com/custodia-labs/kmlpser/internal/core/ports/driven"
	"github.com/custodia-labs/kmlpser/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	KeyServerAddr         = "server.addr"
	KeyServerRateLimit    = "server.rate_limit"
	KeyServerBurst        = "server.burst"
	KeyServerMaxBodyBytes = "server.max_body_bytes"
	KeyServerMaxDocuments = "server.max_documents"
	KeyLogFormat          = "log.format"
	KeyMCPPort            = "mcp.port"
)

// Environment variables that override the config file.
const (
	EnvAddr      = "KMLPSER_ADDR"
	EnvLogFormat = "KMLPSER_LOG_FORMAT"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
	getenv      func(string) string
}

// NewSettingsService creates a new settings service. configStore may be nil,
// in which case only defaults and environment overrides apply.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{
		configStore: configStore,
		getenv:      os.Getenv,
	}
}

// Get retrieves current application settings.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		Server: domain.ServerSettings{
			Addr:         s.getString(KeyServerAddr, defaults.Server.Addr),
			RateLimit:    s.getInt(KeyServerRateLimit, defaults.Server.RateLimit),
			Burst:        s.getInt(KeyServerBurst, defaults.Server.Burst),
			MaxBodyBytes: s.getInt(KeyServerMaxBodyBytes, defaults.Server.MaxBodyBytes),
			MaxDocuments: s.getInt(KeyServerMaxDocuments, defaults.Server.MaxDocuments),
		},
		Log: domain.LogSettings{
			Format: domain.LogFormat(s.getString(KeyLogFormat, defaults.Log.Format.String())),
		},
		MCP: domain.MCPSettings{
			Port: s.getInt(KeyMCPPort, defaults.MCP.Port),
		},
	}

	if v := s.getenv(EnvAddr); v != "" {
		settings.Server.Addr = v
	}
	if v := s.getenv(EnvLogFormat); v != "" {
		settings.Log.Format = domain.LogFormat(v)
	}

	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return settings, nil
}

// Set validates and persists one setting.
func (s *SettingsService) Set(key, value string) error {
	if s.configStore == nil {
		return fmt.Errorf("no config store: %w", domain.ErrInvalidInput)
	}

	var typed any
	switch key {
	case KeyServerAddr:
		typed = value
	case KeyLogFormat:
		if !domain.LogFormat(value).IsValid() {
			return fmt.Errorf("log.format must be text or json: %w", domain.ErrInvalidInput)
		}
		typed = value
	case KeyServerRateLimit, KeyServerBurst, KeyServerMaxBodyBytes, KeyServerMaxDocuments, KeyMCPPort:
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%s must be an integer: %w", key, domain.ErrInvalidInput)
		}
		typed = int64(n)
	default:
		return fmt.Errorf("unknown setting %q: %w", key, domain.ErrInvalidInput)
	}

	previous, existed := s.configStore.Get(key)
	if err := s.configStore.Set(key, typed); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	if _, err := s.Get(); err != nil {
		// Roll back values that make the settings unusable.
		var rbErr error
		if existed {
			rbErr = s.configStore.Set(key, previous)
		} else {
			rbErr = s.configStore.Delete(key)
		}
		if rbErr != nil {
			return errors.Join(err, fmt.Errorf("roll back %s: %w", key, rbErr))
		}
		return err
	}
	return nil
}

// Keys returns the recognised setting keys in display order.
func (s *SettingsService) Keys() []string {
	return []string{
		KeyServerAddr,
		KeyServerRateLimit,
		KeyServerBurst,
		KeyServerMaxBodyBytes,
		KeyServerMaxDocuments,
		KeyLogFormat,
		KeyMCPPort,
	}
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getString(key, defaultVal string) string {
	if s.configStore == nil {
		return defaultVal
	}
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getInt(key string, defaultVal int) int {
	if s.configStore == nil {
		return defaultVal
	}
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetInt(key)
}
