package driving

import "github.com/custodia-labs/kmlpser/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get returns the effective settings: defaults, then the config file,
	// then environment overrides.
	Get() (*domain.AppSettings, error)

	// Set validates and persists one setting by its dot key.
	Set(key, value string) error

	// Keys returns the recognised setting keys in display order.
	Keys() []string

	// GetDefaults returns default settings.
	GetDefaults() domain.AppSettings
}
