package domain

import "fmt"

// LogFormat selects the log encoder.
type LogFormat string

// Available log formats.
const (
	// LogFormatText writes "[LEVEL] message" lines.
	LogFormatText LogFormat = "text"

	// LogFormatJSON writes one JSON object per line.
	LogFormatJSON LogFormat = "json"
)

// IsValid returns true if the log format is recognised.
func (f LogFormat) IsValid() bool {
	return f == LogFormatText || f == LogFormatJSON
}

// String returns the string representation.
func (f LogFormat) String() string {
	return string(f)
}

// ServerSettings configures the HTTP API.
type ServerSettings struct {
	// Addr is the listen address.
	Addr string

	// RateLimit is the sustained request rate per second.
	RateLimit int

	// Burst is the token bucket size.
	Burst int

	// MaxBodyBytes caps request bodies.
	MaxBodyBytes int

	// MaxDocuments caps the number of retained documents.
	MaxDocuments int
}

// LogSettings configures logging.
type LogSettings struct {
	Format LogFormat
}

// MCPSettings configures the MCP server.
type MCPSettings struct {
	// Port is the streamable HTTP port; 0 means stdio.
	Port int
}

// AppSettings represents the complete application configuration.
type AppSettings struct {
	// Server holds HTTP API settings.
	Server ServerSettings

	// Log holds logging settings.
	Log LogSettings

	// MCP holds MCP server settings.
	MCP MCPSettings
}

// DefaultAppSettings returns settings with sensible defaults.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Server: ServerSettings{
			Addr:         ":8080",
			RateLimit:    20,
			Burst:        40,
			MaxBodyBytes: 32 << 20,
			MaxDocuments: 64,
		},
		Log: LogSettings{
			Format: LogFormatText,
		},
		MCP: MCPSettings{
			Port: 0,
		},
	}
}

// Validate checks the settings for values that cannot work.
func (s AppSettings) Validate() error {
	if s.Server.Addr == "" {
		return fmt.Errorf("server.addr is empty: %w", ErrInvalidInput)
	}
	if s.Server.RateLimit <= 0 || s.Server.Burst <= 0 {
		return fmt.Errorf("server.rate_limit and server.burst must be positive: %w", ErrInvalidInput)
	}
	if s.Server.MaxBodyBytes <= 0 || s.Server.MaxDocuments <= 0 {
		return fmt.Errorf("server limits must be positive: %w", ErrInvalidInput)
	}
	if !s.Log.Format.IsValid() {
		return fmt.Errorf("log.format %q: %w", s.Log.Format, ErrInvalidInput)
	}
	if s.MCP.Port < 0 || s.MCP.Port > 65535 {
		return fmt.Errorf("mcp.port %d out of range: %w", s.MCP.Port, ErrInvalidInput)
	}
	return nil
}
