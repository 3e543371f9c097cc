package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/kmlpser/internal/core/domain"
	"github.com/custodia-labs/kmlpser/internal/core/services"
)

func TestConfigShow_Defaults(t *testing.T) {
	setupTestServices(t)

	out, err := executeCommand(t, "config", "show")

	require.NoError(t, err)
	assert.Contains(t, out, "Current Settings")
	assert.NotContains(t, out, "File:")
	for _, key := range settingsService.Keys() {
		assert.Contains(t, out, key)
	}
	assert.Contains(t, out, "0 (stdio)")
}

func TestConfig_SetThenShow(t *testing.T) {
	setupTestServices(t)

	out, err := executeCommand(t, "config", "set", "server.addr", "127.0.0.1:9000")
	require.NoError(t, err)
	assert.Contains(t, out, "Set server.addr = 127.0.0.1:9000")

	_, err = executeCommand(t, "config", "set", "mcp.port", "8090")
	require.NoError(t, err)

	out, err = executeCommand(t, "config")
	require.NoError(t, err)
	assert.Contains(t, out, "127.0.0.1:9000")
	assert.Contains(t, out, "8090")
}

func TestConfigSet_Invalid(t *testing.T) {
	setupTestServices(t)

	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"unknown key", "server.colour", "blue"},
		{"bad number", "server.burst", "many"},
		{"bad format", "log.format", "xml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := executeCommand(t, "config", "set", tt.key, tt.value)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
			assert.Contains(t, err.Error(), "invalid setting")
		})
	}
}

func TestConfig_NoService(t *testing.T) {
	SetServices(&Services{})

	_, err := executeCommand(t, "config", "show")
	assert.EqualError(t, err, "settings service not configured")

	_, err = executeCommand(t, "config", "set", "a", "b")
	assert.EqualError(t, err, "settings service not configured")
}

func TestSettingValue(t *testing.T) {
	s := domain.DefaultAppSettings()
	s.MCP.Port = 8090

	assert.Equal(t, s.Server.Addr, settingValue(&s, services.KeyServerAddr))
	assert.Equal(t, "8090", settingValue(&s, services.KeyMCPPort))
	assert.Equal(t, "text", settingValue(&s, services.KeyLogFormat))
	assert.Equal(t, "", settingValue(&s, "unknown"))
}
