package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServe_StopsWithContext(t *testing.T) {
	setupTestServices(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	out, err := executeCommandContext(t, ctx, "serve", "--addr", "127.0.0.1:0")

	require.NoError(t, err)
	assert.Contains(t, out, "HTTP API listening on 127.0.0.1:0")
}

func TestServe_NoServices(t *testing.T) {
	SetServices(&Services{})

	_, err := executeCommand(t, "serve")

	assert.Error(t, err)
}

func TestMCPServeCmd_Flags(t *testing.T) {
	flag := mcpServeCmd.Flags().Lookup("port")

	require.NotNil(t, flag)
	assert.Equal(t, "p", flag.Shorthand)
	assert.Equal(t, "0", flag.DefValue)
}

func TestMCPServe_NoServices(t *testing.T) {
	SetServices(&Services{})

	_, err := executeCommand(t, "mcp", "serve", "--port", "1")

	assert.Error(t, err)
}
