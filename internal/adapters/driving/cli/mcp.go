package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/kmlpser/internal/adapters/driving/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server for AI assistant integration.

The server exposes the parse_kml and analyze_feature tools and the
kmlpser://documents resources. By default it communicates over stdio.

Use --port to start an HTTP server instead (streamable HTTP transport).

Examples:
  # Stdio mode (default)
  kmlpser mcp serve

  # HTTP mode
  kmlpser mcp serve --port 8090

Claude Desktop configuration (claude_desktop_config.json):
  {
    "mcpServers": {
      "kmlpser": {
        "command": "/path/to/kmlpser",
        "args": ["mcp", "serve"]
      }
    }
  }`,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().IntP("port", "p", 0, "HTTP port (0 = use stdio, default from config)")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	port, err := cmd.Flags().GetInt("port")
	if err != nil {
		return fmt.Errorf("getting port flag: %w", err)
	}
	if !cmd.Flags().Changed("port") && settingsService != nil {
		settings, err := settingsService.Get()
		if err != nil {
			return fmt.Errorf("failed to load settings: %w", err)
		}
		port = settings.MCP.Port
	}

	ports := &mcp.Ports{
		Parser:    parserService,
		Analyzer:  analyzerService,
		Documents: documentService,
	}

	server, err := mcp.NewServer(ports)
	if err != nil {
		return err
	}

	if port > 0 {
		addr := fmt.Sprintf(":%d", port)
		fmt.Fprintf(cmd.OutOrStdout(), "MCP server listening on http://localhost%s\n", addr)
		return server.RunHTTP(cmd.Context(), addr)
	}

	return server.Run(cmd.Context())
}
