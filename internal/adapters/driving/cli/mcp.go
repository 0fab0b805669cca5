package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/garyj/real-estate-mcp/internal/adapters/driven/watch"
	"github.com/garyj/real-estate-mcp/internal/adapters/driving/mcp"
	"github.com/garyj/real-estate-mcp/internal/core/ports/driven"
	"github.com/garyj/real-estate-mcp/internal/logger"
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

By default, the server communicates over stdio using JSON-RPC and can be
used with Claude Desktop and other MCP-compatible AI assistants.

Use --port to start an HTTP server instead, which enables:
  - Testing with MCP Inspector web UI
  - Remote access via HTTP

Use --watch to refresh the dataset automatically when its files change.

Examples:
  # Stdio mode (default, for Claude Desktop)
  realestate mcp serve

  # HTTP mode (for MCP Inspector, remote access)
  realestate mcp serve --port 8080

Claude Desktop configuration (claude_desktop_config.json):
  {
    "mcpServers": {
      "realestate": {
        "command": "/path/to/realestate",
        "args": ["mcp", "serve"]
      }
    }
  }`,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().IntP("port", "p", 0, "HTTP port (0 = use stdio)")
	mcpServeCmd.Flags().Bool("watch", false, "refresh automatically on dataset file changes")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	port, err := cmd.Flags().GetInt("port")
	if err != nil {
		return fmt.Errorf("getting port flag: %w", err)
	}
	watchFiles, err := watchEnabled(cmd)
	if err != nil {
		return fmt.Errorf("getting watch flag: %w", err)
	}

	ports := &mcp.Ports{
		Catalog: catalogService,
		Search:  searchService,
		Match:   matchService,
		Stats:   statsService,
	}

	server, err := mcp.NewServer(ports)
	if err != nil {
		return err
	}

	if watchFiles {
		watcher := watch.New(dataDirectory(), catalogService, 0)
		go func() {
			if err := watcher.Run(cmd.Context()); err != nil {
				logger.Warn("File watcher stopped: %v", err)
			}
		}()
	}

	if port > 0 {
		addr := fmt.Sprintf(":%d", port)
		fmt.Fprintf(cmd.OutOrStdout(), "MCP server listening on http://localhost%s\n", addr)
		return server.RunHTTP(cmd.Context(), addr)
	}

	return server.Run(cmd.Context())
}

// watchEnabled resolves the watch toggle. An explicit --watch wins;
// otherwise the configured default applies.
func watchEnabled(cmd *cobra.Command) (bool, error) {
	if !cmd.Flags().Changed("watch") && configStore != nil {
		return configStore.GetBool(driven.ConfigWatch), nil
	}
	return cmd.Flags().GetBool("watch")
}
