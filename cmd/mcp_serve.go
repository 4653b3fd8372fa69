package cmd

import (
	"github.com/chris-regnier/sunspot/internal/mcptools"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"
)

var mcpServeCmd = &cobra.Command{
	Use:   "mcp-serve",
	Short: "Run MCP server on stdio",
	Long: `Starts a Model Context Protocol (MCP) server that exposes mood tools
over stdio transport, so an MCP client can read and record today's mood.

Available tools:
  - get_today_mood: The record for today, if any
  - record_mood: Record today's mood, replacing any earlier one
  - list_moods: The mood palette
  - classify_weather: Map a WMO weather code to a mood and theme

Example client config:
  {
    "mcpServers": {
      "sunspot": {
        "command": "/path/to/sunspot",
        "args": ["mcp-serve"]
      }
    }
  }`,
	RunE: runMCPServe,
}

func init() {
	rootCmd.AddCommand(mcpServeCmd)
}

func runMCPServe(cmd *cobra.Command, args []string) error {
	// Storage is already initialized in PersistentPreRunE
	if store == nil {
		return cmd.Help()
	}

	server := mcptools.CreateMCPServer(mcptools.Deps{
		Store:   store,
		Clock:   clk,
		DataDir: appConfig.DataDir,
		Logger:  logger,
	})

	// Logs go to stderr; stdout is reserved for the MCP protocol
	logger.Info("starting MCP server",
		"transport", "stdio",
		"storage", appConfig.Storage,
		"data_dir", appConfig.DataDir,
	)

	// Blocks until the transport is closed
	return server.Run(cmd.Context(), &mcp.StdioTransport{})
}
