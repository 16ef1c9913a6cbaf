// Package main provides the entry point for the wpdocgen CLI.
package main

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	wpdocmcp "github.com/dkarlsen/wpdocgen/internal/mcp"
)

// newServeCmd creates the serve command for running as an MCP server.
func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run as MCP server (stdio transport)",
		Long: `Run wpdocgen as a Model Context Protocol (MCP) server over stdio.

This exposes documentation generation as an MCP tool that any MCP-capable
agent environment can use (Claude Code, Cursor, Windsurf, Gemini CLI, etc).

Configure in your agent's MCP settings:
  {
    "mcpServers": {
      "wpdocgen": {
        "command": "wpdocgen",
        "args": ["serve"]
      }
    }
  }

Available tools: generate_docs`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			server := wpdocmcp.NewServer(buildVersion())
			return server.Run(cmd.Context(), &mcp.StdioTransport{})
		},
	}
}
