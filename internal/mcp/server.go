// Package mcp provides a Model Context Protocol server for wpdocgen.
// It exposes documentation generation as an MCP tool that any MCP-capable
// agent can use.
package mcp

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// NewServer creates an MCP server with the wpdocgen tools registered.
func NewServer(version string) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "wpdocgen",
		Version: version,
	}, nil)
	registerTools(server)
	return server
}

// boolPtr returns a pointer to a bool value.
func boolPtr(b bool) *bool {
	return &b
}

// generateAnnotations returns annotations for the generate tool: it writes
// files, but additively and deterministically.
func generateAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		DestructiveHint: boolPtr(false),
		IdempotentHint:  true,
		OpenWorldHint:   boolPtr(false),
	}
}

// registerTools adds the wpdocgen tools to the server.
func registerTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name: "generate_docs",
		Description: "Generate markdown reference docs for the commands declared in a " +
			"composer.json manifest. Returns the written file paths and any per-command warnings.",
		Annotations: generateAnnotations(),
	}, handleGenerate())
}
