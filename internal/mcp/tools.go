package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/dkarlsen/wpdocgen/internal/config"
	"github.com/dkarlsen/wpdocgen/internal/docgen"
	"github.com/dkarlsen/wpdocgen/internal/manifest"
)

// GenerateInput is the input for the generate_docs tool.
type GenerateInput struct {
	Dir         string `json:"dir,omitempty"         jsonschema:"directory containing the composer.json manifest (default: current directory)"`
	Destination string `json:"destination,omitempty" jsonschema:"output directory for markdown files (default: docs/)"`
	Prefix      string `json:"prefix,omitempty"      jsonschema:"heading prefix for generated docs (default: wp)"`
}

// GenerateOutput is the output for the generate_docs tool.
type GenerateOutput struct {
	Generated int      `json:"generated"          jsonschema:"number of markdown files written"`
	Files     []string `json:"files,omitempty"    jsonschema:"paths of written files"`
	Warnings  []string `json:"warnings,omitempty" jsonschema:"per-command warnings for skipped commands"`
}

func handleGenerate() mcp.ToolHandlerFor[GenerateInput, GenerateOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input GenerateInput) (*mcp.CallToolResult, GenerateOutput, error) {
		dir := input.Dir
		if dir == "" {
			dir = "."
		}

		settings, err := config.Load(dir)
		if err != nil {
			return nil, GenerateOutput{}, fmt.Errorf("loading settings: %w", err)
		}
		if input.Destination != "" {
			settings.Destination = input.Destination
		}
		if input.Prefix != "" {
			settings.Prefix = input.Prefix
		}

		descriptors, err := manifest.Load(dir)
		if err != nil {
			return nil, GenerateOutput{}, err
		}

		generator := &docgen.Generator{
			Destination: settings.Destination,
			Prefix:      settings.Prefix,
		}
		result, err := generator.Run(descriptors)
		if err != nil {
			return nil, GenerateOutput{}, err
		}

		return nil, GenerateOutput{
			Generated: result.Generated,
			Files:     result.Files,
			Warnings:  result.Warnings,
		}, nil
	}
}
