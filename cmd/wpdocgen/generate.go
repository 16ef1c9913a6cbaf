// Package main provides the entry point for the wpdocgen CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dkarlsen/wpdocgen/internal/config"
	"github.com/dkarlsen/wpdocgen/internal/docgen"
	"github.com/dkarlsen/wpdocgen/internal/manifest"
	"github.com/dkarlsen/wpdocgen/internal/output"
)

// newGenerateCmd creates the generate command.
func newGenerateCmd() *cobra.Command {
	var destinationFlag string
	var prefixFlag string

	cmd := &cobra.Command{
		Use:   "generate [dir]",
		Short: "Generate command docs from a manifest",
		Long: `Generate one markdown reference file per command declared in the manifest.

The positional argument is the directory containing composer.json (default ".").
Output files are named <command>.md and written to the destination directory,
which is created if absent. Commands that cannot be resolved are skipped with
a warning; the run fails only on a missing or invalid manifest or an
uncreatable destination.

Examples:
  wpdocgen generate                              # document the current project into docs/
  wpdocgen generate ./my-plugin                  # document a plugin directory
  wpdocgen generate --destination=build/ref      # choose the output directory
  wpdocgen generate --prefix=mycli --json        # custom heading prefix, JSON result`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, args, destinationFlag, prefixFlag)
		},
	}

	cmd.Flags().StringVar(&destinationFlag, "destination", "", `Destination directory for generated docs (default "docs/")`)
	cmd.Flags().StringVar(&prefixFlag, "prefix", "", `Heading prefix for generated docs (default "wp")`)

	return cmd
}

// runGenerate executes the generate command.
func runGenerate(cmd *cobra.Command, args []string, destinationFlag, prefixFlag string) error {
	isTTY := output.ResolveColorMode(colorMode(cmd), output.IsTTY(cmd.OutOrStdout()))
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), isTTY).WithStderr(cmd.ErrOrStderr())

	dir := "."
	if len(args) == 1 {
		dir = args[0]
	}

	settings, err := resolveSettings(dir, destinationFlag, prefixFlag)
	if err != nil {
		userErr := output.NewUserError(err.Error())
		printer.Error(userErr)
		return userErr
	}

	descriptors, err := manifest.Load(dir)
	if err != nil {
		userErr := output.NewUserError(err.Error())
		printer.Error(userErr)
		return userErr
	}
	if len(descriptors) == 0 {
		printer.Warn("no commands configured in %s", dir)
	}

	generator := &docgen.Generator{
		Destination: settings.Destination,
		Prefix:      settings.Prefix,
		Progress: func(file string) {
			printer.Progress("generated %s", file)
		},
	}

	result, err := generator.Run(descriptors)
	if err != nil {
		sysErr := output.NewSystemErrorWithCause(fmt.Sprintf("cannot create destination %s", settings.Destination), err)
		printer.Error(sysErr)
		return sysErr
	}

	for _, warning := range result.Warnings {
		printer.Warn("%s", warning)
	}

	return reportResult(printer, settings.Destination, result)
}

// resolveSettings layers flag values over the configured settings.
func resolveSettings(dir, destinationFlag, prefixFlag string) (config.Settings, error) {
	settings, err := config.Load(dir)
	if err != nil {
		return config.Settings{}, err
	}
	if destinationFlag != "" {
		settings.Destination = destinationFlag
	}
	if prefixFlag != "" {
		settings.Prefix = prefixFlag
	}
	return settings, nil
}

// reportResult prints the run summary. A run that produced nothing is
// reported as a warning but still succeeds.
func reportResult(printer *output.Printer, destination string, result docgen.Result) error {
	if result.Generated == 0 {
		printer.Warn("nothing generated")
		if printer.IsJSON() {
			return printer.WriteJSON(result)
		}
		return nil
	}

	if printer.IsJSON() {
		return printer.WriteJSON(result)
	}
	return printer.Success(map[string]any{
		"message": fmt.Sprintf("Generated %d doc file(s) in %s", result.Generated, destination),
	})
}
