// Package main provides the entry point for the wpdocgen CLI.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/dkarlsen/wpdocgen/internal/config"
	"github.com/dkarlsen/wpdocgen/internal/envfile"
	"github.com/dkarlsen/wpdocgen/internal/output"
)

// Build info set via ldflags at build time by goreleaser.
// Example: go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123 -X main.date=2024-01-01"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// isJSONMode reads the --json persistent flag from the command hierarchy.
func isJSONMode(cmd *cobra.Command) bool {
	flag := cmd.Flags().Lookup("json")
	if flag == nil {
		// Walk up to root to find the persistent flag
		flag = cmd.Root().PersistentFlags().Lookup("json")
	}
	return flag != nil && flag.Value.String() == "true"
}

// colorMode reads the --color persistent flag ("auto" when unset).
func colorMode(cmd *cobra.Command) string {
	flag := cmd.Flags().Lookup("color")
	if flag == nil {
		flag = cmd.Root().PersistentFlags().Lookup("color")
	}
	if flag == nil {
		return "auto"
	}
	return flag.Value.String()
}

// buildVersion returns the full version string including commit and date.
func buildVersion() string {
	if commit == "none" && date == "unknown" {
		return version
	}
	shortCommit := commit
	if len(commit) > 7 {
		shortCommit = commit[:7]
	}
	return fmt.Sprintf("%s (%s, %s)", version, shortCommit, date)
}

func main() {
	code := run()
	os.Exit(code)
}

func run() int {
	cmd := newRootCmd()
	err := fang.Execute(context.Background(), cmd, fang.WithVersion(buildVersion()))
	return output.GetExitCode(err)
}

// newRootCmd creates the root command for the wpdocgen CLI.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wpdocgen",
		Short: "Generate markdown reference docs for manifest-declared commands",
		Long: `wpdocgen reads the composer.json manifest of a project or plugin, resolves the
command providers it declares, and renders the structured documentation comments
on their subcommand methods as one markdown file per command.

Docblocks are parsed for a short description, an "## OPTIONS" block, an
"## EXAMPLES" block, and an optional "@subcommand <name>" tag.

All commands support --json for structured output.`,
		Version:       buildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// If --json flag is set but no subcommand, output JSON error
			if isJSONMode(cmd) {
				printer := output.NewPrinter(cmd.OutOrStdout(), true, false)
				err := output.NewUserError("no command specified. Run 'wpdocgen --help' for usage")
				printer.Error(err)
				return err
			}
			// Otherwise show help
			return cmd.Help()
		},
	}

	// Load .env.local (then .env) so WPDOCGEN_* settings can live next to
	// the project. Environment variables always take precedence over file
	// values.
	cmd.PersistentPreRunE = func(_ *cobra.Command, _ []string) error {
		loadEnvFiles()
		return nil
	}

	cmd.PersistentFlags().Bool("json", false, "Output in JSON format")
	cmd.PersistentFlags().String("color", "auto", "Color output: auto, always, or never")

	// Configure lipgloss for TTY detection
	lipgloss.SetHasDarkBackground(true)

	cmd.AddCommand(newGenerateCmd())
	cmd.AddCommand(newServeCmd())

	return cmd
}

// loadEnvFiles loads env files in priority order. First match for each
// variable wins; environment variables already set always take precedence.
//
// Resolution order:
//  1. $CWD/.env.local   (per-repo override, gitignored)
//  2. $CWD/.env         (per-repo)
//  3. <config-dir>/env  (global fallback)
func loadEnvFiles() {
	_ = envfile.Load(".env.local")
	_ = envfile.Load(".env")

	if dir := config.Dir(); dir != "" {
		_ = envfile.Load(filepath.Join(dir, "env"))
	}
}
