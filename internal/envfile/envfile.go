// Package envfile loads environment variables from .env files.
// Variables already set in the environment take precedence.
package envfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Load reads a .env file and sets any variables not already in the environment.
// Returns nil if the file doesn't exist. Returns an error only for read failures.
func Load(path string) error {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("opening env file %s: %w", path, err)
	}
	defer file.Close() //nolint:errcheck // best-effort close on read-only file

	if err := apply(file); err != nil {
		return fmt.Errorf("reading env file %s: %w", path, err)
	}
	return nil
}

// apply scans KEY=VALUE lines and sets unset variables.
func apply(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		// Skip blank lines and comments
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, ok := parseLine(line)
		if !ok {
			continue
		}

		// Only set if not already in the environment
		if os.Getenv(key) == "" {
			_ = os.Setenv(key, value)
		}
	}
	return scanner.Err()
}

// parseLine extracts KEY=VALUE from a line.
// Handles an optional "export " prefix and optional quoting around the value.
func parseLine(line string) (key, value string, ok bool) {
	parts := strings.SplitN(line, "=", 2)
	if len(parts) != 2 {
		return "", "", false
	}

	key = strings.TrimSpace(parts[0])
	key = strings.TrimSpace(strings.TrimPrefix(key, "export "))
	if key == "" {
		return "", "", false
	}

	value = stripQuotes(strings.TrimSpace(parts[1]))
	return key, value, true
}

// stripQuotes removes one matching pair of single or double quotes.
func stripQuotes(value string) string {
	if len(value) >= 2 {
		if (value[0] == '"' && value[len(value)-1] == '"') ||
			(value[0] == '\'' && value[len(value)-1] == '\'') {
			return value[1 : len(value)-1]
		}
	}
	return value
}
