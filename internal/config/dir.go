// Package config resolves wpdocgen settings and the global configuration directory.
package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// Dir returns the wpdocgen configuration directory.
//
// Resolution:
//   - $WPDOCGEN_CONFIG_HOME if set (explicit override)
//   - $XDG_CONFIG_HOME/wpdocgen if set (respects XDG on any platform)
//   - %AppData%/wpdocgen on Windows
//   - ~/.config/wpdocgen on macOS and Linux
func Dir() string {
	// Explicit override
	if dir := os.Getenv("WPDOCGEN_CONFIG_HOME"); dir != "" {
		return dir
	}

	// XDG override (works on any platform)
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "wpdocgen")
	}

	// Windows: use AppData
	if runtime.GOOS == "windows" {
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "wpdocgen")
		}
	}

	// macOS and Linux: ~/.config/wpdocgen
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "wpdocgen")
}
