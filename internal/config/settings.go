package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Defaults applied when neither flags, environment, nor the settings file
// specify a value.
const (
	DefaultDestination = "docs/"
	DefaultPrefix      = "wp"
)

// SettingsFile is the optional per-project settings file, looked up in the
// manifest directory.
const SettingsFile = ".wpdocgen.yaml"

// Settings holds the tool configuration for one generation run.
type Settings struct {
	// Destination is the directory markdown files are written to.
	Destination string `yaml:"destination"`
	// Prefix is the leading token of generated level-1 headings ("wp" by default).
	Prefix string `yaml:"prefix"`
}

// Load resolves settings for the given manifest directory.
//
// Precedence (weakest first): defaults, .wpdocgen.yaml in dir, then the
// WPDOCGEN_DESTINATION and WPDOCGEN_PREFIX environment variables. Flag
// values are applied by the caller on top of the result.
func Load(dir string) (Settings, error) {
	s := Settings{
		Destination: DefaultDestination,
		Prefix:      DefaultPrefix,
	}

	if err := s.mergeFile(filepath.Join(dir, SettingsFile)); err != nil {
		return Settings{}, err
	}
	s.mergeEnv()

	return s, nil
}

// mergeFile overlays values from a yaml settings file, if it exists.
func (s *Settings) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading settings file %s: %w", path, err)
	}

	var file Settings
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("parsing settings file %s: %w", path, err)
	}

	if file.Destination != "" {
		s.Destination = file.Destination
	}
	if file.Prefix != "" {
		s.Prefix = file.Prefix
	}
	return nil
}

// mergeEnv overlays values from the environment.
func (s *Settings) mergeEnv() {
	if dest := os.Getenv("WPDOCGEN_DESTINATION"); dest != "" {
		s.Destination = dest
	}
	if prefix := os.Getenv("WPDOCGEN_PREFIX"); prefix != "" {
		s.Prefix = prefix
	}
}
