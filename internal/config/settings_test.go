package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv("WPDOCGEN_DESTINATION", "")
	t.Setenv("WPDOCGEN_PREFIX", "")
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	s, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if s.Destination != DefaultDestination {
		t.Errorf("Destination = %q, want %q", s.Destination, DefaultDestination)
	}
	if s.Prefix != DefaultPrefix {
		t.Errorf("Prefix = %q, want %q", s.Prefix, DefaultPrefix)
	}
}

func TestLoadSettingsFile(t *testing.T) {
	clearEnv(t)

	dir := t.TempDir()
	content := "destination: build/reference\nprefix: mycli\n"
	if err := os.WriteFile(filepath.Join(dir, SettingsFile), []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	s, err := Load(dir)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if s.Destination != "build/reference" {
		t.Errorf("Destination = %q", s.Destination)
	}
	if s.Prefix != "mycli" {
		t.Errorf("Prefix = %q", s.Prefix)
	}
}

func TestLoadPartialSettingsFileKeepsDefaults(t *testing.T) {
	clearEnv(t)

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, SettingsFile), []byte("prefix: mycli\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	s, err := Load(dir)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if s.Destination != DefaultDestination {
		t.Errorf("Destination = %q, want default", s.Destination)
	}
	if s.Prefix != "mycli" {
		t.Errorf("Prefix = %q", s.Prefix)
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, SettingsFile), []byte("destination: from-file\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	t.Setenv("WPDOCGEN_DESTINATION", "from-env")
	t.Setenv("WPDOCGEN_PREFIX", "")

	s, err := Load(dir)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if s.Destination != "from-env" {
		t.Errorf("Destination = %q, want env value", s.Destination)
	}
}

func TestLoadMalformedSettingsFile(t *testing.T) {
	clearEnv(t)

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, SettingsFile), []byte("destination: [unclosed\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := Load(dir)
	if err == nil {
		t.Fatal("Load() should fail on malformed yaml")
	}
	if !strings.Contains(err.Error(), SettingsFile) {
		t.Errorf("error should name the settings file: %v", err)
	}
}

func TestDirExplicitOverride(t *testing.T) {
	t.Setenv("WPDOCGEN_CONFIG_HOME", "/tmp/custom-wpdocgen")
	if got := Dir(); got != "/tmp/custom-wpdocgen" {
		t.Errorf("Dir() = %q", got)
	}
}

func TestDirXDG(t *testing.T) {
	t.Setenv("WPDOCGEN_CONFIG_HOME", "")
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	want := filepath.Join("/tmp/xdg", "wpdocgen")
	if got := Dir(); got != want {
		t.Errorf("Dir() = %q, want %q", got, want)
	}
}
