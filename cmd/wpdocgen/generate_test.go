package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dkarlsen/wpdocgen/internal/manifest"
	"github.com/dkarlsen/wpdocgen/internal/output"
)

const greetSource = `package plugin

type Foo struct{}

// Say hi.
//
// ## OPTIONS
//
// <name>
// : The person to greet.
//
// ## EXAMPLES
//
//	wp greet hello Bob
//
// @subcommand hello
func (f *Foo) Greet() {}
`

// writeProject creates a manifest and source file fixture.
func writeProject(t *testing.T, manifestJSON string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, manifest.FileName), []byte(manifestJSON), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "foo.go"), []byte(greetSource), 0o600); err != nil {
		t.Fatal(err)
	}
	return dir
}

// execGenerate runs the generate command with the given extra args.
func execGenerate(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	t.Setenv("WPDOCGEN_DESTINATION", "")
	t.Setenv("WPDOCGEN_PREFIX", "")

	cmd := newRootCmd()
	outBuf := new(bytes.Buffer)
	errBuf := new(bytes.Buffer)
	cmd.SetOut(outBuf)
	cmd.SetErr(errBuf)
	cmd.SetArgs(append([]string{"generate"}, args...))

	err = cmd.Execute()
	return outBuf.String(), errBuf.String(), err
}

func TestGenerateCommand(t *testing.T) {
	dir := writeProject(t, `{"extra":{"wp-cli-commands":{"greet":{"class":"Foo","file":"foo.go"}}}}`)
	dest := filepath.Join(dir, "docs")

	stdout, _, err := execGenerate(t, dir, "--destination", dest)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	if !strings.Contains(stdout, "generated "+filepath.Join(dest, "greet.md")) {
		t.Errorf("missing progress line: %q", stdout)
	}
	if !strings.Contains(stdout, "Generated 1 doc file(s)") {
		t.Errorf("missing summary: %q", stdout)
	}

	data, err := os.ReadFile(filepath.Join(dest, "greet.md"))
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	content := string(data)

	wantContains := []string{
		"# wp greet hello\n\nSay hi.",
		"## OPTIONS",
		"```\n<name>\n: The person to greet.\n```",
		"## EXAMPLES",
		"wp greet hello Bob",
	}
	for _, want := range wantContains {
		if !strings.Contains(content, want) {
			t.Errorf("doc missing %q:\n%s", want, content)
		}
	}
}

func TestGenerateCommand_JSONOutput(t *testing.T) {
	dir := writeProject(t, `{"extra":{"wp-cli-commands":{"greet":{"class":"Foo","file":"foo.go"}}}}`)
	dest := filepath.Join(dir, "docs")

	stdout, _, err := execGenerate(t, dir, "--destination", dest, "--json")
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	var result map[string]any
	if err := json.Unmarshal([]byte(stdout), &result); err != nil {
		t.Fatalf("output should be JSON: %v\n%s", err, stdout)
	}
	if int(result["generated"].(float64)) != 1 {
		t.Errorf("generated = %v", result["generated"])
	}
}

func TestGenerateCommand_MissingManifest(t *testing.T) {
	_, stderr, err := execGenerate(t, t.TempDir())
	if err == nil {
		t.Fatal("generate should fail without a manifest")
	}
	if output.GetExitCode(err) != output.ExitUserError {
		t.Errorf("exit code = %d, want %d", output.GetExitCode(err), output.ExitUserError)
	}
	if !strings.Contains(stderr, manifest.FileName) {
		t.Errorf("stderr should name the manifest: %q", stderr)
	}
}

func TestGenerateCommand_MissingExtraWritesNothing(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, manifest.FileName), []byte(`{"name":"x"}`), 0o600); err != nil {
		t.Fatal(err)
	}
	dest := filepath.Join(dir, "docs")

	_, _, err := execGenerate(t, dir, "--destination", dest)
	if err == nil {
		t.Fatal("generate should fail when extra is absent")
	}
	if _, statErr := os.Stat(dest); !os.IsNotExist(statErr) {
		t.Error("no files should be written on a configuration error")
	}
}

func TestGenerateCommand_UnresolvableCommandWarns(t *testing.T) {
	dir := writeProject(t, `{"extra":{"wp-cli-commands":{
		"greet": {"class":"Foo","file":"foo.go"},
		"ghost": {"class":"Ghost","file":"ghost.go"}
	}}}`)
	dest := filepath.Join(dir, "docs")

	stdout, stderr, err := execGenerate(t, dir, "--destination", dest)
	if err != nil {
		t.Fatalf("per-command failures must not fail the run: %v", err)
	}
	if !strings.Contains(stderr, "ghost") {
		t.Errorf("stderr should warn about ghost: %q", stderr)
	}
	if !strings.Contains(stdout, "Generated 1 doc file(s)") {
		t.Errorf("greet should still be generated: %q", stdout)
	}
}

func TestGenerateCommand_NothingGenerated(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, manifest.FileName), []byte(`{"extra":{}}`), 0o600); err != nil {
		t.Fatal(err)
	}

	stdout, stderr, err := execGenerate(t, dir, "--destination", filepath.Join(dir, "docs"))
	if err != nil {
		t.Fatalf("empty command list is not fatal: %v", err)
	}
	if !strings.Contains(stderr, "nothing generated") {
		t.Errorf("stderr should carry the warning: %q", stderr)
	}
	if strings.Contains(stdout, "Generated") {
		t.Errorf("no success summary expected: %q", stdout)
	}
}

func TestGenerateCommand_RerunOverwrites(t *testing.T) {
	dir := writeProject(t, `{"extra":{"wp-cli-commands":{"greet":{"class":"Foo","file":"foo.go"}}}}`)
	dest := filepath.Join(dir, "docs")

	if _, _, err := execGenerate(t, dir, "--destination", dest); err != nil {
		t.Fatalf("first run failed: %v", err)
	}
	if _, _, err := execGenerate(t, dir, "--destination", dest); err != nil {
		t.Fatalf("rerun with existing destination failed: %v", err)
	}
}

func TestGenerateCommand_PrefixFlag(t *testing.T) {
	dir := writeProject(t, `{"extra":{"wp-cli-commands":{"greet":{"class":"Foo","file":"foo.go"}}}}`)
	dest := filepath.Join(dir, "docs")

	if _, _, err := execGenerate(t, dir, "--destination", dest, "--prefix", "acme"); err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dest, "greet.md"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "# acme greet hello") {
		t.Errorf("doc should use the flag prefix:\n%s", data)
	}
}

func TestGenerateCommand_SettingsFile(t *testing.T) {
	dir := writeProject(t, `{"extra":{"wp-cli-commands":{"greet":{"class":"Foo","file":"foo.go"}}}}`)
	settings := "destination: " + filepath.Join(dir, "ref") + "\nprefix: mycli\n"
	if err := os.WriteFile(filepath.Join(dir, ".wpdocgen.yaml"), []byte(settings), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, _, err := execGenerate(t, dir); err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "ref", "greet.md"))
	if err != nil {
		t.Fatalf("settings file destination not honored: %v", err)
	}
	if !strings.Contains(string(data), "# mycli greet hello") {
		t.Errorf("settings file prefix not honored:\n%s", data)
	}
}
