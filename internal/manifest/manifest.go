// Package manifest reads composer-style manifests declaring which commands
// to document.
package manifest

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// FileName is the manifest file expected in the target directory.
const FileName = "composer.json"

// Descriptor identifies one command to document. Immutable once read from
// the manifest.
type Descriptor struct {
	// Command is the display name; it also names the output file.
	Command string
	// TypeName is the provider type declared for the command. Empty for
	// entries from the simple "commands" list, which resolve through the
	// static registry by command name.
	TypeName string
	// SourceFile is the Go source file declaring TypeName, relative to
	// BaseDir. Empty for registry-resolved entries.
	SourceFile string
	// BaseDir is the directory the manifest was read from.
	BaseDir string
}

// composerFile mirrors the manifest shape this tool reads. Extra is a
// pointer so a missing "extra" key is distinguishable from an empty one.
type composerFile struct {
	Extra *extraSection `json:"extra"`
}

type extraSection struct {
	Commands       []string                 `json:"commands"`
	PluginCommands map[string]pluginCommand `json:"wp-cli-commands"`
}

type pluginCommand struct {
	Class string `json:"class"`
	File  string `json:"file"`
}

// Load reads the manifest in dir and returns one Descriptor per configured
// command. A missing file, unparsable JSON, or absent "extra" section is a
// configuration error; an empty descriptor list is not (the caller reports
// it as a warning).
func Load(dir string) ([]Descriptor, error) {
	path := filepath.Join(dir, FileName)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("no %s manifest in %s", FileName, dir)
		}
		return nil, fmt.Errorf("reading manifest %s: %w", path, err)
	}

	var file composerFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing manifest %s: %w", path, err)
	}
	if file.Extra == nil {
		return nil, fmt.Errorf("manifest %s has no \"extra\" section", path)
	}

	descriptors := make([]Descriptor, 0, len(file.Extra.Commands)+len(file.Extra.PluginCommands))

	// Simple list: command names bound to the current project.
	for _, name := range file.Extra.Commands {
		descriptors = append(descriptors, Descriptor{
			Command: name,
			BaseDir: dir,
		})
	}

	// Keyed map: command name -> {class, file} bound to the manifest's
	// directory. Keys are sorted for a deterministic processing order.
	names := make([]string, 0, len(file.Extra.PluginCommands))
	for name := range file.Extra.PluginCommands {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		entry := file.Extra.PluginCommands[name]
		descriptors = append(descriptors, Descriptor{
			Command:    name,
			TypeName:   entry.Class,
			SourceFile: entry.File,
			BaseDir:    dir,
		})
	}

	return descriptors, nil
}
