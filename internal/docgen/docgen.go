// Package docgen drives the documentation pipeline: manifest descriptors are
// resolved to providers, their docblocks parsed, and one markdown file per
// command written to the destination directory.
package docgen

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dkarlsen/wpdocgen/internal/docblock"
	"github.com/dkarlsen/wpdocgen/internal/loader"
	"github.com/dkarlsen/wpdocgen/internal/manifest"
	"github.com/dkarlsen/wpdocgen/internal/registry"
	"github.com/dkarlsen/wpdocgen/internal/render"
)

// Result accumulates the outcome of one run. It is returned from the
// pipeline rather than kept in shared state.
type Result struct {
	Generated int      `json:"generated"`
	Files     []string `json:"files,omitempty"`
	Warnings  []string `json:"warnings,omitempty"`
}

// Generator runs the pipeline for one destination directory. Descriptors
// are processed independently and sequentially; there is no retry and no
// rollback.
type Generator struct {
	// Destination is the output directory, created recursively if absent.
	Destination string
	// Prefix is the leading token of generated headings.
	Prefix string
	// Progress, when set, is called with each written file path.
	Progress func(file string)
}

// Run processes the descriptors through the pipeline. It returns an error
// only when the destination directory cannot be created; unresolvable
// commands and write failures are accumulated as warnings and skip only the
// affected command.
func (g *Generator) Run(descriptors []manifest.Descriptor) (Result, error) {
	var res Result

	if err := os.MkdirAll(g.Destination, 0o755); err != nil {
		return res, fmt.Errorf("creating destination directory %s: %w", g.Destination, err)
	}

	l := loader.New()
	for _, desc := range descriptors {
		provider, err := l.Resolve(desc)
		if err != nil {
			res.Warnings = append(res.Warnings, err.Error())
			continue
		}

		document := render.Document(g.Prefix, desc.Command, parseMethods(provider.Methods()))

		// Output path is destination + command name, unescaped.
		path := filepath.Join(g.Destination, desc.Command+".md")
		if err := os.WriteFile(path, []byte(document), 0o644); err != nil {
			res.Warnings = append(res.Warnings, fmt.Sprintf("writing %s: %v", path, err))
			continue
		}

		res.Generated++
		res.Files = append(res.Files, path)
		if g.Progress != nil {
			g.Progress(path)
		}
	}

	return res, nil
}

// parseMethods parses each method's docblock, dropping undocumented methods.
// Order is preserved.
func parseMethods(methods []registry.Method) []docblock.MethodDoc {
	var docs []docblock.MethodDoc
	for _, m := range methods {
		if md, ok := docblock.Parse(m.Name, m.Doc); ok {
			docs = append(docs, md)
		}
	}
	return docs
}
