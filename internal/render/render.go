// Package render assembles markdown reference documents from parsed
// docblocks.
package render

import (
	"fmt"
	"strings"

	"github.com/dkarlsen/wpdocgen/internal/docblock"
)

// Document renders the markdown document for one command. Methods appear in
// the order given (introspection order); no sort is applied. A command with
// no documented methods renders to an empty document.
func Document(prefix, command string, docs []docblock.MethodDoc) string {
	var builder strings.Builder
	for _, md := range docs {
		writeMethod(&builder, prefix, command, md)
	}
	return builder.String()
}

// writeMethod writes one subcommand section: heading, short description,
// then fenced OPTIONS and EXAMPLES blocks when present. Each part ends with
// a blank line, which also separates consecutive methods.
func writeMethod(builder *strings.Builder, prefix, command string, md docblock.MethodDoc) {
	fmt.Fprintf(builder, "# %s %s %s\n\n", prefix, command, md.Subcommand)
	fmt.Fprintf(builder, "%s\n\n", md.ShortDesc)

	if md.Options != "" {
		writeFenced(builder, docblock.OptionsMarker, md.Options)
	}
	if md.Examples != "" {
		writeFenced(builder, docblock.ExamplesMarker, md.Examples)
	}
}

// writeFenced writes a section heading followed by its text in a fenced
// code block.
func writeFenced(builder *strings.Builder, heading, text string) {
	fmt.Fprintf(builder, "%s\n\n", heading)
	fmt.Fprintf(builder, "```\n%s\n```\n\n", strings.TrimSpace(text))
}
