// Package docblock parses structured documentation comments attached to
// command methods.
//
// A docblock opens with a short description, optionally followed by an
// "## OPTIONS" block and an "## EXAMPLES" block, and may carry an
// "@subcommand <name>" tag overriding the method name:
//
//	Say hi to someone.
//
//	## OPTIONS
//	<name>
//	: The person to greet.
//
//	## EXAMPLES
//	wp greet hello Bob
//
//	@subcommand hello
package docblock

import (
	"regexp"
	"strings"
)

// Section markers. These are the only two markers recognized; this is not a
// general docblock parser.
const (
	OptionsMarker  = "## OPTIONS"
	ExamplesMarker = "## EXAMPLES"
)

var subcommandTag = regexp.MustCompile(`@subcommand[ \t]+(\S+)`)

// MethodDoc is the parsed documentation of one command method. Derived per
// method and discarded after rendering.
type MethodDoc struct {
	Method     string
	Subcommand string
	ShortDesc  string
	Options    string
	Examples   string
}

// Parse parses the documentation comment attached to methodName. Returns
// ok=false for methods without a docblock; they contribute nothing to the
// generated document.
func Parse(methodName, doc string) (MethodDoc, bool) {
	if strings.TrimSpace(doc) == "" {
		return MethodDoc{}, false
	}

	md := MethodDoc{
		Method:     methodName,
		Subcommand: subcommandName(methodName, doc),
	}

	short, body := splitShortDescription(doc)
	md.ShortDesc = short

	// Only the first EXAMPLES marker splits the body; any later occurrence
	// stays inside the examples text.
	parts := strings.SplitN(body, ExamplesMarker, 2)
	md.Options = cleanOptions(parts[0])
	if len(parts) == 2 {
		md.Examples = cleanExamples(parts[1])
	}

	return md, true
}

// subcommandName prefers an explicit @subcommand tag; otherwise the method
// name is used verbatim, with no casing transformation.
func subcommandName(methodName, doc string) string {
	if m := subcommandTag.FindStringSubmatch(doc); m != nil {
		return m[1]
	}
	return methodName
}

// splitShortDescription separates the leading descriptive line(s) from the
// long-description body. The short description ends at the first blank line
// or at the first tagged section.
func splitShortDescription(doc string) (short, body string) {
	lines := strings.Split(doc, "\n")

	var shortLines []string
	i := 0
	for ; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		if line == "" || strings.HasPrefix(line, "##") || strings.HasPrefix(line, "@") {
			break
		}
		shortLines = append(shortLines, line)
	}

	body = strings.Join(stripTagLines(lines[i:]), "\n")
	return strings.Join(shortLines, "\n"), body
}

// stripTagLines drops @-tag lines from the long-description body; tags are
// annotations, not content.
func stripTagLines(lines []string) []string {
	kept := lines[:0:0]
	for _, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "@") {
			continue
		}
		kept = append(kept, line)
	}
	return kept
}

// cleanOptions strips a redundant leading OPTIONS marker and surrounding
// whitespace from the options text.
func cleanOptions(text string) string {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, OptionsMarker)
	return strings.TrimSpace(text)
}

// cleanExamples trims horizontal whitespace from each line, preserving blank
// lines and line order, then drops leading and trailing blank lines.
func cleanExamples(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.Trim(line, " \t")
	}
	return strings.Trim(strings.Join(lines, "\n"), "\n")
}
