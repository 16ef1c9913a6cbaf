package output

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Printer handles formatted output to a writer.
// It supports both JSON and human-readable output modes.
type Printer struct {
	w      io.Writer
	errW   io.Writer
	json   bool
	isTTY  bool
	styles *Styles
}

// Styles holds lipgloss styles for human-readable output.
type Styles struct {
	Error   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Bold    lipgloss.Style
	Dim     lipgloss.Style
}

// NewPrinter creates a new Printer.
// If jsonMode is true, output will be JSON formatted.
// If isTTY is true, colors will be enabled for human output.
func NewPrinter(writer io.Writer, jsonMode bool, isTTY bool) *Printer {
	styles := &Styles{
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true), // Red
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),           // Green
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),           // Yellow
		Bold:    lipgloss.NewStyle().Bold(true),
		Dim:     lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}

	// Disable colors if not a TTY
	if !isTTY {
		styles.Error = lipgloss.NewStyle()
		styles.Success = lipgloss.NewStyle()
		styles.Warning = lipgloss.NewStyle()
		styles.Bold = lipgloss.NewStyle()
		styles.Dim = lipgloss.NewStyle()
	}

	return &Printer{
		w:      writer,
		errW:   writer,
		json:   jsonMode,
		isTTY:  isTTY,
		styles: styles,
	}
}

// WithStderr sets a separate writer for errors and warnings in human mode.
// In JSON mode, errors still go to the main writer (structured protocol).
// Returns the printer for chaining.
func (p *Printer) WithStderr(w io.Writer) *Printer {
	p.errW = w
	return p
}

// IsJSON returns true if the printer is in JSON mode.
func (p *Printer) IsJSON() bool {
	return p.json
}

// Success outputs a success result.
// For JSON mode, outputs the data as JSON.
// For human mode, looks for a "message" key or pretty-prints the data.
func (p *Printer) Success(data map[string]any) error {
	if p.json {
		return p.writeJSON(data)
	}

	if msg, ok := data["message"].(string); ok {
		mustWrite(fmt.Fprintln(p.w, p.styles.Success.Render(msg)))
		return nil
	}

	for key, val := range data {
		mustWrite(fmt.Fprintf(p.w, "%s: %v\n", p.styles.Bold.Render(key), val))
	}
	return nil
}

// Error outputs an error.
// For JSON mode, outputs {"error": "...", "code": N} to stdout.
// For human mode, outputs a styled error message to stderr (if set).
func (p *Printer) Error(err error) {
	exitErr := &ExitError{}
	ok := errors.As(err, &exitErr)
	if !ok {
		exitErr = &ExitError{
			Code:    ExitUserError,
			Message: err.Error(),
		}
	}

	if p.json {
		mustWrite(p.w.Write(ErrorJSON(exitErr.Message, exitErr.Code)))
		mustWrite(fmt.Fprintln(p.w))
		return
	}

	mustWrite(fmt.Fprintf(p.errW, "%s: %s\n", p.styles.Error.Render("Error"), exitErr.Message))
}

// Warn outputs a warning message.
// For JSON mode, outputs {"warning": "..."} to stdout.
// For human mode, outputs a styled warning to stderr (if set).
func (p *Printer) Warn(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if p.json {
		data := map[string]any{"warning": msg}
		_ = p.writeJSON(data)
		return
	}
	mustWrite(fmt.Fprintf(p.errW, "%s: %s\n", p.styles.Warning.Render("Warning"), msg))
}

// Progress writes a per-item progress line in human mode.
// No-op in JSON mode; the final structured result carries the file list.
func (p *Printer) Progress(format string, args ...any) {
	if p.json {
		return
	}
	mustWrite(fmt.Fprintf(p.w, format+"\n", args...))
}

// Print formats and writes to the output without a newline.
func (p *Printer) Print(format string, args ...any) {
	mustWrite(fmt.Fprintf(p.w, format, args...))
}

// Println writes a line to the output.
func (p *Printer) Println(args ...any) {
	mustWrite(fmt.Fprintln(p.w, args...))
}

// writeJSON encodes data as JSON and writes it.
func (p *Printer) writeJSON(data any) error {
	enc := json.NewEncoder(p.w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	return nil
}

// WriteJSON encodes any data as JSON and writes it.
// Use this for outputting structs or other types that aren't maps.
func (p *Printer) WriteJSON(data any) error {
	return p.writeJSON(data)
}

// ErrorJSON returns JSON-formatted error bytes.
// Format: {"error": "message", "code": N}
func ErrorJSON(message string, code int) []byte {
	data := map[string]any{
		"error": message,
		"code":  code,
	}
	result, _ := json.Marshal(data)
	return result
}

// mustWrite panics if a write operation fails.
// Use this to wrap write operations that should never fail
// (e.g., writing to stdout/stderr or buffers).
func mustWrite(_ int, err error) {
	if err != nil {
		panic(fmt.Sprintf("write failed: %v", err))
	}
}
