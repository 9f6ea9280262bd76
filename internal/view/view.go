// Package view provides output formatting for sui commands.
package view

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
)

// Format is an output format selected with --output or output_format.
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatPlain Format = "plain"
)

// ValidFormats returns the accepted output format names, default first.
func ValidFormats() []string {
	return []string{string(FormatTable), string(FormatJSON), string(FormatPlain)}
}

// ValidateFormat checks an output format name. Empty selects the default.
func ValidateFormat(format string) error {
	if format == "" || slices.Contains(ValidFormats(), format) {
		return nil
	}
	return fmt.Errorf("invalid output format %q (valid: %s)", format, strings.Join(ValidFormats(), ", "))
}

// Renderer writes command output in one format. Commands producing
// structured results check Format() and call RenderJSON themselves; the
// table, key/value and status helpers cover the human-readable formats.
type Renderer struct {
	format  Format
	writer  io.Writer
	noColor bool
}

// NewRenderer creates a renderer writing to stdout.
func NewRenderer(format Format, noColor bool) *Renderer {
	if noColor {
		color.NoColor = true
	}
	return &Renderer{
		format:  format,
		writer:  os.Stdout,
		noColor: noColor,
	}
}

// Format returns the renderer's output format.
func (r *Renderer) Format() Format {
	return r.format
}

// SetWriter sets the output writer.
func (r *Renderer) SetWriter(w io.Writer) {
	r.writer = w
}

// RenderTable prints rows under a bold header with padded columns. Plain
// output drops the header and separates cells with tabs so it can be piped
// into cut or awk.
func (r *Renderer) RenderTable(headers []string, rows [][]string) {
	if r.format == FormatPlain {
		for _, row := range rows {
			fmt.Fprintln(r.writer, strings.Join(row, "\t"))
		}
		return
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = utf8.RuneCountInString(h)
	}
	for _, row := range rows {
		for i := 0; i < len(row) && i < len(widths); i++ {
			widths[i] = max(widths[i], utf8.RuneCountInString(row[i]))
		}
	}

	bold := color.New(color.Bold)
	bold.Fprintln(r.writer, padRow(headers, widths))
	for _, row := range rows {
		fmt.Fprintln(r.writer, padRow(row, widths))
	}
}

func padRow(cells []string, widths []int) string {
	var sb strings.Builder
	for i, cell := range cells {
		if i > 0 {
			sb.WriteString("  ")
		}
		sb.WriteString(cell)
		// the last column is never padded
		if i < len(widths) && i < len(cells)-1 {
			sb.WriteString(strings.Repeat(" ", widths[i]-utf8.RuneCountInString(cell)))
		}
	}
	return sb.String()
}

// RenderJSON renders a value as indented JSON.
func (r *Renderer) RenderJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	fmt.Fprintln(r.writer, string(data))
	return nil
}

// RenderText prints text followed by a newline.
func (r *Renderer) RenderText(text string) {
	fmt.Fprintln(r.writer, text)
}

// RenderKeyValue prints "key: value", with the key in bold for table output.
func (r *Renderer) RenderKeyValue(key, value string) {
	if r.format == FormatPlain {
		fmt.Fprintf(r.writer, "%s: %s\n", key, value)
		return
	}
	color.New(color.Bold).Fprintf(r.writer, "%s: ", key)
	fmt.Fprintln(r.writer, value)
}

// Success prints a status line prefixed with a check mark.
func (r *Renderer) Success(msg string) {
	color.New(color.FgGreen).Fprintln(r.writer, "✓ "+msg)
}

// Warning prints a status line prefixed with "!".
func (r *Renderer) Warning(msg string) {
	color.New(color.FgYellow).Fprintln(r.writer, "! "+msg)
}

// Truncate shortens s to at most maxLen runes, ending in "..." when cut.
func Truncate(s string, maxLen int) string {
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	runes := []rune(s)
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}
