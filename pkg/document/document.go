// Package document provides the read-only text documents and symbol tables
// the markup analysers work on.
//
// Positions are zero-based. Character offsets count bytes within a line.
package document

import (
	"fmt"
	"sort"
	"strings"
)

// Position is a zero-based line and character pair.
type Position struct {
	Line      int `json:"line"`
	Character int `json:"character"`
}

// Before reports whether p comes strictly before other.
func (p Position) Before(other Position) bool {
	if p.Line != other.Line {
		return p.Line < other.Line
	}
	return p.Character < other.Character
}

// String renders the position one-based, the way editors display it.
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line+1, p.Character+1)
}

// Range is a start/end position pair. End is inclusive for containment checks.
type Range struct {
	Start Position `json:"start"`
	End   Position `json:"end"`
}

// Contains reports whether pos lies within r, bounds included.
func (r Range) Contains(pos Position) bool {
	return !pos.Before(r.Start) && !r.End.Before(pos)
}

// String renders the range as start-end.
func (r Range) String() string {
	return r.Start.String() + "-" + r.End.String()
}

// Snapshot is the view of a text document consumed by the analysers.
// A snapshot never changes after creation.
type Snapshot interface {
	URI() string
	LanguageID() string
	Text() string
	GetText(r Range) string
	PositionAt(offset int) Position
	OffsetAt(pos Position) int
}

// Document is an immutable in-memory text document.
type Document struct {
	uri        string
	languageID string
	text       string
	lineStarts []int
}

// New creates a document snapshot of text.
func New(uri, languageID, text string) *Document {
	lineStarts := []int{0}
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			lineStarts = append(lineStarts, i+1)
		}
	}
	return &Document{
		uri:        uri,
		languageID: languageID,
		text:       text,
		lineStarts: lineStarts,
	}
}

// LanguageFromPath guesses a language identifier from a file name.
func LanguageFromPath(path string) string {
	lower := strings.ToLower(path)
	switch {
	case strings.HasSuffix(lower, ".page"), strings.HasSuffix(lower, ".component"):
		return "visualforce"
	case strings.HasSuffix(lower, ".cmp"):
		return "aura"
	default:
		return "html"
	}
}

// URI returns the document identifier.
func (d *Document) URI() string { return d.uri }

// LanguageID returns the language identifier, e.g. "html".
func (d *Document) LanguageID() string { return d.languageID }

// Text returns the full document text.
func (d *Document) Text() string { return d.text }

// LineCount returns the number of lines in the document.
func (d *Document) LineCount() int { return len(d.lineStarts) }

// GetText returns the text covered by r.
func (d *Document) GetText(r Range) string {
	start := d.OffsetAt(r.Start)
	end := d.OffsetAt(r.End)
	if end < start {
		return ""
	}
	return d.text[start:end]
}

// PositionAt converts a byte offset into a position, clamping to the document bounds.
func (d *Document) PositionAt(offset int) Position {
	if offset < 0 {
		offset = 0
	}
	if offset > len(d.text) {
		offset = len(d.text)
	}
	line := sort.Search(len(d.lineStarts), func(i int) bool {
		return d.lineStarts[i] > offset
	}) - 1
	return Position{Line: line, Character: offset - d.lineStarts[line]}
}

// OffsetAt converts a position into a byte offset, clamping to the line bounds.
func (d *Document) OffsetAt(pos Position) int {
	if pos.Line < 0 {
		return 0
	}
	if pos.Line >= len(d.lineStarts) {
		return len(d.text)
	}
	lineStart := d.lineStarts[pos.Line]
	lineEnd := len(d.text)
	if pos.Line+1 < len(d.lineStarts) {
		lineEnd = d.lineStarts[pos.Line+1] - 1
	}
	offset := lineStart + pos.Character
	if offset > lineEnd {
		offset = lineEnd
	}
	if offset < lineStart {
		offset = lineStart
	}
	return offset
}
