// Package templates finds result template regions, script elements whose body
// holds component markup, and maps positions between a template body and the
// document that contains it.
package templates

import (
	"strings"

	"github.com/open-cli-collective/searchui-cli/pkg/document"
	"github.com/open-cli-collective/searchui-cli/pkg/scan"
)

const (
	// ContainerTag is the element that holds template markup.
	ContainerTag = "script"
	// ClassMarker marks a container as a result template.
	ClassMarker = "result-template"
	// ConditionAttribute holds a single expression condition.
	ConditionAttribute = "data-condition"
	// FieldConditionPrefix starts the per-field condition attributes.
	FieldConditionPrefix = "data-field-"
)

// Template mime types, by template engine.
var (
	HTMLMimeTypes       = []string{"text/html", "text/HTML"}
	UnderscoreMimeTypes = []string{"text/underscore", "text/underscore-template", "text/x-underscore", "text/x-underscore-template"}
)

// MimeTypes returns every registered template mime type.
func MimeTypes() []string {
	return append(append([]string{}, HTMLMimeTypes...), UnderscoreMimeTypes...)
}

// ValidMimeType reports whether value is exactly one of the registered types.
func ValidMimeType(value string) bool {
	for _, mime := range MimeTypes() {
		if value == mime {
			return true
		}
	}
	return false
}

// Region is a template container and its body.
type Region struct {
	Symbol     document.Symbol
	Attributes []scan.Attribute
	// Content is the raw body text between the opening and closing tags.
	Content string
	// ContentStart is the document offset of the first body byte.
	ContentStart int
	// OpeningTagEnd is the document offset just past the opening tag.
	OpeningTagEnd int

	virtual *document.Document
}

// IsRegion reports whether sym is a template container: a script element
// whose class carries the marker or whose type names a template mime type.
func IsRegion(doc document.Snapshot, sym document.Symbol) bool {
	if sym.Tag() != ContainerTag {
		return false
	}
	return qualifies(scan.Symbol(doc, sym, scan.NoCursor))
}

func qualifies(attrs []scan.Attribute) bool {
	if class, ok := scan.Find(attrs, "class"); ok && strings.Contains(class.Value, ClassMarker) {
		return true
	}
	if typ, ok := scan.Find(attrs, "type"); ok {
		for _, mime := range MimeTypes() {
			if strings.Contains(typ.Value, mime) {
				return true
			}
		}
	}
	return false
}

// Find returns the template regions among symbols, in document order.
func Find(doc document.Snapshot, symbols []document.Symbol) []Region {
	var regions []Region
	for _, sym := range symbols {
		if sym.Tag() != ContainerTag {
			continue
		}
		attrs := scan.Symbol(doc, sym, scan.NoCursor)
		if !qualifies(attrs) {
			continue
		}
		regions = append(regions, newRegion(doc, sym, attrs))
	}
	return regions
}

// At returns the region whose container is the innermost symbol at pos.
func At(doc document.Snapshot, symbols []document.Symbol, pos document.Position) (Region, bool) {
	sym, ok := scan.CurrentSymbol(symbols, pos)
	if !ok || sym.Tag() != ContainerTag {
		return Region{}, false
	}
	attrs := scan.Symbol(doc, sym, scan.NoCursor)
	if !qualifies(attrs) {
		return Region{}, false
	}
	return newRegion(doc, sym, attrs), true
}

func newRegion(doc document.Snapshot, sym document.Symbol, attrs []scan.Attribute) Region {
	content, start, openEnd := Content(doc, sym)
	return Region{
		Symbol:        sym,
		Attributes:    attrs,
		Content:       content,
		ContentStart:  start,
		OpeningTagEnd: openEnd,
		virtual:       document.New(doc.URI()+"#template", doc.LanguageID(), content),
	}
}

// Content extracts the raw body of a container symbol. It returns the body,
// the document offset where it starts and the offset just past the opening tag.
func Content(doc document.Snapshot, sym document.Symbol) (string, int, int) {
	base := doc.OffsetAt(sym.Range.Start)
	end := doc.OffsetAt(sym.Range.End)
	if end < base {
		end = base
	}
	s := scan.NewScanner(doc.Text()[base:end])

	var (
		body      strings.Builder
		bodyStart = -1
		openEnd   = -1
	)
	for {
		switch s.Scan() {
		case scan.TokenEOS, scan.TokenEndTagOpen, scan.TokenEndTag, scan.TokenEndTagClose:
			if openEnd < 0 {
				openEnd = s.TokenOffset()
			}
			if bodyStart < 0 {
				bodyStart = openEnd
			}
			return body.String(), base + bodyStart, base + openEnd
		case scan.TokenStartTagClose, scan.TokenStartTagSelfClose:
			if openEnd < 0 {
				openEnd = s.TokenEnd()
			}
		case scan.TokenScript:
			if bodyStart < 0 {
				bodyStart = s.TokenOffset()
			}
			body.WriteString(s.TokenText())
		}
	}
}

// Virtual returns the body as a standalone document.
func (r Region) Virtual() *document.Document {
	if r.virtual == nil {
		return document.New("#template", "html", r.Content)
	}
	return r.virtual
}

// ContainsBody reports whether pos lies within the body, bounds included.
func (r Region) ContainsBody(doc document.Snapshot, pos document.Position) bool {
	offset := doc.OffsetAt(pos)
	return offset >= r.ContentStart && offset <= r.ContentStart+len(r.Content)
}

// InOpeningTag reports whether pos lies on the container's opening tag.
func (r Region) InOpeningTag(doc document.Snapshot, pos document.Position) bool {
	offset := doc.OffsetAt(pos)
	return offset >= doc.OffsetAt(r.Symbol.Range.Start) && offset < r.OpeningTagEnd
}

// Remap translates an outer document position into the body document.
// It reports false when pos is outside the body.
func (r Region) Remap(doc document.Snapshot, pos document.Position) (*document.Document, document.Position, bool) {
	if !r.ContainsBody(doc, pos) {
		return nil, document.Position{}, false
	}
	virtual := r.Virtual()
	return virtual, virtual.PositionAt(doc.OffsetAt(pos) - r.ContentStart), true
}

// ToOuter maps a range of the body document back into doc.
func (r Region) ToOuter(doc document.Snapshot, rng document.Range) document.Range {
	virtual := r.Virtual()
	return document.Range{
		Start: doc.PositionAt(r.ContentStart + virtual.OffsetAt(rng.Start)),
		End:   doc.PositionAt(r.ContentStart + virtual.OffsetAt(rng.End)),
	}
}
