package scan

import (
	"strings"

	"github.com/open-cli-collective/searchui-cli/pkg/document"
)

// NoCursor disables cursor tracking in Attributes.
const NoCursor = -1

// Attribute is one attribute occurrence in an opening tag.
type Attribute struct {
	// Name is the lower-cased markup name, e.g. data-result-template.
	Name string `json:"name"`
	// Value is the literal value with one layer of matching quotes removed.
	Value             string         `json:"value"`
	ActiveUnderCursor bool           `json:"activeUnderCursor"`
	Range             document.Range `json:"range"`
}

// Attributes scans the opening tag that starts rng and returns its attributes
// in source order. Duplicates are kept.
//
// cursor is an absolute document offset; an attribute is active when the
// cursor lies within its value token, quotes included. Scanning stops at the
// first tag close. A name followed by '=' and then a tag boundary is dropped.
func Attributes(doc document.Snapshot, rng document.Range, cursor int) []Attribute {
	start := doc.OffsetAt(rng.Start)
	end := doc.OffsetAt(rng.End)
	text := doc.Text()
	if start >= end || start >= len(text) {
		return nil
	}
	if end > len(text) {
		end = len(text)
	}

	relCursor := NoCursor
	if cursor != NoCursor {
		relCursor = cursor - start
	}

	s := NewScanner(text[start:end])
	var (
		attrs      []Attribute
		pending    *Attribute
		nameEnd    int
		assigned   bool
		tagsOpened int
	)

	flush := func() {
		if pending != nil && !assigned {
			pending.Range.End = doc.PositionAt(start + nameEnd)
			attrs = append(attrs, *pending)
		}
		pending = nil
		assigned = false
	}

	for {
		switch s.Scan() {
		case TokenEOS, TokenStartTagClose, TokenStartTagSelfClose, TokenEndTagOpen:
			flush()
			return attrs

		case TokenStartTagOpen:
			tagsOpened++
			if tagsOpened > 1 {
				flush()
				return attrs
			}

		case TokenAttributeName:
			flush()
			pending = &Attribute{
				Name:  strings.ToLower(s.TokenText()),
				Range: document.Range{Start: doc.PositionAt(start + s.TokenOffset())},
			}
			nameEnd = s.TokenEnd()

		case TokenDelimiterAssign:
			if pending != nil {
				assigned = true
			}

		case TokenAttributeValue:
			if pending == nil || !assigned {
				continue
			}
			pending.Value = unquote(s.TokenText())
			pending.ActiveUnderCursor = relCursor != NoCursor &&
				relCursor >= s.TokenOffset() && relCursor <= s.TokenEnd()
			pending.Range.End = doc.PositionAt(start + s.TokenEnd())
			attrs = append(attrs, *pending)
			pending = nil
			assigned = false
		}
	}
}

// unquote strips one layer of matching quotes.
func unquote(value string) string {
	if len(value) >= 2 {
		first, last := value[0], value[len(value)-1]
		if first == last && (first == '"' || first == '\'') {
			return value[1 : len(value)-1]
		}
	}
	return value
}

// Symbol scans the opening tag of sym.
func Symbol(doc document.Snapshot, sym document.Symbol, cursor int) []Attribute {
	return Attributes(doc, sym.Range, cursor)
}

// CurrentSymbol returns the innermost symbol containing pos. Symbols must be
// in document order with parents before children.
func CurrentSymbol(symbols []document.Symbol, pos document.Position) (document.Symbol, bool) {
	for i := len(symbols) - 1; i >= 0; i-- {
		if symbols[i].Range.Contains(pos) {
			return symbols[i], true
		}
	}
	return document.Symbol{}, false
}

// AtPosition resolves the symbol enclosing pos and scans its opening tag with
// the cursor at pos.
func AtPosition(doc document.Snapshot, provider document.SymbolProvider, pos document.Position) (document.Symbol, []Attribute, bool) {
	sym, ok := CurrentSymbol(provider.FindDocumentSymbols(doc), pos)
	if !ok {
		return document.Symbol{}, nil, false
	}
	return sym, Symbol(doc, sym, doc.OffsetAt(pos)), true
}

// ActiveAttribute returns the attribute under the cursor, if any.
func ActiveAttribute(attrs []Attribute) (Attribute, bool) {
	for _, attr := range attrs {
		if attr.ActiveUnderCursor {
			return attr, true
		}
	}
	return Attribute{}, false
}

// Find returns the first attribute named name, ignoring case.
func Find(attrs []Attribute, name string) (Attribute, bool) {
	for _, attr := range attrs {
		if strings.EqualFold(attr.Name, name) {
			return attr, true
		}
	}
	return Attribute{}, false
}

// FindAll returns every attribute named name, ignoring case.
func FindAll(attrs []Attribute, name string) []Attribute {
	var found []Attribute
	for _, attr := range attrs {
		if strings.EqualFold(attr.Name, name) {
			found = append(found, attr)
		}
	}
	return found
}
