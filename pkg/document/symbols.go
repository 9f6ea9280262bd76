package document

import (
	"strings"

	"golang.org/x/net/html"
)

// Symbol is a named element span in a document, from the '<' of its start
// tag to the end of its closing tag.
type Symbol struct {
	Name          string `json:"name"`
	Range         Range  `json:"range"`
	ContainerName string `json:"containerName,omitempty"`
}

// Tag returns the element name part of the symbol name.
func (s Symbol) Tag() string {
	if i := strings.IndexAny(s.Name, "#."); i >= 0 {
		return s.Name[:i]
	}
	return s.Name
}

// SymbolProvider computes the symbol table of a document.
type SymbolProvider interface {
	FindDocumentSymbols(doc Snapshot) []Symbol
}

// voidElements never have content or a closing tag.
var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"param": true, "source": true, "track": true, "wbr": true,
}

// HTMLSymbols finds element symbols with the golang.org/x/net/html tokenizer.
//
// Symbols are returned in document order (parents before children) and are
// named "tag#id.class1.class2". Raw text elements such as script keep their
// body as text, so markup inside a template body produces no symbols.
type HTMLSymbols struct{}

type openElement struct {
	index int
	tag   string
}

// FindDocumentSymbols implements SymbolProvider.
func (HTMLSymbols) FindDocumentSymbols(doc Snapshot) []Symbol {
	text := doc.Text()
	z := html.NewTokenizer(strings.NewReader(text))

	var (
		symbols []Symbol
		starts  []int
		ends    []int
		stack   []openElement
	)
	offset := 0

	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			break
		}
		start := offset
		offset += len(z.Raw())

		switch tt {
		case html.StartTagToken, html.SelfClosingTagToken:
			name, hasAttr := z.TagName()
			tag := string(name)
			var id, class string
			for hasAttr {
				var key, val []byte
				key, val, hasAttr = z.TagAttr()
				switch string(key) {
				case "id":
					id = string(val)
				case "class":
					class = string(val)
				}
			}

			container := ""
			if len(stack) > 0 {
				container = symbols[stack[len(stack)-1].index].Name
			}
			symbols = append(symbols, Symbol{
				Name:          symbolName(tag, id, class),
				ContainerName: container,
			})
			starts = append(starts, start)
			ends = append(ends, offset)

			if tt == html.StartTagToken && !voidElements[tag] {
				stack = append(stack, openElement{index: len(symbols) - 1, tag: tag})
			}

		case html.EndTagToken:
			name, _ := z.TagName()
			tag := string(name)
			for i := len(stack) - 1; i >= 0; i-- {
				if stack[i].tag != tag {
					continue
				}
				// Elements left open above the match end where the closing tag starts.
				for j := len(stack) - 1; j > i; j-- {
					ends[stack[j].index] = start
				}
				ends[stack[i].index] = offset
				stack = stack[:i]
				break
			}
		}
	}

	for _, open := range stack {
		ends[open.index] = len(text)
	}

	for i := range symbols {
		symbols[i].Range = Range{
			Start: doc.PositionAt(starts[i]),
			End:   doc.PositionAt(ends[i]),
		}
	}
	return symbols
}

func symbolName(tag, id, class string) string {
	var sb strings.Builder
	sb.WriteString(tag)
	if id != "" {
		sb.WriteString("#")
		sb.WriteString(id)
	}
	if classes := strings.Fields(class); len(classes) > 0 {
		sb.WriteString(".")
		sb.WriteString(strings.Join(classes, "."))
	}
	return sb.String()
}
