package diagnose

import (
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/open-cli-collective/searchui-cli/pkg/document"
	"github.com/open-cli-collective/searchui-cli/pkg/scan"
	"github.com/open-cli-collective/searchui-cli/pkg/templates"
)

var (
	classMessage = fmt.Sprintf("Result templates should have the %q class name", templates.ClassMarker)
	mimeMessage  = fmt.Sprintf(
		"Result templates should have a valid \"type\" attribute. Possible values are %s for \"HTML\" templates, and %s for \"Underscore\" templates",
		strings.Join(templates.HTMLMimeTypes, ", "),
		strings.Join(templates.UnderscoreMimeTypes, ", "),
	)
	conditionMessage = fmt.Sprintf(
		"Result template should not have both a %q and data-field attribute. Choose one or the other. The data-field attribute is the recommended method.",
		templates.ConditionAttribute,
	)
	emptyMessage = "Templates should not be empty"
	rootMessage  = `Templates should have a single "root" element. This means a single "div" element inside which your whole template should be contained`

	fieldConditionPattern = regexp.MustCompile(`(?i)data-field-[a-zA-Z]`)
)

// Templates checks the structure of every result template in doc.
func (e *Engine) Templates(doc document.Snapshot) []Diagnostic {
	var diags []Diagnostic
	for _, region := range e.resolver.Templates(doc) {
		diags = append(diags, templateClass(region)...)
		diags = append(diags, templateType(region)...)
		diags = append(diags, templateConditions(region)...)
		diags = append(diags, templateContent(region)...)
	}
	return diags
}

func templateClass(region templates.Region) []Diagnostic {
	class, ok := scan.Find(region.Attributes, "class")
	if !ok {
		return []Diagnostic{newError(region.Symbol.Range, classMessage)}
	}
	if !strings.Contains(class.Value, templates.ClassMarker) {
		return []Diagnostic{newError(class.Range, classMessage)}
	}
	return nil
}

func templateType(region templates.Region) []Diagnostic {
	typ, ok := scan.Find(region.Attributes, "type")
	if !ok || !templates.ValidMimeType(typ.Value) {
		return []Diagnostic{newError(region.Symbol.Range, mimeMessage)}
	}
	return nil
}

func templateConditions(region templates.Region) []Diagnostic {
	_, hasCondition := scan.Find(region.Attributes, templates.ConditionAttribute)
	if !hasCondition {
		return nil
	}
	for _, attr := range region.Attributes {
		if fieldConditionPattern.MatchString(attr.Name) {
			return []Diagnostic{newError(region.Symbol.Range, conditionMessage)}
		}
	}
	return nil
}

func templateContent(region templates.Region) []Diagnostic {
	if strings.TrimSpace(region.Content) == "" {
		return []Diagnostic{newError(region.Symbol.Range, emptyMessage)}
	}
	if rootElements(region.Content) != 1 {
		return []Diagnostic{newError(region.Symbol.Range, rootMessage)}
	}
	return nil
}

// rootElements counts the top-level elements of a template body parsed as
// the content of a body element.
func rootElements(content string) int {
	context := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(strings.NewReader(content), context)
	if err != nil {
		return 0
	}
	count := 0
	for _, n := range nodes {
		if n.Type == html.ElementNode {
			count++
		}
	}
	return count
}
