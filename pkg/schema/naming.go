package schema

import (
	"regexp"
	"strings"
	"unicode"
)

// ComponentPrefix prefixes component names in markup class attributes.
const ComponentPrefix = "Coveo"

var (
	camelCaseToHyphenPattern = regexp.MustCompile(`([A-Z])|\W+(\w)`)

	// symbolComponentPattern extracts the first class of a symbol named
	// "tag.Class" or "tag#id.Class". Only the first class is considered.
	symbolComponentPattern = regexp.MustCompile(`[a-zA-Z-]*\.([a-zA-Z-]+)`)

	optionNamePattern = regexp.MustCompile(`^[a-zA-Z]+$`)

	interfaceNamePattern  = regexp.MustCompile(`^I[A-Z]`)
	controllerNamePattern = regexp.MustCompile(`Controller$`)
	eventNamePattern      = regexp.MustCompile(`(Events?|EventArgs|Args)$`)
)

// Hyphenate converts a camelCase option name to its markup attribute name:
// resultTemplate becomes data-result-template.
func Hyphenate(optionName string) string {
	return "data-" + strings.ToLower(camelCaseToHyphenPattern.ReplaceAllString(optionName, "-${1}${2}"))
}

// Camelize converts a markup attribute name back to a camelCase option name:
// data-result-template becomes resultTemplate.
func Camelize(attributeName string) string {
	name := strings.TrimPrefix(strings.ToLower(attributeName), "data-")
	var sb strings.Builder
	upper := false
	for _, r := range name {
		if r == '-' {
			upper = true
			continue
		}
		if upper {
			r = unicode.ToUpper(r)
			upper = false
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// ComponentFromSymbolName extracts the class name a symbol name refers to,
// e.g. "CoveoSearchbox" from "div.CoveoSearchbox".
func ComponentFromSymbolName(symbolName string) (string, bool) {
	m := symbolComponentPattern.FindStringSubmatch(symbolName)
	if m == nil || m[1] == "" {
		return "", false
	}
	return m[1], true
}

// MarkupClass returns the class attribute value that instantiates a component.
func MarkupClass(componentName string) string {
	return ComponentPrefix + componentName
}

// isComponentName applies the naming heuristics that separate components
// from interfaces, controllers, events and dotted documentation paths.
func isComponentName(name string) bool {
	if name == "" || strings.Contains(name, ".") {
		return false
	}
	if !unicode.IsUpper(rune(name[0])) {
		return false
	}
	if interfaceNamePattern.MatchString(name) ||
		controllerNamePattern.MatchString(name) ||
		eventNamePattern.MatchString(name) {
		return false
	}
	return true
}
