package diagnose

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/open-cli-collective/searchui-cli/pkg/document"
	"github.com/open-cli-collective/searchui-cli/pkg/scan"
	"github.com/open-cli-collective/searchui-cli/pkg/schema"
)

const duplicateMessage = "Remove duplicate option inside the same component."

var fieldPattern = regexp.MustCompile(`^@[a-zA-Z0-9_\.]+$`)

// Options checks the attributes of every documented component in doc,
// including components inside template bodies.
func (e *Engine) Options(doc document.Snapshot) []Diagnostic {
	var diags []Diagnostic
	identity := func(r document.Range) document.Range { return r }

	for _, sym := range e.resolver.ComponentSymbols(doc) {
		diags = append(diags, e.component(doc, sym, identity)...)
	}

	for _, region := range e.resolver.Templates(doc) {
		virtual := region.Virtual()
		toOuter := func(r document.Range) document.Range { return region.ToOuter(doc, r) }
		for _, sym := range e.resolver.ComponentSymbols(virtual) {
			diags = append(diags, e.component(virtual, sym, toOuter)...)
		}
	}
	return diags
}

func (e *Engine) component(doc document.Snapshot, sym document.Symbol, mapRange func(document.Range) document.Range) []Diagnostic {
	component, ok := e.resolver.Component(sym)
	if !ok {
		return nil
	}
	attrs := scan.Symbol(doc, sym, scan.NoCursor)

	var diags []Diagnostic
	diags = append(diags, duplicates(attrs)...)
	diags = append(diags, missingRequired(component, sym.Range, attrs)...)
	diags = append(diags, invalidConstrained(component, attrs)...)
	diags = append(diags, invalidTyped(component, attrs)...)

	for i := range diags {
		diags[i].Range = mapRange(diags[i].Range)
	}
	return diags
}

// duplicates flags every occurrence of an attribute after its first.
func duplicates(attrs []scan.Attribute) []Diagnostic {
	var diags []Diagnostic
	seen := make(map[string]bool, len(attrs))
	for _, attr := range attrs {
		if seen[attr.Name] {
			diags = append(diags, newError(attr.Range, duplicateMessage))
			continue
		}
		seen[attr.Name] = true
	}
	return diags
}

func missingRequired(component *schema.Entity, symbolRange document.Range, attrs []scan.Attribute) []Diagnostic {
	var diags []Diagnostic
	for _, option := range component.Options {
		if !option.Required() {
			continue
		}
		present := false
		for _, attr := range scan.FindAll(attrs, option.MarkupName()) {
			if attr.Value != "" {
				present = true
				break
			}
		}
		if !present {
			diags = append(diags, newError(symbolRange,
				fmt.Sprintf("Missing required option %q (%s).", option.Name, option.MarkupName())))
		}
	}
	return diags
}

func invalidConstrained(component *schema.Entity, attrs []scan.Attribute) []Diagnostic {
	var diags []Diagnostic
	for _, attr := range attrs {
		option, ok := component.OptionByAttribute(attr.Name)
		if !ok || len(option.ConstrainedValues) == 0 {
			continue
		}
		allowed := make(map[string]bool)
		for _, v := range option.AllowedValues() {
			allowed[v] = true
		}
		for _, token := range strings.Split(attr.Value, ",") {
			if token == "" || allowed[token] {
				continue
			}
			diags = append(diags, newError(attr.Range,
				fmt.Sprintf("Invalid value %q for option %q.", token, option.Name)))
		}
	}
	return diags
}

func invalidTyped(component *schema.Entity, attrs []scan.Attribute) []Diagnostic {
	var diags []Diagnostic
	for _, attr := range attrs {
		option, ok := component.OptionByAttribute(attr.Name)
		if !ok {
			continue
		}
		if msg, ok := checkType(option, attr.Value); !ok {
			diags = append(diags, newError(attr.Range, msg))
		}
	}
	return diags
}

// checkType validates a literal against the option type. Types without a
// literal syntax always pass.
func checkType(option *schema.Entity, value string) (string, bool) {
	switch schema.TypeOf(option) {
	case schema.TypeBoolean:
		lower := strings.ToLower(value)
		if lower != "true" && lower != "false" {
			return fmt.Sprintf("Option %q of type %s must be \"true\" or \"false\", got %q.", option.Name, option.Type, value), false
		}
	case schema.TypeNumber:
		if !isNumber(value) {
			return fmt.Sprintf("Option %q of type %s must be a number, got %q.", option.Name, option.Type, value), false
		}
	case schema.TypeField:
		if !fieldPattern.MatchString(strings.ToLower(value)) {
			return fmt.Sprintf("Option %q of type %s must be a field reference such as \"@author\", got %q.", option.Name, option.Type, value), false
		}
	}
	return "", true
}

// radixPrefixes are the unsigned integer literal prefixes markup authors may
// use for numeric options.
var radixPrefixes = map[string]int{"0x": 16, "0o": 8, "0b": 2}

func isNumber(value string) bool {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return false
	}
	if len(trimmed) > 2 {
		if base, ok := radixPrefixes[strings.ToLower(trimmed[:2])]; ok {
			if strings.Contains(trimmed, "_") {
				return false
			}
			_, err := strconv.ParseUint(trimmed[2:], base, 64)
			return err == nil || errors.Is(err, strconv.ErrRange)
		}
	}
	n, err := strconv.ParseFloat(trimmed, 64)
	return err == nil && !math.IsInf(n, 0) && !math.IsNaN(n)
}
