// Package schema holds the reference documentation of search UI components:
// their options, option types, constrained values and flags.
package schema

import (
	"strings"
)

// Type is the normalized semantic type of an option.
type Type int

const (
	TypeNone    Type = iota // untyped
	TypeBoolean             // true/false
	TypeString              // free text
	TypeNumber              // numeric literal
	TypeField               // field reference, e.g. @author
	TypeArray               // comma-separated list
	TypeOther               // any other declared type
)

// String returns the canonical name of the type.
func (t Type) String() string {
	switch t {
	case TypeBoolean:
		return "boolean"
	case TypeString:
		return "string"
	case TypeNumber:
		return "number"
	case TypeField:
		return "field-reference"
	case TypeArray:
		return "array"
	case TypeOther:
		return "other"
	default:
		return ""
	}
}

// Entity documents a component or one of its options.
type Entity struct {
	Name              string            `json:"name"`
	Comment           string            `json:"comment"`
	Type              string            `json:"type,omitempty"`
	ConstrainedValues []string          `json:"constrainedValues,omitempty"`
	MiscAttributes    map[string]string `json:"miscAttributes,omitempty"`
	Options           []*Entity         `json:"options"`
	IsComponent       bool              `json:"isComponent"`
}

// Misc attribute keys understood by the analysers.
const (
	AttrRequired     = "required"
	AttrDefaultValue = "defaultValue"
)

// TypeOf normalizes the raw declared type of e.
func TypeOf(e *Entity) Type {
	raw := strings.ToLower(strings.TrimSpace(e.Type))
	switch {
	case raw == "":
		return TypeNone
	case raw == "boolean":
		return TypeBoolean
	case raw == "string":
		return TypeString
	case raw == "number":
		return TypeNumber
	case raw == "ifieldoption", raw == "field", raw == "field-reference":
		return TypeField
	case raw == "array", strings.HasSuffix(raw, "[]"):
		return TypeArray
	default:
		return TypeOther
	}
}

// Required reports whether the option is flagged as required.
func (e *Entity) Required() bool {
	return e.MiscAttributes[AttrRequired] == "true"
}

// DefaultValue returns the declared default value, if any.
func (e *Entity) DefaultValue() (string, bool) {
	v, ok := e.MiscAttributes[AttrDefaultValue]
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

// MarkupName returns the markup attribute name bound to this option.
func (e *Entity) MarkupName() string {
	return Hyphenate(e.Name)
}

// OptionByAttribute returns the option bound to the markup attribute name.
func (e *Entity) OptionByAttribute(attributeName string) (*Entity, bool) {
	for _, option := range e.Options {
		if option.MarkupName() == attributeName {
			return option, true
		}
	}
	return nil, false
}

// AllowedValues flattens the constrained value groups into unique tokens,
// in declaration order.
func (e *Entity) AllowedValues() []string {
	seen := make(map[string]bool)
	var values []string
	for _, group := range e.ConstrainedValues {
		for _, value := range strings.Split(group, ",") {
			if seen[value] {
				continue
			}
			seen[value] = true
			values = append(values, value)
		}
	}
	return values
}
