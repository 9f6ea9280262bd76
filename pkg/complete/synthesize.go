// Package complete produces completion items for resolved positions.
package complete

import (
	"fmt"

	"github.com/open-cli-collective/searchui-cli/pkg/docs"
	"github.com/open-cli-collective/searchui-cli/pkg/schema"
)

// Kind classifies a completion item.
type Kind string

const (
	KindValue     Kind = "value"
	KindExample   Kind = "example"
	KindOption    Kind = "option"
	KindComponent Kind = "component"
	KindTemplate  Kind = "template"
)

// ExamplesLabel labels the single item that carries value examples.
const ExamplesLabel = "Possible values"

// Item is one completion candidate.
type Item struct {
	Label         string `json:"label"`
	InsertText    string `json:"insertText"`
	Documentation string `json:"documentation,omitempty"`
	Detail        string `json:"detail,omitempty"`
	Kind          Kind   `json:"kind"`
}

// Synthesize returns the candidate values of an option.
//
// Enumerable candidates (booleans, constrained values) produce one item per
// value. Open-ended types produce a single example item listing every
// candidate and inserting the declared default, or the first candidate.
func Synthesize(option *schema.Entity) []Item {
	if option == nil {
		return nil
	}

	if schema.TypeOf(option) != schema.TypeNone {
		values := typeCandidates(option)
		if schema.TypeOf(option) == schema.TypeBoolean {
			return valueItems(option, values)
		}
		return []Item{exampleItem(option, values)}
	}

	if len(option.ConstrainedValues) > 0 {
		return valueItems(option, option.ConstrainedValues)
	}

	if def, ok := option.DefaultValue(); ok {
		return []Item{exampleItem(option, []string{def})}
	}
	return []Item{exampleItem(option, []string{"foo"})}
}

func typeCandidates(option *schema.Entity) []string {
	var values []string
	switch schema.TypeOf(option) {
	case schema.TypeBoolean:
		values = []string{"true", "false"}
	case schema.TypeString:
		values = []string{"foo", "bar"}
	case schema.TypeField:
		values = []string{"@foo", "@bar"}
	case schema.TypeNumber:
		values = []string{"1", "2", "3"}
	case schema.TypeArray:
		values = []string{"foo", "foo,bar"}
	default:
		values = []string{"foo"}
	}
	return withDefault(option, values)
}

// withDefault puts the declared default first, without repeating it.
func withDefault(option *schema.Entity, values []string) []string {
	def, ok := option.DefaultValue()
	if !ok {
		return values
	}
	out := []string{def}
	for _, v := range values {
		if v != def {
			out = append(out, v)
		}
	}
	return out
}

func detail(option *schema.Entity) string {
	if option.Type == "" {
		return ""
	}
	return fmt.Sprintf("Name : %s ; Type : %s", option.Name, option.Type)
}

func valueItems(option *schema.Entity, values []string) []Item {
	doc := docs.Text(option.Comment)
	items := make([]Item, 0, len(values))
	for _, v := range values {
		items = append(items, Item{
			Label:         v,
			InsertText:    v,
			Documentation: doc,
			Detail:        detail(option),
			Kind:          KindValue,
		})
	}
	return items
}

func exampleItem(option *schema.Entity, values []string) Item {
	insert := values[0]
	if def, ok := option.DefaultValue(); ok {
		insert = def
	}
	return Item{
		Label:         ExamplesLabel,
		InsertText:    insert,
		Documentation: docs.Examples(option.MarkupName(), values, option.Comment),
		Detail:        detail(option),
		Kind:          KindExample,
	}
}
