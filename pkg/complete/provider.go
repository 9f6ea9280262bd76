package complete

import (
	"strings"

	"github.com/open-cli-collective/searchui-cli/pkg/docs"
	"github.com/open-cli-collective/searchui-cli/pkg/document"
	"github.com/open-cli-collective/searchui-cli/pkg/resolve"
	"github.com/open-cli-collective/searchui-cli/pkg/scan"
	"github.com/open-cli-collective/searchui-cli/pkg/schema"
	"github.com/open-cli-collective/searchui-cli/pkg/templates"
)

const conditionDocumentation = `<p>To choose a result template from field values, add one or several data-field- attributes to the script tag of each result template under the ResultList component.</p>
<ul>
<li>Replace the attribute suffix with any field, e.g. data-field-author or data-field-filetype.</li>
<li>Specify no value to require that the field has any value, a single value to require that exact value, or comma-separated values to accept any of them.</li>
<li>Several data-field- attributes on the same template must all match.</li>
<li>Without a data-field- attribute the template always applies.</li>
</ul>`

// Provider computes completion items at document positions.
type Provider struct {
	engine *resolve.Engine
}

// NewProvider creates a provider resolving positions with engine.
func NewProvider(engine *resolve.Engine) *Provider {
	return &Provider{engine: engine}
}

// Complete resolves pos and returns the matching completion items.
func (p *Provider) Complete(doc document.Snapshot, pos document.Position) []Item {
	b := p.engine.Resolve(doc, pos)
	if b.State == resolve.StateNone {
		return p.classValue(doc, pos)
	}
	return p.ForBinding(b)
}

// ForBinding returns the completion items for an already resolved position.
func (p *Provider) ForBinding(b resolve.Binding) []Item {
	switch b.State {
	case resolve.StateOptionInTemplate, resolve.StateOptionOutsideTemplate:
		return Synthesize(b.Option)

	case resolve.StateComponentInTemplate, resolve.StateComponentOutsideTemplate:
		if b.Attribute != nil && b.Attribute.Name == "class" {
			return p.componentNames()
		}
		return optionNames(b.Component, b.Scan)

	case resolve.StateTemplateAttribute:
		if b.Attribute != nil {
			return templateValues(*b.Attribute)
		}
		return []Item{conditionItem()}
	}
	return nil
}

// classValue offers component names when the class attribute of any
// element is under the cursor.
func (p *Provider) classValue(doc document.Snapshot, pos document.Position) []Item {
	_, attrs, ok := scan.AtPosition(doc, p.engine.Provider(), pos)
	if !ok {
		return nil
	}
	if attr, ok := scan.ActiveAttribute(attrs); ok && attr.Name == "class" {
		return p.componentNames()
	}
	return nil
}

func (p *Provider) componentNames() []Item {
	components := p.engine.Store().ListComponents()
	items := make([]Item, 0, len(components))
	for _, component := range components {
		name := schema.MarkupClass(component.Name)
		items = append(items, Item{
			Label:         name,
			InsertText:    name,
			Documentation: docs.Text(component.Comment),
			Kind:          KindComponent,
		})
	}
	return items
}

// optionNames lists the options of component not yet set in attrs.
func optionNames(component *schema.Entity, attrs []scan.Attribute) []Item {
	var items []Item
	for _, option := range component.Options {
		name := option.MarkupName()
		if _, present := scan.Find(attrs, name); present {
			continue
		}
		items = append(items, Item{
			Label:         name,
			InsertText:    name,
			Documentation: docs.Text(option.Comment),
			Detail:        detail(option),
			Kind:          KindOption,
		})
	}
	return items
}

func templateValues(attr scan.Attribute) []Item {
	var items []Item
	switch strings.ToLower(attr.Name) {
	case "class":
		if !strings.Contains(attr.Value, templates.ClassMarker) {
			items = append(items, Item{
				Label:         templates.ClassMarker,
				InsertText:    templates.ClassMarker,
				Documentation: `A result template needs the "result-template" css class`,
				Kind:          KindTemplate,
			})
		}
	case "type":
		if !templates.ValidMimeType(attr.Value) {
			items = append(items,
				mimeItem(templates.HTMLMimeTypes[0], "HTML"),
				mimeItem(templates.UnderscoreMimeTypes[0], "Underscore"),
			)
		}
	}
	return items
}

func mimeItem(mime, engine string) Item {
	return Item{
		Label:         mime,
		InsertText:    mime,
		Documentation: "Creates an " + engine + " template",
		Kind:          KindTemplate,
	}
}

func conditionItem() Item {
	name := templates.FieldConditionPrefix + "{replace with field name}"
	return Item{
		Label:         name,
		InsertText:    name,
		Documentation: docs.Text(conditionDocumentation),
		Kind:          KindTemplate,
	}
}
