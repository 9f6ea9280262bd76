// Package resolve binds a document position to the component, option or
// template attribute it designates.
package resolve

import (
	"github.com/open-cli-collective/searchui-cli/pkg/document"
	"github.com/open-cli-collective/searchui-cli/pkg/scan"
	"github.com/open-cli-collective/searchui-cli/pkg/schema"
	"github.com/open-cli-collective/searchui-cli/pkg/templates"
)

// State is the kind of entity a position resolved to.
type State int

const (
	StateNone State = iota
	StateOptionInTemplate
	StateComponentInTemplate
	StateOptionOutsideTemplate
	StateComponentOutsideTemplate
	StateTemplateAttribute
)

// String returns a short name for the state.
func (s State) String() string {
	switch s {
	case StateOptionInTemplate:
		return "option-in-template"
	case StateComponentInTemplate:
		return "component-in-template"
	case StateOptionOutsideTemplate:
		return "option"
	case StateComponentOutsideTemplate:
		return "component"
	case StateTemplateAttribute:
		return "template-attribute"
	default:
		return "none"
	}
}

// InTemplate reports whether the binding lives in a template body.
func (s State) InTemplate() bool {
	return s == StateOptionInTemplate || s == StateComponentInTemplate
}

// Binding is the result of resolving a position.
//
// Document and Position are where Symbol and Scan were computed: the template
// body document for in-template states, the input document otherwise.
type Binding struct {
	State     State
	Component *schema.Entity
	Option    *schema.Entity
	Symbol    document.Symbol
	Document  document.Snapshot
	Position  document.Position
	Template  *templates.Region
	Attribute *scan.Attribute
	Scan      []scan.Attribute
}

// Engine resolves positions against a schema store.
type Engine struct {
	store    *schema.Store
	provider document.SymbolProvider
}

// New creates an engine. A nil provider uses document.HTMLSymbols.
func New(store *schema.Store, provider document.SymbolProvider) *Engine {
	if provider == nil {
		provider = document.HTMLSymbols{}
	}
	return &Engine{store: store, provider: provider}
}

// Store returns the schema store the engine resolves against.
func (e *Engine) Store() *schema.Store { return e.store }

// Provider returns the symbol provider.
func (e *Engine) Provider() document.SymbolProvider { return e.provider }

type resolver struct {
	state State
	match func(*query) (Binding, bool)
}

// resolvers are evaluated in order; the first match wins.
var resolvers = []resolver{
	{StateOptionInTemplate, (*query).optionInTemplate},
	{StateComponentInTemplate, (*query).componentInTemplate},
	{StateOptionOutsideTemplate, (*query).optionOutsideTemplate},
	{StateComponentOutsideTemplate, (*query).componentOutsideTemplate},
	{StateTemplateAttribute, (*query).templateAttribute},
}

// Resolve binds pos in doc. A position that designates nothing yields a
// binding in StateNone.
func (e *Engine) Resolve(doc document.Snapshot, pos document.Position) Binding {
	q := &query{engine: e, doc: doc, pos: pos}
	for _, r := range resolvers {
		if b, ok := r.match(q); ok {
			b.State = r.state
			return b
		}
	}
	return Binding{State: StateNone, Document: doc, Position: pos}
}

// Component returns the documented component a symbol instantiates.
func (e *Engine) Component(sym document.Symbol) (*schema.Entity, bool) {
	return e.store.GetBySymbolName(sym.Name)
}

// ComponentSymbols returns the symbols of doc that instantiate a documented
// component, in document order.
func (e *Engine) ComponentSymbols(doc document.Snapshot) []document.Symbol {
	var found []document.Symbol
	for _, sym := range e.provider.FindDocumentSymbols(doc) {
		if _, ok := e.Component(sym); ok {
			found = append(found, sym)
		}
	}
	return found
}

// Templates returns the template regions of doc.
func (e *Engine) Templates(doc document.Snapshot) []templates.Region {
	return templates.Find(doc, e.provider.FindDocumentSymbols(doc))
}

// query memoizes the intermediate lookups shared by the resolvers.
type query struct {
	engine *Engine
	doc    document.Snapshot
	pos    document.Position

	outer      *site
	inner      *site
	region     *templates.Region
	regionDone bool
	innerDone  bool
}

// site is the symbol and scan at a position of one document.
type site struct {
	doc       document.Snapshot
	pos       document.Position
	symbol    document.Symbol
	attrs     []scan.Attribute
	component *schema.Entity
}

func (q *query) site(doc document.Snapshot, pos document.Position) *site {
	sym, attrs, ok := scan.AtPosition(doc, q.engine.provider, pos)
	if !ok {
		return nil
	}
	s := &site{doc: doc, pos: pos, symbol: sym, attrs: attrs}
	if component, ok := q.engine.Component(sym); ok {
		s.component = component
	}
	return s
}

func (q *query) outerSite() *site {
	if q.outer == nil {
		q.outer = q.site(q.doc, q.pos)
		if q.outer == nil {
			q.outer = &site{}
		}
	}
	return q.outer
}

func (q *query) template() *templates.Region {
	if !q.regionDone {
		q.regionDone = true
		if region, ok := templates.At(q.doc, q.engine.provider.FindDocumentSymbols(q.doc), q.pos); ok {
			q.region = &region
		}
	}
	return q.region
}

func (q *query) innerSite() *site {
	if !q.innerDone {
		q.innerDone = true
		region := q.template()
		if region == nil {
			return nil
		}
		virtual, vpos, ok := region.Remap(q.doc, q.pos)
		if !ok {
			return nil
		}
		q.inner = q.site(virtual, vpos)
	}
	return q.inner
}

func (s *site) binding() Binding {
	return Binding{
		Component: s.component,
		Symbol:    s.symbol,
		Document:  s.doc,
		Position:  s.pos,
		Scan:      s.attrs,
	}
}

// activeOption matches the attribute under the cursor to an option.
func (s *site) activeOption() (*schema.Entity, *scan.Attribute, bool) {
	attr, ok := scan.ActiveAttribute(s.attrs)
	if !ok {
		return nil, nil, false
	}
	option, ok := s.component.OptionByAttribute(attr.Name)
	if !ok {
		return nil, nil, false
	}
	return option, &attr, true
}

func (q *query) optionInTemplate() (Binding, bool) {
	inner := q.innerSite()
	if inner == nil || inner.component == nil {
		return Binding{}, false
	}
	option, attr, ok := inner.activeOption()
	if !ok {
		return Binding{}, false
	}
	b := inner.binding()
	b.Option = option
	b.Attribute = attr
	b.Template = q.template()
	return b, true
}

func (q *query) componentInTemplate() (Binding, bool) {
	inner := q.innerSite()
	if inner == nil || inner.component == nil {
		return Binding{}, false
	}
	b := inner.binding()
	if attr, ok := scan.ActiveAttribute(inner.attrs); ok {
		b.Attribute = &attr
	}
	b.Template = q.template()
	return b, true
}

func (q *query) optionOutsideTemplate() (Binding, bool) {
	outer := q.outerSite()
	if outer.component == nil {
		return Binding{}, false
	}
	option, attr, ok := outer.activeOption()
	if !ok {
		return Binding{}, false
	}
	b := outer.binding()
	b.Option = option
	b.Attribute = attr
	return b, true
}

func (q *query) componentOutsideTemplate() (Binding, bool) {
	outer := q.outerSite()
	if outer.component == nil {
		return Binding{}, false
	}
	b := outer.binding()
	if attr, ok := scan.ActiveAttribute(outer.attrs); ok {
		b.Attribute = &attr
	}
	return b, true
}

func (q *query) templateAttribute() (Binding, bool) {
	region := q.template()
	if region == nil || !region.InOpeningTag(q.doc, q.pos) {
		return Binding{}, false
	}
	outer := q.outerSite()
	b := Binding{
		Symbol:   region.Symbol,
		Document: q.doc,
		Position: q.pos,
		Template: region,
		Scan:     outer.attrs,
	}
	if attr, ok := scan.ActiveAttribute(outer.attrs); ok {
		b.Attribute = &attr
	}
	return b, true
}
