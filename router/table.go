package router

import (
	"github.com/vcrobe/supasite/runtime"
	"github.com/vcrobe/supasite/vdom"
)

// Table maps each Route to the factory that builds its page.
type Table struct {
	factories map[Route]runtime.ComponentFactory
}

// NewTable builds a table from factories. A missing NotFound entry is filled
// with a plain "404" page, so Page never comes back empty.
func NewTable(factories map[Route]runtime.ComponentFactory) *Table {
	t := &Table{factories: make(map[Route]runtime.ComponentFactory, len(factories)+1)}
	for r, f := range factories {
		if f != nil {
			t.factories[r] = f
		}
	}
	if _, ok := t.factories[NotFound]; !ok {
		t.factories[NotFound] = func() runtime.Component { return &NotFoundPage{} }
	}
	return t
}

// Page builds a fresh component for the route. Routes without a factory get
// the NotFound page.
func (t *Table) Page(r Route) runtime.Component {
	if f, ok := t.factories[r]; ok {
		return f()
	}
	return t.factories[NotFound]()
}

// Lookup resolves path and builds its page.
func (t *Table) Lookup(path string) (Route, runtime.Component) {
	r := ResolveURL(path)
	return r, t.Page(r)
}

// NotFoundPage is the minimal page shown for unmatched paths.
type NotFoundPage struct {
	runtime.ComponentBase
}

func (p *NotFoundPage) Render(r runtime.Renderer) *vdom.VNode {
	return vdom.Heading(1, "404", nil)
}
