// Package testcomponents provides an in-memory renderer for component tests.
package testcomponents

import (
	"github.com/vcrobe/supasite/runtime"
	"github.com/vcrobe/supasite/vdom"
)

// TestRenderer is a minimal test harness that implements runtime.Renderer
// for in-memory testing without browser or WASM dependencies.
//
// It captures VDOM output from component renders and allows tests to:
// - Attach components to the renderer
// - Trigger re-renders via StateHasChanged()
// - Inspect the resulting VDOM tree
// - Observe or forward Navigate calls
type TestRenderer struct {
	currentVDOM *vdom.VNode
	component   runtime.Component
	nav         runtime.NavigationManager
	renders     int

	// Navigations lists every path passed to Navigate, in order.
	Navigations []string
}

// Compile-time assertion to ensure TestRenderer implements runtime.Renderer interface.
var _ runtime.Renderer = (*TestRenderer)(nil)

// NewTestRenderer creates a test renderer attached to the given component.
func NewTestRenderer(comp runtime.Component) *TestRenderer {
	r := &TestRenderer{
		component: comp,
	}
	comp.SetRenderer(r)
	return r
}

// WithNavigation forwards Navigate calls to nav in addition to recording them.
func (r *TestRenderer) WithNavigation(nav runtime.NavigationManager) *TestRenderer {
	r.nav = nav
	return r
}

// RenderRoot performs the initial render of the component.
func (r *TestRenderer) RenderRoot() *vdom.VNode {
	r.renders++
	r.currentVDOM = r.component.Render(r)
	return r.currentVDOM
}

// ReRender performs a re-render of the component.
// This is called by StateHasChanged() when the component requests a re-render.
func (r *TestRenderer) ReRender() {
	r.RenderRoot()
}

// GetCurrentVDOM returns the most recently rendered VDOM tree.
func (r *TestRenderer) GetCurrentVDOM() *vdom.VNode {
	return r.currentVDOM
}

// Renders returns how many times the root has been rendered.
func (r *TestRenderer) Renders() int {
	return r.renders
}

// RenderChild renders the child directly; instances are owned by the caller.
func (r *TestRenderer) RenderChild(key string, child runtime.Component) *vdom.VNode {
	child.SetRenderer(r)
	return child.Render(r)
}

// Navigate records the path and forwards it when a navigation manager is attached.
func (r *TestRenderer) Navigate(path string) error {
	r.Navigations = append(r.Navigations, path)
	if r.nav == nil {
		return nil
	}
	return r.nav.Navigate(path)
}
