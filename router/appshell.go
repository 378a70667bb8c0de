package router

import (
	"github.com/vcrobe/supasite/runtime"
	"github.com/vcrobe/supasite/vdom"
)

// AppShell is the stable root component. It holds the page for the current
// route and swaps it when navigation occurs; the previous page instance and
// its mount state are dropped.
type AppShell struct {
	runtime.ComponentBase

	page runtime.Component
	key  string
}

// NewAppShell creates an empty shell. It renders nothing until SetPage.
func NewAppShell() *AppShell {
	return &AppShell{}
}

// SetPage replaces the current page and triggers a re-render.
// Engine.Start takes this method as its route change callback.
func (a *AppShell) SetPage(page runtime.Component, key string) {
	a.page = page
	a.key = key
	a.StateHasChanged()
}

// Page returns the current page instance.
func (a *AppShell) Page() runtime.Component {
	return a.page
}

// Key returns the render key of the current page instance.
func (a *AppShell) Key() string {
	return a.key
}

// Render renders the current page under its key.
func (a *AppShell) Render(r runtime.Renderer) *vdom.VNode {
	attrs := map[string]any{"id": "app-shell"}
	if a.page == nil {
		return vdom.Div(attrs)
	}
	return vdom.Div(attrs, r.RenderChild(a.key, a.page))
}
