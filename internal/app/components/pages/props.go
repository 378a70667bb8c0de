package pages

import (
	"github.com/vcrobe/supasite/browser"
	"github.com/vcrobe/supasite/console"
	"github.com/vcrobe/supasite/runtime"
	"github.com/vcrobe/supasite/style"
	"github.com/vcrobe/supasite/vdom"
)

// Props carries what every page needs from the site wiring.
type Props struct {
	// Title is the site title shown on the home page.
	Title string
	// Sheet scopes the page root. Nil renders an unscoped root.
	Sheet *style.Sheet
	// Scroller is reset to the top when a page instance first renders.
	Scroller browser.Scroller
}

// root wraps children in the scoped page container.
func (p Props) root(children ...*vdom.VNode) *vdom.VNode {
	attrs := map[string]any{}
	if class := p.Sheet.ClassList(); class != "" {
		attrs["class"] = class
	}
	return vdom.Div(attrs, children...)
}

// scrollOnMount resets the scroll position the first time m is checked.
func (p Props) scrollOnMount(m *runtime.MountState) {
	if m.First() && p.Scroller != nil {
		p.Scroller.ScrollToTop()
	}
}

// follow returns a navigate callback for internal links of a page.
func follow(b *runtime.ComponentBase) func(path string) {
	return func(path string) {
		if err := b.Navigate(path); err != nil {
			console.Error("Navigation error:", err.Error())
		}
	}
}
