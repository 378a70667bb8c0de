package pages

import (
	"github.com/vcrobe/supasite/router"
	"github.com/vcrobe/supasite/runtime"
	"github.com/vcrobe/supasite/vdom"
)

// NotFoundPage is shown for every path outside the route table.
type NotFoundPage struct {
	runtime.ComponentBase
	Props

	mount runtime.MountState
}

func (n *NotFoundPage) Render(r runtime.Renderer) *vdom.VNode {
	n.scrollOnMount(&n.mount)

	page := n.root(
		vdom.Heading(1, "404", nil),
		vdom.Element("p", nil, vdom.Anchor(router.Home.Path(), "Back to "+n.Title, nil)),
	)
	router.Linkify(follow(&n.ComponentBase), page)
	return page
}
