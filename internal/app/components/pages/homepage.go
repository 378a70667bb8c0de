package pages

import (
	"github.com/vcrobe/supasite/content"
	"github.com/vcrobe/supasite/router"
	"github.com/vcrobe/supasite/runtime"
	"github.com/vcrobe/supasite/vdom"
)

// Post is an entry in the home page's post list.
type Post struct {
	Route   router.Route
	Article *content.Article
}

// HomePage is the component rendered for the "/" route.
type HomePage struct {
	runtime.ComponentBase
	Props
	Posts []Post

	mount runtime.MountState
}

func (h *HomePage) Render(r runtime.Renderer) *vdom.VNode {
	h.scrollOnMount(&h.mount)

	list := make([]*vdom.VNode, 0, len(h.Posts))
	for _, p := range h.Posts {
		item := vdom.Element("li", nil,
			vdom.Heading(2, "", nil, vdom.Anchor(p.Route.Path(), p.Article.Title, nil)),
		)
		if p.Article.Subtitle != "" {
			item.Children = append(item.Children, vdom.Paragraph(p.Article.Subtitle, map[string]any{"class": "subtitle"}))
		}
		list = append(list, item)
	}

	page := h.root(
		vdom.Div(map[string]any{"class": "home-container"},
			vdom.Heading(1, h.Title, nil),
			vdom.Element("ul", map[string]any{"class": "posts"}, list...),
		),
	)
	router.Linkify(follow(&h.ComponentBase), page)
	return page
}
