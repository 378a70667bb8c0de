package pages

import (
	"github.com/vcrobe/supasite/content"
	"github.com/vcrobe/supasite/router"
	"github.com/vcrobe/supasite/runtime"
	"github.com/vcrobe/supasite/vdom"
)

// BlogPage is the component rendered for the article routes. Links in the
// article body that point at other pages navigate in place.
type BlogPage struct {
	runtime.ComponentBase
	Props
	Article *content.Article

	mount runtime.MountState
}

func (b *BlogPage) Render(r runtime.Renderer) *vdom.VNode {
	b.scrollOnMount(&b.mount)

	a := b.Article
	children := []*vdom.VNode{vdom.Heading(1, a.Title, nil)}
	if sub := b.subtitle(); sub != nil {
		children = append(children, sub)
	}
	children = append(children, a.Body()...)
	if len(a.Sources) > 0 {
		children = append(children, vdom.Heading(3, "Further Reading / Sources:", nil))
		sources := make([]*vdom.VNode, 0, len(a.Sources))
		for _, s := range a.Sources {
			sources = append(sources, vdom.Heading(3, "", map[string]any{"class": "subtitle"},
				vdom.Anchor(s.Href, s.Text, nil)))
		}
		children = append(children, vdom.Div(map[string]any{"class": "sources"}, sources...))
	}

	page := b.root(
		vdom.Div(map[string]any{"class": "blog-body"},
			vdom.Div(map[string]any{"class": "blog-content-container"}, children...),
		),
	)
	router.Linkify(follow(&b.ComponentBase), page)
	return page
}

func (b *BlogPage) subtitle() *vdom.VNode {
	a := b.Article
	if a.Subtitle == "" && a.SubtitleLink == nil {
		return nil
	}
	h := vdom.Heading(3, "", map[string]any{"class": "subtitle"})
	if a.Subtitle != "" {
		h.Children = append(h.Children, vdom.Text(a.Subtitle+" "))
	}
	if a.SubtitleLink != nil {
		h.Children = append(h.Children, vdom.Anchor(a.SubtitleLink.Href, a.SubtitleLink.Text, nil))
	}
	return h
}
