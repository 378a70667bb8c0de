package router

import (
	"strings"

	"github.com/vcrobe/supasite/vdom"
)

// IsInternal reports whether href points at one of the site's own pages.
// Protocol-relative and absolute URLs are external.
func IsInternal(href string) bool {
	if !strings.HasPrefix(href, "/") || strings.HasPrefix(href, "//") {
		return false
	}
	return ResolveURL(href) != NotFound
}

// Linkify gives every internal anchor in the trees a click handler calling
// navigate with its href, so following it does not reload the page. It
// returns the number of anchors rewritten.
func Linkify(navigate func(path string), trees ...*vdom.VNode) int {
	n := 0
	for _, tree := range trees {
		tree.Walk(func(v *vdom.VNode) bool {
			if v.Tag != "a" {
				return true
			}
			href := v.Attr("href")
			if !IsInternal(href) {
				return true
			}
			v.OnClick = func() { navigate(href) }
			n++
			return true
		})
	}
	return n
}
