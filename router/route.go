package router

import (
	"net/url"
	"strings"
)

// Route identifies one of the site's fixed pages.
type Route int

const (
	Home Route = iota
	Blog1
	Blog2
	NotFound
)

// Routes returns every route with a page of its own, in navigation order.
func Routes() []Route {
	return []Route{Home, Blog1, Blog2}
}

// Path returns the canonical URL path of the route.
func (r Route) Path() string {
	switch r {
	case Home:
		return "/"
	case Blog1:
		return "/blog1"
	case Blog2:
		return "/blog2"
	default:
		return "/404"
	}
}

func (r Route) String() string {
	switch r {
	case Home:
		return "Home"
	case Blog1:
		return "Blog1"
	case Blog2:
		return "Blog2"
	default:
		return "NotFound"
	}
}

// Resolve maps a URL path to its route. It is total: an empty path is "/",
// a single trailing slash is ignored and anything unmatched is NotFound.
func Resolve(path string) Route {
	if path == "" {
		return Home
	}
	if len(path) > 1 && strings.HasSuffix(path, "/") {
		path = path[:len(path)-1]
	}
	switch path {
	case "/":
		return Home
	case "/blog1":
		return Blog1
	case "/blog2":
		return Blog2
	default:
		return NotFound
	}
}

// ResolveURL resolves a relative or absolute URL, ignoring query and fragment.
func ResolveURL(raw string) Route {
	u, err := url.Parse(raw)
	if err != nil {
		return NotFound
	}
	return Resolve(u.Path)
}
