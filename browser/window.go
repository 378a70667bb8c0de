// Package browser abstracts the parts of the browser window the page shell
// touches: location, the history stack, popstate events and scrolling.
//
// Global returns the real window under js/wasm. MemoryWindow is an in-memory
// implementation with the same push/back/forward semantics, used by tests and
// by native tools that render pages outside a browser.
package browser

import "net/url"

// Location is the current URL split the way window.location exposes it.
type Location struct {
	Pathname string
	Search   string // including the leading '?', or empty
	Hash     string // including the leading '#', or empty
}

// String joins the parts back into a relative URL.
func (l Location) String() string {
	return l.Pathname + l.Search + l.Hash
}

// ParseLocation splits a relative URL into a Location.
func ParseLocation(raw string) Location {
	u, err := url.Parse(raw)
	if err != nil {
		return Location{Pathname: raw}
	}
	loc := Location{Pathname: u.EscapedPath()}
	if loc.Pathname == "" {
		loc.Pathname = "/"
	}
	if u.RawQuery != "" || u.ForceQuery {
		loc.Search = "?" + u.RawQuery
	}
	if u.Fragment != "" {
		loc.Hash = "#" + u.EscapedFragment()
	}
	return loc
}

// Scroller resets the document scroll position.
type Scroller interface {
	ScrollToTop()
}

// Window is the browser surface used by the router engine.
type Window interface {
	Scroller

	// Location returns the current location.
	Location() Location

	// PushState appends a history entry for url without reloading.
	// It does not emit popstate.
	PushState(url string)

	// OnPopState registers fn for back/forward navigation.
	// The returned function removes the subscription.
	OnPopState(fn func(Location)) (release func())
}
