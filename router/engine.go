package router

import (
	"fmt"
	"sync"

	"github.com/pkg/errors"

	"github.com/vcrobe/supasite/browser"
	"github.com/vcrobe/supasite/console"
	"github.com/vcrobe/supasite/runtime"
)

var _ runtime.NavigationManager = (*Engine)(nil)

// Engine binds browser history to the route table. Every navigation, pushed
// or popped, resolves the path, builds a fresh page through the table and
// hands it to the route change callback under a key no earlier page used.
type Engine struct {
	mu            sync.Mutex
	window        browser.Window
	table         *Table
	currentRoute  Route
	currentPath   string
	seq           int
	started       bool
	onRouteChange func(page runtime.Component, key string)
	release       func()
}

// NewEngine creates a router engine over window and table.
func NewEngine(window browser.Window, table *Table) *Engine {
	return &Engine{
		window:       window,
		table:        table,
		currentRoute: NotFound,
	}
}

// Start subscribes to popstate and displays the initial location. A location
// produced by the static host's fallback redirect is resolved to the path the
// visitor asked for.
func (e *Engine) Start(onChange func(page runtime.Component, key string)) error {
	e.mu.Lock()
	if e.started {
		e.mu.Unlock()
		return errors.New("router already started")
	}
	e.started = true
	e.onRouteChange = onChange
	e.mu.Unlock()

	e.release = e.window.OnPopState(func(loc browser.Location) {
		console.Log("[Engine] popstate path:", loc.Pathname)
		e.display(loc.Pathname)
	})

	loc := e.window.Location()
	initial := RecoverPath(loc.Pathname, loc.Search)
	console.Log("[Engine.Start] Initial path:", initial)
	e.display(initial)
	return nil
}

// Navigate pushes path onto the history stack and displays its route.
// Unmatched paths are pushed too and display the NotFound page.
func (e *Engine) Navigate(path string) error {
	e.mu.Lock()
	started := e.started
	e.mu.Unlock()
	if !started {
		return errors.Errorf("navigate to %q before router start", path)
	}
	if path == "" {
		path = "/"
	}

	e.window.PushState(path)
	e.display(path)
	return nil
}

// Push navigates to a route's canonical path.
func (e *Engine) Push(r Route) error {
	return e.Navigate(r.Path())
}

func (e *Engine) display(path string) {
	route := ResolveURL(path)

	e.mu.Lock()
	e.seq++
	key := fmt.Sprintf("%s#%d", route, e.seq)
	e.currentRoute = route
	e.currentPath = path
	onChange := e.onRouteChange
	e.mu.Unlock()

	page := e.table.Page(route)
	console.Log("[Engine] displaying", route.String(), "key:", key)
	if onChange != nil {
		onChange(page, key)
	}
}

// CurrentRoute returns the displayed route.
func (e *Engine) CurrentRoute() Route {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.currentRoute
}

// CurrentPath returns the path the displayed route was resolved from.
func (e *Engine) CurrentPath() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.currentPath
}

// Stop releases the popstate subscription.
func (e *Engine) Stop() {
	if e.release != nil {
		e.release()
		e.release = nil
		console.Log("[Engine] popstate listener released")
	}
}
