// Package app assembles the site: stylesheet, articles, route table, router
// engine, app shell and renderer. It has no browser dependency; the wasm entry
// point supplies the real window and DOM mount, tools and tests supply
// in-memory ones.
package app

import (
	"github.com/pkg/errors"

	"github.com/vcrobe/supasite/assets"
	"github.com/vcrobe/supasite/browser"
	"github.com/vcrobe/supasite/config"
	"github.com/vcrobe/supasite/console"
	"github.com/vcrobe/supasite/content"
	"github.com/vcrobe/supasite/internal/app/components/pages"
	"github.com/vcrobe/supasite/router"
	"github.com/vcrobe/supasite/runtime"
	"github.com/vcrobe/supasite/style"
	"github.com/vcrobe/supasite/vdom"
)

const shellKey = "app-shell"

// App is a wired site ready to start.
type App struct {
	Config   *config.Config
	Sheet    *style.Sheet
	Engine   *router.Engine
	Shell    *router.AppShell
	Renderer *runtime.RendererImpl
}

// New wires the site over window. Rendered trees are passed to mount.
// A stylesheet that fails to load is logged and pages render unscoped.
func New(cfg *config.Config, window browser.Window, mount func(*vdom.VNode)) (*App, error) {
	sheet, err := style.Load(assets.FS, cfg.Stylesheet)
	if err != nil {
		console.Error("Failed to load stylesheet:", err.Error())
		sheet = nil
	}

	articles, err := content.LoadAll()
	if err != nil {
		return nil, errors.Wrap(err, "load articles")
	}

	table, err := Routes(pages.Props{Title: cfg.Title, Sheet: sheet, Scroller: window}, articles)
	if err != nil {
		return nil, err
	}

	// The engine is the renderer's navigation manager, so page links push history.
	engine := router.NewEngine(window, table)
	renderer := runtime.NewRenderer(engine, mount)
	shell := router.NewAppShell()
	renderer.SetCurrentComponent(shell, shellKey)

	return &App{
		Config:   cfg,
		Sheet:    sheet,
		Engine:   engine,
		Shell:    shell,
		Renderer: renderer,
	}, nil
}

// Start renders the empty shell and hands the initial location to the router.
func (a *App) Start() error {
	a.Renderer.ReRender()
	if err := a.Engine.Start(a.Shell.SetPage); err != nil {
		return errors.Wrap(err, "start router")
	}
	return nil
}

// Stop detaches the router from the window.
func (a *App) Stop() {
	a.Engine.Stop()
}

// Render builds the site over an in-memory window at path and returns the
// tree it mounts. It is how tools see a page without a browser.
func Render(cfg *config.Config, path string) (*vdom.VNode, router.Route, error) {
	a, err := New(cfg, browser.NewMemoryWindow(path), nil)
	if err != nil {
		return nil, router.NotFound, err
	}
	if err := a.Start(); err != nil {
		return nil, router.NotFound, err
	}
	defer a.Stop()
	return a.Renderer.LastVDOM(), a.Engine.CurrentRoute(), nil
}
