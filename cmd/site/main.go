//go:build js || wasm

// Command site is the wasm binary the browser runs.
package main

import (
	"github.com/vcrobe/supasite/browser"
	"github.com/vcrobe/supasite/config"
	"github.com/vcrobe/supasite/console"
	"github.com/vcrobe/supasite/internal/app"
	"github.com/vcrobe/supasite/style"
	"github.com/vcrobe/supasite/vdom"
)

func main() {
	cfg := config.Default()

	site, err := app.New(cfg, browser.Global(), vdom.Mount(cfg.MountSelector))
	if err != nil {
		console.Error("Failed to build site:", err.Error())
		panic(err)
	}
	style.Attach(site.Sheet)

	// Render the shell, then let the router pick the page for the current location.
	if err := site.Start(); err != nil {
		console.Error("Failed to start router:", err.Error())
		panic(err)
	}

	// Keep the Go program running
	select {}
}
