//go:build js || wasm

package browser

import "syscall/js"

type jsWindow struct{}

// Global returns the browser window.
func Global() Window {
	return jsWindow{}
}

func (jsWindow) Location() Location {
	loc := js.Global().Get("location")
	return Location{
		Pathname: loc.Get("pathname").String(),
		Search:   loc.Get("search").String(),
		Hash:     loc.Get("hash").String(),
	}
}

func (jsWindow) PushState(url string) {
	js.Global().Get("history").Call("pushState", nil, "", url)
}

func (w jsWindow) OnPopState(fn func(Location)) func() {
	cb := js.FuncOf(func(this js.Value, args []js.Value) any {
		fn(w.Location())
		return nil
	})
	js.Global().Call("addEventListener", "popstate", cb)
	return func() {
		js.Global().Call("removeEventListener", "popstate", cb)
		cb.Release()
	}
}

func (jsWindow) ScrollToTop() {
	js.Global().Call("scrollTo", 0, 0)
}
