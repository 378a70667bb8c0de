//go:build js || wasm

package vdom

import (
	"syscall/js"

	"github.com/vcrobe/supasite/console"
)

// live holds the click callbacks created by the last render so they can be
// released when the mount point is cleared.
var live []js.Func

func releaseCallbacks() {
	for _, cb := range live {
		cb.Release()
	}
	live = live[:0]
}

// Clear empties the element matching selector and releases callbacks.
func Clear(selector string) {
	if selector == "" {
		return
	}

	releaseCallbacks()

	doc := js.Global().Get("document")
	if !doc.Truthy() {
		return
	}

	mount := doc.Call("querySelector", selector)
	if !mount.Truthy() {
		console.Error("Mount element not found for selector:", selector)
		return
	}

	// Set innerHTML to an empty string to clear all children.
	mount.Set("innerHTML", "")
}

// RenderToSelector mounts the VNode under the first element matching the CSS selector.
func RenderToSelector(selector string, n *VNode) {
	if n == nil || selector == "" {
		return
	}
	doc := js.Global().Get("document")
	if !doc.Truthy() {
		return
	}
	mount := doc.Call("querySelector", selector)
	if !mount.Truthy() {
		console.Error("Mount element not found for selector:", selector)
		return
	}
	RenderTo(mount, n)
}

// RenderTo appends the rendered node to a specific mount element.
func RenderTo(mount js.Value, n *VNode) {
	if n == nil {
		return
	}
	el := createElement(n)
	if el.Truthy() {
		mount.Call("appendChild", el)
	}
}

// Mount returns a function that replaces the content of selector with a tree.
// It is the mount callback handed to runtime.NewRenderer in the browser.
func Mount(selector string) func(*VNode) {
	return func(n *VNode) {
		Clear(selector)
		RenderToSelector(selector, n)
	}
}

// setAttributeValue sets an attribute on an element, handling boolean attributes.
func setAttributeValue(el js.Value, key string, value any) {
	switch v := value.(type) {
	case bool:
		if v {
			el.Call("setAttribute", key, "")
		}
	case func():
		// handlers are attached via addEventListener
	default:
		el.Call("setAttribute", key, value)
	}
}

func createElement(n *VNode) js.Value {
	doc := js.Global().Get("document")
	if !doc.Truthy() || n == nil {
		return js.Undefined()
	}

	if n.Tag == TextTag {
		if n.Content == "" {
			return js.Undefined()
		}
		return doc.Call("createTextNode", n.Content)
	}

	el := doc.Call("createElement", n.Tag)
	for k, v := range n.Attributes {
		setAttributeValue(el, k, v)
	}
	if n.Content != "" {
		el.Call("appendChild", doc.Call("createTextNode", n.Content))
	}
	for _, child := range n.Children {
		childEl := createElement(child)
		if childEl.Truthy() {
			el.Call("appendChild", childEl)
		}
	}

	// Attach Go OnClick handler if present
	if n.OnClick != nil {
		onClick := n.OnClick
		cb := js.FuncOf(func(this js.Value, args []js.Value) any {
			// anchors with a handler navigate in-page instead of reloading
			if len(args) > 0 && n.Tag == "a" {
				args[0].Call("preventDefault")
			}
			onClick()
			return nil
		})
		el.Call("addEventListener", "click", cb)
		live = append(live, cb)
	}
	return el
}
