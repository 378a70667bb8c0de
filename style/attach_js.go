//go:build js || wasm

package style

import "syscall/js"

// Attach inserts the sheet into the document head unless an element
// carrying its data-sheet class, such as the exported <link>, is present.
func Attach(s *Sheet) {
	if s == nil {
		return
	}
	doc := js.Global().Get("document")
	if !doc.Truthy() {
		return
	}
	if doc.Call("querySelector", "[data-sheet='"+s.Class+"']").Truthy() {
		return
	}
	el := doc.Call("createElement", "style")
	el.Call("setAttribute", "data-sheet", s.Class)
	el.Set("textContent", s.CSS)
	doc.Get("head").Call("appendChild", el)
}
