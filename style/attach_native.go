//go:build !js && !wasm

package style

// Attach is a no-op outside the browser.
func Attach(s *Sheet) {}
