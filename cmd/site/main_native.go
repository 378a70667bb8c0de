//go:build !js && !wasm

package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(os.Stderr, "site runs in the browser: build it with GOOS=js GOARCH=wasm, or use sitectl render to see a page")
	os.Exit(2)
}
