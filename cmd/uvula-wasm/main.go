// Copyright © 2026 Ultimaker B.V.
// Use is governed by a BSD-style license found in the LICENSE file.

//go:build js && wasm

// Command uvula-wasm compiles the core to WebAssembly and registers its
// bindings on the JS global object for a browser host to call.
package main

import "github.com/ultimaker/uvula-go/wasmbind"

func main() {
	wasmbind.Register()
	select {} // keep the module alive to serve JS callbacks.
}
