//go:build js && wasm

package main

import (
	"syscall/js"

	"github.com/cottand/nform/nform"
)

func main() {
	js.Global().Set("ConvertToNormalForms", js.FuncOf(nform.ConvertToNormalForms))

	// wait indefinitely so that Go does not terminate execution
	// and the function remains available
	<-make(chan struct{})
}
