//go:build js && wasm

package dom

import (
	"syscall/js"

	"github.com/jacobpatterson1549/circle-canvas/ui/log"
)

// Console writes messages to the browser console.
type Console struct {
	value js.Value
}

var _ log.Console = new(Console)

// Log implements the log.Console interface.
func (c *Console) Log(text string) {
	c.value.Call("log", text)
}

// Warn implements the log.Console interface.
func (c *Console) Warn(text string) {
	c.value.Call("warn", text)
}

// Error implements the log.Console interface.
func (c *Console) Error(text string) {
	c.value.Call("error", text)
}

// LogOnPanic checks to see if a panic has occurred and writes it to the console.
// This function should be deferred as the first statement of each function called by javascript.
func (dom *DOM) LogOnPanic() {
	if r := recover(); r != nil {
		err := RecoverError(r)
		dom.Console().Error("panic: " + err.Error())
	}
}
