//go:build js && wasm

package dom

import (
	"syscall/js"

	"github.com/jacobpatterson1549/circle-canvas/ui/frame"
)

type (
	// AnimationFrames is the frame clock of a browser window.
	AnimationFrames struct {
		window js.Value
	}

	// jsCallback is a function the window calls before a repaint.
	jsCallback struct {
		fn js.Func
	}
)

var _ frame.Host = new(AnimationFrames)

// NewCallback implements the frame.Host interface.
func (af *AnimationFrames) NewCallback(fn func(timestamp float64)) frame.Callback {
	jsFn := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		var timestamp float64
		if len(args) > 0 && args[0].Type() == js.TypeNumber {
			timestamp = args[0].Float()
		}
		fn(timestamp)
		return nil
	})
	return &jsCallback{fn: jsFn}
}

// RequestAnimationFrame implements the frame.Host interface.
func (af *AnimationFrames) RequestAnimationFrame(cb frame.Callback) frame.RequestID {
	jsCb := cb.(*jsCallback)
	id := af.window.Call("requestAnimationFrame", jsCb.fn)
	return frame.RequestID(id.Int())
}

// CancelAnimationFrame implements the frame.Host interface.
func (af *AnimationFrames) CancelAnimationFrame(id frame.RequestID) {
	af.window.Call("cancelAnimationFrame", int(id))
}

// Release implements the frame.Callback interface.
func (cb *jsCallback) Release() {
	cb.fn.Release()
}
