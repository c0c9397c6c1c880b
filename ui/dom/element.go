//go:build js && wasm

package dom

import (
	"errors"
	"syscall/js"

	"github.com/jacobpatterson1549/circle-canvas/ui/canvas"
	"github.com/jacobpatterson1549/circle-canvas/ui/input"
)

type (
	// Element is an html element of the page.
	// Canvas elements can be drawn on.
	Element struct {
		dom   *DOM
		value js.Value
	}

	// listener is an event listener added to an element.
	listener struct {
		target    js.Value
		eventType string
		fn        js.Func
		removed   bool
	}

	// jsEvent is a mouse event from the browser.
	jsEvent struct {
		value js.Value
	}
)

var (
	_ canvas.Surface    = new(Element)
	_ input.EventTarget = new(Element)
)

func (dom *DOM) newElement(value js.Value) *Element {
	e := Element{
		dom:   dom,
		value: value,
	}
	return &e
}

// Value is the javascript value of the element.
func (e *Element) Value() js.Value {
	return e.value
}

// BoundingRect implements the canvas.Surface interface.
func (e *Element) BoundingRect() canvas.Rect {
	rect := e.value.Call("getBoundingClientRect")
	return canvas.Rect{
		Left:   rect.Get("left").Float(),
		Top:    rect.Get("top").Float(),
		Width:  rect.Get("width").Float(),
		Height: rect.Get("height").Float(),
	}
}

// BufferSize implements the canvas.Surface interface.
func (e *Element) BufferSize() canvas.Size {
	return canvas.Size{
		Width:  e.value.Get("width").Int(),
		Height: e.value.Get("height").Int(),
	}
}

// SetBufferSize implements the canvas.Surface interface.
func (e *Element) SetBufferSize(size canvas.Size) {
	e.value.Set("width", size.Width)
	e.value.Set("height", size.Height)
}

// Context2D implements the canvas.Surface interface.
func (e *Element) Context2D() (canvas.Context, error) {
	if e.value.Get("getContext").Type() != js.TypeFunction {
		return nil, errors.New("element is not a canvas")
	}
	ctx := e.value.Call("getContext", "2d")
	if missing(ctx) {
		return nil, errors.New("2d context not supported")
	}
	return &jsContext{ctx: ctx}, nil
}

// AddEventListener implements the input.EventTarget interface.
// The listener keeps a javascript function until it is removed.
func (e *Element) AddEventListener(eventType string, fn func(event input.Event)) input.Subscription {
	l := listener{
		target:    e.value,
		eventType: eventType,
	}
	l.fn = js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		defer e.dom.LogOnPanic()
		event := jsEvent{
			value: args[0],
		}
		fn(&event)
		return nil
	})
	e.value.Call("addEventListener", eventType, l.fn)
	return &l
}

// Remove implements the input.Subscription interface.
func (l *listener) Remove() {
	if l.removed {
		return
	}
	l.removed = true
	l.target.Call("removeEventListener", l.eventType, l.fn)
	l.fn.Release()
}

// ClientX implements the input.Event interface.
func (e *jsEvent) ClientX() float64 {
	return e.value.Get("clientX").Float()
}

// ClientY implements the input.Event interface.
func (e *jsEvent) ClientY() float64 {
	return e.value.Get("clientY").Float()
}

// PreventDefault implements the input.Event interface.
func (e *jsEvent) PreventDefault() {
	e.value.Call("preventDefault")
}
