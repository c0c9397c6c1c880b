//go:build js && wasm

// Package dom connects the drawing app to a web page through javascript.
package dom

import (
	"errors"
	"fmt"
	"syscall/js"
)

// DOM is the javascript global scope of the page.
type DOM struct {
	global js.Value
}

// New creates a DOM for the global object, which is usually js.Global().
func New(global js.Value) *DOM {
	dom := DOM{
		global: global,
	}
	return &dom
}

// Global is the global object.
func (dom *DOM) Global() js.Value {
	return dom.global
}

// document is the document of the page.
func (dom *DOM) document() js.Value {
	return dom.global.Get("document")
}

// NewError creates a javascript Error with the message of the error.
func (dom *DOM) NewError(err error) js.Value {
	errorClass := dom.global.Get("Error")
	return errorClass.New(err.Error())
}

// Console is the browser console of the page.
func (dom *DOM) Console() *Console {
	c := Console{
		value: dom.global.Get("console"),
	}
	return &c
}

// AnimationFrames is the frame clock of the window.
func (dom *DOM) AnimationFrames() *AnimationFrames {
	af := AnimationFrames{
		window: dom.global,
	}
	return &af
}

// missing reports whether the value is not an object.
func missing(v js.Value) bool {
	return v.IsNull() || v.IsUndefined()
}

// RecoverError converts the recovery interface into a useful error.
func RecoverError(r interface{}) error {
	switch v := r.(type) {
	case error:
		return v
	case string:
		return errors.New(v)
	default:
		return fmt.Errorf("%v", v)
	}
}
