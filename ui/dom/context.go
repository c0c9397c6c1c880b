//go:build js && wasm

package dom

import (
	"syscall/js"

	"github.com/jacobpatterson1549/circle-canvas/ui/canvas"
)

// jsContext is the 2d drawing context of a canvas element.
type jsContext struct {
	ctx js.Value
}

var _ canvas.Context = new(jsContext)

// ClearRect implements the canvas.Context interface.
func (c *jsContext) ClearRect(x, y, width, height float64) {
	c.ctx.Call("clearRect", x, y, width, height)
}

// BeginPath implements the canvas.Context interface.
func (c *jsContext) BeginPath() {
	c.ctx.Call("beginPath")
}

// Arc implements the canvas.Context interface.
func (c *jsContext) Arc(x, y, radius, startAngle, endAngle float64) {
	c.ctx.Call("arc", x, y, radius, startAngle, endAngle)
}

// SetFillColor implements the canvas.Context interface.
func (c *jsContext) SetFillColor(color string) {
	c.ctx.Set("fillStyle", color)
}

// Fill implements the canvas.Context interface.
func (c *jsContext) Fill() {
	c.ctx.Call("fill")
}
