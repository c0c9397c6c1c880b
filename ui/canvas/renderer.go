// Package canvas contains the logic to draw the circles.
package canvas

import (
	"errors"
	"fmt"
	"math"

	"github.com/jacobpatterson1549/circle-canvas/drawing"
)

var (
	// ErrNotInitialized is returned when drawing is requested before the renderer has a drawing context.
	ErrNotInitialized = errors.New("rendering context not initialized")
	// ErrContextUnavailable is returned when the page will not provide a 2d drawing context for the canvas.
	ErrContextUnavailable = errors.New("2d rendering context unavailable")
)

type (
	// Renderer draws the shapes of a drawing state on a canvas.
	// The renderer is uninitialized until Initialize binds the drawing context of the canvas.
	Renderer struct {
		surface Surface
		ctx     Context
	}

	// Surface is the canvas element that is drawn on.
	Surface interface {
		// BoundingRect is the location and size of the canvas on the page, in css pixels.
		BoundingRect() Rect
		// BufferSize is the size of the backing buffer of the canvas.
		BufferSize() Size
		// SetBufferSize resizes the backing buffer.  This clears the buffer.
		SetBufferSize(size Size)
		// Context2D gets the 2d drawing context of the canvas.
		Context2D() (Context, error)
	}

	// Context handles the drawing of the canvas.
	Context interface {
		ClearRect(x, y, width, height float64)
		BeginPath()
		Arc(x, y, radius, startAngle, endAngle float64)
		SetFillColor(color string)
		Fill()
	}
)

// NewRenderer creates an uninitialized renderer for the surface.
func NewRenderer(surface Surface) *Renderer {
	r := Renderer{
		surface: surface,
	}
	return &r
}

// Initialize binds the drawing context of the surface.
// This should be called once, after the canvas is on the page.
// Later calls keep the context that is already bound.
func (r *Renderer) Initialize() error {
	if r.ctx != nil {
		return nil
	}
	ctx, err := r.surface.Context2D()
	switch {
	case err != nil:
		return fmt.Errorf("%w: %v", ErrContextUnavailable, err)
	case ctx == nil:
		return ErrContextUnavailable
	}
	r.ctx = ctx
	return nil
}

// Initialized reports whether the renderer has a drawing context.
func (r *Renderer) Initialized() bool {
	return r.ctx != nil
}

// ReconcileSize sets the buffer size of the canvas to its size on the page, rounded to whole pixels.
// True is returned if the buffer was resized, which clears it.
func (r *Renderer) ReconcileSize() (bool, error) {
	if r.ctx == nil {
		return false, ErrNotInitialized
	}
	layoutSize := r.surface.BoundingRect().layoutSize()
	if r.surface.BufferSize() == layoutSize {
		return false, nil
	}
	r.surface.SetBufferSize(layoutSize)
	return true, nil
}

// Paint clears the canvas and draws each shape as a filled circle.
// Shapes are drawn in order.
func (r *Renderer) Paint(state drawing.State) error {
	if r.ctx == nil {
		return ErrNotInitialized
	}
	size := r.surface.BufferSize()
	r.ctx.ClearRect(0, 0, float64(size.Width), float64(size.Height))
	for _, s := range state.Shapes {
		r.ctx.BeginPath()
		r.ctx.Arc(s.X, s.Y, s.Radius, 0, 2*math.Pi)
		r.ctx.SetFillColor(s.Color)
		r.ctx.Fill()
	}
	return nil
}

// Frame fits the canvas to the page and repaints it.
func (r *Renderer) Frame(state drawing.State) error {
	if _, err := r.ReconcileSize(); err != nil {
		return err
	}
	return r.Paint(state)
}
