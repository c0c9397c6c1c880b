// Package raster draws on an in-memory image instead of a web page.
// It allows the canvas renderer to run without a browser.
package raster

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/jacobpatterson1549/circle-canvas/ui/canvas"
	"golang.org/x/image/vector"
)

type (
	// Surface is a canvas backed by an RGBA image.
	// The layout rect stands in for the size of the canvas on a page.
	Surface struct {
		layout canvas.Rect
		img    *image.RGBA
		ctx    *Context
	}

	// Context draws paths onto the image of its surface.
	Context struct {
		surface   *Surface
		fillColor color.RGBA
		path      []segment
	}

	// segment is a polyline of the current path.
	segment []point

	point struct {
		x, y float32
	}
)

// defaultBufferSize is the size of a new canvas buffer in browsers.
var defaultBufferSize = canvas.Size{Width: 300, Height: 150}

// arcSegmentLength is the approximate length, in pixels, of the lines that approximate arcs.
const arcSegmentLength = 2.0

// NewSurface creates a surface with the layout rect.
// The buffer has the default canvas size until it is resized.
func NewSurface(layout canvas.Rect) *Surface {
	s := Surface{
		layout: layout,
	}
	s.SetBufferSize(defaultBufferSize)
	return &s
}

// BoundingRect implements the canvas.Surface interface.
func (s *Surface) BoundingRect() canvas.Rect {
	return s.layout
}

// SetLayout changes the simulated size of the canvas on the page.
func (s *Surface) SetLayout(layout canvas.Rect) {
	s.layout = layout
}

// BufferSize implements the canvas.Surface interface.
func (s *Surface) BufferSize() canvas.Size {
	b := s.img.Bounds()
	return canvas.Size{
		Width:  b.Dx(),
		Height: b.Dy(),
	}
}

// SetBufferSize implements the canvas.Surface interface.
// The image is replaced by a transparent image of the new size.
func (s *Surface) SetBufferSize(size canvas.Size) {
	w, h := size.Width, size.Height
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	s.img = image.NewRGBA(image.Rect(0, 0, w, h))
}

// Context2D implements the canvas.Surface interface.
// The same context is returned each time.
func (s *Surface) Context2D() (canvas.Context, error) {
	if s.ctx == nil {
		s.ctx = &Context{
			surface:   s,
			fillColor: color.RGBA{A: 0xff},
		}
	}
	return s.ctx, nil
}

// Image is the current buffer.
func (s *Surface) Image() *image.RGBA {
	return s.img
}

// ClearRect sets the pixels in the rectangle to transparent black.
func (c *Context) ClearRect(x, y, width, height float64) {
	r := image.Rect(int(math.Floor(x)), int(math.Floor(y)), int(math.Ceil(x+width)), int(math.Ceil(y+height)))
	draw.Draw(c.surface.img, r, image.Transparent, image.Point{}, draw.Src)
}

// BeginPath discards the current path.
func (c *Context) BeginPath() {
	c.path = c.path[:0]
}

// Arc adds a clockwise arc around the center to the path.
// Angles are in radians, measured from the positive x axis.
func (c *Context) Arc(x, y, radius, startAngle, endAngle float64) {
	if radius <= 0 {
		return
	}
	sweep := endAngle - startAngle
	if sweep > 2*math.Pi {
		sweep = 2 * math.Pi
	}
	n := int(math.Ceil(math.Abs(sweep) * radius / arcSegmentLength))
	if n < 8 {
		n = 8
	}
	seg := make(segment, 0, n+1)
	for i := 0; i <= n; i++ {
		a := startAngle + sweep*float64(i)/float64(n)
		p := point{
			x: float32(x + radius*math.Cos(a)),
			y: float32(y + radius*math.Sin(a)),
		}
		seg = append(seg, p)
	}
	c.path = append(c.path, seg)
}

// SetFillColor sets the color used by Fill.
// Colors that cannot be parsed are ignored, as browsers do.
func (c *Context) SetFillColor(s string) {
	fillColor, err := ParseColor(s)
	if err != nil {
		return
	}
	c.fillColor = fillColor
}

// Fill paints the inside of the current path with the fill color.
func (c *Context) Fill() {
	img := c.surface.img
	b := img.Bounds()
	if len(c.path) == 0 || b.Empty() {
		return
	}
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	for _, seg := range c.path {
		if len(seg) < 2 {
			continue
		}
		z.MoveTo(seg[0].x, seg[0].y)
		for _, p := range seg[1:] {
			z.LineTo(p.x, p.y)
		}
		z.ClosePath()
	}
	src := image.NewUniform(c.fillColor)
	z.Draw(img, b, src, image.Point{})
}
