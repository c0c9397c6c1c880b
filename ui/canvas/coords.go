package canvas

import "errors"

// ErrDegenerateLayout is returned when the canvas takes up no space on the page, so points on it cannot be scaled.
var ErrDegenerateLayout = errors.New("canvas has zero layout width or height")

type (
	// Point is a location in either page (css) pixels or canvas buffer pixels.
	Point struct {
		X float64
		Y float64
	}

	// Rect is the bounding box of the canvas on the page, in css pixels.
	Rect struct {
		Left   float64
		Top    float64
		Width  float64
		Height float64
	}

	// Size is the dimensions of the canvas backing buffer.
	Size struct {
		Width  int
		Height int
	}
)

// MapToBuffer converts a point on the page to a point in the canvas buffer.
// The layout size of the canvas may differ from the size of its buffer, so the offset from the top-left corner is scaled.
func MapToBuffer(p Point, rect Rect, buffer Size) (Point, error) {
	if rect.Width <= 0 || rect.Height <= 0 {
		return Point{}, ErrDegenerateLayout
	}
	scaleX := float64(buffer.Width) / rect.Width
	scaleY := float64(buffer.Height) / rect.Height
	bp := Point{
		X: (p.X - rect.Left) * scaleX,
		Y: (p.Y - rect.Top) * scaleY,
	}
	return bp, nil
}

// layoutSize is the rect size rounded to the nearest whole pixels.
func (r Rect) layoutSize() Size {
	return Size{
		Width:  roundPixels(r.Width),
		Height: roundPixels(r.Height),
	}
}

// roundPixels rounds half away from zero.  Negative sizes are treated as zero.
func roundPixels(f float64) int {
	if f <= 0 {
		return 0
	}
	return int(f + 0.5)
}
