// Package drawing stores the circles placed on the canvas and handles queries to read and update them.
package drawing

import "math"

// equalTolerance is the largest absolute difference allowed between two numeric fields of equal shapes.
const equalTolerance = 1e-9

// Shape is a filled circle on the canvas.
// X and Y are in canvas buffer pixels.
type Shape struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Radius float64 `json:"radius"`
	Color  string  `json:"color"`
}

// Equal reports whether the shapes have the same color and nearly the same position and radius.
func (s Shape) Equal(other Shape) bool {
	return nearlyEqual(s.X, other.X) &&
		nearlyEqual(s.Y, other.Y) &&
		nearlyEqual(s.Radius, other.Radius) &&
		s.Color == other.Color
}

func nearlyEqual(a, b float64) bool {
	return math.Abs(a-b) < equalTolerance
}
