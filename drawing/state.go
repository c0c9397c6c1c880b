package drawing

type (
	// State is the ordered list of shapes on the canvas.
	// Shapes are painted in order, so later shapes cover earlier ones.
	State struct {
		Shapes    []Shape `json:"shapes"`
		generator *Generator
	}
)

// NewState creates an empty state that styles new shapes with the generator.
func NewState(g *Generator) *State {
	s := State{
		Shapes:    []Shape{},
		generator: g,
	}
	return &s
}

// AddShape appends a shape at the position with a random radius and color.
// The position is not checked; shapes off the canvas are kept.
func (s *State) AddShape(x, y float64) {
	g := s.generator
	if g == nil {
		g = defaultGenerator
	}
	shape := g.Shape(x, y)
	s.Shapes = append(s.Shapes, shape)
}

// Clear removes all shapes.
func (s *State) Clear() {
	s.Shapes = s.Shapes[:0]
}

// Len is the number of shapes.
func (s State) Len() int {
	return len(s.Shapes)
}

// Snapshot copies the shapes into a new state that does not share memory with this one.
// The snapshot has no generator.
func (s State) Snapshot() State {
	shapes := make([]Shape, len(s.Shapes))
	copy(shapes, s.Shapes)
	return State{
		Shapes: shapes,
	}
}

// Equal reports whether the states have equal shapes in the same order.
func (s State) Equal(other State) bool {
	if len(s.Shapes) != len(other.Shapes) {
		return false
	}
	for i, shape := range s.Shapes {
		if !shape.Equal(other.Shapes[i]) {
			return false
		}
	}
	return true
}
