package drawing

import (
	"math/rand"
	"strconv"
	"sync"
	"time"
)

const (
	// MinRadius is the smallest radius of a generated shape.
	MinRadius = 10.0
	// MaxRadius is the largest radius of a generated shape.
	MaxRadius = 50.0
	// MinChannel is the smallest red, green, or blue value of a generated color.
	MinChannel = 100
	// MaxChannel is the largest red, green, or blue value of a generated color.
	MaxChannel = 255
)

// Generator picks the style of new shapes.
// It is safe to use from multiple goroutines.
type Generator struct {
	mu   sync.Mutex
	rand *rand.Rand
}

// defaultGenerator is used by states that were not created with a generator.
var defaultGenerator = NewGenerator(rand.New(rand.NewSource(time.Now().UnixNano())))

// NewGenerator creates a Generator that draws values from the source.
func NewGenerator(r *rand.Rand) *Generator {
	g := Generator{
		rand: r,
	}
	return &g
}

// Shape creates a shape at the position with a random radius and color.
func (g *Generator) Shape(x, y float64) Shape {
	g.mu.Lock()
	defer g.mu.Unlock()
	radius := MinRadius + g.rand.Float64()*(MaxRadius-MinRadius)
	r, gr, b := g.channel(), g.channel(), g.channel()
	s := Shape{
		X:      x,
		Y:      y,
		Radius: radius,
		Color:  rgb(r, gr, b),
	}
	return s
}

// channel returns a value in [MinChannel, MaxChannel].
func (g *Generator) channel() int {
	return MinChannel + g.rand.Intn(MaxChannel-MinChannel+1)
}

// rgb formats the color as a css rgb() function.
func rgb(r, g, b int) string {
	return "rgb(" + strconv.Itoa(r) + ", " + strconv.Itoa(g) + ", " + strconv.Itoa(b) + ")"
}
