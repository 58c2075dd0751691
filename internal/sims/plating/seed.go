package plating

import (
	"math"

	"plating-ca/internal/core"
)

// Initializer populates a freshly cleared grid before the first pass.
type Initializer interface {
	Seed(g *core.BitGrid)
}

// InitializerFunc adapts a function to the Initializer interface.
type InitializerFunc func(g *core.BitGrid)

// Seed calls f(g).
func (f InitializerFunc) Seed(g *core.BitGrid) { f(g) }

// SineSeed carves a rounded sine silhouette along the top edge, four cells
// deep at its peak, plus a short vertical stroke below the center column.
type SineSeed struct{}

// Seed applies the pattern to g.
func (SineSeed) Seed(g *core.BitGrid) {
	for x := 0; x < g.W; x++ {
		limit := int(math.Round(4 * math.Sin(float64(x)/float64(g.W)*math.Pi)))
		for y := 0; y < limit && y < g.H; y++ {
			g.Set(x, y, true)
		}
	}
	cx := g.W / 2
	for y := 4; y <= 6; y++ {
		if y < g.H {
			g.Set(cx, y, true)
		}
	}
}
