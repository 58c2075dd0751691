package plating

import (
	"fmt"

	"plating-ca/internal/core"
)

func mustInterior(g *core.BitGrid, x, y int) {
	if x < 1 || x > g.W-2 || y < 1 || y > g.H-2 {
		panic(fmt.Sprintf("plating: neighbor count at non-interior cell (%d,%d) of %dx%d grid", x, y, g.W, g.H))
	}
}

// FullNeighbors returns the number of live cells in the Moore neighborhood of
// the interior cell (x, y).
func FullNeighbors(g *core.BitGrid, x, y int) int {
	mustInterior(g, x, y)
	return g.Bit(x-1, y-1) + g.Bit(x, y-1) + g.Bit(x+1, y-1) +
		g.Bit(x-1, y) + g.Bit(x+1, y) +
		g.Bit(x-1, y+1) + g.Bit(x, y+1) + g.Bit(x+1, y+1)
}

// OrthogonalNeighbors returns the number of live cells in the von Neumann
// neighborhood of the interior cell (x, y).
func OrthogonalNeighbors(g *core.BitGrid, x, y int) int {
	mustInterior(g, x, y)
	return g.Bit(x, y-1) + g.Bit(x-1, y) + g.Bit(x+1, y) + g.Bit(x, y+1)
}

// Weight is the positional plating bias: a linear gradient from 0 on the top
// row towards 1 on the bottom row. x does not contribute.
func Weight(x, y, h int) float64 {
	return float64(y) / float64(h)
}
