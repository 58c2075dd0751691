package core

import (
	"fmt"
	"math/bits"
)

const wordBits = 64

// BitGrid stores a 2D grid of boolean cells as one bit sequence per row,
// rows laid out in row-major order.
type BitGrid struct {
	W, H  int
	words int
	data  []uint64
}

// NewBitGrid allocates a grid with the given dimensions. Non-positive
// dimensions are a programming error and panic.
func NewBitGrid(w, h int) *BitGrid {
	if w <= 0 || h <= 0 {
		panic(fmt.Sprintf("core: invalid grid dimensions %dx%d", w, h))
	}
	words := (w + wordBits - 1) / wordBits
	return &BitGrid{W: w, H: h, words: words, data: make([]uint64, words*h)}
}

// Size returns the grid dimensions.
func (g *BitGrid) Size() Size { return Size{W: g.W, H: g.H} }

// InBounds reports whether (x, y) addresses a cell of the grid.
func (g *BitGrid) InBounds(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

func (g *BitGrid) mustContain(x, y int) {
	if !g.InBounds(x, y) {
		panic(fmt.Sprintf("core: cell (%d,%d) outside %dx%d grid", x, y, g.W, g.H))
	}
}

// Get reports whether the cell at (x, y) is alive.
func (g *BitGrid) Get(x, y int) bool {
	g.mustContain(x, y)
	return g.data[y*g.words+x/wordBits]&(1<<(uint(x)%wordBits)) != 0
}

// Bit returns the cell at (x, y) as 0 or 1.
func (g *BitGrid) Bit(x, y int) int {
	if g.Get(x, y) {
		return 1
	}
	return 0
}

// Set assigns the cell at (x, y).
func (g *BitGrid) Set(x, y int, alive bool) {
	g.mustContain(x, y)
	idx := y*g.words + x/wordBits
	mask := uint64(1) << (uint(x) % wordBits)
	if alive {
		g.data[idx] |= mask
		return
	}
	g.data[idx] &^= mask
}

// CopyFrom overwrites g with the contents of src. Both grids must share the
// same dimensions.
func (g *BitGrid) CopyFrom(src *BitGrid) {
	if src.W != g.W || src.H != g.H {
		panic(fmt.Sprintf("core: copy between mismatched grids %dx%d and %dx%d", src.W, src.H, g.W, g.H))
	}
	copy(g.data, src.data)
}

// Clone returns an independent copy of the grid.
func (g *BitGrid) Clone() *BitGrid {
	c := NewBitGrid(g.W, g.H)
	c.CopyFrom(g)
	return c
}

// Clear kills every cell.
func (g *BitGrid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}

// RowCount returns the number of alive cells in row y.
func (g *BitGrid) RowCount(y int) int {
	g.mustContain(0, y)
	n := 0
	for _, word := range g.data[y*g.words : (y+1)*g.words] {
		n += bits.OnesCount64(word)
	}
	return n
}

// Count returns the number of alive cells in the grid.
func (g *BitGrid) Count() int {
	n := 0
	for _, word := range g.data {
		n += bits.OnesCount64(word)
	}
	return n
}

// Equal reports whether both grids have the same dimensions and cells.
func (g *BitGrid) Equal(other *BitGrid) bool {
	if other == nil || g.W != other.W || g.H != other.H {
		return false
	}
	for i, word := range g.data {
		if other.data[i] != word {
			return false
		}
	}
	return true
}

// FillBytes writes the grid as 0/1 values into buf in row-major order. buf
// must hold exactly W*H entries.
func (g *BitGrid) FillBytes(buf []uint8) {
	if len(buf) != g.W*g.H {
		panic(fmt.Sprintf("core: byte buffer of %d cells for %dx%d grid", len(buf), g.W, g.H))
	}
	for y := 0; y < g.H; y++ {
		row := g.data[y*g.words : (y+1)*g.words]
		base := y * g.W
		for x := 0; x < g.W; x++ {
			buf[base+x] = uint8(row[x/wordBits] >> (uint(x) % wordBits) & 1)
		}
	}
}
