package plating

// Coverage summarizes how far plating has progressed over the interior.
type Coverage struct {
	Alive    int
	Interior int
	// RowDensity holds the alive fraction of each interior row, indexed by
	// y-1.
	RowDensity []float64
	// Front is the deepest interior row holding a live cell, or -1.
	Front int
}

// Fraction returns the alive share of the interior.
func (c Coverage) Fraction() float64 {
	if c.Interior == 0 {
		return 0
	}
	return float64(c.Alive) / float64(c.Interior)
}

// Coverage measures the interior of the board. Border cells are excluded.
func (b *Board) Coverage() Coverage {
	width := b.w - 2
	c := Coverage{
		Interior:   width * (b.h - 2),
		RowDensity: make([]float64, b.h-2),
		Front:      -1,
	}
	for y := 1; y < b.h-1; y++ {
		alive := b.grid.RowCount(y) - b.grid.Bit(0, y) - b.grid.Bit(b.w-1, y)
		c.Alive += alive
		c.RowDensity[y-1] = float64(alive) / float64(width)
		if alive > 0 {
			c.Front = y
		}
	}
	return c
}
