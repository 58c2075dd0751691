package plating

import (
	"fmt"

	"plating-ca/internal/core"
)

// minDimension leaves at least one interior cell inside the fixed border.
const minDimension = 3

// Board is a probabilistic plating automaton. Live cells die when isolated
// and dead cells activate with a probability scaled by neighbor density and
// the row gradient. The outer ring of cells is a fixed boundary.
type Board struct {
	cfg Config

	w, h    int
	grid    *core.BitGrid
	scratch *core.BitGrid
	display []uint8

	init       Initializer
	rng        *core.RNG
	generation int
	weights    []float32
}

// New returns a plating board with the provided dimensions using defaults.
func New(w, h int) *Board {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig returns a board configured from the provided options. Boards
// narrower or shorter than three cells have no interior and panic.
func NewWithConfig(cfg Config) *Board {
	if cfg.Width < minDimension || cfg.Height < minDimension {
		panic(fmt.Sprintf("plating: board %dx%d has no interior", cfg.Width, cfg.Height))
	}
	return &Board{
		cfg:     cfg,
		w:       cfg.Width,
		h:       cfg.Height,
		grid:    core.NewBitGrid(cfg.Width, cfg.Height),
		scratch: core.NewBitGrid(cfg.Width, cfg.Height),
		display: make([]uint8, cfg.Width*cfg.Height),
		init:    SineSeed{},
		rng:     core.NewRNG(cfg.Seed),
	}
}

// Name returns the simulation identifier.
func (b *Board) Name() string { return "plating" }

// Size reports the grid dimensions.
func (b *Board) Size() core.Size { return core.Size{W: b.w, H: b.h} }

// Cells exposes the current display buffer.
func (b *Board) Cells() []uint8 { return b.display }

// Grid exposes the live grid.
func (b *Board) Grid() *core.BitGrid { return b.grid }

// Generation reports how many update passes ran since the last reset.
func (b *Board) Generation() int { return b.generation }

// Config returns the configuration the board was built with.
func (b *Board) Config() Config { return b.cfg }

// SetInitializer replaces the pattern applied by Reset. A nil initializer
// leaves the board empty after reset.
func (b *Board) SetInitializer(init Initializer) { b.init = init }

// Reset clears the board, reseeds the random stream and applies the
// initializer. A zero seed falls back to the configured seed.
func (b *Board) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = b.cfg.Seed
	}
	b.rng.Reseed(effective)
	b.grid.Clear()
	b.scratch.Clear()
	if b.init != nil {
		b.init.Seed(b.grid)
	}
	b.generation = 0
	b.rebuildDisplay()
}

// Step applies one update pass using the board's own random stream.
func (b *Board) Step() {
	b.StepWith(b.rng)
}

// StepWith applies one update pass drawing from rng.
func (b *Board) StepWith(rng core.Source) {
	Update(b.grid, b.scratch, rng, b.cfg.Params)
	b.generation++
	b.rebuildDisplay()
}

// WeightMask returns the positional weight of every cell in row-major order.
// The slice is shared and must not be modified.
func (b *Board) WeightMask() []float32 {
	if b.weights == nil {
		b.weights = make([]float32, b.w*b.h)
		for y := 0; y < b.h; y++ {
			for x := 0; x < b.w; x++ {
				b.weights[y*b.w+x] = float32(Weight(x, y, b.h))
			}
		}
	}
	return b.weights
}

func (b *Board) rebuildDisplay() {
	b.grid.FillBytes(b.display)
}

// Update snapshots grid into scratch and evaluates every interior cell in
// row-major order, mutating grid in place. Neighbor counts always read the
// snapshot. Border cells are never touched.
func Update(grid, scratch *core.BitGrid, rng core.Source, params Params) {
	if grid.W < minDimension || grid.H < minDimension {
		panic(fmt.Sprintf("plating: board %dx%d has no interior", grid.W, grid.H))
	}
	scratch.CopyFrom(grid)
	for y := 1; y < grid.H-1; y++ {
		for x := 1; x < grid.W-1; x++ {
			updateCell(grid, scratch, x, y, rng, params)
		}
	}
}

func updateCell(grid, scratch *core.BitGrid, x, y int, rng core.Source, params Params) {
	n := FullNeighbors(scratch, x, y)
	if grid.Get(x, y) {
		if rng.Float64() < deathProbability(params.Rule, n) {
			grid.Set(x, y, false)
		}
		return
	}
	if rng.Float64() < activationProbability(scratch, x, y, n, params.Neighborhood) {
		grid.Set(x, y, true)
	}
}

// deathProbability returns the chance that a live cell with n full neighbors
// dies during a pass.
func deathProbability(rule Rule, n int) float64 {
	if rule == RuleBands {
		if n == 2 || n == 3 {
			return 0
		}
		return 1
	}
	switch {
	case n == 0:
		return 1
	case n <= 3:
		return 0
	default:
		// Crowded cells survive as well.
		return 0
	}
}

// activationProbability returns the chance that a dead cell becomes alive.
func activationProbability(scratch *core.BitGrid, x, y, full int, nb Neighborhood) float64 {
	base := float64(full) / 8
	if nb == NeighborhoodVonNeumann {
		base = float64(OrthogonalNeighbors(scratch, x, y)) / 4
	}
	return base * Weight(x, y, scratch.H)
}

func init() {
	core.Register("plating", func(cfg map[string]string) core.Sim {
		c := FromMap(cfg)
		return NewWithConfig(c)
	})
}
