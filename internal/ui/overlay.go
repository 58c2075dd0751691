//go:build ebiten

package ui

import (
	"plating-ca/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type weightProvider interface {
	WeightMask() []float32
}

// Overlay tints the board with the positional plating weight. Press G to
// toggle it.
type Overlay struct {
	sim   core.Sim
	scale int
	show  bool
	img   *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	return &Overlay{sim: sim, scale: scale}
}

// Update handles the toggle key.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		o.show = !o.show
	}
}

// Draw blends the weight tint over screen when enabled.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.show {
		return
	}
	if o.img == nil {
		provider, ok := o.sim.(weightProvider)
		if !ok {
			return
		}
		size := o.sim.Size()
		mask := provider.WeightMask()
		if len(mask) != size.W*size.H {
			return
		}
		buf := make([]byte, 4*len(mask))
		weightTint(buf, mask)
		o.img = ebiten.NewImage(size.W, size.H)
		o.img.WritePixels(buf)
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(o.scale), float64(o.scale))
	screen.DrawImage(o.img, op)
}
