//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"plating-ca/internal/core"
)

// Plated and bath are the default colors for alive and dead cells.
var (
	Plated = color.RGBA{R: 214, G: 190, B: 120, A: 255}
	Bath   = color.RGBA{R: 12, G: 20, B: 34, A: 255}
)

// GridPainter uploads binary cell data into one image and draws it scaled.
type GridPainter struct {
	size    core.Size
	on, off color.Color
	img     *ebiten.Image
	buf     []byte
}

// NewGridPainter allocates a painter for a grid of the given size.
func NewGridPainter(size core.Size, on, off color.Color) *GridPainter {
	return &GridPainter{
		size: size,
		on:   on,
		off:  off,
		img:  ebiten.NewImage(size.W, size.H),
		buf:  make([]byte, 4*size.W*size.H),
	}
}

// Blit draws cells onto dst at the given integer scale. Buffers that do not
// match the painter size are skipped.
func (gp *GridPainter) Blit(dst *ebiten.Image, cells []uint8, scale int) {
	if len(cells) != gp.size.W*gp.size.H {
		return
	}
	fillBinaryRGBA(gp.buf, cells, gp.on, gp.off)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// Size returns the grid dimensions the painter was built for.
func (gp *GridPainter) Size() core.Size { return gp.size }
