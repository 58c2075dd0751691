//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"plating-ca/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	hudPadding    = 8
	hudLineHeight = 15
)

var (
	hudBackground = color.RGBA{R: 16, G: 16, B: 20, A: 255}
	hudTitle      = color.RGBA{R: 240, G: 220, B: 160, A: 255}
	hudGroup      = color.RGBA{R: 150, G: 170, B: 200, A: 255}
	hudText       = color.RGBA{R: 220, G: 220, B: 220, A: 255}
)

type hudLine struct {
	text string
	clr  color.Color
}

// HUD renders the parameter panel to the right of the simulation view.
type HUD struct {
	sim        core.Sim
	width      int
	panel      *ebiten.Image
	lastHeight int
	lines      []hudLine
}

// NewHUD constructs a HUD for the provided simulation and panel width. A
// zero width disables the panel.
func NewHUD(sim core.Sim, width int) *HUD {
	if width <= 0 {
		return nil
	}
	return &HUD{sim: sim, width: width}
}

// Update refreshes the cached lines from the simulation parameters.
func (h *HUD) Update() {
	if h == nil {
		return
	}
	h.lines = h.lines[:0]
	h.lines = append(h.lines, hudLine{text: h.sim.Name(), clr: hudTitle})
	provider, ok := h.sim.(core.ParameterProvider)
	if !ok {
		return
	}
	for _, group := range provider.Parameters().Groups {
		h.lines = append(h.lines, hudLine{text: group.Name, clr: hudGroup})
		for _, p := range group.Params {
			h.lines = append(h.lines, hudLine{text: fmt.Sprintf("  %s: %s", p.Label, p.Value), clr: hudText})
		}
	}
}

// Draw paints the HUD panel anchored at offsetX.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int, scale int) {
	if h == nil {
		return
	}
	if scale <= 0 {
		scale = 1
	}
	height := h.sim.Size().H * scale
	if height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(hudBackground)
	y := hudPadding + hudLineHeight
	for _, line := range h.lines {
		if y > height {
			break
		}
		text.Draw(h.panel, line.text, basicfont.Face7x13, hudPadding, y, line.clr)
		y += hudLineHeight
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}
