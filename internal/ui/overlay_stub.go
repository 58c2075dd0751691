//go:build !ebiten

package ui

import "plating-ca/internal/core"

// Overlay stands in for the weight tint when ebiten is not compiled in.
type Overlay struct{}

// NewOverlay returns an inert overlay.
func NewOverlay(core.Sim, int) *Overlay { return &Overlay{} }

// Update ignores input in headless builds.
func (o *Overlay) Update() {}

// Draw paints nothing in headless builds.
func (o *Overlay) Draw(any) {}
