//go:build !ebiten

package ui

import "plating-ca/internal/core"

// HUD stands in for the parameter panel when ebiten is not compiled in.
type HUD struct{}

// NewHUD returns nil; the headless build has no panel to draw.
func NewHUD(core.Sim, int) *HUD { return nil }

// Update does nothing without a panel.
func (h *HUD) Update() {}

// Draw does nothing without a panel.
func (h *HUD) Draw(any, int, int) {}
