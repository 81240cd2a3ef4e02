//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"seatsim/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

type statsProvider interface {
	Generation() int
	Occupied() int
	Changes() int
}

// HUD draws a one-line status readout over the simulation view. Toggle it
// with the H key.
type HUD struct {
	sim     core.Sim
	visible bool
}

// NewHUD constructs a HUD for the provided simulation.
func NewHUD(sim core.Sim) *HUD {
	return &HUD{sim: sim, visible: true}
}

// Update processes HUD key handling.
func (h *HUD) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		h.visible = !h.visible
	}
}

// Draw renders the status line onto the screen.
func (h *HUD) Draw(screen *ebiten.Image, paused bool) {
	if !h.visible {
		return
	}
	line := h.sim.Name()
	if stats, ok := h.sim.(statsProvider); ok {
		line = fmt.Sprintf("%s  gen %d  occupied %d  changed %d",
			h.sim.Name(), stats.Generation(), stats.Occupied(), stats.Changes())
		if stats.Changes() == 0 && stats.Generation() > 0 {
			line += "  [stable]"
		}
	}
	if paused {
		line += "  [paused]"
	}

	face := basicfont.Face7x13
	shadow := color.RGBA{A: 200}
	text.Draw(screen, line, face, 9, 14, shadow)
	text.Draw(screen, line, face, 8, 13, color.RGBA{R: 240, G: 240, B: 240, A: 255})
}
