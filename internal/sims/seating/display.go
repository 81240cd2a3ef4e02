package seating

import "image/color"

var seatingPalette = []color.RGBA{
	CellFloor:    {R: 38, G: 38, B: 44, A: 255},
	CellEmpty:    {R: 70, G: 110, B: 150, A: 255},
	CellOccupied: {R: 235, G: 225, B: 190, A: 255},
}

// Palette exposes the color palette used for rendering the seating world.
func (w *World) Palette() []color.RGBA {
	return seatingPalette
}
