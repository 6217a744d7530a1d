//go:build ebiten

package ui

import (
	"image/color"

	"wildgrid/internal/sims/ecosystem"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Overlay draws the tooltip for the cell under the cursor.
type Overlay struct {
	world Inspector
	scale int

	pixel *ebiten.Image

	mouseX, mouseY int
	cell           ecosystem.Cell
	hovered        bool
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(world Inspector, scale int) *Overlay {
	if scale <= 0 {
		scale = 1
	}
	o := &Overlay{world: world, scale: scale}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update tracks the cursor and snapshots the cell beneath it.
func (o *Overlay) Update() {
	o.mouseX, o.mouseY = ebiten.CursorPosition()
	o.hovered = false
	if o.mouseX < 0 || o.mouseY < 0 {
		return
	}
	o.cell, o.hovered = o.world.CellAt(o.mouseX/o.scale, o.mouseY/o.scale)
}

// Hovered returns the grid position under the cursor, if any.
func (o *Overlay) Hovered() (x, y int, ok bool) {
	return o.cell.X, o.cell.Y, o.hovered
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.hovered {
		return
	}
	lines := TooltipLines(o.cell)
	face := basicfont.Face7x13

	width := 0
	for _, line := range lines {
		width = max(width, text.BoundString(face, line).Dx())
	}
	boxW := width + 2*tooltipPadding
	boxH := len(lines)*lineHeight + 2*tooltipPadding

	// Keep the box inside the grid area.
	bounds := screen.Bounds()
	x := o.mouseX + tooltipOffset
	y := o.mouseY + tooltipOffset
	if x+boxW > bounds.Dx() {
		x = o.mouseX - tooltipOffset - boxW
	}
	if y+boxH > bounds.Dy() {
		y = o.mouseY - tooltipOffset - boxH
	}
	x = max(x, 0)
	y = max(y, 0)

	o.fillRect(screen, x, y, boxW, boxH, color.RGBA{R: 12, G: 12, B: 16, A: 220})
	for i, line := range lines {
		baseline := y + tooltipPadding + (i+1)*lineHeight - 3
		text.Draw(screen, line, face, x+tooltipPadding, baseline, color.RGBA{R: 235, G: 235, B: 240, A: 255})
	}
}

func (o *Overlay) fillRect(screen *ebiten.Image, x, y, w, h int, col color.RGBA) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(w), float64(h))
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}

const (
	tooltipPadding = 6
	tooltipOffset  = 14
)
