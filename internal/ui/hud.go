//go:build ebiten

package ui

import (
	"image/color"

	"wildgrid/internal/core"
	"wildgrid/internal/sims/ecosystem"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

type parameterProvider interface {
	Parameters() core.ParameterSnapshot
}

// HUD renders the census and rule panel to the right of the simulation view.
type HUD struct {
	sim        core.Sim
	width      int
	panel      *ebiten.Image
	lastHeight int
	visible    bool

	// Parameters never change during a run, so the lines are built once.
	paramLines []string
	lines      []string
}

// NewHUD constructs a HUD for the provided simulation and panel width.
func NewHUD(sim core.Sim, width int) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{sim: sim, width: width, visible: true}
	if provider, ok := sim.(parameterProvider); ok {
		h.paramLines = ParameterLines(provider.Parameters())
	}
	return h
}

// Width reports the horizontal space the panel occupies, zero when hidden.
func (h *HUD) Width() int {
	if h == nil || !h.visible {
		return 0
	}
	return h.width
}

// Toggle shows or hides the panel.
func (h *HUD) Toggle() {
	if h != nil {
		h.visible = !h.visible
	}
}

// Update rebuilds the panel text from the latest census.
func (h *HUD) Update(c ecosystem.Census, paused bool) {
	if h == nil {
		return
	}
	h.lines = h.lines[:0]
	h.lines = append(h.lines, StatusLine(c, paused), "")
	h.lines = append(h.lines, CensusLines(c)...)
	h.lines = append(h.lines, "")
	h.lines = append(h.lines, h.paramLines...)
	h.lines = append(h.lines, "")
	h.lines = append(h.lines, HelpLines()...)
}

// Draw paints the HUD panel anchored to the right edge of the simulation view.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int, scale int) {
	if h.Width() <= 0 {
		return
	}
	if scale <= 0 {
		scale = 1
	}
	height := h.sim.Size().H * scale
	if height <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dx() != h.width || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})

	face := basicfont.Face7x13
	title := color.RGBA{R: 200, G: 200, B: 210, A: 255}
	body := color.RGBA{R: 220, G: 220, B: 230, A: 255}
	text.Draw(h.panel, h.sim.Name(), face, panelPadding, panelPadding+headerBaseline, title)
	y := controlsTop
	for _, line := range h.lines {
		if y > height-panelPadding {
			break
		}
		text.Draw(h.panel, line, face, panelPadding, y, body)
		y += lineHeight
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

const (
	panelPadding   = 12
	lineHeight     = 15
	headerBaseline = 12
	controlsTop    = panelPadding + headerBaseline + 20
)
