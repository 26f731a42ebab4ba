//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD paints a translucent stats panel in the top-left screen corner. The
// host replaces its lines every frame; the panel sizes itself to fit.
type HUD struct {
	lines []string
	pixel *ebiten.Image
}

// NewHUD constructs an empty panel.
func NewHUD() *HUD {
	h := &HUD{}
	h.pixel = ebiten.NewImage(1, 1)
	h.pixel.Fill(color.White)
	return h
}

// SetLines replaces the panel contents for this frame.
func (h *HUD) SetLines(lines ...string) {
	h.lines = lines
}

// Draw paints the panel background and its text rows.
func (h *HUD) Draw(screen *ebiten.Image) {
	if len(h.lines) == 0 {
		return
	}
	face := basicfont.Face7x13

	width := 0
	for _, line := range h.lines {
		if w := text.BoundString(face, line).Dx(); w > width {
			width = w
		}
	}
	panelW := width + 2*panelPadding
	panelH := len(h.lines)*lineHeight + 2*panelPadding

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(panelW), float64(panelH))
	op.GeoM.Translate(panelMargin, panelMargin)
	op.ColorM.Scale(10/255.0, 12/255.0, 16/255.0, 185/255.0)
	screen.DrawImage(h.pixel, op)

	for i, line := range h.lines {
		y := panelMargin + panelPadding + i*lineHeight + textBaseline
		text.Draw(screen, line, face, panelMargin+panelPadding, y, color.RGBA{R: 212, G: 216, B: 226, A: 255})
	}
}

const (
	panelMargin  = 8
	panelPadding = 10
	lineHeight   = 16
	textBaseline = 11
)
