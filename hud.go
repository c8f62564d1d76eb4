package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"golang.org/x/image/font/basicfont"
)

// HUD layout
const (
	hudLabel       = "Click to spawn fireworks"
	hudBarY        = 9
	hudBarW        = 580
	hudBarH        = 30
	hudTextX       = 10
	hudTextY       = 15
	hudFPSX        = 700
	hudFPSY        = 15
	hudCountY      = 45
	hudTextScale   = 20.0 / 13 // basicfont is 13px tall; the label is 20px
	hudBarOpacity  = 0.7
	hudFadeSeconds = 1.0
)

var (
	hudBarColor   = color.RGBA{200, 200, 200, 255} // light grey
	hudTextColor  = color.Black
	hudFPSColor   = color.RGBA{0, 228, 48, 255}
	hudCountColor = color.RGBA{130, 130, 130, 255}
)

// HUD draws the status bar, label and frame counter over the glow pass.
type HUD struct {
	fade    *gween.Tween
	opacity float32
	face    text.Face
}

// NewHUD creates a HUD whose bar fades in over one second.
func NewHUD() *HUD {
	return &HUD{
		fade: gween.New(0, hudBarOpacity, hudFadeSeconds, ease.OutQuad),
		face: text.NewGoXFace(basicfont.Face7x13),
	}
}

// Update advances the fade-in by dt seconds.
func (h *HUD) Update(dt float32) {
	if h.fade == nil {
		return
	}
	v, done := h.fade.Update(dt)
	h.opacity = v
	if done {
		h.opacity = hudBarOpacity
		h.fade = nil
	}
}

// Opacity returns the current bar opacity.
func (h *HUD) Opacity() float32 {
	return h.opacity
}

// particleCountText formats the live particle counter shown under the bar.
func particleCountText(live int) string {
	if live == 1 {
		return "1 particle"
	}
	return fmt.Sprintf("%d particles", live)
}

// Draw renders the bar with its static label, the FPS counter and the live
// particle count below the bar.
func (h *HUD) Draw(screen *ebiten.Image, live int) {
	bar := color.NRGBA{hudBarColor.R, hudBarColor.G, hudBarColor.B, uint8(h.opacity * 255)}
	vector.DrawFilledRect(screen, 0, hudBarY, hudBarW, hudBarH, bar, false)

	op := &text.DrawOptions{}
	op.GeoM.Scale(hudTextScale, hudTextScale)
	op.GeoM.Translate(hudTextX, hudTextY)
	op.ColorScale.ScaleWithColor(hudTextColor)
	op.ColorScale.ScaleAlpha(h.opacity / hudBarOpacity)
	text.Draw(screen, hudLabel, h.face, op)

	op = &text.DrawOptions{}
	op.GeoM.Translate(hudTextX, hudCountY)
	op.ColorScale.ScaleWithColor(hudCountColor)
	text.Draw(screen, particleCountText(live), h.face, op)

	op = &text.DrawOptions{}
	op.GeoM.Translate(hudFPSX, hudFPSY)
	op.ColorScale.ScaleWithColor(hudFPSColor)
	text.Draw(screen, fmt.Sprintf("%d FPS", int(ebiten.ActualFPS()+0.5)), h.face, op)
}
