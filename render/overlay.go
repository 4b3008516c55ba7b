package render

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/stargate/ecs/component"
)

const (
	overlayTextSize = 18
	overlayMarginX  = 40
	powerNodeRadius = 6
	powerPulseHz    = 0.5
	cursorBlinkHz   = 2
)

var (
	bootGreen  = color.RGBA{R: 0x00, G: 0xff, B: 0x66, A: 0xff}
	promptGray = color.RGBA{R: 0xcc, G: 0xcc, B: 0xcc, A: 0xff}
)

// drawOverlay paints the boot layer: black backing, typed line with caret,
// the pulsing power node and the scroll prompt.
func (r *Renderer) drawOverlay(f frame, o *component.Overlay) {
	if o.Opacity <= 0 {
		return
	}
	if o.Backing > 0 {
		vector.DrawFilledRect(f.screen, 0, 0, float32(f.width), float32(f.height), fade(color.RGBA{A: 0xff}, o.Backing*o.Opacity), false)
	}

	if p := o.PowerOpacity * o.Opacity; p > 0 {
		pulse := 0.6 + 0.4*math.Sin(2*math.Pi*powerPulseHz*f.elapsed)
		vector.DrawFilledCircle(f.screen, overlayMarginX/2, float32(f.height/2), powerNodeRadius, fade(bootGreen, p*pulse), true)
	}

	face := GetFace(r.OverlayFont, overlayTextSize)
	if face == nil {
		return
	}
	line := o.Text
	if o.Cursor && math.Mod(f.elapsed*cursorBlinkHz, 1) < 0.5 {
		line += "_"
	}
	if line != "" {
		op := &text.DrawOptions{}
		op.SecondaryAlign = text.AlignCenter
		op.GeoM.Translate(overlayMarginX, f.height/2)
		op.ColorScale.ScaleWithColor(bootGreen)
		op.ColorScale.ScaleAlpha(float32(o.Opacity))
		text.Draw(f.screen, line, face, op)
	}

	if p := o.PromptOpacity * o.Opacity; p > 0 && o.PromptText != "" {
		op := &text.DrawOptions{}
		op.PrimaryAlign = text.AlignCenter
		op.GeoM.Translate(f.width/2, f.height*0.85)
		op.ColorScale.ScaleWithColor(promptGray)
		op.ColorScale.ScaleAlpha(float32(p))
		text.Draw(f.screen, o.PromptText, face, op)
	}
}
