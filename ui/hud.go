package ui

import (
	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/stargate/clock"
	"github.com/milk9111/stargate/console"
	"github.com/milk9111/stargate/ecs/component"
)

// HUD groups the three widgets. Each is drawn through an offscreen layer so
// it can fade independently.
type HUD struct {
	Console *ConsolePanel
	Audio   *AudioButton
	Clock   *ClockLabel

	layer   *ebiten.Image
	focused bool
}

type HUDConfig struct {
	Console     *console.Console
	Clock       *clock.Widget
	Face        text.Face
	Paste       func() string
	ToggleAudio func()
}

func NewHUD(cfg HUDConfig) *HUD {
	face := cfg.Face
	if face == nil {
		face = DefaultFace()
	}
	return &HUD{
		Console: NewConsolePanel(cfg.Console, face, cfg.Paste),
		Audio:   NewAudioButton(face, cfg.ToggleAudio),
		Clock:   NewClockLabel(face, cfg.Clock),
	}
}

// Update runs the widgets while the HUD is visible and reports whether the
// pointer at (x, y) is over one of them.
func (h *HUD) Update(state component.HUD, audioLabel string, x, y int) bool {
	if !state.Visible {
		return false
	}
	if !h.focused {
		h.Console.Focus()
		h.focused = true
	}
	h.Console.Update()
	h.Audio.Update(audioLabel)
	h.Clock.Update()
	return h.Console.Contains(x, y) || h.Audio.Contains(x, y)
}

func (h *HUD) Draw(screen *ebiten.Image, state component.HUD) {
	if !state.Visible {
		return
	}
	h.drawLayer(screen, h.Console.UI, state.ConsoleOpacity)
	h.drawLayer(screen, h.Audio.UI, state.AudioOpacity)
	h.drawLayer(screen, h.Clock.UI, state.ClockOpacity)
}

func (h *HUD) drawLayer(screen *ebiten.Image, u *ebitenui.UI, opacity float64) {
	if opacity <= 0 {
		return
	}
	if opacity >= 1 {
		u.Draw(screen)
		return
	}
	b := screen.Bounds()
	if h.layer == nil || h.layer.Bounds() != b {
		if h.layer != nil {
			h.layer.Deallocate()
		}
		h.layer = ebiten.NewImage(b.Dx(), b.Dy())
	}
	h.layer.Clear()
	u.Draw(h.layer)
	op := &ebiten.DrawImageOptions{}
	op.ColorScale.ScaleAlpha(float32(opacity))
	screen.DrawImage(h.layer, op)
}
