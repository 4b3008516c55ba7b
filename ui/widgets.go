package ui

import (
	"image"
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/stargate/clock"
	"github.com/milk9111/stargate/music"
)

// AudioButton is the mute toggle in the top-right corner.
type AudioButton struct {
	UI *ebitenui.UI

	button *widget.Button
}

// NewAudioButton builds the toggle; onClick runs on every press.
func NewAudioButton(face text.Face, onClick func()) *AudioButton {
	b := &AudioButton{}
	b.button = widget.NewButton(
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:    solidNineSlice(buttonIdle),
			Hover:   solidNineSlice(buttonHover),
			Pressed: solidNineSlice(buttonHover),
		}),
		widget.ButtonOpts.Text(music.LabelPlay, &face, &widget.ButtonTextColor{Idle: buttonText}),
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
			HorizontalPosition: widget.AnchorLayoutPositionEnd,
			VerticalPosition:   widget.AnchorLayoutPositionStart,
		})),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if onClick != nil {
				onClick()
			}
		}),
	)
	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout(
		widget.AnchorLayoutOpts.Padding(&widget.Insets{Top: 20, Left: 20, Right: 20, Bottom: 20}),
	)))
	root.AddChild(b.button)
	b.UI = &ebitenui.UI{Container: root}
	return b
}

// Update refreshes the label and runs the widget.
func (b *AudioButton) Update(label string) {
	if text := b.button.Text(); text != nil && text.Label != label {
		text.Label = label
	}
	b.UI.Update()
}

func (b *AudioButton) Contains(x, y int) bool {
	return image.Pt(x, y).In(b.button.GetWidget().Rect)
}

// ClockLabel shows a clock.Widget in the bottom-right corner.
type ClockLabel struct {
	UI *ebitenui.UI

	widget *clock.Widget
	text   *widget.Text
	tint   color.Color
}

func NewClockLabel(face text.Face, w *clock.Widget) *ClockLabel {
	c := &ClockLabel{widget: w, tint: clockColor}
	c.text = widget.NewText(
		widget.TextOpts.Text(w.Text(), &face, clockColor),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
			HorizontalPosition: widget.AnchorLayoutPositionEnd,
			VerticalPosition:   widget.AnchorLayoutPositionEnd,
		})),
	)
	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout(
		widget.AnchorLayoutOpts.Padding(&widget.Insets{Top: 20, Left: 20, Right: 20, Bottom: 20}),
	)))
	root.AddChild(c.text)
	c.UI = &ebitenui.UI{Container: root}
	return c
}

func (c *ClockLabel) Update() {
	c.sync()
	c.UI.Update()
}

func (c *ClockLabel) sync() {
	c.text.Label = c.widget.Text()
	tint := clockColor
	if c.widget.Glitching() {
		tint = glitchColor
	}
	if tint != c.tint {
		c.text.SetColor(tint)
		c.tint = tint
	}
}
