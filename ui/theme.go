// Package ui builds the ebitenui widgets of the interactive HUD: the
// terminal console, the audio toggle and the clock.
package ui

import (
	"image/color"

	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/stargate/console"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"
)

var (
	panelColor   = color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xb0}
	inputColor   = color.NRGBA{R: 0x10, G: 0x18, B: 0x10, A: 0xff}
	buttonIdle   = color.NRGBA{R: 0x22, G: 0x22, B: 0x22, A: 0xd0}
	buttonHover  = color.NRGBA{R: 0x33, G: 0x44, B: 0x33, A: 0xe0}
	glitchColor  = colornames.Magenta
	clockColor   = colornames.Lime
	promptColor  = colornames.Lime
	buttonText   = colornames.White
	severityLook = map[console.Severity]color.Color{
		console.Normal:  colornames.Lightgray,
		console.Command: colornames.Lime,
		console.Info:    colornames.Cyan,
		console.Error:   colornames.Red,
	}
)

func solidNineSlice(c color.Color) *imageui.NineSlice {
	return imageui.NewNineSliceColor(c)
}

func severityColor(s console.Severity) color.Color {
	if c, ok := severityLook[s]; ok {
		return c
	}
	return colornames.White
}

// DefaultFace is the monospace face used when no UI face is supplied.
func DefaultFace() text.Face {
	return text.NewGoXFace(basicfont.Face7x13)
}
