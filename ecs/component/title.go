package component

import (
	"image/color"

	"github.com/milk9111/stargate/vmath"
)

// Title is a line of 3D placed text revealed after the wormhole.
type Title struct {
	Text     string
	FontKey  string
	Size     float64
	Position vmath.Vec3
	Color    color.RGBA
	Opacity  float64
}

var TitleComponent = NewComponent[Title]()
