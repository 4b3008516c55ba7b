package component

import (
	"image/color"

	"github.com/milk9111/stargate/vmath"
)

// Ring is one stargate ring of the wormhole.
type Ring struct {
	Index    int
	Z        float64
	Radius   float64
	Tube     float64
	Rotation vmath.Vec3
	Color    color.RGBA
	Opacity  float64

	Length float64
	Margin float64
	Speed  float64
}

var RingComponent = NewComponent[Ring]()
