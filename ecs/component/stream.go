package component

import (
	"image/color"

	"github.com/milk9111/stargate/vmath"
)

// ParticleStream is the star buffer of the wormhole. Points is allocated once
// and recycled in place.
type ParticleStream struct {
	Points []vmath.Vec3
	Radius float64
	// Length is the depth span; a point that passes the camera is pushed back
	// by exactly this much.
	Length float64
	// Margin is how far past the camera a point may travel before wrapping.
	Margin float64
	// Speed is the forward step per frame.
	Speed float64
	Size  float64
	Color color.RGBA
}

var ParticleStreamComponent = NewComponent[ParticleStream]()
