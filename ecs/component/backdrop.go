package component

import "image/color"

// Backdrop is the singleton for scene-wide look: clear colour (channels in
// 0..1 so they can be tweened), fog range and whether the 3D scene exists yet.
type Backdrop struct {
	R, G, B float64
	FogNear float64
	FogFar  float64
	Visible bool
}

// Grid is the floor of line segments under the wormhole.
type Grid struct {
	Y         float64
	Size      float64
	Divisions int
	Color     color.RGBA
	Opacity   float64
}

var (
	BackdropComponent = NewComponent[Backdrop]()
	GridComponent     = NewComponent[Grid]()
)
