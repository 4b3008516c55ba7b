package component

import "github.com/milk9111/stargate/vmath"

// CameraRig is the single scene camera. Animating is the camera animation
// lock: while it is set every move request is dropped.
type CameraRig struct {
	Position vmath.Vec3
	LookAt   vmath.Vec3
	FOV      float64
	Near     float64
	Far      float64

	Animating bool
	// Destination names the view the in-flight move is heading to.
	Destination string
}

// CameraView is a named camera placement.
type CameraView struct {
	Position vmath.Vec3
	LookAt   vmath.Vec3
}

var CameraRigComponent = NewComponent[CameraRig]()
