package entity

import (
	"github.com/milk9111/stargate/ecs/component"
	"github.com/milk9111/stargate/prefabs"
	"github.com/milk9111/stargate/vmath"
)

// Vec converts a yaml vector.
func Vec(v prefabs.Vec3Spec) vmath.Vec3 {
	return vmath.Vec3{X: v.X, Y: v.Y, Z: v.Z}
}

// View converts a single view spec.
func View(v prefabs.ViewSpec) component.CameraView {
	return component.CameraView{Position: Vec(v.Position), LookAt: Vec(v.LookAt)}
}

// CameraViews builds the named view table from spec.
func CameraViews(spec *prefabs.ExperienceSpec) map[string]component.CameraView {
	out := make(map[string]component.CameraView, len(spec.Views))
	for name, v := range spec.Views {
		out[name] = View(v)
	}
	return out
}
