package entity

import (
	"fmt"

	"github.com/milk9111/stargate/ecs"
	"github.com/milk9111/stargate/ecs/component"
	"github.com/milk9111/stargate/prefabs"
	"github.com/milk9111/stargate/vmath"
)

func NewCamera(w *ecs.World, spec prefabs.CameraSpec) (ecs.Entity, error) {
	camera := ecs.CreateEntity(w)
	if err := ecs.Add(w, camera, component.CameraTagComponent.Kind(), &component.CameraTag{}); err != nil {
		return 0, fmt.Errorf("camera: add camera tag: %w", err)
	}

	fov := spec.FOV
	if fov == 0 {
		fov = 75
	}
	near := spec.Near
	if near == 0 {
		near = 0.1
	}
	far := spec.Far
	if far == 0 {
		far = 1000
	}
	if err := ecs.Add(w, camera, component.CameraRigComponent.Kind(), &component.CameraRig{
		Position: Vec(spec.Start),
		LookAt:   vmath.Vec3{},
		FOV:      fov,
		Near:     near,
		Far:      far,
	}); err != nil {
		return 0, fmt.Errorf("camera: add camera rig: %w", err)
	}
	return camera, nil
}

// Projector builds the perspective projector for rig at the given viewport.
func Projector(rig *component.CameraRig, width, height float64) vmath.Projector {
	return vmath.NewProjector(rig.Position, rig.LookAt, vmath.Lens{
		FOV:    rig.FOV,
		Near:   rig.Near,
		Far:    rig.Far,
		Width:  width,
		Height: height,
	})
}
