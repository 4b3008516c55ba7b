package entity

import (
	"fmt"

	"github.com/milk9111/stargate/ecs"
	"github.com/milk9111/stargate/ecs/component"
	"github.com/milk9111/stargate/prefabs"
)

// NewStage creates the singleton entity that holds the scene-wide
// components: phase, backdrop, boot overlay, HUD and input.
func NewStage(w *ecs.World, spec *prefabs.ExperienceSpec) (ecs.Entity, error) {
	if w == nil || spec == nil {
		return 0, fmt.Errorf("stage: world or spec is nil")
	}
	ent := ecs.CreateEntity(w)
	if err := ecs.Add(w, ent, component.StageComponent.Kind(), &component.Stage{Phase: component.PhaseBooting}); err != nil {
		return 0, fmt.Errorf("stage: add stage: %w", err)
	}
	if err := ecs.Add(w, ent, component.BackdropComponent.Kind(), &component.Backdrop{
		FogNear: spec.Fog.Near,
		FogFar:  spec.Fog.Far,
	}); err != nil {
		return 0, fmt.Errorf("stage: add backdrop: %w", err)
	}
	if err := ecs.Add(w, ent, component.OverlayComponent.Kind(), &component.Overlay{
		Opacity:    1,
		Backing:    1,
		PromptText: spec.Boot.Prompt,
	}); err != nil {
		return 0, fmt.Errorf("stage: add overlay: %w", err)
	}
	if err := ecs.Add(w, ent, component.HUDComponent.Kind(), &component.HUD{}); err != nil {
		return 0, fmt.Errorf("stage: add hud: %w", err)
	}
	if err := ecs.Add(w, ent, component.InputComponent.Kind(), &component.Input{}); err != nil {
		return 0, fmt.Errorf("stage: add input: %w", err)
	}
	return ent, nil
}
