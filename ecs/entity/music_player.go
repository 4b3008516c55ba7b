package entity

import (
	"fmt"

	"github.com/milk9111/stargate/ecs"
	"github.com/milk9111/stargate/ecs/component"
	"github.com/milk9111/stargate/prefabs"
)

func NewMusicPlayer(w *ecs.World, spec prefabs.AudioSpec, autoplay bool) (ecs.Entity, error) {
	if w == nil {
		return 0, fmt.Errorf("music player: world is nil")
	}
	ent := ecs.CreateEntity(w)
	if err := ecs.Add(w, ent, component.MusicPlayerComponent.Kind(), &component.MusicPlayer{
		Track:    spec.Track,
		Volume:   spec.Volume,
		Autoplay: autoplay,
	}); err != nil {
		return 0, fmt.Errorf("music player: add component: %w", err)
	}
	return ent, nil
}
