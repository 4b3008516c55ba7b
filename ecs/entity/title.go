package entity

import (
	"fmt"

	"github.com/milk9111/stargate/ecs"
	"github.com/milk9111/stargate/ecs/component"
	"github.com/milk9111/stargate/prefabs"
)

// NewTitles creates the main and subtitle entities, fully transparent at
// their resting positions.
func NewTitles(w *ecs.World, spec prefabs.RevealSpec, fontKey string) (mainTitle, subTitle ecs.Entity, err error) {
	mainTitle, err = newTitle(w, spec.Main, fontKey, component.MainTitleTagComponent.Kind(), &component.MainTitleTag{})
	if err != nil {
		return 0, 0, fmt.Errorf("title: main: %w", err)
	}
	subTitle, err = newTitle(w, spec.Sub, fontKey, component.SubTitleTagComponent.Kind(), &component.SubTitleTag{})
	if err != nil {
		return 0, 0, fmt.Errorf("title: sub: %w", err)
	}
	return mainTitle, subTitle, nil
}

func newTitle[T any](w *ecs.World, spec prefabs.TitleSpec, fontKey string, tag component.ComponentKind[T], tagValue *T) (ecs.Entity, error) {
	ent := ecs.CreateEntity(w)
	if err := ecs.Add(w, ent, component.TitleComponent.Kind(), &component.Title{
		Text:     spec.Text,
		FontKey:  fontKey,
		Size:     spec.Size,
		Position: Vec(spec.Position),
		Color:    spec.Color.RGBA8(),
	}); err != nil {
		return 0, fmt.Errorf("add title: %w", err)
	}
	if err := ecs.Add(w, ent, tag, tagValue); err != nil {
		return 0, fmt.Errorf("add tag: %w", err)
	}
	return ent, nil
}
