package entity

import (
	"fmt"
	"time"

	"github.com/milk9111/stargate/common"
	"github.com/milk9111/stargate/ecs"
	"github.com/milk9111/stargate/ecs/component"
	"github.com/milk9111/stargate/prefabs"
)

const (
	nodeStartScale = 0.01
	nodeOpacity    = 0.8
)

// NewNavNodes spawns one sphere per configured node. Nodes start at scale
// 0.01 and float after a random delay in [0.5s, 1.5s).
func NewNavNodes(w *ecs.World, spec prefabs.NodesSpec, rng common.Rand) ([]ecs.Entity, error) {
	radius := spec.Radius
	if radius <= 0 {
		radius = 2
	}
	out := make([]ecs.Entity, 0, len(spec.List))
	for _, ns := range spec.List {
		name, ok := component.ParseNodeName(ns.Name)
		if !ok || name == component.NodeHome {
			return nil, fmt.Errorf("nav node: unknown node %q", ns.Name)
		}
		delay := time.Duration((0.5 + common.Roll(rng)) * float64(time.Second))
		ent := ecs.CreateEntity(w)
		if err := ecs.Add(w, ent, component.NavNodeComponent.Kind(), &component.NavNode{
			Name:       name,
			Anchor:     Vec(ns.Position),
			Color:      ns.Color.RGBA8(),
			Radius:     radius,
			Scale:      nodeStartScale,
			Opacity:    nodeOpacity,
			Script:     spec.Script,
			FloatDelay: delay,
			Spawned:    ecs.Elapsed(w),
		}); err != nil {
			return nil, fmt.Errorf("nav node %s: add component: %w", name, err)
		}
		out = append(out, ent)
	}
	return out, nil
}
