package entity

import (
	"fmt"
	"math"

	"github.com/milk9111/stargate/common"
	"github.com/milk9111/stargate/ecs"
	"github.com/milk9111/stargate/ecs/component"
	"github.com/milk9111/stargate/prefabs"
	"github.com/milk9111/stargate/vmath"
)

// WrapInto moves z by whole multiples of length until it lies in
// [hi-length, hi].
func WrapInto(z, hi, length float64) float64 {
	if length <= 0 {
		return z
	}
	lo := hi - length
	if z > hi || z < lo {
		z = hi - math.Mod(hi-z, length)
		if z > hi {
			z -= length
		}
	}
	return z
}

// NewParticleStream allocates the star buffer, every point already inside
// the recycle window of a camera at cameraZ.
func NewParticleStream(w *ecs.World, spec prefabs.StreamSpec, cameraZ float64, rng common.Rand) (ecs.Entity, *component.ParticleStream, error) {
	stream := &component.ParticleStream{
		Points: make([]vmath.Vec3, spec.Count),
		Radius: spec.Radius,
		Length: spec.Length,
		Margin: spec.Margin,
		Speed:  spec.Speed,
		Size:   spec.Size,
		Color:  spec.Color.RGBA8(),
	}
	hi := cameraZ + spec.Margin
	for i := range stream.Points {
		stream.Points[i] = vmath.Vec3{
			X: (common.Roll(rng) - 0.5) * spec.Radius * 2,
			Y: (common.Roll(rng) - 0.5) * spec.Radius * 2,
			Z: hi - common.Roll(rng)*spec.Length,
		}
	}

	ent := ecs.CreateEntity(w)
	if err := ecs.Add(w, ent, component.ParticleStreamComponent.Kind(), stream); err != nil {
		return 0, nil, fmt.Errorf("stream: add particle stream: %w", err)
	}
	return ent, stream, nil
}

// NewRings creates the ring sequence. Ring i starts at -i*length/count,
// wrapped into the recycle window, with radius maxRadius*i/count + 30.
func NewRings(w *ecs.World, rings prefabs.RingsSpec, stream prefabs.StreamSpec, cameraZ float64, rng common.Rand) ([]ecs.Entity, error) {
	if rings.Count <= 0 {
		return nil, nil
	}
	out := make([]ecs.Entity, 0, rings.Count)
	spacing := stream.Length / float64(rings.Count)
	for i := 0; i < rings.Count; i++ {
		ring := &component.Ring{
			Index:  i,
			Z:      WrapInto(-float64(i)*spacing, cameraZ+rings.Margin, stream.Length),
			Radius: rings.MaxRadius*(float64(i)/float64(rings.Count)) + 30,
			Tube:   rings.Tube,
			Rotation: vmath.Vec3{
				X: common.Roll(rng) * math.Pi,
				Y: common.Roll(rng) * math.Pi,
			},
			Color:   rings.Color.RGBA8(),
			Opacity: rings.Opacity,
			Length:  stream.Length,
			Margin:  rings.Margin,
			Speed:   stream.Speed,
		}
		ent := ecs.CreateEntity(w)
		if err := ecs.Add(w, ent, component.RingComponent.Kind(), ring); err != nil {
			return nil, fmt.Errorf("rings: add ring %d: %w", i, err)
		}
		out = append(out, ent)
	}
	return out, nil
}

func NewGrid(w *ecs.World, spec prefabs.GridSpec) (ecs.Entity, *component.Grid, error) {
	grid := &component.Grid{
		Y:         spec.Y,
		Size:      spec.Size,
		Divisions: spec.Divisions,
		Color:     spec.Color.RGBA8(),
		Opacity:   spec.OpacityFrom,
	}
	ent := ecs.CreateEntity(w)
	if err := ecs.Add(w, ent, component.GridComponent.Kind(), grid); err != nil {
		return 0, nil, fmt.Errorf("grid: add grid: %w", err)
	}
	return ent, grid, nil
}
