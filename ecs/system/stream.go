package system

import (
	"github.com/milk9111/stargate/ecs"
	"github.com/milk9111/stargate/ecs/component"
)

// StreamSystem recycles stars and rings so the wormhole never runs out.
// It only runs during WormholeTravel; in every other phase it does nothing.
type StreamSystem struct{}

func NewStreamSystem() *StreamSystem {
	return &StreamSystem{}
}

func (s *StreamSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	stage, ok := stageOf(w)
	if !ok || stage.Phase != component.PhaseWormholeTravel {
		return
	}
	rig, ok := rigOf(w)
	if !ok {
		return
	}
	cameraZ := rig.Position.Z

	ecs.ForEach(w, component.ParticleStreamComponent.Kind(), func(_ ecs.Entity, stream *component.ParticleStream) {
		RecycleStream(stream, cameraZ)
	})
	ecs.ForEach(w, component.RingComponent.Kind(), func(_ ecs.Entity, ring *component.Ring) {
		RecycleRing(ring, cameraZ)
	})
}

// RecycleStream advances every point by the stream speed and wraps points
// that passed cameraZ+Margin back by the stream length.
func RecycleStream(s *component.ParticleStream, cameraZ float64) {
	if s == nil {
		return
	}
	limit := cameraZ + s.Margin
	points := s.Points
	for i := range points {
		z := points[i].Z + s.Speed
		if z > limit {
			z -= s.Length
		}
		points[i].Z = z
	}
}

// RecycleRing applies the stream rule to a single ring.
func RecycleRing(r *component.Ring, cameraZ float64) {
	if r == nil {
		return
	}
	r.Z += r.Speed
	if r.Z > cameraZ+r.Margin {
		r.Z -= r.Length
	}
}
