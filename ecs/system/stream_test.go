package system

import (
	"math/rand/v2"
	"testing"

	"github.com/milk9111/stargate/ecs"
	"github.com/milk9111/stargate/ecs/component"
	"github.com/milk9111/stargate/ecs/entity"
	"github.com/milk9111/stargate/prefabs"
	"github.com/milk9111/stargate/vmath"
)

var testStream = prefabs.StreamSpec{Count: 500, Radius: 50, Length: 1000, Margin: 50, Speed: 5}

func inWindow(z, cameraZ, margin, length float64) bool {
	hi := cameraZ + margin
	return z <= hi && z >= hi-length
}

func TestRecycleStreamStaysInWindow(t *testing.T) {
	tests := []struct {
		name  string
		start float64
		move  float64
	}{
		{name: "fixed camera", start: 15},
		{name: "camera flying forward", start: 300, move: -0.9},
		{name: "camera slower than the stream", start: 0, move: -4.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := ecs.NewWorld()
			_, stream, err := entity.NewParticleStream(w, testStream, tt.start, rand.New(rand.NewPCG(3, 4)))
			if err != nil {
				t.Fatal(err)
			}
			camZ := tt.start
			for f := 0; f < 2000; f++ {
				camZ += tt.move
				RecycleStream(stream, camZ)
				for i, p := range stream.Points {
					if !inWindow(p.Z, camZ, stream.Margin, stream.Length) {
						t.Fatalf("frame %d: point %d at z=%v outside window of camera %v", f, i, p.Z, camZ)
					}
				}
			}
		})
	}
}

func TestRecycleRing(t *testing.T) {
	tests := []struct {
		name string
		z    float64
		want float64
	}{
		{name: "advances", z: 0, want: 5},
		{name: "reaches margin exactly", z: 20, want: 25},
		{name: "wraps past margin", z: 22, want: 27 - 1000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &component.Ring{Z: tt.z, Speed: 5, Margin: 10, Length: 1000}
			RecycleRing(r, 15)
			if r.Z != tt.want {
				t.Fatalf("z = %v, want %v", r.Z, tt.want)
			}
		})
	}
}

func TestStreamSystemOnlyRunsInWormhole(t *testing.T) {
	for _, phase := range []component.ScenePhase{
		component.PhaseBooting,
		component.PhaseAwaitingEntry,
		component.PhaseWormholeTravel,
		component.PhaseNameReveal,
		component.PhaseInteractive,
	} {
		t.Run(phase.String(), func(t *testing.T) {
			w := ecs.NewWorld()
			e := ecs.CreateEntity(w)
			_ = ecs.Add(w, e, component.StageComponent.Kind(), &component.Stage{Phase: phase})
			_ = ecs.Add(w, e, component.CameraRigComponent.Kind(), &component.CameraRig{Position: vmath.Vec3{Z: 15}})
			_, stream, _ := entity.NewParticleStream(w, testStream, 15, rand.New(rand.NewPCG(5, 6)))
			before := append([]vmath.Vec3(nil), stream.Points...)

			NewStreamSystem().Update(w)

			moved := stream.Points[0] != before[0]
			if moved != (phase == component.PhaseWormholeTravel) {
				t.Fatalf("moved = %v in %s", moved, phase)
			}
		})
	}
}
