package render

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/stargate/ecs"
	"github.com/milk9111/stargate/ecs/component"
	"github.com/milk9111/stargate/vmath"
)

const (
	ringSegments    = 64
	gridSubdivision = 10
	lineWidth       = 1
)

// strokeWorld draws the world-space segment a-b, clipped against the near
// plane and faded by fog at its midpoint.
func (f frame) strokeWorld(a, b vmath.Vec3, c color.RGBA, opacity float64) {
	va, vb, ok := clipNear(f.proj.ToView(a), f.proj.ToView(b), f.proj.Lens().Near)
	if !ok {
		return
	}
	x0, y0, ok0 := f.proj.ViewToScreen(va)
	x1, y1, ok1 := f.proj.ViewToScreen(vb)
	if !ok0 || !ok1 {
		return
	}
	fog := fogFactor((va.Z+vb.Z)/2, f.fogNear, f.fogFar)
	if fog*opacity <= 0 {
		return
	}
	vector.StrokeLine(f.screen, float32(x0), float32(y0), float32(x1), float32(y1), lineWidth, fade(c, opacity*fog), true)
}

func (r *Renderer) drawRings(f frame, w *ecs.World) {
	ecs.ForEach(w, component.RingComponent.Kind(), func(_ ecs.Entity, ring *component.Ring) {
		center := vmath.Vec3{Z: ring.Z}
		prev := center.Add(vmath.Vec3{X: ring.Radius}.RotateEuler(ring.Rotation))
		for i := 1; i <= ringSegments; i++ {
			a := 2 * math.Pi * float64(i) / ringSegments
			local := vmath.Vec3{X: ring.Radius * math.Cos(a), Y: ring.Radius * math.Sin(a)}
			next := center.Add(local.RotateEuler(ring.Rotation))
			f.strokeWorld(prev, next, ring.Color, ring.Opacity)
			prev = next
		}
	})
}

func (r *Renderer) drawGrid(f frame, w *ecs.World) {
	ecs.ForEach(w, component.GridComponent.Kind(), func(_ ecs.Entity, g *component.Grid) {
		if g.Divisions <= 0 || g.Size <= 0 || g.Opacity <= 0 {
			return
		}
		half := g.Size / 2
		step := g.Size / float64(g.Divisions)
		sub := g.Size / gridSubdivision
		for i := 0; i <= g.Divisions; i++ {
			k := -half + float64(i)*step
			for j := 0; j < gridSubdivision; j++ {
				s0 := -half + float64(j)*sub
				s1 := s0 + sub
				f.strokeWorld(vmath.V(s0, g.Y, k), vmath.V(s1, g.Y, k), g.Color, g.Opacity)
				f.strokeWorld(vmath.V(k, g.Y, s0), vmath.V(k, g.Y, s1), g.Color, g.Opacity)
			}
		}
	})
}
