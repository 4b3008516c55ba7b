package system

import (
	"log"
	"math"
	"time"

	"github.com/milk9111/stargate/console"
	"github.com/milk9111/stargate/ecs"
	"github.com/milk9111/stargate/ecs/component"
	"github.com/milk9111/stargate/ecs/entity"
	"github.com/milk9111/stargate/tween"
	"github.com/milk9111/stargate/vmath"
)

const (
	pulseScale    = 1.2
	pulseDuration = 100 * time.Millisecond
)

// InteractionSystem hit-tests the pointer against the nav spheres, keeps the
// hover highlight current and turns clicks into camera moves.
type InteractionSystem struct {
	director *CameraDirector
	console  *console.Console
	tweens   *tween.Manager
}

func NewInteractionSystem(director *CameraDirector, con *console.Console, tweens *tween.Manager) *InteractionSystem {
	return &InteractionSystem{director: director, console: con, tweens: tweens}
}

func (s *InteractionSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	in, ok := ecs.Singleton(w, component.InputComponent.Kind())
	if !ok {
		return
	}

	hit, found := ecs.Entity(0), false
	if !in.OverUI {
		hit, found = s.Pick(w, in.PointerX, in.PointerY, in.Width, in.Height)
	}
	ecs.ForEach(w, component.NavNodeComponent.Kind(), func(e ecs.Entity, n *component.NavNode) {
		n.Hovered = found && e == hit
	})

	if in.Clicked && !in.OverUI {
		s.Click(w, in.PointerX, in.PointerY, in.Width, in.Height)
	}
}

// Active reports whether clicks are processed: the console accepts
// pointer input and no camera move is in flight.
func (s *InteractionSystem) Active(w *ecs.World) bool {
	if s.console == nil || !s.console.PointerEnabled() {
		return false
	}
	return !s.director.Locked(w)
}

// Click handles a pointer press at pixel (x, y) of a width x height
// viewport and reports whether a node was hit.
func (s *InteractionSystem) Click(w *ecs.World, x, y, width, height float64) bool {
	if !s.Active(w) {
		return false
	}
	hit, ok := s.Pick(w, x, y, width, height)
	if !ok {
		return false
	}
	node, ok := ecs.Get(w, hit, component.NavNodeComponent.Kind())
	if !ok {
		return false
	}

	log.Printf("interaction: clicked %s", node.Name)
	s.console.Append("Clicked on: "+string(node.Name), console.Info)
	s.HandleNodeClick(w, node.Name)
	s.tweens.Add(tween.Float(&node.Scale, pulseScale, tween.Options{
		Duration: pulseDuration,
		Yoyo:     true,
		Repeat:   1,
	}))
	return true
}

// HandleNodeClick is the shared navigation entry point for sphere clicks
// and console verbs.
func (s *InteractionSystem) HandleNodeClick(w *ecs.World, name component.NodeName) bool {
	return s.director.MoveTo(w, name)
}

// Pick casts a ray through pixel (x, y) and returns the nearest nav node it
// intersects at the node's current position and scale.
func (s *InteractionSystem) Pick(w *ecs.World, x, y, width, height float64) (ecs.Entity, bool) {
	rig, ok := rigOf(w)
	if !ok || width <= 0 || height <= 0 {
		return 0, false
	}
	ndcX, ndcY := vmath.NDC(x, y, width, height)
	ray := entity.Projector(rig, width, height).Ray(ndcX, ndcY)

	best, bestT, found := ecs.Entity(0), math.Inf(1), false
	ecs.ForEach(w, component.NavNodeComponent.Kind(), func(e ecs.Entity, n *component.NavNode) {
		t, ok := ray.IntersectSphere(n.Position(), n.HitRadius())
		if ok && t < bestT {
			best, bestT, found = e, t, true
		}
	})
	return best, found
}
