package system

import (
	"github.com/milk9111/stargate/clock"
	"github.com/milk9111/stargate/ecs"
	"github.com/milk9111/stargate/ecs/component"
)

// ClockSystem ticks the corner clock once the HUD is visible.
type ClockSystem struct {
	widget *clock.Widget
}

func NewClockSystem(widget *clock.Widget) *ClockSystem {
	return &ClockSystem{widget: widget}
}

func (s *ClockSystem) Widget() *clock.Widget { return s.widget }

func (s *ClockSystem) Update(w *ecs.World) {
	if s == nil || s.widget == nil {
		return
	}
	hud, ok := ecs.Singleton(w, component.HUDComponent.Kind())
	if !ok || !hud.Visible {
		return
	}
	s.widget.Tick(ecs.Delta(w))
}
