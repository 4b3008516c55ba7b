package system

import (
	"testing"
	"time"

	"github.com/milk9111/stargate/clock"
	"github.com/milk9111/stargate/ecs"
	"github.com/milk9111/stargate/ecs/component"
)

func TestClockTicksOnlyWithHUD(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	widget := clock.NewWidget(func() time.Time { return now }, time.UTC, nil)
	sys := NewClockSystem(widget)

	w := ecs.NewWorld()
	hud := &component.HUD{}
	_ = ecs.Add(w, ecs.CreateEntity(w), component.HUDComponent.Kind(), hud)

	first := widget.Text()
	now = now.Add(time.Minute)
	w.Advance(2 * time.Second)
	sys.Update(w)
	if widget.Text() != first {
		t.Fatalf("clock refreshed while hidden: %q", widget.Text())
	}

	hud.Visible = true
	sys.Update(w)
	if want := clock.Format(now, time.UTC); widget.Text() != want {
		t.Fatalf("text = %q, want %q", widget.Text(), want)
	}
}
