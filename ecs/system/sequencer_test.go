package system

import (
	"errors"
	"testing"
	"time"

	"github.com/milk9111/stargate/ecs"
	"github.com/milk9111/stargate/ecs/component"
)

func TestPhasesAreMonotonic(t *testing.T) {
	h := newHarness(t, harnessOptions{})
	h.fonts <- FontResult{Key: "title"}

	seen := []component.ScenePhase{h.stage().Phase}
	record := func() {
		if p := h.stage().Phase; p != seen[len(seen)-1] {
			if p < seen[len(seen)-1] {
				t.Fatalf("phase went backwards: %s -> %s", seen[len(seen)-1], p)
			}
			seen = append(seen, p)
		}
	}

	for elapsed := time.Duration(0); elapsed < 60*time.Second && h.stage().Phase != component.PhaseInteractive; elapsed += frame {
		if h.stage().Phase == component.PhaseAwaitingEntry {
			h.input().Wheel = true
		}
		h.step(1)
		record()
	}
	want := []component.ScenePhase{
		component.PhaseBooting,
		component.PhaseAwaitingEntry,
		component.PhaseWormholeTravel,
		component.PhaseNameReveal,
		component.PhaseInteractive,
	}
	if len(seen) != len(want) {
		t.Fatalf("phases = %v, want %v", seen, want)
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Fatalf("phases = %v, want %v", seen, want)
		}
	}

	// More entry gestures and frames never move the phase again.
	for i := 0; i < 120; i++ {
		h.input().Wheel = true
		h.input().Confirm = true
		h.step(1)
		record()
	}
	if h.stage().Phase != component.PhaseInteractive {
		t.Fatalf("phase = %s after Interactive", h.stage().Phase)
	}
	for _, p := range want[:4] {
		if h.stage().Advance(p) {
			t.Fatalf("Advance(%s) accepted from Interactive", p)
		}
	}
}

func TestBootTypesConfiguredLines(t *testing.T) {
	h := newHarness(t, harnessOptions{})
	overlay, _ := ecs.Singleton(h.w, component.OverlayComponent.Kind())
	h.step(1)
	if overlay.Text == "" || !overlay.Cursor {
		t.Fatalf("overlay = %+v, want first line typing", overlay)
	}
	h.runUntil(component.PhaseAwaitingEntry, 40*time.Second)
	if overlay.Text != h.spec.Boot.Lines[len(h.spec.Boot.Lines)-1] {
		t.Fatalf("overlay text = %q, want last boot line", overlay.Text)
	}
	h.step(120)
	if overlay.PromptOpacity != 1 || overlay.PowerOpacity != 1 {
		t.Fatalf("prompt=%v power=%v, want both faded in", overlay.PromptOpacity, overlay.PowerOpacity)
	}
}

func TestEntryLatchFiresOnce(t *testing.T) {
	tests := []struct {
		name  string
		input func(in *component.Input)
	}{
		{name: "wheel", input: func(in *component.Input) { in.Wheel = true }},
		{name: "touch", input: func(in *component.Input) { in.Touched = true }},
		{name: "confirm", input: func(in *component.Input) { in.Confirm = true }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t, harnessOptions{skipBoot: true})
			h.runUntil(component.PhaseAwaitingEntry, time.Second)
			h.step(30)
			if h.stage().Phase != component.PhaseAwaitingEntry {
				t.Fatalf("left AwaitingEntry without input: %s", h.stage().Phase)
			}
			tt.input(h.input())
			h.step(1)
			if !h.stage().Entered || h.stage().Phase != component.PhaseWormholeTravel {
				t.Fatalf("stage = %+v, want entered wormhole", h.stage())
			}
			streams := len(ecs.Query(h.w, component.ParticleStreamComponent.Kind()))
			tt.input(h.input())
			h.step(1)
			if got := len(ecs.Query(h.w, component.ParticleStreamComponent.Kind())); got != streams || got != 1 {
				t.Fatalf("particle streams = %d, want exactly 1", got)
			}
		})
	}
}

func TestWormholeSetup(t *testing.T) {
	h := newHarness(t, harnessOptions{skipBoot: true})
	h.enter()

	if got := len(ecs.Query(h.w, component.RingComponent.Kind())); got != h.spec.Rings.Count {
		t.Fatalf("rings = %d, want %d", got, h.spec.Rings.Count)
	}
	var prev float64
	ecs.ForEach(h.w, component.RingComponent.Kind(), func(_ ecs.Entity, r *component.Ring) {
		if r.Radius <= prev {
			t.Fatalf("ring %d radius %v not increasing", r.Index, r.Radius)
		}
		prev = r.Radius
	})
	if !h.rig().Animating {
		t.Fatal("intro must hold the camera lock")
	}
	if h.director.MoveTo(h.w, component.NodeContact) {
		t.Fatal("MoveTo accepted during the intro")
	}

	h.runUntil(component.PhaseNameReveal, 10*time.Second)
	home := h.director.View(component.NodeHome)
	if h.rig().Position != home.Position {
		t.Fatalf("camera = %v after intro, want %v", h.rig().Position, home.Position)
	}
}

func TestFontNeverArrivingStillReachesInteractive(t *testing.T) {
	h := newHarness(t, harnessOptions{skipBoot: true})
	h.enter()
	h.runUntil(component.PhaseInteractive, 30*time.Second)

	if !h.stage().TitleFailed || h.stage().TitleReady {
		t.Fatalf("stage = %+v, want title skipped", h.stage())
	}
	if got := len(ecs.Query(h.w, component.TitleComponent.Kind())); got != 0 {
		t.Fatalf("titles = %d, want 0", got)
	}
	h.step(90)
	if !h.console.Submit("help") {
		t.Fatal("console not accepting input")
	}
	if !h.hasLine("Available commands:") {
		t.Fatalf("help output missing: %v", h.console.Lines())
	}
	if h.rig().Animating {
		t.Fatal("camera lock not released in Interactive")
	}
}

func TestFontFailureSkipsTitles(t *testing.T) {
	h := newHarness(t, harnessOptions{skipBoot: true})
	h.fonts <- FontResult{Err: errors.New("no such file")}
	h.enter()
	h.runUntil(component.PhaseInteractive, 30*time.Second)
	if !h.stage().TitleFailed {
		t.Fatal("expected TitleFailed")
	}
}

func TestNameRevealShowsTitles(t *testing.T) {
	h := newHarness(t, harnessOptions{skipBoot: true})
	h.fonts <- FontResult{Key: "title"}
	h.enter()
	h.runUntil(component.PhaseNameReveal, 10*time.Second)
	h.step(1)

	if !h.stage().TitleReady {
		t.Fatal("expected TitleReady")
	}
	mainEnt, ok := ecs.First(h.w, component.MainTitleTagComponent.Kind())
	if !ok {
		t.Fatal("no main title")
	}
	title, _ := ecs.Get(h.w, mainEnt, component.TitleComponent.Kind())
	if title.Opacity != 0 {
		t.Fatalf("title opacity = %v before fade delay", title.Opacity)
	}

	h.runUntil(component.PhaseInteractive, 10*time.Second)
	rest := h.spec.Reveal.Main.Position
	if title.Opacity != 1 || title.Position.Y != rest.Y || title.Position.Z != rest.Z {
		t.Fatalf("title = %+v, want opaque at rest", title)
	}
	backdrop, _ := ecs.Singleton(h.w, component.BackdropComponent.Kind())
	if backdrop.B != h.spec.Reveal.Tint.Z {
		t.Fatalf("backdrop = %+v, want tinted", backdrop)
	}
	reveal := h.spec.Reveal.Camera.Position
	if p := h.rig().Position; p.X != reveal.X || p.Y != reveal.Y || p.Z != reveal.Z {
		t.Fatalf("camera = %v, want reveal position", p)
	}
}

func TestInteractiveSetup(t *testing.T) {
	h := newHarness(t, harnessOptions{skipBoot: true})
	h.interactive()

	if !h.hasLine("welcome") {
		t.Fatalf("welcome missing: %v", h.console.Lines())
	}
	nodes := 0
	ecs.ForEach(h.w, component.NavNodeComponent.Kind(), func(_ ecs.Entity, n *component.NavNode) {
		nodes++
		if n.Scale != 1 {
			t.Fatalf("node %s scale = %v, want 1", n.Name, n.Scale)
		}
	})
	if nodes != len(h.spec.Nodes.List) {
		t.Fatalf("nodes = %d, want %d", nodes, len(h.spec.Nodes.List))
	}
	hud, _ := ecs.Singleton(h.w, component.HUDComponent.Kind())
	if !hud.Visible || hud.ConsoleOpacity != 1 || hud.ClockOpacity != 1 {
		t.Fatalf("hud = %+v", hud)
	}
}
