package system

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/milk9111/stargate/console"
	"github.com/milk9111/stargate/ecs"
	"github.com/milk9111/stargate/ecs/component"
	"github.com/milk9111/stargate/ecs/entity"
	"github.com/milk9111/stargate/music"
	"github.com/milk9111/stargate/prefabs"
	"github.com/milk9111/stargate/tween"
)

const frame = time.Second / 60

type harness struct {
	t           *testing.T
	w           *ecs.World
	spec        *prefabs.ExperienceSpec
	tweens      *tween.Manager
	console     *console.Console
	director    *CameraDirector
	interaction *InteractionSystem
	sequencer   *SequencerSystem
	scheduler   *ecs.Scheduler
	fonts       chan FontResult
}

type harnessOptions struct {
	skipBoot bool
	loader   TrackLoader
	autoplay bool
}

func newHarness(t *testing.T, opts harnessOptions) *harness {
	t.Helper()
	spec, err := prefabs.LoadExperienceSpec()
	if err != nil {
		t.Fatalf("LoadExperienceSpec: %v", err)
	}
	spec.Stream.Count = 200

	w := ecs.NewWorld()
	if _, err := entity.NewStage(w, spec); err != nil {
		t.Fatalf("NewStage: %v", err)
	}
	if _, err := entity.NewCamera(w, spec.Camera); err != nil {
		t.Fatalf("NewCamera: %v", err)
	}
	if _, err := entity.NewMusicPlayer(w, spec.Audio, opts.autoplay); err != nil {
		t.Fatalf("NewMusicPlayer: %v", err)
	}
	in, _ := ecs.Singleton(w, component.InputComponent.Kind())
	in.Width, in.Height = 1280, 720

	h := &harness{t: t, w: w, spec: spec, tweens: tween.NewManager(), fonts: make(chan FontResult, 1)}
	h.console = console.New(console.Text{Welcome: []string{"welcome"}, Help: []string{"Available commands:"}}, console.Handlers{})
	h.director = NewCameraDirector(h.tweens, h.console, entity.CameraViews(spec), spec.Camera.MoveDuration.Duration(), tween.EaseOr(spec.Camera.MoveEase, tween.Power3InOut))
	h.interaction = NewInteractionSystem(h.director, h.console, h.tweens)
	h.console.SetHandlers(console.Handlers{
		Navigate: func(name component.NodeName) bool { return h.interaction.HandleNodeClick(h.w, name) },
	})
	h.sequencer = NewSequencerSystem(SequencerConfig{
		Spec:     spec,
		Tweens:   h.tweens,
		Director: h.director,
		Console:  h.console,
		Fonts:    h.fonts,
		Rand:     rand.New(rand.NewPCG(1, 2)),
		SkipBoot: opts.skipBoot,
	})
	h.scheduler = ecs.NewScheduler(
		NewTweenSystem(h.tweens),
		h.sequencer,
		NewStreamSystem(),
		NewNavFloatSystem(),
		h.interaction,
		NewMusicSystem(opts.loader, h.console),
	)
	return h
}

func (h *harness) stage() *component.Stage {
	s, ok := stageOf(h.w)
	if !ok {
		h.t.Fatal("no stage")
	}
	return s
}

func (h *harness) rig() *component.CameraRig {
	r, ok := rigOf(h.w)
	if !ok {
		h.t.Fatal("no camera rig")
	}
	return r
}

func (h *harness) input() *component.Input {
	in, _ := ecs.Singleton(h.w, component.InputComponent.Kind())
	return in
}

// step runs n frames. Edge-triggered input is cleared after the first.
func (h *harness) step(n int) {
	for i := 0; i < n; i++ {
		h.scheduler.Step(h.w, frame)
		in := h.input()
		in.Clicked, in.Wheel, in.Touched, in.Confirm = false, false, false, false
	}
}

// runUntil steps until the stage reaches phase or limit elapses.
func (h *harness) runUntil(phase component.ScenePhase, limit time.Duration) {
	h.t.Helper()
	for elapsed := time.Duration(0); elapsed < limit; elapsed += frame {
		if h.stage().Phase >= phase {
			return
		}
		h.step(1)
	}
	h.t.Fatalf("phase %s not reached within %v (at %s)", phase, limit, h.stage().Phase)
}

func (h *harness) enter() {
	h.runUntil(component.PhaseAwaitingEntry, 40*time.Second)
	h.input().Wheel = true
	h.step(1)
}

// interactive drives a skip-boot run to Interactive with pointer input
// enabled and the nav nodes fully grown.
func (h *harness) interactive() {
	h.t.Helper()
	h.enter()
	h.runUntil(component.PhaseInteractive, 30*time.Second)
	h.step(150)
	if !h.console.PointerEnabled() {
		h.t.Fatal("console pointer not enabled")
	}
}

func (h *harness) hasLine(text string) bool {
	for _, l := range h.console.Lines() {
		if l.Text == text {
			return true
		}
	}
	return false
}

func (h *harness) countLine(text string) int {
	n := 0
	for _, l := range h.console.Lines() {
		if l.Text == text {
			n++
		}
	}
	return n
}

type fakeTrack struct{ playing bool }

func (f *fakeTrack) Play()             { f.playing = true }
func (f *fakeTrack) Pause()            { f.playing = false }
func (f *fakeTrack) IsPlaying() bool   { return f.playing }
func (f *fakeTrack) SetVolume(float64) {}
func (f *fakeTrack) Rewind() error     { return nil }

var _ music.Track = (*fakeTrack)(nil)
