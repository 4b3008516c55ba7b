package system

import (
	"log"
	"math"
	"time"

	"github.com/milk9111/stargate/boot"
	"github.com/milk9111/stargate/common"
	"github.com/milk9111/stargate/console"
	"github.com/milk9111/stargate/ecs"
	"github.com/milk9111/stargate/ecs/component"
	"github.com/milk9111/stargate/ecs/entity"
	"github.com/milk9111/stargate/prefabs"
	"github.com/milk9111/stargate/tween"
	"github.com/milk9111/stargate/vmath"
)

const (
	fadeDuration       = time.Second
	powerFadeDelay     = 500 * time.Millisecond
	promptFadeDelay    = 500 * time.Millisecond
	promptFadeOut      = 500 * time.Millisecond
	revealCameraTime   = 2 * time.Second
	titleFadeTime      = 1500 * time.Millisecond
	titleMoveTime      = 2 * time.Second
	titleRetreat       = 10.0
	tintDuration       = 2 * time.Second
	nodeGrowTime       = time.Second
	nodeGrowDelayMin   = 0.5
	nodeGrowDelaySpan  = 0.5
	defaultIntroLength = 8 * time.Second
)

// FontResult is delivered once by the async font loader. Key names the
// loaded face in the render registry; Err is set when loading failed.
type FontResult struct {
	Key string
	Err error
}

type SequencerConfig struct {
	Spec     *prefabs.ExperienceSpec
	Tweens   *tween.Manager
	Director *CameraDirector
	Console  *console.Console
	// Fonts is drained without blocking; it may never deliver.
	Fonts    <-chan FontResult
	Rand     common.Rand
	SkipBoot bool
}

// SequencerSystem owns the scene phase. Each phase has one enter function,
// run once when the phase becomes current, and one update function run
// every frame while it stays current.
type SequencerSystem struct {
	cfg SequencerConfig

	entered    bool
	current    component.ScenePhase
	typewriter *boot.Typewriter

	font     FontResult
	fontDone bool

	introDone bool
	veilDone  bool
}

func NewSequencerSystem(cfg SequencerConfig) *SequencerSystem {
	if cfg.Tweens == nil {
		cfg.Tweens = tween.NewManager()
	}
	return &SequencerSystem{cfg: cfg}
}

// Phase reports the phase the sequencer last entered.
func (s *SequencerSystem) Phase() component.ScenePhase { return s.current }

func (s *SequencerSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	s.pollFont()

	stage, ok := stageOf(w)
	if !ok {
		return
	}
	if !s.entered {
		s.entered = true
		s.current = stage.Phase
		s.enter(w, stage.Phase)
	}

	switch stage.Phase {
	case component.PhaseBooting:
		s.updateBooting(w, stage)
	case component.PhaseAwaitingEntry:
		s.updateAwaitingEntry(w, stage)
	case component.PhaseWormholeTravel:
		s.updateWormholeTravel(w, stage)
	case component.PhaseNameReveal:
		s.updateNameReveal(w, stage)
	}
}

func (s *SequencerSystem) pollFont() {
	if s.fontDone || s.cfg.Fonts == nil {
		return
	}
	select {
	case res, ok := <-s.cfg.Fonts:
		if !ok {
			return
		}
		s.font = res
		s.fontDone = true
		if res.Err != nil {
			log.Printf("sequencer: title font failed: %v", res.Err)
		}
	default:
	}
}

func (s *SequencerSystem) advance(w *ecs.World, stage *component.Stage, next component.ScenePhase) {
	if !stage.Advance(next) {
		return
	}
	log.Printf("sequencer: phase -> %s", next)
	s.current = next
	emit(w, EventPhaseChanged, next)
	s.enter(w, next)
}

func (s *SequencerSystem) enter(w *ecs.World, phase component.ScenePhase) {
	switch phase {
	case component.PhaseBooting:
		s.enterBooting(w)
	case component.PhaseAwaitingEntry:
		s.enterAwaitingEntry(w)
	case component.PhaseWormholeTravel:
		s.enterWormholeTravel(w)
	case component.PhaseNameReveal:
		s.enterNameReveal(w)
	case component.PhaseInteractive:
		s.enterInteractive(w)
	}
}

func (s *SequencerSystem) enterBooting(w *ecs.World) {
	lines := s.cfg.Spec.Boot.Lines
	if s.cfg.SkipBoot {
		lines = nil
	}
	s.typewriter = boot.NewTypewriter(lines, s.cfg.Spec.Boot.CharDelay.Duration(), s.cfg.Spec.Boot.LinePause.Duration())
	if overlay, ok := ecs.Singleton(w, component.OverlayComponent.Kind()); ok {
		overlay.Text = s.typewriter.Text()
		overlay.Cursor = s.typewriter.Typing()
		s.cfg.Tweens.Add(tween.Float(&overlay.PowerOpacity, 1, tween.Options{Duration: fadeDuration, Delay: powerFadeDelay}))
	}
}

func (s *SequencerSystem) updateBooting(w *ecs.World, stage *component.Stage) {
	s.typewriter.Advance(ecs.Delta(w))
	if overlay, ok := ecs.Singleton(w, component.OverlayComponent.Kind()); ok {
		overlay.Text = s.typewriter.Text()
		overlay.Cursor = s.typewriter.Typing()
	}
	if s.typewriter.Done() {
		s.advance(w, stage, component.PhaseAwaitingEntry)
	}
}

func (s *SequencerSystem) enterAwaitingEntry(w *ecs.World) {
	if overlay, ok := ecs.Singleton(w, component.OverlayComponent.Kind()); ok {
		overlay.Cursor = false
		s.cfg.Tweens.Add(tween.Float(&overlay.PromptOpacity, 1, tween.Options{Duration: fadeDuration, Delay: promptFadeDelay}))
	}
}

func (s *SequencerSystem) updateAwaitingEntry(w *ecs.World, stage *component.Stage) {
	in, ok := ecs.Singleton(w, component.InputComponent.Kind())
	if !ok || stage.Entered {
		return
	}
	if !in.Wheel && !in.Touched && !in.Confirm {
		return
	}
	stage.Entered = true
	if overlay, ok := ecs.Singleton(w, component.OverlayComponent.Kind()); ok {
		s.cfg.Tweens.Add(tween.Float(&overlay.PromptOpacity, 0, tween.Options{Duration: promptFadeOut}))
	}
	s.advance(w, stage, component.PhaseWormholeTravel)
}

func (s *SequencerSystem) enterWormholeTravel(w *ecs.World) {
	spec := s.cfg.Spec
	rig, ok := rigOf(w)
	if !ok {
		log.Printf("sequencer: no camera rig, skipping wormhole")
		s.introDone = true
		return
	}
	rig.Position = entity.Vec(spec.Camera.Start)
	rig.LookAt = vmath.Vec3{}
	rig.Animating = true

	if backdrop, ok := ecs.Singleton(w, component.BackdropComponent.Kind()); ok {
		backdrop.Visible = true
		backdrop.R, backdrop.G, backdrop.B = 0, 0, 0
	}
	if overlay, ok := ecs.Singleton(w, component.OverlayComponent.Kind()); ok {
		overlay.Text = ""
		s.cfg.Tweens.Add(tween.Float(&overlay.Backing, 0, tween.Options{Duration: fadeDuration}))
		s.cfg.Tweens.Add(tween.Float(&overlay.PowerOpacity, 0, tween.Options{Duration: fadeDuration}))
	}

	if _, _, err := entity.NewParticleStream(w, spec.Stream, rig.Position.Z, s.cfg.Rand); err != nil {
		log.Printf("sequencer: %v", err)
	}
	rings, err := entity.NewRings(w, spec.Rings, spec.Stream, rig.Position.Z, s.cfg.Rand)
	if err != nil {
		log.Printf("sequencer: %v", err)
	}
	for _, ent := range rings {
		ring, ok := ecs.Get(w, ent, component.RingComponent.Kind())
		if !ok {
			continue
		}
		spin := spec.Rings.SpinMin.Duration() + time.Duration(common.Roll(s.cfg.Rand)*float64(spec.Rings.SpinSpan.Duration()))
		full := 2 * math.Pi
		s.cfg.Tweens.Add(tween.VecBy(&ring.Rotation, vmath.Vec3{X: full, Y: full, Z: full}, tween.Options{
			Duration: spin,
			Repeat:   tween.Forever,
		}))
	}
	if _, grid, err := entity.NewGrid(w, spec.Grid); err != nil {
		log.Printf("sequencer: %v", err)
	} else {
		s.cfg.Tweens.Add(tween.Float(&grid.Opacity, spec.Grid.OpacityTo, tween.Options{
			Duration: spec.Grid.Period.Duration(),
			Ease:     tween.SineInOut,
			Repeat:   tween.Forever,
			Yoyo:     true,
		}))
	}

	home := s.cfg.Director.View(component.NodeHome)
	intro := spec.Camera.IntroDuration.Duration()
	if intro <= 0 {
		intro = defaultIntroLength
	}
	s.cfg.Director.Fly(rig, component.CameraView{Position: home.Position}, intro, tween.EaseOr(spec.Camera.IntroEase, tween.Power3InOut), func() {
		log.Printf("sequencer: wormhole entry complete")
		s.introDone = true
	})
}

func (s *SequencerSystem) updateWormholeTravel(w *ecs.World, stage *component.Stage) {
	if s.introDone {
		s.advance(w, stage, component.PhaseNameReveal)
	}
}

func (s *SequencerSystem) enterNameReveal(w *ecs.World) {
	stage, _ := stageOf(w)
	if !s.fontDone || s.font.Err != nil || s.font.Key == "" {
		if !s.fontDone {
			log.Printf("sequencer: title font not ready, skipping reveal")
		}
		if stage != nil {
			stage.TitleFailed = true
		}
		s.veil(w, 0)
		return
	}

	spec := s.cfg.Spec.Reveal
	mainTitle, subTitle, err := entity.NewTitles(w, spec, s.font.Key)
	if err != nil {
		log.Printf("sequencer: %v", err)
		if stage != nil {
			stage.TitleFailed = true
		}
		s.veil(w, 0)
		return
	}
	if stage != nil {
		stage.TitleReady = true
	}

	if rig, ok := rigOf(w); ok {
		s.cfg.Director.Fly(rig, entity.View(spec.Camera), revealCameraTime, tween.Power2InOut, nil)
	}
	s.revealTitle(w, mainTitle, spec.Main)
	s.revealTitle(w, subTitle, spec.Sub)

	backdrop, ok := ecs.Singleton(w, component.BackdropComponent.Kind())
	if !ok {
		s.veil(w, spec.TintDelay.Duration()+tintDuration)
		return
	}
	s.cfg.Tweens.Add(tween.New(
		func() []float64 { return []float64{backdrop.R, backdrop.G, backdrop.B} },
		func(v []float64) { backdrop.R, backdrop.G, backdrop.B = v[0], v[1], v[2] },
		[]float64{spec.Tint.X, spec.Tint.Y, spec.Tint.Z},
		tween.Options{
			Duration:   tintDuration,
			Delay:      spec.TintDelay.Duration(),
			OnComplete: func() { s.veil(w, 0) },
		},
	))
}

func (s *SequencerSystem) revealTitle(w *ecs.World, ent ecs.Entity, spec prefabs.TitleSpec) {
	title, ok := ecs.Get(w, ent, component.TitleComponent.Kind())
	if !ok {
		return
	}
	s.cfg.Tweens.Add(tween.Float(&title.Opacity, 1, tween.Options{
		Duration: titleFadeTime,
		Delay:    spec.FadeDelay.Duration(),
		Ease:     tween.Power2Out,
	}))
	rest := title.Position
	from := rest.Add(vmath.Vec3{Y: spec.Rise, Z: -titleRetreat})
	s.cfg.Tweens.Add(tween.FromTo(
		func(v []float64) { title.Position = vmath.FromComponents(v) },
		from.Components(),
		rest.Components(),
		tween.Options{Duration: titleMoveTime, Delay: spec.MoveDelay.Duration(), Ease: tween.Power3Out},
	))
}

// veil fades the boot overlay out after delay and then lets NameReveal
// hand over to Interactive.
func (s *SequencerSystem) veil(w *ecs.World, delay time.Duration) {
	length := s.cfg.Spec.Reveal.Veil.Duration()
	if length <= 0 {
		length = fadeDuration
	}
	overlay, ok := ecs.Singleton(w, component.OverlayComponent.Kind())
	if !ok {
		s.cfg.Tweens.Add(tween.Call(delay+length, func() { s.veilDone = true }))
		return
	}
	s.cfg.Tweens.Add(tween.Float(&overlay.Opacity, 0, tween.Options{
		Duration:   length,
		Delay:      delay,
		OnComplete: func() { s.veilDone = true },
	}))
}

func (s *SequencerSystem) updateNameReveal(w *ecs.World, stage *component.Stage) {
	if s.veilDone {
		s.advance(w, stage, component.PhaseInteractive)
	}
}

func (s *SequencerSystem) enterInteractive(w *ecs.World) {
	stage, ok := stageOf(w)
	if ok {
		if stage.InteractiveReady {
			return
		}
		stage.InteractiveReady = true
	}

	if s.cfg.Console != nil {
		s.cfg.Console.Open()
	}
	if hud, ok := ecs.Singleton(w, component.HUDComponent.Kind()); ok {
		hud.Visible = true
		s.cfg.Tweens.Add(tween.Float(&hud.AudioOpacity, 1, tween.Options{Duration: fadeDuration}))
		s.cfg.Tweens.Add(tween.Float(&hud.ClockOpacity, 1, tween.Options{Duration: fadeDuration}))
		s.cfg.Tweens.Add(tween.Float(&hud.ConsoleOpacity, 1, tween.Options{
			Duration:   fadeDuration,
			OnComplete: s.enablePointer,
		}))
	} else {
		s.cfg.Tweens.Add(tween.Call(fadeDuration, s.enablePointer))
	}

	nodes, err := entity.NewNavNodes(w, s.cfg.Spec.Nodes, s.cfg.Rand)
	if err != nil {
		log.Printf("sequencer: %v", err)
	}
	for _, ent := range nodes {
		node, ok := ecs.Get(w, ent, component.NavNodeComponent.Kind())
		if !ok {
			continue
		}
		delay := nodeGrowDelayMin + common.Roll(s.cfg.Rand)*nodeGrowDelaySpan
		s.cfg.Tweens.Add(tween.Float(&node.Scale, 1, tween.Options{
			Duration: nodeGrowTime,
			Delay:    time.Duration(delay * float64(time.Second)),
			Ease:     tween.BackOut(1.7),
		}))
	}

	RequestMusic(w, component.MusicStart)

	if rig, ok := rigOf(w); ok {
		rig.Animating = false
	}
}

func (s *SequencerSystem) enablePointer() {
	if s.cfg.Console != nil {
		s.cfg.Console.EnablePointer()
	}
}
