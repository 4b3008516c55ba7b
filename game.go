package main

import (
	"fmt"
	"log"
	"math/rand/v2"
	"path/filepath"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/stargate/assets"
	"github.com/milk9111/stargate/clock"
	"github.com/milk9111/stargate/console"
	"github.com/milk9111/stargate/ecs"
	"github.com/milk9111/stargate/ecs/component"
	"github.com/milk9111/stargate/ecs/entity"
	"github.com/milk9111/stargate/ecs/system"
	"github.com/milk9111/stargate/music"
	"github.com/milk9111/stargate/prefabs"
	"github.com/milk9111/stargate/render"
	"github.com/milk9111/stargate/tween"
	"github.com/milk9111/stargate/ui"
	"golang.design/x/clipboard"
)

const (
	baseWidth  = 1280
	baseHeight = 720

	uiFontKey    = "ui"
	titleFontKey = "title"
)

type Options struct {
	Debug    bool
	SkipBoot bool
	Mute     bool
	Watch    bool
}

type Game struct {
	debug bool

	world     *ecs.World
	scheduler *ecs.Scheduler
	console   *console.Console
	navFloat  *system.NavFloatSystem
	renderer  *render.Renderer
	hud       *ui.HUD
	watcher   *prefabs.Watcher

	fontLoads <-chan assets.Font
	fonts     chan system.FontResult
}

func NewGame(opts Options) (*Game, error) {
	spec, err := prefabs.LoadExperienceSpec()
	if err != nil {
		return nil, err
	}
	conSpec, err := prefabs.LoadConsoleSpec()
	if err != nil {
		return nil, err
	}

	w := ecs.NewWorld()
	if _, err := entity.NewStage(w, spec); err != nil {
		return nil, err
	}
	if _, err := entity.NewCamera(w, spec.Camera); err != nil {
		return nil, err
	}
	if _, err := entity.NewMusicPlayer(w, spec.Audio, !opts.Mute); err != nil {
		return nil, err
	}

	if src, err := assets.LoadFontSource(""); err != nil {
		log.Printf("game: default font: %v", err)
	} else {
		render.RegisterFace(uiFontKey, src)
	}

	g := &Game{
		debug:     opts.Debug,
		world:     w,
		navFloat:  system.NewNavFloatSystem(),
		renderer:  render.NewRenderer(uiFontKey),
		fontLoads: assets.LoadFontAsync(titleFontKey, spec.Reveal.Font),
		fonts:     make(chan system.FontResult, 1),
	}

	tweens := tween.NewManager()
	g.console = console.New(console.Text{
		Prompt:  conSpec.Prompt,
		Welcome: conSpec.Welcome,
		Help:    conSpec.Help,
	}, console.Handlers{})
	director := system.NewCameraDirector(tweens, g.console, entity.CameraViews(spec), spec.Camera.MoveDuration.Duration(), tween.EaseOr(spec.Camera.MoveEase, tween.Power3InOut))
	interaction := system.NewInteractionSystem(director, g.console, tweens)
	g.console.SetHandlers(console.Handlers{
		Navigate: func(name component.NodeName) bool { return interaction.HandleNodeClick(w, name) },
		ExportResume: func() (string, error) {
			return assets.ExportResume(spec.Resume.File, spec.Resume.DownloadName)
		},
	})

	rng := rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0x5eed))
	clockWidget := clock.NewWidget(time.Now, clock.Kolkata(), rng)

	g.scheduler = ecs.NewScheduler(
		system.NewTweenSystem(tweens),
		system.NewSequencerSystem(system.SequencerConfig{
			Spec:     spec,
			Tweens:   tweens,
			Director: director,
			Console:  g.console,
			Fonts:    g.fonts,
			Rand:     rng,
			SkipBoot: opts.SkipBoot,
		}),
		system.NewStreamSystem(),
		g.navFloat,
		interaction,
		system.NewMusicSystem(loadTrack, g.console),
		system.NewClockSystem(clockWidget),
	)

	g.hud = ui.NewHUD(ui.HUDConfig{
		Console:     g.console,
		Clock:       clockWidget,
		Paste:       clipboardPaste(),
		ToggleAudio: func() { system.RequestMusic(w, component.MusicToggle) },
	})

	if opts.Watch {
		dir := prefabs.Dir()
		watcher, err := prefabs.NewWatcher(dir, filepath.Join(dir, "scripts"))
		if err != nil {
			log.Printf("game: watch %s: %v", dir, err)
		} else {
			g.watcher = watcher
		}
	}
	return g, nil
}

// loadTrack adapts the asset loader to music.Track, keeping a failed load a
// nil interface.
func loadTrack(path string) (music.Track, error) {
	p, err := assets.LoadAudioPlayer(path)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func clipboardPaste() func() string {
	if err := clipboard.Init(); err != nil {
		log.Printf("game: clipboard unavailable: %v", err)
		return nil
	}
	return func() string { return string(clipboard.Read(clipboard.FmtText)) }
}

func (g *Game) Update() error {
	g.pollFont()
	g.readInput()

	g.scheduler.Step(g.world, time.Second/time.Duration(ebiten.TPS()))

	for _, ev := range g.world.Events().Drain() {
		if g.debug {
			log.Printf("event: %s %v", ev.Type, ev.Data)
		}
	}
	g.reload()
	return nil
}

// pollFont registers the title face on the game goroutine once it loads
// and hands the outcome to the sequencer.
func (g *Game) pollFont() {
	if g.fontLoads == nil {
		return
	}
	select {
	case f := <-g.fontLoads:
		g.fontLoads = nil
		if f.Err == nil {
			render.RegisterFace(f.Key, f.Source)
		} else {
			log.Printf("game: title font: %v", f.Err)
		}
		g.fonts <- system.FontResult{Key: f.Key, Err: f.Err}
	default:
	}
}

func (g *Game) readInput() {
	in, ok := ecs.Singleton(g.world, component.InputComponent.Kind())
	if !ok {
		return
	}
	x, y := ebiten.CursorPosition()
	in.Width, in.Height = baseWidth, baseHeight
	in.Clicked = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	_, wy := ebiten.Wheel()
	in.Wheel = wy != 0
	in.Confirm = inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace)

	in.Touched = false
	if ids := inpututil.AppendJustPressedTouchIDs(nil); len(ids) > 0 {
		x, y = ebiten.TouchPosition(ids[0])
		in.Touched = true
		in.Clicked = true
	}
	in.PointerX, in.PointerY = float64(x), float64(y)

	in.OverUI = false
	if hud, ok := ecs.Singleton(g.world, component.HUDComponent.Kind()); ok {
		in.OverUI = g.hud.Update(*hud, g.audioLabel(), x, y)
	}
}

func (g *Game) audioLabel() string {
	player, ok := ecs.Singleton(g.world, component.MusicPlayerComponent.Kind())
	if !ok {
		return music.LabelPlay
	}
	return player.Background.Label()
}

// reload applies hot-reloaded prefab files. Scripts and console text apply
// live; experience.yaml needs a restart.
func (g *Game) reload() {
	for _, path := range g.watcher.Poll() {
		base := filepath.Base(path)
		switch {
		case prefabs.IsScriptFile(path):
			g.navFloat.Reload(base)
			log.Printf("game: reloaded script %s", base)
		case base == prefabs.ConsoleFile:
			spec, err := prefabs.LoadConsoleSpec()
			if err != nil {
				log.Printf("game: reload %s: %v", base, err)
				continue
			}
			g.console.SetText(console.Text{Prompt: spec.Prompt, Welcome: spec.Welcome, Help: spec.Help})
			log.Printf("game: reloaded %s", base)
		case base == prefabs.ExperienceFile:
			log.Printf("game: %s changed; restart to apply", base)
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.world)
	if hud, ok := ecs.Singleton(g.world, component.HUDComponent.Kind()); ok {
		g.hud.Draw(screen, *hud)
	}

	if g.debug {
		phase := "-"
		if stage, ok := ecs.Singleton(g.world, component.StageComponent.Kind()); ok {
			phase = stage.Phase.String()
		}
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.2f    phase: %s    frame: %d", ebiten.ActualFPS(), phase, ecs.Frame(g.world)))
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return baseWidth, baseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return baseWidth, baseHeight
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}
