package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/stargate/assets"
	"github.com/milk9111/stargate/prefabs"
)

func main() {
	assetsDir := flag.String("assets", "assets", "directory holding the font, audio and resume files")
	configDir := flag.String("config", "prefabs", "directory checked for experience.yaml, console.yaml and scripts/ overrides")
	debug := flag.Bool("debug", false, "enable debug mode")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	skipBoot := flag.Bool("skip-boot", false, "skip the boot typewriter")
	mute := flag.Bool("mute", false, "start with audio muted")
	watch := flag.Bool("watch", false, "hot reload scripts and console text from -config")
	flag.Parse()

	assets.SetDir(*assetsDir)
	prefabs.SetDir(*configDir)

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(baseWidth, baseHeight)
	ebiten.SetWindowTitle("stargate")

	game, err := NewGame(Options{Debug: *debug, SkipBoot: *skipBoot, Mute: *mute, Watch: *watch})
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
