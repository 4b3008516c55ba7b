package system

import (
	"errors"
	"fmt"
	"log"

	"github.com/milk9111/stargate/console"
	"github.com/milk9111/stargate/ecs"
	"github.com/milk9111/stargate/ecs/component"
	"github.com/milk9111/stargate/music"
)

const autoplayFailedLine = "Autoplay failed. Click 'Play Audio' to enable sound."

// TrackLoader opens a track by asset path. It must return a nil Track
// alongside any error.
type TrackLoader func(track string) (music.Track, error)

type MusicSystem struct {
	load    TrackLoader
	console *console.Console
}

func NewMusicSystem(load TrackLoader, con *console.Console) *MusicSystem {
	return &MusicSystem{load: load, console: con}
}

func RequestMusic(w *ecs.World, action component.MusicAction) {
	if w == nil {
		return
	}
	ent := ecs.CreateEntity(w)
	_ = ecs.Add(w, ent, component.MusicRequestComponent.Kind(), &component.MusicRequest{Action: action})
}

func (m *MusicSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	requests, requestEntities := m.consumeRequests(w)
	for _, ent := range requestEntities {
		ecs.DestroyEntity(w, ent)
	}

	player, ok := ecs.Singleton(w, component.MusicPlayerComponent.Kind())
	if !ok || player == nil {
		return
	}
	for _, req := range requests {
		m.apply(w, player, req)
	}
	player.Background.Keepalive()
}

func (m *MusicSystem) consumeRequests(w *ecs.World) ([]component.MusicRequest, []ecs.Entity) {
	var requests []component.MusicRequest
	requestEntities := make([]ecs.Entity, 0)

	ecs.ForEach(w, component.MusicRequestComponent.Kind(), func(ent ecs.Entity, req *component.MusicRequest) {
		requestEntities = append(requestEntities, ent)
		if req != nil {
			requests = append(requests, *req)
		}
	})
	return requests, requestEntities
}

func (m *MusicSystem) apply(w *ecs.World, player *component.MusicPlayer, req component.MusicRequest) {
	switch req.Action {
	case component.MusicStart:
		if player.Background != nil && player.Background.Started() {
			return
		}
		m.ensureLoaded(player)
		if err := player.Background.Start(); err != nil {
			log.Printf("music: autoplay: %v", err)
			if m.console != nil {
				m.console.Append(autoplayFailedLine, console.Info)
			}
			emit(w, EventAudioFailed, err)
		}
	case component.MusicToggle:
		m.ensureLoaded(player)
		if _, err := player.Background.Toggle(); err != nil {
			if errors.Is(err, music.ErrNoTrack) {
				log.Printf("music: toggle: no track loaded")
				return
			}
			log.Printf("music: toggle: %v", err)
		}
	}
}

func (m *MusicSystem) ensureLoaded(player *component.MusicPlayer) {
	if player.Loaded {
		return
	}
	player.Loaded = true

	var track music.Track
	if m.load != nil && player.Track != "" {
		t, err := m.load(player.Track)
		if err != nil {
			fmt.Printf("music: load %q: %v\n", player.Track, err)
		} else {
			track = t
		}
	}
	player.Background = music.NewBackground(track, player.Volume, player.Autoplay)
}
