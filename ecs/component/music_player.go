package component

import "github.com/milk9111/stargate/music"

// MusicPlayer stores the background track state on a dedicated ECS entity.
// The music system mutates this component; no playback state is kept on the system.
type MusicPlayer struct {
	Track    string
	Volume   float64
	Autoplay bool

	Background *music.Background
	// Loaded is set after the first load attempt, successful or not.
	Loaded bool
}

var MusicPlayerComponent = NewComponent[MusicPlayer]()
