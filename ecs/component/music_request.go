package component

// MusicAction is what a MusicRequest asks the music system to do.
type MusicAction int

const (
	MusicStart MusicAction = iota
	MusicToggle
)

// MusicRequest is a one-shot request for background playback. Requests live
// on their own entities and are destroyed once consumed.
type MusicRequest struct {
	Action MusicAction
}

var MusicRequestComponent = NewComponent[MusicRequest]()
