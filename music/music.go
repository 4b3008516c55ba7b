// Package music controls the single looping background track and its mute
// toggle. Playback goes through the Track interface so the controller runs
// without an audio device; *audio.Player from ebiten satisfies it.
package music

import (
	"errors"
	"fmt"
)

const (
	DefaultVolume = 0.5

	LabelMute = "Mute Audio"
	LabelPlay = "Play Audio"
)

var (
	// ErrNoTrack is returned when no track could be loaded.
	ErrNoTrack = errors.New("music: no track loaded")
	// ErrAutoplayBlocked is returned by Start when autoplay is disabled.
	ErrAutoplayBlocked = errors.New("music: autoplay blocked")
)

// Track is the playback surface the controller needs.
type Track interface {
	Play()
	Pause()
	IsPlaying() bool
	SetVolume(volume float64)
	Rewind() error
}

// Background is the muted/playing state machine for one track.
type Background struct {
	track    Track
	volume   float64
	muted    bool
	started  bool
	autoplay bool
}

// NewBackground wraps track. A nil track is allowed: Start reports ErrNoTrack
// and the controller stays muted.
func NewBackground(track Track, volume float64, autoplay bool) *Background {
	if volume <= 0 || volume > 1 {
		volume = DefaultVolume
	}
	return &Background{track: track, volume: volume, muted: true, autoplay: autoplay}
}

// Start attempts autoplay. On failure the controller is muted and waits for
// an explicit Toggle.
func (b *Background) Start() error {
	if b == nil {
		return ErrNoTrack
	}
	b.started = true
	if b.track == nil {
		b.muted = true
		return ErrNoTrack
	}
	if !b.autoplay {
		b.muted = true
		return ErrAutoplayBlocked
	}
	b.play()
	return nil
}

// Toggle flips between playing and paused and returns the new muted state.
func (b *Background) Toggle() (bool, error) {
	if b == nil || b.track == nil {
		return true, ErrNoTrack
	}
	if b.muted {
		b.play()
	} else {
		b.track.Pause()
		b.muted = true
	}
	return b.muted, nil
}

// Keepalive restarts the track if it stopped while unmuted.
func (b *Background) Keepalive() {
	if b == nil || b.track == nil || b.muted || b.track.IsPlaying() {
		return
	}
	if err := b.track.Rewind(); err != nil {
		fmt.Printf("music: rewind: %v\n", err)
	}
	b.track.Play()
}

func (b *Background) play() {
	b.track.SetVolume(b.volume)
	b.track.Play()
	b.muted = false
}

func (b *Background) Muted() bool   { return b == nil || b.muted }
func (b *Background) Started() bool { return b != nil && b.started }

// Label is the text shown on the audio toggle button.
func (b *Background) Label() string {
	if b.Muted() {
		return LabelPlay
	}
	return LabelMute
}
