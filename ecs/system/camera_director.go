package system

import (
	"log"
	"time"

	"github.com/milk9111/stargate/console"
	"github.com/milk9111/stargate/ecs"
	"github.com/milk9111/stargate/ecs/component"
	"github.com/milk9111/stargate/tween"
)

const (
	defaultMoveDuration = 1500 * time.Millisecond
	fallbackView        = "home"
)

// CameraDirector moves the camera between named views. CameraRig.Animating
// is the lock: a move requested while it is set is dropped, never queued.
type CameraDirector struct {
	tweens   *tween.Manager
	console  *console.Console
	views    map[string]component.CameraView
	duration time.Duration
	ease     tween.EaseFunc

	active *tween.Tween
}

func NewCameraDirector(tweens *tween.Manager, con *console.Console, views map[string]component.CameraView, duration time.Duration, ease tween.EaseFunc) *CameraDirector {
	if duration <= 0 {
		duration = defaultMoveDuration
	}
	if ease == nil {
		ease = tween.Power3InOut
	}
	return &CameraDirector{tweens: tweens, console: con, views: views, duration: duration, ease: ease}
}

// View returns the named view; unknown names resolve to home.
func (d *CameraDirector) View(name component.NodeName) component.CameraView {
	if v, ok := d.views[name.ViewKey()]; ok {
		return v
	}
	return d.views[fallbackView]
}

// Locked reports whether a camera animation is in flight.
func (d *CameraDirector) Locked(w *ecs.World) bool {
	rig, ok := rigOf(w)
	return ok && rig.Animating
}

// MoveTo starts a move to name's view and reports whether it did.
func (d *CameraDirector) MoveTo(w *ecs.World, name component.NodeName) bool {
	if d == nil {
		return false
	}
	rig, ok := rigOf(w)
	if !ok || rig.Animating {
		return false
	}
	rig.Animating = true
	rig.Destination = string(name)
	d.active = d.Fly(rig, d.View(name), d.duration, d.ease, func() {
		rig.Animating = false
		rig.Destination = ""
		d.active = nil
		log.Printf("camera: now viewing %s", name)
		if d.console != nil {
			d.console.Append("Now viewing: "+string(name), console.Info)
		}
		emit(w, EventCameraArrived, name)
	})
	return true
}

// Fly tweens the rig to view and re-aims it at view.LookAt on every frame.
// It ignores the lock; the sequencer uses it while it holds the lock itself.
func (d *CameraDirector) Fly(rig *component.CameraRig, view component.CameraView, duration time.Duration, ease tween.EaseFunc, done func()) *tween.Tween {
	target := view.LookAt
	return d.tweens.Add(tween.Vec(&rig.Position, view.Position, tween.Options{
		Duration:   duration,
		Ease:       ease,
		OnUpdate:   func() { rig.LookAt = target },
		OnComplete: done,
	}))
}
