package system

import (
	"github.com/milk9111/stargate/ecs"
	"github.com/milk9111/stargate/ecs/component"
)

const (
	// EventPhaseChanged carries the new component.ScenePhase.
	EventPhaseChanged = "phase_changed"
	// EventCameraArrived carries the component.NodeName the camera reached.
	EventCameraArrived = "camera_arrived"
	// EventAudioFailed carries the autoplay error.
	EventAudioFailed = "audio_failed"
)

func emit(w *ecs.World, typ string, data any) {
	w.Events().Push(ecs.Event{Type: typ, Data: data})
}

func stageOf(w *ecs.World) (*component.Stage, bool) {
	return ecs.Singleton(w, component.StageComponent.Kind())
}

func rigOf(w *ecs.World) (*component.CameraRig, bool) {
	return ecs.Singleton(w, component.CameraRigComponent.Kind())
}
