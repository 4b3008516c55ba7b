package component

// ScenePhase is the coarse state of the experience. Phases only move
// forward; Interactive is terminal.
type ScenePhase int

const (
	PhaseBooting ScenePhase = iota
	PhaseAwaitingEntry
	PhaseWormholeTravel
	PhaseNameReveal
	PhaseInteractive
)

func (p ScenePhase) String() string {
	switch p {
	case PhaseBooting:
		return "booting"
	case PhaseAwaitingEntry:
		return "awaiting_entry"
	case PhaseWormholeTravel:
		return "wormhole_travel"
	case PhaseNameReveal:
		return "name_reveal"
	case PhaseInteractive:
		return "interactive"
	default:
		return "unknown"
	}
}

// Stage is the singleton that carries the current phase plus the one-shot
// latches the phases rely on.
type Stage struct {
	Phase ScenePhase
	// Entered is set by the first entry gesture; later gestures are ignored.
	Entered bool
	// TitleReady is set once the title font loaded and title entities exist.
	TitleReady bool
	// TitleFailed records a font failure so NameReveal skips the titles.
	TitleFailed bool
	// InteractiveReady is set once the interactive setup ran.
	InteractiveReady bool
}

// Advance moves to next if it is strictly later than the current phase.
func (s *Stage) Advance(next ScenePhase) bool {
	if s == nil || next <= s.Phase || next > PhaseInteractive {
		return false
	}
	s.Phase = next
	return true
}

var StageComponent = NewComponent[Stage]()
