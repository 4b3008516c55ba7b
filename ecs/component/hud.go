package component

// HUD carries the opacity of the interactive widgets. They fade in together
// when the scene turns interactive.
type HUD struct {
	ConsoleOpacity float64
	AudioOpacity   float64
	ClockOpacity   float64
	Visible        bool
}

var HUDComponent = NewComponent[HUD]()
