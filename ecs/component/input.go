package component

// Input is the per-frame snapshot of pointer and entry gestures. The game
// loop fills it before systems run so systems never read devices directly.
type Input struct {
	PointerX float64
	PointerY float64
	Width    float64
	Height   float64

	Clicked bool
	// Wheel and Touched are the entry gestures; Confirm covers Enter/Space.
	Wheel   bool
	Touched bool
	Confirm bool
	// OverUI is set when the pointer is over a UI widget.
	OverUI bool
}

var InputComponent = NewComponent[Input]()
