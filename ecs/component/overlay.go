package component

// Overlay is the 2D boot layer drawn on top of the scene.
type Overlay struct {
	Text string
	// Cursor shows the typing caret.
	Cursor bool
	// Opacity fades the whole layer; Backing fades only its black fill.
	Opacity       float64
	Backing       float64
	PowerOpacity  float64
	PromptOpacity float64
	PromptText    string
}

var OverlayComponent = NewComponent[Overlay]()
