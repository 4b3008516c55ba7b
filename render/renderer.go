// Package render draws the scene held by an ecs.World onto an ebiten
// screen: backdrop, stars, rings, floor grid, nav spheres, titles and the
// boot overlay. It only reads components.
package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/stargate/ecs"
	"github.com/milk9111/stargate/ecs/component"
	"github.com/milk9111/stargate/ecs/entity"
	"github.com/milk9111/stargate/vmath"
)

// Renderer keeps the per-viewport buffers between frames.
type Renderer struct {
	// OverlayFont names the registered face for the boot overlay.
	OverlayFont string

	stars  *ebiten.Image
	pixels []byte
	width  int
	height int
}

func NewRenderer(overlayFont string) *Renderer {
	return &Renderer{OverlayFont: overlayFont}
}

// frame is what every draw pass needs for one Draw call.
type frame struct {
	screen  *ebiten.Image
	proj    vmath.Projector
	fogNear float64
	fogFar  float64
	elapsed float64
	width   float64
	height  float64
}

func (r *Renderer) Draw(screen *ebiten.Image, w *ecs.World) {
	if screen == nil || w == nil {
		return
	}
	bounds := screen.Bounds()
	f := frame{
		screen:  screen,
		width:   float64(bounds.Dx()),
		height:  float64(bounds.Dy()),
		elapsed: ecs.Elapsed(w).Seconds(),
	}

	backdrop, _ := ecs.Singleton(w, component.BackdropComponent.Kind())
	if backdrop != nil {
		screen.Fill(color.RGBA{R: clampByte(backdrop.R * 255), G: clampByte(backdrop.G * 255), B: clampByte(backdrop.B * 255), A: 0xff})
		f.fogNear, f.fogFar = backdrop.FogNear, backdrop.FogFar
	} else {
		screen.Fill(color.Black)
	}

	if rig, ok := ecs.Singleton(w, component.CameraRigComponent.Kind()); ok && backdrop != nil && backdrop.Visible {
		f.proj = entity.Projector(rig, f.width, f.height)
		r.drawGrid(f, w)
		r.drawStars(f, w)
		r.drawRings(f, w)
		r.drawNodes(f, w)
		r.drawTitles(f, w)
	}

	if overlay, ok := ecs.Singleton(w, component.OverlayComponent.Kind()); ok {
		r.drawOverlay(f, overlay)
	}
}
