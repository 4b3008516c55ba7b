package render

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/stargate/ecs"
	"github.com/milk9111/stargate/ecs/component"
)

// drawStars plots every point into a pixel buffer and composites it with
// additive blending.
func (r *Renderer) drawStars(f frame, w *ecs.World) {
	r.ensureStarBuffer(int(f.width), int(f.height))
	clear(r.pixels)

	plotted := false
	ecs.ForEach(w, component.ParticleStreamComponent.Kind(), func(_ ecs.Entity, s *component.ParticleStream) {
		col := s.Color
		for _, p := range s.Points {
			sx, sy, depth, ok := f.proj.Project(p)
			if !ok {
				continue
			}
			fog := fogFactor(depth, f.fogNear, f.fogFar)
			if fog <= 0 {
				continue
			}
			size := 1
			if s.Size*f.proj.PixelsPerUnit(depth) >= 2 {
				size = 2
			}
			r.plot(sx, sy, size, float64(col.R)*fog, float64(col.G)*fog, float64(col.B)*fog)
			plotted = true
		}
	})
	if !plotted {
		return
	}

	r.stars.WritePixels(r.pixels)
	op := &ebiten.DrawImageOptions{Blend: ebiten.BlendLighter}
	f.screen.DrawImage(r.stars, op)
}

func (r *Renderer) ensureStarBuffer(width, height int) {
	if width <= 0 || height <= 0 {
		width, height = 1, 1
	}
	if r.stars != nil && r.width == width && r.height == height {
		return
	}
	if r.stars != nil {
		r.stars.Deallocate()
	}
	r.stars = ebiten.NewImage(width, height)
	r.pixels = make([]byte, width*height*4)
	r.width, r.height = width, height
}

// plot adds colour to the size x size block whose top-left pixel contains
// (sx, sy). Pixels outside the buffer are dropped.
func (r *Renderer) plot(sx, sy float64, size int, red, green, blue float64) {
	x, y := int(math.Floor(sx)), int(math.Floor(sy))
	for dy := 0; dy < size; dy++ {
		for dx := 0; dx < size; dx++ {
			px, py := x+dx, y+dy
			if px < 0 || py < 0 || px >= r.width || py >= r.height {
				continue
			}
			i := (py*r.width + px) * 4
			r.pixels[i] = clampByte(float64(r.pixels[i]) + red)
			r.pixels[i+1] = clampByte(float64(r.pixels[i+1]) + green)
			r.pixels[i+2] = clampByte(float64(r.pixels[i+2]) + blue)
			r.pixels[i+3] = 0xff
		}
	}
}
