package render

import (
	"image/color"
	"sort"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/stargate/ecs"
	"github.com/milk9111/stargate/ecs/component"
)

const hoverBoost = 1.25

type nodeSprite struct {
	x, y, r float64
	depth   float64
	node    *component.NavNode
}

// drawNodes paints the nav spheres back to front.
func (r *Renderer) drawNodes(f frame, w *ecs.World) {
	var sprites []nodeSprite
	ecs.ForEach(w, component.NavNodeComponent.Kind(), func(_ ecs.Entity, n *component.NavNode) {
		sx, sy, depth, ok := f.proj.Project(n.Position())
		if !ok {
			return
		}
		sprites = append(sprites, nodeSprite{x: sx, y: sy, r: n.HitRadius() * f.proj.PixelsPerUnit(depth), depth: depth, node: n})
	})
	sort.Slice(sprites, func(i, j int) bool { return sprites[i].depth > sprites[j].depth })

	for _, s := range sprites {
		if s.r < 0.5 {
			continue
		}
		opacity := s.node.Opacity
		if s.node.Hovered {
			opacity *= hoverBoost
		}
		vector.DrawFilledCircle(f.screen, float32(s.x), float32(s.y), float32(s.r), fade(s.node.Color, opacity), true)
		if s.node.Hovered {
			vector.StrokeCircle(f.screen, float32(s.x), float32(s.y), float32(s.r+2), 2, color.White, true)
		}
	}
}

// drawTitles draws each title centred on its projected position, sized by
// its world height.
func (r *Renderer) drawTitles(f frame, w *ecs.World) {
	ecs.ForEach(w, component.TitleComponent.Kind(), func(_ ecs.Entity, t *component.Title) {
		if t.Opacity <= 0 {
			return
		}
		sx, sy, depth, ok := f.proj.Project(t.Position)
		if !ok {
			return
		}
		face := GetFace(t.FontKey, t.Size*f.proj.PixelsPerUnit(depth))
		if face == nil {
			return
		}
		op := &text.DrawOptions{}
		op.PrimaryAlign = text.AlignCenter
		op.SecondaryAlign = text.AlignCenter
		op.GeoM.Translate(sx, sy)
		op.ColorScale.ScaleWithColor(t.Color)
		op.ColorScale.ScaleAlpha(float32(t.Opacity))
		text.Draw(f.screen, t.Text, face, op)
	})
}
