package system

import (
	"github.com/milk9111/stargate/ecs"
	"github.com/milk9111/stargate/tween"
)

// TweenSystem steps the shared tween manager with the world frame delta.
// It runs first so every other system sees this frame's animated values.
type TweenSystem struct {
	tweens *tween.Manager
}

func NewTweenSystem(tweens *tween.Manager) *TweenSystem {
	return &TweenSystem{tweens: tweens}
}

func (s *TweenSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	s.tweens.Update(ecs.Delta(w))
}
