package tween

import "math"

// EaseFunc maps linear progress in [0,1] to eased progress.
type EaseFunc func(t float64) float64

func Linear(t float64) float64 { return t }

func Power2In(t float64) float64 { return t * t }

func Power2Out(t float64) float64 { return 1 - (1-t)*(1-t) }

func Power2InOut(t float64) float64 {
	if t < 0.5 {
		return 2 * t * t
	}
	return 1 - math.Pow(-2*t+2, 2)/2
}

func Power3In(t float64) float64 { return t * t * t }

func Power3Out(t float64) float64 { return 1 - math.Pow(1-t, 3) }

func Power3InOut(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 3)/2
}

func SineInOut(t float64) float64 { return -(math.Cos(math.Pi*t) - 1) / 2 }

// BackOut overshoots the target by an amount controlled by s before settling.
func BackOut(s float64) EaseFunc {
	return func(t float64) float64 {
		c3 := s + 1
		u := t - 1
		return 1 + c3*u*u*u + s*u*u
	}
}

var eases = map[string]EaseFunc{
	"none":         Linear,
	"linear":       Linear,
	"power2.in":    Power2In,
	"power2.out":   Power2Out,
	"power2.inOut": Power2InOut,
	"power3.in":    Power3In,
	"power3.out":   Power3Out,
	"power3.inOut": Power3InOut,
	"sine.inOut":   SineInOut,
	"back.out":     BackOut(1.7),
}

// Ease looks up an easing curve by name, falling back to Linear for
// unknown names.
func Ease(name string) EaseFunc {
	if f, ok := eases[name]; ok {
		return f
	}
	return Linear
}

// EaseOr is Ease for a configured name, using fallback when name is empty.
func EaseOr(name string, fallback EaseFunc) EaseFunc {
	if name == "" {
		return fallback
	}
	return Ease(name)
}
