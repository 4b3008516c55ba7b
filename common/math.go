package common

// Rand is the subset of *rand.Rand the scene setup draws from.
type Rand interface {
	Float64() float64
}

func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Clamp01 clamps v into [0, 1].
func Clamp01(v float64) float64 {
	return Clamp(v, 0, 1)
}

// Roll returns r.Float64(), or 0.5 when r is nil.
func Roll(r Rand) float64 {
	if r == nil {
		return 0.5
	}
	return r.Float64()
}
