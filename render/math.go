package render

import (
	"image/color"

	"github.com/milk9111/stargate/common"
	"github.com/milk9111/stargate/vmath"
)

// fogFactor is 1 up to near and fades linearly to 0 at far.
func fogFactor(depth, near, far float64) float64 {
	if far <= near {
		return 1
	}
	return common.Clamp01((far - depth) / (far - near))
}

// clipNear trims the camera-space segment a-b to the part in front of near.
func clipNear(a, b vmath.Vec3, near float64) (vmath.Vec3, vmath.Vec3, bool) {
	if a.Z < near && b.Z < near {
		return a, b, false
	}
	if a.Z < near {
		a = a.Lerp(b, (near-a.Z)/(b.Z-a.Z))
	}
	if b.Z < near {
		b = b.Lerp(a, (near-b.Z)/(a.Z-b.Z))
	}
	return a, b, true
}

// fade scales c's alpha by f, premultiplied.
func fade(c color.RGBA, f float64) color.RGBA {
	f = common.Clamp01(f)
	return color.RGBA{
		R: uint8(float64(c.R) * f),
		G: uint8(float64(c.G) * f),
		B: uint8(float64(c.B) * f),
		A: uint8(float64(c.A) * f),
	}
}

func clampByte(v float64) uint8 {
	return uint8(common.Clamp(v, 0, 255))
}
