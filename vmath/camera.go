package vmath

import "math"

// WorldUp is the up vector every camera basis is built against.
var WorldUp = Vec3{Y: 1}

// Basis is an orthonormal camera frame.
type Basis struct {
	Forward Vec3
	Right   Vec3
	Up      Vec3
}

// LookBasis builds the frame of an eye looking at target. When the view
// direction is parallel to up the previous right vector cannot be derived,
// so +X is used.
func LookBasis(eye, target, up Vec3) Basis {
	f := target.Sub(eye).Normalize()
	if f == (Vec3{}) {
		f = Vec3{Z: -1}
	}
	r := f.Cross(up).Normalize()
	if r == (Vec3{}) {
		r = Vec3{X: 1}
	}
	u := r.Cross(f)
	return Basis{Forward: f, Right: r, Up: u}
}

// Lens describes a perspective projection onto a Width x Height viewport.
type Lens struct {
	FOV    float64 // vertical, degrees
	Near   float64
	Far    float64
	Width  float64
	Height float64
}

// Projector maps world points to viewport pixels for a single frame.
type Projector struct {
	Eye   Vec3
	Basis Basis

	lens    Lens
	tanHalf float64
	aspect  float64
}

func NewProjector(eye, target Vec3, lens Lens) Projector {
	if lens.FOV <= 0 {
		lens.FOV = 75
	}
	if lens.Near <= 0 {
		lens.Near = 0.1
	}
	if lens.Far <= lens.Near {
		lens.Far = 1000
	}
	aspect := 1.0
	if lens.Width > 0 && lens.Height > 0 {
		aspect = lens.Width / lens.Height
	}
	return Projector{
		Eye:     eye,
		Basis:   LookBasis(eye, target, WorldUp),
		lens:    lens,
		tanHalf: math.Tan(lens.FOV * math.Pi / 360),
		aspect:  aspect,
	}
}

func (p Projector) Lens() Lens { return p.lens }

// ToView returns v in camera space: X right, Y up, Z distance along the
// view direction.
func (p Projector) ToView(v Vec3) Vec3 {
	d := v.Sub(p.Eye)
	return Vec3{X: d.Dot(p.Basis.Right), Y: d.Dot(p.Basis.Up), Z: d.Dot(p.Basis.Forward)}
}

// ViewToScreen projects a camera-space point. ok is false outside the
// near/far range.
func (p Projector) ViewToScreen(c Vec3) (sx, sy float64, ok bool) {
	if c.Z < p.lens.Near || c.Z > p.lens.Far {
		return 0, 0, false
	}
	nx := c.X / (c.Z * p.tanHalf * p.aspect)
	ny := c.Y / (c.Z * p.tanHalf)
	sx = (nx + 1) * p.lens.Width / 2
	sy = (1 - ny) * p.lens.Height / 2
	return sx, sy, true
}

// Project maps a world point to viewport pixels and reports its depth.
func (p Projector) Project(v Vec3) (sx, sy, depth float64, ok bool) {
	c := p.ToView(v)
	sx, sy, ok = p.ViewToScreen(c)
	return sx, sy, c.Z, ok
}

// PixelsPerUnit is the on-screen size of one world unit at depth.
func (p Projector) PixelsPerUnit(depth float64) float64 {
	if depth <= 0 {
		return 0
	}
	return p.lens.Height / 2 / (p.tanHalf * depth)
}

// Ray returns the ray from the eye through normalized device coordinates.
func (p Projector) Ray(ndcX, ndcY float64) Ray {
	dir := p.Basis.Forward.
		Add(p.Basis.Right.Scale(ndcX * p.tanHalf * p.aspect)).
		Add(p.Basis.Up.Scale(ndcY * p.tanHalf))
	return Ray{Origin: p.Eye, Dir: dir.Normalize()}
}

// NDC converts a pixel position inside a width x height viewport to
// normalized device coordinates in [-1, 1], +Y up.
func NDC(x, y, width, height float64) (float64, float64) {
	if width <= 0 || height <= 0 {
		return 0, 0
	}
	return 2*x/width - 1, -(2 * y / height) + 1
}
