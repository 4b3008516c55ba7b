// Package vmath holds the small amount of 3D math the scene needs: vectors,
// a look-at camera basis, perspective projection and ray tests.
package vmath

import "math"

// Vec3 is a point or direction in world space. +Y is up and the camera looks
// down -Z by default.
type Vec3 struct {
	X, Y, Z float64
}

func V(x, y, z float64) Vec3 { return Vec3{X: x, Y: y, Z: z} }

func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

func (v Vec3) Scale(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }

func (v Vec3) Dot(o Vec3) float64 { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

func (v Vec3) Len() float64 { return math.Sqrt(v.Dot(v)) }

// Normalize returns v scaled to unit length, or the zero vector if v is zero.
func (v Vec3) Normalize() Vec3 {
	l := v.Len()
	if l == 0 {
		return Vec3{}
	}
	return v.Scale(1 / l)
}

func (v Vec3) Lerp(o Vec3, t float64) Vec3 {
	return Vec3{
		X: v.X + (o.X-v.X)*t,
		Y: v.Y + (o.Y-v.Y)*t,
		Z: v.Z + (o.Z-v.Z)*t,
	}
}

func (v Vec3) RotateX(r float64) Vec3 {
	s, c := math.Sincos(r)
	return Vec3{X: v.X, Y: v.Y*c - v.Z*s, Z: v.Y*s + v.Z*c}
}

func (v Vec3) RotateY(r float64) Vec3 {
	s, c := math.Sincos(r)
	return Vec3{X: v.X*c + v.Z*s, Y: v.Y, Z: -v.X*s + v.Z*c}
}

func (v Vec3) RotateZ(r float64) Vec3 {
	s, c := math.Sincos(r)
	return Vec3{X: v.X*c - v.Y*s, Y: v.X*s + v.Y*c, Z: v.Z}
}

// RotateEuler applies X, then Y, then Z rotations, matching an XYZ Euler
// order.
func (v Vec3) RotateEuler(e Vec3) Vec3 {
	return v.RotateX(e.X).RotateY(e.Y).RotateZ(e.Z)
}

// Components exposes v as a slice for tweening.
func (v Vec3) Components() []float64 { return []float64{v.X, v.Y, v.Z} }

// FromComponents is the inverse of Components.
func FromComponents(c []float64) Vec3 {
	if len(c) < 3 {
		return Vec3{}
	}
	return Vec3{X: c[0], Y: c[1], Z: c[2]}
}
