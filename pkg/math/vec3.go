// Package math provides vector and matrix types for the radiosity solver.
//
// Everything is float64: the transfer coefficients are small numbers summed
// many thousands of times, and single precision visibly drifts. Conversion
// to float32 happens only at the OpenGL upload boundary.
package math

import "math"

// Vec3 is a 3D vector.
type Vec3 struct {
	X, Y, Z float64
}

// Add returns v + other.
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Sub returns v - other.
func (v Vec3) Sub(other Vec3) Vec3 {
	return Vec3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Scale returns v * s.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Neg returns -v.
func (v Vec3) Neg() Vec3 {
	return Vec3{-v.X, -v.Y, -v.Z}
}

// Dot returns the dot product.
func (v Vec3) Dot(other Vec3) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the cross product.
func (v Vec3) Cross(other Vec3) Vec3 {
	return Vec3{
		v.Y*other.Z - v.Z*other.Y,
		v.Z*other.X - v.X*other.Z,
		v.X*other.Y - v.Y*other.X,
	}
}

// Length returns the magnitude.
func (v Vec3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Normalize returns a unit vector.
func (v Vec3) Normalize() Vec3 {
	l := v.Length()
	if l == 0 {
		return Vec3{}
	}
	return Vec3{v.X / l, v.Y / l, v.Z / l}
}

// Perp returns an arbitrary vector perpendicular to v.
// The choice of axis avoids a degenerate cross product when v is
// nearly axis-aligned.
func (v Vec3) Perp() Vec3 {
	axis := Vec3{X: 1}
	if math.Abs(v.X) > math.Abs(v.Y) || math.Abs(v.X) > math.Abs(v.Z) {
		axis = Vec3{Y: 1}
		if math.Abs(v.Y) > math.Abs(v.Z) {
			axis = Vec3{Z: 1}
		}
	}
	return v.Cross(axis)
}

// Float32 returns the components as a float32 array for GL upload.
func (v Vec3) Float32() [3]float32 {
	return [3]float32{float32(v.X), float32(v.Y), float32(v.Z)}
}
