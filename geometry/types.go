// Package geometry defines the vector type and sentinel errors shared by
// the scene-geometry derivations.
package geometry

import (
	"errors"
	"math"
)

// Sentinel errors for geometry operations.
var (
	// ErrDegenerateGeometry indicates coincident gun/microphone positions
	// or a zero-magnitude barrel direction; the derived angle would be
	// undefined.
	ErrDegenerateGeometry = errors.New("geometry: degenerate scene geometry")
)

// ReferenceAxis is the fixed world axis the microphone angle is measured
// against. It is deliberately NOT the barrel direction; see doc.go.
var ReferenceAxis = Vec3{X: 0, Y: 1, Z: 0}

// Vec3 is a 3D vector in meters (positions) or unitless (directions).
// It is a plain value; all methods return new values.
type Vec3 struct {
	X, Y, Z float64
}

// Add returns v + w.
func (v Vec3) Add(w Vec3) Vec3 {
	return Vec3{X: v.X + w.X, Y: v.Y + w.Y, Z: v.Z + w.Z}
}

// Sub returns v − w.
func (v Vec3) Sub(w Vec3) Vec3 {
	return Vec3{X: v.X - w.X, Y: v.Y - w.Y, Z: v.Z - w.Z}
}

// Scale returns v scaled by s.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Dot returns the dot product v·w.
func (v Vec3) Dot(w Vec3) float64 {
	return v.X*w.X + v.Y*w.Y + v.Z*w.Z
}

// NormSq returns the squared Euclidean norm ‖v‖².
func (v Vec3) NormSq() float64 {
	return v.Dot(v)
}

// Norm returns the Euclidean norm ‖v‖.
func (v Vec3) Norm() float64 {
	return math.Sqrt(v.NormSq())
}

// Normalize returns v/‖v‖, or ErrDegenerateGeometry when ‖v‖ == 0.
func (v Vec3) Normalize() (Vec3, error) {
	n := v.Norm()
	if n == 0 {
		return Vec3{}, ErrDegenerateGeometry
	}

	return v.Scale(1 / n), nil
}

// Result carries the scalar scene quantities consumed by the acoustic
// models: the gun-to-microphone distance and the angle of the gun→mic
// vector against ReferenceAxis.
type Result struct {
	// Distance is ‖mic − gun‖ in meters; always > 0 for a valid Result.
	Distance float64
	// Angle is in radians, in [0, π] by construction of arccos.
	Angle float64
}
