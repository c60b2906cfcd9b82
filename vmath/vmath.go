// Package vmath holds the float32 geometry used by the simulation: boxes, rays, headings.
// Vector and matrix types come from mathgl so camera matrices pass through unchanged.
package vmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Axis indices into mgl32.Vec3
const (
	AxisX = 0
	AxisY = 1
	AxisZ = 2
)

// DistanceXZ is the planar distance ignoring the vertical axis
func DistanceXZ(a, b mgl32.Vec3) float32 {
	dx := b.X() - a.X()
	dz := b.Z() - a.Z()
	return float32(math.Sqrt(float64(dx*dx + dz*dz)))
}

// Distance is the straight-line 3D distance
func Distance(a, b mgl32.Vec3) float32 {
	return b.Sub(a).Len()
}

// NormalizeXZ flattens v onto the ground plane and scales it to unit length
// Returns zero vector and false when v has no horizontal component
func NormalizeXZ(v mgl32.Vec3) (mgl32.Vec3, bool) {
	flat := mgl32.Vec3{v.X(), 0, v.Z()}
	l := flat.Len()
	if l == 0 {
		return mgl32.Vec3{}, false
	}
	return flat.Mul(1 / l), true
}
