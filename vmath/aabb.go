package vmath

import (
	"github.com/go-gl/mathgl/mgl32"
)

// AABB is an axis-aligned bounding box; Min <= Max on every axis
type AABB struct {
	Min, Max mgl32.Vec3
}

// BoxAround builds a box resting on base: centered on X/Z, extending 2*half.Y upward
func BoxAround(base, half mgl32.Vec3) AABB {
	return AABB{
		Min: mgl32.Vec3{base.X() - half.X(), base.Y(), base.Z() - half.Z()},
		Max: mgl32.Vec3{base.X() + half.X(), base.Y() + 2*half.Y(), base.Z() + half.Z()},
	}
}

// Translate returns the box moved by delta
func (b AABB) Translate(delta mgl32.Vec3) AABB {
	return AABB{Min: b.Min.Add(delta), Max: b.Max.Add(delta)}
}

// Valid reports whether Min <= Max holds per axis
func (b AABB) Valid() bool {
	for axis := AxisX; axis <= AxisZ; axis++ {
		if b.Min[axis] > b.Max[axis] {
			return false
		}
	}
	return true
}
