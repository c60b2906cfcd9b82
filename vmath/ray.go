package vmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Clip-space depths used to build a cursor ray
// Far stays short of 1 so the inverse transform never lands on the degenerate far plane
const (
	RayNearDepth float32 = 0
	RayFarDepth  float32 = 0.999
)

// Ray is a half-line starting at Origin; Dir is unit length
type Ray struct {
	Origin mgl32.Vec3
	Dir    mgl32.Vec3
}

// Unproject maps a clip-space point back to world space through the inverse view-projection
func Unproject(invViewProj mgl32.Mat4, ndc mgl32.Vec2, depth float32) mgl32.Vec3 {
	p := invViewProj.Mul4x1(mgl32.Vec4{ndc.X(), ndc.Y(), depth, 1})
	if p.W() == 0 {
		return p.Vec3()
	}
	return p.Vec3().Mul(1 / p.W())
}

// CursorRay builds the pick ray for a cursor position
// Orthographic rays are parallel, so the origin is the near-plane point, not the camera eye
// Returns false when both depths unproject to the same point
func CursorRay(invViewProj mgl32.Mat4, ndc mgl32.Vec2) (Ray, bool) {
	near := Unproject(invViewProj, ndc, RayNearDepth)
	far := Unproject(invViewProj, ndc, RayFarDepth)

	dir := far.Sub(near)
	l := dir.Len()
	if l == 0 || math.IsNaN(float64(l)) || math.IsInf(float64(l), 0) {
		return Ray{}, false
	}
	return Ray{Origin: near, Dir: dir.Mul(1 / l)}, true
}

// IntersectAABB runs the slab test against box
// Per axis entry/exit distances use the reciprocal direction; zero components become ±Inf.
// Comparisons are written so NaN (origin exactly on a slab with zero direction) never tightens the interval.
func (r Ray) IntersectAABB(box AABB) bool {
	tMin := float32(0)
	tMax := float32(math.Inf(1))

	for axis := AxisX; axis <= AxisZ; axis++ {
		inv := 1 / r.Dir[axis]
		t1 := (box.Min[axis] - r.Origin[axis]) * inv
		t2 := (box.Max[axis] - r.Origin[axis]) * inv
		if t1 > t2 {
			t1, t2 = t2, t1
		}

		if t1 > tMin {
			tMin = t1
		}
		if t2 < tMax {
			tMax = t2
		}
		if !(tMin < tMax) {
			return false
		}
	}
	return true
}

// depthZeroToOne remaps GL clip depth [-1, 1] to [0, 1] (column-major)
var depthZeroToOne = mgl32.Mat4{
	1, 0, 0, 0,
	0, 1, 0, 0,
	0, 0, 0.5, 0,
	0, 0, 0.5, 1,
}

// OrthoZO is mgl32.Ortho with clip depth in [0, 1], so depth 0 lies on the near plane
func OrthoZO(left, right, bottom, top, near, far float32) mgl32.Mat4 {
	return depthZeroToOne.Mul4(mgl32.Ortho(left, right, bottom, top, near, far))
}
