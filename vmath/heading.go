package vmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// NormalizeDegrees folds an angle into (-180, 180]
func NormalizeDegrees(deg float32) float32 {
	d := float32(math.Mod(float64(deg), 360))
	if d > 180 {
		d -= 360
	} else if d <= -180 {
		d += 360
	}
	return d
}

// WrapHeading folds a heading into [0, 360)
func WrapHeading(deg float32) float32 {
	d := float32(math.Mod(float64(deg), 360))
	if d < 0 {
		d += 360
	}
	if d >= 360 {
		d = 0
	}
	return d
}

// Forward returns the unit facing vector for a heading around +Y
// Heading 0 faces -Z, 90 faces -X
func Forward(headingDeg float32) mgl32.Vec3 {
	rad := float64(mgl32.DegToRad(headingDeg))
	return mgl32.Vec3{float32(-math.Sin(rad)), 0, float32(-math.Cos(rad))}
}

// SignedAngleXZ returns the rotation in degrees that turns from onto to in the ground plane
// atan2 of the 2D cross and dot products; positive is counter-clockwise seen from above
func SignedAngleXZ(from, to mgl32.Vec3) float32 {
	cross := from.Z()*to.X() - from.X()*to.Z()
	dot := from.X()*to.X() + from.Z()*to.Z()
	return mgl32.RadToDeg(float32(math.Atan2(float64(cross), float64(dot))))
}

// StepHeading turns current by delta, limited to maxStep degrees
// When the remaining delta fits inside the step the result snaps exactly to the target
func StepHeading(current, delta, maxStep float32) float32 {
	delta = NormalizeDegrees(delta)
	if float32(math.Abs(float64(delta))) <= maxStep {
		return WrapHeading(current + delta)
	}
	if delta > 0 {
		return WrapHeading(current + maxStep)
	}
	return WrapHeading(current - maxStep)
}
