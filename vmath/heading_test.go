package vmath

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeDegrees(t *testing.T) {
	cases := map[float32]float32{
		0:    0,
		180:  180,
		-180: 180,
		190:  -170,
		-190: 170,
		540:  180,
		720:  0,
	}
	for in, want := range cases {
		assert.InDelta(t, want, NormalizeDegrees(in), 1e-4, "input %v", in)
	}
}

func TestWrapHeading(t *testing.T) {
	assert.InDelta(t, 350, WrapHeading(-10), 1e-4)
	assert.InDelta(t, 10, WrapHeading(370), 1e-4)
	assert.InDelta(t, 0, WrapHeading(360), 1e-4)
}

func TestSignedAngleXZ(t *testing.T) {
	fwd := Forward(0)
	assert.InDelta(t, 90, SignedAngleXZ(fwd, mgl32.Vec3{-1, 0, 0}), 1e-3, "left")
	assert.InDelta(t, -90, SignedAngleXZ(fwd, mgl32.Vec3{1, 0, 0}), 1e-3, "right")
	assert.InDelta(t, 180, SignedAngleXZ(fwd, mgl32.Vec3{0, 0, 1}), 1e-3, "back")
	assert.InDelta(t, 0, SignedAngleXZ(fwd, mgl32.Vec3{0, 0, -1}), 1e-3, "ahead")

	// Turning by the signed angle lands on the target direction
	for _, target := range []mgl32.Vec3{{1, 0, 1}, {-1, 0, 1}, {-1, 0, -1}, {1, 0, -1}} {
		dir, _ := NormalizeXZ(target)
		h := WrapHeading(30 + SignedAngleXZ(Forward(30), dir))
		got := Forward(h)
		assert.InDelta(t, dir.X(), got.X(), 1e-4)
		assert.InDelta(t, dir.Z(), got.Z(), 1e-4)
	}
}

func TestStepHeading(t *testing.T) {
	// Clamped turn
	assert.InDelta(t, 15, StepHeading(0, 90, 15), 1e-4)
	assert.InDelta(t, 345, StepHeading(0, -90, 15), 1e-4)
	// Snap when the remainder fits in one step
	assert.InDelta(t, 10, StepHeading(0, 10, 15), 1e-4)
	assert.InDelta(t, 355, StepHeading(5, -10, 15), 1e-4)
	// Delta folded before clamping: 350 is -10
	assert.InDelta(t, 350, StepHeading(0, 350, 15), 1e-4)
}

func TestBoxAround(t *testing.T) {
	b := BoxAround(mgl32.Vec3{1, 0, 2}, mgl32.Vec3{0.5, 1, 0.25})
	assert.Equal(t, mgl32.Vec3{0.5, 0, 1.75}, b.Min)
	assert.Equal(t, mgl32.Vec3{1.5, 2, 2.25}, b.Max)
	assert.True(t, b.Valid())
	assert.False(t, AABB{Min: mgl32.Vec3{1, 0, 0}, Max: mgl32.Vec3{0, 1, 1}}.Valid())
}
