package engine

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Camera is the view used for cursor picking and rendering
type Camera struct {
	Eye        mgl32.Vec3
	Target     mgl32.Vec3
	Up         mgl32.Vec3
	Projection mgl32.Mat4
}

// NewCamera builds a camera looking at the origin from eye
func NewCamera(eye mgl32.Vec3, projection mgl32.Mat4) *Camera {
	return &Camera{
		Eye:        eye,
		Up:         mgl32.Vec3{0, 1, 0},
		Projection: projection,
	}
}

// View returns the look-at matrix
func (c *Camera) View() mgl32.Mat4 {
	return mgl32.LookAtV(c.Eye, c.Target, c.Up)
}

// ViewProjection returns projection * view
func (c *Camera) ViewProjection() mgl32.Mat4 {
	return c.Projection.Mul4(c.View())
}

// InverseViewProjection returns the unprojection matrix, zero matrix when singular
func (c *Camera) InverseViewProjection() mgl32.Mat4 {
	return c.ViewProjection().Inv()
}
