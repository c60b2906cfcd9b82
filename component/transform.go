package component

import (
	"github.com/go-gl/mathgl/mgl32"
)

// RotationComponent is the heading around the vertical axis, degrees in [0, 360)
// Heading 0 faces -Z
type RotationComponent struct {
	Degrees float32
}

// SizeComponent holds half extents used to rebuild a hitbox when an entity re-enters the world
type SizeComponent struct {
	Half mgl32.Vec3
}

// CameraTargetComponent drives the orbit camera around the entity carrying it
type CameraTargetComponent struct {
	Distance float32
	Yaw      float32 // Degrees around +Y
	Pitch    float32 // Degrees above the ground plane
}
