package component

import (
	"github.com/go-gl/mathgl/mgl32"
)

// TileComponent is a ground tile; Walkable tiles form the surface movement and placement snap to
type TileComponent struct {
	Center   mgl32.Vec3
	HalfX    float32
	HalfZ    float32
	Walkable bool
}
