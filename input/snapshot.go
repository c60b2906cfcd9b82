package input

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// KeyState is the per-tick view of one key
type KeyState struct {
	Held    bool // Currently down
	Pressed bool // Went down this tick (edge-triggered)
}

// Snapshot is the input seen by one tick; systems never read devices directly
type Snapshot struct {
	Keys [KeyCount]KeyState

	// CursorNDC is in normalized device coordinates, [-1, 1] with +Y up
	CursorNDC mgl32.Vec2
	// CursorUI is in front-end cell/pixel space, origin top-left
	CursorUI mgl32.Vec2
	// CursorValid is false when the cursor is outside the viewport
	CursorValid bool

	// Scroll accumulated since the previous tick, positive zooms in
	Scroll float32
}

// Held reports whether k is down
func (s *Snapshot) Held(k Key) bool {
	if s == nil || k >= KeyCount {
		return false
	}
	return s.Keys[k].Held
}

// Pressed reports whether k went down this tick
func (s *Snapshot) Pressed(k Key) bool {
	if s == nil || k >= KeyCount {
		return false
	}
	return s.Keys[k].Pressed
}

// Direction combines the four directional keys into an 8-way ground-plane vector
// Forward is -Z, right is +X. Opposing keys cancel. Diagonals are normalized to unit length.
// Returns false when no net direction is active
func (s *Snapshot) Direction() (mgl32.Vec3, bool) {
	var x, z float32
	if s.Held(KeyForward) {
		z--
	}
	if s.Held(KeyBack) {
		z++
	}
	if s.Held(KeyLeft) {
		x--
	}
	if s.Held(KeyRight) {
		x++
	}
	if x == 0 && z == 0 {
		return mgl32.Vec3{}, false
	}
	if x != 0 && z != 0 {
		inv := float32(1 / math.Sqrt2)
		x *= inv
		z *= inv
	}
	return mgl32.Vec3{x, 0, z}, true
}
