package system

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/trinket/component"
	"github.com/lixenwraith/trinket/engine"
	"github.com/lixenwraith/trinket/input"
	"github.com/lixenwraith/trinket/parameter"
	"github.com/lixenwraith/trinket/vmath"
)

// CameraSystem orbits the camera around the player from its CameraTargetComponent
type CameraSystem struct {
	engine.SystemBase
}

// NewCameraSystem creates the orbit camera system
func NewCameraSystem(world *engine.World) *CameraSystem {
	return &CameraSystem{SystemBase: engine.NewSystemBase(world, "camera")}
}

func (s *CameraSystem) Name() string {
	return "camera"
}

func (s *CameraSystem) Priority() int {
	return parameter.PriorityCamera
}

func (s *CameraSystem) Update(f *engine.Frame) {
	cam := s.Resource.Camera
	player := s.Resource.Player
	target, ok := s.Component.CameraTarget.Get(player)
	if cam == nil || !ok {
		return
	}

	target = ApplyOrbitInput(target, f.Input, s.Resource.Tuning.Camera.ZoomStep, s.Resource.Tuning.Camera.OrbitStep,
		s.Resource.Tuning.Camera.MinDistance, s.Resource.Tuning.Camera.MaxDistance)
	s.Component.CameraTarget.Set(player, target)

	focus := s.World.MustWorldPlacement(player).Position
	cam.Target = focus
	cam.Eye = OrbitEye(focus, target)
	cam.Up = mgl32.Vec3{0, 1, 0}
}

// ApplyOrbitInput zooms with scroll and turns with the orbit keys
// Positive scroll moves the camera closer
func ApplyOrbitInput(t component.CameraTargetComponent, in *input.Snapshot, zoomStep, orbitStep, minDist, maxDist float32) component.CameraTargetComponent {
	t.Distance = mgl32.Clamp(t.Distance-in.Scroll*zoomStep, minDist, maxDist)
	if in.Held(input.KeyOrbitLeft) {
		t.Yaw -= orbitStep
	}
	if in.Held(input.KeyOrbitRight) {
		t.Yaw += orbitStep
	}
	t.Yaw = vmath.WrapHeading(t.Yaw)
	// Straight down has no usable up vector
	t.Pitch = mgl32.Clamp(t.Pitch, 1, 89)
	return t
}

// OrbitEye places the eye on a sphere around focus
// Yaw 0 looks from +Z toward -Z, pitch is elevation above the ground plane
func OrbitEye(focus mgl32.Vec3, t component.CameraTargetComponent) mgl32.Vec3 {
	yaw := float64(mgl32.DegToRad(t.Yaw))
	pitch := float64(mgl32.DegToRad(t.Pitch))
	horiz := float64(t.Distance) * math.Cos(pitch)
	offset := mgl32.Vec3{
		float32(horiz * math.Sin(yaw)),
		float32(float64(t.Distance) * math.Sin(pitch)),
		float32(horiz * math.Cos(yaw)),
	}
	return focus.Add(offset)
}
