package system

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/trinket/core"
	"github.com/lixenwraith/trinket/engine"
	"github.com/lixenwraith/trinket/event"
	"github.com/lixenwraith/trinket/input"
	"github.com/lixenwraith/trinket/logging"
	"github.com/lixenwraith/trinket/parameter"
	"github.com/lixenwraith/trinket/vmath"
)

// MoveResult classifies one attempted step
type MoveResult uint8

const (
	MoveAccepted MoveResult = iota
	MoveOffSurface
	MoveBlocked
)

func (r MoveResult) String() string {
	switch r {
	case MoveAccepted:
		return "accepted"
	case MoveOffSurface:
		return "off-surface"
	case MoveBlocked:
		return "blocked"
	default:
		return "unknown"
	}
}

// MovementSystem moves the player from directional input, all-or-nothing per tick
type MovementSystem struct {
	engine.SystemBase
}

// NewMovementSystem creates the player movement system
func NewMovementSystem(world *engine.World) *MovementSystem {
	return &MovementSystem{SystemBase: engine.NewSystemBase(world, "movement")}
}

func (s *MovementSystem) Name() string {
	return "movement"
}

func (s *MovementSystem) Priority() int {
	return parameter.PriorityMovement
}

func (s *MovementSystem) Update(f *engine.Frame) {
	dir, ok := f.Input.Direction()
	if !ok {
		return
	}

	tuning := s.Resource.Tuning
	speed := tuning.MoveSpeed
	if f.Input.Held(input.KeyRun) {
		speed *= tuning.RunMultiplier
	}

	player := s.Resource.Player
	result, blocker := ResolveMove(s.World, player, dir.Mul(speed))
	TurnToward(s.World, player, dir, tuning.MaxTurnPerTick)

	switch result {
	case MoveBlocked:
		f.Emit(event.Effect{Kind: event.EffectBump, Subject: player, Actor: blocker})
		s.Log.Debug("move blocked",
			logging.Entity("entity", player),
			logging.Entity("blocker", blocker))
	case MoveOffSurface:
		s.Log.Debug("move off surface", logging.Entity("entity", player))
	}
}

// ResolveMove validates mover's translated position and hitbox and commits both only when
// the new position is on a walkable tile and the new hitbox overlaps no other hitbox
// On a blocked move the blocking entity is returned
func ResolveMove(w *engine.World, mover core.Entity, delta mgl32.Vec3) (MoveResult, core.Entity) {
	current := w.MustWorldPlacement(mover)
	pos := current.Position.Add(delta)
	box := current.Hitbox.Translate(delta)

	if !OnWalkableSurface(w, pos) {
		return MoveOffSurface, core.NoEntity
	}
	if blocker, hit := FirstCollision(w, box, mover); hit {
		return MoveBlocked, blocker
	}

	w.SetInWorld(mover, pos, box)
	return MoveAccepted, core.NoEntity
}

// TurnToward rotates mover's heading toward dir by at most maxStep degrees
// No-op for movers without a rotation or for a direction with no ground-plane component
func TurnToward(w *engine.World, mover core.Entity, dir mgl32.Vec3, maxStep float32) {
	rot, ok := w.Components.Rotation.Get(mover)
	if !ok {
		return
	}
	flat, ok := vmath.NormalizeXZ(dir)
	if !ok {
		return
	}
	delta := vmath.SignedAngleXZ(vmath.Forward(rot.Degrees), flat)
	rot.Degrees = vmath.StepHeading(rot.Degrees, delta, maxStep)
	w.Components.Rotation.Set(mover, rot)
}
