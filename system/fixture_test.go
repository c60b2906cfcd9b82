package system

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/trinket/component"
	"github.com/lixenwraith/trinket/config"
	"github.com/lixenwraith/trinket/core"
	"github.com/lixenwraith/trinket/engine"
	"github.com/lixenwraith/trinket/event"
	"github.com/lixenwraith/trinket/input"
	"github.com/lixenwraith/trinket/parameter"
	"github.com/lixenwraith/trinket/vmath"
)

var playerHalf = mgl32.Vec3{parameter.PlayerHalfX, parameter.PlayerHalfY, parameter.PlayerHalfZ}

// newTestWorld builds a 10x10 walkable floor spanning [-5, 5] on X and Z with a player at the origin
func newTestWorld(t *testing.T) (*engine.World, core.Entity) {
	t.Helper()
	w := engine.NewWorld(config.DefaultTuning(), nil)

	for row := 0; row < 10; row++ {
		for col := 0; col < 10; col++ {
			tile := w.CreateEntity()
			w.Components.Tile.Set(tile, component.TileComponent{
				Center:   mgl32.Vec3{float32(col) - 4.5, 0, float32(row) - 4.5},
				HalfX:    0.5,
				HalfZ:    0.5,
				Walkable: true,
			})
		}
	}

	player := w.CreateEntity()
	w.SetInWorld(player, mgl32.Vec3{}, vmath.BoxAround(mgl32.Vec3{}, playerHalf))
	w.Components.Rotation.Set(player, component.RotationComponent{})
	w.Components.Storage.Set(player, component.StorageComponent{Rows: 4, Columns: 4})
	w.Components.CameraTarget.Set(player, component.CameraTargetComponent{
		Distance: parameter.CameraDefaultDistance,
		Yaw:      parameter.CameraDefaultYaw,
		Pitch:    parameter.CameraDefaultPitch,
	})
	w.Resource.Player = player
	return w, player
}

// addItem places a storable item in the world
func addItem(w *engine.World, pos mgl32.Vec3, width, height int) core.Entity {
	item := w.CreateEntity()
	half := mgl32.Vec3{0.25, 0.25, 0.25}
	w.Components.Storable.Set(item, component.StorableComponent{Width: width, Height: height})
	w.Components.Size.Set(item, component.SizeComponent{Half: half})
	w.SetInWorld(item, pos, vmath.BoxAround(pos, half))
	return item
}

// addObstacle places a non-storable box
func addObstacle(w *engine.World, pos, half mgl32.Vec3) core.Entity {
	e := w.CreateEntity()
	w.SetInWorld(e, pos, vmath.BoxAround(pos, half))
	return e
}

// held returns a snapshot with the given keys held
func held(keys ...input.Key) *input.Snapshot {
	s := &input.Snapshot{}
	for _, k := range keys {
		s.Keys[k].Held = true
	}
	return s
}

// pressed returns a snapshot with the given keys going down this tick
func pressed(keys ...input.Key) *input.Snapshot {
	s := &input.Snapshot{}
	for _, k := range keys {
		s.Keys[k] = input.KeyState{Held: true, Pressed: true}
	}
	return s
}

// funcSystem runs an arbitrary function at a given priority
type funcSystem struct {
	priority int
	fn       func(f *engine.Frame)
}

func (s *funcSystem) Name() string           { return "func" }
func (s *funcSystem) Priority() int          { return s.priority }
func (s *funcSystem) Update(f *engine.Frame) { s.fn(f) }

// capturePresenter records every presented effect
type capturePresenter struct {
	effects []event.Effect
}

func (p *capturePresenter) Present(_ uint64, effects []event.Effect) {
	p.effects = append(p.effects, effects...)
}

// countingAudio records played sounds
type countingAudio struct {
	muted  bool
	played []core.SoundType
}

func (a *countingAudio) Play(s core.SoundType) bool {
	a.played = append(a.played, s)
	return true
}
func (a *countingAudio) IsMuted() bool    { return a.muted }
func (a *countingAudio) ToggleMute() bool { a.muted = !a.muted; return a.muted }

// worldUnderTest bundles a fixture world with the entity an operation targets
type worldUnderTest struct {
	w      *engine.World
	player core.Entity
	target core.Entity
}

func newWorldUnderTest(t *testing.T) *worldUnderTest {
	w, player := newTestWorld(t)
	return &worldUnderTest{w: w, player: player}
}
