package engine

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/trinket/component"
	"github.com/lixenwraith/trinket/config"
	"github.com/lixenwraith/trinket/core"
	"github.com/lixenwraith/trinket/event"
	"github.com/lixenwraith/trinket/input"
	"github.com/lixenwraith/trinket/parameter"
	"github.com/lixenwraith/trinket/vmath"
)

// recordingSystem appends its name to a shared log on every update
type recordingSystem struct {
	name     string
	priority int
	log      *[]string
	fn       func(f *Frame)
}

func (s *recordingSystem) Name() string  { return s.name }
func (s *recordingSystem) Priority() int { return s.priority }
func (s *recordingSystem) Update(f *Frame) {
	*s.log = append(*s.log, s.name)
	if s.fn != nil {
		s.fn(f)
	}
}

func TestWorld_CreateEntity(t *testing.T) {
	w := NewWorld(config.DefaultTuning(), nil)
	a := w.CreateEntity()
	b := w.CreateEntity()
	assert.True(t, a.Valid())
	assert.NotEqual(t, a, b)
	assert.Equal(t, []core.Entity{a, b}, w.Entities())
	assert.True(t, w.Exists(b))
	assert.False(t, w.Exists(b+1))
	assert.False(t, w.Exists(core.NoEntity))
}

func TestWorld_SystemOrder(t *testing.T) {
	w := NewWorld(config.DefaultTuning(), nil)
	var log []string
	w.AddSystem(&recordingSystem{name: "late", priority: 50, log: &log})
	w.AddSystem(&recordingSystem{name: "early", priority: 10, log: &log})
	w.AddSystem(&recordingSystem{name: "mid-a", priority: 20, log: &log})
	w.AddSystem(&recordingSystem{name: "mid-b", priority: 20, log: &log})

	w.Tick(nil)
	assert.Equal(t, []string{"early", "mid-a", "mid-b", "late"}, log)
	assert.Len(t, w.Systems(), 4)
}

func TestWorld_FrameResetsEachTick(t *testing.T) {
	w := NewWorld(config.DefaultTuning(), nil)
	var log []string
	var seen []ClaimedInput
	w.AddSystem(&recordingSystem{name: "claimer", priority: 1, log: &log, fn: func(f *Frame) {
		seen = append(seen, f.Claimed)
		f.Claimed.Claim(ClaimLeftClick)
		f.CursorHits = append(f.CursorHits, 7)
		f.Nearest = 7
		f.Emit(event.Effect{Kind: event.EffectBump})
	}})

	f := w.Tick(nil)
	assert.Equal(t, uint64(1), f.Tick)
	assert.True(t, f.Claimed.LeftClick)
	assert.Equal(t, 1, f.Effects.Len())
	assert.Equal(t, uint64(1), f.Effects.Peek()[0].Tick)

	f = w.Tick(&input.Snapshot{})
	assert.Equal(t, uint64(2), f.Tick)
	assert.Equal(t, []core.Entity{7}, f.CursorHits)
	assert.Equal(t, 1, f.Effects.Len())
	// Claims from tick 1 were cleared before tick 2 ran
	require.Len(t, seen, 2)
	assert.False(t, seen[1].LeftClick)
	assert.Equal(t, uint64(2), w.TickCount())
}

func TestClaimedInput(t *testing.T) {
	var c ClaimedInput
	assert.True(t, c.Claim(ClaimInteract))
	assert.False(t, c.Claim(ClaimInteract))
	assert.True(t, c.Claimed(ClaimInteract))
	assert.False(t, c.Claimed(ClaimRightClick))
	assert.False(t, c.Claim(ClaimKind(99)))
}

func TestWorld_SubmitDrainsBounded(t *testing.T) {
	w := NewWorld(config.DefaultTuning(), nil)
	var log []string
	var counts []int
	w.AddSystem(&recordingSystem{name: "reader", log: &log, fn: func(f *Frame) {
		counts = append(counts, len(f.Requests))
	}})

	total := parameter.MaxRequestsPerTick + 3
	for i := 0; i < total; i++ {
		require.True(t, w.Submit(event.Request{Kind: event.RequestExamine, Target: core.Entity(i + 1)}))
	}
	w.Tick(nil)
	w.Tick(nil)
	w.Tick(nil)
	assert.Equal(t, []int{parameter.MaxRequestsPerTick, 3, 0}, counts)
}

func TestWorld_Location(t *testing.T) {
	w := NewWorld(config.DefaultTuning(), nil)
	bag := w.CreateEntity()
	item := w.CreateEntity()

	assert.Equal(t, component.LocationNone, w.Location(item).Kind)
	assert.Panics(t, func() { w.MustWorldPlacement(item) })
	assert.Panics(t, func() { w.MustStorage(bag) })

	pos := mgl32.Vec3{1, 0, 2}
	w.SetInWorld(item, pos, vmath.BoxAround(pos, mgl32.Vec3{0.25, 0.25, 0.25}))
	wp := w.MustWorldPlacement(item)
	assert.Equal(t, pos, wp.Position)
	_, inStorage := w.StoragePlacement(item)
	assert.False(t, inStorage)
	assert.Equal(t, []core.Entity{item}, w.InWorld())

	w.SetInStorage(item, bag, 2, 1)
	sp, ok := w.StoragePlacement(item)
	require.True(t, ok)
	assert.Equal(t, component.StoragePlacement{Container: bag, CellX: 2, CellY: 1}, sp)
	_, inWorld := w.WorldPlacement(item)
	assert.False(t, inWorld)
	assert.Empty(t, w.InWorld())
}

func TestWorld_Digest(t *testing.T) {
	build := func() *World {
		w := NewWorld(config.DefaultTuning(), nil)
		a := w.CreateEntity()
		w.SetInWorld(a, mgl32.Vec3{1, 0, 1}, vmath.BoxAround(mgl32.Vec3{1, 0, 1}, mgl32.Vec3{0.5, 0.5, 0.5}))
		w.Components.Rotation.Set(a, component.RotationComponent{Degrees: 30})
		return w
	}
	w1, w2 := build(), build()
	require.Equal(t, w1.Digest(), w2.Digest())

	w2.Components.Rotation.Set(1, component.RotationComponent{Degrees: 31})
	assert.NotEqual(t, w1.Digest(), w2.Digest())

	w3 := build()
	w3.SetInStorage(1, 9, 0, 0)
	assert.NotEqual(t, w1.Digest(), w3.Digest())
}

func TestCamera_InverseRoundTrip(t *testing.T) {
	cam := NewCamera(mgl32.Vec3{0, 20, 0.01}, vmath.OrthoZO(-10, 10, -10, 10, 0.1, 100))
	vp := cam.ViewProjection()
	inv := cam.InverseViewProjection()
	p := mgl32.Vec3{2, 0, -3}
	clip := vp.Mul4x1(p.Vec4(1))
	back := inv.Mul4x1(clip)
	back = back.Mul(1 / back.W())
	assert.InDelta(t, p.X(), back.X(), 1e-3)
	assert.InDelta(t, p.Z(), back.Z(), 1e-3)

	degenerate := NewCamera(mgl32.Vec3{0, 20, 0.01}, mgl32.Mat4{})
	assert.Equal(t, mgl32.Mat4{}, degenerate.InverseViewProjection())
}
