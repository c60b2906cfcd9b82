package system

import (
	"math"

	"github.com/lixenwraith/trinket/component"
	"github.com/lixenwraith/trinket/core"
	"github.com/lixenwraith/trinket/engine"
	"github.com/lixenwraith/trinket/parameter"
	"github.com/lixenwraith/trinket/vmath"
)

// PickingSystem casts the cursor ray and fills the frame's hit list and nearest pick
type PickingSystem struct {
	engine.SystemBase
}

// NewPickingSystem creates the cursor picking system
func NewPickingSystem(world *engine.World) *PickingSystem {
	return &PickingSystem{SystemBase: engine.NewSystemBase(world, "picking")}
}

func (s *PickingSystem) Name() string {
	return "picking"
}

func (s *PickingSystem) Priority() int {
	return parameter.PriorityPicking
}

func (s *PickingSystem) Update(f *engine.Frame) {
	cam := s.Resource.Camera
	if cam == nil || !f.Input.CursorValid {
		return
	}
	ray, ok := vmath.CursorRay(cam.InverseViewProjection(), f.Input.CursorNDC)
	if !ok {
		return
	}
	f.CursorHits = PickHits(s.World, ray, f.CursorHits)
	f.Nearest = NearestTo(s.World, f.CursorHits, s.Resource.Player)
}

// PickHits appends every in-world entity whose hitbox the ray enters, in store order
func PickHits(w *engine.World, ray vmath.Ray, dst []core.Entity) []core.Entity {
	w.Components.Location.Each(func(e core.Entity, loc component.LocationComponent) {
		wp, ok := loc.InWorld()
		if ok && ray.IntersectAABB(wp.Hitbox) {
			dst = append(dst, e)
		}
	})
	return dst
}

// NearestTo picks the hit closest to actor by straight-line 3D distance, excluding actor
// Distance is measured to the actor, not along the ray
func NearestTo(w *engine.World, hits []core.Entity, actor core.Entity) core.Entity {
	origin := w.MustWorldPlacement(actor).Position
	best := core.NoEntity
	bestDist := float32(math.MaxFloat32)
	for _, e := range hits {
		if e == actor {
			continue
		}
		wp, ok := w.WorldPlacement(e)
		if !ok {
			continue
		}
		if d := vmath.Distance(origin, wp.Position); d < bestDist {
			best, bestDist = e, d
		}
	}
	return best
}
