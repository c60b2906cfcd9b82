package engine

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"

	"github.com/lixenwraith/trinket/component"
	"github.com/lixenwraith/trinket/core"
	"github.com/lixenwraith/trinket/vmath"
)

// SetInWorld places e in the world, replacing any storage placement
func (w *World) SetInWorld(e core.Entity, pos mgl32.Vec3, hitbox vmath.AABB) {
	w.Components.Location.Set(e, component.AtWorld(pos, hitbox))
}

// SetInStorage anchors e at a cell of container, replacing any world placement
func (w *World) SetInStorage(e, container core.Entity, cellX, cellY int) {
	w.Components.Location.Set(e, component.AtStorage(container, cellX, cellY))
}

// Location returns the location of e, Kind is LocationNone when unset
func (w *World) Location(e core.Entity) component.LocationComponent {
	loc, _ := w.Components.Location.Get(e)
	return loc
}

// WorldPlacement returns the in-world half of e's location
func (w *World) WorldPlacement(e core.Entity) (component.WorldPlacement, bool) {
	return w.Location(e).InWorld()
}

// StoragePlacement returns the in-storage half of e's location
func (w *World) StoragePlacement(e core.Entity) (component.StoragePlacement, bool) {
	return w.Location(e).InStorage()
}

// MustWorldPlacement panics when e is not in the world
// For entities whose presence is a precondition (player, camera target)
func (w *World) MustWorldPlacement(e core.Entity) component.WorldPlacement {
	wp, ok := w.WorldPlacement(e)
	if !ok {
		panic(errors.Errorf("entity %d has no world placement (location %s)", e, w.Location(e).Kind))
	}
	return wp
}

// MustStorage panics when e has no storage grid
func (w *World) MustStorage(e core.Entity) component.StorageComponent {
	s, ok := w.Components.Storage.Get(e)
	if !ok {
		panic(errors.Errorf("entity %d has no storage", e))
	}
	return s
}

// InWorld returns entities currently placed in the world, in store order
func (w *World) InWorld() []core.Entity {
	return w.Components.Location.Filter(func(_ core.Entity, loc component.LocationComponent) bool {
		return loc.Kind == component.LocationWorld
	})
}

// MustLocation panics when e has never been placed
func (w *World) MustLocation(e core.Entity) component.LocationComponent {
	loc, ok := w.Components.Location.Get(e)
	if !ok || loc.Kind == component.LocationNone {
		panic(errors.Errorf("entity %d has no location", e))
	}
	return loc
}
