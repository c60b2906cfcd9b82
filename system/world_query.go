package system

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/trinket/component"
	"github.com/lixenwraith/trinket/core"
	"github.com/lixenwraith/trinket/engine"
	"github.com/lixenwraith/trinket/physics"
	"github.com/lixenwraith/trinket/vmath"
)

// OnWalkableSurface reports whether p lies on at least one walkable, storage-free tile
func OnWalkableSurface(w *engine.World, p mgl32.Vec3) bool {
	found := false
	w.Components.Tile.Each(func(e core.Entity, tile component.TileComponent) {
		if found || !tile.Walkable || w.Components.Storage.Has(e) {
			return
		}
		found = physics.PointOnTile(p, tile)
	})
	return found
}

// FirstCollision returns the first in-world entity whose hitbox overlaps box
// Entities in skip are ignored
func FirstCollision(w *engine.World, box vmath.AABB, skip ...core.Entity) (core.Entity, bool) {
	hit := core.NoEntity
	w.Components.Location.Each(func(e core.Entity, loc component.LocationComponent) {
		if hit != core.NoEntity {
			return
		}
		wp, ok := loc.InWorld()
		if !ok {
			return
		}
		for _, s := range skip {
			if e == s {
				return
			}
		}
		if physics.BoxesOverlap(box, wp.Hitbox) {
			hit = e
		}
	})
	return hit, hit != core.NoEntity
}

// itemHalf returns the half extents used to rebuild an entity's hitbox
func itemHalf(w *engine.World, e core.Entity) mgl32.Vec3 {
	if size, ok := w.Components.Size.Get(e); ok {
		return size.Half
	}
	h := w.Resource.Tuning.DefaultItemHalf
	return mgl32.Vec3{h, h, h}
}
