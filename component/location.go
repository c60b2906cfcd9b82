package component

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/trinket/core"
	"github.com/lixenwraith/trinket/vmath"
)

// LocationKind discriminates where an entity currently lives
type LocationKind uint8

const (
	LocationNone LocationKind = iota
	LocationWorld
	LocationStorage
)

func (k LocationKind) String() string {
	switch k {
	case LocationWorld:
		return "world"
	case LocationStorage:
		return "storage"
	default:
		return "none"
	}
}

// WorldPlacement is the in-world half of a location: a position and the hitbox around it
type WorldPlacement struct {
	Position mgl32.Vec3
	Hitbox   vmath.AABB
}

// StoragePlacement anchors an item's footprint at a cell of a container's grid
type StoragePlacement struct {
	Container core.Entity
	CellX     int // Column
	CellY     int // Row
}

// LocationComponent is a tagged union: an entity is either in the world or in a container, never both
// Only the half selected by Kind is meaningful; construct with AtWorld / AtStorage
type LocationComponent struct {
	Kind    LocationKind
	world   WorldPlacement
	storage StoragePlacement
}

// AtWorld builds an in-world location
func AtWorld(pos mgl32.Vec3, hitbox vmath.AABB) LocationComponent {
	return LocationComponent{
		Kind:  LocationWorld,
		world: WorldPlacement{Position: pos, Hitbox: hitbox},
	}
}

// AtStorage builds an in-storage location
func AtStorage(container core.Entity, cellX, cellY int) LocationComponent {
	return LocationComponent{
		Kind:    LocationStorage,
		storage: StoragePlacement{Container: container, CellX: cellX, CellY: cellY},
	}
}

// InWorld returns the world placement when the entity is in the world
func (l LocationComponent) InWorld() (WorldPlacement, bool) {
	if l.Kind != LocationWorld {
		return WorldPlacement{}, false
	}
	return l.world, true
}

// InStorage returns the storage placement when the entity is in a container
func (l LocationComponent) InStorage() (StoragePlacement, bool) {
	if l.Kind != LocationStorage {
		return StoragePlacement{}, false
	}
	return l.storage, true
}
