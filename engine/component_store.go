package engine

import (
	"github.com/lixenwraith/trinket/component"
)

// ComponentStore provides typed component stores
// Initialized once per world; systems keep a copy of the pointers
type ComponentStore struct {
	// Spatial
	Location     *Store[component.LocationComponent]
	Rotation     *Store[component.RotationComponent]
	Size         *Store[component.SizeComponent]
	Tile         *Store[component.TileComponent]
	CameraTarget *Store[component.CameraTargetComponent]

	// Inventory
	Storable *Store[component.StorableComponent]
	Storage  *Store[component.StorageComponent]

	// Descriptive
	Name        *Store[component.NameComponent]
	Description *Store[component.DescriptionComponent]
	Dialogue    *Store[component.DialogueComponent]
	Health      *Store[component.HealthComponent]
}

func newComponentStore() ComponentStore {
	return ComponentStore{
		Location:     NewStore[component.LocationComponent](),
		Rotation:     NewStore[component.RotationComponent](),
		Size:         NewStore[component.SizeComponent](),
		Tile:         NewStore[component.TileComponent](),
		CameraTarget: NewStore[component.CameraTargetComponent](),

		Storable: NewStore[component.StorableComponent](),
		Storage:  NewStore[component.StorageComponent](),

		Name:        NewStore[component.NameComponent](),
		Description: NewStore[component.DescriptionComponent](),
		Dialogue:    NewStore[component.DialogueComponent](),
		Health:      NewStore[component.HealthComponent](),
	}
}
