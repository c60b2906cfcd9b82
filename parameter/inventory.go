package parameter

// Storage and pickup
const (
	// MaxStorageGrid caps both rows and columns of any container's occupancy grid
	MaxStorageGrid = 12

	// PickupRange is the planar distance within which an item can be picked up
	PickupRange float32 = 2.0

	// PlaceOffsetX/Y/Z is the fixed offset from the actor where placed items land
	PlaceOffsetX float32 = 0
	PlaceOffsetY float32 = 0
	PlaceOffsetZ float32 = 1.2

	// DefaultItemHalf is used for items seeded without a size
	DefaultItemHalf float32 = 0.25
)
