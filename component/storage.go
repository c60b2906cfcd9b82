package component

// StorableComponent is an item's rectangular footprint in whole grid cells, never rotated
type StorableComponent struct {
	Width  int // Columns covered, >= 1
	Height int // Rows covered, >= 1
}

// StorageComponent gives an entity a container grid
type StorageComponent struct {
	Rows    int
	Columns int
}
