package inventory

import (
	"sort"

	"github.com/lixenwraith/trinket/component"
	"github.com/lixenwraith/trinket/core"
	"github.com/lixenwraith/trinket/engine"
)

// FindEmptySpot returns the first anchor cell in container where item's footprint fits
// Items without a storable shape never fit
func FindEmptySpot(w *engine.World, container, item core.Entity) (x, y int, ok bool) {
	shape, ok := w.Components.Storable.Get(item)
	if !ok {
		return 0, 0, false
	}
	return Occupancy(w, container).FirstFit(shape.Width, shape.Height)
}

// HasSpace reports whether FindEmptySpot would succeed
func HasSpace(w *engine.World, container, item core.Entity) bool {
	_, _, ok := FindEmptySpot(w, container, item)
	return ok
}

// Slot is one stored item and its anchor cell
type Slot struct {
	Item   core.Entity
	CellX  int
	CellY  int
	Width  int
	Height int
}

// Contents lists the items stored in container ordered by row then column
func Contents(w *engine.World, container core.Entity) []Slot {
	var slots []Slot
	w.Components.Location.Each(func(e core.Entity, loc component.LocationComponent) {
		sp, ok := loc.InStorage()
		if !ok || sp.Container != container {
			return
		}
		shape, _ := w.Components.Storable.Get(e)
		slots = append(slots, Slot{Item: e, CellX: sp.CellX, CellY: sp.CellY, Width: shape.Width, Height: shape.Height})
	})
	sort.Slice(slots, func(i, j int) bool {
		if slots[i].CellY != slots[j].CellY {
			return slots[i].CellY < slots[j].CellY
		}
		if slots[i].CellX != slots[j].CellX {
			return slots[i].CellX < slots[j].CellX
		}
		return slots[i].Item < slots[j].Item
	})
	return slots
}
