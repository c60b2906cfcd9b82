// Package inventory allocates cells in container storage grids.
// Occupancy is derived from current placements on every query; nothing is cached between calls.
package inventory

import (
	"github.com/lixenwraith/trinket/component"
	"github.com/lixenwraith/trinket/core"
	"github.com/lixenwraith/trinket/engine"
	"github.com/lixenwraith/trinket/parameter"
)

// OccupancyGrid marks the cells covered by items stored in one container
type OccupancyGrid struct {
	Rows    int
	Columns int
	cells   [parameter.MaxStorageGrid][parameter.MaxStorageGrid]bool
}

// NewOccupancyGrid returns an empty grid, dimensions capped at limit
// The limit itself never exceeds parameter.MaxStorageGrid
func NewOccupancyGrid(rows, columns, limit int) *OccupancyGrid {
	limit = max(0, min(limit, parameter.MaxStorageGrid))
	return &OccupancyGrid{
		Rows:    max(0, min(rows, limit)),
		Columns: max(0, min(columns, limit)),
	}
}

// Occupied reports whether cell (x, y) is taken; out-of-bounds cells count as taken
func (g *OccupancyGrid) Occupied(x, y int) bool {
	if !g.inBounds(x, y) {
		return true
	}
	return g.cells[y][x]
}

// Mark covers the footprint anchored at (x, y), clipped to the grid
func (g *OccupancyGrid) Mark(x, y, width, height int) {
	for row := y; row < y+height; row++ {
		for col := x; col < x+width; col++ {
			if g.inBounds(col, row) {
				g.cells[row][col] = true
			}
		}
	}
}

// Fits reports whether a width×height footprint anchored at (x, y) is in bounds and free
func (g *OccupancyGrid) Fits(x, y, width, height int) bool {
	if width < 1 || height < 1 {
		return false
	}
	if x < 0 || y < 0 || x+width > g.Columns || y+height > g.Rows {
		return false
	}
	for row := y; row < y+height; row++ {
		for col := x; col < x+width; col++ {
			if g.cells[row][col] {
				return false
			}
		}
	}
	return true
}

// FirstFit scans anchors row-major (row 0 first, columns left to right)
func (g *OccupancyGrid) FirstFit(width, height int) (x, y int, ok bool) {
	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Columns; col++ {
			if g.Fits(col, row, width, height) {
				return col, row, true
			}
		}
	}
	return 0, 0, false
}

// Free returns the number of unoccupied cells
func (g *OccupancyGrid) Free() int {
	n := 0
	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Columns; col++ {
			if !g.cells[row][col] {
				n++
			}
		}
	}
	return n
}

func (g *OccupancyGrid) inBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.Columns && y < g.Rows
}

// Occupancy derives the grid of container from every item stored in it
// A container without a storage component yields a zero-size grid
// Dimensions are capped by the world's tuned MaxStorageGrid
func Occupancy(w *engine.World, container core.Entity) *OccupancyGrid {
	storage, ok := w.Components.Storage.Get(container)
	if !ok {
		return NewOccupancyGrid(0, 0, 0)
	}
	g := NewOccupancyGrid(storage.Rows, storage.Columns, w.Resource.Tuning.MaxStorageGrid)
	w.Components.Location.Each(func(e core.Entity, loc component.LocationComponent) {
		sp, ok := loc.InStorage()
		if !ok || sp.Container != container {
			return
		}
		shape, ok := w.Components.Storable.Get(e)
		if !ok {
			return
		}
		g.Mark(sp.CellX, sp.CellY, shape.Width, shape.Height)
	})
	return g
}
