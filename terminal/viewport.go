// Package terminal is the tcell front-end: device events in, a projected character view out.
package terminal

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Viewport maps the map area of the screen to normalized device coordinates
// Cell centers map to NDC; +Y is up in NDC and down in cells
type Viewport struct {
	Width  int
	Height int
}

// Valid reports whether the viewport has any cells
func (v Viewport) Valid() bool {
	return v.Width > 0 && v.Height > 0
}

// CellToNDC returns the NDC of the center of cell (x, y), false outside the viewport
func (v Viewport) CellToNDC(x, y int) (mgl32.Vec2, bool) {
	if !v.Valid() || x < 0 || y < 0 || x >= v.Width || y >= v.Height {
		return mgl32.Vec2{}, false
	}
	return mgl32.Vec2{
		2*(float32(x)+0.5)/float32(v.Width) - 1,
		1 - 2*(float32(y)+0.5)/float32(v.Height),
	}, true
}

// NDCToCell returns the cell containing an NDC point, false outside [-1, 1]
func (v Viewport) NDCToCell(ndc mgl32.Vec2) (x, y int, ok bool) {
	if !v.Valid() || ndc.X() < -1 || ndc.X() > 1 || ndc.Y() < -1 || ndc.Y() > 1 {
		return 0, 0, false
	}
	x = int((ndc.X() + 1) / 2 * float32(v.Width))
	y = int((1 - ndc.Y()) / 2 * float32(v.Height))
	return min(x, v.Width-1), min(y, v.Height-1), true
}

// Aspect is width over height in world units; terminal cells are about twice as tall as wide
func (v Viewport) Aspect() float32 {
	if !v.Valid() {
		return 1
	}
	return float32(v.Width) / (2 * float32(v.Height))
}
