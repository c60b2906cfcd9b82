// Package physics holds the collision predicates used by movement and placement.
// There is no response model: callers only ask whether shapes overlap.
package physics

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/trinket/component"
	"github.com/lixenwraith/trinket/vmath"
)

// BoxesOverlap reports whether two boxes overlap on all three axes
// Bounds are exclusive: boxes sharing a face do not overlap
func BoxesOverlap(a, b vmath.AABB) bool {
	for axis := vmath.AxisX; axis <= vmath.AxisZ; axis++ {
		if a.Max[axis] <= b.Min[axis] || a.Min[axis] >= b.Max[axis] {
			return false
		}
	}
	return true
}

// IntervalsOverlap is the inclusive 1D test between [c1-h1, c1+h1] and [c2-h2, c2+h2]
// Inclusive on purpose so a point exactly on a tile edge still counts as on the tile
func IntervalsOverlap(center1, half1, center2, half2 float32) bool {
	return center1+half1 >= center2-half2 && center2+half2 >= center1-half1
}

// PointOnTile checks a point against a tile's half extents on X and Z independently
func PointOnTile(p mgl32.Vec3, tile component.TileComponent) bool {
	return IntervalsOverlap(p.X(), 0, tile.Center.X(), tile.HalfX) &&
		IntervalsOverlap(p.Z(), 0, tile.Center.Z(), tile.HalfZ)
}
