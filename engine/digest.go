package engine

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/trinket/component"
	"github.com/lixenwraith/trinket/vmath"
)

// Digest hashes simulation-relevant component state in entity order
// Two worlds with the same digest agree on locations, rotations, grids and dialogue progress
func (w *World) Digest() uint64 {
	d := digester{h: xxhash.New()}
	c := w.Components
	for _, e := range w.entities {
		d.u64(uint64(e))
		if loc, ok := c.Location.Get(e); ok {
			d.location(loc)
		}
		if r, ok := c.Rotation.Get(e); ok {
			d.u64(1)
			d.f32(r.Degrees)
		}
		if s, ok := c.Storable.Get(e); ok {
			d.u64(2)
			d.u64(uint64(s.Width))
			d.u64(uint64(s.Height))
		}
		if s, ok := c.Storage.Get(e); ok {
			d.u64(3)
			d.u64(uint64(s.Columns))
			d.u64(uint64(s.Rows))
		}
		if dl, ok := c.Dialogue.Get(e); ok {
			d.u64(4)
			d.u64(uint64(dl.Index))
		}
	}
	return d.h.Sum64()
}

type digester struct {
	h   *xxhash.Digest
	buf [8]byte
}

func (d *digester) u64(v uint64) {
	binary.LittleEndian.PutUint64(d.buf[:], v)
	_, _ = d.h.Write(d.buf[:])
}

func (d *digester) f32(v float32) {
	d.u64(uint64(math.Float32bits(v)))
}

func (d *digester) vec(v mgl32.Vec3) {
	d.f32(v[0])
	d.f32(v[1])
	d.f32(v[2])
}

func (d *digester) box(b vmath.AABB) {
	d.vec(b.Min)
	d.vec(b.Max)
}

func (d *digester) location(loc component.LocationComponent) {
	d.u64(uint64(loc.Kind) + 100)
	if wp, ok := loc.InWorld(); ok {
		d.vec(wp.Position)
		d.box(wp.Hitbox)
	}
	if sp, ok := loc.InStorage(); ok {
		d.u64(uint64(sp.Container))
		d.u64(uint64(int64(sp.CellX)))
		d.u64(uint64(int64(sp.CellY)))
	}
}

