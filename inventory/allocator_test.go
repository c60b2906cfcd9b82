package inventory

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/trinket/component"
	"github.com/lixenwraith/trinket/config"
	"github.com/lixenwraith/trinket/core"
	"github.com/lixenwraith/trinket/engine"
)

func newBag(w *engine.World, rows, cols int) core.Entity {
	bag := w.CreateEntity()
	w.Components.Storage.Set(bag, component.StorageComponent{Rows: rows, Columns: cols})
	return bag
}

func newItem(w *engine.World, width, height int) core.Entity {
	item := w.CreateEntity()
	w.Components.Storable.Set(item, component.StorableComponent{Width: width, Height: height})
	return item
}

// TestFindEmptySpot_RowMajor places a 1x2 at the origin and expects the next 1x1 beside it
func TestFindEmptySpot_RowMajor(t *testing.T) {
	w := engine.NewWorld(config.DefaultTuning(), nil)
	bag := newBag(w, 8, 8)

	tall := newItem(w, 1, 2)
	x, y, ok := FindEmptySpot(w, bag, tall)
	require.True(t, ok)
	require.Equal(t, [2]int{0, 0}, [2]int{x, y})
	w.SetInStorage(tall, bag, x, y)

	g := Occupancy(w, bag)
	assert.True(t, g.Occupied(0, 0))
	assert.True(t, g.Occupied(0, 1))
	assert.False(t, g.Occupied(1, 0))

	small := newItem(w, 1, 1)
	x, y, ok = FindEmptySpot(w, bag, small)
	require.True(t, ok)
	assert.Equal(t, [2]int{1, 0}, [2]int{x, y})
}

func TestFindEmptySpot_Edges(t *testing.T) {
	w := engine.NewWorld(config.DefaultTuning(), nil)
	bag := newBag(w, 2, 3)

	tests := []struct {
		name   string
		width  int
		height int
		ok     bool
	}{
		{"exact fit", 3, 2, true},
		{"too wide", 4, 1, false},
		{"too tall", 1, 3, false},
		{"zero width", 0, 1, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := newItem(w, tt.width, tt.height)
			_, _, ok := FindEmptySpot(w, bag, item)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.ok, HasSpace(w, bag, item))
		})
	}

	notStorable := w.CreateEntity()
	assert.False(t, HasSpace(w, bag, notStorable))

	noStorage := w.CreateEntity()
	assert.False(t, HasSpace(w, noStorage, newItem(w, 1, 1)))
}

func TestFindEmptySpot_CapsGrid(t *testing.T) {
	w := engine.NewWorld(config.DefaultTuning(), nil)
	bag := newBag(w, 40, 40)
	g := Occupancy(w, bag)
	assert.Equal(t, 12, g.Rows)
	assert.Equal(t, 12, g.Columns)
	assert.False(t, HasSpace(w, bag, newItem(w, 13, 1)))
}

func TestFindEmptySpot_TunedGridCap(t *testing.T) {
	tuning := config.DefaultTuning()
	tuning.MaxStorageGrid = 2
	w := engine.NewWorld(tuning, nil)
	bag := newBag(w, 4, 4)

	g := Occupancy(w, bag)
	assert.Equal(t, 2, g.Rows)
	assert.Equal(t, 2, g.Columns)
	assert.False(t, HasSpace(w, bag, newItem(w, 3, 1)))

	for i := 0; i < 4; i++ {
		item := newItem(w, 1, 1)
		x, y, ok := FindEmptySpot(w, bag, item)
		require.True(t, ok)
		require.Less(t, x, 2)
		require.Less(t, y, 2)
		w.SetInStorage(item, bag, x, y)
	}
	assert.False(t, HasSpace(w, bag, newItem(w, 1, 1)), "cells beyond the tuned cap stay unused")
}

// TestFindEmptySpot_RandomFill fills containers with random shapes and checks
// bounds, non-overlap and agreement with HasSpace at every step
func TestFindEmptySpot_RandomFill(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for round := 0; round < 20; round++ {
		w := engine.NewWorld(config.DefaultTuning(), nil)
		rows, cols := 1+rng.Intn(8), 1+rng.Intn(8)
		bag := newBag(w, rows, cols)

		for step := 0; step < 40; step++ {
			item := newItem(w, 1+rng.Intn(3), 1+rng.Intn(3))
			shape, _ := w.Components.Storable.Get(item)
			x, y, ok := FindEmptySpot(w, bag, item)
			require.Equal(t, ok, HasSpace(w, bag, item))
			if !ok {
				continue
			}
			require.GreaterOrEqual(t, x, 0)
			require.GreaterOrEqual(t, y, 0)
			require.LessOrEqual(t, x+shape.Width, cols)
			require.LessOrEqual(t, y+shape.Height, rows)
			require.True(t, Occupancy(w, bag).Fits(x, y, shape.Width, shape.Height))
			w.SetInStorage(item, bag, x, y)
		}

		// Total covered cells equals the sum of stored footprints
		covered := 0
		for _, s := range Contents(w, bag) {
			covered += s.Width * s.Height
		}
		assert.Equal(t, rows*cols-Occupancy(w, bag).Free(), covered)
	}
}

func TestContents_Order(t *testing.T) {
	w := engine.NewWorld(config.DefaultTuning(), nil)
	bag := newBag(w, 4, 4)
	other := newBag(w, 4, 4)

	a := newItem(w, 1, 1)
	b := newItem(w, 1, 1)
	c := newItem(w, 1, 1)
	d := newItem(w, 1, 1)
	w.SetInStorage(a, bag, 2, 1)
	w.SetInStorage(b, bag, 3, 0)
	w.SetInStorage(c, bag, 0, 1)
	w.SetInStorage(d, other, 0, 0)

	var got []core.Entity
	for _, s := range Contents(w, bag) {
		got = append(got, s.Item)
	}
	assert.Equal(t, []core.Entity{b, c, a}, got)
}
