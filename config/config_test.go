package config

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/trinket/parameter"
)

func TestLoadTuningOverridesSubset(t *testing.T) {
	tuning, err := LoadTuning(strings.NewReader(`
move_speed: 0.2
tick_interval: 20ms
camera:
  max_distance: 50
`))
	require.NoError(t, err)

	assert.Equal(t, float32(0.2), tuning.MoveSpeed)
	assert.Equal(t, 20*time.Millisecond, tuning.TickInterval)
	assert.Equal(t, float32(50), tuning.Camera.MaxDistance)
	// Untouched fields keep defaults
	assert.Equal(t, parameter.PickupRange, tuning.PickupRange)
	assert.Equal(t, parameter.CameraMinDistance, tuning.Camera.MinDistance)
}

func TestLoadTuningEmptyIsDefault(t *testing.T) {
	tuning, err := LoadTuning(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, DefaultTuning(), tuning)
}

func TestLoadTuningRejects(t *testing.T) {
	_, err := LoadTuning(strings.NewReader("move_speed: -1\n"))
	assert.Error(t, err)

	_, err = LoadTuning(strings.NewReader("max_storage_grid: 40\n"))
	assert.Error(t, err)

	_, err = LoadTuning(strings.NewReader("no_such_field: 1\n"))
	assert.Error(t, err, "unknown fields are rejected")
}

func TestDefaultSeedValid(t *testing.T) {
	seed, err := DefaultSeed()
	require.NoError(t, err)

	assert.Equal(t, "Wanderer", seed.Player.Name)
	require.NotNil(t, seed.Player.Storage)
	assert.Equal(t, 4, seed.Player.Storage.Rows)
	assert.Equal(t, 6, seed.Player.Storage.Columns)
	require.NotNil(t, seed.Player.Camera)
	assert.Len(t, seed.NPC.Dialogue, 3)
	assert.Equal(t, 12, seed.Tiles.Columns)
	assert.Contains(t, seed.Tiles.Holes, [2]int{9, 8})
	require.Len(t, seed.Items, 5)
	assert.Equal(t, "lantern", seed.Items[0].ID)
	assert.Equal(t, 2, seed.Items[0].Height)
	assert.True(t, seed.Items[3].Stored)
}

func TestSeedSchemaRejects(t *testing.T) {
	cases := map[string]string{
		"missing player storage": `
player: {name: P, position: [0,0,0], half: [1,1,1], camera: {distance: 5}}
npc: {name: N, position: [0,0,0], half: [1,1,1]}
tree: {name: T, position: [0,0,0], half: [1,1,1]}
tiles: {origin: [0,0,0], columns: 1, rows: 1, size: 1}
items: []
`,
		"zero width item": `
player: {name: P, position: [0,0,0], half: [1,1,1], storage: {rows: 2, columns: 2}, camera: {distance: 5}}
npc: {name: N, position: [0,0,0], half: [1,1,1]}
tree: {name: T, position: [0,0,0], half: [1,1,1]}
tiles: {origin: [0,0,0], columns: 1, rows: 1, size: 1}
items:
  - {id: a, name: A, width: 0, height: 1}
`,
		"oversized grid": `
player: {name: P, position: [0,0,0], half: [1,1,1], storage: {rows: 20, columns: 2}, camera: {distance: 5}}
npc: {name: N, position: [0,0,0], half: [1,1,1]}
tree: {name: T, position: [0,0,0], half: [1,1,1]}
tiles: {origin: [0,0,0], columns: 1, rows: 1, size: 1}
items: []
`,
		"short vector": `
player: {name: P, position: [0,0], half: [1,1,1], storage: {rows: 2, columns: 2}, camera: {distance: 5}}
npc: {name: N, position: [0,0,0], half: [1,1,1]}
tree: {name: T, position: [0,0,0], half: [1,1,1]}
tiles: {origin: [0,0,0], columns: 1, rows: 1, size: 1}
items: []
`,
	}

	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := LoadSeed(strings.NewReader(doc))
			assert.Error(t, err)
		})
	}
}
