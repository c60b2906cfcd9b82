// Package seed creates the fixed initial entity set from a config.Seed
package seed

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/lixenwraith/trinket/component"
	"github.com/lixenwraith/trinket/config"
	"github.com/lixenwraith/trinket/core"
	"github.com/lixenwraith/trinket/engine"
	"github.com/lixenwraith/trinket/inventory"
	"github.com/lixenwraith/trinket/logging"
	"github.com/lixenwraith/trinket/system"
	"github.com/lixenwraith/trinket/vmath"
)

// Handles are the well-known entities created by Build
type Handles struct {
	Player core.Entity
	NPC    core.Entity
	Tree   core.Entity
	Items  map[string]core.Entity
}

// Build populates an empty world and sets it as the player's world
// Returns an error when the seed cannot produce a consistent world
func Build(w *engine.World, s config.Seed, tuning config.Tuning) (Handles, error) {
	if s.Player.Storage == nil {
		return Handles{}, errors.New("player has no storage")
	}
	if s.Player.Storage.Rows > tuning.MaxStorageGrid || s.Player.Storage.Columns > tuning.MaxStorageGrid {
		return Handles{}, errors.Errorf("player storage %dx%d exceeds max grid %d",
			s.Player.Storage.Columns, s.Player.Storage.Rows, tuning.MaxStorageGrid)
	}

	buildTiles(w, s.Tiles)

	h := Handles{Items: make(map[string]core.Entity, len(s.Items))}
	h.Player = buildActor(w, s.Player)
	w.Resource.Player = h.Player
	if !system.OnWalkableSurface(w, s.Player.Position) {
		return Handles{}, errors.Errorf("player start %v is not on a walkable tile", s.Player.Position)
	}

	h.NPC = buildActor(w, s.NPC)
	h.Tree = buildProp(w, s.Tree)

	for _, item := range s.Items {
		if _, dup := h.Items[item.ID]; dup {
			return Handles{}, errors.Errorf("duplicate item id %q", item.ID)
		}
		e, err := buildItem(w, item, h.Player, tuning)
		if err != nil {
			return Handles{}, errors.Wrapf(err, "item %q", item.ID)
		}
		h.Items[item.ID] = e
	}

	w.Resource.Logger.Info("world seeded",
		zap.Int("entities", len(w.Entities())),
		zap.Int("items", len(h.Items)),
		logging.Entity("player", h.Player))
	return h, nil
}

// buildTiles lays square tiles row by row; holes are created unwalkable
func buildTiles(w *engine.World, g config.TileGrid) {
	holes := make(map[[2]int]bool, len(g.Holes))
	for _, hole := range g.Holes {
		holes[hole] = true
	}
	half := g.Size / 2
	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Columns; col++ {
			tile := w.CreateEntity()
			w.Components.Tile.Set(tile, component.TileComponent{
				Center: g.Origin.Add(mgl32.Vec3{
					(float32(col) + 0.5) * g.Size,
					0,
					(float32(row) + 0.5) * g.Size,
				}),
				HalfX:    half,
				HalfZ:    half,
				Walkable: !holes[[2]int{col, row}],
			})
		}
	}
}

func buildActor(w *engine.World, a config.ActorSeed) core.Entity {
	e := w.CreateEntity()
	w.SetInWorld(e, a.Position, vmath.BoxAround(a.Position, a.Half))
	w.Components.Size.Set(e, component.SizeComponent{Half: a.Half})
	w.Components.Rotation.Set(e, component.RotationComponent{Degrees: vmath.WrapHeading(a.Heading)})
	w.Components.Name.Set(e, component.NameComponent{Name: a.Name})
	if a.Description != "" {
		w.Components.Description.Set(e, component.DescriptionComponent{Text: a.Description})
	}
	if a.Health > 0 {
		w.Components.Health.Set(e, component.HealthComponent{Current: a.Health, Max: a.Health})
	}
	if len(a.Dialogue) > 0 {
		w.Components.Dialogue.Set(e, component.DialogueComponent{Lines: a.Dialogue})
	}
	if a.Storage != nil {
		w.Components.Storage.Set(e, component.StorageComponent{Rows: a.Storage.Rows, Columns: a.Storage.Columns})
	}
	if a.Camera != nil {
		w.Components.CameraTarget.Set(e, component.CameraTargetComponent{
			Distance: a.Camera.Distance,
			Yaw:      a.Camera.Yaw,
			Pitch:    a.Camera.Pitch,
		})
	}
	return e
}

func buildProp(w *engine.World, p config.PropSeed) core.Entity {
	e := w.CreateEntity()
	w.SetInWorld(e, p.Position, vmath.BoxAround(p.Position, p.Half))
	w.Components.Size.Set(e, component.SizeComponent{Half: p.Half})
	w.Components.Name.Set(e, component.NameComponent{Name: p.Name})
	if p.Description != "" {
		w.Components.Description.Set(e, component.DescriptionComponent{Text: p.Description})
	}
	return e
}

func buildItem(w *engine.World, it config.ItemSeed, player core.Entity, tuning config.Tuning) (core.Entity, error) {
	half := it.Half
	if half == (mgl32.Vec3{}) {
		half = mgl32.Vec3{tuning.DefaultItemHalf, tuning.DefaultItemHalf, tuning.DefaultItemHalf}
	}

	e := w.CreateEntity()
	w.Components.Storable.Set(e, component.StorableComponent{Width: it.Width, Height: it.Height})
	w.Components.Size.Set(e, component.SizeComponent{Half: half})
	w.Components.Name.Set(e, component.NameComponent{Name: it.Name})
	if it.Description != "" {
		w.Components.Description.Set(e, component.DescriptionComponent{Text: it.Description})
	}

	if it.Stored {
		x, y, ok := inventory.FindEmptySpot(w, player, e)
		if !ok {
			return core.NoEntity, errors.Errorf("no room for %dx%d in player storage", it.Width, it.Height)
		}
		w.SetInStorage(e, player, x, y)
		return e, nil
	}

	w.SetInWorld(e, it.Position, vmath.BoxAround(it.Position, half))
	return e, nil
}
