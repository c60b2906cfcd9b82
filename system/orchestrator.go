package system

import (
	"github.com/lixenwraith/trinket/component"
	"github.com/lixenwraith/trinket/core"
	"github.com/lixenwraith/trinket/engine"
	"github.com/lixenwraith/trinket/event"
	"github.com/lixenwraith/trinket/inventory"
	"github.com/lixenwraith/trinket/vmath"
)

// Pickup moves item from the world into actor's storage
// Every check runs before any component is written; a failed pickup leaves the world unchanged
func Pickup(w *engine.World, item, actor core.Entity) event.Outcome {
	if !w.Components.Storable.Has(item) {
		return event.OutcomeNotStorable
	}
	itemWP, ok := w.WorldPlacement(item)
	if !ok {
		return event.OutcomeOutOfRange
	}
	actorWP := w.MustWorldPlacement(actor)
	w.MustStorage(actor)
	if vmath.DistanceXZ(itemWP.Position, actorWP.Position) > w.Resource.Tuning.PickupRange {
		return event.OutcomeOutOfRange
	}
	x, y, ok := inventory.FindEmptySpot(w, actor, item)
	if !ok {
		return event.OutcomeNoInventorySpace
	}

	w.SetInStorage(item, actor, x, y)
	return event.OutcomeOK
}

// Place moves item from actor's storage into the world at the fixed offset from actor
// Every check runs before any component is written; a failed placement leaves the world unchanged
func Place(w *engine.World, item, actor core.Entity) event.Outcome {
	sp, ok := w.StoragePlacement(item)
	if !ok || sp.Container != actor {
		return event.OutcomeNotInInventory
	}
	actorWP := w.MustWorldPlacement(actor)
	pos := actorWP.Position.Add(w.Resource.Tuning.PlaceOffset)
	if !OnWalkableSurface(w, pos) {
		return event.OutcomeNonPlaceable
	}
	box := vmath.BoxAround(pos, itemHalf(w, item))
	if _, hit := FirstCollision(w, box, actor, item); hit {
		return event.OutcomeCollidingItem
	}

	w.SetInWorld(item, pos, box)
	return event.OutcomeOK
}

// Examine returns the description text unchanged
func Examine(w *engine.World, e core.Entity) (string, bool) {
	d, ok := w.Components.Description.Get(e)
	if !ok {
		return "", false
	}
	return d.Text, true
}

// Talk returns the speaker's next dialogue line and advances the cursor, wrapping to the start
func Talk(w *engine.World, speaker core.Entity) (string, bool) {
	d, ok := w.Components.Dialogue.Get(speaker)
	if !ok || len(d.Lines) == 0 {
		return "", false
	}
	idx := d.Index % len(d.Lines)
	line := d.Lines[idx]
	w.Components.Dialogue.Set(speaker, component.DialogueComponent{
		Lines: d.Lines,
		Index: (idx + 1) % len(d.Lines),
	})
	return line, true
}
