package event

import (
	"github.com/lixenwraith/trinket/core"
)

// EffectKind identifies what produced an effect
type EffectKind uint8

const (
	// EffectPickup carries the outcome of a pickup attempt | Subject: item
	EffectPickup EffectKind = iota

	// EffectPlace carries the outcome of a placement attempt | Subject: item
	EffectPlace

	// EffectBump fires when a move is rejected by a hitbox collision | Subject: mover
	EffectBump

	// EffectExamine carries description text unchanged | Subject: examined entity
	EffectExamine

	// EffectDialogue carries one dialogue line | Subject: speaker
	EffectDialogue
)

func (k EffectKind) String() string {
	switch k {
	case EffectPickup:
		return "pickup"
	case EffectPlace:
		return "place"
	case EffectBump:
		return "bump"
	case EffectExamine:
		return "examine"
	case EffectDialogue:
		return "dialogue"
	default:
		return "unknown"
	}
}

// Effect is one typed outcome emitted during a tick
// Text is payload passed through from components, never formatted by the core
type Effect struct {
	Kind    EffectKind
	Outcome Outcome
	Subject core.Entity
	Actor   core.Entity
	Text    string
	Tick    uint64
}
