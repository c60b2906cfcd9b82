package system

import (
	"go.uber.org/zap"

	"github.com/lixenwraith/trinket/core"
	"github.com/lixenwraith/trinket/engine"
	"github.com/lixenwraith/trinket/event"
	"github.com/lixenwraith/trinket/input"
	"github.com/lixenwraith/trinket/logging"
	"github.com/lixenwraith/trinket/parameter"
)

// InteractionSystem runs queued requests and the interact shortcuts against the nearest pick
// Interact key and left click: pickup a storable item, otherwise talk, otherwise examine
// Right click: examine
type InteractionSystem struct {
	engine.SystemBase
}

// NewInteractionSystem creates the pickup/placement driver
func NewInteractionSystem(world *engine.World) *InteractionSystem {
	return &InteractionSystem{SystemBase: engine.NewSystemBase(world, "interaction")}
}

func (s *InteractionSystem) Name() string {
	return "interaction"
}

func (s *InteractionSystem) Priority() int {
	return parameter.PriorityInteraction
}

func (s *InteractionSystem) Update(f *engine.Frame) {
	for _, req := range f.Requests {
		s.handleRequest(f, req)
	}

	if f.Input.Pressed(input.KeyInteract) && f.Claimed.Claim(engine.ClaimInteract) {
		s.interact(f, f.Nearest)
	}
	if f.Input.Pressed(input.KeyLeftClick) && f.Claimed.Claim(engine.ClaimLeftClick) {
		s.interact(f, f.Nearest)
	}
	if f.Input.Pressed(input.KeyRightClick) && f.Claimed.Claim(engine.ClaimRightClick) {
		s.examine(f, f.Nearest)
	}
}

func (s *InteractionSystem) handleRequest(f *engine.Frame, req event.Request) {
	switch req.Kind {
	case event.RequestPickup:
		s.pickup(f, req.Target)
	case event.RequestPlace:
		s.place(f, req.Target)
	case event.RequestExamine:
		s.examine(f, req.Target)
	case event.RequestTalk:
		s.talk(f, req.Target)
	}
}

// interact picks the most specific action the target supports
func (s *InteractionSystem) interact(f *engine.Frame, target core.Entity) {
	if !target.Valid() {
		return
	}
	switch {
	case s.Component.Storable.Has(target):
		s.pickup(f, target)
	case s.Component.Dialogue.Has(target):
		s.talk(f, target)
	default:
		s.examine(f, target)
	}
}

func (s *InteractionSystem) pickup(f *engine.Frame, item core.Entity) {
	actor := s.Resource.Player
	outcome := Pickup(s.World, item, actor)
	f.Emit(event.Effect{Kind: event.EffectPickup, Outcome: outcome, Subject: item, Actor: actor})
	s.Log.Debug("pickup",
		logging.Entity("entity", item),
		zap.Stringer("outcome", outcome))
}

func (s *InteractionSystem) place(f *engine.Frame, item core.Entity) {
	actor := s.Resource.Player
	outcome := Place(s.World, item, actor)
	f.Emit(event.Effect{Kind: event.EffectPlace, Outcome: outcome, Subject: item, Actor: actor})
	s.Log.Debug("place",
		logging.Entity("entity", item),
		zap.Stringer("outcome", outcome))
}

func (s *InteractionSystem) examine(f *engine.Frame, target core.Entity) {
	text, ok := Examine(s.World, target)
	if !ok {
		return
	}
	f.Emit(event.Effect{Kind: event.EffectExamine, Subject: target, Actor: s.Resource.Player, Text: text})
}

func (s *InteractionSystem) talk(f *engine.Frame, speaker core.Entity) {
	line, ok := Talk(s.World, speaker)
	if !ok {
		return
	}
	f.Emit(event.Effect{Kind: event.EffectDialogue, Subject: speaker, Actor: s.Resource.Player, Text: line})
}
