package system

import (
	"github.com/lixenwraith/trinket/core"
	"github.com/lixenwraith/trinket/engine"
	"github.com/lixenwraith/trinket/event"
	"github.com/lixenwraith/trinket/parameter"
)

// AudioSystem maps this tick's effects to sounds
// Reads the queue without draining it; the effect system runs after
type AudioSystem struct {
	engine.SystemBase
}

// NewAudioSystem creates an audio system; a world without an audio player makes it a no-op
func NewAudioSystem(world *engine.World) *AudioSystem {
	return &AudioSystem{SystemBase: engine.NewSystemBase(world, "audio")}
}

func (s *AudioSystem) Name() string {
	return "audio"
}

func (s *AudioSystem) Priority() int {
	return parameter.PriorityAudio
}

func (s *AudioSystem) Update(f *engine.Frame) {
	player := s.Resource.Audio
	if player == nil || player.IsMuted() {
		return
	}
	for _, e := range f.Effects.Peek() {
		if sound, ok := SoundFor(e); ok {
			player.Play(sound)
		}
	}
}

// SoundFor returns the sound an effect triggers, false for silent effects
func SoundFor(e event.Effect) (core.SoundType, bool) {
	switch e.Kind {
	case event.EffectBump:
		return core.SoundBump, true
	case event.EffectPickup:
		if e.Outcome.OK() {
			return core.SoundPickup, true
		}
		return core.SoundError, true
	case event.EffectPlace:
		if e.Outcome.OK() {
			return core.SoundPlace, true
		}
		return core.SoundError, true
	case event.EffectDialogue:
		return core.SoundTalk, true
	}
	return 0, false
}
