package engine

import (
	"go.uber.org/zap"

	"github.com/lixenwraith/trinket/config"
	"github.com/lixenwraith/trinket/core"
	"github.com/lixenwraith/trinket/event"
)

// Resource holds singleton world resources, accessed via World.Resource
type Resource struct {
	Camera *Camera
	Tuning config.Tuning
	Logger *zap.Logger

	// Player is the entity movement and interaction act for
	Player core.Entity

	// Bridged collaborators, nil when absent
	Audio     AudioPlayer
	Presenter Presenter
}

// AudioPlayer is the sound collaborator driven by the audio system
type AudioPlayer interface {
	// Play requests a sound, returns false if dropped
	Play(sound core.SoundType) bool
	IsMuted() bool
	ToggleMute() bool
}

// Presenter receives the drained effects of each tick
type Presenter interface {
	Present(tick uint64, effects []event.Effect)
}
