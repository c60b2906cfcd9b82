package audio

import (
	"github.com/lixenwraith/trinket/core"
	"github.com/lixenwraith/trinket/parameter"
)

// Config holds audio settings
type Config struct {
	Enabled       bool
	MasterVolume  float64 // 0.0-1.0
	EffectVolumes [core.SoundTypeCount]float64
	SampleRate    int
}

// DefaultConfig returns audio enabled at moderate volume
func DefaultConfig() *Config {
	cfg := &Config{
		Enabled:      true,
		MasterVolume: 0.5,
		SampleRate:   parameter.AudioSampleRate,
	}
	cfg.EffectVolumes[core.SoundBump] = 0.6
	cfg.EffectVolumes[core.SoundPickup] = 0.8
	cfg.EffectVolumes[core.SoundPlace] = 0.7
	cfg.EffectVolumes[core.SoundError] = 0.5
	cfg.EffectVolumes[core.SoundTalk] = 0.6
	return cfg
}
