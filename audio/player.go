// Package audio plays simulation sounds through the beep speaker.
// Without a usable output device the player runs silent and every Play is dropped.
package audio

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"go.uber.org/zap"

	"github.com/lixenwraith/trinket/core"
	"github.com/lixenwraith/trinket/parameter"
)

// Player implements engine.AudioPlayer on top of a beep mixer
type Player struct {
	config *Config
	mixer  *beep.Mixer
	log    *zap.Logger

	running    atomic.Bool
	muted      atomic.Bool
	silentMode atomic.Bool

	mu       sync.Mutex // Guards lastPlay
	lastPlay [core.SoundTypeCount]time.Time
	now      func() time.Time

	played  atomic.Uint64
	dropped atomic.Uint64
}

// NewPlayer creates a stopped player; a nil config uses DefaultConfig
func NewPlayer(cfg *Config, log *zap.Logger) *Player {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if log == nil {
		log = zap.NewNop()
	}
	p := &Player{
		config: cfg,
		mixer:  &beep.Mixer{},
		log:    log,
		now:    time.Now,
	}
	p.muted.Store(!cfg.Enabled)
	return p
}

// Start initializes the speaker and attaches the mixer
// A failed speaker init switches to silent mode and is not returned as an error
func (p *Player) Start() error {
	if p.running.Load() {
		return nil
	}
	rate := beep.SampleRate(p.config.SampleRate)
	if err := speaker.Init(rate, rate.N(parameter.AudioBufferDuration)); err != nil {
		p.log.Warn("speaker unavailable, audio disabled", zap.Error(err))
		p.silentMode.Store(true)
		p.running.Store(true)
		return nil
	}
	speaker.Play(p.mixer)
	p.running.Store(true)
	return nil
}

// Stop clears pending sounds and closes the speaker
func (p *Player) Stop() {
	if !p.running.CompareAndSwap(true, false) {
		return
	}
	if p.silentMode.Load() {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
}

// Play queues a sound, returns false when dropped
// Repeats of one sound inside MinSoundGap are dropped so a held blocked move does not buzz every tick
func (p *Player) Play(st core.SoundType) bool {
	if st < 0 || st >= core.SoundTypeCount {
		return false
	}
	if !p.running.Load() || p.muted.Load() || p.silentMode.Load() {
		p.dropped.Add(1)
		return false
	}

	p.mu.Lock()
	now := p.now()
	if last := p.lastPlay[st]; !last.IsZero() && now.Sub(last) < parameter.MinSoundGap {
		p.mu.Unlock()
		p.dropped.Add(1)
		return false
	}
	p.lastPlay[st] = now
	p.mu.Unlock()

	streamer := GetSoundEffect(st, p.config)
	if streamer == nil {
		return false
	}
	speaker.Lock()
	p.mixer.Add(streamer)
	speaker.Unlock()
	p.played.Add(1)
	return true
}

// ToggleMute toggles mute state, returns true if now muted
func (p *Player) ToggleMute() bool {
	muted := !p.muted.Load()
	p.muted.Store(muted)
	return muted
}

// IsMuted returns current mute state
func (p *Player) IsMuted() bool {
	return p.muted.Load()
}

// IsSilent reports whether the speaker failed to initialize
func (p *Player) IsSilent() bool {
	return p.silentMode.Load()
}

// Stats returns played and dropped counts
func (p *Player) Stats() (played, dropped uint64) {
	return p.played.Load(), p.dropped.Load()
}
