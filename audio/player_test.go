package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/trinket/core"
	"github.com/lixenwraith/trinket/parameter"
)

// runningPlayer skips speaker init so tests never touch an audio device
func runningPlayer(t *testing.T) (*Player, *time.Time) {
	t.Helper()
	p := NewPlayer(nil, nil)
	p.running.Store(true)
	clock := time.Unix(1000, 0)
	p.now = func() time.Time { return clock }
	return p, &clock
}

func TestPlayer_DropsWhenStopped(t *testing.T) {
	p := NewPlayer(nil, nil)
	assert.False(t, p.Play(core.SoundPickup))
	_, dropped := p.Stats()
	assert.Equal(t, uint64(1), dropped)

	// Stop without Start is a no-op
	p.Stop()
}

func TestPlayer_Mute(t *testing.T) {
	p, _ := runningPlayer(t)
	assert.False(t, p.IsMuted())
	assert.True(t, p.ToggleMute())
	assert.False(t, p.Play(core.SoundBump))
	assert.False(t, p.ToggleMute())
	assert.True(t, p.Play(core.SoundBump))

	disabled := NewPlayer(&Config{Enabled: false, SampleRate: parameter.AudioSampleRate}, nil)
	assert.True(t, disabled.IsMuted())
}

func TestPlayer_MinGap(t *testing.T) {
	p, clock := runningPlayer(t)

	require.True(t, p.Play(core.SoundBump))
	assert.False(t, p.Play(core.SoundBump), "repeat inside gap is dropped")
	assert.True(t, p.Play(core.SoundPickup), "gap is per sound")

	*clock = clock.Add(parameter.MinSoundGap)
	assert.True(t, p.Play(core.SoundBump))

	played, dropped := p.Stats()
	assert.Equal(t, uint64(3), played)
	assert.Equal(t, uint64(1), dropped)
	assert.Equal(t, 3, p.mixer.Len())
}

func TestPlayer_InvalidSound(t *testing.T) {
	p, _ := runningPlayer(t)
	assert.False(t, p.Play(core.SoundTypeCount))
	assert.False(t, p.Play(-1))
}

// TestSoundEffects_Length drains every generator and checks it ends near its nominal duration
func TestSoundEffects_Length(t *testing.T) {
	cfg := DefaultConfig()
	rate := beep.SampleRate(cfg.SampleRate)
	want := map[core.SoundType]time.Duration{
		core.SoundBump:   parameter.BumpSoundDuration,
		core.SoundPickup: parameter.PickupSoundDuration,
		core.SoundPlace:  parameter.PlaceSoundDuration,
		core.SoundError:  parameter.ErrorSoundDuration,
		core.SoundTalk:   parameter.TalkSoundDuration,
	}
	for st, d := range want {
		t.Run(st.String(), func(t *testing.T) {
			s := GetSoundEffect(st, cfg)
			require.NotNil(t, s)

			buf := make([][2]float64, 512)
			total := 0
			peak := 0.0
			for {
				n, ok := s.Stream(buf)
				for i := 0; i < n; i++ {
					peak = max(peak, buf[i][0], -buf[i][0])
				}
				total += n
				if !ok {
					break
				}
			}
			assert.InDelta(t, rate.N(d), total, 512)
			assert.Greater(t, peak, 0.0)
			assert.LessOrEqual(t, peak, 1.0)
		})
	}
	assert.Nil(t, GetSoundEffect(core.SoundTypeCount, cfg))
}

func TestEnvelope_Shape(t *testing.T) {
	rate := beep.SampleRate(1000)
	s := NewEnvelope(NewOscillator(0, time.Second, WaveSquare, rate), time.Second, 100*time.Millisecond, 100*time.Millisecond, rate)
	buf := make([][2]float64, 1000)
	n, _ := s.Stream(buf)
	require.Equal(t, 1000, n)
	assert.Equal(t, 0.0, buf[0][0])
	assert.InDelta(t, 0.5, buf[50][0], 1e-9)
	assert.Equal(t, 1.0, buf[500][0])
	assert.InDelta(t, 0.5, buf[950][0], 1e-9)
}
