package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/trinket/core"
	"github.com/lixenwraith/trinket/parameter"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates a fixed-length raw wave
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies linear attack/release to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope shapes s with an attack ramp and a release tail
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	releaseStart := max(e.totalSamples-e.releaseSamples, e.attackSamples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		} else if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = math.Max(0, float64(e.totalSamples-e.position)/float64(e.releaseSamples))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s in a linear gain; math.Log2(0) is -Inf so zero means silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// tone is an enveloped oscillator
func tone(freq float64, wave WaveType, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return NewEnvelope(NewOscillator(freq, duration, wave, rate), duration, attack, release, rate)
}

// CreateBumpSound is a dull low thud for blocked movement
func CreateBumpSound(rate beep.SampleRate) beep.Streamer {
	return beep.Mix(
		newVolume(tone(70, WaveSine, parameter.BumpSoundDuration, parameter.BumpSoundAttack, parameter.BumpSoundRelease, rate), 0.8),
		newVolume(tone(0, WaveNoise, parameter.BumpSoundDuration, parameter.BumpSoundAttack, parameter.BumpSoundRelease, rate), 0.2),
	)
}

// CreatePickupSound is a rising two-note chime
func CreatePickupSound(rate beep.SampleRate) beep.Streamer {
	half := parameter.PickupSoundDuration / 2
	return beep.Seq(
		tone(659.25, WaveSquare, half, parameter.PickupSoundAttack, half/2, rate),
		tone(987.77, WaveSquare, half, parameter.PickupSoundAttack, parameter.PickupSoundRelease, rate),
	)
}

// CreatePlaceSound is a falling two-note chime
func CreatePlaceSound(rate beep.SampleRate) beep.Streamer {
	half := parameter.PlaceSoundDuration / 2
	return beep.Seq(
		tone(783.99, WaveSine, half, parameter.PlaceSoundAttack, half/2, rate),
		tone(523.25, WaveSine, half, parameter.PlaceSoundAttack, parameter.PlaceSoundRelease, rate),
	)
}

// CreateErrorSound is a short harsh buzz for rejected actions
func CreateErrorSound(rate beep.SampleRate) beep.Streamer {
	return tone(100, WaveSaw, parameter.ErrorSoundDuration, parameter.ErrorSoundAttack, parameter.ErrorSoundRelease, rate)
}

// CreateTalkSound is a soft blip when a dialogue line appears
func CreateTalkSound(rate beep.SampleRate) beep.Streamer {
	return beep.Mix(
		newVolume(tone(440, WaveSine, parameter.TalkSoundDuration, parameter.TalkSoundAttack, parameter.TalkSoundRelease, rate), 0.7),
		newVolume(tone(880, WaveSine, parameter.TalkSoundDuration, parameter.TalkSoundAttack, parameter.TalkSoundRelease/2, rate), 0.3),
	)
}

// GetSoundEffect returns a fresh streamer for st scaled by the configured volumes
func GetSoundEffect(st core.SoundType, cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	var s beep.Streamer
	switch st {
	case core.SoundBump:
		s = CreateBumpSound(rate)
	case core.SoundPickup:
		s = CreatePickupSound(rate)
	case core.SoundPlace:
		s = CreatePlaceSound(rate)
	case core.SoundError:
		s = CreateErrorSound(rate)
	case core.SoundTalk:
		s = CreateTalkSound(rate)
	default:
		return nil
	}
	return newVolume(s, cfg.EffectVolumes[st]*cfg.MasterVolume)
}
