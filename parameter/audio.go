package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 50 * time.Millisecond

	// MinSoundGap suppresses repeats of the same sound (bump fires every blocked tick)
	MinSoundGap = 180 * time.Millisecond
)

// Bump Sound
const (
	BumpSoundDuration = 90 * time.Millisecond
	BumpSoundAttack   = 5 * time.Millisecond
	BumpSoundRelease  = 40 * time.Millisecond
)

// Pickup Sound
const (
	PickupSoundDuration = 220 * time.Millisecond
	PickupSoundAttack   = 5 * time.Millisecond
	PickupSoundRelease  = 90 * time.Millisecond // Tail of the second note
)

// Place Sound
const (
	PlaceSoundDuration = 160 * time.Millisecond
	PlaceSoundAttack   = 5 * time.Millisecond
	PlaceSoundRelease  = 60 * time.Millisecond // Tail of the second note
)

// Error Sound
const (
	ErrorSoundDuration = 80 * time.Millisecond
	ErrorSoundAttack   = 5 * time.Millisecond
	ErrorSoundRelease  = 20 * time.Millisecond
)

// Talk Sound
const (
	TalkSoundDuration = 120 * time.Millisecond
	TalkSoundAttack   = 10 * time.Millisecond
	TalkSoundRelease  = 60 * time.Millisecond
)
