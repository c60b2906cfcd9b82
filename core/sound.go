package core

// SoundType represents different sound effects
type SoundType int

const (
	SoundBump   SoundType = iota // Movement blocked by another hitbox
	SoundPickup                  // Item moved into storage
	SoundPlace                   // Item placed back into the world
	SoundError                   // Rejected pickup or placement
	SoundTalk                    // Dialogue line advanced
	SoundTypeCount
)

var soundNames = [SoundTypeCount]string{
	SoundBump:   "bump",
	SoundPickup: "pickup",
	SoundPlace:  "place",
	SoundError:  "error",
	SoundTalk:   "talk",
}

func (s SoundType) String() string {
	if s < 0 || s >= SoundTypeCount {
		return "unknown"
	}
	return soundNames[s]
}
