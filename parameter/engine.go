package parameter

import "time"

// Game Loop Timing
const (
	// TickInterval is the fixed simulation step driven by the frame pump (~60 Hz)
	TickInterval = 16 * time.Millisecond
)

// Per-tick Limits
const (
	// EffectQueueSize is the fixed capacity of the effect ring buffer
	EffectQueueSize = 256

	// EffectBufferMask is the bitmask for fast modulo operations (256 - 1)
	EffectBufferMask = 255

	// MaxRequestsPerTick caps queued UI requests consumed in one tick; the rest wait
	MaxRequestsPerTick = 16
)
