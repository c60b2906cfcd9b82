package input

import (
	"time"

	"github.com/go-gl/mathgl/mgl32"
)

// Accumulator collects device events between ticks and hands out one Snapshot per tick
// Owned by the front-end goroutine that feeds it and the tick loop that samples it; not thread-safe
type Accumulator struct {
	holdWindow time.Duration

	lastSeen   [KeyCount]time.Time // Last press or repeat
	releasable [KeyCount]bool      // Device reports releases; held ignores the window
	released   [KeyCount]bool      // Explicit release seen since the last press
	pressed    [KeyCount]bool      // Edge since last snapshot

	cursorNDC   mgl32.Vec2
	cursorUI    mgl32.Vec2
	cursorValid bool
	scroll      float32
}

// NewAccumulator creates an accumulator; keys without release events stay held for holdWindow
func NewAccumulator(holdWindow time.Duration) *Accumulator {
	return &Accumulator{holdWindow: holdWindow}
}

// Press records a press or auto-repeat of k
// Repeats refresh the hold window without producing a new edge
func (a *Accumulator) Press(k Key, now time.Time) {
	if k >= KeyCount {
		return
	}
	if !a.isHeld(k, now) {
		a.pressed[k] = true
	}
	a.lastSeen[k] = now
	a.released[k] = false
}

// TrackRelease marks keys whose device reports releases
// Such keys stay held from a press until Release, however long that takes
func (a *Accumulator) TrackRelease(keys ...Key) {
	for _, k := range keys {
		if k < KeyCount {
			a.releasable[k] = true
		}
	}
}

// Release records an explicit release and marks k as release-tracked
func (a *Accumulator) Release(k Key) {
	if k >= KeyCount {
		return
	}
	a.releasable[k] = true
	a.released[k] = true
}

// Cursor records the latest cursor position in both spaces
func (a *Accumulator) Cursor(ndc, ui mgl32.Vec2, valid bool) {
	a.cursorNDC = ndc
	a.cursorUI = ui
	a.cursorValid = valid
}

// Scroll accumulates wheel movement
func (a *Accumulator) Scroll(delta float32) {
	a.scroll += delta
}

// Snapshot produces the tick's input and resets per-tick edges and scroll
func (a *Accumulator) Snapshot(now time.Time) Snapshot {
	var s Snapshot
	for k := Key(0); k < KeyCount; k++ {
		held := a.isHeld(k, now)
		s.Keys[k] = KeyState{
			Held:    held || a.pressed[k],
			Pressed: a.pressed[k],
		}
		a.pressed[k] = false
	}
	s.CursorNDC = a.cursorNDC
	s.CursorUI = a.cursorUI
	s.CursorValid = a.cursorValid
	s.Scroll = a.scroll
	a.scroll = 0
	return s
}

func (a *Accumulator) isHeld(k Key, now time.Time) bool {
	if a.released[k] || a.lastSeen[k].IsZero() {
		return false
	}
	if a.releasable[k] {
		return true
	}
	return now.Sub(a.lastSeen[k]) <= a.holdWindow
}
