package engine

import (
	"github.com/lixenwraith/trinket/core"
	"github.com/lixenwraith/trinket/event"
	"github.com/lixenwraith/trinket/input"
)

// ClaimKind names one claimable input
type ClaimKind uint8

const (
	ClaimLeftClick ClaimKind = iota
	ClaimRightClick
	ClaimInteract
)

// ClaimedInput records inputs already consumed this tick
// Passed by reference through the frame; later systems skip claimed inputs
type ClaimedInput struct {
	LeftClick  bool
	RightClick bool
	Interact   bool
}

func (c *ClaimedInput) flag(k ClaimKind) *bool {
	switch k {
	case ClaimLeftClick:
		return &c.LeftClick
	case ClaimRightClick:
		return &c.RightClick
	case ClaimInteract:
		return &c.Interact
	}
	return nil
}

// Claim marks k consumed, returns false if it was already claimed
func (c *ClaimedInput) Claim(k ClaimKind) bool {
	f := c.flag(k)
	if f == nil || *f {
		return false
	}
	*f = true
	return true
}

// Claimed reports whether k has been consumed
func (c *ClaimedInput) Claimed(k ClaimKind) bool {
	f := c.flag(k)
	return f != nil && *f
}

// Frame is the per-tick shared state, rebuilt at the start of every tick
type Frame struct {
	Tick    uint64
	Input   *input.Snapshot
	Claimed ClaimedInput

	// CursorHits are in-world entities under the cursor ray, in store order
	CursorHits []core.Entity
	// Nearest is the cursor hit closest to the player by 3-D distance, NoEntity if none
	Nearest core.Entity

	// Requests submitted by the UI layer for this tick
	Requests []event.Request

	Effects *event.EffectQueue
}

func newFrame() Frame {
	return Frame{
		Input:      &input.Snapshot{},
		CursorHits: make([]core.Entity, 0, 8),
		Requests:   make([]event.Request, 0, 4),
		Effects:    event.NewEffectQueue(),
	}
}

// reset clears transient fields in place
func (f *Frame) reset(tick uint64, snapshot *input.Snapshot) {
	f.Tick = tick
	if snapshot == nil {
		snapshot = &input.Snapshot{}
	}
	f.Input = snapshot
	f.Claimed = ClaimedInput{}
	f.CursorHits = f.CursorHits[:0]
	f.Nearest = core.NoEntity
	f.Requests = f.Requests[:0]
	f.Effects.Reset()
}

// Emit stamps the tick and queues an effect
func (f *Frame) Emit(e event.Effect) {
	e.Tick = f.Tick
	f.Effects.Push(e)
}
