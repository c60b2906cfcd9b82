package engine

import (
	"sync"

	"go.uber.org/zap"

	"github.com/lixenwraith/trinket/config"
	"github.com/lixenwraith/trinket/core"
	"github.com/lixenwraith/trinket/event"
	"github.com/lixenwraith/trinket/input"
	"github.com/lixenwraith/trinket/parameter"
)

// World contains all entities and their components using typed stores
type World struct {
	mu           sync.Mutex // Guards systems and pending
	nextEntityID core.Entity
	entities     []core.Entity

	Components ComponentStore
	Resource   Resource

	systems []System
	pending []event.Request

	tick  uint64
	frame Frame

	updateMutex sync.Mutex
}

// NewWorld creates an empty world; a nil logger is replaced with a no-op logger
func NewWorld(tuning config.Tuning, logger *zap.Logger) *World {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &World{
		nextEntityID: 1,
		Components:   newComponentStore(),
		Resource: Resource{
			Tuning: tuning,
			Logger: logger,
		},
		systems: make([]System, 0, 8),
		frame:   newFrame(),
	}
}

// CreateEntity reserves a new entity ID, IDs are never reused
func (w *World) CreateEntity() core.Entity {
	id := w.nextEntityID
	w.nextEntityID++
	w.entities = append(w.entities, id)
	return id
}

// Entities returns a copy of all entity IDs in creation order
func (w *World) Entities() []core.Entity {
	result := make([]core.Entity, len(w.entities))
	copy(result, w.entities)
	return result
}

// Exists reports whether e was created by this world
func (w *World) Exists(e core.Entity) bool {
	return e.Valid() && e < w.nextEntityID
}

// AddSystem adds a system to the world and sorts by priority
func (w *World) AddSystem(system System) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.systems = append(w.systems, system)

	// Stable sort by priority (bubble sort, small N)
	for i := 0; i < len(w.systems)-1; i++ {
		for j := 0; j < len(w.systems)-i-1; j++ {
			if w.systems[j].Priority() > w.systems[j+1].Priority() {
				w.systems[j], w.systems[j+1] = w.systems[j+1], w.systems[j]
			}
		}
	}
}

// Systems returns a copy of all registered systems in run order
func (w *World) Systems() []System {
	w.mu.Lock()
	defer w.mu.Unlock()
	result := make([]System, len(w.systems))
	copy(result, w.systems)
	return result
}

// Submit queues a request for the next tick, safe to call from any goroutine
// Returns false when the queue is full
func (w *World) Submit(req event.Request) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if len(w.pending) >= parameter.MaxRequestsPerTick*4 {
		return false
	}
	w.pending = append(w.pending, req)
	return true
}

// Tick advances the simulation by one step and returns the frame state it produced
// The returned frame is reused by the next tick
func (w *World) Tick(snapshot *input.Snapshot) *Frame {
	w.updateMutex.Lock()
	defer w.updateMutex.Unlock()

	w.tick++
	w.frame.reset(w.tick, snapshot)

	w.mu.Lock()
	n := min(len(w.pending), parameter.MaxRequestsPerTick)
	w.frame.Requests = append(w.frame.Requests, w.pending[:n]...)
	w.pending = append(w.pending[:0], w.pending[n:]...)
	systems := make([]System, len(w.systems))
	copy(systems, w.systems)
	w.mu.Unlock()

	for _, s := range systems {
		s.Update(&w.frame)
	}
	return &w.frame
}

// TickCount returns the number of completed ticks
func (w *World) TickCount() uint64 {
	return w.tick
}
