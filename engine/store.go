package engine

import (
	"github.com/lixenwraith/trinket/core"
)

// Store is a generic container for a specific component type T
// Sparse set: map for O(1) lookup, dense entity slice for iteration, index map for O(1) removal
// Not synchronized: the simulation has a single writer per tick by construction
type Store[T any] struct {
	components map[core.Entity]T
	entities   []core.Entity       // Array of entities that have this component
	index      map[core.Entity]int // Position of each entity in entities
}

// NewStore creates a new component store for type T
func NewStore[T any]() *Store[T] {
	return &Store[T]{
		components: make(map[core.Entity]T),
		entities:   make([]core.Entity, 0, 64),
		index:      make(map[core.Entity]int),
	}
}

// Set inserts or overwrites a component for an entity
func (s *Store[T]) Set(e core.Entity, val T) {
	if _, exists := s.components[e]; !exists {
		s.index[e] = len(s.entities)
		s.entities = append(s.entities, e)
	}
	s.components[e] = val
}

// Get retrieves a component for an entity
func (s *Store[T]) Get(e core.Entity) (T, bool) {
	val, ok := s.components[e]
	return val, ok
}

// Remove deletes a component from an entity, no-op if absent
func (s *Store[T]) Remove(e core.Entity) {
	i, exists := s.index[e]
	if !exists {
		return
	}
	last := len(s.entities) - 1
	moved := s.entities[last]
	s.entities[i] = moved
	s.index[moved] = i
	s.entities = s.entities[:last]

	delete(s.index, e)
	delete(s.components, e)
}

// Has checks if entity has this component
func (s *Store[T]) Has(e core.Entity) bool {
	_, ok := s.components[e]
	return ok
}

// All returns a copy of all entities with this component type
func (s *Store[T]) All() []core.Entity {
	result := make([]core.Entity, len(s.entities))
	copy(result, s.entities)
	return result
}

// Count returns number of entities with this component
func (s *Store[T]) Count() int {
	return len(s.entities)
}

// Clear removes all components from this store
func (s *Store[T]) Clear() {
	s.components = make(map[core.Entity]T)
	s.entities = make([]core.Entity, 0, 64)
	s.index = make(map[core.Entity]int)
}

// Each visits every entity with its component; fn must not add or remove components of this type
func (s *Store[T]) Each(fn func(e core.Entity, val T)) {
	for _, e := range s.entities {
		fn(e, s.components[e])
	}
}

// Filter returns entities whose component satisfies pred, O(n)
func (s *Store[T]) Filter(pred func(e core.Entity, val T) bool) []core.Entity {
	var result []core.Entity
	for _, e := range s.entities {
		if pred(e, s.components[e]) {
			result = append(result, e)
		}
	}
	return result
}
