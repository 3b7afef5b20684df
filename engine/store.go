package engine

import (
	"github.com/lixenwraith/corridor/core"
)

// Store is a generic container for a specific component type T
// Uses sparse set pattern for cache-friendly iteration
// Not synchronized: stores are touched only from the simulation goroutine
type Store[T any] struct {
	components map[core.Entity]T
	entities   []core.Entity // Array of entities that have this component
}

// NewStore creates a new component store for type T
func NewStore[T any]() *Store[T] {
	return &Store[T]{
		components: make(map[core.Entity]T),
		entities:   make([]core.Entity, 0, 64),
	}
}

// SetComponent inserts or updates a component for an entity
func (s *Store[T]) SetComponent(e core.Entity, val T) {
	if _, exists := s.components[e]; !exists {
		s.entities = append(s.entities, e)
	}
	s.components[e] = val
}

// GetComponent retrieves a component for an entity
func (s *Store[T]) GetComponent(e core.Entity) (T, bool) {
	val, ok := s.components[e]
	return val, ok
}

// RemoveEntity deletes a component from an entity
// Preserves insertion order of the remaining entities so iteration stays deterministic
func (s *Store[T]) RemoveEntity(e core.Entity) {
	if _, exists := s.components[e]; !exists {
		return
	}
	delete(s.components, e)
	for i, entity := range s.entities {
		if entity == e {
			s.entities = append(s.entities[:i], s.entities[i+1:]...)
			break
		}
	}
}

// HasEntity checks if entity has this component
func (s *Store[T]) HasEntity(e core.Entity) bool {
	_, ok := s.components[e]
	return ok
}

// GetAllEntities returns all entities with this component type in insertion order
// The returned slice is a copy, safe to iterate while mutating the store
func (s *Store[T]) GetAllEntities() []core.Entity {
	result := make([]core.Entity, len(s.entities))
	copy(result, s.entities)
	return result
}

// CountEntities returns number of entities with this component
func (s *Store[T]) CountEntities() int {
	return len(s.entities)
}

// ClearAllComponents removes all components from this store
func (s *Store[T]) ClearAllComponents() {
	s.components = make(map[core.Entity]T)
	s.entities = make([]core.Entity, 0, 64)
}

// RemoveComponent satisfies AnyStore
func (s *Store[T]) RemoveComponent(e core.Entity) { s.RemoveEntity(e) }

// HasComponent satisfies AnyStore
func (s *Store[T]) HasComponent(e core.Entity) bool { return s.HasEntity(e) }

// CountEntity satisfies AnyStore
func (s *Store[T]) CountEntity() int { return s.CountEntities() }

// ClearAllComponent satisfies AnyStore
func (s *Store[T]) ClearAllComponent() { s.ClearAllComponents() }
