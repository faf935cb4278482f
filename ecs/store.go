package ecs

// Store holds at most one component value of type T per entity. Insertion
// overwrites, removal is idempotent, and absence is a normal result rather
// than an error.
type Store[T any] struct {
	data map[Entity]*T
}

// NewStore creates an empty component store.
func NewStore[T any]() *Store[T] {
	return &Store[T]{data: make(map[Entity]*T)}
}

// Insert associates value with entity, replacing any previous value.
func (s *Store[T]) Insert(entity Entity, value T) {
	s.data[entity] = &value
}

// Get returns a copy of the component for entity, if present.
func (s *Store[T]) Get(entity Entity) (T, bool) {
	if v, ok := s.data[entity]; ok {
		return *v, true
	}
	var zero T
	return zero, false
}

// Ref returns a mutable reference to the component for entity, or nil if the
// entity has no component in this store.
func (s *Store[T]) Ref(entity Entity) *T {
	return s.data[entity]
}

// Contains reports whether entity has a component in this store.
func (s *Store[T]) Contains(entity Entity) bool {
	_, ok := s.data[entity]
	return ok
}

// Remove deletes the component for entity. Removing an absent entity is a
// no-op.
func (s *Store[T]) Remove(entity Entity) {
	delete(s.data, entity)
}

// Len returns the number of occupied entries.
func (s *Store[T]) Len() int {
	return len(s.data)
}

// Each calls fn for every occupied entry until fn returns false. The order
// is store-defined but consistent within a single pass.
func (s *Store[T]) Each(fn func(Entity, *T) bool) {
	for e, v := range s.data {
		if !fn(e, v) {
			return
		}
	}
}

// Entities returns a snapshot of all entities present in the store. Queries
// iterate the snapshot so that probing other stores cannot disturb the pass.
func (s *Store[T]) Entities() []Entity {
	out := make([]Entity, 0, len(s.data))
	for e := range s.data {
		out = append(out, e)
	}
	return out
}

// anyStore is the type-erased view of a Store the world uses for lifecycle
// bookkeeping.
type anyStore interface {
	remove(Entity)
	contains(Entity) bool
	length() int
}

func (s *Store[T]) remove(entity Entity)        { s.Remove(entity) }
func (s *Store[T]) contains(entity Entity) bool { return s.Contains(entity) }
func (s *Store[T]) length() int                 { return s.Len() }
