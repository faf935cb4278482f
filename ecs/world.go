package ecs

import "reflect"

// World owns every component store plus the live-entity set for one game or
// editor session. It is designed for a single logical owner per frame; any
// cross-context sharing must be serialized by the caller.
type World struct {
	registry *Registry
	stores   map[reflect.Type]anyStore
	alive    map[Entity]struct{}
	events   *EventManager
}

// NewWorld creates an empty world bound to a registry.
func NewWorld(registry *Registry) *World {
	return &World{
		registry: registry,
		stores:   make(map[reflect.Type]anyStore),
		alive:    make(map[Entity]struct{}),
		events:   NewEventManager(),
	}
}

// Registry returns the registration table this world was built with.
func (w *World) Registry() *Registry {
	return w.registry
}

// StoreFor returns the store holding components of type T, creating it on
// first use.
func StoreFor[T any](w *World) *Store[T] {
	t := reflect.TypeOf((*T)(nil)).Elem()
	if existing, ok := w.stores[t]; ok {
		return existing.(*Store[T])
	}
	store := NewStore[T]()
	w.stores[t] = store
	return store
}

// existingStore returns the store for T without creating one.
func existingStore[T any](w *World) *Store[T] {
	if s, ok := w.stores[reflect.TypeOf((*T)(nil)).Elem()]; ok {
		return s.(*Store[T])
	}
	return nil
}

// CreateEntity allocates a fresh entity and returns a builder staging its
// components. The entity is committed to the world as the builder runs; the
// builder itself must not outlive the composition.
func (w *World) CreateEntity() *Builder {
	entity := NewEntity()
	w.alive[entity] = struct{}{}
	w.events.Emit(EntityCreatedEvent{Entity: entity})
	return &Builder{world: w, entity: entity}
}

// RemoveEntity removes entity from every store the world owns. After it
// returns, all lookups for entity report absent; the handle must not be
// reused. The store map is the single source of truth here, so newly
// registered component types are covered without further bookkeeping.
func (w *World) RemoveEntity(entity Entity) {
	for _, store := range w.stores {
		store.remove(entity)
	}
	delete(w.alive, entity)
	w.events.Emit(EntityRemovedEvent{Entity: entity})
}

// Alive reports whether entity was created and not yet removed, or still has
// a component in at least one store.
func (w *World) Alive(entity Entity) bool {
	if _, ok := w.alive[entity]; ok {
		return true
	}
	for _, store := range w.stores {
		if store.contains(entity) {
			return true
		}
	}
	return false
}

// MarkAlive records an entity restored from persisted data or an undo
// snapshot, preserving its original handle.
func (w *World) MarkAlive(entity Entity) {
	w.alive[entity] = struct{}{}
}

// Entities returns a snapshot of every live entity.
func (w *World) Entities() []Entity {
	out := make([]Entity, 0, len(w.alive))
	for e := range w.alive {
		out = append(out, e)
	}
	return out
}

// Len returns the number of live entities.
func (w *World) Len() int {
	return len(w.alive)
}

// Events returns the world's event manager.
func (w *World) Events() *EventManager {
	return w.events
}
