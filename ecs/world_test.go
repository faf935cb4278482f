package ecs

import (
	"testing"
)

// Test component types shared by the world, builder and query tests.
type position struct {
	X, Y float64
}

type velocity struct {
	DX, DY float64
}

type sprite struct {
	Path string
}

func testRegistry() *Registry {
	return NewRegistry(
		NewRegistration[position]("Position", 0),
		NewRegistration[velocity]("Velocity", 1),
		NewRegistration[sprite]("Sprite", 2, Require[position]()),
		NewRegistration[health]("Health", 3),
	)
}

func TestRemoveEntityClearsEveryStore(t *testing.T) {
	w := NewWorld(testRegistry())
	e := w.CreateEntity().
		With(position{X: 1}).
		With(velocity{DX: 2}).
		With(health{HP: 5}).
		Finish()

	w.RemoveEntity(e)

	if _, ok := StoreFor[position](w).Get(e); ok {
		t.Error("position store retained a stale entry")
	}
	if _, ok := StoreFor[velocity](w).Get(e); ok {
		t.Error("velocity store retained a stale entry")
	}
	if _, ok := StoreFor[health](w).Get(e); ok {
		t.Error("health store retained a stale entry")
	}
	if w.Alive(e) {
		t.Error("removed entity reported alive")
	}
}

func TestAliveAfterCreate(t *testing.T) {
	w := NewWorld(testRegistry())
	e := w.CreateEntity().Finish()

	if !w.Alive(e) {
		t.Error("freshly created entity must be alive even with no components")
	}
	if w.Len() != 1 {
		t.Errorf("expected 1 live entity, got %d", w.Len())
	}
}

func TestStoreForReturnsSameStore(t *testing.T) {
	w := NewWorld(testRegistry())
	a := StoreFor[position](w)
	b := StoreFor[position](w)
	if a != b {
		t.Error("StoreFor must return the same store per type")
	}
}

func TestWorldLifecycleEvents(t *testing.T) {
	w := NewWorld(testRegistry())

	var created, removed []Entity
	w.Events().Subscribe(EventEntityCreated, func(ev Event) {
		created = append(created, ev.(EntityCreatedEvent).Entity)
	})
	w.Events().Subscribe(EventEntityRemoved, func(ev Event) {
		removed = append(removed, ev.(EntityRemovedEvent).Entity)
	})

	e := w.CreateEntity().Finish()
	w.RemoveEntity(e)

	if len(created) != 1 || created[0] != e {
		t.Errorf("expected created event for %s, got %v", e, created)
	}
	if len(removed) != 1 || removed[0] != e {
		t.Errorf("expected removed event for %s, got %v", e, removed)
	}
}
