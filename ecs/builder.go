package ecs

import "reflect"

// Builder stages components for one entity and commits them to the world as
// each With call runs. It is not safe to share across goroutines and must
// not be persisted across frames.
type Builder struct {
	world    *World
	entity   Entity
	finished bool
}

// With attaches comp to the pending entity. The component's registered
// factory runs first, inserting defaults for every prerequisite that is
// missing, then the given value replaces the default for comp's own type.
// Using an unregistered component type panics.
func (b *Builder) With(comp any) *Builder {
	if b.finished {
		panic("ecs: builder used after Finish")
	}
	reg := b.world.registry.MustByType(reflect.TypeOf(comp))
	reg.factory(b.world, b.entity)
	reg.insert(b.world, b.entity, comp)
	return b
}

// Finish invalidates the builder and returns the composed entity.
func (b *Builder) Finish() Entity {
	if b.finished {
		panic("ecs: Finish called twice")
	}
	b.finished = true
	return b.entity
}
