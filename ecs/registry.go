package ecs

import (
	"fmt"
	"reflect"

	"gopkg.in/yaml.v3"
)

// ComponentID is the stable numeric identifier a component type exposes to
// non-native consumers such as the scripting layer. IDs are fixed for a
// given build by the registration table.
type ComponentID uint32

// Registration describes one component type: its name, numeric id, the
// factory that satisfies its dependencies, and a set of type-erased
// operations the world and the persistence layer dispatch through.
type Registration struct {
	Name string
	ID   ComponentID

	typ     reflect.Type
	factory func(*World, Entity)
	insert  func(*World, Entity, any)
	remove  func(*World, Entity)
	has     func(*World, Entity) bool
	capture func(*World, Entity) (any, bool)
	encode  func(*World) (map[string]any, bool)
	decode  func(*World, *yaml.Node) error
}

// Type returns the component type this entry was registered for.
func (r *Registration) Type() reflect.Type { return r.typ }

// Has reports whether entity currently owns this component.
func (r *Registration) Has(w *World, entity Entity) bool { return r.has(w, entity) }

// AddDefault runs the dependency factory for this component type, inserting
// the component itself and every prerequisite with defaults where missing.
func (r *Registration) AddDefault(w *World, entity Entity) { r.factory(w, entity) }

// RemoveFrom erases this component from entity, if present.
func (r *Registration) RemoveFrom(w *World, entity Entity) { r.remove(w, entity) }

// Capture clones the component value currently attached to entity.
func (r *Registration) Capture(w *World, entity Entity) (any, bool) {
	return r.capture(w, entity)
}

// Insert writes a previously captured value back onto entity. The value must
// be of the registered component type.
func (r *Registration) Insert(w *World, entity Entity, value any) {
	r.insert(w, entity, value)
}

// EncodeStore snapshots this component's store as a map keyed by entity
// UUID strings, for serialization. The second result is false when the
// store is empty or was never created.
func (r *Registration) EncodeStore(w *World) (map[string]any, bool) {
	return r.encode(w)
}

// DecodeStore populates this component's store from a YAML mapping node
// produced by EncodeStore.
func (r *Registration) DecodeStore(w *World, node *yaml.Node) error {
	return r.decode(w, node)
}

// DepFn ensures one prerequisite component exists on an entity, inserting a
// default where missing. Existing values are left untouched so factories
// stay idempotent.
type DepFn func(*World, Entity)

// Require builds a DepFn for component type D.
func Require[D any]() DepFn {
	return func(w *World, entity Entity) {
		ensureDefault[D](w, entity)
	}
}

func ensureDefault[T any](w *World, entity Entity) {
	store := StoreFor[T](w)
	if !store.Contains(entity) {
		var def T
		store.Insert(entity, def)
	}
}

// NewRegistration builds the registry entry for component type T. The
// resulting factory inserts a default T and every listed prerequisite where
// missing; it never resets components the entity already owns.
func NewRegistration[T any](name string, id ComponentID, deps ...DepFn) Registration {
	return Registration{
		Name: name,
		ID:   id,
		typ:  reflect.TypeOf((*T)(nil)).Elem(),
		factory: func(w *World, entity Entity) {
			ensureDefault[T](w, entity)
			for _, dep := range deps {
				dep(w, entity)
			}
		},
		insert: func(w *World, entity Entity, value any) {
			StoreFor[T](w).Insert(entity, value.(T))
		},
		remove: func(w *World, entity Entity) {
			if store := existingStore[T](w); store != nil {
				store.Remove(entity)
			}
		},
		has: func(w *World, entity Entity) bool {
			store := existingStore[T](w)
			return store != nil && store.Contains(entity)
		},
		capture: func(w *World, entity Entity) (any, bool) {
			store := existingStore[T](w)
			if store == nil {
				return nil, false
			}
			value, ok := store.Get(entity)
			if !ok {
				return nil, false
			}
			return value, true
		},
		encode: func(w *World) (map[string]any, bool) {
			store := existingStore[T](w)
			if store == nil || store.Len() == 0 {
				return nil, false
			}
			out := make(map[string]any, store.Len())
			store.Each(func(e Entity, v *T) bool {
				out[e.String()] = *v
				return true
			})
			return out, true
		},
		decode: func(w *World, node *yaml.Node) error {
			var raw map[string]T
			if err := node.Decode(&raw); err != nil {
				return fmt.Errorf("decode %s store: %w", name, err)
			}
			store := StoreFor[T](w)
			for key, value := range raw {
				entity, err := ParseEntity(key)
				if err != nil {
					return fmt.Errorf("decode %s store: %w", name, err)
				}
				store.Insert(entity, value)
				w.MarkAlive(entity)
			}
			return nil
		},
	}
}

// Registry is the process-wide table mapping component types to their
// registration entries. It is built once at startup and read-only afterward.
type Registry struct {
	byType  map[reflect.Type]*Registration
	byID    map[ComponentID]*Registration
	byName  map[string]*Registration
	ordered []*Registration
}

// NewRegistry assembles a registry from a fixed list of registrations. It
// panics on duplicate types, ids or names so configuration mistakes surface
// at startup rather than corrupting state later.
func NewRegistry(regs ...Registration) *Registry {
	r := &Registry{
		byType:  make(map[reflect.Type]*Registration, len(regs)),
		byID:    make(map[ComponentID]*Registration, len(regs)),
		byName:  make(map[string]*Registration, len(regs)),
		ordered: make([]*Registration, 0, len(regs)),
	}
	for i := range regs {
		reg := &regs[i]
		if _, dup := r.byType[reg.typ]; dup {
			panic(fmt.Sprintf("ecs: component type %s registered twice", reg.typ))
		}
		if _, dup := r.byID[reg.ID]; dup {
			panic(fmt.Sprintf("ecs: component id %d registered twice", reg.ID))
		}
		if _, dup := r.byName[reg.Name]; dup {
			panic(fmt.Sprintf("ecs: component name %q registered twice", reg.Name))
		}
		r.byType[reg.typ] = reg
		r.byID[reg.ID] = reg
		r.byName[reg.Name] = reg
		r.ordered = append(r.ordered, reg)
	}
	return r
}

// ByType looks up the entry for a component type.
func (r *Registry) ByType(t reflect.Type) (*Registration, bool) {
	reg, ok := r.byType[t]
	return reg, ok
}

// MustByType looks up the entry for a component type and panics if the type
// was never registered. Using an unregistered type with a builder would
// silently skip dependency setup, so it is treated as a fatal configuration
// error.
func (r *Registry) MustByType(t reflect.Type) *Registration {
	reg, ok := r.byType[t]
	if !ok {
		panic(fmt.Sprintf("ecs: component type %s is not registered", t))
	}
	return reg
}

// ByID looks up the entry for a numeric component id.
func (r *Registry) ByID(id ComponentID) (*Registration, bool) {
	reg, ok := r.byID[id]
	return reg, ok
}

// ByName looks up the entry for a component name.
func (r *Registry) ByName(name string) (*Registration, bool) {
	reg, ok := r.byName[name]
	return reg, ok
}

// All returns the entries in registration order.
func (r *Registry) All() []*Registration {
	return r.ordered
}
