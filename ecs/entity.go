package ecs

import (
	"fmt"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// Entity is an opaque handle identifying one in-game object. It carries no
// data itself; all state lives in component stores keyed by Entity.
type Entity uuid.UUID

// NullEntity is the sentinel for "no entity" relations, e.g. an unset parent.
var NullEntity = Entity(uuid.Nil)

// NewEntity allocates a fresh, universally-unique entity handle.
func NewEntity() Entity {
	return Entity(uuid.New())
}

// ParseEntity converts the string form produced by String back into an Entity.
func ParseEntity(s string) (Entity, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return NullEntity, fmt.Errorf("parse entity %q: %w", s, err)
	}
	return Entity(id), nil
}

// IsNull reports whether the entity is the null sentinel.
func (e Entity) IsNull() bool {
	return e == NullEntity
}

func (e Entity) String() string {
	return uuid.UUID(e).String()
}

// MarshalYAML writes the entity as its canonical UUID string.
func (e Entity) MarshalYAML() (interface{}, error) {
	return uuid.UUID(e).String(), nil
}

// UnmarshalYAML reads the entity back from its UUID string form.
func (e *Entity) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseEntity(s)
	if err != nil {
		return err
	}
	*e = parsed
	return nil
}
