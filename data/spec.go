package data

import (
	"fmt"

	"roomforge/components"
	"roomforge/ecs"
)

// SpecKind tags one component specification variant. The set is closed;
// Apply dispatches over it exhaustively.
type SpecKind string

const (
	SpecWalkable SpecKind = "walkable"
	SpecSolid    SpecKind = "solid"
	SpecDamage   SpecKind = "damage"
)

// ComponentSpec is a serializable description of one component value. Only
// the field matching Kind is meaningful.
type ComponentSpec struct {
	Kind   SpecKind `yaml:"kind"`
	Flag   bool     `yaml:"flag,omitempty"`
	Amount float64  `yaml:"amount,omitempty"`
}

// WalkableSpec describes a Walkable component with the given flag.
func WalkableSpec(v bool) ComponentSpec {
	return ComponentSpec{Kind: SpecWalkable, Flag: v}
}

// SolidSpec describes a Solid component with the given flag.
func SolidSpec(v bool) ComponentSpec {
	return ComponentSpec{Kind: SpecSolid, Flag: v}
}

// DamageSpec describes a Damage component with the given amount.
func DamageSpec(amount float64) ComponentSpec {
	return ComponentSpec{Kind: SpecDamage, Amount: amount}
}

// Apply attaches the described component to the builder's entity.
func (s ComponentSpec) Apply(b *ecs.Builder) error {
	switch s.Kind {
	case SpecWalkable:
		b.With(components.WalkableComponent{Walkable: s.Flag})
	case SpecSolid:
		b.With(components.SolidComponent{Solid: s.Flag})
	case SpecDamage:
		b.With(components.DamageComponent{Amount: s.Amount})
	default:
		return fmt.Errorf("unknown component spec kind %q", s.Kind)
	}
	return nil
}
