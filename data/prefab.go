package data

import (
	"fmt"

	"github.com/google/uuid"

	"roomforge/components"
	"roomforge/ecs"
	"roomforge/geom"
)

// Prefab is a serializable description of an entity that can be stamped out
// repeatedly. Prefabs are persisted independently of any live world and
// keyed by id, grouped under the world they belong to.
type Prefab struct {
	ID         string          `yaml:"id"`
	Name       string          `yaml:"name"`
	SpritePath string          `yaml:"sprite_path"`
	Components []ComponentSpec `yaml:"components"`
}

// Instantiate creates a new entity from the prefab at the given position.
// Every prefab entity gets a Position and a Sprite; the optional component
// specs are applied after those, in list order.
func (p *Prefab) Instantiate(w *ecs.World, pos geom.Vec2) (ecs.Entity, error) {
	b := w.CreateEntity().
		With(components.PositionComponent{Pos: pos}).
		With(components.SpriteComponent{Path: p.SpritePath})

	for _, spec := range p.Components {
		if err := spec.Apply(b); err != nil {
			return ecs.NullEntity, fmt.Errorf("prefab %q: %w", p.Name, err)
		}
	}
	return b.Finish(), nil
}

// PrefabFromEntity captures the current state of a live entity as a prefab.
func PrefabFromEntity(w *ecs.World, entity ecs.Entity, name, spritePath string) Prefab {
	var specs []ComponentSpec
	if walk, ok := ecs.StoreFor[components.WalkableComponent](w).Get(entity); ok {
		specs = append(specs, WalkableSpec(walk.Walkable))
	}
	if solid, ok := ecs.StoreFor[components.SolidComponent](w).Get(entity); ok {
		specs = append(specs, SolidSpec(solid.Solid))
	}
	if dmg, ok := ecs.StoreFor[components.DamageComponent](w).Get(entity); ok {
		specs = append(specs, DamageSpec(dmg.Amount))
	}

	return Prefab{
		ID:         uuid.NewString(),
		Name:       name,
		SpritePath: spritePath,
		Components: specs,
	}
}
