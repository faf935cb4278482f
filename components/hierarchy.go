package components

import (
	"fmt"

	"roomforge/ecs"
	"roomforge/geom"
)

// ParentComponent links an entity to its parent in the scene hierarchy. The
// relation must stay acyclic; SetParent is the only mutation path and
// rejects cycle-forming re-parenting.
type ParentComponent struct {
	Parent ecs.Entity `yaml:"parent"`
}

// Children returns the direct children of entity.
func Children(w *ecs.World, entity ecs.Entity) []ecs.Entity {
	var out []ecs.Entity
	ecs.Each[ParentComponent](w, func(e ecs.Entity, p *ParentComponent) bool {
		if p.Parent == entity {
			out = append(out, e)
		}
		return true
	})
	return out
}

// SetParent re-parents child under parent. Passing the null entity detaches
// the child. Re-parenting that would close a cycle is rejected and leaves
// the relation unchanged.
func SetParent(w *ecs.World, child, parent ecs.Entity) error {
	parents := ecs.StoreFor[ParentComponent](w)
	if parent.IsNull() {
		parents.Remove(child)
		return nil
	}
	if child == parent {
		return fmt.Errorf("entity %s cannot be its own parent", child)
	}
	// Walk up from the new parent; finding child means a cycle.
	for cur := parent; !cur.IsNull(); {
		p, ok := parents.Get(cur)
		if !ok {
			break
		}
		if p.Parent == child {
			return fmt.Errorf("re-parenting %s under %s would create a cycle", child, parent)
		}
		cur = p.Parent
	}
	parents.Insert(child, ParentComponent{Parent: parent})
	return nil
}

// SetEntityPosition updates the position of an entity and translates every
// descendant by the same delta, preserving relative placement. It returns
// the number of entities whose position changed: 0 when the entity has no
// position or the move is a no-op. A descendant without a position silently
// ends propagation down that branch.
func SetEntityPosition(w *ecs.World, entity ecs.Entity, newPos geom.Vec2) int {
	positions := ecs.StoreFor[PositionComponent](w)
	pos := positions.Ref(entity)
	if pos == nil {
		return 0
	}
	delta := newPos.Sub(pos.Pos)
	if delta.IsZero() {
		return 0
	}
	pos.Pos = newPos
	moved := 1
	for _, child := range Children(w, entity) {
		moved += translateSubtree(w, positions, child, delta)
	}
	return moved
}

func translateSubtree(w *ecs.World, positions *ecs.Store[PositionComponent], entity ecs.Entity, delta geom.Vec2) int {
	pos := positions.Ref(entity)
	if pos == nil {
		return 0
	}
	pos.Pos = pos.Pos.Add(delta)
	moved := 1
	for _, child := range Children(w, entity) {
		moved += translateSubtree(w, positions, child, delta)
	}
	return moved
}
