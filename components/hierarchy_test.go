package components

import (
	"testing"

	"roomforge/ecs"
	"roomforge/geom"
)

func newTestWorld() *ecs.World {
	return ecs.NewWorld(BuildRegistry())
}

func spawnAt(w *ecs.World, pos geom.Vec2) ecs.Entity {
	return w.CreateEntity().With(PositionComponent{Pos: pos}).Finish()
}

func positionOf(t *testing.T, w *ecs.World, e ecs.Entity) geom.Vec2 {
	t.Helper()
	pos, ok := ecs.StoreFor[PositionComponent](w).Get(e)
	if !ok {
		t.Fatalf("entity %s has no position", e)
	}
	return pos.Pos
}

func TestSetEntityPositionPropagatesToChild(t *testing.T) {
	w := newTestWorld()
	parent := spawnAt(w, geom.V(0, 0))
	child := spawnAt(w, geom.V(5, 0))
	if err := SetParent(w, child, parent); err != nil {
		t.Fatalf("SetParent: %v", err)
	}

	moved := SetEntityPosition(w, parent, geom.V(10, 0))

	if moved != 2 {
		t.Errorf("expected 2 entities moved, got %d", moved)
	}
	if got := positionOf(t, w, parent); got != geom.V(10, 0) {
		t.Errorf("parent at %v", got)
	}
	if got := positionOf(t, w, child); got != geom.V(15, 0) {
		t.Errorf("child at %v, expected relative placement preserved", got)
	}
}

func TestSetEntityPositionZeroDeltaShortCircuits(t *testing.T) {
	w := newTestWorld()
	parent := spawnAt(w, geom.V(3, 4))
	child := spawnAt(w, geom.V(8, 4))
	if err := SetParent(w, child, parent); err != nil {
		t.Fatalf("SetParent: %v", err)
	}

	// The moved count doubles as the traversal probe: a zero delta must
	// not touch the child branch at all.
	moved := SetEntityPosition(w, parent, geom.V(3, 4))

	if moved != 0 {
		t.Errorf("expected no entities moved for zero delta, got %d", moved)
	}
	if got := positionOf(t, w, child); got != geom.V(8, 4) {
		t.Errorf("child moved to %v on a zero delta", got)
	}
}

func TestSetEntityPositionDeepRecursion(t *testing.T) {
	w := newTestWorld()
	root := spawnAt(w, geom.V(0, 0))
	mid := spawnAt(w, geom.V(1, 1))
	leaf := spawnAt(w, geom.V(2, 2))
	if err := SetParent(w, mid, root); err != nil {
		t.Fatalf("SetParent: %v", err)
	}
	if err := SetParent(w, leaf, mid); err != nil {
		t.Fatalf("SetParent: %v", err)
	}

	moved := SetEntityPosition(w, root, geom.V(0, 10))

	if moved != 3 {
		t.Errorf("expected 3 entities moved, got %d", moved)
	}
	if got := positionOf(t, w, leaf); got != geom.V(2, 12) {
		t.Errorf("leaf at %v", got)
	}
}

func TestSetEntityPositionMissingPositionTruncatesBranch(t *testing.T) {
	w := newTestWorld()
	root := spawnAt(w, geom.V(0, 0))
	// The middle entity has no position; propagation stops there.
	mid := w.CreateEntity().Finish()
	leaf := spawnAt(w, geom.V(7, 7))
	if err := SetParent(w, mid, root); err != nil {
		t.Fatalf("SetParent: %v", err)
	}
	if err := SetParent(w, leaf, mid); err != nil {
		t.Fatalf("SetParent: %v", err)
	}

	moved := SetEntityPosition(w, root, geom.V(1, 0))

	if moved != 1 {
		t.Errorf("expected only the root to move, got %d", moved)
	}
	if got := positionOf(t, w, leaf); got != geom.V(7, 7) {
		t.Errorf("leaf beyond the positionless branch moved to %v", got)
	}
}

func TestSetEntityPositionNoPosition(t *testing.T) {
	w := newTestWorld()
	e := w.CreateEntity().Finish()
	if moved := SetEntityPosition(w, e, geom.V(1, 1)); moved != 0 {
		t.Errorf("expected no-op for entity without position, got %d", moved)
	}
}

func TestChildren(t *testing.T) {
	w := newTestWorld()
	parent := spawnAt(w, geom.V(0, 0))
	a := spawnAt(w, geom.V(1, 0))
	b := spawnAt(w, geom.V(2, 0))
	if err := SetParent(w, a, parent); err != nil {
		t.Fatal(err)
	}
	if err := SetParent(w, b, parent); err != nil {
		t.Fatal(err)
	}

	kids := Children(w, parent)
	if len(kids) != 2 {
		t.Fatalf("expected 2 children, got %d", len(kids))
	}
	seen := map[ecs.Entity]bool{a: false, b: false}
	for _, k := range kids {
		seen[k] = true
	}
	if !seen[a] || !seen[b] {
		t.Errorf("children missing: %v", kids)
	}
}

func TestSetParentRejectsCycles(t *testing.T) {
	w := newTestWorld()
	a := spawnAt(w, geom.V(0, 0))
	b := spawnAt(w, geom.V(1, 0))
	c := spawnAt(w, geom.V(2, 0))
	if err := SetParent(w, b, a); err != nil {
		t.Fatal(err)
	}
	if err := SetParent(w, c, b); err != nil {
		t.Fatal(err)
	}

	if err := SetParent(w, a, c); err == nil {
		t.Error("expected cycle-forming re-parenting to be rejected")
	}
	if err := SetParent(w, a, a); err == nil {
		t.Error("expected self-parenting to be rejected")
	}

	// Relation unchanged: c still hangs off b.
	p, ok := ecs.StoreFor[ParentComponent](w).Get(c)
	if !ok || p.Parent != b {
		t.Errorf("relation disturbed by rejected re-parenting: %+v", p)
	}
}

func TestSetParentNullDetaches(t *testing.T) {
	w := newTestWorld()
	parent := spawnAt(w, geom.V(0, 0))
	child := spawnAt(w, geom.V(1, 0))
	if err := SetParent(w, child, parent); err != nil {
		t.Fatal(err)
	}
	if err := SetParent(w, child, ecs.NullEntity); err != nil {
		t.Fatal(err)
	}
	if len(Children(w, parent)) != 0 {
		t.Error("expected child detached")
	}

	// Detached child no longer follows the old parent.
	SetEntityPosition(w, parent, geom.V(9, 9))
	if got := positionOf(t, w, child); got != geom.V(1, 0) {
		t.Errorf("detached child moved to %v", got)
	}
}
