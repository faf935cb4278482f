package data

import (
	"testing"

	"roomforge/components"
	"roomforge/ecs"
)

func newTestWorld() *ecs.World {
	return ecs.NewWorld(components.BuildRegistry())
}

func TestTileDefApply(t *testing.T) {
	w := newTestWorld()
	def := TileDef{
		Name:       "spike pit",
		SpritePath: "spikes.png",
		Components: []ComponentSpec{WalkableSpec(true), DamageSpec(2.5)},
	}

	b := w.CreateEntity()
	if err := def.Apply(b); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	e := b.Finish()

	walk, ok := ecs.StoreFor[components.WalkableComponent](w).Get(e)
	if !ok || !walk.Walkable {
		t.Errorf("expected Walkable(true), got %+v ok=%v", walk, ok)
	}
	dmg, ok := ecs.StoreFor[components.DamageComponent](w).Get(e)
	if !ok || dmg.Amount != 2.5 {
		t.Errorf("expected Damage(2.5), got %+v ok=%v", dmg, ok)
	}
	if ecs.StoreFor[components.SolidComponent](w).Contains(e) {
		t.Error("entity must be absent from the Solid store")
	}
}

func TestTileDefApplyUnknownKind(t *testing.T) {
	w := newTestWorld()
	def := TileDef{
		Name:       "broken",
		Components: []ComponentSpec{{Kind: "conveyor"}},
	}

	b := w.CreateEntity()
	if err := def.Apply(b); err == nil {
		t.Error("expected error for unknown spec kind")
	}
}

func TestNewTileDefIDUnique(t *testing.T) {
	a, b := NewTileDefID(), NewTileDefID()
	if a == b || a == "" {
		t.Errorf("expected distinct non-empty ids, got %q %q", a, b)
	}
}
