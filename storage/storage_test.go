package storage

import (
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"

	"roomforge/components"
	"roomforge/data"
	"roomforge/ecs"
	"roomforge/geom"
	"roomforge/world"
)

func newStorage(t *testing.T) *Storage {
	t.Helper()
	return New(t.TempDir(), zap.NewNop())
}

func buildWorld(t *testing.T, registry *ecs.Registry) *world.World {
	t.Helper()
	w := world.New("test", registry)

	w.ECS.CreateEntity().
		With(components.PositionComponent{Pos: geom.V(1, 2)}).
		With(components.VelocityComponent{X: 3, Y: 4}).
		Finish()
	w.ECS.CreateEntity().
		With(components.PositionComponent{Pos: geom.V(5, 6)}).
		With(components.NameComponent{Name: "door"}).
		With(components.SolidComponent{Solid: true}).
		Finish()
	w.ECS.CreateEntity().
		With(components.SpriteComponent{Path: "torch.png"}).
		With(components.DamageComponent{Amount: 2.5}).
		Finish()

	defID := data.NewTileDefID()
	w.TileDefs[defID] = data.TileDef{
		Name:       "spikes",
		SpritePath: "spikes.png",
		Components: []data.ComponentSpec{data.SolidSpec(true), data.DamageSpec(1)},
	}
	return w
}

func TestWorldSaveLoadRoundTrip(t *testing.T) {
	registry := components.BuildRegistry()
	s := newStorage(t)
	w := buildWorld(t, registry)

	if err := s.SaveWorld(w); err != nil {
		t.Fatalf("SaveWorld: %v", err)
	}
	loaded, err := s.LoadWorld(registry, w.ID)
	if err != nil {
		t.Fatalf("LoadWorld: %v", err)
	}

	if loaded.ID != w.ID || loaded.Name != w.Name {
		t.Errorf("identity lost: %s/%s", loaded.ID, loaded.Name)
	}
	if loaded.ECS.Len() != w.ECS.Len() {
		t.Fatalf("expected %d entities, got %d", w.ECS.Len(), loaded.ECS.Len())
	}

	// Every store's contents and every entity identity must survive.
	for _, e := range w.ECS.Entities() {
		for _, reg := range registry.All() {
			wantVal, want := reg.Capture(w.ECS, e)
			gotVal, got := reg.Capture(loaded.ECS, e)
			if want != got {
				t.Errorf("entity %s: %s presence changed across round trip", e, reg.Name)
				continue
			}
			if want && wantVal != gotVal {
				t.Errorf("entity %s: %s changed: %+v -> %+v", e, reg.Name, wantVal, gotVal)
			}
		}
	}

	if len(loaded.TileDefs) != len(w.TileDefs) {
		t.Errorf("tile defs lost: %d -> %d", len(w.TileDefs), len(loaded.TileDefs))
	}
	if len(loaded.Rooms) != len(w.Rooms) {
		t.Errorf("rooms lost: %d -> %d", len(w.Rooms), len(loaded.Rooms))
	}
}

func TestLoadWorldMissing(t *testing.T) {
	s := newStorage(t)
	if _, err := s.LoadWorld(components.BuildRegistry(), "nope"); err == nil {
		t.Error("expected error for missing world")
	}
}

func TestLoadWorldCorrupt(t *testing.T) {
	registry := components.BuildRegistry()
	s := newStorage(t)

	dir := filepath.Join(s.dir, "bad")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "world.yaml"), []byte("{not yaml: ["), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := s.LoadWorld(registry, "bad"); err == nil {
		t.Error("expected parse error for corrupt world file")
	}
}

func TestLoadWorldUnknownStoreSection(t *testing.T) {
	registry := components.BuildRegistry()
	s := newStorage(t)

	doc := "id: x\nname: x\nstores:\n  Ghost:\n    aaaaaaaa-0000-0000-0000-000000000000: {}\n"
	dir := filepath.Join(s.dir, "x")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "world.yaml"), []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := s.LoadWorld(registry, "x"); err == nil {
		t.Error("expected error naming the unknown store section")
	}
}

func TestIndexUpdatedBySave(t *testing.T) {
	registry := components.BuildRegistry()
	s := newStorage(t)
	w := buildWorld(t, registry)

	if err := s.SaveWorld(w); err != nil {
		t.Fatal(err)
	}

	idx, err := s.LoadIndex()
	if err != nil {
		t.Fatalf("LoadIndex: %v", err)
	}
	if idx[w.ID] != w.Name {
		t.Errorf("index missing world: %v", idx)
	}
}

func TestPrefabSaveLoad(t *testing.T) {
	s := newStorage(t)
	worldID := "w1"

	prefabs := []data.Prefab{
		{ID: "11111111-1111-1111-1111-111111111111", Name: "crate", SpritePath: "crate.png",
			Components: []data.ComponentSpec{data.SolidSpec(true)}},
		{ID: "22222222-2222-2222-2222-222222222222", Name: "spikes", SpritePath: "spikes.png",
			Components: []data.ComponentSpec{data.WalkableSpec(false), data.DamageSpec(2.5)}},
	}
	for i := range prefabs {
		if err := s.SavePrefab(worldID, &prefabs[i]); err != nil {
			t.Fatalf("SavePrefab: %v", err)
		}
	}

	loaded, err := s.LoadPrefabs(worldID)
	if err != nil {
		t.Fatalf("LoadPrefabs: %v", err)
	}
	if len(loaded) != len(prefabs) {
		t.Fatalf("expected %d prefabs, got %d", len(prefabs), len(loaded))
	}
	byID := map[string]data.Prefab{}
	for _, p := range loaded {
		byID[p.ID] = p
	}
	for _, want := range prefabs {
		got, ok := byID[want.ID]
		if !ok {
			t.Errorf("prefab %s missing", want.ID)
			continue
		}
		if got.Name != want.Name || got.SpritePath != want.SpritePath ||
			len(got.Components) != len(want.Components) {
			t.Errorf("prefab %s changed: %+v", want.ID, got)
		}
	}
}

func TestLoadPrefabsEmpty(t *testing.T) {
	s := newStorage(t)
	loaded, err := s.LoadPrefabs("never-saved")
	if err != nil {
		t.Fatalf("LoadPrefabs: %v", err)
	}
	if len(loaded) != 0 {
		t.Errorf("expected no prefabs, got %d", len(loaded))
	}
}
