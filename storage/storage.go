// Package storage persists worlds, prefabs and tile definitions as YAML
// documents under a save directory:
//
//	<dir>/index.yaml                world id -> name
//	<dir>/<world-id>/world.yaml     world aggregate + component stores
//	<dir>/<world-id>/tiledefs.yaml  tile definition table
//	<dir>/<world-id>/prefabs/*.yaml one file per prefab, keyed by prefab id
package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"roomforge/ecs"
	"roomforge/geom"
	"roomforge/world"
)

// Storage reads and writes the save directory.
type Storage struct {
	dir string
	log *zap.Logger
}

// New creates a Storage rooted at dir.
func New(dir string, log *zap.Logger) *Storage {
	return &Storage{dir: dir, log: log}
}

// worldDoc is the on-disk shape of a world. Component stores are stored per
// registered component name, keyed by entity UUID, so identities survive a
// save/load round trip.
type worldDoc struct {
	ID               string                    `yaml:"id"`
	Name             string                    `yaml:"name"`
	StartingRoom     int                       `yaml:"starting_room"`
	StartingPosition geom.Vec2                 `yaml:"starting_position"`
	Rooms            []world.Room              `yaml:"rooms"`
	Stores           map[string]map[string]any `yaml:"stores"`
}

// worldLoadDoc defers store decoding so each section can go through the
// registry's typed decoder.
type worldLoadDoc struct {
	ID               string               `yaml:"id"`
	Name             string               `yaml:"name"`
	StartingRoom     int                  `yaml:"starting_room"`
	StartingPosition geom.Vec2            `yaml:"starting_position"`
	Rooms            []world.Room         `yaml:"rooms"`
	Stores           map[string]yaml.Node `yaml:"stores"`
}

// SaveWorld writes the world, its tile definition table, and the updated
// world index.
func (s *Storage) SaveWorld(w *world.World) error {
	doc := worldDoc{
		ID:               w.ID,
		Name:             w.Name,
		StartingRoom:     w.StartingRoom,
		StartingPosition: w.StartingPosition,
		Rooms:            w.Rooms,
		Stores:           make(map[string]map[string]any),
	}
	for _, reg := range w.ECS.Registry().All() {
		if snapshot, ok := reg.EncodeStore(w.ECS); ok {
			doc.Stores[reg.Name] = snapshot
		}
	}

	raw, err := yaml.Marshal(&doc)
	if err != nil {
		return fmt.Errorf("marshal world %s: %w", w.ID, err)
	}

	dir := filepath.Join(s.dir, w.ID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create world dir: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "world.yaml"), raw, 0o644); err != nil {
		return fmt.Errorf("write world %s: %w", w.ID, err)
	}
	if err := s.saveTileDefs(w); err != nil {
		return err
	}
	if err := s.updateIndex(w.ID, w.Name); err != nil {
		return err
	}

	s.log.Debug("saved world",
		zap.String("id", w.ID),
		zap.String("name", w.Name),
		zap.Int("entities", w.ECS.Len()))
	return nil
}

// LoadWorld reconstructs a world from its save directory. The load is
// all-or-nothing: on any error the returned world is nil and no caller
// state has been touched.
func (s *Storage) LoadWorld(registry *ecs.Registry, worldID string) (*world.World, error) {
	path := filepath.Join(s.dir, worldID, "world.yaml")
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read world %s: %w", worldID, err)
	}

	var doc worldLoadDoc
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse world %s: %w", worldID, err)
	}

	ecsWorld := ecs.NewWorld(registry)
	for name, node := range doc.Stores {
		reg, ok := registry.ByName(name)
		if !ok {
			return nil, fmt.Errorf("world %s: unknown component store %q", worldID, name)
		}
		if err := reg.DecodeStore(ecsWorld, &node); err != nil {
			return nil, fmt.Errorf("world %s: %w", worldID, err)
		}
	}

	tileDefs, err := s.loadTileDefs(worldID)
	if err != nil {
		return nil, err
	}

	w := &world.World{
		ID:               doc.ID,
		Name:             doc.Name,
		ECS:              ecsWorld,
		Rooms:            doc.Rooms,
		TileDefs:         tileDefs,
		StartingRoom:     doc.StartingRoom,
		StartingPosition: doc.StartingPosition,
	}
	s.log.Debug("loaded world",
		zap.String("id", w.ID),
		zap.String("name", w.Name),
		zap.Int("entities", ecsWorld.Len()))
	return w, nil
}

// Index maps world ids to their human-readable names.
type Index map[string]string

// LoadIndex reads the world index. A missing index file yields an empty
// index.
func (s *Storage) LoadIndex() (Index, error) {
	raw, err := os.ReadFile(filepath.Join(s.dir, "index.yaml"))
	if err != nil {
		if os.IsNotExist(err) {
			return Index{}, nil
		}
		return nil, fmt.Errorf("read world index: %w", err)
	}
	var idx Index
	if err := yaml.Unmarshal(raw, &idx); err != nil {
		return nil, fmt.Errorf("parse world index: %w", err)
	}
	if idx == nil {
		idx = Index{}
	}
	return idx, nil
}

func (s *Storage) updateIndex(worldID, name string) error {
	idx, err := s.LoadIndex()
	if err != nil {
		return err
	}
	idx[worldID] = name
	raw, err := yaml.Marshal(idx)
	if err != nil {
		return fmt.Errorf("marshal world index: %w", err)
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create save dir: %w", err)
	}
	if err := os.WriteFile(filepath.Join(s.dir, "index.yaml"), raw, 0o644); err != nil {
		return fmt.Errorf("write world index: %w", err)
	}
	return nil
}
