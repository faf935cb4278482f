package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"roomforge/data"
	"roomforge/world"
)

// saveTileDefs writes the world's tile definition table next to world.yaml.
func (s *Storage) saveTileDefs(w *world.World) error {
	raw, err := yaml.Marshal(w.TileDefs)
	if err != nil {
		return fmt.Errorf("marshal tile defs: %w", err)
	}
	path := filepath.Join(s.dir, w.ID, "tiledefs.yaml")
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("write tile defs: %w", err)
	}
	return nil
}

// loadTileDefs reads the tile definition table for a world. A missing file
// yields an empty table.
func (s *Storage) loadTileDefs(worldID string) (map[data.TileDefID]data.TileDef, error) {
	path := filepath.Join(s.dir, worldID, "tiledefs.yaml")
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[data.TileDefID]data.TileDef{}, nil
		}
		return nil, fmt.Errorf("read tile defs: %w", err)
	}
	defs := map[data.TileDefID]data.TileDef{}
	if err := yaml.Unmarshal(raw, &defs); err != nil {
		return nil, fmt.Errorf("parse tile defs: %w", err)
	}
	return defs, nil
}
