package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"roomforge/data"
)

func (s *Storage) prefabDir(worldID string) string {
	return filepath.Join(s.dir, worldID, "prefabs")
}

// SavePrefab writes one prefab under the world's prefab directory, keyed by
// its id.
func (s *Storage) SavePrefab(worldID string, prefab *data.Prefab) error {
	dir := s.prefabDir(worldID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create prefab dir: %w", err)
	}
	raw, err := yaml.Marshal(prefab)
	if err != nil {
		return fmt.Errorf("marshal prefab %q: %w", prefab.Name, err)
	}
	path := filepath.Join(dir, prefab.ID+".yaml")
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("write prefab %q: %w", prefab.Name, err)
	}
	s.log.Debug("saved prefab",
		zap.String("world", worldID),
		zap.String("prefab", prefab.ID),
		zap.String("name", prefab.Name))
	return nil
}

// LoadPrefabs reads every prefab saved for a world. A world with no prefab
// directory yields an empty slice.
func (s *Storage) LoadPrefabs(worldID string) ([]data.Prefab, error) {
	dir := s.prefabDir(worldID)
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read prefab dir: %w", err)
	}

	var out []data.Prefab
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".yaml" {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read prefab %s: %w", entry.Name(), err)
		}
		var prefab data.Prefab
		if err := yaml.Unmarshal(raw, &prefab); err != nil {
			return nil, fmt.Errorf("parse prefab %s: %w", entry.Name(), err)
		}
		out = append(out, prefab)
	}
	return out, nil
}
