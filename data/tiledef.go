package data

import (
	"fmt"

	"github.com/google/uuid"

	"roomforge/ecs"
)

// TileDefID is the opaque identifier the editor and tile maps use to refer
// to a tile definition.
type TileDefID string

// NewTileDefID allocates a fresh tile definition id.
func NewTileDefID() TileDefID {
	return TileDefID(uuid.NewString())
}

// TileDef is a serializable template describing which components a tile
// entity receives.
type TileDef struct {
	Name       string          `yaml:"name"`
	SpritePath string          `yaml:"sprite_path"`
	Components []ComponentSpec `yaml:"components"`
}

// Apply attaches the definition's component specs to the builder's entity,
// in list order.
func (d *TileDef) Apply(b *ecs.Builder) error {
	for _, spec := range d.Components {
		if err := spec.Apply(b); err != nil {
			return fmt.Errorf("tile def %q: %w", d.Name, err)
		}
	}
	return nil
}
