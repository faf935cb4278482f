package world

import (
	"github.com/google/uuid"
)

const (
	defaultRoomWidth  = 32
	defaultRoomHeight = 24
)

// Room is one screen-sized area of the world: a tile map plus the entities
// tagged with its id through the CurrentRoom component.
type Room struct {
	ID    string  `yaml:"id"`
	Name  string  `yaml:"name"`
	Tiles TileMap `yaml:"tiles"`
}

// NewRoom creates an empty room with a fresh id.
func NewRoom(name string, width, height int) Room {
	return Room{
		ID:    uuid.NewString(),
		Name:  name,
		Tiles: NewTileMap(width, height),
	}
}
