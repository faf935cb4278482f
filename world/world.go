package world

import (
	"github.com/google/uuid"

	"roomforge/components"
	"roomforge/data"
	"roomforge/ecs"
	"roomforge/geom"
)

// World is the aggregate for one game or editor session: the ECS holding
// every component store, the rooms, and the tile definition table the rooms
// refer to.
type World struct {
	ID       string
	Name     string
	ECS      *ecs.World
	Rooms    []Room
	TileDefs map[data.TileDefID]data.TileDef

	StartingRoom     int
	StartingPosition geom.Vec2
}

// New creates a fresh world with a single empty room.
func New(name string, registry *ecs.Registry) *World {
	return &World{
		ID:               uuid.NewString(),
		Name:             name,
		ECS:              ecs.NewWorld(registry),
		Rooms:            []Room{NewRoom("start", defaultRoomWidth, defaultRoomHeight)},
		TileDefs:         make(map[data.TileDefID]data.TileDef),
		StartingRoom:     0,
		StartingPosition: geom.V(1, 1),
	}
}

// Room returns the room at index, or nil when out of range.
func (w *World) Room(index int) *Room {
	if index < 0 || index >= len(w.Rooms) {
		return nil
	}
	return &w.Rooms[index]
}

// RoomByID returns the room with the given id, or nil.
func (w *World) RoomByID(id string) *Room {
	for i := range w.Rooms {
		if w.Rooms[i].ID == id {
			return &w.Rooms[i]
		}
	}
	return nil
}

// AddRoom appends a new empty room and returns its index.
func (w *World) AddRoom(name string, width, height int) int {
	w.Rooms = append(w.Rooms, NewRoom(name, width, height))
	return len(w.Rooms) - 1
}

// SpawnTile creates a tile entity from a tile definition at a world
// position and records the definition id in the room's tile map. The
// definition must exist in the world's tile table.
func (w *World) SpawnTile(room *Room, gp GridPos, defID data.TileDefID, tileSize float64) (ecs.Entity, error) {
	def, ok := w.TileDefs[defID]
	if !ok {
		return ecs.NullEntity, &UnknownTileDefError{ID: defID}
	}

	b := w.ECS.CreateEntity().
		With(components.PositionComponent{Pos: gp.WorldPos(tileSize)})
	if err := def.Apply(b); err != nil {
		return ecs.NullEntity, err
	}
	entity := b.Finish()

	room.Tiles.Set(gp, defID)
	return entity, nil
}

// UnknownTileDefError reports a tile definition id missing from the world's
// tile table.
type UnknownTileDefError struct {
	ID data.TileDefID
}

func (e *UnknownTileDefError) Error() string {
	return "unknown tile definition " + string(e.ID)
}
