// Package commands models editor mutations as a closed set of command
// variants carrying their own execute and undo data, dispatched through a
// single interpreter. The tagged-struct shape keeps dispatch exhaustive and
// the undo stack serializable.
package commands

import (
	"fmt"

	"roomforge/components"
	"roomforge/data"
	"roomforge/ecs"
	"roomforge/geom"
	"roomforge/world"
)

// Kind tags one command variant.
type Kind string

const (
	// KindSpawnPrefab instantiates a prefab at Pos.
	KindSpawnPrefab Kind = "spawn_prefab"
	// KindDespawn removes Entity, snapshotting its components for undo.
	KindDespawn Kind = "despawn"
	// KindMove sets Entity's position to Pos, propagating to descendants.
	KindMove Kind = "move"
	// KindSetTile writes Tile into room Room at Grid.
	KindSetTile Kind = "set_tile"
)

// Command is one undoable mutation. Only the fields relevant to Kind are
// meaningful; the lowercase remainder is filled in by the interpreter when
// the command first executes, so undo has the data it needs.
type Command struct {
	Kind   Kind           `yaml:"kind"`
	Entity ecs.Entity     `yaml:"entity,omitempty"`
	Prefab *data.Prefab   `yaml:"prefab,omitempty"`
	Pos    geom.Vec2      `yaml:"pos,omitempty"`
	Room   int            `yaml:"room,omitempty"`
	Grid   world.GridPos  `yaml:"grid,omitempty"`
	Tile   data.TileDefID `yaml:"tile,omitempty"`

	prevPos  geom.Vec2
	prevTile data.TileDefID
	snapshot map[string]any
}

// apply executes the command against the world.
func (c *Command) apply(w *world.World) error {
	switch c.Kind {
	case KindSpawnPrefab:
		// The entity id is allocated on first execution only and reused on
		// every re-execution, so commands pushed later that reference the
		// spawned entity stay valid across undo/redo.
		if c.Entity.IsNull() {
			entity, err := c.Prefab.Instantiate(w.ECS, c.Pos)
			if err != nil {
				return err
			}
			c.Entity = entity
			c.snapshot = make(map[string]any)
			for _, reg := range w.ECS.Registry().All() {
				if value, ok := reg.Capture(w.ECS, c.Entity); ok {
					c.snapshot[reg.Name] = value
				}
			}
			return nil
		}
		return restoreSnapshot(w, c.Entity, c.snapshot)

	case KindDespawn:
		c.snapshot = make(map[string]any)
		for _, reg := range w.ECS.Registry().All() {
			if value, ok := reg.Capture(w.ECS, c.Entity); ok {
				c.snapshot[reg.Name] = value
			}
		}
		w.ECS.RemoveEntity(c.Entity)
		return nil

	case KindMove:
		if pos, ok := ecs.StoreFor[components.PositionComponent](w.ECS).Get(c.Entity); ok {
			c.prevPos = pos.Pos
		}
		components.SetEntityPosition(w.ECS, c.Entity, c.Pos)
		return nil

	case KindSetTile:
		room := w.Room(c.Room)
		if room == nil {
			return fmt.Errorf("set tile: no room at index %d", c.Room)
		}
		c.prevTile, _ = room.Tiles.Get(c.Grid)
		room.Tiles.Set(c.Grid, c.Tile)
		return nil
	}
	return fmt.Errorf("unknown command kind %q", c.Kind)
}

// restoreSnapshot rebuilds an entity under its original handle from a
// component snapshot captured by apply.
func restoreSnapshot(w *world.World, entity ecs.Entity, snapshot map[string]any) error {
	w.ECS.MarkAlive(entity)
	for name, value := range snapshot {
		reg, ok := w.ECS.Registry().ByName(name)
		if !ok {
			return fmt.Errorf("restore entity %s: unknown component %q", entity, name)
		}
		reg.Insert(w.ECS, entity, value)
	}
	return nil
}

// revert undoes a previously applied command.
func (c *Command) revert(w *world.World) error {
	switch c.Kind {
	case KindSpawnPrefab:
		w.ECS.RemoveEntity(c.Entity)
		return nil

	case KindDespawn:
		return restoreSnapshot(w, c.Entity, c.snapshot)

	case KindMove:
		components.SetEntityPosition(w.ECS, c.Entity, c.prevPos)
		return nil

	case KindSetTile:
		room := w.Room(c.Room)
		if room == nil {
			return fmt.Errorf("undo set tile: no room at index %d", c.Room)
		}
		room.Tiles.Set(c.Grid, c.prevTile)
		return nil
	}
	return fmt.Errorf("unknown command kind %q", c.Kind)
}
