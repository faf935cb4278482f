package main

import (
	"fmt"

	"go.uber.org/zap"

	"roomforge/commands"
	"roomforge/components"
	"roomforge/config"
	"roomforge/ecs"
	"roomforge/scripting"
	"roomforge/storage"
	"roomforge/world"
)

// Engine wires the runtime data layer together for one session: the
// registry, the world, persistence, the command queue, and the scripting
// bridge. External systems (rendering, physics) would hang off the same
// world; here the frame loop is headless.
type Engine struct {
	cfg      *config.Config
	log      *zap.Logger
	store    *storage.Storage
	world    *world.World
	scripts  *scripting.Engine
	commands *commands.Manager
	systems  []ecs.System
}

// NewEngine builds the registry, opens or creates the world, and starts the
// scripting engine. worldID selects a saved world; empty means create a
// fresh one with the given name.
func NewEngine(cfg *config.Config, log *zap.Logger, worldID, worldName string) (*Engine, error) {
	registry := components.BuildRegistry()
	store := storage.New(cfg.Storage.SaveDir, log)

	var w *world.World
	if worldID != "" {
		loaded, err := store.LoadWorld(registry, worldID)
		if err != nil {
			return nil, fmt.Errorf("open world: %w", err)
		}
		w = loaded
	} else {
		w = world.New(worldName, registry)
		log.Info("created world", zap.String("id", w.ID), zap.String("name", w.Name))
	}

	scripts, err := scripting.NewEngine(w.ECS, cfg.Scripts.Dir, log)
	if err != nil {
		return nil, fmt.Errorf("scripting engine: %w", err)
	}

	return &Engine{
		cfg:      cfg,
		log:      log,
		store:    store,
		world:    w,
		scripts:  scripts,
		commands: commands.NewManager(),
		systems:  []ecs.System{scripts},
	}, nil
}

// World returns the engine's world aggregate.
func (e *Engine) World() *world.World {
	return e.world
}

// Commands returns the frame command queue.
func (e *Engine) Commands() *commands.Manager {
	return e.commands
}

// Tick advances one frame: queued commands flush first, then every system
// updates in registration order, so systems observe the frame's mutations
// in program order.
func (e *Engine) Tick(dt float64) error {
	if err := e.commands.ApplyAll(e.world); err != nil {
		return fmt.Errorf("apply commands: %w", err)
	}
	for _, sys := range e.systems {
		if err := sys.Update(e.world.ECS, dt); err != nil {
			return fmt.Errorf("system update: %w", err)
		}
	}
	return nil
}

// Shutdown saves the world and releases the scripting VM.
func (e *Engine) Shutdown() error {
	defer e.scripts.Close()
	if err := e.store.SaveWorld(e.world); err != nil {
		return fmt.Errorf("save world on shutdown: %w", err)
	}
	return nil
}
