package scripting

import (
	"fmt"
	"os"
	"path/filepath"

	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"

	"roomforge/ecs"
)

// Engine wraps a single gopher-lua VM bound to one ECS world. Scripts name
// component types through the numeric id table generated from the registry,
// never through native type information. Single-goroutine access only (the
// frame loop); cross-context callers go through SharedWorld.
type Engine struct {
	vm    *lua.LState
	world *ecs.World
	log   *zap.Logger
}

// NewEngine creates a Lua engine, registers the world API, and loads every
// .lua file from the scripts directory.
func NewEngine(world *ecs.World, scriptsDir string, log *zap.Logger) (*Engine, error) {
	vm := lua.NewState()
	vm.SetGlobal("API_VERSION", lua.LNumber(1))

	e := &Engine{vm: vm, world: world, log: log}
	e.registerComponentIDs()
	e.registerEntityAPI()

	if err := e.loadDir(scriptsDir); err != nil {
		vm.Close()
		return nil, fmt.Errorf("load scripts: %w", err)
	}
	return e, nil
}

// Close releases the Lua VM.
func (e *Engine) Close() {
	e.vm.Close()
}

// DoString executes a chunk of Lua source. Exposed for tests and the
// editor console.
func (e *Engine) DoString(src string) error {
	return e.vm.DoString(src)
}

// CallTick invokes the script-defined tick(dt) function, if any script
// defined one.
func (e *Engine) CallTick(dt float64) error {
	fn := e.vm.GetGlobal("tick")
	if fn == lua.LNil {
		return nil
	}
	return e.vm.CallByParam(lua.P{Fn: fn, NRet: 0, Protect: true}, lua.LNumber(dt))
}

// Update implements ecs.System so the engine can run as a frame-driven
// subsystem.
func (e *Engine) Update(_ *ecs.World, dt float64) error {
	return e.CallTick(dt)
}

// registerComponentIDs publishes a `components` table mapping component
// names to their stable numeric ids.
func (e *Engine) registerComponentIDs() {
	table := e.vm.NewTable()
	for _, reg := range e.world.Registry().All() {
		table.RawSetString(reg.Name, lua.LNumber(reg.ID))
	}
	e.vm.SetGlobal("components", table)
}

// loadDir loads all .lua files in a directory. Missing directories are
// skipped.
func (e *Engine) loadDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".lua" {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if err := e.vm.DoFile(path); err != nil {
			return fmt.Errorf("load %s: %w", path, err)
		}
		e.log.Debug("loaded lua script", zap.String("file", path))
	}
	return nil
}
