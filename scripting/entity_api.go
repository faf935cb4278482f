package scripting

import (
	lua "github.com/yuin/gopher-lua"

	"roomforge/components"
	"roomforge/ecs"
	"roomforge/geom"
)

// registerEntityAPI installs the world mutation functions scripts call.
// Entities cross the boundary as UUID strings; component types are named by
// their numeric id from the `components` table.
func (e *Engine) registerEntityAPI() {
	e.vm.SetGlobal("spawn", e.vm.NewFunction(e.luaSpawn))
	e.vm.SetGlobal("despawn", e.vm.NewFunction(e.luaDespawn))
	e.vm.SetGlobal("set_position", e.vm.NewFunction(e.luaSetPosition))
	e.vm.SetGlobal("get_position", e.vm.NewFunction(e.luaGetPosition))
	e.vm.SetGlobal("add_component", e.vm.NewFunction(e.luaAddComponent))
	e.vm.SetGlobal("has_component", e.vm.NewFunction(e.luaHasComponent))
	e.vm.SetGlobal("remove_component", e.vm.NewFunction(e.luaRemoveComponent))
}

func (e *Engine) checkEntity(l *lua.LState, arg int) ecs.Entity {
	s := l.CheckString(arg)
	entity, err := ecs.ParseEntity(s)
	if err != nil {
		l.ArgError(arg, err.Error())
	}
	return entity
}

func (e *Engine) checkRegistration(l *lua.LState, arg int) *ecs.Registration {
	id := ecs.ComponentID(l.CheckInt(arg))
	reg, ok := e.world.Registry().ByID(id)
	if !ok {
		l.ArgError(arg, "unknown component id")
	}
	return reg
}

// spawn() -> entity id string
func (e *Engine) luaSpawn(l *lua.LState) int {
	entity := e.world.CreateEntity().Finish()
	l.Push(lua.LString(entity.String()))
	return 1
}

// despawn(entity)
func (e *Engine) luaDespawn(l *lua.LState) int {
	e.world.RemoveEntity(e.checkEntity(l, 1))
	return 0
}

// set_position(entity, x, y) -> number of entities moved
func (e *Engine) luaSetPosition(l *lua.LState) int {
	entity := e.checkEntity(l, 1)
	x := float64(l.CheckNumber(2))
	y := float64(l.CheckNumber(3))
	moved := components.SetEntityPosition(e.world, entity, geom.V(x, y))
	l.Push(lua.LNumber(moved))
	return 1
}

// get_position(entity) -> x, y | nil
func (e *Engine) luaGetPosition(l *lua.LState) int {
	entity := e.checkEntity(l, 1)
	pos, ok := ecs.StoreFor[components.PositionComponent](e.world).Get(entity)
	if !ok {
		l.Push(lua.LNil)
		return 1
	}
	l.Push(lua.LNumber(pos.Pos.X))
	l.Push(lua.LNumber(pos.Pos.Y))
	return 2
}

// add_component(entity, component_id)
// Runs the registered factory, so prerequisites are inserted as well.
func (e *Engine) luaAddComponent(l *lua.LState) int {
	entity := e.checkEntity(l, 1)
	reg := e.checkRegistration(l, 2)
	reg.AddDefault(e.world, entity)
	return 0
}

// has_component(entity, component_id) -> bool
func (e *Engine) luaHasComponent(l *lua.LState) int {
	entity := e.checkEntity(l, 1)
	reg := e.checkRegistration(l, 2)
	l.Push(lua.LBool(reg.Has(e.world, entity)))
	return 1
}

// remove_component(entity, component_id)
func (e *Engine) luaRemoveComponent(l *lua.LState) int {
	entity := e.checkEntity(l, 1)
	reg := e.checkRegistration(l, 2)
	reg.RemoveFrom(e.world, entity)
	return 0
}
