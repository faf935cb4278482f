package scripting

import (
	"sync"

	"roomforge/ecs"
)

// SharedWorld is the exclusive-access guard for handing the world to a
// different execution context. The ECS core itself assumes a single logical
// owner per frame; any cross-context access must be serialized here, at the
// boundary, not inside the store and query primitives.
type SharedWorld struct {
	mu    sync.Mutex
	world *ecs.World
}

// NewSharedWorld wraps a world for cross-context use.
func NewSharedWorld(world *ecs.World) *SharedWorld {
	return &SharedWorld{world: world}
}

// With runs fn with exclusive access to the world.
func (s *SharedWorld) With(fn func(*ecs.World)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.world)
}
