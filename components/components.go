package components

import (
	"roomforge/geom"
)

// PositionComponent stores the world position of an entity.
type PositionComponent struct {
	Pos geom.Vec2 `yaml:"pos"`
}

// VelocityComponent stores per-axis velocity in world units per second.
type VelocityComponent struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// AnimationState tracks which clip an animated sprite is playing.
type AnimationState struct {
	Current string  `yaml:"current"` // e.g. "idle", "run"
	Timer   float64 `yaml:"timer"`   // seconds elapsed in the current frame
}

// SpriteComponent references the sprite drawn for an entity. The engine core
// never decodes the image; consumers resolve Path at their own boundary.
type SpriteComponent struct {
	Path string          `yaml:"path"`
	Anim *AnimationState `yaml:"anim,omitempty"`
}

// LayerComponent stores the Z layer of an entity.
type LayerComponent struct {
	Z int `yaml:"z"`
}

// ColliderComponent stores the collision box dimensions.
type ColliderComponent struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// GroundedComponent marks whether a physics body is resting on a surface.
type GroundedComponent struct {
	Grounded bool `yaml:"grounded"`
}

// PhysicsBodyComponent marks an entity for the physics system.
type PhysicsBodyComponent struct{}

// KinematicComponent marks entities that move by code rather than physics.
type KinematicComponent struct{}

// PlayerComponent marks the player entity.
type PlayerComponent struct{}

// CurrentRoomComponent stores the room an entity belongs to, as the room's
// id string.
type CurrentRoomComponent struct {
	Room string `yaml:"room"`
}

// NameComponent stores an entity's display name.
type NameComponent struct {
	Name string `yaml:"name"`
}
