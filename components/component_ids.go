package components

import (
	"roomforge/ecs"
)

// Numeric component ids exposed to non-native consumers such as the
// scripting layer. The values are fixed by this table for a given build;
// never reorder existing entries.
const (
	Position ecs.ComponentID = iota
	Velocity
	Sprite
	Layer
	Collider
	Grounded
	PhysicsBody
	Kinematic
	Player
	CurrentRoom
	Walkable
	Solid
	Damage
	Name
	Parent
)
