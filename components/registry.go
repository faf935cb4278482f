package components

import (
	"roomforge/ecs"
)

// BuildRegistry assembles the registration table for every component type
// the engine knows about. This is the single registration site: removal,
// serialization and the scripting id table are all driven from the entries
// built here. Call it once at startup, before any world exists.
func BuildRegistry() *ecs.Registry {
	return ecs.NewRegistry(
		ecs.NewRegistration[PositionComponent]("Position", Position),
		ecs.NewRegistration[VelocityComponent]("Velocity", Velocity),
		ecs.NewRegistration[SpriteComponent]("Sprite", Sprite,
			ecs.Require[PositionComponent]()),
		ecs.NewRegistration[LayerComponent]("Layer", Layer),
		ecs.NewRegistration[ColliderComponent]("Collider", Collider),
		ecs.NewRegistration[GroundedComponent]("Grounded", Grounded),
		ecs.NewRegistration[PhysicsBodyComponent]("PhysicsBody", PhysicsBody,
			ecs.Require[GroundedComponent]()),
		ecs.NewRegistration[KinematicComponent]("Kinematic", Kinematic),
		ecs.NewRegistration[PlayerComponent]("Player", Player,
			ecs.Require[ColliderComponent](), ecs.Require[VelocityComponent]()),
		ecs.NewRegistration[CurrentRoomComponent]("CurrentRoom", CurrentRoom),
		ecs.NewRegistration[WalkableComponent]("Walkable", Walkable),
		ecs.NewRegistration[SolidComponent]("Solid", Solid),
		ecs.NewRegistration[DamageComponent]("Damage", Damage),
		ecs.NewRegistration[NameComponent]("Name", Name),
		ecs.NewRegistration[ParentComponent]("Parent", Parent),
	)
}
