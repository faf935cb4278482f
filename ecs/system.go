package ecs

// System defines an interface for frame-driven subsystems that read and
// mutate world state through stores and queries.
type System interface {
	// Update is called once per frame.
	Update(world *World, dt float64) error
}
