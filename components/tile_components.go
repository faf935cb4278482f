package components

// Components attached to tile entities by tile definitions.

// WalkableComponent marks a tile entities can stand on.
type WalkableComponent struct {
	Walkable bool `yaml:"walkable"`
}

// SolidComponent marks a tile that blocks movement.
type SolidComponent struct {
	Solid bool `yaml:"solid"`
}

// DamageComponent deals contact damage to entities overlapping the tile.
type DamageComponent struct {
	Amount float64 `yaml:"amount"`
}
