package sim

import "github.com/vovakirdan/tui-flappy/internal/core"

// Position is the centre of an entity in world units (y-up).
type Position struct {
	X, Y float64
}

// Velocity is a per-second displacement. Only kinematics writes it.
type Velocity struct {
	DX, DY float64
}

// Collider holds the half-extents of the entity's axis-aligned box.
// Fixed at creation.
type Collider struct {
	HalfW, HalfH float64
}

// Box returns the collider placed at p.
func (c Collider) Box(p Position) core.Box {
	return core.NewBox(core.V(p.X, p.Y), core.V(c.HalfW, c.HalfH))
}

// Lifetime counts down seconds until the entity is removed.
type Lifetime struct {
	Remaining float64
}

// Scoreable marks the one obstacle of a pair that awards a point.
type Scoreable struct {
	Passed bool
}

// Actor marks the player-controlled entity.
type Actor struct{}

// Obstacle marks a scrolling obstacle. Upper is the member of the pair above
// the gap.
type Obstacle struct {
	Upper bool
}
