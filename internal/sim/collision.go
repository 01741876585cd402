package sim

import (
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/ecs"
)

// CheckCollisions requests termination when the actor's box overlaps any
// obstacle. The walk stops at the first hit.
func CheckCollisions(c *Context) bool {
	actor, ok := c.Actor()
	if !ok {
		return false
	}
	ab, ok := c.BoxOf(actor)
	if !ok {
		return false
	}

	hit := ecs.Any(c.Obstacles, func(id ecs.EntityID, _ *Obstacle) bool {
		ob, ok := c.BoxOf(id)
		return ok && ab.Intersects(ob)
	})
	if hit {
		c.RequestTermination(ReasonCollision)
	}
	return hit
}

// CheckBounds requests termination when any part of the actor's box lies
// above the top boundary or below the bottom one.
func CheckBounds(c *Context) bool {
	actor, ok := c.Actor()
	if !ok {
		return false
	}
	box, ok := c.BoxOf(actor)
	if !ok {
		return false
	}
	if !OutOfBounds(box, c.Config.Bounds.Top, c.Config.Bounds.Bottom) {
		return false
	}
	c.RequestTermination(ReasonOutOfBounds)
	return true
}

// OutOfBounds reports whether b's vertical extent crosses top or bottom.
func OutOfBounds(b core.Box, top, bottom float64) bool {
	return b.Top() > top || b.Bottom() < bottom
}
