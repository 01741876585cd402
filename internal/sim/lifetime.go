package sim

import "github.com/vovakirdan/tui-flappy/internal/ecs"

// AgeLifetimes counts down every Lifetime and queues entities whose time has
// run out. Removal happens when the world is flushed at the end of the tick.
// It returns how many entities expired this tick.
func AgeLifetimes(c *Context, dt float64) int {
	expired := 0
	ecs.Each(c.Lifetimes, func(id ecs.EntityID, l *Lifetime) {
		l.Remaining -= dt
		if l.Remaining <= 0 {
			c.World.Destroy(id)
			expired++
		}
	})
	return expired
}
