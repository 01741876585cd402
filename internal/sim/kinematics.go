package sim

import "github.com/vovakirdan/tui-flappy/internal/ecs"

// ApplyGravity accelerates every actor by the gravity constant.
func ApplyGravity(c *Context, dt float64) {
	ecs.Each2(c.Actors, c.Velocities, func(_ ecs.EntityID, _ *Actor, v *Velocity) {
		v.DY += c.Gravity * dt
	})
}

// ApplyFlap sets every actor's vertical velocity to the flap speed.
// It overwrites rather than adds, so repeated flaps never stack.
func ApplyFlap(c *Context) {
	flap := c.Config.Physics.FlapSpeed
	ecs.Each2(c.Actors, c.Velocities, func(_ ecs.EntityID, _ *Actor, v *Velocity) {
		v.DY = flap
	})
}

// Integrate moves every entity with a velocity by the same dt.
func Integrate(c *Context, dt float64) {
	ecs.Each2(c.Positions, c.Velocities, func(_ ecs.EntityID, p *Position, v *Velocity) {
		p.X += v.DX * dt
		p.Y += v.DY * dt
	})
}
