package sim

import "github.com/vovakirdan/tui-flappy/internal/ecs"

// UpdateScore marks every unpassed scoreable obstacle the actor has moved
// beyond and adds one point for each. A flag never resets, so each pair
// scores once.
func UpdateScore(c *Context) int {
	actor, ok := c.Actor()
	if !ok {
		return 0
	}
	ap, ok := c.Positions.Get(actor)
	if !ok {
		return 0
	}

	gained := 0
	ecs.Each2(c.Scoreables, c.Positions, func(_ ecs.EntityID, s *Scoreable, p *Position) {
		if s.Passed || ap.X <= p.X {
			return
		}
		s.Passed = true
		gained++
	})
	c.Score += gained
	return gained
}
