package sim

import (
	"math"

	"github.com/vovakirdan/tui-flappy/internal/ecs"
)

// SpawnTimer is a repeating timer on simulated time.
// The zero value is stopped.
type SpawnTimer struct {
	Period  float64
	Elapsed float64
}

// Running reports whether the timer has been started.
func (t SpawnTimer) Running() bool {
	return t.Period > 0
}

// Advance adds dt and reports whether a period completed. However much
// backlog accumulated, it fires at most once per call and keeps only the
// remainder.
func (t *SpawnTimer) Advance(dt float64) bool {
	if !t.Running() {
		return false
	}
	t.Elapsed += dt
	if t.Elapsed < t.Period {
		return false
	}
	t.Elapsed = math.Mod(t.Elapsed, t.Period)
	return true
}

// SpawnObstacles advances the spawn timer and creates one obstacle pair each
// time it fires. The timer starts on the first call.
func SpawnObstacles(c *Context, dt float64) bool {
	if !c.Spawner.Running() {
		c.Spawner = SpawnTimer{Period: c.Config.Obstacles.SpawnInterval}
	}
	if !c.Spawner.Advance(dt) {
		return false
	}

	o := c.Config.Obstacles
	center := o.GapCenterMin + c.Rand.Float64()*(o.GapCenterMax-o.GapCenterMin)
	SpawnPair(c, center)
	return true
}

// SpawnPair creates the two obstacles framing a gap centred at center.
func SpawnPair(c *Context, center float64) (upper, lower ecs.EntityID) {
	o := c.Config.Obstacles
	offset := o.Gap/2 + o.Height/2

	upper = c.SpawnObstacle(o.SpawnX, center+offset, true)
	lower = c.SpawnObstacle(o.SpawnX, center-offset, false)
	c.Stats.Spawned++

	c.Log.Debug("spawned obstacle pair", "gap_center", center, "x", o.SpawnX)
	return upper, lower
}
