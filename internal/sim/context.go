package sim

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/ecs"
)

// TerminationReason explains why a run ended.
type TerminationReason string

const (
	ReasonNone        TerminationReason = ""
	ReasonCollision   TerminationReason = "collision"
	ReasonOutOfBounds TerminationReason = "out of bounds"
)

// Stats counts what happened during the current run.
type Stats struct {
	Ticks     int     // Ticks simulated while active
	Elapsed   float64 // Simulated seconds while active
	Spawned   int     // Obstacle pairs created
	Destroyed int     // Entities removed by lifetime expiry
}

// Context is the explicit simulation state handed to every system.
// Score is written only by scoring and the round reset; Phase only by the
// Game; Gravity never changes after construction.
type Context struct {
	World      *ecs.World
	Positions  *ecs.Store[Position]
	Velocities *ecs.Store[Velocity]
	Colliders  *ecs.Store[Collider]
	Lifetimes  *ecs.Store[Lifetime]
	Scoreables *ecs.Store[Scoreable]
	Actors     *ecs.Store[Actor]
	Obstacles  *ecs.Store[Obstacle]

	Config  config.Config
	Gravity float64
	Score   int
	Phase   Phase

	Rand    *rand.Rand
	Spawner SpawnTimer
	Stats   Stats
	Log     *log.Logger

	termination TerminationReason
}

// NewContext builds an empty world for cfg. A nil logger discards output.
func NewContext(cfg config.Config, rng *rand.Rand, logger *log.Logger) *Context {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	c := &Context{
		World:      ecs.NewWorld(),
		Positions:  ecs.NewStore[Position](),
		Velocities: ecs.NewStore[Velocity](),
		Colliders:  ecs.NewStore[Collider](),
		Lifetimes:  ecs.NewStore[Lifetime](),
		Scoreables: ecs.NewStore[Scoreable](),
		Actors:     ecs.NewStore[Actor](),
		Obstacles:  ecs.NewStore[Obstacle](),
		Config:     cfg,
		Gravity:    cfg.Physics.Gravity,
		Phase:      PhaseIdle,
		Rand:       rng,
		Log:        logger,
	}
	c.World.Register(c.Positions)
	c.World.Register(c.Velocities)
	c.World.Register(c.Colliders)
	c.World.Register(c.Lifetimes)
	c.World.Register(c.Scoreables)
	c.World.Register(c.Actors)
	c.World.Register(c.Obstacles)
	return c
}

// Actor returns the player entity, if one exists.
func (c *Context) Actor() (ecs.EntityID, bool) {
	return ecs.First(c.Actors)
}

// BoxOf returns the collision box of id. Entities lacking a position or
// collider have no box.
func (c *Context) BoxOf(id ecs.EntityID) (core.Box, bool) {
	p, ok := c.Positions.Get(id)
	if !ok {
		return core.Box{}, false
	}
	col, ok := c.Colliders.Get(id)
	if !ok {
		return core.Box{}, false
	}
	return col.Box(*p), true
}

// SpawnActor creates the player at the configured origin, at rest.
func (c *Context) SpawnActor() ecs.EntityID {
	a := c.Config.Actor
	id := c.World.Create()
	ecs.Attach(c.World, c.Actors, id, Actor{})
	ecs.Attach(c.World, c.Positions, id, Position{X: a.OriginX, Y: a.OriginY})
	ecs.Attach(c.World, c.Velocities, id, Velocity{})
	ecs.Attach(c.World, c.Colliders, id, Collider{HalfW: a.HalfW, HalfH: a.HalfH})
	return id
}

// SpawnObstacle creates one scrolling obstacle centred at (x, y).
// The upper member of a pair carries the Scoreable flag.
func (c *Context) SpawnObstacle(x, y float64, upper bool) ecs.EntityID {
	o := c.Config.Obstacles
	hw, hh := o.ColliderHalf()
	id := c.World.Create()
	ecs.Attach(c.World, c.Obstacles, id, Obstacle{Upper: upper})
	ecs.Attach(c.World, c.Positions, id, Position{X: x, Y: y})
	ecs.Attach(c.World, c.Velocities, id, Velocity{DX: c.Config.Physics.ScrollSpeed})
	ecs.Attach(c.World, c.Colliders, id, Collider{HalfW: hw, HalfH: hh})
	ecs.Attach(c.World, c.Lifetimes, id, Lifetime{Remaining: o.Lifetime})
	if upper {
		ecs.Attach(c.World, c.Scoreables, id, Scoreable{})
	}
	return id
}

// RequestTermination asks the Game to end the run at the end of the tick.
// Only the first request of a tick is kept.
func (c *Context) RequestTermination(reason TerminationReason) {
	if c.termination != ReasonNone {
		return
	}
	c.termination = reason
}

// TerminationRequested reports the pending request, if any.
func (c *Context) TerminationRequested() (TerminationReason, bool) {
	return c.termination, c.termination != ReasonNone
}

func (c *Context) takeTermination() (TerminationReason, bool) {
	r, ok := c.TerminationRequested()
	c.termination = ReasonNone
	return r, ok
}
