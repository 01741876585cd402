// Package sim is the tick-driven simulation of the flappy game: an actor
// falling under gravity, scrolling obstacle pairs, collision, bounds and
// scoring, all gated by a three-phase controller.
//
// The package owns no clock and draws nothing. Callers feed it input frames
// and a time delta and read back phase, score and sprite positions.
package sim

import (
	"io"
	"math"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// StepResult describes what a single Step did.
type StepResult struct {
	Phase        Phase
	Score        int
	Simulated    bool              // Systems ran this tick
	Transitioned bool              // Phase changed this tick
	Reason       TerminationReason // Set when the run ended this tick
	Spawned      bool              // A new obstacle pair appeared
	Expired      int               // Entities removed by lifetime
	Gained       int               // Points scored this tick
	Exit         bool              // Exit has been requested
}

// Game drives the phase machine and runs the systems in a fixed order while
// the phase is active.
type Game struct {
	ctx      *Context
	surfaces Surfaces
	log      *log.Logger
	exit     bool
}

// Option configures a Game.
type Option func(*gameOptions)

type gameOptions struct {
	logger   *log.Logger
	surfaces Surfaces
	rng      *rand.Rand
}

// WithLogger routes phase and spawn events to l.
func WithLogger(l *log.Logger) Option {
	return func(o *gameOptions) { o.logger = l }
}

// WithSurfaces installs the presentation hooks.
func WithSurfaces(s Surfaces) Option {
	return func(o *gameOptions) { o.surfaces = s }
}

// WithSeed seeds the gap generator. Zero picks a time-based seed.
func WithSeed(seed int64) Option {
	return func(o *gameOptions) {
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		o.rng = rand.New(rand.NewSource(seed))
	}
}

// New creates a game in the idle phase and shows the menu surface.
func New(cfg config.Config, opts ...Option) *Game {
	o := gameOptions{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = log.New(io.Discard)
	}
	if o.surfaces == nil {
		o.surfaces = NopSurfaces{}
	}
	if o.rng == nil {
		o.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	g := &Game{
		ctx:      NewContext(cfg, o.rng, o.logger),
		surfaces: o.surfaces,
		log:      o.logger,
	}
	g.surfaces.ShowMenu()
	return g
}

// Context exposes the simulation state. Callers outside tests should treat
// it as read-only.
func (g *Game) Context() *Context { return g.ctx }

// Phase returns the current phase.
func (g *Game) Phase() Phase { return g.ctx.Phase }

// Score returns the current score.
func (g *Game) Score() int { return g.ctx.Score }

// Stats returns counters for the current run.
func (g *Game) Stats() Stats { return g.ctx.Stats }

// ExitRequested reports whether Exit has been called.
func (g *Game) ExitRequested() bool { return g.exit }

// Start begins a run from the idle phase. It reports whether the phase
// changed; in any other phase the request is dropped.
func (g *Game) Start() bool {
	if g.ctx.Phase != PhaseIdle {
		g.log.Debug("start ignored", "phase", g.ctx.Phase)
		return false
	}
	g.enterActive()
	return true
}

// Restart begins a fresh run after termination. It reports whether the
// phase changed; in any other phase the request is dropped.
func (g *Game) Restart() bool {
	if g.ctx.Phase != PhaseTerminated {
		g.log.Debug("restart ignored", "phase", g.ctx.Phase)
		return false
	}
	g.enterActive()
	return true
}

// Exit marks the session finished. It is valid in every phase.
func (g *Game) Exit() {
	if g.exit {
		return
	}
	g.exit = true
	g.log.Info("exit requested", "phase", g.ctx.Phase, "score", g.ctx.Score)
}

// Step handles the control requests in `in` and, while active, advances the
// simulation by dt seconds. A tick that changes phase through a request does
// not also simulate. Non-positive dt is ignored and large dt is capped.
func (g *Game) Step(in core.InputFrame, dt float64) (res StepResult) {
	defer func() {
		res.Phase = g.ctx.Phase
		res.Score = g.ctx.Score
		res.Exit = g.exit
	}()

	if g.exit {
		return res
	}
	if in.Has(core.ActionExit) {
		g.Exit()
		return res
	}
	if in.Has(core.ActionStart) && g.Start() {
		res.Transitioned = true
		return res
	}
	if in.Has(core.ActionRestart) && g.Restart() {
		res.Transitioned = true
		return res
	}

	if g.ctx.Phase != PhaseActive || dt <= 0 || math.IsNaN(dt) {
		return res
	}
	if limit := g.ctx.Config.Timing.MaxDT; limit > 0 && dt > limit {
		dt = limit
	}

	g.tick(in, dt, &res)

	if reason, ok := g.ctx.takeTermination(); ok {
		g.enterTerminated(reason)
		res.Transitioned = true
		res.Reason = reason
	}
	return res
}

func (g *Game) tick(in core.InputFrame, dt float64, res *StepResult) {
	c := g.ctx

	ApplyGravity(c, dt)
	if in.Has(core.ActionFlap) {
		ApplyFlap(c)
	}
	Integrate(c, dt)
	res.Spawned = SpawnObstacles(c, dt)
	res.Expired = AgeLifetimes(c, dt)
	CheckCollisions(c)
	CheckBounds(c)
	res.Gained = UpdateScore(c)
	c.World.Flush()

	c.Stats.Ticks++
	c.Stats.Elapsed += dt
	c.Stats.Destroyed += res.Expired
	res.Simulated = true
}

func (g *Game) enterActive() {
	from := g.ctx.Phase
	g.resetRound()
	g.ctx.Phase = PhaseActive

	switch from {
	case PhaseIdle:
		g.surfaces.HideMenu()
	case PhaseTerminated:
		g.surfaces.HideGameOver()
	}
	g.log.Info("phase changed", "from", from, "to", PhaseActive, "score", g.ctx.Score)
}

func (g *Game) enterTerminated(reason TerminationReason) {
	from := g.ctx.Phase
	g.ctx.Phase = PhaseTerminated
	g.surfaces.ShowGameOver(g.ctx.Score)
	g.log.Info("phase changed", "from", from, "to", PhaseTerminated, "score", g.ctx.Score, "reason", reason)
}

// resetRound clears every actor and obstacle, zeroes the score and spawns a
// single fresh actor at the origin.
func (g *Game) resetRound() {
	c := g.ctx
	for _, id := range c.Actors.Entities() {
		c.World.Destroy(id)
	}
	for _, id := range c.Obstacles.Entities() {
		c.World.Destroy(id)
	}
	c.World.Flush()

	c.Score = 0
	c.Spawner = SpawnTimer{}
	c.Stats = Stats{}
	c.termination = ReasonNone
	g.surfaces.ResetScoreDisplay()

	c.SpawnActor()
}
