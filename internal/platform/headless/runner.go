// Package headless plays rounds without a terminal: an autopilot supplies
// the input and a fixed time step replaces the wall clock.
package headless

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/registry"
	"github.com/vovakirdan/tui-flappy/internal/sim"
	"github.com/vovakirdan/tui-flappy/internal/telemetry"
)

// Options control a batch of headless rounds.
type Options struct {
	Rounds  int     // Number of rounds to play
	DT      float64 // Fixed step in seconds
	MaxTime float64 // Per-round limit in simulated seconds; 0 means none
	Seed    int64   // 0 picks a time-based seed
}

// DefaultOptions plays ten rounds at 60 ticks per second, capped at two
// simulated minutes each.
func DefaultOptions() Options {
	return Options{Rounds: 10, DT: 1.0 / 60, MaxTime: 120}
}

func (o Options) validate() error {
	var errs []error
	if o.Rounds <= 0 {
		errs = append(errs, errors.New("rounds must be positive"))
	}
	if o.DT <= 0 {
		errs = append(errs, errors.New("dt must be positive"))
	}
	if o.MaxTime < 0 {
		errs = append(errs, errors.New("max time must not be negative"))
	}
	return errors.Join(errs...)
}

// Runner plays rounds of the game with a pilot.
type Runner struct {
	cfg   config.Config
	pilot registry.Pilot
	opts  Options
	trace *telemetry.TraceWriter
	log   *log.Logger
	seeds *rand.Rand
}

// NewRunner validates opts and prepares a runner. trace may be nil.
func NewRunner(cfg config.Config, pilot registry.Pilot, opts Options, trace *telemetry.TraceWriter, logger *log.Logger) (*Runner, error) {
	if err := opts.validate(); err != nil {
		return nil, errorf("invalid options: %w", err)
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Runner{
		cfg:   cfg,
		pilot: pilot,
		opts:  opts,
		trace: trace,
		log:   logger,
		seeds: rand.New(rand.NewSource(seed)),
	}, nil
}

// Run plays every round and returns their outcomes. A terminated round is
// followed by a restart of the same game; a round that hits the time limit
// is followed by a fresh game. Cancelling ctx stops between ticks and
// returns the rounds finished so far.
func (r *Runner) Run(ctx context.Context) ([]telemetry.Round, error) {
	rounds := make([]telemetry.Round, 0, r.opts.Rounds)

	var game *sim.Game
	for i := 1; i <= r.opts.Rounds; i++ {
		if game == nil || game.Phase() != sim.PhaseTerminated {
			game = sim.New(r.cfg, sim.WithSeed(r.seeds.Int63()+1), sim.WithLogger(r.log))
			game.Step(control(core.ActionStart), 0)
		} else {
			game.Step(control(core.ActionRestart), 0)
		}
		if game.Phase() != sim.PhaseActive {
			return rounds, errorf("round %d did not start (phase %s)", i, game.Phase())
		}

		round, err := r.play(ctx, game, i)
		if err != nil {
			return rounds, err
		}
		rounds = append(rounds, round)
		r.log.Info("round finished", "round", i, "score", round.Score,
			"survival", round.Survival, "reason", round.Reason)
	}
	return rounds, nil
}

func (r *Runner) play(ctx context.Context, game *sim.Game, n int) (telemetry.Round, error) {
	r.pilot.Reset()

	var res sim.StepResult
	for game.Phase() == sim.PhaseActive {
		if err := ctx.Err(); err != nil {
			return telemetry.Round{}, err
		}
		if r.opts.MaxTime > 0 && game.Stats().Elapsed >= r.opts.MaxTime {
			break
		}

		in := core.NewInputFrame()
		if r.pilot.Act(game.Snapshot()).Has(core.ActionFlap) {
			in.Set(core.ActionFlap)
		}
		res = game.Step(in, r.opts.DT)

		if err := r.trace.Write(traceRecord(game, n)); err != nil {
			return telemetry.Round{}, err
		}
	}

	st := game.Stats()
	return telemetry.Round{
		Score:    game.Score(),
		Survival: st.Elapsed,
		Ticks:    st.Ticks,
		Reason:   string(res.Reason),
		Spawned:  st.Spawned,
	}, nil
}

func errorf(format string, args ...any) error {
	return fmt.Errorf("headless: "+format, args...)
}

func control(a core.Action) core.InputFrame {
	in := core.NewInputFrame()
	in.Set(a)
	return in
}

func traceRecord(game *sim.Game, round int) telemetry.TraceRecord {
	c := game.Context()
	rec := telemetry.TraceRecord{
		Round:     round,
		Tick:      c.Stats.Ticks,
		Time:      c.Stats.Elapsed,
		Phase:     c.Phase.String(),
		Obstacles: c.Obstacles.Len(),
		Score:     c.Score,
	}
	if id, ok := c.Actor(); ok {
		if p, ok := c.Positions.Get(id); ok {
			rec.ActorY = p.Y
		}
		if v, ok := c.Velocities.Get(id); ok {
			rec.ActorDY = v.DY
		}
	}
	return rec
}
