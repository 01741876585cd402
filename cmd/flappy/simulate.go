package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/platform/headless"
	"github.com/vovakirdan/tui-flappy/internal/registry"
	"github.com/vovakirdan/tui-flappy/internal/telemetry"
)

var (
	flagPilot   string
	flagRounds  int
	flagMaxTime float64
	flagTrace   string
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Let an autopilot play headless rounds",
	Long: `Plays rounds without a terminal using a fixed time step (1/fps)
and prints score and survival statistics. Each tick can be written
to a CSV trace for later analysis.

Examples:
  flappy simulate
  flappy simulate --pilot idle --rounds 5
  flappy simulate --rounds 200 --seed 7 --trace out/trace.csv`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	defaults := headless.DefaultOptions()
	simulateCmd.Flags().StringVar(&flagPilot, "pilot", "gap-follow", "Autopilot to use (see 'flappy pilots')")
	simulateCmd.Flags().IntVar(&flagRounds, "rounds", defaults.Rounds, "Number of rounds to play")
	simulateCmd.Flags().Float64Var(&flagMaxTime, "max-time", defaults.MaxTime, "Per-round limit in simulated seconds (0 = none)")
	simulateCmd.Flags().StringVar(&flagTrace, "trace", "", "Write a per-tick CSV trace to this path")
}

func runSimulate(cmd *cobra.Command, args []string) (err error) {
	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}
	if !registry.Exists(flagPilot) {
		return fmt.Errorf("unknown pilot %q (run 'flappy pilots' to see available pilots)", flagPilot)
	}
	pilot, err := registry.Create(flagPilot)
	if err != nil {
		return err
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	trace, err := telemetry.CreateTrace(flagTrace)
	if err != nil {
		return err
	}
	defer closeInto(&err, trace.Close, "trace")

	opts := headless.Options{
		Rounds:  flagRounds,
		DT:      1 / float64(flagFPS),
		MaxTime: flagMaxTime,
		Seed:    flagSeed,
	}
	runner, err := headless.NewRunner(cfg, pilot, opts, trace, logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger.Info("simulation started", "pilot", pilot.ID(), "rounds", opts.Rounds, "dt", opts.DT)
	rounds, err := runner.Run(ctx)
	if err != nil && ctx.Err() == nil {
		return err
	}
	if ctx.Err() != nil {
		logger.Warn("interrupted", "completed", len(rounds))
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "pilot:         %s\n", pilot.ID())
	fmt.Fprint(out, telemetry.Summarize(rounds).String())
	if trace != nil {
		fmt.Fprintf(out, "trace:         %s (%d rows)\n", flagTrace, trace.Rows())
	}
	return nil
}

// closeInto runs closeFn and reports its failure through errp unless an
// earlier error is already there.
func closeInto(errp *error, closeFn func() error, what string) {
	if cerr := closeFn(); cerr != nil && *errp == nil {
		*errp = fmt.Errorf("close %s: %w", what, cerr)
	}
}
