// flappy is a terminal side-scroller: keep the bird in the air and fly it
// through the gaps between scrolling pipes.
//
// Usage:
//
//	flappy                  - Play (same as "flappy play")
//	flappy play             - Play in the terminal
//	flappy simulate         - Run autopilot rounds headless and print stats
//	flappy pilots           - List available autopilots
//	flappy config           - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>       - Set tick rate (default: 60)
//	--seed <value>     - Set RNG seed for reproducible gaps
//	--config <path>    - Load simulation constants from YAML or TOML
//	--log-file <path>  - Write logs to a file
//	--debug            - Log spawns and ignored requests too
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import pilots to register them
	_ "github.com/vovakirdan/tui-flappy/internal/pilots/gapfollow"
	_ "github.com/vovakirdan/tui-flappy/internal/pilots/idle"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagConfig  string
	flagLogFile string
	flagDebug   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappy",
	Short: "Flappy - fly through the gaps in your terminal",
	Long: `Flappy is a terminal side-scroller. Gravity pulls the bird down,
a flap sends it back up, and pipes scroll in from the right with a
gap at a random height. Touch a pipe or leave the screen and the
run is over.

Available commands:
  play      - Play in the terminal (default)
  simulate  - Let an autopilot play headless rounds
  pilots    - List available autopilots
  config    - Print the effective configuration

Examples:
  flappy
  flappy play --seed 42
  flappy simulate --pilot gap-follow --rounds 100
  flappy config --format toml > flappy.toml`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a YAML or TOML config file")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(pilotsCmd)
	rootCmd.AddCommand(configCmd)
}
