package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

var flagFormat string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Prints the configuration after applying --config on top of the
built-in defaults. The output can be saved and edited.

Examples:
  flappy config
  flappy config --format toml
  flappy config --config ./my-flappy.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagFormat, "format", "yaml", "Output format: yaml or toml")
}

func runConfig(cmd *cobra.Command, args []string) error {
	var format config.Format
	switch flagFormat {
	case "yaml", "yml":
		format = config.FormatYAML
	case "toml":
		format = config.FormatTOML
	default:
		return fmt.Errorf("unknown format %q (want yaml or toml)", flagFormat)
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	data, err := config.Marshal(cfg, format)
	if err != nil {
		return err
	}

	_, err = cmd.OutOrStdout().Write(data)
	return err
}
