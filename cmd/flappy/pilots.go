package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/registry"
)

var pilotsCmd = &cobra.Command{
	Use:   "pilots",
	Short: "List available autopilots",
	Long:  `Shows every autopilot that 'flappy simulate' can use.`,
	Args:  cobra.NoArgs,
	Run:   runPilots,
}

func runPilots(cmd *cobra.Command, args []string) {
	out := cmd.OutOrStdout()
	pilots := registry.List()

	if len(pilots) == 0 {
		fmt.Fprintln(out, "No pilots available.")
		return
	}

	fmt.Fprintln(out, "Available pilots:")
	fmt.Fprintln(out)

	maxIDLen := 2 // "ID" header
	for _, p := range pilots {
		if len(p.ID) > maxIDLen {
			maxIDLen = len(p.ID)
		}
	}

	fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, "ID", "Description")
	fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, "--", "-----------")
	for _, p := range pilots {
		fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, p.ID, p.Title)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'flappy simulate --pilot <id>' to watch one play.")
}
