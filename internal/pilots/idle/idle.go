// Package idle provides a pilot that never flaps. It is the baseline for
// how long a run lasts on gravity alone.
package idle

import (
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/registry"
	"github.com/vovakirdan/tui-flappy/internal/sim"
)

func init() {
	registry.Register("idle", func() registry.Pilot { return Pilot{} })
}

// Pilot never produces input.
type Pilot struct{}

func (Pilot) ID() string    { return "idle" }
func (Pilot) Title() string { return "Never flaps" }
func (Pilot) Reset()        {}

func (Pilot) Act(sim.Snapshot) core.InputFrame {
	return core.NewInputFrame()
}
