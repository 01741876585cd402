package registry

import (
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/sim"
)

type stubPilot struct{ id string }

func (p stubPilot) ID() string                       { return p.id }
func (p stubPilot) Title() string                    { return "Stub " + p.id }
func (p stubPilot) Reset()                           {}
func (p stubPilot) Act(sim.Snapshot) core.InputFrame { return core.NewInputFrame() }
