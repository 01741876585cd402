// Package gapfollow provides a pilot that steers toward the centre of the
// next gap ahead of the actor.
package gapfollow

import (
	"math"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/registry"
	"github.com/vovakirdan/tui-flappy/internal/sim"
)

// DefaultMargin is how far below the target the actor may sink before the
// pilot flaps. A flap rises about a third of a gap, so the margin keeps the
// peak inside it.
const DefaultMargin = 20.0

func init() {
	registry.Register("gap-follow", func() registry.Pilot { return New(DefaultMargin) })
}

// Pilot flaps whenever the actor is more than Margin below the target
// height. The target is the centre of the nearest gap not yet cleared, or
// the actor's start height when no obstacle is on screen.
type Pilot struct {
	Margin float64
	target float64
}

// New creates a gap-following pilot.
func New(margin float64) *Pilot {
	return &Pilot{Margin: margin}
}

func (p *Pilot) ID() string    { return "gap-follow" }
func (p *Pilot) Title() string { return "Flaps toward the next gap" }
func (p *Pilot) Reset()        { p.target = 0 }

// Target returns the height the pilot aimed for on the last Act call.
func (p *Pilot) Target() float64 { return p.target }

func (p *Pilot) Act(s sim.Snapshot) core.InputFrame {
	in := core.NewInputFrame()

	actor, ok := findActor(s)
	if !ok {
		return in
	}
	if c, ok := nextGap(s, actor); ok {
		p.target = c
	}
	if actor.Y < p.target-p.Margin {
		in.Set(core.ActionFlap)
	}
	return in
}

func findActor(s sim.Snapshot) (sim.Sprite, bool) {
	for _, sp := range s.Sprites {
		if sp.Kind == sim.KindActor {
			return sp, true
		}
	}
	return sim.Sprite{}, false
}

// nextGap finds the closest obstacle pair whose trailing edge is still ahead
// of the actor's leading edge and returns the midpoint of its opening.
func nextGap(s sim.Snapshot, actor sim.Sprite) (float64, bool) {
	leading := actor.X - actor.HalfW

	bestX := math.Inf(1)
	top, bottom := math.NaN(), math.NaN()
	for _, sp := range s.Sprites {
		if sp.Kind == sim.KindActor || sp.X+sp.HalfW < leading {
			continue
		}
		if sp.X < bestX {
			bestX = sp.X
			top, bottom = math.NaN(), math.NaN()
		}
		if sp.X != bestX {
			continue
		}
		switch sp.Kind {
		case sim.KindTopObstacle:
			top = sp.Y - sp.HalfH
		case sim.KindBottomObstacle:
			bottom = sp.Y + sp.HalfH
		}
	}
	if math.IsNaN(top) || math.IsNaN(bottom) {
		return 0, false
	}
	return (top + bottom) / 2, true
}
