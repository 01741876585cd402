package gapfollow

import (
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/registry"
	"github.com/vovakirdan/tui-flappy/internal/sim"
)

func pair(x, center float64) []sim.Sprite {
	return []sim.Sprite{
		{Kind: sim.KindTopObstacle, X: x, Y: center + 350, HalfW: 25, HalfH: 300},
		{Kind: sim.KindBottomObstacle, X: x, Y: center - 350, HalfW: 25, HalfH: 300},
	}
}

func snapshot(actorY float64, obstacles ...[]sim.Sprite) sim.Snapshot {
	var s sim.Snapshot
	for _, o := range obstacles {
		s.Sprites = append(s.Sprites, o...)
	}
	s.Sprites = append(s.Sprites, sim.Sprite{Kind: sim.KindActor, Y: actorY, HalfW: 16, HalfH: 16})
	return s
}

func TestAct(t *testing.T) {
	tests := []struct {
		name       string
		snap       sim.Snapshot
		wantFlap   bool
		wantTarget float64
	}{
		{"no obstacles, at start height", snapshot(0), false, 0},
		{"no obstacles, sinking", snapshot(-30), true, 0},
		{"below next gap", snapshot(-10, pair(200, 60)), true, 60},
		{"inside next gap", snapshot(50, pair(200, 60)), false, 60},
		{"nearest pair wins", snapshot(0, pair(400, -100), pair(150, 80)), true, 80},
		{"cleared pair ignored", snapshot(0, pair(-60, 120), pair(140, -90)), false, -90},
		{"pair overlapping actor still counts", snapshot(0, pair(-20, 120)), true, 120},
		{"no actor", sim.Snapshot{Sprites: pair(100, 0)}, false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New(DefaultMargin)
			in := p.Act(tt.snap)
			if got := in.Has(core.ActionFlap); got != tt.wantFlap {
				t.Errorf("flap = %v, want %v", got, tt.wantFlap)
			}
			if p.Target() != tt.wantTarget {
				t.Errorf("target = %v, want %v", p.Target(), tt.wantTarget)
			}
		})
	}
}

func TestTargetPersistsUntilReset(t *testing.T) {
	p := New(DefaultMargin)
	p.Act(snapshot(0, pair(100, 90)))
	p.Act(snapshot(0))
	if p.Target() != 90 {
		t.Errorf("target = %v, want it kept at 90", p.Target())
	}
	p.Reset()
	if p.Target() != 0 {
		t.Errorf("target after Reset = %v, want 0", p.Target())
	}
}

func TestRegistered(t *testing.T) {
	p, err := registry.Create("gap-follow")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if p.ID() != "gap-follow" {
		t.Errorf("ID() = %q", p.ID())
	}
}
