package sim

import (
	"fmt"
	"sort"

	"github.com/vovakirdan/tui-flappy/internal/ecs"
)

// Kind tells the renderer which sprite to draw.
type Kind int

const (
	KindActor Kind = iota
	KindTopObstacle
	KindBottomObstacle
)

func (k Kind) String() string {
	switch k {
	case KindActor:
		return "actor"
	case KindTopObstacle:
		return "top-obstacle"
	case KindBottomObstacle:
		return "bottom-obstacle"
	default:
		return "unknown"
	}
}

// Sprite is one drawable entity. HalfW and HalfH are the visual
// half-extents, which for obstacles are larger than the collider.
type Sprite struct {
	ID           ecs.EntityID
	Kind         Kind
	X, Y         float64
	HalfW, HalfH float64
}

// Snapshot is everything a presentation layer needs for one frame.
type Snapshot struct {
	Phase     Phase
	Score     int
	ScoreText string
	Sprites   []Sprite
}

// ScoreText formats a score for display.
func ScoreText(n int) string {
	return fmt.Sprintf("Score: %d", n)
}

// Snapshot copies out the current phase, score and sprites. Obstacles come
// first, ordered by entity index, and the actor last so it draws on top.
func (g *Game) Snapshot() Snapshot {
	c := g.ctx
	o := c.Config.Obstacles
	s := Snapshot{
		Phase:     c.Phase,
		Score:     c.Score,
		ScoreText: ScoreText(c.Score),
		Sprites:   make([]Sprite, 0, c.Obstacles.Len()+1),
	}

	ecs.Each2(c.Obstacles, c.Positions, func(id ecs.EntityID, ob *Obstacle, p *Position) {
		kind := KindBottomObstacle
		if ob.Upper {
			kind = KindTopObstacle
		}
		s.Sprites = append(s.Sprites, Sprite{
			ID: id, Kind: kind, X: p.X, Y: p.Y,
			HalfW: o.Width / 2, HalfH: o.Height / 2,
		})
	})
	sort.Slice(s.Sprites, func(i, j int) bool {
		return s.Sprites[i].ID.Index() < s.Sprites[j].ID.Index()
	})

	if id, ok := c.Actor(); ok {
		if p, ok := c.Positions.Get(id); ok {
			a := c.Config.Actor
			s.Sprites = append(s.Sprites, Sprite{
				ID: id, Kind: KindActor, X: p.X, Y: p.Y,
				HalfW: a.HalfW, HalfH: a.HalfH,
			})
		}
	}
	return s
}
