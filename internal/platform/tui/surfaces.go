package tui

import (
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/sim"
)

// Button is a selectable entry on an overlay surface.
type Button struct {
	Label  string
	Action core.Action
}

// overlay is a titled panel with a row of buttons.
type overlay struct {
	visible bool
	title   string
	lines   []string
	buttons []Button
	focus   int
}

func (o *overlay) show() {
	o.visible = true
	o.focus = 0
}

func (o *overlay) hide() {
	o.visible = false
}

func (o *overlay) move(n Nav) {
	if len(o.buttons) == 0 {
		return
	}
	switch n {
	case NavPrev:
		o.focus = (o.focus + len(o.buttons) - 1) % len(o.buttons)
	case NavNext:
		o.focus = (o.focus + 1) % len(o.buttons)
	}
}

func (o *overlay) focused() core.Action {
	if !o.visible || len(o.buttons) == 0 {
		return core.ActionNone
	}
	return o.buttons[o.focus].Action
}

// Surfaces holds the menu, the game-over panel and the score label. The
// simulation toggles them through the sim.Surfaces hooks.
type Surfaces struct {
	menu     overlay
	gameOver overlay
	score    string
}

var _ sim.Surfaces = (*Surfaces)(nil)

// NewSurfaces creates hidden surfaces.
func NewSurfaces() *Surfaces {
	return &Surfaces{
		menu: overlay{
			title: "F L A P P Y",
			lines: []string{"Fly through the gaps"},
			buttons: []Button{
				{Label: "Start", Action: core.ActionStart},
				{Label: "Exit", Action: core.ActionExit},
			},
		},
		gameOver: overlay{
			title: "GAME OVER",
			buttons: []Button{
				{Label: "Restart", Action: core.ActionRestart},
				{Label: "Exit", Action: core.ActionExit},
			},
		},
	}
}

func (s *Surfaces) ShowMenu() { s.menu.show() }
func (s *Surfaces) HideMenu() { s.menu.hide() }

func (s *Surfaces) ShowGameOver(score int) {
	s.gameOver.lines = []string{sim.ScoreText(score)}
	s.gameOver.show()
}

func (s *Surfaces) HideGameOver() { s.gameOver.hide() }

func (s *Surfaces) ResetScoreDisplay() { s.score = sim.ScoreText(0) }

// SetScore updates the score label.
func (s *Surfaces) SetScore(text string) { s.score = text }

// Score returns the score label. It is empty until the first run starts.
func (s *Surfaces) Score() string { return s.score }

// active returns the overlay that currently owns button input.
func (s *Surfaces) active() *overlay {
	switch {
	case s.gameOver.visible:
		return &s.gameOver
	case s.menu.visible:
		return &s.menu
	}
	return nil
}

// Focused returns the action of the focused button, or ActionNone when no
// overlay is visible.
func (s *Surfaces) Focused() core.Action {
	if o := s.active(); o != nil {
		return o.focused()
	}
	return core.ActionNone
}

// Move shifts button focus on the visible overlay.
func (s *Surfaces) Move(n Nav) {
	if o := s.active(); o != nil {
		o.move(n)
	}
}

// MenuVisible reports whether the start menu is shown.
func (s *Surfaces) MenuVisible() bool { return s.menu.visible }

// GameOverVisible reports whether the game-over panel is shown.
func (s *Surfaces) GameOverVisible() bool { return s.gameOver.visible }
