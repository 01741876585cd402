package tui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/sim"
)

// Model is the Bubble Tea model for a game session.
type Model struct {
	game       *sim.Game
	surfaces   *Surfaces
	screen     *core.Screen
	bounds     config.Bounds
	runtime    core.RuntimeConfig
	keyMapper  *KeyMapper
	keys       KeyMap
	help       help.Model
	clock      clock
	inputFrame core.InputFrame
	quitting   bool
}

// NewModel creates a session in the idle phase with the start menu shown.
func NewModel(cfg config.Config, rt core.RuntimeConfig, logger *log.Logger) Model {
	if rt.TickRate <= 0 {
		rt.TickRate = core.DefaultConfig().TickRate
	}

	surfaces := NewSurfaces()
	game := sim.New(cfg,
		sim.WithSurfaces(surfaces),
		sim.WithSeed(rt.Seed),
		sim.WithLogger(logger),
	)

	keys := DefaultKeyMap()
	return Model{
		game:       game,
		surfaces:   surfaces,
		screen:     core.NewScreen(rt.ScreenW, rt.ScreenH-1),
		bounds:     cfg.Bounds,
		runtime:    rt,
		keyMapper:  NewKeyMapper(keys),
		keys:       keys,
		help:       help.New(),
		clock:      newClock(rt.TickRate),
		inputFrame: core.NewInputFrame(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

// handleKey queues the mapped action for the next tick. Exit is applied at
// once so the program stops without waiting for a tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, nav := m.keyMapper.MapKey(msg, m.surfaces.Focused())
	if nav != NavNone {
		m.surfaces.Move(nav)
		return m, nil
	}

	switch action {
	case core.ActionNone:
		return m, nil
	case core.ActionExit:
		exit := core.NewInputFrame()
		exit.Set(core.ActionExit)
		m.game.Step(exit, 0)
		m.quitting = true
		return m, tea.Quit
	}

	m.inputFrame.Set(action)
	return m, nil
}

// handleResize keeps the simulation running; only the viewport changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.runtime.ScreenW = msg.Width
	m.runtime.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-1, 1))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick advances the simulation by the wall-clock delta.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	dt := m.clock.delta(timeOf(msg))
	res := m.game.Step(m.inputFrame, dt)
	m.inputFrame.Clear()

	if res.Phase != sim.PhaseIdle {
		m.surfaces.SetScore(sim.ScoreText(res.Score))
	}
	if res.Exit {
		m.quitting = true
		return m, tea.Quit
	}
	return m, tickCmd(m.runtime.TickRate)
}

// Game returns the running simulation.
func (m Model) Game() *sim.Game { return m.game }

// Surfaces returns the overlay state.
func (m Model) Surfaces() *Surfaces { return m.surfaces }

// Frame draws the current state into the screen buffer.
func (m Model) Frame() *core.Screen {
	m.screen.Clear()
	vp := NewViewport(m.bounds, m.screen.Width(), m.screen.Height())
	drawWorld(m.screen, vp, m.game.Snapshot(), m.surfaces.Score())
	drawOverlay(m.screen, &m.surfaces.menu)
	drawOverlay(m.screen, &m.surfaces.gameOver)
	return m.screen
}

// View renders the screen buffer followed by the key help line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return RenderScreen(m.Frame()) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program and blocks until the player exits.
func Run(cfg config.Config, rt core.RuntimeConfig, logger *log.Logger) error {
	p := tea.NewProgram(
		NewModel(cfg, rt, logger),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
