package sim

// Phase is the top-level state of a game session.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseActive
	PhaseTerminated
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseActive:
		return "active"
	case PhaseTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// Surfaces receives the presentation hooks fired on phase edges. Each hook
// runs exactly once per transition.
type Surfaces interface {
	ShowMenu()
	HideMenu()
	ShowGameOver(score int)
	HideGameOver()
	ResetScoreDisplay()
}

// NopSurfaces ignores every hook. Headless runs use it.
type NopSurfaces struct{}

func (NopSurfaces) ShowMenu()          {}
func (NopSurfaces) HideMenu()          {}
func (NopSurfaces) ShowGameOver(int)   {}
func (NopSurfaces) HideGameOver()      {}
func (NopSurfaces) ResetScoreDisplay() {}
