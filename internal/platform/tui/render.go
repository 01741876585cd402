package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/sim"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:      lipgloss.NewStyle(),
	core.ColorGreen:        lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:       lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorCyan:         lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:        lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightGreen:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBrightYellow: lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
	core.ColorBrightRed:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	core.ColorGray:         lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// Sprite glyphs.
const (
	actorChar    = '@'
	obstacleChar = '█'
	capTopChar   = '▀'
	capBotChar   = '▄'
	groundChar   = '═'
)

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// Viewport maps world coordinates (y-up, origin at centre) onto screen cells
// below a one-row HUD.
type Viewport struct {
	bounds config.Bounds
	width  int
	height int
}

// NewViewport fits bounds into a width x height screen.
func NewViewport(bounds config.Bounds, width, height int) Viewport {
	return Viewport{bounds: bounds, width: width, height: height}
}

func (v Viewport) rows() int { return max(v.height-2, 1) }

// Cell returns the screen cell containing the world point (x, y).
func (v Viewport) Cell(x, y float64) (int, int) {
	sx := float64(v.width) / (v.bounds.Right - v.bounds.Left)
	sy := float64(v.rows()) / (v.bounds.Top - v.bounds.Bottom)
	cx := int(math.Floor((x - v.bounds.Left) * sx))
	cy := int(math.Floor((v.bounds.Top-y)*sy)) + 1
	return cx, cy
}

// Rect returns the cells covered by a world box, at least one cell wide and
// tall.
func (v Viewport) Rect(s sim.Sprite) core.Rect {
	b := core.NewBox(core.V(s.X, s.Y), core.V(s.HalfW, s.HalfH))
	x0, y0 := v.Cell(b.Left(), b.Top())
	x1, y1 := v.Cell(b.Right(), b.Bottom())
	return core.NewRect(x0, y0, max(x1-x0, 1), max(y1-y0, 1))
}

// Clip limits r to the play area rows.
func (v Viewport) Clip(r core.Rect) core.Rect {
	top, bottom := 1, v.rows()+1
	y0 := core.Clamp(r.Y, top, bottom)
	y1 := core.Clamp(r.Bottom(), top, bottom)
	return core.NewRect(r.X, y0, r.W, y1-y0)
}

// drawWorld draws the HUD, the sprites and the ground line.
func drawWorld(dst *core.Screen, vp Viewport, snap sim.Snapshot, score string) {
	if score != "" {
		dst.DrawTextColored(1, 0, score, core.ColorWhite)
	}

	for _, sp := range snap.Sprites {
		r := vp.Clip(vp.Rect(sp))
		if r.H == 0 {
			// Entirely above or below the play area.
			continue
		}
		switch sp.Kind {
		case sim.KindTopObstacle:
			dst.DrawRect(r, obstacleChar, core.ColorGreen)
			dst.DrawHLine(r.X, r.Bottom()-1, r.W, capTopChar, core.ColorBrightGreen)
		case sim.KindBottomObstacle:
			dst.DrawRect(r, obstacleChar, core.ColorGreen)
			dst.DrawHLine(r.X, r.Y, r.W, capBotChar, core.ColorBrightGreen)
		case sim.KindActor:
			dst.DrawRect(r, actorChar, core.ColorBrightYellow)
		}
	}

	dst.DrawHLine(0, dst.Height()-1, dst.Width(), groundChar, core.ColorGray)
}

// drawOverlay draws a centred boxed panel with its buttons.
func drawOverlay(dst *core.Screen, o *overlay) {
	if !o.visible {
		return
	}

	labels := make([]string, len(o.buttons))
	for i, b := range o.buttons {
		labels[i] = fmt.Sprintf("[ %s ]", b.Label)
	}
	buttonRow := strings.Join(labels, "  ")

	inner := len([]rune(o.title))
	for _, l := range o.lines {
		inner = max(inner, len([]rune(l)))
	}
	inner = max(inner, len([]rune(buttonRow)))

	w := inner + 4
	h := len(o.lines) + 6
	box := core.NewRect((dst.Width()-w)/2, (dst.Height()-h)/2, w, h)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box)

	y := box.Y + 1
	drawCentered(dst, y, o.title, core.ColorBrightRed)
	y += 2
	for _, l := range o.lines {
		drawCentered(dst, y, l, core.ColorWhite)
		y++
	}
	y++

	x := (dst.Width() - len([]rune(buttonRow))) / 2
	for i, label := range labels {
		c := core.ColorGray
		if i == o.focus {
			c = core.ColorBrightYellow
		}
		dst.DrawTextColored(x, y, label, c)
		x += len([]rune(label)) + 2
	}
}

func drawCentered(dst *core.Screen, y int, text string, c core.Color) {
	x := (dst.Width() - len([]rune(text))) / 2
	dst.DrawTextColored(x, y, text, c)
}
