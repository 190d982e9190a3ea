package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/marralek/glidebird/internal/core"
	"github.com/marralek/glidebird/internal/sim"
)

// Visual characters for rendering
const (
	birdChar      = '◉'
	beakChar      = '>'
	pipeChar      = '█'
	pipeCapTop    = '▄'
	pipeCapBottom = '▀'
	groundChar    = '═'
	dirtChar      = '░'
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:      lipgloss.NewStyle(),
	core.ColorRed:          lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:        lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:       lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:         lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorCyan:         lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:        lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightGreen:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBrightYellow: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBrightWhite:  lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorOrange:       lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:         lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
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

// DrawSnapshot renders a simulation snapshot onto the screen buffer,
// scaling world units to terminal cells.
func DrawSnapshot(dst *core.Screen, snap sim.Snapshot, paused bool) {
	dst.Clear()

	sx := float64(dst.Width()) / snap.ViewW
	sy := float64(dst.Height()) / snap.ViewH

	for _, o := range snap.Obstacles {
		drawPipes(dst, o, sx, sy)
	}
	drawGround(dst, snap, sy)
	drawBird(dst, snap, sx, sy)
	drawHUD(dst, snap)

	switch {
	case paused:
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	case snap.Phase == sim.PhaseStart:
		drawCenteredMessage(dst, "GLIDEBIRD", "Press Space to flap")
	case snap.Phase == sim.PhaseGameOver:
		drawCenteredMessage(dst, "GAME OVER",
			fmt.Sprintf("Score: %d  |  Press R to restart", snap.Score))
	}
}

// drawGround fills everything below the ground line with dirt texture.
func drawGround(dst *core.Screen, snap sim.Snapshot, sy float64) {
	groundRow := int(snap.GroundY * sy)
	if groundRow >= dst.Height() {
		groundRow = dst.Height() - 1
	}

	dst.DrawHLine(0, groundRow, dst.Width(), groundChar, core.ColorYellow)
	for y := groundRow + 1; y < dst.Height(); y++ {
		dst.DrawHLine(0, y, dst.Width(), dirtChar, core.ColorGray)
	}
}

// drawPipes renders one pipe-pair. Passed pipes dim to gray so the player
// can see what already scored.
func drawPipes(dst *core.Screen, o sim.ObstacleView, sx, sy float64) {
	color := core.ColorGreen
	if o.Passed {
		color = core.ColorGray
	}

	x := int(o.Top.X * sx)
	w := int(o.Top.W * sx)
	if w < 1 {
		w = 1
	}

	// Top section hangs from the ceiling down to the gap.
	topH := int(o.Top.Bottom() * sy)
	if topH > 0 {
		dst.FillRect(x, 0, w, topH, pipeChar, color)
		dst.DrawHLine(x, topH-1, w, pipeCapTop, color)
	}

	// Bottom section rises from below the gap.
	bottomY := int(o.Bottom.Y * sy)
	bottomH := int(o.Bottom.H*sy) + 1
	dst.FillRect(x, bottomY, w, bottomH, pipeChar, color)
	dst.DrawHLine(x, bottomY, w, pipeCapBottom, color)
}

// drawBird renders the agent with a beak whose row offset hints at the
// current tilt.
func drawBird(dst *core.Screen, snap sim.Snapshot, sx, sy float64) {
	x := int(snap.AgentX * sx)
	y := int(snap.AgentY * sy)

	dst.SetColored(x, y, birdChar, core.ColorBrightYellow)

	beakY := y
	if snap.AgentRot < -0.1 {
		beakY = y - 1 // Tilted up
	} else if snap.AgentRot > 0.3 {
		beakY = y + 1 // Diving
	}
	dst.SetColored(x+1, beakY, beakChar, core.ColorOrange)
}

// drawHUD renders the score line.
func drawHUD(dst *core.Screen, snap sim.Snapshot) {
	hud := fmt.Sprintf(" Score: %d   Best: %d ", snap.Score, snap.Best)
	dst.DrawTextColored(2, 0, hud, core.ColorBrightWhite)
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.FillRect(boxX, boxY, boxW, boxH, ' ', core.ColorDefault)
	dst.DrawBox(boxX, boxY, boxW, boxH)

	titleX := boxX + (boxW-len(title))/2
	dst.DrawText(titleX, boxY+1, title)

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}
