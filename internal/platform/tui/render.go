package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/neon-dodge/internal/core"
)

// colorStyles maps palette entries to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:     lipgloss.NewStyle(),
	core.ColorGrid:        lipgloss.NewStyle().Foreground(lipgloss.Color("61")),
	core.ColorPlayer:      lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true),
	core.ColorPlayerBoost: lipgloss.NewStyle().Foreground(lipgloss.Color("213")).Bold(true),
	core.ColorShield:      lipgloss.NewStyle().Foreground(lipgloss.Color("45")),
	core.ColorScoreOrb:    lipgloss.NewStyle().Foreground(lipgloss.Color("226")),
	core.ColorBoostOrb:    lipgloss.NewStyle().Foreground(lipgloss.Color("201")),
	core.ColorObstacle:    lipgloss.NewStyle().Foreground(lipgloss.Color("197")),
	core.ColorDrone:       lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorZapper:      lipgloss.NewStyle().Foreground(lipgloss.Color("129")).Bold(true),
	core.ColorFlash:       lipgloss.NewStyle().Foreground(lipgloss.Color("231")).Bold(true),
	core.ColorHUD:         lipgloss.NewStyle().Foreground(lipgloss.Color("159")),
	core.ColorDim:         lipgloss.NewStyle().Foreground(lipgloss.Color("243")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
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
