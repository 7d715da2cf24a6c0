package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/pipeslide/internal/core"
)

// styles holds one lipgloss style per screen colour. Built once; sessions
// render concurrently.
var styles = func() [core.ColorBrightWhite + 1]lipgloss.Style {
	var out [core.ColorBrightWhite + 1]lipgloss.Style
	for c := range out {
		color := core.Color(c)
		st := lipgloss.NewStyle()
		if code := color.ANSI(); code != "" {
			st = st.Foreground(lipgloss.Color(code))
		}
		// Water and the selection stand out from the dry pipes.
		if color.Bright() {
			st = st.Bold(true)
		}
		out[c] = st
	}
	return out
}()

func styleFor(c core.Color) lipgloss.Style {
	if int(c) >= len(styles) {
		return styles[core.ColorDefault]
	}
	return styles[c]
}

// RenderScreen turns a screen buffer into a styled string, one escape
// sequence per run of same-coloured cells.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run []rune
	for y := range s.Height() {
		if y > 0 {
			sb.WriteByte('\n')
		}
		run = run[:0]
		color := s.GetCell(0, y).Color
		for x := range s.Width() {
			cell := s.GetCell(x, y)
			if cell.Color != color {
				sb.WriteString(styleFor(color).Render(string(run)))
				run, color = run[:0], cell.Color
			}
			run = append(run, cell.Rune)
		}
		if len(run) > 0 {
			sb.WriteString(styleFor(color).Render(string(run)))
		}
	}
	return sb.String()
}
