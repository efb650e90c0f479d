package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/box-arcade/internal/core"
)

// cellColors is the style key of a run of cells.
type cellColors struct {
	fg, bg core.Color
}

// styleCache builds each fg/bg style once per frame.
type styleCache struct {
	r      *lipgloss.Renderer
	styles map[cellColors]lipgloss.Style
}

func (c *styleCache) get(k cellColors) lipgloss.Style {
	if st, ok := c.styles[k]; ok {
		return st
	}
	st := c.r.NewStyle()
	if !k.fg.IsDefault() {
		st = st.Foreground(lipgloss.Color(k.fg.Hex()))
	}
	if !k.bg.IsDefault() {
		st = st.Background(lipgloss.Color(k.bg.Hex()))
	}
	c.styles[k] = st
	return st
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Pixels come out as half blocks through Screen.GetCell. Adjacent cells
// with the same colors are grouped to minimize ANSI escape sequences.
// A nil renderer uses lipgloss's default one.
func RenderScreen(r *lipgloss.Renderer, s *core.Screen) string {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	cache := styleCache{r: r, styles: make(map[cellColors]lipgloss.Style)}

	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			key := cellColors{cell.Fg, cell.Bg}

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if (cellColors{cell.Fg, cell.Bg}) != key {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if key == (cellColors{}) {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(cache.get(key).Render(run.String()))
		}
	}
	return sb.String()
}
