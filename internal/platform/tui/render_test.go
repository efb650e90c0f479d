package tui

import (
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/box-arcade/internal/core"
)

func plainRenderer() *lipgloss.Renderer {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.Ascii)
	return r
}

func TestRenderScreenHalfBlocks(t *testing.T) {
	s := core.NewScreen(3, 1)
	s.SetPixel(0, 0, core.ColorRed)
	s.SetPixel(1, 1, core.ColorBlue)

	assert.Equal(t, "▀▄ ", RenderScreen(plainRenderer(), s))
}

func TestRenderScreenTextOverPixels(t *testing.T) {
	s := core.NewScreen(4, 2)
	s.FillPixels(core.ColorBlue)
	s.DrawText(1, 1, "hi")

	lines := strings.Split(RenderScreen(plainRenderer(), s), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "    ", lines[0])
	assert.Equal(t, " hi ", lines[1])
}

func TestRenderScreenGroupsRuns(t *testing.T) {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.TrueColor)

	s := core.NewScreen(4, 1)
	for x := range 4 {
		s.SetPixel(x, 0, core.ColorRed)
	}

	out := RenderScreen(r, s)
	assert.Contains(t, out, "▀▀▀▀")
	assert.Equal(t, 1, strings.Count(out, "\x1b[0m"), "one styled run for four equal cells")
}

func TestRenderScreenDefaultCellsUnstyled(t *testing.T) {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.TrueColor)

	s := core.NewScreen(5, 1)
	s.DrawText(0, 0, "hello")

	assert.Equal(t, "hello", RenderScreen(r, s))
}
