package tetris

import (
	"github.com/vovakirdan/box-arcade/internal/config"
	"github.com/vovakirdan/box-arcade/internal/core"
)

// Grid is the playfield. Each cell holds the color of a frozen block or
// ColorDefault when empty.
type Grid struct {
	W, H  int
	cells []core.Color
}

// NewGrid creates an empty w x h grid.
func NewGrid(w, h int) *Grid {
	return &Grid{W: w, H: h, cells: make([]core.Color, w*h)}
}

// At returns the color at (x, y). Cells off the grid read as empty.
func (g *Grid) At(x, y int) core.Color {
	if x < 0 || x >= g.W || y < 0 || y >= g.H {
		return core.ColorDefault
	}
	return g.cells[y*g.W+x]
}

// Set stores c at (x, y). Cells off the grid are ignored.
func (g *Grid) Set(x, y int, c core.Color) {
	if x < 0 || x >= g.W || y < 0 || y >= g.H {
		return
	}
	g.cells[y*g.W+x] = c
}

// Clear empties the grid.
func (g *Grid) Clear() {
	clear(g.cells)
}

// Valid reports whether p shifted by (dx, dy) fits: every cell inside the
// columns, above the floor and not on a frozen block. Cells above the top
// row are allowed.
func (g *Grid) Valid(p Piece, dx, dy int) bool {
	for _, c := range p.Cells(dx, dy) {
		if c.Y < 0 {
			if c.X < 0 || c.X >= g.W {
				return false
			}
			continue
		}
		if c.X < 0 || c.X >= g.W || c.Y >= g.H {
			return false
		}
		if !g.At(c.X, c.Y).IsDefault() {
			return false
		}
	}
	return true
}

// Add freezes p into the grid. Cells above the top row are dropped.
func (g *Grid) Add(p Piece) {
	for _, c := range p.Cells(0, 0) {
		g.Set(c.X, c.Y, p.Shape.Color)
	}
}

// CompleteLines returns the full rows, bottom first.
func (g *Grid) CompleteLines() []int {
	var rows []int
	for y := g.H - 1; y >= 0; y-- {
		full := true
		for x := 0; x < g.W; x++ {
			if g.At(x, y).IsDefault() {
				full = false
				break
			}
		}
		if full {
			rows = append(rows, y)
		}
	}
	return rows
}

// RemoveLines deletes the given rows, shifts everything above them down
// and fills the top with empty rows.
func (g *Grid) RemoveLines(rows []int) {
	gone := make(map[int]bool, len(rows))
	for _, y := range rows {
		gone[y] = true
	}
	dst := g.H - 1
	for y := g.H - 1; y >= 0; y-- {
		if gone[y] {
			continue
		}
		if dst != y {
			copy(g.cells[dst*g.W:(dst+1)*g.W], g.cells[y*g.W:(y+1)*g.W])
		}
		dst--
	}
	for ; dst >= 0; dst-- {
		clear(g.cells[dst*g.W : (dst+1)*g.W])
	}
}

// LineScore is the score for clearing n lines at once: ten per line with
// a bonus for every line past the first and another past the third.
func LineScore(n int) int {
	if n <= 0 {
		return 0
	}
	base := n * 10
	bonus := int(0.1 * float64(n-1) * float64(base))
	super := int(0.15 * float64(max(0, n-3)) * float64(base))
	return base + bonus + super
}

// Level returns the level for a score, starting at 1.
func Level(score, pointsPerLevel int) int {
	if pointsPerLevel <= 0 {
		return 1
	}
	return score/pointsPerLevel + 1
}

// FallInterval is the seconds between gravity steps at a level.
func FallInterval(level int, t config.TetrisTiming) float64 {
	return max(t.BaseFall-float64(level)*t.FallStep, t.MinFall)
}
