package gamelib

import (
	"strconv"
	"strings"

	"github.com/vovakirdan/box-arcade/internal/core"
)

// Layout is the derived geometry of a grid of square boxes. It is computed
// once per board and shared read-only by every box on it.
type Layout struct {
	Cols, Rows     int
	XMargin        int // pixels left of the first column
	YMargin        int // pixels above the first row
	BoxSize        int
	GapSize        int
	AnimationSpeed int // pixels per frame for sliding animations
}

// CalcLayout fits cols x rows boxes into the middle 80% of a width x height
// pixel area. gap is the fraction of each cell left empty between boxes.
// Boxes are square, so the tighter axis decides the size, and the grid is
// centered in the area.
func CalcLayout(width, height, cols, rows int, gap float64) Layout {
	cols, rows = max(cols, 1), max(rows, 1)

	xMargin := int(float64(width) * 0.1)
	yMargin := int(float64(height) * 0.1)
	boardW := width - 2*xMargin
	boardH := height - 2*yMargin

	cellW := float64(boardW) / float64(cols)
	cellH := float64(boardH) / float64(rows)

	box := min(int(cellW*(1-gap)), int(cellH*(1-gap)))
	gapSize := min(int(cellW*gap), int(cellH*gap))

	l := Layout{
		Cols:           cols,
		Rows:           rows,
		BoxSize:        max(box, 1),
		GapSize:        max(gapSize, 0),
		AnimationSpeed: max(box/3, 1),
	}
	l.XMargin = (width - l.GridWidth()) / 2
	l.YMargin = (height - l.GridHeight()) / 2
	return l
}

// GridWidth is the pixel width from the first box's left edge to the last
// box's right edge.
func (l Layout) GridWidth() int {
	return l.Cols*l.BoxSize + (l.Cols-1)*l.GapSize
}

// GridHeight is GridWidth for rows.
func (l Layout) GridHeight() int {
	return l.Rows*l.BoxSize + (l.Rows-1)*l.GapSize
}

// Bounds is the rectangle covering every box of the grid.
func (l Layout) Bounds() core.Rect {
	return core.NewRect(l.XMargin, l.YMargin, l.GridWidth(), l.GridHeight())
}

// Origin converts a box coordinate to the pixel of its top-left corner.
func (l Layout) Origin(x, y int) core.Point {
	return core.Point{
		X: x*(l.BoxSize+l.GapSize) + l.XMargin,
		Y: y*(l.BoxSize+l.GapSize) + l.YMargin,
	}
}

// BoxRect returns the pixel rectangle of the box at (x, y).
func (l Layout) BoxRect(x, y int) core.Rect {
	o := l.Origin(x, y)
	return core.NewRect(o.X, o.Y, l.BoxSize, l.BoxSize)
}

// CellAt maps a pixel to the box under it. Pixels in gaps or outside the
// grid report false.
func (l Layout) CellAt(p core.Point) (core.Point, bool) {
	pitch := l.BoxSize + l.GapSize
	dx, dy := p.X-l.XMargin, p.Y-l.YMargin
	if dx < 0 || dy < 0 || pitch <= 0 {
		return core.Point{}, false
	}
	x, y := dx/pitch, dy/pitch
	if x >= l.Cols || y >= l.Rows {
		return core.Point{}, false
	}
	if dx%pitch >= l.BoxSize || dy%pitch >= l.BoxSize {
		return core.Point{}, false
	}
	return core.Pt(x, y), true
}

// InBounds reports whether (x, y) is a box coordinate of this grid.
func (l Layout) InBounds(x, y int) bool {
	return x >= 0 && x < l.Cols && y >= 0 && y < l.Rows
}

// ParseGrid reads a "COLSxROWS" board size such as "6x4".
func ParseGrid(s string) (cols, rows int, ok bool) {
	c, r, found := strings.Cut(strings.ToLower(strings.TrimSpace(s)), "x")
	if !found {
		return 0, 0, false
	}
	cols, err := strconv.Atoi(c)
	if err != nil || cols <= 0 {
		return 0, 0, false
	}
	rows, err = strconv.Atoi(r)
	if err != nil || rows <= 0 {
		return 0, 0, false
	}
	return cols, rows, true
}
