package gamelib

import (
	"strconv"

	"github.com/vovakirdan/box-arcade/internal/core"
)

// Drawable is the contract shared by every box kind and by buttons.
type Drawable interface {
	Draw(dst *core.Screen)
	Contains(p core.Point) bool
}

// Box is one cell of a board. Box kinds embed it and add their payload.
type Box struct {
	Coord  core.Point
	Layout *Layout
}

// NewBox places a box at grid coordinate (x, y).
func NewBox(l *Layout, x, y int) Box {
	return Box{Coord: core.Pt(x, y), Layout: l}
}

// Rect is the box's pixel rectangle.
func (b Box) Rect() core.Rect {
	return b.Layout.BoxRect(b.Coord.X, b.Coord.Y)
}

// Contains reports whether pixel p lies inside the box.
func (b Box) Contains(p core.Point) bool {
	return b.Rect().ContainsPoint(p)
}

// Highlight draws a one-pixel frame just outside the box.
func (b Box) Highlight(dst *core.Screen, c core.Color) {
	dst.StrokeRect(b.Rect().Inset(-1), c, 1)
}

// IconBox shows an icon when revealed and a plain cover otherwise.
type IconBox struct {
	Box
	Icon     Icon
	Revealed bool
	Cover    core.Color
	Back     core.Color
}

// Draw renders the box in its current revealed state.
func (b *IconBox) Draw(dst *core.Screen) {
	if b.Revealed {
		b.DrawCoverage(dst, 0)
		return
	}
	dst.FillRect(b.Rect(), b.Cover)
}

// DrawCoverage renders the icon with the cover slid over its leftmost
// coverage pixels. Used by reveal and cover animations.
func (b *IconBox) DrawCoverage(dst *core.Screen, coverage int) {
	r := b.Rect()
	dst.FillRect(r, b.Back)
	DrawIcon(dst, b.Icon.Shape, r, b.Icon.Color, b.Back)
	if coverage > 0 {
		dst.FillRect(core.NewRect(r.X, r.Y, min(coverage, r.W), r.H), b.Cover)
	}
}

// LabelBox is a numbered tile. Label 0 is the blank.
type LabelBox struct {
	Box
	Label int
	Fg    core.Color
	Bg    core.Color
}

// Draw renders the tile in place.
func (b *LabelBox) Draw(dst *core.Screen) {
	b.DrawOffset(dst, 0, 0)
}

// DrawOffset renders the tile shifted by (dx, dy) pixels.
func (b *LabelBox) DrawOffset(dst *core.Screen, dx, dy int) {
	if b.Label == 0 {
		return
	}
	r := b.Rect().Translate(dx, dy)
	dst.FillRect(r, b.Bg)
	drawCenteredLabel(dst, r, strconv.Itoa(b.Label), b.Fg, b.Bg)
}

// drawCenteredLabel puts text on the text row nearest the rectangle's
// vertical center.
func drawCenteredLabel(dst *core.Screen, r core.Rect, text string, fg, bg core.Color) {
	cx, cy := r.Center()
	row := cy / 2
	col := cx - len(text)/2
	dst.DrawTextColor(col, row, text, fg, bg)
}

// BlankBox is an empty cell painted in a single color.
type BlankBox struct {
	Box
	Color core.Color
}

// Draw fills the cell. ColorDefault draws nothing.
func (b *BlankBox) Draw(dst *core.Screen) {
	if b.Color.IsDefault() {
		return
	}
	dst.FillRect(b.Rect(), b.Color)
}

// ColorBox is a solid cell with an optional lit color and tone, used for
// Simon pads and tetris cells.
type ColorBox struct {
	Box
	Color core.Color
	Lit   core.Color
	Tone  core.Sound
}

// Draw fills the cell with its base color. ColorDefault draws nothing.
func (b *ColorBox) Draw(dst *core.Screen) {
	b.DrawLit(dst, 0)
}

// DrawLit fills the cell blended toward the lit color by t in [0, 1].
func (b *ColorBox) DrawLit(dst *core.Screen, t float64) {
	if b.Color.IsDefault() {
		return
	}
	c := b.Color
	if t > 0 && !b.Lit.IsDefault() {
		c = b.Color.Blend(b.Lit, t)
	}
	dst.FillRect(b.Rect(), c)
}

// DrawBevel fills the cell with its color and an inner square in the lit
// color, the look of a tetris block.
func (b *ColorBox) DrawBevel(dst *core.Screen) {
	if b.Color.IsDefault() {
		return
	}
	r := b.Rect()
	dst.FillRect(r, b.Color)
	if inner := r.Inset(max(r.W/4, 1)); !inner.Empty() && !b.Lit.IsDefault() {
		dst.FillRect(inner, b.Lit)
	}
}
