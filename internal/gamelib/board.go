package gamelib

import "github.com/vovakirdan/box-arcade/internal/core"

// Board is a grid of boxes of one kind plus the buttons around it.
// Boxes are stored row-major.
type Board[T Drawable] struct {
	Layout  *Layout
	Boxes   []T
	Buttons []*Button
}

// NewBoard creates a box for every grid coordinate with newBox.
func NewBoard[T Drawable](l *Layout, newBox func(b Box) T) *Board[T] {
	board := &Board[T]{
		Layout: l,
		Boxes:  make([]T, 0, l.Cols*l.Rows),
	}
	for y := 0; y < l.Rows; y++ {
		for x := 0; x < l.Cols; x++ {
			board.Boxes = append(board.Boxes, newBox(NewBox(l, x, y)))
		}
	}
	return board
}

// Index returns the slice index of grid coordinate (x, y).
func (b *Board[T]) Index(x, y int) int {
	return y*b.Layout.Cols + x
}

// At returns the box at grid coordinate (x, y).
func (b *Board[T]) At(x, y int) T {
	return b.Boxes[b.Index(x, y)]
}

// BoxAt returns the box under pixel p.
func (b *Board[T]) BoxAt(p core.Point) (T, bool) {
	for _, box := range b.Boxes {
		if box.Contains(p) {
			return box, true
		}
	}
	var zero T
	return zero, false
}

// ButtonAt returns the button under pixel p.
func (b *Board[T]) ButtonAt(p core.Point) (*Button, bool) {
	for _, btn := range b.Buttons {
		if btn.Contains(p) {
			return btn, true
		}
	}
	return nil, false
}

// AddButton appends a button to the board.
func (b *Board[T]) AddButton(btn *Button) *Button {
	b.Buttons = append(b.Buttons, btn)
	return btn
}

// Draw renders buttons, then boxes.
func (b *Board[T]) Draw(dst *core.Screen) {
	for _, btn := range b.Buttons {
		btn.Draw(dst)
	}
	for _, box := range b.Boxes {
		box.Draw(dst)
	}
}

// DrawMessage writes msg right-aligned with the grid, on the text row
// above it.
func (b *Board[T]) DrawMessage(dst *core.Screen, msg string, fg, bg core.Color) {
	if msg == "" {
		return
	}
	bounds := b.Layout.Bounds()
	row := max(bounds.Y/2-1, 0)
	col := max(bounds.Right()-len(msg), 0)
	dst.DrawTextColor(col, row, msg, fg, bg)
}
