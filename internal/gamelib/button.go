package gamelib

import "github.com/vovakirdan/box-arcade/internal/core"

// Default button colors.
const (
	ButtonFg = core.ColorWhite
	ButtonBg = core.CBDarkPink
)

// Button is a clickable text label. Its box is one text row tall and pads
// the label by one cell on each side.
type Button struct {
	Text   string
	Anchor core.Point // bottom-right pixel, exclusive
	Fg, Bg core.Color
}

// NewButton creates a button whose box ends at anchor.
func NewButton(text string, anchor core.Point) *Button {
	return &Button{Text: text, Anchor: anchor, Fg: ButtonFg, Bg: ButtonBg}
}

// Rect is the button's pixel box, aligned to text rows.
func (b *Button) Rect() core.Rect {
	w := len([]rune(b.Text)) + 2
	top := (b.Anchor.Y - 2) / 2 * 2
	return core.NewRect(b.Anchor.X-w, max(top, 0), w, 2)
}

// Contains reports whether pixel p lies on the button.
func (b *Button) Contains(p core.Point) bool {
	return b.Rect().ContainsPoint(p)
}

// Draw paints the button box and its label.
func (b *Button) Draw(dst *core.Screen) {
	r := b.Rect()
	dst.FillRect(r, b.Bg)
	dst.DrawTextColor(r.X+1, r.Y/2, b.Text, b.Fg, b.Bg)
}
