package core

import (
	"strings"
)

// Cell is one character position of the screen.
type Cell struct {
	Rune rune
	Fg   Color
	Bg   Color
}

const (
	upperHalf = '▀'
	lowerHalf = '▄'
)

// Screen is a 2D character buffer for rendering game graphics.
//
// It carries two layers. The text layer holds runes with optional colors.
// The pixel layer is twice as tall as the text layer: every character cell
// shows two square pixels stacked vertically. Platforms read the composed
// result through GetCell, where text wins over pixels and takes the pixel
// color underneath as its background.
type Screen struct {
	width  int
	height int
	cells  [][]Cell
	pixels []Color
}

// NewScreen creates a new screen buffer with the given dimensions in cells.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  width,
		height: height,
	}
	s.allocate()
	s.Clear()
	return s
}

func (s *Screen) allocate() {
	s.cells = make([][]Cell, s.height)
	for y := range s.cells {
		s.cells[y] = make([]Cell, s.width)
	}
	s.pixels = make([]Color, s.width*s.height*2)
}

// Width returns the screen width in characters.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in characters.
func (s *Screen) Height() int {
	return s.height
}

// PixelWidth returns the width of the pixel layer.
func (s *Screen) PixelWidth() int {
	return s.width
}

// PixelHeight returns the height of the pixel layer.
func (s *Screen) PixelHeight() int {
	return s.height * 2
}

// Resize changes the screen dimensions, preserving content where possible.
func (s *Screen) Resize(width, height int) {
	if width == s.width && height == s.height {
		return
	}

	oldCells, oldPixels := s.cells, s.pixels
	oldW, oldH := s.width, s.height

	s.width = width
	s.height = height
	s.allocate()
	s.Clear()

	copyW := min(oldW, width)
	copyH := min(oldH, height)
	for y := 0; y < copyH; y++ {
		copy(s.cells[y][:copyW], oldCells[y][:copyW])
	}
	for y := 0; y < copyH*2; y++ {
		copy(s.pixels[y*width:y*width+copyW], oldPixels[y*oldW:y*oldW+copyW])
	}
}

// Clear resets both layers: spaces on the default colors.
func (s *Screen) Clear() {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = Cell{Rune: ' '}
		}
	}
	clear(s.pixels)
}

// Fill fills the entire text layer with the given rune.
func (s *Screen) Fill(r rune) {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x].Rune = r
		}
	}
}

func (s *Screen) inBounds(x, y int) bool {
	return x >= 0 && x < s.width && y >= 0 && y < s.height
}

// Set places a rune at the given position, keeping the cell colors.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) Set(x, y int, r rune) {
	if !s.inBounds(x, y) {
		return
	}
	s.cells[y][x].Rune = r
}

// SetColored places a rune with a foreground color.
func (s *Screen) SetColored(x, y int, r rune, fg Color) {
	if !s.inBounds(x, y) {
		return
	}
	s.cells[y][x].Rune = r
	s.cells[y][x].Fg = fg
}

// SetCell replaces a text cell entirely.
func (s *Screen) SetCell(x, y int, c Cell) {
	if !s.inBounds(x, y) {
		return
	}
	s.cells[y][x] = c
}

// Get returns the text rune at the given position.
// Returns space for out-of-bounds coordinates.
func (s *Screen) Get(x, y int) rune {
	if !s.inBounds(x, y) {
		return ' '
	}
	return s.cells[y][x].Rune
}

// GetCell returns the composed cell at (x, y): text if any was drawn there,
// otherwise the two pixels under the cell as a half block.
func (s *Screen) GetCell(x, y int) Cell {
	if !s.inBounds(x, y) {
		return Cell{Rune: ' '}
	}
	top := s.pixels[(2*y)*s.width+x]
	bottom := s.pixels[(2*y+1)*s.width+x]

	c := s.cells[y][x]
	if c.Rune != ' ' || !c.Bg.IsDefault() {
		if c.Bg.IsDefault() {
			c.Bg = top
		}
		return c
	}

	switch {
	case top == bottom:
		return Cell{Rune: ' ', Bg: top}
	case top.IsDefault():
		return Cell{Rune: lowerHalf, Fg: bottom}
	default:
		return Cell{Rune: upperHalf, Fg: top, Bg: bottom}
	}
}

// SetPixel paints one pixel of the pixel layer.
func (s *Screen) SetPixel(x, y int, c Color) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height*2 {
		return
	}
	s.pixels[y*s.width+x] = c
}

// Pixel returns the color at a pixel, ColorDefault when out of bounds.
func (s *Screen) Pixel(x, y int) Color {
	if x < 0 || x >= s.width || y < 0 || y >= s.height*2 {
		return ColorDefault
	}
	return s.pixels[y*s.width+x]
}

// FillPixels paints the whole pixel layer with c.
func (s *Screen) FillPixels(c Color) {
	for i := range s.pixels {
		s.pixels[i] = c
	}
}

// DrawText writes a string horizontally starting at (x, y).
// Characters that extend beyond screen bounds are clipped.
func (s *Screen) DrawText(x, y int, text string) {
	for i, r := range []rune(text) {
		s.Set(x+i, y, r)
	}
}

// DrawTextColor writes colored text. Spaces in text are written too, so
// they punch through pixels only when bg is set.
func (s *Screen) DrawTextColor(x, y int, text string, fg, bg Color) {
	for i, r := range []rune(text) {
		s.SetCell(x+i, y, Cell{Rune: r, Fg: fg, Bg: bg})
	}
}

// DrawTextCentered draws text centered horizontally at the given y position.
func (s *Screen) DrawTextCentered(y int, text string) {
	x := (s.width - len([]rune(text))) / 2
	s.DrawText(x, y, text)
}

// DrawTextCenteredColor is DrawTextCentered with colors.
func (s *Screen) DrawTextCenteredColor(y int, text string, fg, bg Color) {
	x := (s.width - len([]rune(text))) / 2
	s.DrawTextColor(x, y, text, fg, bg)
}

// DrawRect fills a rectangular area of the text layer with the given rune.
func (s *Screen) DrawRect(r Rect, fill rune) {
	for y := r.Y; y < r.Y+r.H; y++ {
		for x := r.X; x < r.X+r.W; x++ {
			s.Set(x, y, fill)
		}
	}
}

// DrawBox draws a box outline using box-drawing characters.
func (s *Screen) DrawBox(r Rect) {
	s.DrawBoxColor(r, ColorDefault)
}

// DrawBoxColor draws a box outline in the given foreground color.
func (s *Screen) DrawBoxColor(r Rect, fg Color) {
	s.SetColored(r.X, r.Y, '┌', fg)
	s.SetColored(r.Right()-1, r.Y, '┐', fg)
	s.SetColored(r.X, r.Bottom()-1, '└', fg)
	s.SetColored(r.Right()-1, r.Bottom()-1, '┘', fg)

	for x := r.X + 1; x < r.Right()-1; x++ {
		s.SetColored(x, r.Y, '─', fg)
		s.SetColored(x, r.Bottom()-1, '─', fg)
	}

	for y := r.Y + 1; y < r.Bottom()-1; y++ {
		s.SetColored(r.X, y, '│', fg)
		s.SetColored(r.Right()-1, y, '│', fg)
	}
}

// DrawHLine draws a horizontal line from (x, y) with the given length.
func (s *Screen) DrawHLine(x, y, length int, r rune) {
	for i := 0; i < length; i++ {
		s.Set(x+i, y, r)
	}
}

// DrawVLine draws a vertical line from (x, y) with the given length.
func (s *Screen) DrawVLine(x, y, length int, r rune) {
	for i := 0; i < length; i++ {
		s.Set(x, y+i, r)
	}
}

// String converts the composed screen to plain text, one line per row.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height)

	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < s.width; x++ {
			sb.WriteRune(s.GetCell(x, y).Rune)
		}
	}
	return sb.String()
}

// Row returns the composed runes of the specified row as a string.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	var sb strings.Builder
	for x := 0; x < s.width; x++ {
		sb.WriteRune(s.GetCell(x, y).Rune)
	}
	return sb.String()
}
