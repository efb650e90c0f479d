package core

import (
	"fmt"
	"strings"

	"golang.org/x/image/colornames"
)

// Color is a 24-bit RGB color packed as 0xAARRGGBB where the alpha byte only
// marks the color as set. The zero value is ColorDefault: the terminal's own
// color, transparent on a pixel canvas.
//
// Color implements color.Color so window backends can hand it to drawing
// APIs directly.
type Color uint32

const opaque = 0xFF000000

// RGB builds an opaque color from its components.
func RGB(r, g, b uint8) Color {
	return Color(opaque | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// Basic palette.
const (
	ColorDefault   Color = 0
	ColorBlack     Color = 0xFF000000
	ColorWhite     Color = 0xFFFFFFFF
	ColorRed       Color = 0xFFFF0000
	ColorGreen     Color = 0xFF00FF00
	ColorBlue      Color = 0xFF0000FF
	ColorYellow    Color = 0xFFFFFF00
	ColorOrange    Color = 0xFFFF8000
	ColorPurple    Color = 0xFFFF00FF
	ColorCyan      Color = 0xFF00FFFF
	ColorNavyBlue  Color = 0xFF3C3C64
	ColorLightGray Color = 0xFFC8C8C8
	ColorGray      Color = 0xFF646464
	ColorDarkGray  Color = 0xFF323232

	// Dimmed primaries for unlit pads.
	ColorDarkRed    Color = 0xFF9B0000
	ColorDarkGreen  Color = 0xFF009B00
	ColorDarkBlue   Color = 0xFF00009B
	ColorDarkYellow Color = 0xFF9B9B00

	ColorDarkTurquoise Color = 0xFF033649
	ColorBrightBlue    Color = 0xFF0032FF
)

// Eight-color colorblind-safe palette.
const (
	CBDarkPink  Color = 0xFF781C81
	CBLightPink Color = 0xFFDD99BB
	CBDarkBlue  Color = 0xFF1F66AA
	CBLightBlue Color = 0xFF77B3DD
	CBGreen     Color = 0xFF117755
	CBYellow    Color = 0xFFF6C141
	CBOrange    Color = 0xFFE88C28
	CBRed       Color = 0xFFD92120
)

// Fourteen-color colorblind-safe rainbow.
const (
	CB14DarkPink    Color = 0xFF882E72
	CB14Pink        Color = 0xFFB178A6
	CB14LightPink   Color = 0xFFD6C1DE
	CB14DarkBlue    Color = 0xFF1965B0
	CB14Blue        Color = 0xFF5289C7
	CB14LightBlue   Color = 0xFF7BAFDE
	CB14DarkGreen   Color = 0xFF4EB265
	CB14Green       Color = 0xFF90C987
	CB14LightGreen  Color = 0xFFCAE0AB
	CB14Yellow      Color = 0xFFF7EE55
	CB14LightOrange Color = 0xFFF6C141
	CB14Orange      Color = 0xFFF1932D
	CB14DarkOrange  Color = 0xFFE8601C
	CB14Red         Color = 0xFFDC050C
)

// IsDefault reports whether c is the unset color.
func (c Color) IsDefault() bool {
	return c&opaque == 0
}

// Components returns the 8-bit red, green and blue channels.
func (c Color) Components() (r, g, b uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// RGBA implements color.Color. ColorDefault is fully transparent.
func (c Color) RGBA() (r, g, b, a uint32) {
	if c.IsDefault() {
		return 0, 0, 0, 0
	}
	r8, g8, b8 := c.Components()
	r = uint32(r8) * 0x101
	g = uint32(g8) * 0x101
	b = uint32(b8) * 0x101
	return r, g, b, 0xFFFF
}

// Hex returns the color as "#rrggbb", or "" for ColorDefault.
func (c Color) Hex() string {
	if c.IsDefault() {
		return ""
	}
	r, g, b := c.Components()
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// String implements fmt.Stringer.
func (c Color) String() string {
	if c.IsDefault() {
		return "default"
	}
	return c.Hex()
}

// Blend interpolates from c toward other by t in [0, 1].
// Blending with ColorDefault returns the set side unchanged.
func (c Color) Blend(other Color, t float64) Color {
	switch {
	case c.IsDefault():
		return other
	case other.IsDefault():
		return c
	}
	t = ClampF(t, 0, 1)
	r1, g1, b1 := c.Components()
	r2, g2, b2 := other.Components()
	mix := func(a, b uint8) uint8 {
		return uint8(float64(a) + (float64(b)-float64(a))*t + 0.5)
	}
	return RGB(mix(r1, r2), mix(g1, g2), mix(b1, b2))
}

// ParseColor accepts "#rrggbb" or an SVG color name such as "navy" or
// "lightgray".
func ParseColor(s string) (Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" || s == "default" {
		return ColorDefault, nil
	}
	if strings.HasPrefix(s, "#") {
		var r, g, b uint8
		if len(s) != 7 {
			return ColorDefault, fmt.Errorf("core: invalid color %q", s)
		}
		if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b); err != nil {
			return ColorDefault, fmt.Errorf("core: invalid color %q: %w", s, err)
		}
		return RGB(r, g, b), nil
	}
	named, ok := colornames.Map[strings.ReplaceAll(s, "_", "")]
	if !ok {
		return ColorDefault, fmt.Errorf("core: unknown color name %q", s)
	}
	return RGB(named.R, named.G, named.B), nil
}
