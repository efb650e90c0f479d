package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func countPixels(s *Screen, c Color) int {
	n := 0
	for y := 0; y < s.PixelHeight(); y++ {
		for x := 0; x < s.PixelWidth(); x++ {
			if s.Pixel(x, y) == c {
				n++
			}
		}
	}
	return n
}

func TestFillRectClips(t *testing.T) {
	s := NewScreen(10, 5)
	s.FillRect(NewRect(-2, -2, 5, 5), ColorRed)
	assert.Equal(t, 9, countPixels(s, ColorRed))

	s.FillRect(NewRect(8, 8, 10, 10), ColorBlue)
	assert.Equal(t, 4, countPixels(s, ColorBlue))
}

func TestStrokeRect(t *testing.T) {
	s := NewScreen(10, 5)
	s.StrokeRect(NewRect(0, 0, 6, 6), ColorGreen, 1)

	assert.Equal(t, 20, countPixels(s, ColorGreen))
	assert.Equal(t, ColorDefault, s.Pixel(2, 2))
}

func TestLineEndpoints(t *testing.T) {
	tests := []struct {
		name string
		a, b Point
		n    int
	}{
		{"horizontal", Pt(0, 0), Pt(9, 0), 10},
		{"vertical", Pt(3, 1), Pt(3, 8), 8},
		{"diagonal", Pt(0, 0), Pt(5, 5), 6},
		{"reversed", Pt(7, 6), Pt(1, 2), 7},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewScreen(10, 5)
			s.Line(tc.a, tc.b, ColorWhite, 1)
			assert.Equal(t, ColorWhite, s.Pixel(tc.a.X, tc.a.Y))
			assert.Equal(t, ColorWhite, s.Pixel(tc.b.X, tc.b.Y))
			assert.Equal(t, tc.n, countPixels(s, ColorWhite))
		})
	}
}

func TestCircleFilledAndRing(t *testing.T) {
	s := NewScreen(21, 11)
	s.Circle(Pt(10, 10), 6, ColorRed, 0)
	assert.Equal(t, ColorRed, s.Pixel(10, 10))
	assert.Equal(t, ColorRed, s.Pixel(16, 10))
	assert.Equal(t, ColorDefault, s.Pixel(16, 16))

	ring := NewScreen(21, 11)
	ring.Circle(Pt(10, 10), 6, ColorRed, 2)
	assert.Equal(t, ColorDefault, ring.Pixel(10, 10), "ring center stays empty")
	assert.Equal(t, ColorRed, ring.Pixel(16, 10))
	assert.Less(t, countPixels(ring, ColorRed), countPixels(s, ColorRed))
}

func TestEllipseInsideRect(t *testing.T) {
	s := NewScreen(20, 10)
	r := NewRect(2, 4, 12, 6)
	s.Ellipse(r, ColorYellow, 0)

	for y := 0; y < s.PixelHeight(); y++ {
		for x := 0; x < s.PixelWidth(); x++ {
			if s.Pixel(x, y) == ColorYellow && !r.Contains(x, y) {
				t.Fatalf("pixel (%d, %d) outside bounding rect", x, y)
			}
		}
	}
	cx, cy := r.Center()
	assert.Equal(t, ColorYellow, s.Pixel(cx, cy))
	assert.Equal(t, ColorDefault, s.Pixel(r.X, r.Y), "corners stay empty")
}

func TestPolygonFill(t *testing.T) {
	s := NewScreen(10, 5)
	square := []Point{Pt(1, 1), Pt(6, 1), Pt(6, 6), Pt(1, 6)}
	s.Polygon(square, ColorCyan, 0)

	assert.Equal(t, 36, countPixels(s, ColorCyan))
	assert.Equal(t, ColorDefault, s.Pixel(0, 0))
	assert.Equal(t, ColorDefault, s.Pixel(7, 7))
}

func TestPolygonTriangleIsConvex(t *testing.T) {
	s := NewScreen(20, 10)
	s.Polygon([]Point{Pt(10, 0), Pt(19, 19), Pt(0, 19)}, ColorOrange, 0)

	for y := 0; y < s.PixelHeight(); y++ {
		inRun, runs := false, 0
		for x := 0; x < s.PixelWidth(); x++ {
			on := s.Pixel(x, y) == ColorOrange
			if on && !inRun {
				runs++
			}
			inRun = on
		}
		assert.LessOrEqual(t, runs, 1, "row %d", y)
	}
}
