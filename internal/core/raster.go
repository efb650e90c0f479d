package core

import "sort"

// Pixel-layer drawing primitives. A width of 0 means filled, any other width
// is an outline of that thickness.

// FillRect paints every pixel of r.
func (s *Screen) FillRect(r Rect, c Color) {
	x0, y0 := max(r.X, 0), max(r.Y, 0)
	x1, y1 := min(r.Right(), s.PixelWidth()), min(r.Bottom(), s.PixelHeight())
	for y := y0; y < y1; y++ {
		row := s.pixels[y*s.width : (y+1)*s.width]
		for x := x0; x < x1; x++ {
			row[x] = c
		}
	}
}

// StrokeRect paints the border of r, width pixels thick, inside r.
func (s *Screen) StrokeRect(r Rect, c Color, width int) {
	if width <= 0 || width*2 >= min(r.W, r.H) {
		s.FillRect(r, c)
		return
	}
	s.FillRect(NewRect(r.X, r.Y, r.W, width), c)
	s.FillRect(NewRect(r.X, r.Bottom()-width, r.W, width), c)
	s.FillRect(NewRect(r.X, r.Y+width, width, r.H-2*width), c)
	s.FillRect(NewRect(r.Right()-width, r.Y+width, width, r.H-2*width), c)
}

// Line draws a segment from a to b inclusive using Bresenham's algorithm.
// Widths above 1 stamp a square brush centered on the path.
func (s *Screen) Line(a, b Point, c Color, width int) {
	dx := Abs(b.X - a.X)
	dy := -Abs(b.Y - a.Y)
	sx, sy := 1, 1
	if a.X > b.X {
		sx = -1
	}
	if a.Y > b.Y {
		sy = -1
	}
	err := dx + dy
	x, y := a.X, a.Y
	for {
		s.stamp(x, y, c, width)
		if x == b.X && y == b.Y {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
}

func (s *Screen) stamp(x, y int, c Color, width int) {
	if width <= 1 {
		s.SetPixel(x, y, c)
		return
	}
	off := width / 2
	s.FillRect(NewRect(x-off, y-off, width, width), c)
}

// Lines draws connected segments through pts, closing the path if closed.
func (s *Screen) Lines(pts []Point, c Color, closed bool, width int) {
	for i := 1; i < len(pts); i++ {
		s.Line(pts[i-1], pts[i], c, width)
	}
	if closed && len(pts) > 2 {
		s.Line(pts[len(pts)-1], pts[0], c, width)
	}
}

// Circle draws a circle of the given radius around center.
func (s *Screen) Circle(center Point, radius int, c Color, width int) {
	if radius <= 0 {
		s.SetPixel(center.X, center.Y, c)
		return
	}
	outer := radius*radius + radius
	inner := -1
	if width > 0 && width < radius {
		ir := radius - width
		inner = ir*ir + ir
	}
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			d := dx*dx + dy*dy
			if d <= outer && d > inner {
				s.SetPixel(center.X+dx, center.Y+dy, c)
			}
		}
	}
}

// Ellipse draws the ellipse inscribed in r.
func (s *Screen) Ellipse(r Rect, c Color, width int) {
	if r.Empty() {
		return
	}
	cx := float64(r.X) + float64(r.W)/2
	cy := float64(r.Y) + float64(r.H)/2
	a, b := float64(r.W)/2, float64(r.H)/2
	ia, ib := a-float64(width), b-float64(width)
	hollow := width > 0 && ia > 0 && ib > 0

	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			px, py := float64(x)+0.5-cx, float64(y)+0.5-cy
			if (px*px)/(a*a)+(py*py)/(b*b) > 1 {
				continue
			}
			if hollow && (px*px)/(ia*ia)+(py*py)/(ib*ib) < 1 {
				continue
			}
			s.SetPixel(x, y, c)
		}
	}
}

// Polygon draws the polygon through pts. Filled polygons use the even-odd
// rule sampled at pixel centers.
func (s *Screen) Polygon(pts []Point, c Color, width int) {
	if len(pts) < 3 {
		s.Lines(pts, c, false, max(width, 1))
		return
	}
	if width > 0 {
		s.Lines(pts, c, true, width)
		return
	}

	minY, maxY := pts[0].Y, pts[0].Y
	for _, p := range pts[1:] {
		minY = min(minY, p.Y)
		maxY = max(maxY, p.Y)
	}

	xs := make([]float64, 0, len(pts))
	for y := minY; y <= maxY; y++ {
		sy := float64(y) + 0.5
		xs = xs[:0]
		for i := range pts {
			a, b := pts[i], pts[(i+1)%len(pts)]
			ay, by := float64(a.Y), float64(b.Y)
			if (ay <= sy) == (by <= sy) {
				continue
			}
			t := (sy - ay) / (by - ay)
			xs = append(xs, float64(a.X)+t*float64(b.X-a.X))
		}
		sort.Float64s(xs)
		for i := 0; i+1 < len(xs); i += 2 {
			for x := int(xs[i] + 0.5); float64(x)+0.5 <= xs[i+1]; x++ {
				s.SetPixel(x, y, c)
			}
		}
	}
	// Edges of zero-area spans still get drawn.
	s.Lines(pts, c, true, 1)
}
