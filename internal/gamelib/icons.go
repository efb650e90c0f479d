package gamelib

import (
	"github.com/vovakirdan/box-arcade/internal/core"
)

// Shape is one of the icon shapes drawn inside a box.
type Shape int

const (
	ShapeDiamond Shape = iota
	ShapeDonut
	ShapeLines
	ShapeOval
	ShapeSquare
)

// AllShapes lists every shape in a stable order.
var AllShapes = []Shape{ShapeDiamond, ShapeDonut, ShapeLines, ShapeOval, ShapeSquare}

var shapeNames = map[Shape]string{
	ShapeDiamond: "diamond",
	ShapeDonut:   "donut",
	ShapeLines:   "lines",
	ShapeOval:    "oval",
	ShapeSquare:  "square",
}

// String returns the shape name.
func (s Shape) String() string {
	if name, ok := shapeNames[s]; ok {
		return name
	}
	return "unknown"
}

// Icon is a shape in a color. Two icons match when both are equal.
type Icon struct {
	Shape Shape
	Color core.Color
}

// DrawIcon draws shape inside the square r. bg is used for cut-outs.
func DrawIcon(dst *core.Screen, shape Shape, r core.Rect, c, bg core.Color) {
	size := min(r.W, r.H)
	half := size / 2
	quarter := size / 4
	left, top := r.X, r.Y

	switch shape {
	case ShapeDiamond:
		dst.Polygon([]core.Point{
			core.Pt(left+half, top),
			core.Pt(left+size-1, top+half),
			core.Pt(left+half, top+size-1),
			core.Pt(left, top+half),
		}, c, 0)

	case ShapeDonut:
		pad := max(size/8, 1)
		center := core.Pt(left+half, top+half)
		dst.Circle(center, max(half-pad, 1), c, 0)
		if inner := quarter - pad; inner > 0 {
			dst.Circle(center, inner, bg, 0)
		} else {
			dst.SetPixel(center.X, center.Y, bg)
		}

	case ShapeLines:
		stroke := max(size*6/40, 1)
		step := stroke + max(size*2/40, 1)
		off := stroke / 2
		x0, y0 := left+off, top+off
		span := size - stroke
		for i := 0; i < span; i += step {
			dst.Line(core.Pt(x0, y0+i), core.Pt(x0+i, y0), c, stroke)
			dst.Line(core.Pt(x0+i, y0+span-1), core.Pt(x0+span-1, y0+i), c, stroke)
		}

	case ShapeOval:
		dst.Ellipse(core.NewRect(left, top+quarter, size, max(half, 1)), c, 0)

	case ShapeSquare:
		dst.FillRect(core.NewRect(left+quarter, top+quarter, max(half, 1), max(half, 1)), c)
	}
}
