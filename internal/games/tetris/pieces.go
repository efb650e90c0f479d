package tetris

import (
	"math/rand"

	"github.com/vovakirdan/box-arcade/internal/core"
)

// Every rotation of a shape is drawn on a template this many cells square.
const templateSize = 5

// Shape is one of the seven tetrominoes.
type Shape struct {
	Name      byte
	Rotations [][]core.Point // occupied template cells per rotation
	Color     core.Color
	Lit       core.Color
}

var templates = map[byte][][templateSize]string{
	'S': {
		{".....", ".....", "..oo.", ".oo..", "....."},
		{".....", "..o..", "..oo.", "...o.", "....."},
	},
	'Z': {
		{".....", ".....", ".oo..", "..oo.", "....."},
		{".....", "..o..", ".oo..", ".o...", "....."},
	},
	'I': {
		{"..o..", "..o..", "..o..", "..o..", "....."},
		{".....", ".....", "oooo.", ".....", "....."},
	},
	'O': {
		{".....", ".....", ".oo..", ".oo..", "....."},
	},
	'J': {
		{".....", ".o...", ".ooo.", ".....", "....."},
		{".....", "..oo.", "..o..", "..o..", "....."},
		{".....", ".....", ".ooo.", "...o.", "....."},
		{".....", "..o..", "..o..", ".oo..", "....."},
	},
	'L': {
		{".....", "...o.", ".ooo.", ".....", "....."},
		{".....", "..o..", "..o..", "..oo.", "....."},
		{".....", ".....", ".ooo.", ".o...", "....."},
		{".....", ".oo..", "..o..", "..o..", "....."},
	},
	'T': {
		{".....", "..o..", ".ooo.", ".....", "....."},
		{".....", "..o..", "..oo.", "..o..", "....."},
		{".....", ".....", ".ooo.", "..o..", "....."},
		{".....", "..o..", ".oo..", "..o..", "....."},
	},
}

// Shapes lists the tetrominoes in a fixed order so seeded games repeat.
var Shapes = []*Shape{
	newShape('S', core.CB14DarkGreen, core.CB14Green),
	newShape('Z', core.CB14Green, core.CB14LightGreen),
	newShape('I', core.CB14DarkOrange, core.CB14Orange),
	newShape('O', core.CB14DarkPink, core.CB14Pink),
	newShape('J', core.CB14DarkBlue, core.CB14Blue),
	newShape('L', core.CB14Blue, core.CB14LightBlue),
	newShape('T', core.CB14Pink, core.CB14LightPink),
}

// litColors maps a shape color to its highlight, for drawing frozen cells.
var litColors = func() map[core.Color]core.Color {
	m := make(map[core.Color]core.Color, len(Shapes))
	for _, s := range Shapes {
		m[s.Color] = s.Lit
	}
	return m
}()

func newShape(name byte, c, lit core.Color) *Shape {
	s := &Shape{Name: name, Color: c, Lit: lit}
	for _, rows := range templates[name] {
		var cells []core.Point
		for y, row := range rows {
			for x := 0; x < len(row); x++ {
				if row[x] != '.' {
					cells = append(cells, core.Pt(x, y))
				}
			}
		}
		s.Rotations = append(s.Rotations, cells)
	}
	return s
}

// ShapeByName returns the shape with the given letter, or nil.
func ShapeByName(name byte) *Shape {
	for _, s := range Shapes {
		if s.Name == name {
			return s
		}
	}
	return nil
}

// Piece is a shape placed on the grid. X and Y locate the template's top
// left corner and may be negative while the piece enters from above.
type Piece struct {
	Shape    *Shape
	Rotation int
	X, Y     int
}

// NewPiece picks a random shape and rotation and places it at the top of
// a grid width cells wide.
func NewPiece(rng *rand.Rand, width int) Piece {
	s := Shapes[rng.Intn(len(Shapes))]
	return Piece{
		Shape:    s,
		Rotation: rng.Intn(len(s.Rotations)),
		X:        width/2 - templateSize/2,
		Y:        -2,
	}
}

// Cells returns the grid cells the piece covers, shifted by (dx, dy).
func (p Piece) Cells(dx, dy int) []core.Point {
	tmpl := p.Shape.Rotations[p.Rotation]
	cells := make([]core.Point, len(tmpl))
	for i, c := range tmpl {
		cells[i] = core.Pt(p.X+c.X+dx, p.Y+c.Y+dy)
	}
	return cells
}

// Rotate turns the piece by dir steps; positive is clockwise. Rotation
// wraps around.
func (p *Piece) Rotate(dir int) {
	n := len(p.Shape.Rotations)
	p.Rotation = ((p.Rotation+dir)%n + n) % n
}
