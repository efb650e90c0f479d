package tetris

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/box-arcade/internal/config"
	"github.com/vovakirdan/box-arcade/internal/core"
)

func TestLineScore(t *testing.T) {
	for n, want := range map[int]int{0: 0, 1: 10, 2: 22, 3: 36, 4: 58} {
		assert.Equal(t, want, LineScore(n), "%d lines", n)
	}
}

func TestLevelAndFallInterval(t *testing.T) {
	timing := config.DefaultTetrisConfig().Timing
	assert.Equal(t, 1, Level(0, 100))
	assert.Equal(t, 1, Level(99, 100))
	assert.Equal(t, 2, Level(100, 100))
	assert.Equal(t, 1, Level(500, 0))

	assert.InDelta(t, 0.25, FallInterval(1, timing), 1e-9)
	assert.InDelta(t, 0.07, FallInterval(10, timing), 1e-9)
	assert.InDelta(t, 0.03, FallInterval(12, timing), 1e-9)
	assert.InDelta(t, 0.02, FallInterval(13, timing), 1e-9, "min_fall takes over")
	assert.InDelta(t, 0.02, FallInterval(30, timing), 1e-9, "interval bottoms out")
}

func TestShapeTemplates(t *testing.T) {
	rotations := map[byte]int{'S': 2, 'Z': 2, 'I': 2, 'O': 1, 'J': 4, 'L': 4, 'T': 4}
	require.Len(t, Shapes, len(rotations))
	for _, s := range Shapes {
		assert.Len(t, s.Rotations, rotations[s.Name], "shape %c", s.Name)
		for r, cells := range s.Rotations {
			assert.Len(t, cells, 4, "shape %c rotation %d", s.Name, r)
			for _, c := range cells {
				assert.True(t, c.X >= 0 && c.X < templateSize && c.Y >= 0 && c.Y < templateSize)
			}
		}
		assert.Equal(t, s.Lit, litColors[s.Color])
	}
	assert.Nil(t, ShapeByName('X'))
}

func TestRotateWraps(t *testing.T) {
	p := Piece{Shape: ShapeByName('J'), Rotation: 3}
	p.Rotate(1)
	assert.Equal(t, 0, p.Rotation)
	p.Rotate(-1)
	assert.Equal(t, 3, p.Rotation)

	o := Piece{Shape: ShapeByName('O')}
	o.Rotate(-1)
	assert.Equal(t, 0, o.Rotation)
}

func TestValidPlacement(t *testing.T) {
	g := NewGrid(10, 20)
	// Vertical I occupies template column 2, rows 0-3.
	p := Piece{Shape: ShapeByName('I'), X: 3, Y: -2}

	assert.True(t, g.Valid(p, 0, 0), "cells above the top are allowed")
	assert.False(t, g.Valid(p, -6, 0), "left of the first column")
	assert.False(t, g.Valid(p, 5, 0), "right of the last column")
	assert.True(t, g.Valid(p, 0, 18))
	assert.False(t, g.Valid(p, 0, 19), "below the floor")

	high := Piece{Shape: ShapeByName('I'), X: 3, Y: -10}
	assert.True(t, g.Valid(high, 0, 0), "wholly above the grid")
	assert.False(t, g.Valid(high, 5, 0), "columns hold above the top too")
	assert.False(t, g.Valid(high, -6, 0))

	g.Set(5, 1, core.CB14Red)
	assert.False(t, g.Valid(p, 0, 0), "on a frozen block")
	assert.True(t, g.Valid(p, 1, 0))
}

func TestAddSkipsCellsAboveTop(t *testing.T) {
	g := NewGrid(10, 20)
	p := Piece{Shape: ShapeByName('I'), X: 3, Y: -2}
	g.Add(p)
	assert.Equal(t, p.Shape.Color, g.At(5, 0))
	assert.Equal(t, p.Shape.Color, g.At(5, 1))
	assert.True(t, g.At(5, 2).IsDefault())
}

func fillRow(g *Grid, y int) {
	for x := 0; x < g.W; x++ {
		g.Set(x, y, core.CB14Blue)
	}
}

func TestRemoveLines(t *testing.T) {
	g := NewGrid(10, 20)
	g.Set(0, 16, core.CB14Red)
	fillRow(g, 17)
	g.Set(0, 18, core.CB14Green)
	fillRow(g, 19)

	rows := g.CompleteLines()
	require.Equal(t, []int{19, 17}, rows)

	g.RemoveLines(rows)
	assert.Equal(t, core.CB14Green, g.At(0, 19))
	assert.Equal(t, core.CB14Red, g.At(0, 18))
	for y := 0; y < 18; y++ {
		for x := 0; x < g.W; x++ {
			assert.True(t, g.At(x, y).IsDefault(), "(%d,%d) should be empty", x, y)
		}
	}
	assert.Empty(t, g.CompleteLines())
}
