package slide

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/box-arcade/internal/core"
)

// Direction names the way a tile moves into the blank. Left slides the
// tile to the right of the blank leftwards.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	}
	return "unknown"
}

// delta is the tile's motion for d.
func (d Direction) delta() core.Point {
	switch d {
	case DirUp:
		return core.Pt(0, -1)
	case DirDown:
		return core.Pt(0, 1)
	case DirLeft:
		return core.Pt(-1, 0)
	case DirRight:
		return core.Pt(1, 0)
	}
	return core.Point{}
}

// Puzzle is the tile arrangement. Labels run 1..cols*rows-1 and 0 is the
// blank; tiles are stored row-major.
type Puzzle struct {
	cols, rows int
	tiles      []int
	blank      int
	initial    []int
	moves      int
}

// NewPuzzle returns a solved cols x rows puzzle.
func NewPuzzle(cols, rows int) *Puzzle {
	p := &Puzzle{cols: max(cols, 1), rows: max(rows, 1)}
	n := p.cols * p.rows
	p.tiles = make([]int, n)
	for i := 0; i < n-1; i++ {
		p.tiles[i] = i + 1
	}
	p.blank = n - 1
	p.initial = p.Labels()
	return p
}

// Cols returns the grid width.
func (p *Puzzle) Cols() int { return p.cols }

// Rows returns the grid height.
func (p *Puzzle) Rows() int { return p.rows }

// Moves counts moves since the last shuffle or reset.
func (p *Puzzle) Moves() int { return p.moves }

// At returns the label at (x, y); 0 is the blank.
func (p *Puzzle) At(x, y int) int {
	return p.tiles[y*p.cols+x]
}

// Blank returns the coordinate of the blank.
func (p *Puzzle) Blank() core.Point {
	return core.Pt(p.blank%p.cols, p.blank/p.cols)
}

// Labels returns a copy of the row-major labels.
func (p *Puzzle) Labels() []int {
	out := make([]int, len(p.tiles))
	copy(out, p.tiles)
	return out
}

// SetLabels replaces the arrangement and makes it the reset target.
func (p *Puzzle) SetLabels(labels []int) error {
	if len(labels) != len(p.tiles) {
		return fmt.Errorf("slide: want %d labels, got %d", len(p.tiles), len(labels))
	}
	seen := make([]bool, len(labels))
	blank := -1
	for i, l := range labels {
		if l < 0 || l >= len(labels) || seen[l] {
			return fmt.Errorf("slide: labels are not a permutation of 0..%d", len(labels)-1)
		}
		seen[l] = true
		if l == 0 {
			blank = i
		}
	}
	copy(p.tiles, labels)
	p.blank = blank
	p.initial = p.Labels()
	p.moves = 0
	return nil
}

// Mover returns the tile that moving in d would slide into the blank.
// It is rejected when the blank sits on the edge facing d.
func (p *Puzzle) Mover(d Direction) (core.Point, bool) {
	from := p.Blank().Sub(d.delta())
	if from.X < 0 || from.X >= p.cols || from.Y < 0 || from.Y >= p.rows {
		return core.Point{}, false
	}
	return from, true
}

// CanMove reports whether d is a legal move.
func (p *Puzzle) CanMove(d Direction) bool {
	_, ok := p.Mover(d)
	return ok
}

// Move slides a tile in direction d and reports whether it moved.
func (p *Puzzle) Move(d Direction) bool {
	from, ok := p.Mover(d)
	if !ok {
		return false
	}
	i := from.Y*p.cols + from.X
	p.tiles[p.blank], p.tiles[i] = p.tiles[i], p.tiles[p.blank]
	p.blank = i
	p.moves++
	return true
}

// DirectionTo returns the move that slides the tile at c into the blank,
// if c is next to it.
func (p *Puzzle) DirectionTo(c core.Point) (Direction, bool) {
	for _, d := range []Direction{DirUp, DirDown, DirLeft, DirRight} {
		if from, ok := p.Mover(d); ok && from == c {
			return d, true
		}
	}
	return 0, false
}

// IsSolved reports whether the labels read 1..n-1 with the blank last.
func (p *Puzzle) IsSolved() bool {
	n := len(p.tiles)
	for i := 0; i < n-1; i++ {
		if p.tiles[i] != i+1 {
			return false
		}
	}
	return p.tiles[n-1] == 0
}

// Shuffle deals a random solvable arrangement and makes it the reset
// target.
func (p *Puzzle) Shuffle(rng *rand.Rand) {
	rng.Shuffle(len(p.tiles), func(i, j int) { p.tiles[i], p.tiles[j] = p.tiles[j], p.tiles[i] })
	for i, l := range p.tiles {
		if l == 0 {
			p.blank = i
		}
	}
	if !Solvable(p.tiles, p.cols) {
		// Swapping two tiles flips the permutation parity.
		a, b := -1, -1
		for i, l := range p.tiles {
			if l == 0 {
				continue
			}
			if a < 0 {
				a = i
			} else {
				b = i
				break
			}
		}
		if b >= 0 {
			p.tiles[a], p.tiles[b] = p.tiles[b], p.tiles[a]
		}
	}
	p.initial = p.Labels()
	p.moves = 0
}

// Reset restores the arrangement from the last shuffle.
func (p *Puzzle) Reset() {
	copy(p.tiles, p.initial)
	for i, l := range p.tiles {
		if l == 0 {
			p.blank = i
		}
	}
	p.moves = 0
}

// Solvable reports whether a row-major arrangement of the given width can
// reach the solved order. For odd widths the inversion count must be even;
// for even widths the inversion count plus the blank's row, counted from
// the bottom starting at one, must be odd.
func Solvable(tiles []int, cols int) bool {
	if cols <= 0 || len(tiles) == 0 {
		return false
	}
	inversions := 0
	blankRow := 0
	for i, a := range tiles {
		if a == 0 {
			blankRow = i / cols
			continue
		}
		for _, b := range tiles[i+1:] {
			if b != 0 && b < a {
				inversions++
			}
		}
	}
	if cols%2 == 1 {
		return inversions%2 == 0
	}
	rows := len(tiles) / cols
	return (inversions+rows-blankRow)%2 == 1
}
