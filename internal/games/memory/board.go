package memory

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/vovakirdan/box-arcade/internal/core"
	"github.com/vovakirdan/box-arcade/internal/gamelib"
)

var (
	// ErrOddBoxCount is returned for grids that cannot be split into pairs.
	ErrOddBoxCount = errors.New("memory: board must have an even number of boxes")
	// ErrNotEnoughIcons is returned when the grid needs more pairs than
	// there are distinct icons.
	ErrNotEnoughIcons = errors.New("memory: not enough color and shape combinations for board size")
)

// Colors are the icon colors, all from the colorblind-safe palette.
var Colors = []core.Color{
	core.CBRed,
	core.CBGreen,
	core.CBDarkBlue,
	core.CBYellow,
	core.CBOrange,
	core.CBDarkPink,
	core.CBLightBlue,
}

// MaxBoxes is the largest board the icon set can fill.
var MaxBoxes = len(Colors) * len(gamelib.AllShapes) * 2

// CheckSize validates a board size.
func CheckSize(cols, rows int) error {
	n := cols * rows
	if n <= 0 || n%2 != 0 {
		return fmt.Errorf("%w: %d x %d = %d", ErrOddBoxCount, cols, rows, n)
	}
	if n > MaxBoxes {
		return fmt.Errorf("%w: %d boxes, at most %d", ErrNotEnoughIcons, n, MaxBoxes)
	}
	return nil
}

// RandomIcons picks cols*rows/2 distinct icons at random and returns each
// twice, shuffled.
func RandomIcons(cols, rows int, rng *rand.Rand) ([]gamelib.Icon, error) {
	if err := CheckSize(cols, rows); err != nil {
		return nil, err
	}

	all := make([]gamelib.Icon, 0, len(Colors)*len(gamelib.AllShapes))
	for _, c := range Colors {
		for _, s := range gamelib.AllShapes {
			all = append(all, gamelib.Icon{Shape: s, Color: c})
		}
	}
	rng.Shuffle(len(all), func(i, j int) { all[i], all[j] = all[j], all[i] })

	used := all[:cols*rows/2]
	icons := make([]gamelib.Icon, 0, cols*rows)
	icons = append(icons, used...)
	icons = append(icons, used...)
	rng.Shuffle(len(icons), func(i, j int) { icons[i], icons[j] = icons[j], icons[i] })
	return icons, nil
}

// PickResult is the outcome of clicking a box.
type PickResult int

const (
	PickIgnored  PickResult = iota // box already revealed
	PickFirst                      // first box of a pair
	PickMatch                      // second box matches the first
	PickMismatch                   // second box differs; both must be covered
	PickWon                        // match that revealed the last box
)

// Board is a memory grid with the two-phase selection state.
type Board struct {
	*gamelib.Board[*gamelib.IconBox]
	first *gamelib.IconBox
}

// NewBoard deals a random board onto layout l.
func NewBoard(l *gamelib.Layout, rng *rand.Rand, cover, face core.Color) (*Board, error) {
	icons, err := RandomIcons(l.Cols, l.Rows, rng)
	if err != nil {
		return nil, err
	}
	i := 0
	grid := gamelib.NewBoard(l, func(b gamelib.Box) *gamelib.IconBox {
		box := &gamelib.IconBox{Box: b, Icon: icons[i], Cover: cover, Back: face}
		i++
		return box
	})
	return &Board{Board: grid}, nil
}

// First returns the box waiting for its partner, if any.
func (b *Board) First() *gamelib.IconBox {
	return b.first
}

// Pick reveals box and applies the pairing rules. On PickMismatch the
// returned partner is the first box of the pair; both stay revealed until
// the caller covers them.
func (b *Board) Pick(box *gamelib.IconBox) (PickResult, *gamelib.IconBox) {
	if box.Revealed {
		return PickIgnored, nil
	}
	box.Revealed = true

	if b.first == nil {
		b.first = box
		return PickFirst, nil
	}

	first := b.first
	b.first = nil
	if first.Icon != box.Icon {
		return PickMismatch, first
	}
	if b.HasWon() {
		return PickWon, first
	}
	return PickMatch, first
}

// Cover hides boxes again.
func (b *Board) Cover(boxes ...*gamelib.IconBox) {
	for _, box := range boxes {
		box.Revealed = false
	}
}

// HasWon reports whether every box is revealed.
func (b *Board) HasWon() bool {
	for _, box := range b.Boxes {
		if !box.Revealed {
			return false
		}
	}
	return true
}

// StartGroups shuffles the boxes into rows groups for the opening preview.
func (b *Board) StartGroups(rng *rand.Rand) [][]*gamelib.IconBox {
	boxes := make([]*gamelib.IconBox, len(b.Boxes))
	copy(boxes, b.Boxes)
	rng.Shuffle(len(boxes), func(i, j int) { boxes[i], boxes[j] = boxes[j], boxes[i] })

	n := max(b.Layout.Rows, 1)
	groups := make([][]*gamelib.IconBox, n)
	for i, box := range boxes {
		groups[i%n] = append(groups[i%n], box)
	}
	return groups
}
