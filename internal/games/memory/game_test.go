package memory

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/box-arcade/internal/core"
	"github.com/vovakirdan/box-arcade/internal/gamelib"
)

func TestCheckSize(t *testing.T) {
	assert.NoError(t, CheckSize(6, 4))
	assert.NoError(t, CheckSize(10, 7))
	assert.True(t, errors.Is(CheckSize(3, 3), ErrOddBoxCount))
	assert.True(t, errors.Is(CheckSize(0, 4), ErrOddBoxCount))
	assert.True(t, errors.Is(CheckSize(10, 8), ErrNotEnoughIcons))
}

func TestRandomIconsArePairs(t *testing.T) {
	icons, err := RandomIcons(6, 4, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	require.Len(t, icons, 24)

	counts := map[gamelib.Icon]int{}
	for _, ic := range icons {
		counts[ic]++
	}
	assert.Len(t, counts, 12)
	for ic, n := range counts {
		assert.Equal(t, 2, n, "icon %v", ic)
	}
}

func testBoard(t *testing.T, cols, rows int) *Board {
	t.Helper()
	l := gamelib.CalcLayout(80, 48, cols, rows, 0.2)
	b, err := NewBoard(&l, rand.New(rand.NewSource(7)), core.ColorDarkGray, core.ColorWhite)
	require.NoError(t, err)
	return b
}

// partners returns a matching and a non-matching box for the first box.
func partners(boxes []*gamelib.IconBox) (first, match, other *gamelib.IconBox) {
	first = boxes[0]
	for _, b := range boxes[1:] {
		if b.Icon == first.Icon {
			match = b
		} else if other == nil {
			other = b
		}
	}
	return first, match, other
}

func TestPickRules(t *testing.T) {
	b := testBoard(t, 4, 3)
	first, match, other := partners(b.Boxes)
	require.NotNil(t, match)
	require.NotNil(t, other)

	res, _ := b.Pick(first)
	assert.Equal(t, PickFirst, res)
	assert.Same(t, first, b.First())

	res, _ = b.Pick(first)
	assert.Equal(t, PickIgnored, res, "revealed boxes cannot be picked")

	res, partner := b.Pick(other)
	assert.Equal(t, PickMismatch, res)
	assert.Same(t, first, partner)
	assert.True(t, first.Revealed && other.Revealed, "caller covers the pair")
	b.Cover(first, other)
	assert.Nil(t, b.First())

	b.Pick(first)
	res, _ = b.Pick(match)
	assert.Equal(t, PickMatch, res)
	assert.True(t, first.Revealed && match.Revealed)
	assert.False(t, b.HasWon())
}

func TestPickLastPairWins(t *testing.T) {
	b := testBoard(t, 2, 1)
	res, _ := b.Pick(b.Boxes[0])
	assert.Equal(t, PickFirst, res)
	res, _ = b.Pick(b.Boxes[1])
	assert.Equal(t, PickWon, res)
	assert.True(t, b.HasWon())
}

func TestStartGroupsCoverEveryBox(t *testing.T) {
	b := testBoard(t, 6, 4)
	groups := b.StartGroups(rand.New(rand.NewSource(3)))
	require.Len(t, groups, 4)

	seen := map[*gamelib.IconBox]bool{}
	for _, g := range groups {
		assert.Len(t, g, 6)
		for _, box := range g {
			seen[box] = true
		}
	}
	assert.Len(t, seen, 24)
}

func newGame(t *testing.T, variant string) *Game {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	g := New()
	cfg := core.DefaultConfig()
	cfg.Seed = 42
	cfg.Variant = variant
	g.Reset(cfg)
	return g
}

func step(g *Game, actions ...core.Action) core.StepResult {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return g.Step(in)
}

// runUntil steps until the game reaches phase p, collecting sounds.
func runUntil(t *testing.T, g *Game, p phase) []core.Sound {
	t.Helper()
	var sounds []core.Sound
	for i := 0; i < 10000; i++ {
		if g.phase == p {
			return sounds
		}
		sounds = append(sounds, step(g).Sounds...)
	}
	t.Fatalf("phase %d never reached, stuck in %d", p, g.phase)
	return nil
}

// pick selects box with the keyboard cursor and waits for its reveal.
func pick(t *testing.T, g *Game, box *gamelib.IconBox) []core.Sound {
	t.Helper()
	g.cursor = box.Coord
	g.hover = true
	sounds := step(g, core.ActionConfirm).Sounds
	require.Equal(t, phaseReveal, g.phase)
	for i := 0; i < 10000 && g.phase == phaseReveal; i++ {
		sounds = append(sounds, step(g).Sounds...)
	}
	return sounds
}

func TestOpeningPreviewLeavesBoardCovered(t *testing.T) {
	g := newGame(t, "")
	assert.Equal(t, phaseStartDelay, g.phase)

	runUntil(t, g, phasePreview)
	runUntil(t, g, phasePlay)
	for _, box := range g.board.Boxes {
		assert.False(t, box.Revealed)
	}
	assert.Equal(t, 6, g.layout.Cols)
	assert.Equal(t, 4, g.layout.Rows)
}

func TestInputIgnoredDuringPreview(t *testing.T) {
	g := newGame(t, "")
	g.cursor = core.Pt(0, 0)
	g.hover = true
	step(g, core.ActionConfirm)
	assert.Equal(t, phaseStartDelay, g.phase)
	assert.False(t, g.board.Boxes[0].Revealed)
}

func TestMismatchCoversPair(t *testing.T) {
	g := newGame(t, "4x3")
	runUntil(t, g, phasePlay)
	first, _, other := partners(g.board.Boxes)

	assert.Equal(t, []core.Sound{core.SoundBeep2}, pick(t, g, first))
	assert.Equal(t, phasePlay, g.phase)

	assert.Equal(t, []core.Sound{core.SoundBeep4}, pick(t, g, other))
	assert.Equal(t, phaseMismatch, g.phase)

	runUntil(t, g, phasePlay)
	assert.False(t, first.Revealed)
	assert.False(t, other.Revealed)
	assert.Equal(t, 0, g.State().Score)
}

func TestMatchScores(t *testing.T) {
	g := newGame(t, "4x3")
	runUntil(t, g, phasePlay)
	first, match, _ := partners(g.board.Boxes)

	pick(t, g, first)
	assert.Equal(t, []core.Sound{core.SoundPickup}, pick(t, g, match))
	assert.True(t, first.Revealed)
	assert.True(t, match.Revealed)
	assert.Equal(t, 1, g.State().Score)
	assert.False(t, g.State().GameOver)
}

func TestClearingBoardDealsNewOne(t *testing.T) {
	g := newGame(t, "2x2")
	runUntil(t, g, phasePlay)
	old := g.board

	a, b, _ := partners(g.board.Boxes)
	pick(t, g, a)
	pick(t, g, b)
	rest := []*gamelib.IconBox{}
	for _, box := range g.board.Boxes {
		if !box.Revealed {
			rest = append(rest, box)
		}
	}
	require.Len(t, rest, 2)
	pick(t, g, rest[0])
	pick(t, g, rest[1])
	assert.Equal(t, phaseWon, g.phase)
	assert.True(t, g.flashOn)
	assert.True(t, g.State().GameOver, "a cleared board ends the round")

	runUntil(t, g, phaseStartDelay)
	assert.NotSame(t, old, g.board)
	assert.Equal(t, 2, g.State().Score)
	assert.False(t, g.State().GameOver)
	assert.Equal(t, 1, g.boards)
}

func TestClearedBoardReportsGameOverUntilNextDeal(t *testing.T) {
	g := newGame(t, "2x1")
	runUntil(t, g, phasePlay)

	pick(t, g, g.board.At(0, 0))
	pick(t, g, g.board.At(1, 0))
	require.Equal(t, phaseWon, g.phase)

	over := 0
	for i := 0; i < 10000 && g.phase != phaseStartDelay; i++ {
		if step(g).State.GameOver {
			over++
		}
	}
	assert.Positive(t, over)
	assert.Equal(t, phaseStartDelay, g.phase)
	assert.Equal(t, core.GameState{Score: 1}, g.State())
}

func TestMouseClickPicksBox(t *testing.T) {
	g := newGame(t, "4x3")
	runUntil(t, g, phasePlay)

	target := g.board.At(2, 1)
	cx, cy := target.Rect().Center()
	in := core.NewInputFrame()
	in.Pointer = core.Pointer{X: cx, Y: cy, Valid: true, Moved: true, Clicked: true}
	g.Step(in)

	assert.Equal(t, phaseReveal, g.phase)
	assert.Same(t, target, g.revealing)
}

func TestHoverHighlight(t *testing.T) {
	g := newGame(t, "4x3")
	runUntil(t, g, phasePlay)

	target := g.board.At(1, 1)
	cx, cy := target.Rect().Center()
	in := core.NewInputFrame()
	in.Pointer = core.Pointer{X: cx, Y: cy, Valid: true, Moved: true}
	g.Step(in)

	scr := core.NewScreen(80, 24)
	g.Render(scr)
	r := target.Rect().Inset(-1)
	assert.Equal(t, g.colors.highlight, scr.Pixel(r.X, r.Y))
}

func TestBadVariantFallsBack(t *testing.T) {
	g := newGame(t, "3x3")
	assert.Equal(t, 6, g.layout.Cols)
	assert.Equal(t, 4, g.layout.Rows)
}

func TestRestartResetsScore(t *testing.T) {
	g := newGame(t, "4x3")
	runUntil(t, g, phasePlay)
	g.pairs = 3
	step(g, core.ActionRestart)
	assert.Equal(t, 0, g.State().Score)
	assert.Equal(t, phaseStartDelay, g.phase)
}
