package slide

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/box-arcade/internal/core"
)

func TestNewPuzzleIsSolved(t *testing.T) {
	p := NewPuzzle(4, 4)
	assert.True(t, p.IsSolved())
	assert.Equal(t, core.Pt(3, 3), p.Blank())
	assert.Equal(t, 15, p.At(2, 3))
}

func TestMoveRejectedAtEdges(t *testing.T) {
	p := NewPuzzle(4, 4)
	// Blank in the bottom-right corner.
	assert.False(t, p.CanMove(DirLeft), "no tile right of the blank")
	assert.False(t, p.CanMove(DirUp), "no tile below the blank")
	assert.True(t, p.CanMove(DirRight))
	assert.True(t, p.CanMove(DirDown))

	require.NoError(t, p.SetLabels([]int{
		0, 1, 2, 3,
		4, 5, 6, 7,
		8, 9, 10, 11,
		12, 13, 14, 15,
	}))
	assert.False(t, p.CanMove(DirRight), "no tile left of the blank")
	assert.False(t, p.CanMove(DirDown), "no tile above the blank")
	assert.True(t, p.CanMove(DirLeft))
	assert.True(t, p.CanMove(DirUp))
	assert.False(t, p.Move(DirDown))
	assert.Equal(t, 0, p.Moves())
}

func TestMoveSwapsWithBlank(t *testing.T) {
	p := NewPuzzle(3, 3)
	require.True(t, p.Move(DirRight))
	assert.Equal(t, core.Pt(1, 2), p.Blank())
	assert.Equal(t, 8, p.At(2, 2))
	assert.False(t, p.IsSolved())

	require.True(t, p.Move(DirLeft))
	assert.True(t, p.IsSolved())
	assert.Equal(t, 2, p.Moves())
}

func TestMovesKeepLabels(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	p := NewPuzzle(4, 4)
	want := p.Labels()
	sort.Ints(want)

	for i := 0; i < 500; i++ {
		p.Move(Direction(rng.Intn(4)))
		got := p.Labels()
		sort.Ints(got)
		require.Equal(t, want, got)
	}
}

func TestDirectionTo(t *testing.T) {
	p := NewPuzzle(3, 3)
	d, ok := p.DirectionTo(core.Pt(2, 1))
	require.True(t, ok)
	assert.Equal(t, DirDown, d)

	d, ok = p.DirectionTo(core.Pt(1, 2))
	require.True(t, ok)
	assert.Equal(t, DirRight, d)

	_, ok = p.DirectionTo(core.Pt(0, 0))
	assert.False(t, ok)
}

func TestSolvable(t *testing.T) {
	assert.True(t, Solvable(NewPuzzle(4, 4).Labels(), 4))
	assert.True(t, Solvable(NewPuzzle(3, 3).Labels(), 3))

	// The classic 14-15 swap cannot be solved.
	assert.False(t, Solvable([]int{
		1, 2, 3, 4,
		5, 6, 7, 8,
		9, 10, 11, 12,
		13, 15, 14, 0,
	}, 4))
	assert.False(t, Solvable([]int{1, 2, 3, 4, 5, 6, 8, 7, 0}, 3))

	// Moving the blank up one row keeps a 4-wide board solvable.
	p := NewPuzzle(4, 4)
	p.Move(DirDown)
	assert.True(t, Solvable(p.Labels(), 4))
}

func TestShuffleIsSolvableAndResettable(t *testing.T) {
	for seed := int64(0); seed < 200; seed++ {
		for _, size := range []int{3, 4, 5} {
			p := NewPuzzle(size, size)
			p.Shuffle(rand.New(rand.NewSource(seed)))
			require.True(t, Solvable(p.Labels(), size), "seed %d size %d", seed, size)

			start := p.Labels()
			p.Move(DirRight)
			p.Move(DirDown)
			p.Reset()
			assert.Equal(t, start, p.Labels())
			assert.Equal(t, 0, p.Moves())
			assert.Equal(t, 0, p.At(p.Blank().X, p.Blank().Y))
		}
	}
}

func TestSetLabelsValidates(t *testing.T) {
	p := NewPuzzle(2, 2)
	assert.Error(t, p.SetLabels([]int{1, 2, 3}))
	assert.Error(t, p.SetLabels([]int{1, 1, 2, 0}))
	assert.Error(t, p.SetLabels([]int{1, 2, 3, 4}))
	assert.NoError(t, p.SetLabels([]int{3, 1, 0, 2}))
	assert.Equal(t, core.Pt(0, 1), p.Blank())
}
