package tetris

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/box-arcade/internal/core"
)

func newGame(t *testing.T) *Game {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	g := New()
	cfg := core.DefaultConfig()
	cfg.Seed = 5
	g.Reset(cfg)
	return g
}

// playing returns a game past the title screen.
func playing(t *testing.T) *Game {
	t.Helper()
	g := newGame(t)
	step(g, core.ActionConfirm)
	require.Equal(t, phasePlay, g.phase)
	return g
}

func step(g *Game, actions ...core.Action) core.StepResult {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return g.Step(in)
}

func TestTitleScreenWaitsForKey(t *testing.T) {
	g := newGame(t)
	require.NotNil(t, g.falling)
	y := g.falling.Y
	for i := 0; i < 120; i++ {
		step(g)
	}
	assert.Equal(t, phaseStart, g.phase)
	assert.Equal(t, y, g.falling.Y)
}

func TestSpawnPosition(t *testing.T) {
	g := playing(t)
	assert.Equal(t, 3, g.falling.X)
	assert.Equal(t, -2, g.falling.Y)
	assert.Equal(t, 1, g.level)
}

func TestGravityFollowsElapsedTime(t *testing.T) {
	g := playing(t)
	y := g.falling.Y

	// Level 1 falls every 0.25s; at 60 ticks a second the 16th tick
	// passes it.
	for i := 0; i < 14; i++ {
		step(g)
	}
	assert.Equal(t, y, g.falling.Y)
	for i := 0; i < 3; i++ {
		step(g)
	}
	assert.Equal(t, y+1, g.falling.Y)
}

func TestMoveAndSoftDrop(t *testing.T) {
	g := playing(t)
	g.falling = &Piece{Shape: ShapeByName('O'), X: 3, Y: 0}

	step(g, core.ActionLeft)
	assert.Equal(t, 2, g.falling.X)
	step(g, core.ActionRight)
	step(g, core.ActionRight)
	assert.Equal(t, 4, g.falling.X)
	step(g, core.ActionDown)
	assert.Equal(t, 1, g.falling.Y)

	// O spans template columns 1-2, so X=-1 touches the left wall.
	g.falling.X = -1
	step(g, core.ActionLeft)
	assert.Equal(t, -1, g.falling.X)
}

func TestRotationUndoneWhenBlocked(t *testing.T) {
	g := playing(t)
	// Vertical I in column 0; horizontal would poke out on the left.
	g.falling = &Piece{Shape: ShapeByName('I'), X: -2, Y: 5}
	require.True(t, g.grid.Valid(*g.falling, 0, 0))

	step(g, core.ActionUp)
	assert.Equal(t, 0, g.falling.Rotation)

	g.falling.X = 3
	step(g, core.ActionUp)
	assert.Equal(t, 1, g.falling.Rotation)
	step(g, core.ActionRotateCCW)
	assert.Equal(t, 0, g.falling.Rotation)
}

func TestLandingFreezesPiece(t *testing.T) {
	g := playing(t)
	o := ShapeByName('O')
	// O occupies template rows 2-3, so Y=16 rests on the floor.
	g.falling = &Piece{Shape: o, X: 3, Y: 16}
	next := g.next
	g.fallElapsed = 1

	step(g)
	assert.Equal(t, o.Color, g.grid.At(4, 19))
	assert.Equal(t, o.Color, g.grid.At(5, 18))
	require.NotNil(t, g.falling)
	assert.Equal(t, next, *g.falling, "the preview piece comes next")
	assert.Equal(t, phasePlay, g.phase)
}

func TestLineClearFlashesThenScores(t *testing.T) {
	g := playing(t)
	for x := 2; x < g.grid.W; x++ {
		g.grid.Set(x, 18, core.CB14Red)
		g.grid.Set(x, 19, core.CB14Red)
	}
	g.grid.Set(5, 17, core.CB14Green)
	g.falling = &Piece{Shape: ShapeByName('O'), X: -1, Y: 16}
	g.fallElapsed = 1

	res := step(g)
	assert.Equal(t, phaseFlash, g.phase)
	assert.Equal(t, []core.Sound{core.SoundPickup}, res.Sounds)
	assert.Equal(t, []int{19, 18}, g.flashRows)
	assert.Equal(t, 0, g.score, "score lands after the flash")

	for i := 0; i < 100 && g.phase == phaseFlash; i++ {
		step(g)
	}
	assert.Equal(t, 22, g.score)
	assert.Equal(t, 2, g.lines)
	assert.Equal(t, core.CB14Green, g.grid.At(5, 19), "rows above drop down")
	assert.True(t, g.grid.At(0, 18).IsDefault())
	assert.NotNil(t, g.falling)
}

func TestBlockedSpawnEndsGame(t *testing.T) {
	g := playing(t)
	fillRow(g.grid, 0)

	g.spawn()
	assert.True(t, g.State().GameOver)
	assert.Equal(t, []core.Sound{core.SoundFail}, g.sounds)
}

func TestGameOverWaitsThenRestarts(t *testing.T) {
	g := playing(t)
	g.score = 40
	fillRow(g.grid, 0)
	g.spawn()
	require.True(t, g.State().GameOver)

	step(g, core.ActionConfirm)
	assert.True(t, g.State().GameOver, "keys right after the end are ignored")

	for i := 0; i < 60; i++ {
		step(g)
	}
	step(g, core.ActionConfirm)
	assert.False(t, g.State().GameOver)
	assert.Equal(t, 0, g.score)
	assert.Empty(t, g.grid.CompleteLines())
	assert.True(t, g.grid.At(0, 0).IsDefault())
}

func TestPauseFreezesGravity(t *testing.T) {
	g := playing(t)
	step(g, core.ActionPause)
	require.True(t, g.State().Paused)

	y := g.falling.Y
	for i := 0; i < 120; i++ {
		step(g)
	}
	assert.Equal(t, y, g.falling.Y)

	step(g, core.ActionConfirm)
	assert.False(t, g.State().Paused)
}

func TestMeterShowsLevelProgress(t *testing.T) {
	g := newGame(t)
	_, _, ok := g.Meter()
	assert.False(t, ok, "nothing to show on the title screen")

	step(g, core.ActionConfirm)
	g.score = 150
	g.level = Level(g.score, 100)
	label, frac, ok := g.Meter()
	assert.True(t, ok)
	assert.Equal(t, "Level 2", label)
	assert.InDelta(t, 0.5, frac, 1e-9)
}

func TestLevelColors(t *testing.T) {
	g := playing(t)
	scr := core.NewScreen(80, 24)

	g.Render(scr)
	assert.Equal(t, core.ColorBlack, scr.Pixel(0, 2))

	g.level = 2
	g.Render(scr)
	assert.Equal(t, core.CB14DarkPink, scr.Pixel(0, 2))
}

func TestRender(t *testing.T) {
	g := playing(t)
	g.grid.Set(0, 19, core.CB14Red)

	scr := core.NewScreen(80, 24)
	g.Render(scr)

	out := scr.String()
	assert.True(t, strings.Contains(out, "Score: 0"))
	assert.True(t, strings.Contains(out, "Level: 1"))

	fb := g.field.Bounds()
	assert.Equal(t, borderColors[0], scr.Pixel(fb.X-1, fb.Y-1))
	r := g.field.BoxRect(0, 19)
	assert.Equal(t, core.CB14Red, scr.Pixel(r.X, r.Y))

	cell := g.next.Shape.Rotations[g.next.Rotation][0]
	pr := g.preview.BoxRect(cell.X, cell.Y)
	assert.Equal(t, g.next.Shape.Color, scr.Pixel(pr.X, pr.Y))
}

func TestTitleBanner(t *testing.T) {
	g := newGame(t)
	scr := core.NewScreen(80, 24)
	g.Render(scr)
	assert.Contains(t, scr.String(), "Press any key to play")
}
