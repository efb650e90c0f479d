package simon

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/box-arcade/internal/core"
)

func TestPatternCheck(t *testing.T) {
	var p Pattern
	p.Add(PadRed)
	p.Add(PadGreen)
	p.Add(PadRed)

	assert.Equal(t, Continue, p.Check(PadRed))
	assert.Equal(t, Continue, p.Check(PadGreen))
	assert.Equal(t, 2, p.Entered())
	assert.Equal(t, Matched, p.Check(PadRed))
	assert.Equal(t, 0, p.Entered(), "a full match clears the buffer")
	assert.Equal(t, 3, p.Len(), "the pattern itself is kept")

	assert.Equal(t, Continue, p.Check(PadRed))
	assert.Equal(t, Mismatched, p.Check(PadYellow))
	assert.Equal(t, 0, p.Entered())
}

func TestPatternMismatchAtEachPosition(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	var p Pattern
	for i := 0; i < 8; i++ {
		p.Extend(rng)
	}
	for bad := 0; bad < p.Len(); bad++ {
		for i := 0; i < bad; i++ {
			require.Equal(t, Continue, p.Check(p.At(i)))
		}
		wrong := Pads[(int(p.At(bad))+1)%len(Pads)]
		require.Equal(t, Mismatched, p.Check(wrong), "position %d", bad)
	}
}

func TestEmptyPatternMismatches(t *testing.T) {
	var p Pattern
	assert.Equal(t, Mismatched, p.Check(PadBlue))
}

func newGame(t *testing.T) *Game {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	g := New()
	cfg := core.DefaultConfig()
	cfg.Seed = 11
	cfg.Difficulty = "fixed"
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

func runUntil(t *testing.T, g *Game, p phase) []core.Sound {
	t.Helper()
	var sounds []core.Sound
	for i := 0; i < 20000; i++ {
		if g.phase == p {
			return sounds
		}
		sounds = append(sounds, step(g).Sounds...)
	}
	t.Fatalf("phase %d never reached, stuck in %d", p, g.phase)
	return nil
}

var padKey = map[Pad]core.Action{
	PadRed:    core.ActionPad1,
	PadBlue:   core.ActionPad2,
	PadGreen:  core.ActionPad3,
	PadYellow: core.ActionPad4,
}

// enter presses pad and waits for its echo flash to end.
func enter(t *testing.T, g *Game, pad Pad) []core.Sound {
	t.Helper()
	require.Equal(t, phaseInput, g.phase)
	sounds := step(g, padKey[pad]).Sounds
	require.Equal(t, phaseEcho, g.phase)
	for i := 0; i < 1000 && g.phase == phaseEcho; i++ {
		sounds = append(sounds, step(g).Sounds...)
	}
	return sounds
}

func TestPlaybackThenInput(t *testing.T) {
	g := newGame(t)
	sounds := runUntil(t, g, phaseInput)
	require.Equal(t, 1, g.pattern.Len())
	assert.Equal(t, []core.Sound{padStyle[g.pattern.At(0)].tone}, sounds)

	label, frac, ok := g.Meter()
	assert.True(t, ok)
	assert.Equal(t, "Time", label)
	assert.InDelta(t, 1.0, frac, 1e-9)
}

func TestFullMatchScoresOnce(t *testing.T) {
	g := newGame(t)
	for round := 1; round <= 3; round++ {
		runUntil(t, g, phaseInput)
		require.Equal(t, round, g.pattern.Len())
		for i := 0; i < g.pattern.Len(); i++ {
			enter(t, g, g.pattern.At(i))
		}
		assert.Equal(t, round, g.State().Score)
		assert.Equal(t, phaseWait, g.phase)
		assert.Equal(t, 0, g.pattern.Entered())
	}
}

func TestMismatchEndsGame(t *testing.T) {
	g := newGame(t)
	runUntil(t, g, phaseInput)
	enter(t, g, g.pattern.At(0))
	runUntil(t, g, phaseInput)

	wrong := Pads[(int(g.pattern.At(0))+1)%len(Pads)]
	sounds := enter(t, g, wrong)
	assert.Contains(t, sounds, core.SoundFail)
	assert.True(t, g.State().GameOver)
	assert.Equal(t, 1, g.State().Score, "score stays visible during the fade")

	runUntil(t, g, phaseWait)
	assert.False(t, g.State().GameOver)
	assert.Equal(t, 0, g.State().Score)
	assert.Equal(t, 0, g.pattern.Len())
}

func TestTimeoutEndsGame(t *testing.T) {
	g := newGame(t)
	runUntil(t, g, phaseInput)

	timeout := g.display.Frames(4 * time.Second)
	var sounds []core.Sound
	for i := 0; i < timeout; i++ {
		sounds = append(sounds, step(g).Sounds...)
	}
	assert.Equal(t, phaseGameOver, g.phase)
	assert.Equal(t, []core.Sound{core.SoundFail}, sounds)
}

func TestInputIgnoredDuringPlayback(t *testing.T) {
	g := newGame(t)
	runUntil(t, g, phasePlayback)
	step(g, core.ActionPad1, core.ActionPad2)
	assert.Equal(t, phasePlayback, g.phase)
	assert.Equal(t, 0, g.pattern.Entered())
}

func TestClickPad(t *testing.T) {
	g := newGame(t)
	runUntil(t, g, phaseInput)

	want := g.pattern.At(0)
	cx, cy := g.board.Boxes[want].Rect().Center()
	in := core.NewInputFrame()
	in.Pointer = core.Pointer{X: cx, Y: cy, Valid: true, Clicked: true}
	res := g.Step(in)

	assert.Equal(t, phaseEcho, g.phase)
	assert.Equal(t, want, g.flash.pad)
	assert.Equal(t, []core.Sound{padStyle[want].tone}, res.Sounds)
}

func TestFlashLightsPad(t *testing.T) {
	g := newGame(t)
	runUntil(t, g, phasePlayback)
	for i := 0; i < 5; i++ {
		step(g)
	}
	require.True(t, g.flash.active)

	scr := core.NewScreen(80, 24)
	g.Render(scr)
	box := g.board.Boxes[g.flash.pad]
	cx, cy := box.Rect().Center()
	assert.NotEqual(t, box.Color, scr.Pixel(cx, cy))
}

func TestHarderDifficultyFlashesFaster(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	cfg := core.DefaultConfig()
	cfg.Seed = 1

	slow := New()
	cfg.Difficulty = "easy"
	slow.Reset(cfg)

	fast := New()
	cfg.Difficulty = "hard"
	fast.Reset(cfg)

	assert.Less(t, fast.ms(330, true), slow.ms(330, true))
	assert.Equal(t, fast.ms(4000, false), slow.ms(4000, false))
}
