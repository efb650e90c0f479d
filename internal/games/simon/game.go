// Package simon implements the Simon memory game: repeat an ever longer
// sequence of flashing pads.
package simon

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/vovakirdan/box-arcade/internal/config"
	"github.com/vovakirdan/box-arcade/internal/core"
	"github.com/vovakirdan/box-arcade/internal/gamelib"
	"github.com/vovakirdan/box-arcade/internal/registry"
)

type phase int

const (
	phaseWait     phase = iota // pause before the pattern plays
	phasePlayback              // the pattern flashes
	phaseInput                 // waiting for the player
	phaseEcho                  // the pad the player chose flashes
	phaseGameOver
)

// padStyle is the look and tone of one pad, in board order.
var padStyle = [...]struct {
	base, lit core.Color
	tone      core.Sound
}{
	PadRed:    {core.ColorDarkRed, core.ColorRed, core.SoundBeep1},
	PadBlue:   {core.ColorDarkBlue, core.ColorBlue, core.SoundBeep2},
	PadGreen:  {core.ColorDarkGreen, core.ColorGreen, core.SoundBeep3},
	PadYellow: {core.ColorDarkYellow, core.ColorYellow, core.SoundBeep4},
}

var padActions = map[core.Action]Pad{
	core.ActionPad1: PadRed,
	core.ActionPad2: PadBlue,
	core.ActionPad3: PadGreen,
	core.ActionPad4: PadYellow,
}

type flash struct {
	pad    Pad
	timer  gamelib.Timer
	active bool
}

// Game implements Simon.
type Game struct {
	rcfg       core.RuntimeConfig
	cfg        config.SimonConfig
	display    *gamelib.Display
	layout     *gamelib.Layout
	board      *gamelib.Board[*gamelib.ColorBox]
	rng        *rand.Rand
	difficulty *config.DifficultyManager

	pattern Pattern
	phase   phase
	timer   gamelib.Timer
	flash   flash
	index   int
	inGap   bool

	score  int
	ticks  int
	sounds []core.Sound
}

// New creates a Simon game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("simon", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "simon"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Simon"
}

// Controls describes the input.
func (g *Game) Controls() string {
	return "Mouse: click pads | Q/L red  W/; blue  A/. green  S// yellow"
}

// Reset loads the config and starts a new round.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rcfg = cfg
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	log := cfg.Log()

	sc, err := config.LoadSimon(cfg.ConfigPath)
	if err != nil {
		log.Warn("simon config not loaded, using defaults", "err", err)
	}
	if sc.Board.Cols*sc.Board.Rows != len(Pads) {
		log.Error("simon needs exactly four pads, using defaults", "cols", sc.Board.Cols, "rows", sc.Board.Rows)
		sc.Board = config.DefaultSimonConfig().Board
	}
	g.cfg = sc
	g.difficulty = config.ApplyPreset(sc.Difficulty, cfg.Difficulty)

	g.display = gamelib.NewDisplay(cfg, "Simon!", gamelib.WithBackground(core.ColorDarkGray, core.ColorGray))
	l := gamelib.CalcLayout(g.display.Width, g.display.Height, sc.Board.Cols, sc.Board.Rows, sc.Board.Gap)
	g.layout = &l

	i := 0
	g.board = gamelib.NewBoard(g.layout, func(b gamelib.Box) *gamelib.ColorBox {
		s := padStyle[i]
		i++
		return &gamelib.ColorBox{Box: b, Color: s.base, Lit: s.lit, Tone: s.tone}
	})

	g.score = 0
	g.ticks = 0
	g.restart()
}

// restart clears the pattern and waits for the first playback.
func (g *Game) restart() {
	g.pattern.Reset()
	g.flash = flash{}
	g.wait()
}

func (g *Game) wait() {
	g.phase = phaseWait
	g.timer = gamelib.NewTimer(g.ms(g.cfg.Timing.PatternDelayMS, false))
}

// ms converts a configured duration to ticks. Scaled durations shrink as
// the difficulty rises.
func (g *Game) ms(n int, scaled bool) int {
	d := time.Duration(n) * time.Millisecond
	if scaled {
		speed := g.difficulty.Speed(1, g.score, g.ticks)
		d = time.Duration(float64(d) / math.Max(speed, 0.1))
	}
	return g.display.Frames(d)
}

func (g *Game) startFlash(pad Pad) {
	g.flash = flash{pad: pad, timer: gamelib.NewTimer(g.ms(g.cfg.Timing.FlashMS, true)), active: true}
	g.sounds = append(g.sounds, padStyle[pad].tone)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.sounds = nil
	g.ticks++

	if in.Has(core.ActionRestart) {
		g.Reset(g.rcfg)
		return core.StepResult{State: g.State()}
	}

	switch g.phase {
	case phaseWait:
		if g.timer.Tick() {
			added := g.pattern.Extend(g.rng)
			g.display.Log().Debug("simon pattern extended", "pad", added, "length", g.pattern.Len())
			g.index = 0
			g.inGap = false
			g.phase = phasePlayback
			g.startFlash(g.pattern.At(0))
		}

	case phasePlayback:
		g.stepPlayback()

	case phaseInput:
		if pad, ok := g.padInput(in); ok {
			g.startFlash(pad)
			g.phase = phaseEcho
			break
		}
		if g.timer.Tick() {
			g.display.Log().Debug("simon input timed out", "entered", g.pattern.Entered())
			g.gameOver()
		}

	case phaseEcho:
		if g.flash.timer.Tick() {
			g.flash.active = false
			g.check(g.flash.pad)
		}

	case phaseGameOver:
		if g.timer.Tick() {
			g.score = 0
			g.restart()
		}
	}

	return core.StepResult{State: g.State(), Sounds: g.sounds}
}

// stepPlayback flashes each pad of the pattern with a gap after it.
func (g *Game) stepPlayback() {
	if !g.inGap {
		if g.flash.timer.Tick() {
			g.flash.active = false
			g.inGap = true
			g.timer = gamelib.NewTimer(g.ms(g.cfg.Timing.FlashGapMS, true))
		}
		return
	}
	if !g.timer.Tick() {
		return
	}
	g.index++
	if g.index < g.pattern.Len() {
		g.inGap = false
		g.startFlash(g.pattern.At(g.index))
		return
	}
	g.phase = phaseInput
	g.timer = gamelib.NewTimer(g.ms(g.cfg.Timing.TimeoutMS, false))
}

// padInput returns the pad chosen this tick by key or click.
func (g *Game) padInput(in core.InputFrame) (Pad, bool) {
	for _, a := range []core.Action{core.ActionPad1, core.ActionPad2, core.ActionPad3, core.ActionPad4} {
		if in.Has(a) {
			return padActions[a], true
		}
	}
	if in.Clicked() {
		for i, box := range g.board.Boxes {
			if box.Contains(in.Pointer.Pos()) {
				return Pads[i], true
			}
		}
	}
	return 0, false
}

func (g *Game) check(pad Pad) {
	switch g.pattern.Check(pad) {
	case Continue:
		g.phase = phaseInput
		g.timer = gamelib.NewTimer(g.ms(g.cfg.Timing.TimeoutMS, false))
	case Matched:
		g.score++
		g.wait()
	case Mismatched:
		g.gameOver()
	}
}

func (g *Game) gameOver() {
	g.display.Log().Info("simon game over", "score", g.score, "length", g.pattern.Len())
	g.sounds = append(g.sounds, core.SoundFail)
	g.flash = flash{}
	g.phase = phaseGameOver
	g.timer = gamelib.NewTimer(g.ms(g.cfg.Timing.GameOverMS, false))
}

// pulse rises from 0 to 1 and back over p in [0, 1].
func pulse(p float64) float64 {
	return 1 - math.Abs(2*p-1)
}

// Render draws the pads, the score and the game-over fade.
func (g *Game) Render(dst *core.Screen) {
	bg := g.display.BG
	if g.phase == phaseGameOver {
		bg = bg.Blend(core.ColorBlack, pulse(g.timer.Progress()))
	}
	g.display.FillColor(dst, bg)

	for i, box := range g.board.Boxes {
		if g.flash.active && Pads[i] == g.flash.pad {
			box.DrawLit(dst, pulse(g.flash.timer.Progress()))
			continue
		}
		box.Draw(dst)
	}

	g.board.DrawMessage(dst, fmt.Sprintf("Score: %d", g.score), core.ColorWhite, core.ColorDefault)
	status := ""
	switch g.phase {
	case phasePlayback:
		status = "Watch"
	case phaseInput, phaseEcho:
		status = fmt.Sprintf("Repeat %d/%d", g.pattern.Entered(), g.pattern.Len())
	case phaseGameOver:
		status = "Game over"
	}
	dst.DrawTextColor(0, 0, fmt.Sprintf(" %s  %s", g.display.Caption, status), core.ColorWhite, core.ColorDefault)
}

// Meter reports the time left to answer while the game waits for input.
func (g *Game) Meter() (string, float64, bool) {
	if g.phase != phaseInput {
		return "", 0, false
	}
	return "Time", 1 - g.timer.Progress(), true
}

// State returns the score. GameOver holds while the game-over fade plays;
// the game then starts over by itself.
func (g *Game) State() core.GameState {
	return core.GameState{Score: g.score, GameOver: g.phase == phaseGameOver}
}
