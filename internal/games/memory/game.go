// Package memory implements the memory-matching puzzle: find the pairs of
// identical icons hidden under a grid of covered boxes.
package memory

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/box-arcade/internal/config"
	"github.com/vovakirdan/box-arcade/internal/core"
	"github.com/vovakirdan/box-arcade/internal/gamelib"
	"github.com/vovakirdan/box-arcade/internal/registry"
)

// Animations advance one frame per 1/30 s regardless of the tick rate.
const animFrame = time.Second / 30

type phase int

const (
	phaseStartDelay phase = iota // fresh board, everything covered
	phasePreview                 // groups of boxes flash open
	phasePlay
	phaseReveal   // a clicked box uncovers
	phaseMismatch // two different icons are showing
	phaseCover    // the mismatched pair closes again
	phaseWon      // background flashes
	phaseNewBoard // pause before the next deal
)

type palette struct {
	bg, flash, cover, face, highlight core.Color
}

// anim is a cover animation running over a set of boxes.
type anim struct {
	boxes []*gamelib.IconBox
	steps gamelib.Steps
}

// Game implements the memory puzzle.
type Game struct {
	rcfg    core.RuntimeConfig
	cfg     config.MemoryConfig
	display *gamelib.Display
	layout  *gamelib.Layout
	board   *Board
	rng     *rand.Rand
	colors  palette

	phase     phase
	timer     gamelib.Timer
	anim      anim
	animHold  int
	revealing *gamelib.IconBox
	pair      [2]*gamelib.IconBox
	groups    [][]*gamelib.IconBox
	group     int
	flashes   int
	flashOn   bool

	cursor core.Point
	hover  bool

	pairs  int
	boards int
	sounds []core.Sound
}

// New creates a memory game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("memory", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "memory"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Memory"
}

// Variants lists the board sizes.
func (g *Game) Variants() []registry.Variant {
	return []registry.Variant{
		{ID: "6x4", Label: "Classic 6x4"},
		{ID: "4x3", Label: "Small 4x3"},
		{ID: "4x4", Label: "Square 4x4"},
		{ID: "8x5", Label: "Large 8x5"},
		{ID: "10x7", Label: "Every icon 10x7"},
	}
}

// Controls describes the input.
func (g *Game) Controls() string {
	return "Mouse: click boxes | Arrows: move | Enter: reveal | R: new board"
}

// Reset loads the config and deals a fresh board.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rcfg = cfg
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	log := cfg.Log()

	mc, err := config.LoadMemory(cfg.ConfigPath)
	if err != nil {
		log.Warn("memory config not loaded, using defaults", "err", err)
	}
	if cols, rows, ok := gamelib.ParseGrid(cfg.Variant); ok {
		mc.Board.Cols, mc.Board.Rows = cols, rows
	}
	if err := CheckSize(mc.Board.Cols, mc.Board.Rows); err != nil {
		log.Error("bad memory board size, using defaults", "err", err)
		mc.Board = config.DefaultMemoryConfig().Board
	}
	g.cfg = mc

	g.colors = palette{
		bg:        config.Color(mc.Colors.Background, gamelib.DefaultBG, log),
		flash:     config.Color(mc.Colors.Flash, gamelib.DefaultBGLight, log),
		cover:     config.Color(mc.Colors.Cover, core.ColorDarkGray, log),
		face:      config.Color(mc.Colors.Face, core.ColorWhite, log),
		highlight: config.Color(mc.Colors.Highlight, core.ColorBlue, log),
	}

	g.display = gamelib.NewDisplay(cfg, "Memory!", gamelib.WithBackground(g.colors.bg, g.colors.flash))
	l := gamelib.CalcLayout(g.display.Width, g.display.Height, mc.Board.Cols, mc.Board.Rows, mc.Board.Gap)
	g.layout = &l
	g.animHold = g.display.Frames(animFrame)

	g.pairs = 0
	g.boards = 0
	g.deal()
}

// deal puts a new board on the table and starts the opening preview.
func (g *Game) deal() {
	board, err := NewBoard(g.layout, g.rng, g.colors.cover, g.colors.face)
	if err != nil {
		// CheckSize already ran in Reset.
		panic(fmt.Sprintf("memory: %v", err))
	}
	g.board = board
	g.anim = anim{}
	g.revealing = nil
	g.pair = [2]*gamelib.IconBox{}
	g.hover = false
	g.cursor = core.Point{}
	g.phase = phaseStartDelay
	g.timer = gamelib.NewTimer(g.ms(g.cfg.Timing.StartDelayMS))
	g.display.Log().Debug("memory board dealt", "cols", g.layout.Cols, "rows", g.layout.Rows, "box", g.layout.BoxSize)
}

func (g *Game) ms(n int) int {
	return g.display.Frames(time.Duration(n) * time.Millisecond)
}

func (g *Game) revealSpeed() int {
	div := max(g.cfg.Timing.RevealDivisor, 1)
	return max(g.layout.BoxSize/div, 1)
}

func (g *Game) startReveal(boxes ...*gamelib.IconBox) {
	g.anim = anim{boxes: boxes, steps: gamelib.NewSteps(gamelib.RevealSteps(g.layout.BoxSize, g.revealSpeed()), g.animHold)}
}

func (g *Game) startCover(boxes ...*gamelib.IconBox) {
	g.anim = anim{boxes: boxes, steps: gamelib.NewSteps(gamelib.CoverSteps(g.layout.BoxSize, g.revealSpeed()), g.animHold)}
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.sounds = g.sounds[:0]

	if in.Has(core.ActionRestart) {
		g.Reset(g.rcfg)
		return core.StepResult{State: g.State()}
	}

	switch g.phase {
	case phaseStartDelay:
		if g.timer.Tick() {
			g.groups = g.board.StartGroups(g.rng)
			g.group = 0
			g.startReveal(g.groups[0]...)
			g.phase = phasePreview
		}

	case phasePreview:
		g.stepPreview()

	case phasePlay:
		g.stepPlay(in)

	case phaseReveal:
		if g.anim.steps.Tick() {
			g.anim = anim{}
			g.resolve(g.revealing)
			g.revealing = nil
		}

	case phaseMismatch:
		if g.timer.Tick() {
			g.startCover(g.pair[0], g.pair[1])
			g.phase = phaseCover
		}

	case phaseCover:
		if g.anim.steps.Tick() {
			g.board.Cover(g.pair[0], g.pair[1])
			g.pair = [2]*gamelib.IconBox{}
			g.anim = anim{}
			g.phase = phasePlay
		}

	case phaseWon:
		if g.timer.Tick() {
			g.flashes--
			if g.flashes <= 0 {
				g.flashOn = false
				g.phase = phaseNewBoard
				g.timer = gamelib.NewTimer(g.ms(g.cfg.Timing.NewBoardDelayMS))
			} else {
				g.flashOn = !g.flashOn
				g.timer = gamelib.NewTimer(g.ms(g.cfg.Timing.WinFlashMS))
			}
		}

	case phaseNewBoard:
		if g.timer.Tick() {
			g.deal()
		}
	}

	out := make([]core.Sound, len(g.sounds))
	copy(out, g.sounds)
	return core.StepResult{State: g.State(), Sounds: out}
}

// stepPreview reveals then covers each group in turn.
func (g *Game) stepPreview() {
	if !g.anim.steps.Tick() {
		return
	}
	covering := g.anim.steps.Value() > 0
	if !covering {
		g.startCover(g.groups[g.group]...)
		return
	}
	g.group++
	if g.group >= len(g.groups) {
		g.anim = anim{}
		g.groups = nil
		g.phase = phasePlay
		return
	}
	g.startReveal(g.groups[g.group]...)
}

func (g *Game) stepPlay(in core.InputFrame) {
	if in.Pointer.Valid && (in.Pointer.Moved || in.Pointer.Clicked) {
		if cell, ok := g.layout.CellAt(in.Pointer.Pos()); ok {
			g.cursor = cell
			g.hover = true
		} else {
			g.hover = false
		}
	}

	dx, dy := 0, 0
	switch {
	case in.Has(core.ActionLeft):
		dx = -1
	case in.Has(core.ActionRight):
		dx = 1
	case in.Has(core.ActionUp):
		dy = -1
	case in.Has(core.ActionDown):
		dy = 1
	}
	if dx != 0 || dy != 0 {
		if g.hover {
			g.cursor.X = core.Clamp(g.cursor.X+dx, 0, g.layout.Cols-1)
			g.cursor.Y = core.Clamp(g.cursor.Y+dy, 0, g.layout.Rows-1)
		}
		g.hover = true
	}

	picked := in.Clicked() || in.Has(core.ActionConfirm)
	if !picked || !g.hover {
		return
	}
	box := g.board.At(g.cursor.X, g.cursor.Y)
	if box.Revealed {
		return
	}
	g.revealing = box
	g.startReveal(box)
	g.phase = phaseReveal
}

// resolve applies the pairing rules once a box has finished uncovering.
func (g *Game) resolve(box *gamelib.IconBox) {
	result, first := g.board.Pick(box)
	switch result {
	case PickFirst:
		g.sounds = append(g.sounds, core.SoundBeep2)
		g.phase = phasePlay
	case PickMatch:
		g.pairs++
		g.sounds = append(g.sounds, core.SoundPickup)
		g.phase = phasePlay
	case PickMismatch:
		g.sounds = append(g.sounds, core.SoundBeep4)
		g.pair = [2]*gamelib.IconBox{first, box}
		g.timer = gamelib.NewTimer(g.ms(g.cfg.Timing.MismatchPauseMS))
		g.phase = phaseMismatch
	case PickWon:
		g.pairs++
		g.boards++
		g.sounds = append(g.sounds, core.SoundPickup)
		g.flashes = max(g.cfg.Timing.WinFlashes, 1)
		g.flashOn = true
		g.timer = gamelib.NewTimer(g.ms(g.cfg.Timing.WinFlashMS))
		g.phase = phaseWon
		g.display.Log().Info("memory board cleared", "boards", g.boards, "pairs", g.pairs)
	default:
		g.phase = phasePlay
	}
}

// Render draws the board, any running animation and the hover highlight.
func (g *Game) Render(dst *core.Screen) {
	bg := g.display.BG
	if g.phase == phaseWon && g.flashOn {
		bg = g.display.BGLight
	}
	g.display.FillColor(dst, bg)

	for _, box := range g.board.Boxes {
		box.Draw(dst)
	}
	for _, box := range g.anim.boxes {
		box.DrawCoverage(dst, g.anim.steps.Value())
	}
	if g.phase == phasePlay && g.hover {
		if box := g.board.At(g.cursor.X, g.cursor.Y); !box.Revealed {
			box.Highlight(dst, g.colors.highlight)
		}
	}

	hud := fmt.Sprintf(" %s  Pairs: %d  Boards: %d", g.display.Caption, g.pairs, g.boards)
	dst.DrawTextColor(0, 0, hud, core.ColorBlack, core.ColorDefault)
}

// State returns the score. A cleared board reports GameOver while the
// background flashes, then the next board is dealt and play goes on.
func (g *Game) State() core.GameState {
	return core.GameState{Score: g.pairs, GameOver: g.phase == phaseWon}
}
