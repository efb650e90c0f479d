// Package slide implements the sliding-tile puzzle.
package slide

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/box-arcade/internal/config"
	"github.com/vovakirdan/box-arcade/internal/core"
	"github.com/vovakirdan/box-arcade/internal/gamelib"
	"github.com/vovakirdan/box-arcade/internal/registry"
)

const (
	sidebarWidth = 14 // pixels reserved right of the board for buttons
	slideFrame   = time.Second / 60

	msgSolved   = "Solved!"
	btnNewGame  = "New Game"
	btnReset    = "Reset"
	minGridSize = 2
	parPerTile  = 50 // par moves per numbered tile
)

// slideAnim is a tile travelling into the blank.
type slideAnim struct {
	box     *gamelib.LabelBox
	dir     Direction
	offsets gamelib.Steps
}

// Game implements the sliding puzzle.
type Game struct {
	rcfg    core.RuntimeConfig
	display *gamelib.Display
	layout  *gamelib.Layout
	board   *gamelib.Board[*gamelib.LabelBox]
	puzzle  *Puzzle
	rng     *rand.Rand

	newGame  *gamelib.Button
	resetBtn *gamelib.Button

	msgColor core.Color
	message  string
	solved   bool // the last move finished the puzzle
	anim     *slideAnim
	animHold int
}

// New creates a slide puzzle.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("slide", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "slide"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Slide Puzzle"
}

// Variants lists the board sizes.
func (g *Game) Variants() []registry.Variant {
	return []registry.Variant{
		{ID: "4x4", Label: "Fifteen 4x4"},
		{ID: "3x3", Label: "Eight 3x3"},
		{ID: "5x5", Label: "Twenty-four 5x5"},
	}
}

// Controls describes the input.
func (g *Game) Controls() string {
	return "Arrows/WASD: slide | Mouse: click tile or button | Enter: new game | R: reset"
}

// Reset loads the config and shuffles a new puzzle.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rcfg = cfg
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	log := cfg.Log()

	sc, err := config.LoadSlide(cfg.ConfigPath)
	if err != nil {
		log.Warn("slide config not loaded, using defaults", "err", err)
	}
	if cols, rows, ok := gamelib.ParseGrid(cfg.Variant); ok {
		sc.Board.Cols, sc.Board.Rows = cols, rows
	}
	if sc.Board.Cols < minGridSize || sc.Board.Rows < minGridSize {
		log.Error("slide board too small, using defaults", "cols", sc.Board.Cols, "rows", sc.Board.Rows)
		sc.Board = config.DefaultSlideConfig().Board
	}

	bg := config.Color(sc.Colors.Background, core.ColorDarkTurquoise, log)
	tile := config.Color(sc.Colors.Tile, core.CBDarkPink, log)
	text := config.Color(sc.Colors.Text, core.ColorWhite, log)
	g.msgColor = config.Color(sc.Colors.Message, core.ColorWhite, log)

	g.display = gamelib.NewDisplay(cfg, "Slide!", gamelib.WithBackground(bg, bg))
	l := gamelib.CalcLayout(g.display.Width-sidebarWidth, g.display.Height, sc.Board.Cols, sc.Board.Rows, sc.Board.Gap)
	g.layout = &l
	g.animHold = g.display.Frames(slideFrame)

	g.puzzle = NewPuzzle(sc.Board.Cols, sc.Board.Rows)
	g.board = gamelib.NewBoard(g.layout, func(b gamelib.Box) *gamelib.LabelBox {
		return &gamelib.LabelBox{Box: b, Fg: text, Bg: tile}
	})

	right := g.display.Width - 2
	bottom := l.Bounds().Bottom()
	g.newGame = g.board.AddButton(gamelib.NewButton(btnNewGame, core.Pt(right, bottom)))
	g.resetBtn = g.board.AddButton(gamelib.NewButton(btnReset, core.Pt(right, bottom-4)))
	for _, b := range g.board.Buttons {
		b.Bg = tile
		b.Fg = text
	}

	g.anim = nil
	g.message = ""
	g.solved = false
	g.puzzle.Shuffle(g.rng)
	g.sync()
	log.Debug("slide puzzle shuffled", "cols", sc.Board.Cols, "rows", sc.Board.Rows, "labels", g.puzzle.Labels())
}

// sync copies the puzzle labels onto the boxes.
func (g *Game) sync() {
	for y := 0; y < g.puzzle.Rows(); y++ {
		for x := 0; x < g.puzzle.Cols(); x++ {
			g.board.At(x, y).Label = g.puzzle.At(x, y)
		}
	}
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.anim != nil {
		if g.anim.offsets.Tick() {
			g.puzzle.Move(g.anim.dir)
			g.anim = nil
			g.sync()
			if g.puzzle.IsSolved() {
				g.solved = true
				g.display.Log().Info("slide puzzle solved", "moves", g.puzzle.Moves(), "points", g.Points())
			}
		}
		return core.StepResult{State: g.State()}
	}

	var sounds []core.Sound
	switch {
	case in.Clicked():
		p := in.Pointer.Pos()
		if btn, ok := g.board.ButtonAt(p); ok {
			g.press(btn)
			sounds = append(sounds, core.SoundBeep1)
			break
		}
		if cell, ok := g.layout.CellAt(p); ok {
			if d, ok := g.puzzle.DirectionTo(cell); ok {
				g.slide(d)
			}
		}
	case in.Has(core.ActionConfirm):
		g.press(g.newGame)
	case in.Has(core.ActionRestart):
		g.press(g.resetBtn)
	case in.Has(core.ActionUp):
		g.slide(DirUp)
	case in.Has(core.ActionDown):
		g.slide(DirDown)
	case in.Has(core.ActionLeft):
		g.slide(DirLeft)
	case in.Has(core.ActionRight):
		g.slide(DirRight)
	}

	return core.StepResult{State: g.State(), Sounds: sounds}
}

func (g *Game) press(btn *gamelib.Button) {
	switch btn {
	case g.newGame:
		g.puzzle.Shuffle(g.rng)
	case g.resetBtn:
		g.puzzle.Reset()
	}
	g.sync()
	g.solved = false
	g.message = btn.Text
}

// slide starts the animation for a legal move. The puzzle itself changes
// when the animation ends.
func (g *Game) slide(d Direction) {
	from, ok := g.puzzle.Mover(d)
	if !ok {
		return
	}
	g.message = ""
	g.solved = false
	g.anim = &slideAnim{
		box:     g.board.At(from.X, from.Y),
		dir:     d,
		offsets: gamelib.NewSteps(gamelib.SlideOffsets(g.layout.BoxSize+g.layout.GapSize, g.layout.AnimationSpeed), g.animHold),
	}
}

// Message is the status line: "Solved!", the last button pressed or
// nothing.
func (g *Game) Message() string {
	if g.anim == nil && g.puzzle.IsSolved() {
		return msgSolved
	}
	return g.message
}

// Render draws the board, the buttons and the status message.
func (g *Game) Render(dst *core.Screen) {
	g.display.Fill(dst)

	for _, btn := range g.board.Buttons {
		btn.Draw(dst)
	}
	for _, box := range g.board.Boxes {
		if g.anim != nil && box == g.anim.box {
			continue
		}
		box.Draw(dst)
	}
	if g.anim != nil {
		d := g.anim.dir.delta()
		off := g.anim.offsets.Value()
		g.anim.box.DrawOffset(dst, d.X*off, d.Y*off)
	}

	g.board.DrawMessage(dst, g.Message(), g.msgColor, core.ColorDefault)
	dst.DrawTextColor(0, 0, fmt.Sprintf(" %s  Moves: %d", g.display.Caption, g.puzzle.Moves()), g.msgColor, core.ColorDefault)
}

// Points rewards short solutions: par for the board minus the moves
// used, never below one.
func (g *Game) Points() int {
	par := parPerTile * (g.puzzle.Cols()*g.puzzle.Rows() - 1)
	return max(par-g.puzzle.Moves(), 1)
}

// State reports GameOver once a move solves the puzzle, with Points as
// the score. The next button press or move starts play again.
func (g *Game) State() core.GameState {
	if !g.solved {
		return core.GameState{}
	}
	return core.GameState{Score: g.Points(), GameOver: true}
}
