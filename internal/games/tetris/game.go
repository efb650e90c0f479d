// Package tetris implements falling-block tetris on a 10x20 grid with a
// next-piece preview, line-clear flashes and levels that speed up gravity.
package tetris

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/box-arcade/internal/config"
	"github.com/vovakirdan/box-arcade/internal/core"
	"github.com/vovakirdan/box-arcade/internal/gamelib"
	"github.com/vovakirdan/box-arcade/internal/registry"
)

type phase int

const (
	phaseStart phase = iota
	phasePlay
	phaseFlash
	phasePaused
	phaseGameOver
)

const (
	infoWidth    = 14 // pixels, status and preview boxes
	infoGap      = 3
	overWaitSecs = 0.5
)

var (
	fieldBG = core.ColorBlack
	textFG  = core.ColorWhite

	levelColors = []core.Color{
		core.ColorBlack,
		core.CB14DarkPink,
		core.CB14Pink,
		core.CB14DarkBlue,
		core.CB14Blue,
		core.CB14DarkGreen,
		core.CB14Green,
		core.CB14Yellow,
		core.CB14Orange,
		core.CB14Red,
	}
	borderColors = []core.Color{
		core.CB14LightBlue,
		core.CB14LightGreen,
		core.CB14LightOrange,
		core.CB14LightPink,
		core.ColorWhite,
	}
)

// Game implements tetris.
type Game struct {
	rcfg    core.RuntimeConfig
	cfg     config.TetrisConfig
	display *gamelib.Display
	rng     *rand.Rand

	field    gamelib.Layout
	preview  gamelib.Layout
	infoRow  int // text row of the status box
	tooSmall bool

	grid    *Grid
	falling *Piece
	next    Piece

	phase       phase
	fallElapsed float64 // seconds since the last gravity step
	flashRows   []int
	flash       gamelib.Timer
	overTicks   int

	score int
	level int
	lines int

	sounds []core.Sound
}

// New creates a tetris game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("tetris", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "tetris"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Tetris"
}

// Controls describes the input.
func (g *Game) Controls() string {
	return "←/→ move | ↑ rotate | Q rotate back | ↓ drop | Space pause"
}

// Reset loads the config, lays out the field and shows the title screen.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rcfg = cfg
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	log := cfg.Log()

	tc, err := config.LoadTetris(cfg.ConfigPath)
	if err != nil {
		log.Warn("tetris config not loaded, using defaults", "err", err)
	}
	if tc.Board.Width < templateSize || tc.Board.Height < templateSize {
		log.Error("tetris board too small, using defaults", "width", tc.Board.Width, "height", tc.Board.Height)
		tc.Board = config.DefaultTetrisConfig().Board
	}
	g.cfg = tc

	g.display = gamelib.NewDisplay(cfg, "Tetris")
	g.calcLayout()
	g.grid = NewGrid(tc.Board.Width, tc.Board.Height)
	g.newGame()
	g.phase = phaseStart
}

// calcLayout fits the field into the bottom of the screen with the status
// and preview boxes on its right.
func (g *Game) calcLayout() {
	w, h := g.display.Size()
	cols, rows := g.cfg.Board.Width, g.cfg.Board.Height

	cell := min((h-4)/rows, (w-infoWidth-2*infoGap)/cols)
	g.tooSmall = cell < 1
	if g.tooSmall {
		return
	}

	fieldW, fieldH := cols*cell, rows*cell
	x := (w - fieldW) / 2
	if x+fieldW+infoGap+infoWidth > w {
		x = max(1, w-fieldW-infoGap-infoWidth-1)
	}
	y := h - fieldH - 2
	y -= y % 2
	g.field = gamelib.Layout{Cols: cols, Rows: rows, XMargin: x, YMargin: y, BoxSize: cell}

	infoX := x + fieldW + infoGap
	g.infoRow = (y + 1) / 2
	g.preview = gamelib.Layout{
		Cols:    templateSize,
		Rows:    templateSize,
		XMargin: infoX,
		YMargin: (g.infoRow+2)*2 + infoGap,
		BoxSize: min(cell, infoWidth/templateSize),
	}
}

func (g *Game) newGame() {
	g.grid.Clear()
	g.score = 0
	g.lines = 0
	g.level = Level(0, g.cfg.Timing.PointsPerLevel)
	g.flashRows = nil
	g.overTicks = 0
	g.next = NewPiece(g.rng, g.grid.W)
	g.falling = nil
	g.spawn()
}

// spawn moves the preview piece onto the field. A piece that does not fit
// ends the game.
func (g *Game) spawn() {
	p := g.next
	g.next = NewPiece(g.rng, g.grid.W)
	g.falling = &p
	g.fallElapsed = 0
	if !g.grid.Valid(p, 0, 0) {
		g.gameOver()
		return
	}
	g.phase = phasePlay
}

func (g *Game) gameOver() {
	g.display.Log().Info("tetris game over", "score", g.score, "level", g.level, "lines", g.lines)
	g.sounds = append(g.sounds, core.SoundFail)
	g.phase = phaseGameOver
	g.overTicks = 0
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.sounds = nil

	if in.Has(core.ActionRestart) {
		g.Reset(g.rcfg)
		return core.StepResult{State: g.State()}
	}
	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	switch g.phase {
	case phaseStart:
		if in.AnyKey() {
			g.phase = phasePlay
		}

	case phasePaused:
		if in.AnyKey() {
			g.phase = phasePlay
			g.fallElapsed = 0
		}

	case phaseGameOver:
		g.overTicks++
		if g.overTicks > g.display.Frames(secs(overWaitSecs)) && in.AnyKey() {
			g.newGame()
		}

	case phaseFlash:
		if g.flash.Tick() {
			g.clearLines()
		}

	case phasePlay:
		g.stepPlay(in)
	}

	return core.StepResult{State: g.State(), Sounds: g.sounds}
}

func (g *Game) stepPlay(in core.InputFrame) {
	if in.Has(core.ActionPause) {
		g.phase = phasePaused
		return
	}

	p := g.falling
	if in.Has(core.ActionLeft) && g.grid.Valid(*p, -1, 0) {
		p.X--
	}
	if in.Has(core.ActionRight) && g.grid.Valid(*p, 1, 0) {
		p.X++
	}
	if in.Has(core.ActionDown) && g.grid.Valid(*p, 0, 1) {
		p.Y++
	}
	if in.Has(core.ActionUp) {
		g.rotate(1)
	}
	if in.Has(core.ActionRotateCCW) {
		g.rotate(-1)
	}

	g.fallElapsed += g.display.Dt().Seconds()
	if g.fallElapsed <= FallInterval(g.level, g.cfg.Timing) {
		return
	}
	if g.grid.Valid(*p, 0, 1) {
		p.Y++
		g.fallElapsed = 0
		return
	}
	g.land()
}

// rotate turns the falling piece and undoes the turn when it does not fit.
func (g *Game) rotate(dir int) {
	g.falling.Rotate(dir)
	if !g.grid.Valid(*g.falling, 0, 0) {
		g.falling.Rotate(-dir)
	}
}

// land freezes the falling piece and flashes any completed rows before
// the next piece appears.
func (g *Game) land() {
	g.grid.Add(*g.falling)
	g.falling = nil

	rows := g.grid.CompleteLines()
	if len(rows) == 0 {
		g.spawn()
		return
	}
	g.flashRows = rows
	g.flash = gamelib.NewTimer(g.display.Frames(secs(g.cfg.Timing.FlashSeconds)))
	g.phase = phaseFlash
	g.sounds = append(g.sounds, core.SoundPickup)
}

func (g *Game) clearLines() {
	n := len(g.flashRows)
	g.grid.RemoveLines(g.flashRows)
	g.flashRows = nil
	g.lines += n
	g.score += LineScore(n)

	level := Level(g.score, g.cfg.Timing.PointsPerLevel)
	if level != g.level {
		g.display.Log().Debug("tetris level up", "level", level, "fall", FallInterval(level, g.cfg.Timing))
	}
	g.level = level
	g.spawn()
}

// Render draws the field, status box, preview and any overlay text.
func (g *Game) Render(dst *core.Screen) {
	if g.tooSmall {
		g.display.FillColor(dst, core.ColorBlack)
		dst.DrawTextCenteredColor(dst.Height()/2, "Window too small", textFG, core.ColorDefault)
		return
	}

	border := borderColors[(g.level/len(levelColors))%len(borderColors)]
	g.display.FillColor(dst, levelColors[(g.level-1)%len(levelColors)])

	fb := g.field.Bounds()
	dst.StrokeRect(fb.Inset(-1), border, 1)
	dst.FillRect(fb, fieldBG)

	flashing := make(map[int]bool, len(g.flashRows))
	for _, y := range g.flashRows {
		flashing[y] = true
	}
	firstHalf := g.flash.Progress() < 0.5
	for y := 0; y < g.grid.H; y++ {
		for x := 0; x < g.grid.W; x++ {
			if flashing[y] {
				if firstHalf {
					drawCell(dst, &g.field, x, y, core.ColorLightGray, core.ColorGray)
				} else {
					drawCell(dst, &g.field, x, y, core.ColorBlack, core.ColorDarkGray)
				}
				continue
			}
			if c := g.grid.At(x, y); !c.IsDefault() {
				drawCell(dst, &g.field, x, y, c, litColors[c])
			}
		}
	}
	if g.falling != nil && g.phase != phaseStart {
		drawPiece(dst, &g.field, *g.falling, true)
	}

	g.renderInfo(dst, border)

	dst.DrawTextColor(0, 0, " "+g.display.Caption, textFG, core.ColorDefault)
	switch g.phase {
	case phaseStart:
		g.renderBanner(dst, "Tetris")
	case phasePaused:
		g.renderBanner(dst, "Pause")
	case phaseGameOver:
		g.renderBanner(dst, "Game Over")
	}
}

func (g *Game) renderInfo(dst *core.Screen, border core.Color) {
	x := g.preview.XMargin
	w := min(infoWidth, dst.PixelWidth()-x-1)

	status := core.NewRect(x, g.infoRow*2, w, 4)
	dst.StrokeRect(status.Inset(-1), border, 1)
	dst.FillRect(status, fieldBG)
	dst.DrawTextColor(x, g.infoRow, fmt.Sprintf("Score: %d", g.score), textFG, core.ColorDefault)
	dst.DrawTextColor(x, g.infoRow+1, fmt.Sprintf("Level: %d", g.level), textFG, core.ColorDefault)

	nb := g.preview.Bounds()
	dst.StrokeRect(nb.Inset(-1), border, 1)
	dst.FillRect(nb, fieldBG)
	preview := g.next
	preview.X, preview.Y = 0, 0
	drawPiece(dst, &g.preview, preview, false)
}

// renderBanner shows a big message with a prompt under it at 40% height.
func (g *Game) renderBanner(dst *core.Screen, text string) {
	row := dst.Height() * 4 / 10
	dst.DrawTextCenteredColor(row, text, textFG, core.ColorDefault)
	dst.DrawTextCenteredColor(row+2, "Press any key to play", core.ColorGray, core.ColorDefault)
}

// drawCell paints one block: its color with a lighter inner square.
func drawCell(dst *core.Screen, l *gamelib.Layout, x, y int, c, lit core.Color) {
	box := gamelib.ColorBox{Box: gamelib.NewBox(l, x, y), Color: c, Lit: lit}
	box.DrawBevel(dst)
}

// drawPiece draws p on l. Cells outside the grid are skipped when clip is
// set.
func drawPiece(dst *core.Screen, l *gamelib.Layout, p Piece, clip bool) {
	for _, c := range p.Cells(0, 0) {
		if clip && !l.InBounds(c.X, c.Y) {
			continue
		}
		drawCell(dst, l, c.X, c.Y, p.Shape.Color, p.Shape.Lit)
	}
}

func secs(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

// Meter shows progress toward the next level.
func (g *Game) Meter() (string, float64, bool) {
	per := g.cfg.Timing.PointsPerLevel
	if per <= 0 || g.phase == phaseStart || g.phase == phaseGameOver {
		return "", 0, false
	}
	return fmt.Sprintf("Level %d", g.level), float64(g.score%per) / float64(per), true
}

// State returns the score and whether the game is over or paused.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.phase == phaseGameOver,
		Paused:   g.phase == phasePaused,
	}
}
