// Package snake implements the worm game: steer a growing worm to the
// apples without leaving the field or biting yourself.
package snake

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

// Direction represents the worm's movement direction.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

// delta is the cell offset of one move.
func (d Direction) delta() core.Point {
	switch d {
	case DirUp:
		return core.Pt(0, -1)
	case DirDown:
		return core.Pt(0, 1)
	case DirLeft:
		return core.Pt(-1, 0)
	default:
		return core.Pt(1, 0)
	}
}

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
	default:
		return "unknown"
	}
}

const (
	hudRows       = 1 // text rows above the field
	minFieldCells = 8
	overInputWait = 500 * time.Millisecond
	titleBlink    = 500 * time.Millisecond
)

// Colors of the field.
var (
	colorBG    = core.ColorBlack
	colorGrid  = core.ColorDarkGray
	colorApple = core.ColorRed
	colorOuter = core.CB14DarkBlue
	colorInner = core.CB14Blue
)

// Game implements the worm game.
type Game struct {
	rcfg       core.RuntimeConfig
	cfg        config.SnakeConfig
	display    *gamelib.Display
	difficulty *config.DifficultyManager
	rng        *rand.Rand
	tick       uint64

	// Field geometry in pixels and cells
	cellSize int
	cols     int
	rows     int
	offsetY  int

	moveEveryTicks int
	moveTicker     int

	// Worm state, head at index 0
	worm      []core.Point
	direction Direction
	nextDir   Direction
	food      core.Point

	// Game state flags
	started   bool
	paused    bool
	gameOver  bool
	tooSmall  bool
	overTicks int
}

// New creates a worm game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("snake", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "snake"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Snake (elegans)"
}

// Controls describes the input.
func (g *Game) Controls() string {
	return "Arrows/WASD: steer | Space/P: pause | any key: start"
}

// Reset loads the config, sizes the field and shows the start screen.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rcfg = cfg
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	log := cfg.Log()

	sc, err := config.LoadSnake(cfg.ConfigPath)
	if err != nil {
		log.Warn("snake config not loaded, using defaults", "err", err)
	}
	def := config.DefaultSnakeConfig()
	if sc.Grid.CellSize <= 0 {
		sc.Grid.CellSize = def.Grid.CellSize
	}
	if sc.Speed.MovesPerSecond <= 0 {
		sc.Speed.MovesPerSecond = def.Speed.MovesPerSecond
	}
	if sc.Speed.StartLength < 1 {
		sc.Speed.StartLength = def.Speed.StartLength
	}
	g.cfg = sc
	g.difficulty = config.ApplyPreset(sc.Difficulty, cfg.Difficulty)

	g.display = gamelib.NewDisplay(cfg, "C. elegans", gamelib.WithBackground(colorBG, colorGrid))
	g.cellSize = sc.Grid.CellSize
	g.offsetY = hudRows * 2
	g.cols = g.display.Width / g.cellSize
	g.rows = (g.display.Height - g.offsetY) / g.cellSize
	g.tooSmall = g.cols < minFieldCells || g.rows < minFieldCells

	g.started = false
	g.newRound()
	log.Debug("snake field", "cols", g.cols, "rows", g.rows, "cell", g.cellSize, "too_small", g.tooSmall)
}

// newRound places a fresh worm and apple.
func (g *Game) newRound() {
	g.paused = false
	g.gameOver = false
	g.overTicks = 0
	g.moveTicker = 0
	if g.tooSmall {
		g.worm = nil
		return
	}
	g.initWorm()
	g.spawnFood()
	g.updateSpeed()
}

// initWorm places the worm at a random spot heading right, with its body
// trailing to the left.
func (g *Game) initWorm() {
	n := g.cfg.Speed.StartLength
	loX := min(max(5, n-1), g.cols-1)
	hiX := max(loX, g.cols-6)
	loY := min(5, g.rows/2)
	hiY := max(loY, g.rows-6)

	x := loX + g.rng.Intn(hiX-loX+1)
	y := loY + g.rng.Intn(hiY-loY+1)

	g.worm = g.worm[:0]
	for i := 0; i < n; i++ {
		g.worm = append(g.worm, core.Pt(max(x-i, 0), y))
	}
	g.direction = DirRight
	g.nextDir = DirRight
}

// spawnFood places the apple on a random free cell.
func (g *Game) spawnFood() {
	var free []core.Point
	for y := 0; y < g.rows; y++ {
		for x := 0; x < g.cols; x++ {
			p := core.Pt(x, y)
			if !g.isWormAt(p) {
				free = append(free, p)
			}
		}
	}
	if len(free) == 0 {
		g.food = core.Pt(-1, -1)
		return
	}
	g.food = free[g.rng.Intn(len(free))]
}

// isWormAt checks if the worm occupies p.
func (g *Game) isWormAt(p core.Point) bool {
	for _, seg := range g.worm {
		if seg == p {
			return true
		}
	}
	return false
}

// updateSpeed recomputes the move interval from the configured speed and
// the difficulty level.
func (g *Game) updateSpeed() {
	speed := g.difficulty.Speed(g.cfg.Speed.MovesPerSecond, g.Score(), int(g.tick))
	g.moveEveryTicks = max(1, int(math.Round(float64(g.display.FPS)/speed)))
}

// Score is the number of apples eaten.
func (g *Game) Score() int {
	return max(len(g.worm)-g.cfg.Speed.StartLength, 0)
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if !g.started {
		if input.AnyKey() {
			g.started = true
		}
		return core.StepResult{State: g.State()}
	}

	if g.gameOver {
		g.overTicks++
		if g.overTicks > g.display.Frames(overInputWait) && input.AnyKey() {
			g.newRound()
		}
		return core.StepResult{State: g.State()}
	}

	if input.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.processInput(input)

	var sounds []core.Sound
	g.moveTicker++
	if g.moveTicker >= g.moveEveryTicks {
		g.moveTicker = 0
		sounds = g.moveWorm()
	}

	return core.StepResult{State: g.State(), Sounds: sounds}
}

// processInput buffers a direction change for the next move. Reversing is
// allowed and runs the head into the body.
func (g *Game) processInput(input core.InputFrame) {
	switch {
	case input.Has(core.ActionUp):
		g.nextDir = DirUp
	case input.Has(core.ActionDown):
		g.nextDir = DirDown
	case input.Has(core.ActionLeft):
		g.nextDir = DirLeft
	case input.Has(core.ActionRight):
		g.nextDir = DirRight
	}
}

// moveWorm moves the worm one cell in the buffered direction.
func (g *Game) moveWorm() []core.Sound {
	if len(g.worm) == 0 {
		return nil
	}
	g.direction = g.nextDir

	head := g.worm[0].Add(g.direction.delta())
	if head.X < 0 || head.X >= g.cols || head.Y < 0 || head.Y >= g.rows {
		return g.die("edge")
	}

	g.worm = append([]core.Point{head}, g.worm...)

	var sounds []core.Sound
	if head == g.food {
		g.spawnFood()
		g.updateSpeed()
		sounds = append(sounds, core.SoundPickup)
	} else {
		g.worm = g.worm[:len(g.worm)-1]
	}

	for _, seg := range g.worm[1:] {
		if seg == head {
			return g.die("self")
		}
	}
	return sounds
}

func (g *Game) die(cause string) []core.Sound {
	g.gameOver = true
	g.overTicks = 0
	g.display.Log().Info("snake game over", "cause", cause, "score", g.Score(), "tick", g.tick)
	return []core.Sound{core.SoundFail}
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	g.display.Fill(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	if !g.started {
		g.renderStart(dst)
		return
	}

	g.renderGrid(dst)
	g.renderWorm(dst)
	if !g.paused && g.food.X >= 0 {
		dst.FillRect(g.cellRect(g.food), colorApple)
	}

	score := fmt.Sprintf("Score: %d ", g.Score())
	dst.DrawTextColor(dst.Width()-len(score), 0, score, core.ColorWhite, core.ColorDefault)
	dst.DrawTextColor(1, 0, g.display.Caption, core.CB14Blue, core.ColorDefault)

	switch {
	case g.gameOver:
		mid := dst.Height() / 2
		dst.DrawTextCenteredColor(mid-1, "G A M E", core.ColorWhite, core.ColorDefault)
		dst.DrawTextCenteredColor(mid+1, "O V E R", core.ColorWhite, core.ColorDefault)
		g.renderPressKey(dst)
	case g.paused:
		dst.DrawTextCenteredColor(dst.Height()*3/10, "PAUSE", core.ColorLightGray, core.ColorDefault)
	}
}

func (g *Game) cellRect(p core.Point) core.Rect {
	return core.NewRect(p.X*g.cellSize, g.offsetY+p.Y*g.cellSize, g.cellSize, g.cellSize)
}

// renderGrid draws cell boundaries. Cells smaller than four pixels would
// be swallowed by the lines, so they go without.
func (g *Game) renderGrid(dst *core.Screen) {
	if !g.cfg.Grid.GridLines || g.cellSize < 4 {
		return
	}
	bottom := g.offsetY + g.rows*g.cellSize
	right := g.cols * g.cellSize
	for x := 0; x <= right; x += g.cellSize {
		dst.Line(core.Pt(x, g.offsetY), core.Pt(x, bottom), colorGrid, 1)
	}
	for y := g.offsetY; y <= bottom; y += g.cellSize {
		dst.Line(core.Pt(0, y), core.Pt(right, y), colorGrid, 1)
	}
}

// renderWorm draws every segment as an outer square with a lighter core.
func (g *Game) renderWorm(dst *core.Screen) {
	margin := g.cellSize / 5
	for i, seg := range g.worm {
		r := g.cellRect(seg)
		if margin == 0 {
			c := colorOuter
			if i == 0 {
				c = colorInner
			}
			dst.FillRect(r, c)
			continue
		}
		dst.FillRect(r, colorOuter)
		dst.FillRect(r.Inset(margin), colorInner)
	}
}

// renderStart draws the title, alternating its two colors.
func (g *Game) renderStart(dst *core.Screen) {
	c := core.CB14DarkBlue
	if (g.tick/uint64(g.display.Frames(titleBlink)))%2 == 1 {
		c = core.CB14Blue
	}
	dst.DrawTextCenteredColor(dst.Height()/2, "e l e g a n s !", c, core.ColorDefault)
	g.renderPressKey(dst)
}

func (g *Game) renderPressKey(dst *core.Screen) {
	msg := "Press any key to play."
	dst.DrawTextColor(max(dst.Width()-len(msg)-2, 0), dst.Height()-2, msg, core.ColorGray, core.ColorDefault)
}

// renderOverlay draws a framed two-line message in the middle.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	boxW := max(len(line1), len(line2)) + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBoxColor(core.NewRect(boxX, boxY, boxW, boxH), core.ColorWhite)
	dst.DrawTextCenteredColor(boxY+1, line1, core.ColorWhite, core.ColorDefault)
	dst.DrawTextCenteredColor(boxY+3, line2, core.ColorGray, core.ColorDefault)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.Score(),
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}
