// Package window runs one arcade game in a native window with ebiten.
// The game draws into the same core.Screen the terminal uses; each
// terminal cell becomes a cellW x cellH block of window pixels.
package window

import (
	"errors"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/box-arcade/internal/core"
	"github.com/vovakirdan/box-arcade/internal/registry"
	"github.com/vovakirdan/box-arcade/internal/storage"
)

// Cell geometry in window pixels. A pixel-layer pixel is half a cell tall.
const (
	cellW  = 8
	cellH  = 16
	pixelH = cellH / 2
)

var (
	defaultBG = colornames.Black
	defaultFG = colornames.Whitesmoke

	face = text.NewGoXFace(basicfont.Face7x13)
)

// Runner adapts a registry.Game to ebiten.Game.
type Runner struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	synth      *Synth
	input      core.InputFrame
	lastCursor core.Point
	state      core.GameState
	scoreSaved bool
}

// NewRunner prepares a game for the window. The synth may be nil for a
// silent run.
func NewRunner(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, synth *Synth) *Runner {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	r := &Runner{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:  store,
		config: cfg,
		synth:  synth,
		input:  core.NewInputFrame(),
	}
	game.Reset(cfg)
	return r
}

// Update reads input and advances the game one tick.
func (r *Runner) Update() error {
	for _, k := range inpututil.AppendPressedKeys(nil) {
		applyKey(&r.input, k, inpututil.KeyPressDuration(k))
	}
	r.readPointer()

	if r.input.Has(core.ActionQuit) || r.input.Has(core.ActionBack) {
		return ebiten.Termination
	}
	r.tick()
	return nil
}

func (r *Runner) readPointer() {
	p := pixelAt(ebiten.CursorPosition())
	ptr := &r.input.Pointer
	ptr.X, ptr.Y = p.X, p.Y
	ptr.Valid = true
	if p != r.lastCursor {
		ptr.Moved = true
		r.lastCursor = p
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		ptr.Clicked = true
	}
}

// tick steps the game with the collected input, then clears it.
func (r *Runner) tick() {
	defer r.input.Clear()

	if r.input.Has(core.ActionRestart) && r.state.GameOver {
		r.config.Seed = time.Now().UnixNano()
		r.game.Reset(r.config)
		r.state = r.game.State()
		r.scoreSaved = false
		return
	}

	result := r.game.Step(r.input)
	r.state = result.State
	if r.synth != nil {
		r.synth.Play(result.Sounds)
	}

	switch {
	case r.state.GameOver && !r.scoreSaved:
		r.saveScore()
		r.scoreSaved = true
	case !r.state.GameOver:
		r.scoreSaved = false
	}
}

func (r *Runner) saveScore() {
	if r.state.Score <= 0 || r.store == nil {
		return
	}
	if _, err := r.store.SaveScore(r.game.ID(), r.config.Variant, r.state.Score); err != nil {
		r.config.Log().Error("cannot save score", "game", r.game.ID(), "err", err)
	}
}

// Draw paints the game's screen buffer.
func (r *Runner) Draw(dst *ebiten.Image) {
	dst.Fill(defaultBG)
	r.game.Render(r.screen)
	drawScreen(dst, r.screen)
}

// Layout keeps the window at the screen buffer's size; ebiten scales it.
func (r *Runner) Layout(_, _ int) (int, int) {
	return r.screen.Width() * cellW, r.screen.Height() * cellH
}

func colorOr(c core.Color, def color.Color) color.Color {
	if c.IsDefault() {
		return def
	}
	return c
}

func fillRect(dst *ebiten.Image, x, y, w, h int, c color.Color) {
	vector.DrawFilledRect(dst, float32(x), float32(y), float32(w), float32(h), c, false)
}

// drawScreen paints every composed cell: half blocks become two rects,
// other runes are drawn with the fixed-width font over their background.
func drawScreen(dst *ebiten.Image, s *core.Screen) {
	for y := range s.Height() {
		for x := range s.Width() {
			c := s.GetCell(x, y)
			px, py := x*cellW, y*cellH

			switch c.Rune {
			case '▀':
				fillRect(dst, px, py, cellW, pixelH, colorOr(c.Fg, defaultFG))
				if !c.Bg.IsDefault() {
					fillRect(dst, px, py+pixelH, cellW, pixelH, c.Bg)
				}
			case '▄':
				if !c.Bg.IsDefault() {
					fillRect(dst, px, py, cellW, pixelH, c.Bg)
				}
				fillRect(dst, px, py+pixelH, cellW, pixelH, colorOr(c.Fg, defaultFG))
			default:
				if !c.Bg.IsDefault() {
					fillRect(dst, px, py, cellW, cellH, c.Bg)
				}
				if c.Rune != ' ' && c.Rune != 0 {
					op := &text.DrawOptions{}
					op.GeoM.Translate(float64(px), float64(py+1))
					op.ColorScale.ScaleWithColor(colorOr(c.Fg, defaultFG))
					text.Draw(dst, string(c.Rune), face, op)
				}
			}
		}
	}
}

// Run opens a window and plays until the player quits or closes it.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) error {
	r := NewRunner(game, store, cfg, NewSynth())

	w, h := r.Layout(0, 0)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetTPS(max(cfg.TickRate, 1))

	cfg.Log().Info("window opened", "game", game.ID(), "width", w, "height", h)
	err := ebiten.RunGame(r)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}
