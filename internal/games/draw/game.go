// Package draw is a static scene of drawing primitives: a polygon, lines,
// a circle, an ellipse, a rectangle, single pixels and a line of text.
// Clicking plays a sound; every input is logged.
package draw

import (
	"github.com/vovakirdan/box-arcade/internal/core"
	"github.com/vovakirdan/box-arcade/internal/gamelib"
	"github.com/vovakirdan/box-arcade/internal/registry"
)

// The scene is laid out on a 500x400 canvas and scaled to the display.
const (
	canvasW = 500
	canvasH = 400
)

var (
	polygon = []core.Point{{X: 146, Y: 0}, {X: 291, Y: 106}, {X: 236, Y: 277}, {X: 56, Y: 277}, {X: 0, Y: 106}}
	dots    = []core.Point{{X: 480, Y: 380}, {X: 482, Y: 382}, {X: 483, Y: 384}, {X: 486, Y: 386}, {X: 488, Y: 388}}
)

const greeting = "Hello, world!"

// Game shows the drawing demo.
type Game struct {
	rcfg    core.RuntimeConfig
	display *gamelib.Display
	clicks  int
}

// New creates the demo.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("draw", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "draw"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Drawing!"
}

// Controls describes the input.
func (g *Game) Controls() string {
	return "Mouse: click anywhere for a sound"
}

// Reset sizes the scene to the screen.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rcfg = cfg
	g.display = gamelib.NewDisplay(cfg, "Drawing!", gamelib.WithBackground(core.ColorWhite, core.ColorWhite))
	g.clicks = 0
}

// Step logs input and plays a sound for each click.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	log := g.display.Log()
	for a, on := range in.Actions {
		if on {
			log.Debug("draw input", "action", a)
		}
	}
	p := in.Pointer
	if p.Moved || p.Clicked {
		log.Debug("draw pointer", "x", p.X, "y", p.Y, "clicked", p.Clicked)
	}

	if in.Has(core.ActionRestart) {
		g.Reset(g.rcfg)
	}

	var sounds []core.Sound
	if in.Clicked() {
		g.clicks++
		sounds = append(sounds, core.SoundPickup)
	}
	return core.StepResult{State: g.State(), Sounds: sounds}
}

// pt scales a canvas point to display pixels.
func (g *Game) pt(p core.Point) core.Point {
	return core.Pt(p.X*g.display.Width/canvasW, p.Y*g.display.Height/canvasH)
}

// size scales a canvas length, never below one pixel.
func (g *Game) size(n int) int {
	return max(n*min(g.display.Width, g.display.Height)/canvasH, 1)
}

// Render draws the scene.
func (g *Game) Render(dst *core.Screen) {
	g.display.Fill(dst)

	pts := make([]core.Point, len(polygon))
	for i, p := range polygon {
		pts[i] = g.pt(p)
	}
	dst.Polygon(pts, core.ColorGreen, 0)

	dst.Line(g.pt(core.Pt(60, 60)), g.pt(core.Pt(120, 60)), core.ColorBlue, g.size(4))
	dst.Line(g.pt(core.Pt(120, 60)), g.pt(core.Pt(60, 120)), core.ColorBlue, 1)
	dst.Line(g.pt(core.Pt(60, 120)), g.pt(core.Pt(120, 120)), core.ColorBlue, g.size(4))
	dst.Circle(g.pt(core.Pt(300, 50)), g.size(20), core.ColorBlue, 0)

	tl, br := g.pt(core.Pt(300, 250)), g.pt(core.Pt(340, 330))
	dst.Ellipse(core.NewRect(tl.X, tl.Y, br.X-tl.X, br.Y-tl.Y), core.ColorRed, 1)

	tl, br = g.pt(core.Pt(200, 150)), g.pt(core.Pt(300, 200))
	dst.FillRect(core.NewRect(tl.X, tl.Y, br.X-tl.X, br.Y-tl.Y), core.ColorRed)

	for _, d := range dots {
		p := g.pt(d)
		dst.SetPixel(p.X, p.Y, core.ColorBlack)
	}

	dst.DrawTextCenteredColor(dst.Height()-2, greeting, core.ColorGreen, core.ColorBlue)
}

// State reports the number of clicks as the score. The demo never ends.
func (g *Game) State() core.GameState {
	return core.GameState{Score: g.clicks}
}
