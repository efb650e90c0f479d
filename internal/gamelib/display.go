// Package gamelib holds the pieces the tutorial games share: the display
// context, board geometry, box kinds, buttons, icons and tick timers.
package gamelib

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/box-arcade/internal/core"
)

// Default display colors.
const (
	DefaultBG      = core.ColorLightGray
	DefaultBGLight = core.ColorGray
)

// Display is the per-session drawing context: pixel size, frame rate,
// background colors and caption. Games build one in Reset and hand it to
// everything that needs to know about the window.
type Display struct {
	Width   int // pixels
	Height  int // pixels
	FPS     int
	BG      core.Color
	BGLight core.Color
	Caption string

	cfg core.RuntimeConfig
}

// DisplayOption customizes a Display.
type DisplayOption func(*Display)

// WithBackground sets the normal and light background colors.
func WithBackground(bg, light core.Color) DisplayOption {
	return func(d *Display) {
		d.BG = bg
		d.BGLight = light
	}
}

// NewDisplay derives a display from the runtime config. The pixel layer of
// a screen is as wide as the screen and twice as tall.
func NewDisplay(cfg core.RuntimeConfig, caption string, opts ...DisplayOption) *Display {
	fps := cfg.TickRate
	if fps <= 0 {
		fps = 60
		cfg.TickRate = fps
	}
	d := &Display{
		Width:   cfg.ScreenW,
		Height:  cfg.ScreenH * 2,
		FPS:     fps,
		BG:      DefaultBG,
		BGLight: DefaultBGLight,
		Caption: caption,
		cfg:     cfg,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Size returns the pixel dimensions.
func (d *Display) Size() (int, int) {
	return d.Width, d.Height
}

// Frames converts a duration to ticks at the display rate.
func (d *Display) Frames(dur time.Duration) int {
	return d.cfg.Ticks(dur)
}

// Dt is the time one frame represents.
func (d *Display) Dt() time.Duration {
	return d.cfg.TickDuration()
}

// Log returns the session logger.
func (d *Display) Log() *log.Logger {
	return d.cfg.Log()
}

// Fill clears the screen and paints the background.
func (d *Display) Fill(dst *core.Screen) {
	d.FillColor(dst, d.BG)
}

// FillColor clears the screen and paints it with c.
func (d *Display) FillColor(dst *core.Screen, c core.Color) {
	dst.Clear()
	dst.FillPixels(c)
}

// DrawCaption writes the caption centered on the top text row.
func (d *Display) DrawCaption(dst *core.Screen, fg core.Color) {
	if d.Caption == "" {
		return
	}
	dst.DrawTextCenteredColor(0, d.Caption, fg, core.ColorDefault)
}
