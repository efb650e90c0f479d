package window

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/box-arcade/internal/core"
)

// keyActions mirrors the terminal bindings so both platforms play alike.
var keyActions = map[ebiten.Key][]core.Action{
	ebiten.KeyArrowUp:    {core.ActionUp},
	ebiten.KeyArrowDown:  {core.ActionDown},
	ebiten.KeyArrowLeft:  {core.ActionLeft},
	ebiten.KeyArrowRight: {core.ActionRight},
	ebiten.KeyW:          {core.ActionUp, core.ActionPad2},
	ebiten.KeyA:          {core.ActionLeft, core.ActionPad3},
	ebiten.KeyS:          {core.ActionDown, core.ActionPad4},
	ebiten.KeyD:          {core.ActionRight},
	ebiten.KeyQ:          {core.ActionRotateCCW, core.ActionPad1},
	ebiten.KeyL:          {core.ActionPad1},
	ebiten.KeySemicolon:  {core.ActionPad2},
	ebiten.KeyPeriod:     {core.ActionPad3},
	ebiten.KeySlash:      {core.ActionPad4},
	ebiten.KeyEnter:      {core.ActionConfirm},
	ebiten.KeySpace:      {core.ActionPause},
	ebiten.KeyP:          {core.ActionPause},
	ebiten.KeyR:          {core.ActionRestart},
	ebiten.KeyB:          {core.ActionBack},
	ebiten.KeyEscape:     {core.ActionQuit},
}

// Held keys repeat after repeatDelay ticks, every repeatEvery ticks.
const (
	repeatDelay = 20
	repeatEvery = 4
)

// fires reports whether a key held for d ticks triggers on this tick.
func fires(d int) bool {
	if d == 1 {
		return true
	}
	return d >= repeatDelay && (d-repeatDelay)%repeatEvery == 0
}

// noRepeat lists the actions that fire once per press.
var noRepeat = map[core.Action]bool{
	core.ActionConfirm: true,
	core.ActionPause:   true,
	core.ActionRestart: true,
	core.ActionBack:    true,
	core.ActionQuit:    true,
}

// applyKey records the actions of key k held for d ticks.
func applyKey(frame *core.InputFrame, k ebiten.Key, d int) {
	if !fires(d) {
		return
	}
	for _, a := range keyActions[k] {
		if d > 1 && noRepeat[a] {
			continue
		}
		frame.Set(a)
	}
}

// pixelAt converts a window position to a pixel-layer coordinate.
func pixelAt(x, y int) core.Point {
	return core.Pt(floorDiv(x, cellW), floorDiv(y, pixelH))
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}
	return q
}
