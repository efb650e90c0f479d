package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/box-arcade/internal/core"
)

// keyActions lists what each key means in a game. One key can carry
// several actions: Simon reads the pads, the other games read the
// directions, and each ignores what it does not use.
var keyActions = map[string][]core.Action{
	"up":     {core.ActionUp},
	"down":   {core.ActionDown},
	"left":   {core.ActionLeft},
	"right":  {core.ActionRight},
	"w":      {core.ActionUp, core.ActionPad2},
	"a":      {core.ActionLeft, core.ActionPad3},
	"s":      {core.ActionDown, core.ActionPad4},
	"d":      {core.ActionRight},
	"q":      {core.ActionRotateCCW, core.ActionPad1},
	"l":      {core.ActionPad1},
	";":      {core.ActionPad2},
	".":      {core.ActionPad3},
	"/":      {core.ActionPad4},
	"enter":  {core.ActionConfirm},
	" ":      {core.ActionPause},
	"p":      {core.ActionPause},
	"r":      {core.ActionRestart},
	"b":      {core.ActionBack},
	"esc":    {core.ActionQuit},
	"ctrl+c": {core.ActionQuit},
}

// GameKeys are the in-game bindings shown in the help line.
type GameKeys struct {
	Move       key.Binding
	RotateBack key.Binding
	Pads       key.Binding
	Confirm    key.Binding
	Pause      key.Binding
	Restart    key.Binding
	Back       key.Binding
	Screenshot key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k GameKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Pause, k.Restart, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k GameKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Move, k.RotateBack, k.Pads, k.Confirm},
		{k.Pause, k.Restart, k.Back, k.Screenshot, k.Quit},
	}
}

// DefaultGameKeys returns the in-game bindings.
func DefaultGameKeys() GameKeys {
	return GameKeys{
		Move: key.NewBinding(
			key.WithKeys("up", "down", "left", "right", "w", "a", "s", "d"),
			key.WithHelp("arrows/wasd", "move"),
		),
		RotateBack: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "rotate back"),
		),
		Pads: key.NewBinding(
			key.WithKeys("q", "l", "w", ";", "a", ".", "s", "/"),
			key.WithHelp("q w a s", "pads"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "confirm"),
		),
		Pause: key.NewBinding(
			key.WithKeys(" ", "p"),
			key.WithHelp("space", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Back: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "menu"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "quit"),
		),
	}
}

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey returns the actions a key triggers and whether it asks to quit.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (actions []core.Action, isQuit bool) {
	actions = keyActions[msg.String()]
	for _, a := range actions {
		if a == core.ActionQuit {
			return actions, true
		}
	}
	return actions, false
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	actions, isQuit := km.MapKey(msg)
	for _, a := range actions {
		frame.Set(a)
	}
	return isQuit
}

// MapMouseToFrame records a mouse event on the frame. Terminal cells map
// to the pixel layer: one column per pixel, two pixel rows per line.
func (km *KeyMapper) MapMouseToFrame(msg tea.MouseMsg, frame *core.InputFrame) {
	p := &frame.Pointer
	p.X, p.Y = msg.X, msg.Y*2
	p.Valid = true
	switch msg.Action {
	case tea.MouseActionMotion:
		p.Moved = true
	case tea.MouseActionRelease:
		if msg.Button == tea.MouseButtonLeft || msg.Button == tea.MouseButtonNone {
			p.Clicked = true
		}
	}
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionLeft
	MenuActionRight
	MenuActionSelect
	MenuActionScoreboard
	MenuActionBack
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "a", "left", "h":
		return MenuActionLeft
	case "d", "right", "l":
		return MenuActionRight
	case "enter", " ":
		return MenuActionSelect
	case "tab":
		return MenuActionScoreboard
	case "b", "esc":
		return MenuActionBack
	}
	return MenuActionNone
}
