package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/box-arcade/internal/core"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKeyCarriesSeveralActions(t *testing.T) {
	km := NewKeyMapper()

	actions, quit := km.MapKey(runeKey("w"))
	assert.False(t, quit)
	assert.ElementsMatch(t, []core.Action{core.ActionUp, core.ActionPad2}, actions)

	actions, _ = km.MapKey(runeKey("q"))
	assert.ElementsMatch(t, []core.Action{core.ActionRotateCCW, core.ActionPad1}, actions)

	actions, _ = km.MapKey(tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, []core.Action{core.ActionLeft}, actions)
}

func TestMapKeyQuit(t *testing.T) {
	km := NewKeyMapper()

	_, quit := km.MapKey(tea.KeyMsg{Type: tea.KeyEsc})
	assert.True(t, quit)
	_, quit = km.MapKey(tea.KeyMsg{Type: tea.KeyCtrlC})
	assert.True(t, quit)
	_, quit = km.MapKey(runeKey("b"))
	assert.False(t, quit, "b goes back to the menu, it does not quit")
}

func TestMapKeyUnknown(t *testing.T) {
	actions, quit := NewKeyMapper().MapKey(runeKey("z"))
	assert.Empty(t, actions)
	assert.False(t, quit)
}

func TestMapKeyToFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeyEnter}, &frame)
	km.MapKeyToFrame(runeKey("s"), &frame)

	assert.True(t, frame.Has(core.ActionConfirm))
	assert.True(t, frame.Has(core.ActionDown))
	assert.True(t, frame.Has(core.ActionPad4))
	assert.False(t, frame.Has(core.ActionUp))
}

func TestMapMouseToFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	km.MapMouseToFrame(tea.MouseMsg{X: 7, Y: 3, Action: tea.MouseActionMotion}, &frame)
	assert.True(t, frame.Pointer.Valid)
	assert.True(t, frame.Pointer.Moved)
	assert.False(t, frame.Clicked())
	assert.Equal(t, core.Pt(7, 6), frame.Pointer.Pos(), "rows map to pixel pairs")

	km.MapMouseToFrame(tea.MouseMsg{X: 2, Y: 1, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}, &frame)
	assert.True(t, frame.Clicked())
	assert.Equal(t, core.Pt(2, 2), frame.Pointer.Pos())

	frame.Clear()
	assert.False(t, frame.Clicked())
	assert.True(t, frame.Pointer.Valid, "position survives a cleared frame")
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{runeKey("k"), MenuActionUp},
		{tea.KeyMsg{Type: tea.KeyDown}, MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{tea.KeyMsg{Type: tea.KeyEsc}, MenuActionBack},
		{runeKey("q"), MenuActionQuit},
		{runeKey("x"), MenuActionNone},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, km.MapKeyToMenuAction(tt.msg), tt.msg.String())
	}
}
