package tui

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/box-arcade/internal/config"
	"github.com/vovakirdan/box-arcade/internal/core"
	"github.com/vovakirdan/box-arcade/internal/gamelib"
	"github.com/vovakirdan/box-arcade/internal/games/memory"
	"github.com/vovakirdan/box-arcade/internal/storage"
)

// clickAt releases the left button over pixel (x, y).
func clickAt(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y / 2, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}
}

func TestClearedMemoryBoardIsSaved(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	cfg := core.DefaultConfig()
	cfg.Seed = 3
	cfg.Variant = "2x1"
	m := NewModel(memory.New(), store, cfg)
	m.Init()

	mc, err := config.LoadMemory("")
	require.NoError(t, err)
	l := gamelib.CalcLayout(cfg.ScreenW, gameHeight(cfg.ScreenH)*2, 2, 1, mc.Board.Gap)
	var targets []tea.MouseMsg
	for x := 0; x < 2; x++ {
		cx, cy := l.BoxRect(x, 0).Center()
		targets = append(targets, clickAt(cx, cy))
	}

	// Clicks during animations are dropped, so keep clicking both boxes
	// until the board is cleared and saved.
	best := 0
	for i := 0; i < 5000 && best == 0; i++ {
		m = send(t, m, targets[i%2])
		m = send(t, m, TickMsg{})
		best, err = store.HighScore("memory")
		require.NoError(t, err)
	}
	assert.Equal(t, 1, best)
	assert.True(t, m.State().GameOver)

	scores, err := store.VariantScores("memory", "2x1", 10)
	require.NoError(t, err)
	require.Len(t, scores, 1)
	assert.Equal(t, 1, scores[0].Score)
}
