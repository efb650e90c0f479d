package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/box-arcade/internal/core"
)

func isolateHome(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
}

func TestEmbeddedDefaultsMatchCode(t *testing.T) {
	isolateHome(t)

	memory, err := LoadMemory("")
	require.NoError(t, err)
	assert.Equal(t, DefaultMemoryConfig(), memory)

	slide, err := LoadSlide("")
	require.NoError(t, err)
	assert.Equal(t, DefaultSlideConfig(), slide)

	simon, err := LoadSimon("")
	require.NoError(t, err)
	assert.Equal(t, DefaultSimonConfig(), simon)

	snake, err := LoadSnake("")
	require.NoError(t, err)
	assert.Equal(t, DefaultSnakeConfig(), snake)

	tetris, err := LoadTetris("")
	require.NoError(t, err)
	assert.Equal(t, DefaultTetrisConfig(), tetris)
}

func TestLoadCustomPathOverridesFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "memory.yaml")
	require.NoError(t, os.WriteFile(path, []byte("board:\n  cols: 4\n  rows: 3\n"), 0o600))

	cfg, err := LoadMemory(path)
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Board.Cols)
	assert.Equal(t, 3, cfg.Board.Rows)
	assert.Equal(t, 1000, cfg.Timing.StartDelayMS, "unset fields keep defaults")
}

func TestLoadUserConfigDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	dir := filepath.Join(home, ".arcade", "configs")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "tetris.yaml"), []byte("board:\n  width: 12\n"), 0o600))

	cfg, err := LoadTetris("")
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.Board.Width)
	assert.Equal(t, 20, cfg.Board.Height)
}

func TestLoadErrors(t *testing.T) {
	isolateHome(t)

	_, err := LoadSnake(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("grid: [unclosed"), 0o600))
	cfg, err := LoadSnake(bad)
	assert.Error(t, err)
	assert.Equal(t, DefaultSnakeConfig(), cfg, "defaults on parse failure")

	_, err = Load("pinball", "", struct{}{})
	assert.True(t, errors.Is(err, ErrUnknownGame))
}

func TestDifficultyManager(t *testing.T) {
	cfg := DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "score", MaxAt: 10},
		Scaling:     ScalingConfig{SpeedMultiplier: 1.0},
	}
	dm := NewDifficultyManager(cfg)

	assert.InDelta(t, 0.0, dm.Level(0, 0), 1e-9)
	assert.InDelta(t, 0.5, dm.Level(5, 0), 1e-9)
	assert.InDelta(t, 1.0, dm.Level(50, 0), 1e-9)
	assert.InDelta(t, 15.0, dm.Speed(10, 5, 0), 1e-9)

	timed := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "time", MaxAt: 100},
	})
	assert.InDelta(t, 0.25, timed.Level(0, 25), 1e-9)
}

func TestApplyPreset(t *testing.T) {
	cfg := DefaultSnakeConfig().Difficulty

	hard := ApplyPreset(cfg, "hard")
	assert.InDelta(t, 0.7, hard.Level(0, 0), 1e-9)

	fixed := ApplyPreset(cfg, "fixed")
	assert.False(t, fixed.IsEnabled())
	assert.InDelta(t, 0.0, fixed.Level(1000, 0), 1e-9)

	none := ApplyPreset(cfg, "")
	assert.True(t, none.IsEnabled())
}

func TestColor(t *testing.T) {
	assert.Equal(t, core.ColorNavyBlue, Color("#3c3c64", core.ColorRed, nil))
	assert.Equal(t, core.ColorRed, Color("", core.ColorRed, nil))
	assert.Equal(t, core.ColorRed, Color("nope", core.ColorRed, nil))
}

func TestValidPreset(t *testing.T) {
	for _, p := range []string{"", "easy", "normal", "hard", "fixed"} {
		assert.True(t, ValidPreset(p), p)
	}
	assert.False(t, ValidPreset("insane"))
}
