// Package config provides YAML-based game configuration loading and
// difficulty management for the arcade platform.
package config

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/box-arcade/internal/core"
)

// BoardConfig describes a grid of boxes.
type BoardConfig struct {
	Cols int     `yaml:"cols"`
	Rows int     `yaml:"rows"`
	Gap  float64 `yaml:"gap"` // fraction of each cell left between boxes
}

// MemoryConfig contains all configuration for the memory-matching game.
type MemoryConfig struct {
	Board  BoardConfig  `yaml:"board"`
	Timing MemoryTiming `yaml:"timing"`
	Colors MemoryColors `yaml:"colors"`
}

// MemoryTiming defines pauses and animation speeds, in milliseconds unless
// noted otherwise.
type MemoryTiming struct {
	StartDelayMS    int `yaml:"start_delay_ms"`
	MismatchPauseMS int `yaml:"mismatch_pause_ms"`
	WinFlashMS      int `yaml:"win_flash_ms"`
	WinFlashes      int `yaml:"win_flashes"`
	NewBoardDelayMS int `yaml:"new_board_delay_ms"`
	RevealDivisor   int `yaml:"reveal_divisor"` // reveal speed = box size / divisor
}

// MemoryColors names the board colors. Values are "#rrggbb" or color names.
type MemoryColors struct {
	Background string `yaml:"background"`
	Flash      string `yaml:"flash"`
	Cover      string `yaml:"cover"`
	Face       string `yaml:"face"`
	Highlight  string `yaml:"highlight"`
}

// SlideConfig contains all configuration for the sliding puzzle.
type SlideConfig struct {
	Board  BoardConfig `yaml:"board"`
	Colors SlideColors `yaml:"colors"`
}

// SlideColors names the puzzle colors.
type SlideColors struct {
	Background string `yaml:"background"`
	Tile       string `yaml:"tile"`
	Text       string `yaml:"text"`
	Message    string `yaml:"message"`
}

// SimonConfig contains all configuration for Simon.
type SimonConfig struct {
	Board      BoardConfig      `yaml:"board"`
	Timing     SimonTiming      `yaml:"timing"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// SimonTiming defines the pattern pacing in milliseconds.
type SimonTiming struct {
	PatternDelayMS int `yaml:"pattern_delay_ms"` // pause before playback
	FlashMS        int `yaml:"flash_ms"`         // one fade in and out
	FlashGapMS     int `yaml:"flash_gap_ms"`     // pause between flashes
	TimeoutMS      int `yaml:"timeout_ms"`       // max wait between inputs
	GameOverMS     int `yaml:"game_over_ms"`
}

// SnakeConfig contains all configuration for the snake game.
type SnakeConfig struct {
	Grid       SnakeGrid        `yaml:"grid"`
	Speed      SnakeSpeed       `yaml:"speed"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// SnakeGrid sets the cell size in pixels. The grid fills the display.
type SnakeGrid struct {
	CellSize  int  `yaml:"cell_size"`
	GridLines bool `yaml:"grid_lines"`
}

// SnakeSpeed defines how often the snake moves.
type SnakeSpeed struct {
	MovesPerSecond float64 `yaml:"moves_per_second"`
	StartLength    int     `yaml:"start_length"`
}

// TetrisConfig contains all configuration for the tetris game.
type TetrisConfig struct {
	Board  TetrisBoard  `yaml:"board"`
	Timing TetrisTiming `yaml:"timing"`
}

// TetrisBoard is the playfield size in cells.
type TetrisBoard struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// TetrisTiming defines gravity and line-clear pacing in seconds.
type TetrisTiming struct {
	BaseFall       float64 `yaml:"base_fall"`        // fall interval at level 0
	FallStep       float64 `yaml:"fall_step"`        // reduction per level
	MinFall        float64 `yaml:"min_fall"`         // floor for the interval
	PointsPerLevel int     `yaml:"points_per_level"` // score per level
	FlashSeconds   float64 `yaml:"flash_seconds"`    // completed line flash
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Added to speed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ValidPreset reports whether s names a preset. Empty is valid.
func ValidPreset(s string) bool {
	switch DifficultyPreset(s) {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return true
	}
	return false
}

// ApplyPreset returns a manager for cfg adjusted by the named preset.
// An empty preset keeps the configured initial level.
func ApplyPreset(cfg DifficultyConfig, preset string) *DifficultyManager {
	dm := NewDifficultyManager(cfg)
	if preset == "" {
		return dm
	}
	p := DifficultyPreset(preset)
	if IsFixedPreset(p) {
		dm.SetEnabled(false)
		return dm
	}
	dm.SetInitialLevel(InitialLevelForPreset(p))
	return dm
}

// Color parses a configured color, falling back when it is empty or bad.
func Color(s string, fallback core.Color, logger *log.Logger) core.Color {
	if s == "" {
		return fallback
	}
	c, err := core.ParseColor(s)
	if err != nil {
		if logger != nil {
			logger.Warn("bad color in config", "value", s, "err", err)
		}
		return fallback
	}
	return c
}
