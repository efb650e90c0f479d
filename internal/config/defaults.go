package config

import (
	"embed"
)

//go:embed defaults/*.yaml
var defaultsFS embed.FS

// DefaultMemoryConfig returns the default memory game configuration.
func DefaultMemoryConfig() MemoryConfig {
	return MemoryConfig{
		Board: BoardConfig{Cols: 6, Rows: 4, Gap: 0.2},
		Timing: MemoryTiming{
			StartDelayMS:    1000,
			MismatchPauseMS: 100,
			WinFlashMS:      300,
			WinFlashes:      4,
			NewBoardDelayMS: 1000,
			RevealDivisor:   5,
		},
		Colors: MemoryColors{
			Background: "#c8c8c8",
			Flash:      "#646464",
			Cover:      "#323232",
			Face:       "#ffffff",
			Highlight:  "#0000ff",
		},
	}
}

// DefaultSlideConfig returns the default sliding puzzle configuration.
func DefaultSlideConfig() SlideConfig {
	return SlideConfig{
		Board: BoardConfig{Cols: 4, Rows: 4, Gap: 0.1},
		Colors: SlideColors{
			Background: "#033649",
			Tile:       "#781c81",
			Text:       "#ffffff",
			Message:    "#ffffff",
		},
	}
}

// DefaultSimonConfig returns the default Simon configuration.
func DefaultSimonConfig() SimonConfig {
	return SimonConfig{
		Board: BoardConfig{Cols: 2, Rows: 2, Gap: 0.1},
		Timing: SimonTiming{
			PatternDelayMS: 1000,
			FlashMS:        330,
			FlashGapMS:     200,
			TimeoutMS:      4000,
			GameOverMS:     1000,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression:  ProgressionConfig{Type: "score", MaxAt: 20},
			Scaling:      ScalingConfig{SpeedMultiplier: 1.0},
		},
	}
}

// DefaultSnakeConfig returns the default snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Grid:  SnakeGrid{CellSize: 2, GridLines: true},
		Speed: SnakeSpeed{MovesPerSecond: 10, StartLength: 3},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression:  ProgressionConfig{Type: "score", MaxAt: 40},
			Scaling:      ScalingConfig{SpeedMultiplier: 0.5},
		},
	}
}

// DefaultTetrisConfig returns the default tetris configuration.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Board: TetrisBoard{Width: 10, Height: 20},
		Timing: TetrisTiming{
			BaseFall:       0.27,
			FallStep:       0.02,
			MinFall:        0.02,
			PointsPerLevel: 100,
			FlashSeconds:   0.2,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game, or nil.
func GetDefaultYAML(gameID string) []byte {
	data, err := defaultsFS.ReadFile("defaults/" + gameID + ".yaml")
	if err != nil {
		return nil
	}
	return data
}
