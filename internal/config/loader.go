package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrUnknownGame is returned when no embedded default exists for a game.
var ErrUnknownGame = errors.New("config: unknown game")

// Load reads the configuration of gameID into a copy of def.
// Search order: customPath -> ~/.arcade/configs/<id>.yaml ->
// ./configs/<id>.yaml -> embedded default -> def itself.
// Fields missing from the file keep the value from def.
func Load[T any](gameID, customPath string, def T) (T, error) {
	filename := gameID + ".yaml"

	// A custom path must exist and parse.
	if customPath != "" {
		cfg := def
		data, err := os.ReadFile(customPath)
		if err != nil {
			return def, fmt.Errorf("config: cannot read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return def, fmt.Errorf("config: cannot parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Search paths are best effort.
	for _, path := range []string{userConfigPath(filename), filepath.Join("configs", filename)} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		cfg := def
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
	}

	data := GetDefaultYAML(gameID)
	if data == nil {
		return def, fmt.Errorf("%w %q", ErrUnknownGame, gameID)
	}
	cfg := def
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return def, nil // hardcoded fallback if the embed is broken
	}
	return cfg, nil
}

// LoadMemory loads the memory game configuration.
func LoadMemory(customPath string) (MemoryConfig, error) {
	return Load("memory", customPath, DefaultMemoryConfig())
}

// LoadSlide loads the sliding puzzle configuration.
func LoadSlide(customPath string) (SlideConfig, error) {
	return Load("slide", customPath, DefaultSlideConfig())
}

// LoadSimon loads the Simon configuration.
func LoadSimon(customPath string) (SimonConfig, error) {
	return Load("simon", customPath, DefaultSimonConfig())
}

// LoadSnake loads the snake configuration.
func LoadSnake(customPath string) (SnakeConfig, error) {
	return Load("snake", customPath, DefaultSnakeConfig())
}

// LoadTetris loads the tetris configuration.
func LoadTetris(customPath string) (TetrisConfig, error) {
	return Load("tetris", customPath, DefaultTetrisConfig())
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}
