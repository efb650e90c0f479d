package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/box-arcade/internal/config"
	"github.com/vovakirdan/box-arcade/internal/core"
	"github.com/vovakirdan/box-arcade/internal/platform/tui"
	"github.com/vovakirdan/box-arcade/internal/platform/window"
	"github.com/vovakirdan/box-arcade/internal/registry"
)

var (
	flagConfig     string
	flagDifficulty string
	flagVariant    string
	flagWindow     bool
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  Arrows/WASD  - Move
  Q/W/A/S      - Simon pads (also L ; . /)
  Enter        - Confirm
  Space/P      - Pause
  R            - Restart
  B            - Back
  Esc/Ctrl+C   - Quit
  Mouse        - Click boxes and buttons

Boards:
  memory and slide offer several board sizes. Pick one with --variant,
  or choose from a list when none is given.

Difficulty options (simon, snake):
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  arcade play memory
  arcade play slide --variant 3x3
  arcade play snake --difficulty hard
  arcade play tetris --window
  arcade play simon --config ./my-simon.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().StringVar(&flagVariant, "variant", "", "Board variant, e.g. 4x4")
	playCmd.Flags().BoolVar(&flagWindow, "window", false, "Play in a native window instead of the terminal")
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := args[0]

	info, ok := registry.Info(gameID)
	if !ok {
		return fmt.Errorf("unknown game %q (run 'arcade list' to see available games)", gameID)
	}
	if !config.ValidPreset(flagDifficulty) {
		return fmt.Errorf("unknown difficulty %q", flagDifficulty)
	}
	if !registry.HasVariant(gameID, flagVariant) {
		return fmt.Errorf("game %q has no variant %q", gameID, flagVariant)
	}

	cfg := runtimeConfig()
	cfg.ConfigPath = flagConfig
	cfg.Difficulty = flagDifficulty
	cfg.Variant = flagVariant

	if flagWindow {
		// The window has its own fixed grid, not the terminal's.
		def := core.DefaultConfig()
		cfg.ScreenW, cfg.ScreenH = def.ScreenW, def.ScreenH
	} else if cfg.Variant == "" && len(info.Variants) > 0 {
		variant, chosen, err := tui.RunVariantSelector(info.Title, info.Variants, cfg)
		if err != nil {
			return err
		}
		if !chosen {
			return nil
		}
		cfg.Variant = variant
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	if flagWindow {
		return window.Run(game, store, cfg)
	}
	_, err = tui.Run(game, store, cfg)
	return err
}
