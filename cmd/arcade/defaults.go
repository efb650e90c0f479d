package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/box-arcade/internal/config"
)

var defaultsCmd = &cobra.Command{
	Use:   "defaults <game>",
	Short: "Print a game's default config",
	Long: `Print the built-in YAML config of a game. Save it as
~/.arcade/<game>.yaml and edit it, or pass it to play with --config.

Examples:
  arcade defaults snake > ~/.arcade/snake.yaml
  arcade defaults tetris`,
	Args: cobra.ExactArgs(1),
	RunE: runDefaults,
}

func runDefaults(_ *cobra.Command, args []string) error {
	data := config.GetDefaultYAML(args[0])
	if data == nil {
		return fmt.Errorf("%w %q", config.ErrUnknownGame, args[0])
	}
	_, err := os.Stdout.Write(data)
	return err
}
