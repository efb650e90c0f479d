// arcade plays small box-grid games in the terminal, in a window, or over SSH.
//
// Usage:
//
//	arcade list              - List available games
//	arcade play <game>       - Play a game
//	arcade menu              - Start menu to pick games interactively
//	arcade serve             - Start SSH server for remote play
//	arcade scores <game>     - Show high scores for a game
//	arcade defaults <game>   - Print a game's default YAML config
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.arcade/scores.db)
//	--log-level <level>   - debug, info, warn or error
//	--log-file <path>     - Log destination, "-" for stderr
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/box-arcade/internal/core"
	"github.com/vovakirdan/box-arcade/internal/logging"
	"github.com/vovakirdan/box-arcade/internal/storage"

	// Import games to register them
	_ "github.com/vovakirdan/box-arcade/internal/games/draw"
	_ "github.com/vovakirdan/box-arcade/internal/games/memory"
	_ "github.com/vovakirdan/box-arcade/internal/games/simon"
	_ "github.com/vovakirdan/box-arcade/internal/games/slide"
	_ "github.com/vovakirdan/box-arcade/internal/games/snake"
	_ "github.com/vovakirdan/box-arcade/internal/games/tetris"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
	flagLogFile  string

	logger    *log.Logger
	logCloser io.Closer
)

func main() {
	err := rootCmd.Execute()
	if logCloser != nil {
		logCloser.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "Box Arcade - small grid games for the terminal",
	Long: `Box Arcade is a collection of small box-grid games: a memory puzzle,
a sliding tile puzzle, Simon, Snake and Tetris, plus a drawing demo.
Games run in the terminal, in a native window, or over SSH.

Available commands:
  list      - Show all available games
  play      - Play a specific game directly
  menu      - Interactive game picker menu
  serve     - Start SSH server for remote play
  scores    - View high scores
  defaults  - Print a game's default config

Examples:
  arcade list
  arcade play memory --variant 4x4
  arcade play tetris --window
  arcade menu
  arcade serve --ssh :2222
  arcade scores slide`,
	SilenceUsage:      true,
	PersistentPreRunE: setupLogging,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", `Log file ("-" for stderr, default ~/.arcade/arcade.log)`)

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(defaultsCmd)
}

// setupLogging opens the logger before any command runs. The terminal
// belongs to the game, so only the server logs to stderr by default.
func setupLogging(cmd *cobra.Command, _ []string) error {
	file := flagLogFile
	if file == "" && cmd.Name() == serveCmd.Name() {
		file = "-"
	}

	l, closer, err := logging.New(logging.Options{
		Level:  flagLogLevel,
		File:   file,
		Prefix: "arcade",
	})
	if err != nil {
		return err
	}
	logger, logCloser = l, closer
	return nil
}

// runtimeConfig builds the game config from the flags and terminal size.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	cfg.Logger = logger
	return cfg
}

// openStore opens the scores database. Games still run without one.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("scores disabled", "err", err)
		return nil
	}
	return store
}
