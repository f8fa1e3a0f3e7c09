// tilemerge is a sliding-tile merge puzzle for the terminal.
//
// Usage:
//
//	tilemerge list              - List available boards
//	tilemerge play [board]      - Play a board (default: 2048)
//	tilemerge menu              - Start menu to pick boards interactively
//	tilemerge serve             - Start SSH server for remote play
//	tilemerge scores <board>    - Show high scores for a board
//
// Global flags:
//
//	--fps <rate>     - Set tick rate (default: 60)
//	--seed <value>   - Set RNG seed for reproducible spawns
//	--db <path>      - Set database path (default: ~/.tilemerge/scores.db)
//	--config <path>  - Load puzzle settings from a YAML file
//	--log <path>     - Write a session log to a file
//	--debug          - Log every move and undo
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tilemerge/internal/config"
	"github.com/vovakirdan/tilemerge/internal/core"

	// Import games to register them
	_ "github.com/vovakirdan/tilemerge/internal/games/t2048"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagConfig  string
	flagLogPath string
	flagDebug   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tilemerge",
	Short: "Tilemerge - slide and merge tiles in your terminal",
	Long: `Tilemerge is a terminal take on the sliding-tile merge puzzle.
Slide the board, merge equal tiles and keep going until no move is left.

Available commands:
  list     - Show all available boards
  play     - Play a specific board directly
  menu     - Interactive board picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  tilemerge list
  tilemerge play 2048_mini
  tilemerge menu
  tilemerge serve --ssh :2222
  tilemerge scores 2048`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.tilemerge/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom puzzle config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write a session log to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// newLogger builds the logger for a terminal session. The terminal belongs
// to the UI, so logs go to --log or nowhere.
func newLogger() (*log.Logger, func(), error) {
	if flagLogPath == "" {
		return log.New(io.Discard), func() {}, nil
	}

	f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "tilemerge",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, func() { f.Close() }, nil
}

// loadPuzzle loads puzzle settings or exits with an error.
func loadPuzzle() config.PuzzleConfig {
	cfg, err := config.LoadPuzzle(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

// runtimeConfig builds the per-session settings from global flags.
func runtimeConfig(width, height int, logger *log.Logger) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
		Logger:   logger,
	}
}
