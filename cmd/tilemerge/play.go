package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tilemerge/internal/platform/tui"
	"github.com/vovakirdan/tilemerge/internal/registry"
	"github.com/vovakirdan/tilemerge/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play [board]",
	Short: "Play a board",
	Long: `Start playing the specified board (default: 2048).

Controls:
  Arrows/WASD/HJKL  - Slide tiles
  Space/U           - Undo last move
  Ctrl+S            - Save a screenshot
  Esc/Q             - Quit
  Any other key     - Continue after a loss

Boards:
  2048         - Classic 4x4
  2048_mini    - 3x3
  2048_big     - 5x5
  2048_wide    - 4x6
  2048_custom  - board.rows x board.cols from the config file

Examples:
  tilemerge play
  tilemerge play 2048_big
  tilemerge play --seed 42
  tilemerge play --config ./my-puzzle.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := "2048"
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown board %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'tilemerge list' to see available boards.")
		os.Exit(1)
	}

	puzzle := loadPuzzle()

	game, err := registry.Create(gameID, puzzle)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := newLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Continue without storage - game still works
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		store = nil
	}

	width, height := terminalSize()
	logger.Info("starting game", "game", gameID, "width", width, "height", height)

	_, runErr := tui.Run(game, store, runtimeConfig(width, height, logger), nil)

	if store != nil {
		store.Close()
	}
	closeLog()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// terminalSize returns the size of stdout, or 80x24 when it is not a terminal.
func terminalSize() (int, int) {
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		return w, h
	}
	return 80, 24
}
