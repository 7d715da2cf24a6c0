package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/pipeslide/internal/core"
	"github.com/vovakirdan/pipeslide/internal/platform/tui"
	"github.com/vovakirdan/pipeslide/internal/registry"
	"github.com/vovakirdan/pipeslide/internal/storage"

	// Register variants
	_ "github.com/vovakirdan/pipeslide/internal/games/pipeslide"
)

var playCmd = &cobra.Command{
	Use:   "play <variant>",
	Short: "Play a variant",
	Long: `Start playing the given variant.

Controls:
  Arrows/hjkl/wasd  - Move the selection; slides the pipe into a gap
                      when the selection cannot move that way
  Space/Enter/x     - Rotate the selected pipe
  P                 - Pause
  R                 - Restart (after game over)
  Esc/B             - Leave a paused or finished game
  ?                 - Show all keys
  Q/Ctrl+C          - Quit

Difficulty options:
  easy   - Slower water, more gaps
  normal - Config as written; water speeds up with score
  hard   - Faster water, fewer gaps
  fixed  - Water never speeds up

Examples:
  pipeslide play pipeslide
  pipeslide play pipeslide_mini --difficulty hard
  pipeslide play pipeslide --layout ./my-layout.yaml
  pipeslide play pipeslide --config ./my-pipeslide.yaml --seed 42`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := args[0]

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("%w (run 'pipeslide list' to see variants)", err)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		// The game still works without scores.
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		store = nil
	} else {
		defer store.Close()
	}

	cfg := runtimeConfig()
	log.Debug("starting game", "game", gameID, "seed", cfg.Seed, "fps", cfg.TickRate)
	if err := tui.Run(game, store, cfg); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// runtimeConfig sizes the game to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}
