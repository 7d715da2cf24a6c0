// pipeslide is a terminal pipe puzzle: slide and rotate pipes so the water
// that starts in the top-left corner keeps flowing.
//
// Usage:
//
//	pipeslide list               - List game variants
//	pipeslide play <variant>     - Play a variant
//	pipeslide menu               - Pick variant, difficulty and layout interactively
//	pipeslide scores <variant>   - Show high scores and recent runs
//	pipeslide serve              - Start SSH server for remote play
//	pipeslide serve-ws           - Start websocket server for remote play
//	pipeslide layout gen|list    - Generate or list layout files
//
// Global flags:
//
//	--fps <rate>           - Set tick rate (default: 30)
//	--seed <value>         - Set RNG seed for reproducible boards
//	--db <path>            - Set database path (default: ~/.pipeslide/scores.db)
//	--config <path>        - Custom game config YAML
//	--difficulty <preset>  - easy, normal, hard or fixed
//	--layout <id|file>     - Play a fixed layout instead of a random board
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/pipeslide/internal/config"
	"github.com/vovakirdan/pipeslide/internal/games/pipeslide"
	"github.com/vovakirdan/pipeslide/internal/storage"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLayout     string
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pipeslide",
	Short: "PipeSlide - keep the water flowing",
	Long: `PipeSlide is a sliding pipe puzzle for the terminal.

Water leaves the top-left pipe on a timer. Slide pipes into the empty
slots and rotate them so the flow always finds a matching pipe end.
Once water enters a pipe, that pipe is fixed in place. The run ends
when the water leaves the board.

Examples:
  pipeslide play pipeslide
  pipeslide play pipeslide_mini --difficulty easy
  pipeslide play pipeslide --layout tutorial
  pipeslide menu
  pipeslide serve --ssh :2222
  pipeslide serve-ws --addr :8080`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database")
	pf.StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	pf.StringVar(&flagLayout, "layout", "", "Builtin layout ID or layout file (empty = random board)")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	pf.StringVar(&flagLogFile, "log-file", "", "Write logs to this file (terminal commands discard logs otherwise)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(serveWSCmd)
	rootCmd.AddCommand(layoutCmd)
}

// setup validates global flags, installs the default logger and hands
// the game options to the registry factories.
func setup(cmd *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("--log-level: %w", err)
	}

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return fmt.Errorf("--difficulty: %w", err)
	}

	out, err := logOutput(cmd)
	if err != nil {
		return err
	}
	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "pipeslide",
		Level:           level,
	})
	log.SetDefault(logger)

	pipeslide.SetOptions(pipeslide.Options{
		ConfigPath: flagConfig,
		Difficulty: preset,
		Layout:     flagLayout,
		Logger:     logger,
	})
	return nil
}

// logOutput picks the log destination. Full-screen commands own the
// terminal, so their logs go to --log-file or nowhere.
func logOutput(cmd *cobra.Command) (io.Writer, error) {
	if flagLogFile != "" {
		if err := os.MkdirAll(filepath.Dir(flagLogFile), 0o755); err != nil {
			return nil, fmt.Errorf("log file: %w", err)
		}
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("log file: %w", err)
		}
		return f, nil
	}

	switch cmd {
	case playCmd, menuCmd:
		return io.Discard, nil
	}
	return os.Stderr, nil
}
