package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/platform/console"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
)

var (
	flagSeed int64
	flagTUI  bool
)

var errNotTerminal = errors.New("--tui needs an interactive terminal on stdin and stdout")

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game of Snake.

Controls (type the letter, then press Enter):
  w   - Up
  s   - Down
  a   - Left
  d   - Right
  q   - Quit

Every Enter advances the snake by one cell. Reversing straight back onto
the body is ignored.

Examples:
  snake play
  snake play --seed 42
  snake play --tui --log-file snake.log --log-level debug`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runPlay,
}

func registerPlayFlags(cmd *cobra.Command) {
	cmd.Flags().Int64Var(&flagSeed, "seed", 0, "Food placement seed (0 = random based on time)")
	cmd.Flags().BoolVar(&flagTUI, "tui", false, "Use the interactive Bubble Tea interface")
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, err := config.LoadSnake(flagConfig)
	if err != nil {
		return err
	}

	if flagTUI && !(term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))) {
		return errNotTerminal
	}

	var fallback io.Writer = os.Stderr
	if flagTUI {
		fallback = io.Discard
	}
	logger, closeLog, err := newLogger(fallback)
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck // Best-effort close on exit

	game := snake.New(cfg.Runtime(flagSeed))
	logger.Info("starting game",
		"width", cfg.Grid.Width,
		"height", cfg.Grid.Height,
		"seeded", flagSeed != 0,
		"tui", flagTUI,
	)

	if flagTUI {
		if err := tui.Run(game, logger); err != nil {
			return fmt.Errorf("error running game: %w", err)
		}
		return nil
	}

	if err := console.Run(game, os.Stdin, os.Stdout, logger); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}
