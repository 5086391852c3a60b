package console

import (
	"errors"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// Banner is printed once before the first frame.
const Banner = "Welcome to Snake!\n" +
	"@ = snake head\n" +
	"o = snake body\n" +
	"* = food\n" +
	snake.ControlsLegend + "\n" +
	"Press Enter after each command.\n" +
	"\n"

// Farewell is printed when the session ends.
const Farewell = "Thanks for playing!\n"

// EndReason tells why a session stopped.
type EndReason string

const (
	EndQuit      EndReason = "quit"
	EndGameOver  EndReason = "game_over"
	EndInputDone EndReason = "input_closed"
)

// Play drives game with term until the player quits, the input ends or the
// snake crashes. The final board is written without a prompt on game over.
func Play(game *snake.Game, term Terminal, logger *log.Logger) (EndReason, error) {
	for {
		if err := term.WriteFrame(game.Display()); err != nil {
			return "", err
		}

		raw, err := term.ReadCommand()
		if errors.Is(err, ErrClosed) {
			logger.Info("input closed", "score", game.Score())
			return EndInputDone, nil
		}
		if err != nil {
			return "", err
		}

		if core.IsQuit(raw) {
			logger.Info("player quit", "score", game.Score(), "turn", game.Turn())
			return EndQuit, nil
		}

		game.HandleInput(core.NormalizeCommand(raw))
		game.Update()
		logger.Debug("turn", game.Snapshot().LogValues()...)

		if game.GameOver() {
			logger.Info("game over", "score", game.Score(), "turn", game.Turn())
			return EndGameOver, writeFinal(term, game.Display())
		}
	}
}

// writeFinal writes the last frame, skipping the prompt when term allows it.
func writeFinal(term Terminal, frame string) error {
	if w, ok := term.(interface{ WriteText(string) error }); ok {
		return w.WriteText(frame)
	}
	return term.WriteFrame(frame)
}

// Run plays one full console session on in/out with the welcome banner and
// closing line around it.
func Run(game *snake.Game, in io.Reader, out io.Writer, logger *log.Logger) error {
	term := NewTerminal(in, out)
	if err := term.WriteText(Banner); err != nil {
		return err
	}

	logger.Info("session started", "width", game.Width(), "height", game.Height())
	if _, err := Play(game, term, logger); err != nil {
		return err
	}

	return term.WriteText(Farewell)
}
