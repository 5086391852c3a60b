// Package tui provides a Bubble Tea frontend for the snake game. It keeps
// the turn-based rules: nothing moves until a command line is submitted.
package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// Model is the Bubble Tea model for one snake session.
type Model struct {
	game     *snake.Game
	input    textinput.Model
	keys     KeyMap
	help     help.Model
	logger   *log.Logger
	quitting bool
}

// NewModel creates a model that plays game.
func NewModel(game *snake.Game, logger *log.Logger) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "w/a/s/d"
	ti.CharLimit = 16
	ti.Focus()

	return Model{
		game:   game,
		input:  ti,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		logger: logger,
	}
}

// Init starts the cursor blinking.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Interrupt):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Submit):
			return m.submit()
		}

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit plays one turn with the typed line.
func (m Model) submit() (tea.Model, tea.Cmd) {
	line := m.input.Value()
	m.input.Reset()

	if core.IsQuit(line) {
		m.logger.Info("player quit", "score", m.game.Score(), "turn", m.game.Turn())
		m.quitting = true
		return m, tea.Quit
	}

	m.game.HandleInput(core.NormalizeCommand(line))
	m.game.Update()
	m.logger.Debug("turn", m.game.Snapshot().LogValues()...)

	if m.game.GameOver() {
		m.logger.Info("game over", "score", m.game.Score(), "turn", m.game.Turn())
		return m, tea.Quit
	}
	return m, nil
}

// Quitting reports whether the player asked to leave.
func (m Model) Quitting() bool {
	return m.quitting
}

// View renders the score, the board and either the prompt or the final line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(scoreStyle.Render(m.game.ScoreLine()))
	b.WriteString("\n\n")
	b.WriteString(RenderBoard(m.game.Board()))
	b.WriteString("\n")

	if m.game.GameOver() {
		b.WriteString(gameOverStyle.Render(m.game.FinalMessage()))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	b.WriteString("\n")
	return b.String()
}

// Run starts the Bubble Tea program for game. The program runs inline (no
// alternate screen) so the final board stays visible after exit.
func Run(game *snake.Game, logger *log.Logger, opts ...tea.ProgramOption) error {
	p := tea.NewProgram(NewModel(game, logger), opts...)
	_, err := p.Run()
	return err
}
