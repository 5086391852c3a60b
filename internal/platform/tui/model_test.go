package tui

import (
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

func newModel(t *testing.T) (Model, *snake.Game) {
	t.Helper()
	cfg := core.DefaultConfig()
	cfg.Seed = 42
	g := snake.New(cfg)
	return NewModel(g, log.New(io.Discard)), g
}

func typeLine(t *testing.T, m Model, line string) (Model, tea.Cmd) {
	t.Helper()
	for _, r := range line {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		m = next.(Model)
	}
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return next.(Model), cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestSubmitPlaysOneTurn(t *testing.T) {
	m, g := newModel(t)

	m, cmd := typeLine(t, m, "s")
	if isQuit(cmd) {
		t.Fatal("A steering command should not quit")
	}
	if g.Direction() != snake.DirDown {
		t.Errorf("Expected direction down, got %v", g.Direction())
	}
	if g.Head() != (snake.Point{X: 5, Y: 6}) {
		t.Errorf("Expected head at (5, 6), got %v", g.Head())
	}
	if m.input.Value() != "" {
		t.Errorf("Prompt should be cleared after submit, got %q", m.input.Value())
	}
}

func TestTypingDoesNotMove(t *testing.T) {
	m, g := newModel(t)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'w'}})
	m = next.(Model)

	if g.Turn() != 0 {
		t.Errorf("Typing without Enter must not advance the game, turn = %d", g.Turn())
	}
	if m.input.Value() != "w" {
		t.Errorf("Expected prompt to hold %q, got %q", "w", m.input.Value())
	}
}

func TestEmptySubmitStepsForward(t *testing.T) {
	m, g := newModel(t)

	typeLine(t, m, "")
	if g.Head() != (snake.Point{X: 6, Y: 5}) {
		t.Errorf("Expected head at (6, 5), got %v", g.Head())
	}
}

func TestQuitCommand(t *testing.T) {
	m, g := newModel(t)

	m, cmd := typeLine(t, m, "Q")
	if !isQuit(cmd) {
		t.Error("Typing q and Enter should quit")
	}
	if !m.Quitting() {
		t.Error("Model should be quitting")
	}
	if g.Turn() != 0 {
		t.Error("Quit must not advance the game")
	}
	if m.View() != "" {
		t.Error("View should be empty once quitting")
	}
}

func TestInterrupt(t *testing.T) {
	m, _ := newModel(t)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if !isQuit(cmd) {
		t.Error("Ctrl+C should quit")
	}
	if !next.(Model).Quitting() {
		t.Error("Model should be quitting after Ctrl+C")
	}
}

func TestGameOverQuitsWithFinalBoard(t *testing.T) {
	m, g := newModel(t)

	var cmd tea.Cmd
	m, _ = typeLine(t, m, "w")
	for i := 0; i < 5; i++ {
		m, cmd = typeLine(t, m, "")
		if g.GameOver() {
			break
		}
	}

	if !g.GameOver() {
		t.Fatal("Expected game over after leaving the top edge")
	}
	if !isQuit(cmd) {
		t.Error("Game over should end the program")
	}

	view := m.View()
	if !strings.Contains(view, "Game Over! Final score: 0") {
		t.Errorf("Final view should show the game over line:\n%s", view)
	}
	if strings.Contains(view, "> ") {
		t.Error("Final view should not show the prompt")
	}
}

func TestViewShowsBoard(t *testing.T) {
	m, _ := newModel(t)
	view := m.View()

	if !strings.Contains(view, "Score: 0") {
		t.Errorf("View should contain the score:\n%s", view)
	}
	if strings.Count(view, "@") != 1 || strings.Count(view, "*") != 1 {
		t.Errorf("View should show one head and one food:\n%s", view)
	}
}

func TestRenderBoardPlainText(t *testing.T) {
	s := core.NewScreen(3, 1)
	s.Set(0, 0, '|')
	s.Set(1, 0, '@')
	s.Set(2, 0, '|')

	out := RenderBoard(s)
	for _, r := range "|@|" {
		if !strings.ContainsRune(out, r) {
			t.Errorf("RenderBoard output %q lost %q", out, r)
		}
	}
}
