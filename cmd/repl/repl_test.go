package repl

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gigurra/smurf/pkg/smurf"
)

func newTestModel() model {
	return model{smurfer: smurf.New(smurf.Options{ChaosChance: 0})}
}

func typeLine(t *testing.T, m model, line string) model {
	t.Helper()
	for _, r := range line {
		var msg tea.KeyMsg
		if r == ' ' {
			msg = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
		} else {
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
		}
		next, _ := m.Update(msg)
		m = next.(model)
	}
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return next.(model)
}

func TestReplTransformsLine(t *testing.T) {
	m := typeLine(t, newTestModel(), "fix the bug")
	if len(m.history) != 2 {
		t.Fatalf("expected 2 history lines, got %d", len(m.history))
	}
	if !strings.Contains(m.history[1], "smurf the smurf") {
		t.Errorf("history output = %q, want it to contain %q", m.history[1], "smurf the smurf")
	}
	if m.input != "" {
		t.Errorf("input should reset after enter, got %q", m.input)
	}
}

func TestReplBackspace(t *testing.T) {
	m := newTestModel()
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("ab")})
	m = next.(model)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	m = next.(model)
	if m.input != "a" {
		t.Errorf("input after backspace = %q, want %q", m.input, "a")
	}
}

func TestReplEmptyLineIgnored(t *testing.T) {
	m := typeLine(t, newTestModel(), "   ")
	if len(m.history) != 0 {
		t.Errorf("blank input should not append history, got %v", m.history)
	}
}

func TestReplQuit(t *testing.T) {
	m := newTestModel()
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlD})
	m = next.(model)
	if cmd == nil {
		t.Fatalf("expected a quit command")
	}
	if got := m.View(); got != "Stay smurfy!\n" {
		t.Errorf("quit view = %q, want %q", got, "Stay smurfy!\n")
	}
}
