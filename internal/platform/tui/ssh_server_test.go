package tui

import (
	"io"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
)

func updateSession(t *testing.T, m SessionModel, msg tea.Msg) SessionModel {
	t.Helper()
	next, _ := m.Update(msg)
	sm, ok := next.(SessionModel)
	if !ok {
		t.Fatalf("Update returned %T, expected SessionModel", next)
	}
	return sm
}

func TestSessionModelMenuGameMenu(t *testing.T) {
	store := openTestStore(t)
	m := NewSessionModel(store, testRuntime, log.New(io.Discard))

	m = updateSession(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.gameModel == nil {
		t.Fatal("enter should start the selected variant")
	}
	if !strings.Contains(m.View(), "Score: 0") {
		t.Error("session should render the game")
	}

	// Back is only honored while paused
	m = updateSession(t, m, runeKey('p'))
	m = updateSession(t, m, TickMsg(time.Now()))
	m = updateSession(t, m, runeKey('b'))
	if m.gameModel != nil {
		t.Fatal("b while paused should return to the menu")
	}
	if !strings.Contains(m.View(), "Select a variant") {
		t.Error("session should render the menu again")
	}
	if strings.Contains(m.View(), "Tab: Runs") {
		t.Error("SSH menu should not offer the run browser")
	}

	if n, _ := store.CountRuns(""); n != 1 {
		t.Errorf("CountRuns() = %d, expected the abandoned run to be saved", n)
	}

	m = updateSession(t, m, runeKey('q'))
	if !m.quitting || m.View() != "" {
		t.Error("q in the menu should end the session")
	}
}

func TestSessionModelTracksResize(t *testing.T) {
	m := NewSessionModel(nil, testRuntime, log.New(io.Discard))
	m = updateSession(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	m = updateSession(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.gameModel == nil {
		t.Fatal("expected a running game")
	}
	if w := m.gameModel.screen.Width(); w != 100 {
		t.Errorf("game screen width = %d, expected 100", w)
	}
}

func TestShortID(t *testing.T) {
	tests := []struct{ in, want string }{
		{"0123456789abcdef", "01234567"},
		{"abc", "abc"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := shortID(tt.in); got != tt.want {
			t.Errorf("shortID(%q) = %q, expected %q", tt.in, got, tt.want)
		}
	}
}
