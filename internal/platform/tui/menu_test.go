package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func updateMenu(t *testing.T, m MenuModel, msg tea.Msg) MenuModel {
	t.Helper()
	next, _ := m.Update(msg)
	mm, ok := next.(MenuModel)
	if !ok {
		t.Fatalf("Update returned %T, expected MenuModel", next)
	}
	return mm
}

func TestMenuSelectsVariant(t *testing.T) {
	m := NewMenuModel(testRuntime, true)

	// Variants are sorted by ID: classic, dodge
	m = updateMenu(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = updateMenu(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = updateMenu(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	sel := m.Selected()
	if sel == nil || sel.ID != "dodge" {
		t.Fatalf("Selected() = %v, expected dodge", sel)
	}
}

func TestMenuUpStopsAtTop(t *testing.T) {
	m := NewMenuModel(testRuntime, false)
	m = updateMenu(t, m, tea.KeyMsg{Type: tea.KeyUp})
	m = updateMenu(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if sel := m.Selected(); sel == nil || sel.ID != "classic" {
		t.Errorf("Selected() = %v, expected classic", sel)
	}
}

func TestMenuRuns(t *testing.T) {
	tests := []struct {
		allowRuns bool
		want      bool
	}{
		{true, true},
		{false, false},
	}
	for _, tt := range tests {
		m := updateMenu(t, NewMenuModel(testRuntime, tt.allowRuns), tea.KeyMsg{Type: tea.KeyTab})
		if m.WantsRuns() != tt.want {
			t.Errorf("allowRuns=%v: WantsRuns() = %v", tt.allowRuns, m.WantsRuns())
		}
	}
}

func TestMenuViewAndResize(t *testing.T) {
	m := NewMenuModel(testRuntime, true)
	m = updateMenu(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})

	if cfg := m.Config(); cfg.ScreenW != 100 || cfg.ScreenH != 30 {
		t.Errorf("Config() = %+v, expected 100x30", cfg)
	}
	view := m.View()
	for _, want := range []string{"Block Dodge", "Block Dodge Classic", "Tab: Runs"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}

	m = updateMenu(t, m, runeKey('q'))
	if !m.IsQuitting() || m.View() != "" {
		t.Error("q should quit the menu")
	}
}
