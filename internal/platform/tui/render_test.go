package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-dodge/internal/core"
)

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(10, 3)
	s.DrawText(0, 0, "Score: 3")
	s.SetColored(2, 1, '▓', "#ff0000")
	s.SetColored(3, 1, '▓', "#ff0000")
	s.SetColored(5, 2, '█', core.ColorPlayer)

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("rendered %d lines, expected 3", len(lines))
	}
	if !strings.Contains(lines[0], "Score: 3") {
		t.Errorf("line 0 = %q, expected the HUD text", lines[0])
	}
	if !strings.Contains(lines[1], "▓▓") {
		t.Errorf("line 1 = %q, expected a grouped obstacle run", lines[1])
	}
	if !strings.Contains(lines[2], "█") {
		t.Errorf("line 2 = %q, expected the player", lines[2])
	}
}

func TestStyleForCaches(t *testing.T) {
	const c core.Color = "#123456"
	styleFor(c)

	styleCache.RLock()
	_, ok := styleCache.styles[c]
	styleCache.RUnlock()
	if !ok {
		t.Error("style should be cached after first use")
	}
}
