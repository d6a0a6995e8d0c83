package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/flappy-kids/internal/core"
)

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(12, 2)
	s.Paint(0, 0, core.RGB(255, 0, 0))
	s.DrawTextColored(2, 0, "hi", core.RGB(0, 0, 255))
	s.DrawTextColored(0, 1, "plain", core.ColorDefault)

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if !strings.Contains(out, "hi") || !strings.Contains(out, "plain") {
		t.Errorf("text lost in rendering: %q", out)
	}
	for i, line := range lines {
		if w := lipgloss.Width(line); w != 12 {
			t.Errorf("line %d has width %d, expected 12", i, w)
		}
	}
}
