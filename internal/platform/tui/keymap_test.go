package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-battleship/internal/core"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKey(t *testing.T) {
	keys := DefaultKeyMap()
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp},
		{"w", runes("w"), core.ActionUp},
		{"vim j", runes("j"), core.ActionDown},
		{"a", runes("a"), core.ActionLeft},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionConfirm},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack},
		{"rotate", runes("r"), core.ActionRotate},
		{"random", runes("x"), core.ActionRandom},
		{"tab", tea.KeyMsg{Type: tea.KeyTab}, core.ActionNext},
		{"help", runes("?"), core.ActionHelp},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"q", runes("q"), core.ActionQuit},
		{"unbound", runes("z"), core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := keys.MapKey(tt.msg); got != tt.want {
				t.Errorf("MapKey(%q) = %s, want %s", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func TestMapKeyToFrame(t *testing.T) {
	keys := DefaultKeyMap()
	frame := core.NewInputFrame()

	if keys.MapKeyToFrame(runes("r"), &frame) {
		t.Error("r is not a quit key")
	}
	if keys.MapKeyToFrame(runes("z"), &frame) {
		t.Error("z is not a quit key")
	}
	if !keys.MapKeyToFrame(tea.KeyMsg{Type: tea.KeyCtrlC}, &frame) {
		t.Error("ctrl+c should report quit")
	}

	if !frame.Has(core.ActionRotate) || !frame.Has(core.ActionQuit) {
		t.Error("frame should hold rotate and quit")
	}
	if len(frame.Actions) != 2 {
		t.Errorf("frame has %d actions, want 2", len(frame.Actions))
	}
}

func TestRenderScreen(t *testing.T) {
	s := core.NewScreen(12, 2)
	s.DrawText(0, 0, "fleet")
	s.DrawTextColored(6, 0, "hit", core.ColorRed)
	s.DrawTextColored(0, 1, "miss", core.ColorBlue)

	for _, th := range []Theme{DefaultTheme(), HighContrastTheme(), MonochromeTheme()} {
		out := RenderScreenWithTheme(s, th)
		if lines := strings.Split(out, "\n"); len(lines) != 2 {
			t.Fatalf("got %d lines, want 2", len(lines))
		}
		for _, want := range []string{"fleet", "hit", "miss"} {
			if !strings.Contains(out, want) {
				t.Errorf("output missing %q", want)
			}
		}
	}
}

func TestThemeByName(t *testing.T) {
	for _, name := range ThemeNames() {
		if _, err := ThemeByName(name); err != nil {
			t.Errorf("ThemeByName(%q) failed: %v", name, err)
		}
	}
	if _, err := ThemeByName("neon"); err == nil {
		t.Error("expected error for unknown theme")
	}
}
