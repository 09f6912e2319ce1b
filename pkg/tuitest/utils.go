// Package tuitest builds bubbletea input messages and flattens rendered
// views for assertions.
package tuitest

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

var namedKeys = map[string]tea.KeyType{
	"enter":     tea.KeyEnter,
	"esc":       tea.KeyEsc,
	"tab":       tea.KeyTab,
	"shift+tab": tea.KeyShiftTab,
	"up":        tea.KeyUp,
	"down":      tea.KeyDown,
	"left":      tea.KeyLeft,
	"right":     tea.KeyRight,
	"backspace": tea.KeyBackspace,
	"ctrl+c":    tea.KeyCtrlC,
}

// Key returns the message bubbletea sends for a key press. Names follow
// tea.KeyMsg.String ("enter", "shift+tab", "ctrl+c"); anything else is
// typed as runes, so Key("x") is the x key.
func Key(name string) tea.KeyMsg {
	if t, ok := namedKeys[name]; ok {
		return tea.KeyMsg{Type: t}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(name)}
}

// WindowSize returns a terminal resize message.
func WindowSize(w, h int) tea.WindowSizeMsg {
	return tea.WindowSizeMsg{Width: w, Height: h}
}

// StripANSI drops escape sequences, trailing spaces on each line and
// trailing blank lines.
func StripANSI(s string) string {
	var b strings.Builder
	for i, line := range strings.Split(ansi.Strip(s), "\n") {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(strings.TrimRight(line, " "))
	}
	return strings.TrimRight(b.String(), "\n")
}
