// Package tui provides the Bubble Tea front end: level select, play
// screen and scoreboard.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/flappy-kids/internal/session"
)

// TickMsg is sent to trigger a game simulation frame.
// Token ties the tick to the loop that scheduled it.
type TickMsg struct {
	Time  time.Time
	Token session.Token
}

// tickCmd returns a Bubble Tea command that sends one tick after a frame interval.
func tickCmd(tickRate int, tok session.Token) tea.Cmd {
	interval := time.Second / time.Duration(max(tickRate, 1))
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t, Token: tok}
	})
}
