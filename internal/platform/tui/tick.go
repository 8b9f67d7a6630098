// Package tui provides the Bubble Tea integration for the game.
// It handles the terminal UI loop, input mapping, overlays and persistence wiring.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/razor-flap/internal/clock"
)

// TickMsg is sent to trigger a frame.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends one tick after 1/fps seconds.
func tickCmd(fps int) tea.Cmd {
	return tea.Tick(clock.FrameInterval(fps), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
