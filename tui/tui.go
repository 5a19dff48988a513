package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stylepick/stylepick/studio"
)

// Run shows the preview screen for s until the user quits.
func Run(s *studio.Studio) error {
	bubble := newBubble(s)
	bubble.setState(mainState)

	_, err := tea.NewProgram(bubble, tea.WithAltScreen()).Run()
	return err
}
