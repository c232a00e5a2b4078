package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Run opens the player full screen and blocks until the user quits.
func Run(opts Options) error {
	m := NewModel(opts)
	p := tea.NewProgram(m, tea.WithAltScreen())
	m.Bind(p.Send)

	final, err := p.Run()
	if fm, ok := final.(Model); ok {
		fm.closeDeck()
	}
	return err
}
