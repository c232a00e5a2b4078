package tui

import (
	"bondify-be/internal/deck"

	"github.com/charmbracelet/lipgloss"
)

var (
	muted   = lipgloss.Color("#9CA3AF")
	danger  = lipgloss.Color("#EF4444")
	success = lipgloss.Color("#22C55E")

	titleStyle    = lipgloss.NewStyle().Bold(true)
	subtitleStyle = lipgloss.NewStyle().Foreground(muted)
	helpStyle     = lipgloss.NewStyle().Foreground(muted).MarginTop(1)
	errorStyle    = lipgloss.NewStyle().Foreground(danger).Bold(true)
	toastStyle    = lipgloss.NewStyle().Foreground(success).Bold(true)
	selectedStyle = lipgloss.NewStyle().Bold(true).PaddingLeft(1)
	itemStyle     = lipgloss.NewStyle().PaddingLeft(3)
)

// palette is the lipgloss rendering of a deck theme.
type palette struct {
	accent lipgloss.Style
	card   lipgloss.Style
	badge  lipgloss.Style
}

func paletteFor(s deck.Style) palette {
	accent := lipgloss.Color(s.Accent)
	return palette{
		accent: lipgloss.NewStyle().Foreground(accent).Bold(true),
		card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 3).
			Width(56).
			Align(lipgloss.Center),
		badge: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color(s.GradientTo)).
			Padding(0, 1),
	}
}
