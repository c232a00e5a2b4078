package tui

import (
	"fmt"
	"strings"

	"bondify-be/internal/deck"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	switch m.screen {
	case screenDeck:
		return m.deckView()
	case screenNotFound:
		return m.notFoundView()
	default:
		return m.listView()
	}
}

func (m Model) listView() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Bondify"))
	b.WriteString("\n")
	b.WriteString(subtitleStyle.Render("Pick a deck to start a conversation"))
	b.WriteString("\n\n")

	switch {
	case m.loading:
		b.WriteString(subtitleStyle.Render("Loading..."))
	case m.err != nil:
		b.WriteString(errorStyle.Render("Could not load decks: " + m.err.Error()))
	case len(m.categories) == 0:
		b.WriteString(subtitleStyle.Render("No decks available"))
	default:
		for i, c := range m.categories {
			style := deck.ThemeFor(c.ID).Style()
			name := paletteFor(style).accent.Render(c.Name)
			line := fmt.Sprintf("%s  %s", name, subtitleStyle.Render(c.Subtitle))
			if c.IsPremium {
				line += " " + paletteFor(style).badge.Render("premium")
			}
			if i == m.cursor {
				b.WriteString(selectedStyle.Render("› " + line))
			} else {
				b.WriteString(itemStyle.Render(line))
			}
			b.WriteString("\n")
		}
	}

	b.WriteString(helpStyle.Render("↑/↓ move • enter open • R reload • q quit"))
	return b.String()
}

func (m Model) notFoundView() string {
	var b strings.Builder
	b.WriteString(errorStyle.Render("Category not found"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("There is no deck called %q.", m.missing))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("enter back to decks • q quit"))
	return b.String()
}

func (m Model) deckView() string {
	s := m.snap
	style := m.ctrl.Style()
	pal := paletteFor(style)

	var b strings.Builder
	header := pal.accent.Render(m.categoryName(s.Category))
	if style.Premium {
		header += " " + pal.badge.Render("premium")
	}
	b.WriteString(header)
	b.WriteString("\n")
	b.WriteString(subtitleStyle.Render(fmt.Sprintf("Card %d of %d • %d XP • %d%% complete",
		s.Index+1, s.Total, s.Score, s.ProgressPercent)))
	b.WriteString("\n")
	b.WriteString(progressBar(s.ProgressPercent, 40))
	b.WriteString("\n\n")

	var face string
	switch {
	case s.Shuffling:
		face = pal.accent.Render("Shuffling...")
	case s.Revealed:
		face = titleStyle.Render(s.Current.Text)
	default:
		face = pal.accent.Render(style.RevealTitle) + "\n\n" + subtitleStyle.Render(style.RevealHint)
	}
	b.WriteString(pal.card.Render(face))
	b.WriteString("\n")

	var marks []string
	if s.IsFavorite {
		marks = append(marks, pal.accent.Render("★ Favorite"))
	}
	if s.IsAnswered {
		marks = append(marks, pal.accent.Render("✓ "+style.AnsweredLabel))
	}
	if len(marks) > 0 {
		b.WriteString(strings.Join(marks, "   "))
		b.WriteString("\n")
	}

	if m.toast != nil {
		b.WriteString(toastStyle.Render(toastText(*m.toast)))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render(fmt.Sprintf(
		"space reveal • n next • f favorite • a %s • s shuffle • r reset • b back • q quit",
		strings.ToLower(style.AnswerLabel))))
	return b.String()
}

func toastText(n deck.Notification) string {
	if n.Kind == deck.NotificationReset {
		return "Progress reset"
	}
	return fmt.Sprintf("+%d XP for %s", n.Delta, n.Label)
}

func progressBar(percent, width int) string {
	filled := percent * width / 100
	if filled > width {
		filled = width
	}
	return lipgloss.NewStyle().Foreground(success).Render(strings.Repeat("█", filled)) +
		subtitleStyle.Render(strings.Repeat("░", width-filled))
}

func (m Model) categoryName(id string) string {
	for _, c := range m.categories {
		if c.ID == id {
			return c.Name
		}
	}
	return id
}
