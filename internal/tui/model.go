// Package tui is the terminal deck player: a category list and a themed
// card view driving a deck.Controller.
package tui

import (
	"context"
	"errors"
	"time"

	"bondify-be/internal/catalog"
	"bondify-be/internal/deck"

	tea "github.com/charmbracelet/bubbletea"
)

type screen int

const (
	screenList screen = iota
	screenDeck
	screenNotFound
)

// Catalog lists categories and supplies their prompts.
type Catalog interface {
	deck.Source
	catalog.Lister
}

type Options struct {
	Catalog Catalog
	Store   deck.ProgressStore
	Restore deck.RestorePolicy
	Logger  deck.Logger
	// Scheduler defaults to the wall clock.
	Scheduler deck.Scheduler
	// Category opens straight into a deck when set.
	Category string
}

type (
	categoriesMsg struct {
		categories []catalog.Category
		err        error
	}
	deckOpenedMsg struct {
		category string
		ctrl     *deck.Controller
		err      error
	}
	// deckChangedMsg asks the view to re-read the controller.
	deckChangedMsg struct{}
	notifyMsg      deck.Notification
	expireMsg      struct{ at time.Time }
)

type Model struct {
	opts  Options
	relay *relay

	screen     screen
	categories []catalog.Category
	cursor     int
	loading    bool
	err        error
	missing    string

	ctrl  *deck.Controller
	snap  deck.Snapshot
	toast *deck.Notification

	width int
}

func NewModel(opts Options) Model {
	return Model{opts: opts, relay: &relay{}, loading: true}
}

// Bind routes controller callbacks through send, normally Program.Send.
func (m Model) Bind(send func(tea.Msg)) {
	m.relay.bind(send)
}

func (m Model) Init() tea.Cmd {
	if m.opts.Category != "" {
		return m.openDeck(m.opts.Category)
	}
	return m.loadCategories()
}

func (m Model) loadCategories() tea.Cmd {
	lister := m.opts.Catalog
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		categories, err := lister.Categories(ctx)
		return categoriesMsg{categories: categories, err: err}
	}
}

func (m Model) openDeck(category string) tea.Cmd {
	opts := m.opts
	r := m.relay
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		deckOpts := []deck.Option{
			deck.OnChange(func(deck.Snapshot) { r.post(deckChangedMsg{}) }),
			deck.OnNotify(func(n deck.Notification) { r.post(notifyMsg(n)) }),
		}
		if opts.Store != nil {
			deckOpts = append(deckOpts, deck.WithStore(opts.Store))
		}
		if opts.Logger != nil {
			deckOpts = append(deckOpts, deck.WithLogger(opts.Logger))
		}
		if opts.Scheduler != nil {
			deckOpts = append(deckOpts, deck.WithScheduler(opts.Scheduler))
		}

		ctrl, err := deck.New(ctx, opts.Catalog, deck.Config{
			Category: category,
			Theme:    deck.ThemeFor(category),
			Restore:  opts.Restore,
		}, deckOpts...)
		return deckOpenedMsg{category: category, ctrl: ctrl, err: err}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case categoriesMsg:
		m.loading = false
		m.categories = msg.categories
		m.err = msg.err
		if m.cursor >= len(m.categories) {
			m.cursor = 0
		}
		return m, nil

	case deckOpenedMsg:
		m.loading = false
		if msg.err != nil {
			if errors.Is(msg.err, deck.ErrCategoryNotFound) {
				m.screen = screenNotFound
				m.missing = msg.category
				return m, nil
			}
			m.err = msg.err
			m.screen = screenList
			return m, nil
		}
		m.ctrl = msg.ctrl
		m.snap = msg.ctrl.Snapshot()
		m.toast = nil
		m.screen = screenDeck
		return m, nil

	case deckChangedMsg:
		if m.ctrl != nil {
			m.snap = m.ctrl.Snapshot()
		}
		return m, nil

	case notifyMsg:
		n := deck.Notification(msg)
		// Only the newest notification is shown.
		if m.toast != nil && n.ExpiresAt.Before(m.toast.ExpiresAt) {
			return m, nil
		}
		m.toast = &n
		return m, tea.Tick(time.Until(n.ExpiresAt), func(time.Time) tea.Msg {
			return expireMsg{at: n.ExpiresAt}
		})

	case expireMsg:
		if m.toast != nil && m.toast.ExpiresAt.Equal(msg.at) {
			m.toast = nil
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == "ctrl+c" {
		m.closeDeck()
		return m, tea.Quit
	}

	switch m.screen {
	case screenList:
		switch key {
		case "q":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.categories)-1 {
				m.cursor++
			}
		case "enter":
			if len(m.categories) > 0 {
				m.loading = true
				return m, m.openDeck(m.categories[m.cursor].ID)
			}
		case "R":
			m.loading = true
			return m, m.loadCategories()
		}

	case screenNotFound:
		switch key {
		case "q":
			return m, tea.Quit
		case "enter", "b", "esc":
			return m.backToList()
		}

	case screenDeck:
		switch key {
		case "q":
			m.closeDeck()
			return m, tea.Quit
		case "b", "esc":
			return m.backToList()
		case " ":
			m.ctrl.Reveal()
		case "n":
			m.ctrl.Advance()
		case "f":
			m.ctrl.ToggleFavorite()
		case "a":
			m.ctrl.MarkAnswered()
		case "s":
			m.ctrl.Shuffle()
		case "r":
			m.ctrl.Reset()
		}
		m.snap = m.ctrl.Snapshot()
	}
	return m, nil
}

func (m *Model) closeDeck() {
	if m.ctrl != nil {
		m.ctrl.Close()
		m.ctrl = nil
	}
	m.toast = nil
}

func (m Model) backToList() (tea.Model, tea.Cmd) {
	m.closeDeck()
	m.screen = screenList
	m.missing = ""
	if m.categories == nil {
		m.loading = true
		return m, m.loadCategories()
	}
	return m, nil
}
